package models

import "encoding/xml"

// OCSResponse - envelope of every OCS v1 API response
type OCSResponse struct {
	XMLName xml.Name           `xml:"ocs"`
	Meta    ProvisioningResult `xml:"meta"`
	Data    OCSData            `xml:"data"`
}

// OCSData - data block of an OCS response; only the group search
// results are of interest to this tool
type OCSData struct {
	Groups []string `xml:"groups>element"`
}
