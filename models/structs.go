package models

import "strings"

// SuccessCode - the OCS status code the platform returns when an operation succeeded
const SuccessCode = "100"

// UserRecord - one user to be created, parsed from one CSV row
type UserRecord struct {
	LoginName     string `json:"loginname" validate:"required,min=1"`
	DisplayName   string `json:"displayname"`
	Password      string `json:"password"`
	Email         string `json:"email" validate:"omitempty,email"`
	Groups        string `json:"groups"`
	GroupAdminFor string `json:"groupadminfor"`
	Quota         string `json:"quota"`
}

// GroupList - splits the record's group field on the given delimiter,
// trimming whitespace and dropping empty entries
func (u *UserRecord) GroupList(delimiter string) []string {
	return splitList(u.Groups, delimiter)
}

// GroupAdminList - splits the record's group-admin field the same way
func (u *UserRecord) GroupAdminList(delimiter string) []string {
	return splitList(u.GroupAdminFor, delimiter)
}

func splitList(value, delimiter string) []string {
	if value == "" {
		return nil
	}
	var list []string
	for _, entry := range strings.Split(value, delimiter) {
		entry = strings.TrimSpace(entry)
		if entry != "" {
			list = append(list, entry)
		}
	}
	return list
}

// ProvisioningResult - the OCS meta block returned for every API call
type ProvisioningResult struct {
	Status     string `xml:"status"`
	StatusCode string `xml:"statuscode"`
	Message    string `xml:"message"`
}

// Succeeded - whether the platform reported the operation as successful
func (r *ProvisioningResult) Succeeded() bool {
	return r.StatusCode == SuccessCode
}
