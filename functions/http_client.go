// Package functions contains the thin wrappers around the platform's
// OCS provisioning API (users and groups endpoints).
package functions

import (
	"crypto/tls"
	"encoding/xml"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/ocstools/ncimport/config"
	"github.com/ocstools/ncimport/logic"
	"github.com/ocstools/ncimport/models"
)

const (
	usersPath  = "/ocs/v1.php/cloud/users"
	groupsPath = "/ocs/v1.php/cloud/groups"
)

// Client - issues authenticated requests against the users and groups
// endpoints of one server
type Client struct {
	baseURL    string
	adminUser  string
	adminPass  string
	httpClient *http.Client
}

// NewClient - builds a client from the run configuration; the server is
// always addressed over https
func NewClient(cfg *config.Config) *Client {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: !cfg.VerifyTLS},
	}
	return &Client{
		baseURL:   "https://" + cfg.ServerURL,
		adminUser: cfg.AdminUser,
		adminPass: cfg.AdminPass,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.RequestTimeout,
		},
	}
}

// BaseURL - the server address requests are issued against
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) request(op, method, path string, form url.Values) (*models.OCSResponse, error) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return nil, errors.Wrap(err, "building request")
	}
	req.SetBasicAuth(c.adminUser, c.adminPass)
	req.Header.Set("OCS-APIRequest", "true")
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &logic.TransportError{Op: op, Err: err}
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, &logic.TransportError{Op: op, StatusCode: res.StatusCode}
	}

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &logic.TransportError{Op: op, Err: err}
	}
	ocs := new(models.OCSResponse)
	if err := xml.Unmarshal(resBody, ocs); err != nil {
		return nil, errors.Wrapf(err, "%s: decoding OCS response", op)
	}
	return ocs, nil
}
