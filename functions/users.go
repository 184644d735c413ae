package functions

import (
	"net/http"
	"net/url"

	"github.com/ocstools/ncimport/models"
)

// CreateUser - create a user from a prepared form payload
func (c *Client) CreateUser(payload url.Values) (*models.ProvisioningResult, error) {
	ocs, err := c.request("user creation", http.MethodPost, usersPath, payload)
	if err != nil {
		return nil, err
	}
	return &ocs.Meta, nil
}
