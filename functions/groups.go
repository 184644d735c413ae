package functions

import (
	"net/http"
	"net/url"

	"github.com/ocstools/ncimport/models"
)

// SearchGroup - check whether a group with the given name exists;
// existence means the search returned at least one element
func (c *Client) SearchGroup(name string) (bool, error) {
	ocs, err := c.request("group search", http.MethodGet, groupsPath+"?search="+url.QueryEscape(name), nil)
	if err != nil {
		return false, err
	}
	return len(ocs.Data.Groups) > 0, nil
}

// CreateGroup - create a group
func (c *Client) CreateGroup(name string) (*models.ProvisioningResult, error) {
	form := url.Values{}
	form.Set("groupid", name)
	ocs, err := c.request("group creation", http.MethodPost, groupsPath, form)
	if err != nil {
		return nil, err
	}
	return &ocs.Meta, nil
}
