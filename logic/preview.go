package logic

import (
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/ocstools/ncimport/models"
)

// RenderPreview - prints one table with all pending records so the
// operator can check the import before anything is sent. Passwords are
// masked to a run of '*' of equal length; empty stays empty.
func RenderPreview(w io.Writer, records []models.UserRecord) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Username", "Display name", "Password", "Email", "Groups", "Group admin for", "Quota"})
	for _, record := range records {
		table.Append([]string{
			record.LoginName,
			record.DisplayName,
			MaskPassword(record.Password),
			record.Email,
			record.Groups,
			record.GroupAdminFor,
			record.Quota,
		})
	}
	table.Render()
}

// MaskPassword - replaces a password with '*' characters of the same
// length for display
func MaskPassword(password string) string {
	return strings.Repeat("*", len([]rune(password)))
}
