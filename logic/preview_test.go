package logic

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ocstools/ncimport/models"
)

func TestMaskPassword(t *testing.T) {
	assert.Equal(t, "", MaskPassword(""))
	assert.Equal(t, "******", MaskPassword("secret"))
	assert.Equal(t, "****", MaskPassword("paßt"), "masking counts runes, not bytes")
}

func TestRenderPreview(t *testing.T) {
	records := []models.UserRecord{
		{LoginName: "jdoe", DisplayName: "John Doe", Password: "secret", Email: "jd@example.com", Groups: "teachers", Quota: "5GB"},
	}
	var buf bytes.Buffer
	RenderPreview(&buf, records)
	out := buf.String()
	assert.Contains(t, out, "jdoe")
	assert.Contains(t, out, "******")
	assert.NotContains(t, out, "secret")
	assert.Contains(t, out, "teachers")
}
