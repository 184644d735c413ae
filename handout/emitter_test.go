package handout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ocstools/ncimport/config"
	"github.com/ocstools/ncimport/models"
)

func TestLoginPayload(t *testing.T) {
	payload := LoginPayload("jdoe", "s3cret!", "https://cloud.example.com")
	assert.Equal(t, "nc://login/user:jdoe&password:s3cret!&server:https://cloud.example.com", payload)
}

func emitterConfig(t *testing.T, combined bool) *config.Config {
	t.Helper()
	return &config.Config{
		OutputDir:   t.TempDir(),
		TempDir:     t.TempDir(),
		CombinedPDF: combined,
	}
}

func record() models.UserRecord {
	return models.UserRecord{
		LoginName:   "jdoe",
		DisplayName: "John Doe",
		Password:    "s3cret!",
		Email:       "jd@example.com",
	}
}

func assertPDF(t *testing.T, path string) {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(content), 4)
	assert.Equal(t, "%PDF", string(content[:4]))
}

func TestEmitterPerUser(t *testing.T) {
	cfg := emitterConfig(t, false)
	emitter := NewEmitter(cfg, "https://cloud.example.com")

	require.NoError(t, emitter.Emit(record()))
	second := record()
	second.LoginName = "asmith"
	second.DisplayName = "Anna Smith"
	require.NoError(t, emitter.Emit(second))

	// one single-page document per user, named login_runstamp.pdf
	assertPDF(t, filepath.Join(cfg.OutputDir, "jdoe_"+emitter.runStamp+".pdf"))
	assertPDF(t, filepath.Join(cfg.OutputDir, "asmith_"+emitter.runStamp+".pdf"))

	require.NoError(t, emitter.Finalize())
	entries, err := os.ReadDir(cfg.TempDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "transient QR images are removed")
}

func TestEmitterCombined(t *testing.T) {
	cfg := emitterConfig(t, true)
	emitter := NewEmitter(cfg, "https://cloud.example.com")

	require.NoError(t, emitter.Emit(record()))
	second := record()
	second.LoginName = "asmith"
	require.NoError(t, emitter.Emit(second))

	// nothing is written until the run is finalized
	entries, err := os.ReadDir(cfg.OutputDir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	require.NoError(t, emitter.Finalize())
	assertPDF(t, filepath.Join(cfg.OutputDir, "userlist_"+emitter.runStamp+".pdf"))

	tmpEntries, err := os.ReadDir(cfg.TempDir)
	require.NoError(t, err)
	assert.Empty(t, tmpEntries)
}

func TestEmitterCombinedNoSuccesses(t *testing.T) {
	cfg := emitterConfig(t, true)
	emitter := NewEmitter(cfg, "https://cloud.example.com")
	require.NoError(t, emitter.Finalize())
	entries, err := os.ReadDir(cfg.OutputDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no document when nothing was created")
}
