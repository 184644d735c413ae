package cmd

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingGate - captures the checkpoints a run passes through
type recordingGate struct {
	confirmed bool
	prompts   []string
	acks      []string
}

func (g *recordingGate) Confirm(prompt string) (bool, error) {
	g.prompts = append(g.prompts, prompt)
	return g.confirmed, nil
}

func (g *recordingGate) Acknowledge(message string) {
	g.acks = append(g.acks, message)
}

const ocsOK = `<?xml version="1.0"?>
<ocs><meta><status>ok</status><statuscode>100</statuscode><message>OK</message></meta><data>%s</data></ocs>`

func importFixture(t *testing.T) (string, string) {
	t.Helper()
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			fmt.Fprintf(w, ocsOK, "<groups/>")
			return
		}
		fmt.Fprintf(w, ocsOK, "")
	}))
	t.Cleanup(server.Close)

	dir := t.TempDir()
	csvPath := filepath.Join(dir, "users.csv")
	csv := "login,displayname,password,email,groups,groupadminfor,quota\n" +
		"jdoe,John Doe,,jd@example.com,teachers,,1GB\n"
	require.NoError(t, os.WriteFile(csvPath, []byte(csv), 0o644))

	cfgPath := filepath.Join(dir, "config.yaml")
	cfg := fmt.Sprintf(`
serverurl: "%s"
adminuser: admin
adminpass: adminpass
csvfile: "%s"
generatepasswords: true
verifytls: false
outputdir: "%s"
tempdir: "%s"
`, strings.TrimPrefix(server.URL, "https://"), csvPath,
		filepath.Join(dir, "output"), filepath.Join(dir, "tmp"))
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))
	return cfgPath, filepath.Join(dir, "output")
}

func TestRunImport(t *testing.T) {
	t.Run("SuccessEndsWithAcknowledgment", func(t *testing.T) {
		cfgPath, outputDir := importFixture(t)
		gate := &recordingGate{confirmed: true}
		require.NoError(t, runImport(gate, cfgPath))

		require.Len(t, gate.prompts, 1, "one pre-flight confirmation")
		require.Len(t, gate.acks, 1, "the closing summary waits for the operator")

		_, err := os.Stat(filepath.Join(outputDir, "output.log"))
		assert.NoError(t, err)
		pdfs, err := filepath.Glob(filepath.Join(outputDir, "*.pdf"))
		require.NoError(t, err)
		assert.Len(t, pdfs, 1)
	})
	t.Run("Cancelled", func(t *testing.T) {
		cfgPath, outputDir := importFixture(t)
		gate := &recordingGate{confirmed: false}
		require.NoError(t, runImport(gate, cfgPath))
		assert.Empty(t, gate.acks)
		_, err := os.Stat(filepath.Join(outputDir, "output.log"))
		assert.True(t, os.IsNotExist(err), "nothing is written when the operator declines")
	})
	t.Run("MissingCSV", func(t *testing.T) {
		cfgPath, _ := importFixture(t)
		content, err := os.ReadFile(cfgPath)
		require.NoError(t, err)
		broken := strings.Replace(string(content), "users.csv", "missing.csv", 1)
		require.NoError(t, os.WriteFile(cfgPath, []byte(broken), 0o644))

		gate := &recordingGate{confirmed: true}
		err = runImport(gate, cfgPath)
		assert.Error(t, err)
		assert.Empty(t, gate.prompts, "fails before the confirmation gate")
	})
}
