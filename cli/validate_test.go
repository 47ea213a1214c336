package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/beevik/etree"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgepadayatti/goades/cli"
	"github.com/georgepadayatti/goades/diagnostic"
	"github.com/georgepadayatti/goades/diagnostic/diagtest"
)

func writeDiagnostic(t *testing.T, d *diagnostic.Data) string {
	t.Helper()
	raw, err := json.Marshal(d)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "diagnostic.json")
	require.NoError(t, os.WriteFile(path, raw, 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest(clockwork.NewFakeClockAt(diagtest.Now))
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidateCommand_Text(t *testing.T) {
	path := writeDiagnostic(t, diagtest.Valid())

	out, err := execute(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "=== VALIDATION REPORT ===")
	assert.Contains(t, out, "Overall Result: TOTAL_PASSED")
	assert.Contains(t, out, "Signatures: 1 total, 1 passed, 0 failed")
	assert.Contains(t, out, "Validation Time: 2024-06-01T12:00:00Z")
}

func TestValidateCommand_SimpleJSON(t *testing.T) {
	path := writeDiagnostic(t, diagtest.Valid())

	out, err := execute(t, "validate", path, "--format", "json", "--level", "timestamps")
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &result), "output should be valid JSON")
	assert.Equal(t, "TIMESTAMPS", result["validationLevel"])
	assert.EqualValues(t, 1, result["validSignaturesCount"])
	assert.Equal(t, "document.xml", result["documentName"])
}

func TestValidateCommand_DetailedXML(t *testing.T) {
	path := writeDiagnostic(t, diagtest.Valid())

	out, err := execute(t, "validate", path, "--report", "detailed", "--format", "xml")
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(out))
	root := doc.SelectElement("DetailedReport")
	require.NotNil(t, root)
	sig := root.FindElement("Signature[@Id='" + diagtest.SignatureID + "']")
	require.NotNil(t, sig)
	assert.NotNil(t, sig.FindElement("ArchivalDataValidation"))
}

func TestValidateCommand_TimeFlag(t *testing.T) {
	path := writeDiagnostic(t, diagtest.Valid())

	out, err := execute(t, "validate", path, "--format", "json", "--time", "2024-06-01T13:00:00Z")
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "2024-06-01T13:00:00Z", result["validationTime"])

	_, err = execute(t, "validate", path, "--time", "tomorrow")
	assert.Error(t, err)
}

func TestValidateCommand_FailsWhenSignatureDoesNotPass(t *testing.T) {
	d := diagtest.Valid()
	d.Signatures[0].SignatureIntact = false
	path := writeDiagnostic(t, d)

	out, err := execute(t, "validate", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, cli.ErrNotPassed)
	assert.Contains(t, out, "Overall Result: TOTAL_FAILED")
}

func TestValidateCommand_Semantics(t *testing.T) {
	path := writeDiagnostic(t, diagtest.Valid())

	out, err := execute(t, "validate", path, "--format", "json", "--semantics")
	require.NoError(t, err)

	var result struct {
		Semantics []struct {
			Value string `json:"value"`
		} `json:"semantics"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.NotEmpty(t, result.Semantics)
	assert.Equal(t, "TOTAL_PASSED", result.Semantics[0].Value)
}

func TestValidateCommand_ConfigFile(t *testing.T) {
	path := writeDiagnostic(t, diagtest.Valid())
	cfg := filepath.Join(t.TempDir(), "goades.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("validation:\n  format: json\n  level: BASIC_SIGNATURES\n"), 0o600))

	out, err := execute(t, "validate", path, "--config", cfg)
	require.NoError(t, err)
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "BASIC_SIGNATURES", result["validationLevel"])

	// Flags win over the file.
	out, err = execute(t, "validate", path, "--config", cfg, "--level", "LONG_TERM_DATA")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "LONG_TERM_DATA", result["validationLevel"])
}

func TestValidateCommand_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no file", []string{"validate"}},
		{"missing file", []string{"validate", filepath.Join(t.TempDir(), "missing.json")}},
		{"bad level", []string{"validate", writeDiagnostic(t, diagtest.Valid()), "--level", "QUALIFIED"}},
		{"bad format", []string{"validate", writeDiagnostic(t, diagtest.Valid()), "--format", "pdf"}},
		{"missing policy", []string{"validate", writeDiagnostic(t, diagtest.Valid()), "--policy", filepath.Join(t.TempDir(), "p.yaml")}},
		{"missing config", []string{"validate", writeDiagnostic(t, diagtest.Valid()), "--config", filepath.Join(t.TempDir(), "c.yaml")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
			assert.NotErrorIs(t, err, cli.ErrNotPassed)
		})
	}
}
