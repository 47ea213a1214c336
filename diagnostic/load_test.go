package diagnostic_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgepadayatti/goades/diagnostic"
	"github.com/georgepadayatti/goades/diagnostic/diagtest"
)

func TestParseRoundTrip(t *testing.T) {
	raw, err := json.Marshal(diagtest.Valid())
	require.NoError(t, err)

	d, err := diagnostic.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "document.xml", d.DocumentName)
	assert.True(t, d.ValidationDate.Equal(diagtest.Now))
	require.NotNil(t, d.Signature(diagtest.SignatureID))
	require.NotNil(t, d.Certificate(diagtest.SignerID))
	assert.Equal(t, diagnostic.StatusGood, d.Certificate(diagtest.SignerID).Revocations[0].Status)
	assert.Len(t, d.TimestampsCovering(diagtest.SignatureID), 1)
}

func TestParseRevocationReason(t *testing.T) {
	doc := `{
	  "validationDate": "2024-06-01T12:00:00Z",
	  "certificates": [{
	    "id": "C-1",
	    "notBefore": "2023-06-01T12:00:00Z",
	    "notAfter": "2025-06-01T12:00:00Z",
	    "revocations": [
	      {"revocationId": "R-1", "status": "revoked", "revocationDate": "2024-05-01T00:00:00Z", "reason": 6},
	      {"revocationId": "R-2", "status": "revoked", "revocationDate": "2024-05-02T00:00:00Z", "reason": "KEYCOMPROMISE"}
	    ]
	  }]
	}`
	d, err := diagnostic.Parse([]byte(doc))
	require.NoError(t, err)

	revs := d.Certificate("C-1").Revocations
	assert.Equal(t, diagnostic.ReasonCertificateHold, revs[0].Reason)
	assert.True(t, revs[0].Reason.IsHold())
	assert.Equal(t, diagnostic.ReasonKeyCompromise, revs[1].Reason)
	assert.Equal(t, 1, revs[1].Reason.Code())
}

func TestParseRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed json", `{"validationDate":`},
		{"missing validation date", `{"documentName": "a.xml"}`},
		{"bad date", `{"validationDate": "yesterday"}`},
		{"unknown timestamp type", `{"validationDate": "2024-06-01T12:00:00Z", "timestamps": [{"id": "T", "type": "FUTURE", "productionTime": "2024-06-01T12:00:00Z"}]}`},
		{"empty id", `{"validationDate": "2024-06-01T12:00:00Z", "signatures": [{"id": ""}]}`},
		{"unknown reason code", `{"validationDate": "2024-06-01T12:00:00Z", "certificates": [{"id": "C", "notBefore": "2023-06-01T12:00:00Z", "notAfter": "2025-06-01T12:00:00Z", "revocations": [{"revocationId": "R", "status": "revoked", "reason": 42}]}]}`},
		{"duplicate id", `{"validationDate": "2024-06-01T12:00:00Z", "signatures": [{"id": "X"}], "timestamps": [{"id": "X", "type": "SIGNATURE_TIMESTAMP", "productionTime": "2024-06-01T12:00:00Z"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := diagnostic.Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, diagnostic.ErrInvalidDiagnostic))
		})
	}
}

func TestLoad(t *testing.T) {
	raw, err := json.Marshal(diagtest.Valid())
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "diagnostic.json")
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	d, err := diagnostic.Load(path)
	require.NoError(t, err)
	assert.Len(t, d.Signatures, 1)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{}`), 0o600))
	_, err = diagnostic.Load(bad)
	var le *diagnostic.LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, bad, le.Source)
	assert.Contains(t, err.Error(), bad)

	_, err = diagnostic.Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuildChain(t *testing.T) {
	d := diagtest.Valid()
	chain := d.BuildChain(diagtest.SignerID)
	require.NotNil(t, chain)

	assert.Equal(t, []string{diagtest.SignerID, diagtest.RootID}, chain.IDs())
	assert.Equal(t, diagtest.SignerID, chain.Leaf().ID)
	assert.Equal(t, diagtest.RootID, chain.TrustAnchor().ID)
	assert.True(t, chain.Trusted())
}

func TestStatusOCSPMapping(t *testing.T) {
	for _, s := range []diagnostic.RevocationStatus{diagnostic.StatusGood, diagnostic.StatusRevoked, diagnostic.StatusUnknown} {
		assert.Equal(t, s, diagnostic.StatusFromOCSP(s.OCSPStatus()))
	}
}
