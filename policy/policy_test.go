package policy

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// Level tests

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected Level
		wantErr  bool
	}{
		{"", LevelIgnore, false},
		{"IGNORE", LevelIgnore, false},
		{"inform", LevelInform, false},
		{"WARN", LevelWarn, false},
		{" FAIL ", LevelFail, false},
		{"ERROR", LevelIgnore, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseLevel(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}

func TestLevelString(t *testing.T) {
	if LevelIgnore.String() != "IGNORE" {
		t.Errorf("LevelIgnore.String() = %q", LevelIgnore.String())
	}
	if LevelIgnore.IsSet() {
		t.Error("LevelIgnore should not be set")
	}
	if !LevelWarn.IsSet() {
		t.Error("LevelWarn should be set")
	}
}

// MultiValuesConstraint tests

func TestMultiValuesConstraint(t *testing.T) {
	c := MultiValuesConstraint{Level: LevelFail, Values: []string{"a", "b"}}

	if !c.Accepts("a") || c.Accepts("c") {
		t.Error("Accepts() mismatch")
	}
	if !c.AcceptsAll([]string{"a", "b"}) || c.AcceptsAll([]string{"a", "c"}) {
		t.Error("AcceptsAll() mismatch")
	}
	if c.AcceptsAll(nil) {
		t.Error("AcceptsAll(nil) should be false unless the empty value is accepted")
	}
	if !c.AcceptsAny([]string{"c", "b"}) || c.AcceptsAny([]string{"c"}) {
		t.Error("AcceptsAny() mismatch")
	}

	anyValue := MultiValuesConstraint{Values: []string{"ANY"}}
	if !anyValue.Accepts("whatever") {
		t.Error("ANY should accept every value")
	}
}

// CryptographicConstraint tests

func TestCryptographicConstraint(t *testing.T) {
	c := &CryptographicConstraint{
		AcceptableEncryptionAlgorithms: []string{"RSA", "ECDSA"},
		AcceptableDigestAlgorithms:     []string{"SHA1", "SHA-256"},
		MiniPublicKeySize:              map[string]int{"RSA": 2048},
		AlgoExpirationDates: []AlgoExpiration{
			{Algorithm: "SHA1", Date: NewDate(2009, 12, 31)},
			{Algorithm: "RSA", KeySize: 1024, Date: NewDate(2013, 12, 31)},
			{Algorithm: "RSA", KeySize: 2048, Date: NewDate(2029, 12, 31)},
		},
	}

	if !c.EncryptionAllowed("rsa") || c.EncryptionAllowed("DSA") {
		t.Error("EncryptionAllowed() mismatch")
	}
	if !c.DigestAllowed("SHA256") || c.DigestAllowed("MD5") {
		t.Error("DigestAllowed() mismatch")
	}
	if size, ok := c.MinKeySize("RSA"); !ok || size != 2048 {
		t.Errorf("MinKeySize(RSA) = %d, %v", size, ok)
	}
	if _, ok := c.MinKeySize("ECDSA"); ok {
		t.Error("MinKeySize(ECDSA) should not be defined")
	}

	exp, ok := c.DigestExpiration("sha-1")
	if !ok || !exp.Equal(time.Date(2009, 12, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("DigestExpiration(sha-1) = %v, %v", exp, ok)
	}

	tests := []struct {
		keySize  int
		expected int
	}{
		{512, 2013},
		{1024, 2013},
		{1536, 2013},
		{2048, 2029},
		{4096, 2029},
	}
	for _, tt := range tests {
		exp, ok := c.EncryptionExpiration("RSA", tt.keySize)
		if !ok || exp.Year() != tt.expected {
			t.Errorf("EncryptionExpiration(RSA, %d) = %v, want year %d", tt.keySize, exp, tt.expected)
		}
	}
}

// Loading tests

func TestDefaultPolicy(t *testing.T) {
	p := Default()
	if p.Name == "" {
		t.Fatal("default policy has no name")
	}
	if p.Signature.BasicSignature.SignatureIntact.Level != LevelFail {
		t.Errorf("signatureIntact = %q, want FAIL", p.Signature.BasicSignature.SignatureIntact.Level)
	}
	if p.Container.AllFilesSigned.Level != LevelWarn {
		t.Errorf("allFilesSigned = %q, want WARN", p.Container.AllFilesSigned.Level)
	}
	exp, ok := p.Cryptographic.DigestExpiration("SHA1")
	if !ok || exp.Year() != 2009 {
		t.Errorf("SHA1 expiration = %v, %v", exp, ok)
	}

	// Every call returns an independent instance.
	q := Default()
	q.Container.AllFilesSigned.Level = LevelFail
	if p.Container.AllFilesSigned.Level != LevelWarn {
		t.Error("Default() instances share state")
	}
}

func TestPolicyContextFallbacks(t *testing.T) {
	p := Default()

	if p.SignatureConstraints(ContextCounterSignature) != &p.Signature {
		t.Error("counter signature should fall back to signature constraints")
	}
	p.CounterSignature = &SignatureConstraints{}
	if p.SignatureConstraints(ContextCounterSignature) != p.CounterSignature {
		t.Error("counter signature constraints not used")
	}

	if p.Crypto(ContextTimestamp) != &p.Cryptographic {
		t.Error("timestamp crypto should fall back to the global constraint")
	}
	override := &CryptographicConstraint{Level: LevelWarn}
	p.Timestamp.BasicSignature.Cryptographic = override
	if p.Crypto(ContextTimestamp) != override {
		t.Error("timestamp crypto override not used")
	}
	if p.CertificateCrypto(ContextTimestamp, RoleCACertificate) != override {
		t.Error("certificate crypto should fall back to the context constraint")
	}

	if p.Certificate(ContextSignature, RoleCACertificate) != &p.Signature.BasicSignature.CACertificate {
		t.Error("Certificate() returned the wrong constraints")
	}
	if p.BasicSignature(ContextEvidenceRecord).SignatureIntact.Level.IsSet() {
		t.Error("evidence records have no basic signature constraints")
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("name: x\nsignature:\n  unknownCheck:\n    level: FAIL\n"))
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !errors.Is(err, ErrInvalidPolicy) {
		t.Errorf("error %v does not wrap ErrInvalidPolicy", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"no name", "description: x\n"},
		{"bad level", "name: x\nsignature:\n  structuralValidation:\n    level: SOMETIMES\n"},
		{"bad date", "name: x\ncryptographic:\n  algoExpirationDates:\n    - {algorithm: SHA1, date: soon}\n"},
		{"negative delay", "name: x\nsignature:\n  timestampDelay:\n    level: FAIL\n    value: -1h\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.yaml")
	doc := `name: custom
container:
  allFilesSigned:
    level: FAIL
signature:
  timestampDelay:
    level: WARN
    value: 24h
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.Container.AllFilesSigned.Level != LevelFail {
		t.Errorf("allFilesSigned = %q, want FAIL", p.Container.AllFilesSigned.Level)
	}
	if p.Signature.TimestampDelay.Value != 24*time.Hour {
		t.Errorf("timestampDelay = %v, want 24h", p.Signature.TimestampDelay.Value)
	}

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	var pe *PolicyError
	if !errors.As(err, &pe) || pe.Source == "" {
		t.Errorf("Load(missing) error = %v, want PolicyError with source", err)
	}
}

func TestDefaultYAMLIsCopy(t *testing.T) {
	a := DefaultYAML()
	a[0] = '#'
	if DefaultYAML()[0] == '#' {
		t.Error("DefaultYAML() exposes the embedded document")
	}
}
