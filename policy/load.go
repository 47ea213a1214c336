package policy

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidPolicy is returned for policy documents that cannot be used.
var ErrInvalidPolicy = errors.New("invalid validation policy")

// PolicyError describes a policy loading failure.
type PolicyError struct {
	Source string
	Err    error
}

func (e *PolicyError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s: %s: %v", ErrInvalidPolicy, e.Source, e.Err)
	}
	return fmt.Sprintf("%s: %v", ErrInvalidPolicy, e.Err)
}

// Unwrap returns both the sentinel and the cause.
func (e *PolicyError) Unwrap() []error {
	return []error{ErrInvalidPolicy, e.Err}
}

//go:embed default.yaml
var defaultPolicy []byte

// DefaultYAML returns a copy of the built-in policy document.
func DefaultYAML() []byte {
	return bytes.Clone(defaultPolicy)
}

// Default parses the built-in policy. Every call returns a fresh instance.
func Default() *ValidationPolicy {
	p, err := Parse(defaultPolicy)
	if err != nil {
		panic(fmt.Sprintf("built-in policy: %v", err))
	}
	return p
}

// Load reads and parses a policy file.
func Load(path string) (*ValidationPolicy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &PolicyError{Source: path, Err: err}
	}
	p, err := Parse(data)
	if err != nil {
		var pe *PolicyError
		if errors.As(err, &pe) {
			pe.Source = path
		}
		return nil, err
	}
	return p, nil
}

// Parse parses a YAML policy document. Unknown keys are rejected.
func Parse(data []byte) (*ValidationPolicy, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	p := &ValidationPolicy{}
	if err := dec.Decode(p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &PolicyError{Err: errors.New("empty document")}
		}
		return nil, &PolicyError{Err: err}
	}
	if err := p.Validate(); err != nil {
		return nil, &PolicyError{Err: err}
	}
	return p, nil
}

// Validate checks the policy for inconsistent values.
func (p *ValidationPolicy) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	crypto := []*CryptographicConstraint{&p.Cryptographic, p.EvidenceRecord.Cryptographic}
	for _, ctx := range []Context{ContextSignature, ContextCounterSignature, ContextTimestamp, ContextRevocation} {
		basic := p.BasicSignature(ctx)
		crypto = append(crypto, basic.Cryptographic, basic.SigningCertificate.Cryptographic, basic.CACertificate.Cryptographic)
		for _, c := range []*CertificateConstraints{&basic.SigningCertificate, &basic.CACertificate} {
			if c.RevocationFreshness.Value < 0 {
				return fmt.Errorf("%s: revocationFreshness must not be negative", ctx)
			}
		}
	}
	if p.Signature.TimestampDelay.Value < 0 {
		return errors.New("signature: timestampDelay must not be negative")
	}
	for _, c := range crypto {
		if c == nil {
			continue
		}
		for _, e := range c.AlgoExpirationDates {
			if e.Algorithm == "" {
				return errors.New("cryptographic: algoExpirationDates entry without algorithm")
			}
			if e.Date.IsZero() {
				return fmt.Errorf("cryptographic: %s has no expiration date", e.Algorithm)
			}
		}
		for algo, size := range c.MiniPublicKeySize {
			if size < 0 {
				return fmt.Errorf("cryptographic: negative minimum key size for %s", algo)
			}
		}
	}
	return nil
}
