package diagnostic

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrInvalidDiagnostic is returned for documents that are not valid
// diagnostic data.
var ErrInvalidDiagnostic = errors.New("invalid diagnostic data")

// LoadError describes a diagnostic data loading failure.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s: %s: %v", ErrInvalidDiagnostic, e.Source, e.Err)
	}
	return fmt.Sprintf("%s: %v", ErrInvalidDiagnostic, e.Err)
}

// Unwrap returns both the sentinel and the cause.
func (e *LoadError) Unwrap() []error {
	return []error{ErrInvalidDiagnostic, e.Err}
}

//go:embed schema.json
var schemaDocument []byte

const schemaURL = "https://goades.local/schemas/diagnostic.schema.json"

// Schema compiles the diagnostic data JSON schema.
func Schema() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	c.AssertFormat = true
	if err := c.AddResource(schemaURL, bytes.NewReader(schemaDocument)); err != nil {
		return nil, fmt.Errorf("diagnostic schema load failed: %w", err)
	}
	schema, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("diagnostic schema compile failed: %w", err)
	}
	return schema, nil
}

// Load reads a diagnostic data JSON file.
func Load(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	d, err := Parse(raw)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Source = path
		}
		return nil, err
	}
	return d, nil
}

// Parse validates a JSON document against the schema and decodes it.
func Parse(raw []byte) (*Data, error) {
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &LoadError{Err: err}
	}
	schema, err := Schema()
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	if err := schema.Validate(doc); err != nil {
		return nil, &LoadError{Err: err}
	}

	d := &Data{}
	if err := json.Unmarshal(raw, d); err != nil {
		return nil, &LoadError{Err: err}
	}
	if err := d.Check(); err != nil {
		return nil, &LoadError{Err: err}
	}
	return d, nil
}

// Check verifies identifier uniqueness. Dangling references are allowed:
// they are structural anomalies reported by the validation itself.
func (d *Data) Check() error {
	seen := make(map[string]string)
	claim := func(kind, id string) error {
		if prev, ok := seen[id]; ok {
			return fmt.Errorf("duplicate id %q (%s and %s)", id, prev, kind)
		}
		seen[id] = kind
		return nil
	}
	for _, s := range d.Signatures {
		if err := claim("signature", s.ID); err != nil {
			return err
		}
	}
	for _, c := range d.Certificates {
		if err := claim("certificate", c.ID); err != nil {
			return err
		}
	}
	for _, r := range d.Revocations {
		if err := claim("revocation", r.ID); err != nil {
			return err
		}
	}
	for _, t := range d.Timestamps {
		if err := claim("timestamp", t.ID); err != nil {
			return err
		}
	}
	for _, e := range d.EvidenceRecords {
		if err := claim("evidence record", e.ID); err != nil {
			return err
		}
	}
	return nil
}
