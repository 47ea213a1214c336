// Package report assembles the detailed and simple validation reports from
// the result of a validation run.
//
// The detailed report keeps every building block result and per-level
// conclusion, indexed by object id. The simple report condenses each
// signature, timestamp and evidence record into an indication, a
// sub-indication and its messages.
package report

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/georgepadayatti/goades/ades"
	"github.com/georgepadayatti/goades/diagnostic"
	"github.com/georgepadayatti/goades/i18n"
	"github.com/georgepadayatti/goades/policy"
	"github.com/georgepadayatti/goades/process"
)

// namespace is the name-based UUID namespace of report identifiers.
var namespace = uuid.MustParse("6f1f8a52-4c1e-5c55-9d39-5a1a7b0e0c47")

// Qualifier decides the qualification of a signature. Qualification is not
// computed by the engine; a Qualifier lets callers plug it into the simple
// report.
type Qualifier interface {
	Qualify(s *diagnostic.Signature, c *ades.Conclusion) string
}

// QualifierFunc adapts a function to a Qualifier.
type QualifierFunc func(s *diagnostic.Signature, c *ades.Conclusion) string

// Qualify calls f.
func (f QualifierFunc) Qualify(s *diagnostic.Signature, c *ades.Conclusion) string {
	return f(s, c)
}

// Reports are the two reports of one validation run.
type Reports struct {
	Detailed *DetailedReport
	Simple   *SimpleReport
}

// Builder builds the reports of a validation run.
type Builder struct {
	data      *diagnostic.Data
	policy    *policy.ValidationPolicy
	result    *process.Result
	qualifier Qualifier
	text      *i18n.Provider
}

// NewBuilder creates a builder over the inputs and the result of one run.
func NewBuilder(data *diagnostic.Data, pol *policy.ValidationPolicy, res *process.Result) *Builder {
	return &Builder{
		data:   data,
		policy: pol,
		result: res,
		text:   i18n.NewProvider(res.Locale),
	}
}

// WithQualifier sets the qualifier used for the simple report.
func (b *Builder) WithQualifier(q Qualifier) *Builder {
	b.qualifier = q
	return b
}

// Build assembles both reports. They share the same identifier.
func (b *Builder) Build() *Reports {
	id := b.reportID()
	return &Reports{
		Detailed: b.detailed(id),
		Simple:   b.simple(id),
	}
}

// reportID derives a name-based UUID from the document name, the validation
// time and the validated object ids, so identical runs get identical ids.
func (b *Builder) reportID() string {
	parts := []string{b.data.DocumentName, b.result.CurrentTime.UTC().Format(time.RFC3339Nano), b.result.Level.String()}
	for _, s := range b.result.Signatures {
		parts = append(parts, s.ID)
	}
	for _, t := range b.result.Timestamps {
		parts = append(parts, t.ID)
	}
	for _, e := range b.result.EvidenceRecords {
		parts = append(parts, e.ID)
	}
	return uuid.NewSHA1(namespace, []byte(strings.Join(parts, "|"))).String()
}

func (b *Builder) policyName() string {
	if b.policy == nil {
		return ""
	}
	return b.policy.Name
}
