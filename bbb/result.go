// Package bbb implements the basic building blocks of ETSI EN 319 102-1:
// format checking, identification of the signing certificate, validation
// context initialization, cryptographic verification, X.509 certificate
// validation with its revocation sub-blocks, and signature acceptance
// validation.
package bbb

import (
	"time"

	"github.com/georgepadayatti/goades/ades"
)

// Kind names a building block.
type Kind string

const (
	KindFC     Kind = "FC"
	KindICS    Kind = "ICS"
	KindVCI    Kind = "VCI"
	KindCV     Kind = "CV"
	KindXCV    Kind = "XCV"
	KindSubXCV Kind = "SUB_XCV"
	KindCRS    Kind = "CRS"
	KindRAC    Kind = "RAC"
	KindRFC    Kind = "RFC"
	KindSAV    Kind = "SAV"
	KindPSV    Kind = "PSV"
	KindBasic  Kind = "BASIC"
	KindLTV    Kind = "LONG_TERM_DATA"
	KindArch   Kind = "ARCHIVAL_DATA"
	KindER     Kind = "EVIDENCE_RECORD"
)

// Record is one evaluated constraint. Records are never modified once
// appended to a result.
type Record struct {
	Name           ades.Message  `json:"name"`
	Status         ades.Status   `json:"status"`
	Error          *ades.Message `json:"error,omitempty"`
	Warning        *ades.Message `json:"warning,omitempty"`
	Info           *ades.Message `json:"info,omitempty"`
	AdditionalInfo string        `json:"additionalInfo,omitempty"`
	// ID is the object the record is about, when it differs from the
	// result's own object (e.g. a revocation in CRS).
	ID string `json:"id,omitempty"`
}

// Result is the outcome of one building block.
type Result struct {
	Kind       Kind             `json:"kind"`
	ID         string           `json:"id,omitempty"`
	Title      string           `json:"title,omitempty"`
	Conclusion *ades.Conclusion `json:"conclusion"`
	Records    []*Record        `json:"records,omitempty"`
	Children   []*Result        `json:"children,omitempty"`

	// RevocationID is the revocation datum of a RAC result, or the latest
	// acceptable one of a CRS result.
	RevocationID string `json:"revocationId,omitempty"`
	// ProductionDate is the production time of that revocation datum.
	ProductionDate *time.Time `json:"productionDate,omitempty"`
	// TrustAnchor marks a subXCV result that stopped at a trust anchor.
	TrustAnchor bool `json:"trustAnchor,omitempty"`
}

func newResult(kind Kind, id string) *Result {
	return &Result{Kind: kind, ID: id, Conclusion: ades.NewConclusion()}
}

// IsPassed reports whether the block concluded PASSED. A nil result, i.e. a
// block that was not executed, counts as passed.
func (r *Result) IsPassed() bool {
	return r == nil || r.Conclusion.IsPassed()
}

// IsFailed reports whether the block concluded FAILED.
func (r *Result) IsFailed() bool {
	return r != nil && r.Conclusion.IsFailed()
}

// Child returns the first child of the given kind and id.
func (r *Result) Child(kind Kind, id string) *Result {
	if r == nil {
		return nil
	}
	for _, c := range r.Children {
		if c.Kind == kind && (id == "" || c.ID == id) {
			return c
		}
	}
	return nil
}

// Record returns the first record with the given question tag.
func (r *Result) Record(tag ades.MessageTag) *Record {
	if r == nil {
		return nil
	}
	for _, rec := range r.Records {
		if rec.Name.Key == tag {
			return rec
		}
	}
	return nil
}

// RecordsWithStatus returns the records with the given status, in order.
func (r *Result) RecordsWithStatus(status ades.Status) []*Record {
	if r == nil {
		return nil
	}
	var out []*Record
	for _, rec := range r.Records {
		if rec.Status == status {
			out = append(out, rec)
		}
	}
	return out
}

// Walk visits r and every nested result depth first.
func (r *Result) Walk(fn func(*Result)) {
	if r == nil {
		return
	}
	fn(r)
	for _, c := range r.Children {
		c.Walk(fn)
	}
}
