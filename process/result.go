package process

import (
	"time"

	"github.com/georgepadayatti/goades/ades"
	"github.com/georgepadayatti/goades/bbb"
	"github.com/georgepadayatti/goades/poe"
)

// Result is the outcome of one execution. It is read-only once returned.
type Result struct {
	Level       ValidationLevel
	CurrentTime time.Time
	// IncludeSemantics and Locale are the report options of the run.
	IncludeSemantics bool
	Locale           string

	Signatures      []*SignatureResult
	Timestamps      []*TimestampResult
	EvidenceRecords []*EvidenceRecordResult

	// POE holds the proofs of existence established during the run, by
	// object id.
	POE map[string]poe.ProofOfExistence
}

// SignatureResult holds the per-level conclusions of a signature.
type SignatureResult struct {
	ID     string
	Blocks *bbb.SignatureBlocks
	// LongTermData is nil below LONG_TERM_DATA.
	LongTermData *bbb.Result
	// Archival is nil below ARCHIVAL_DATA.
	Archival *bbb.Result
	// BestSignatureTime is set from LONG_TERM_DATA on.
	BestSignatureTime *time.Time
	// TimestampIDs are the timestamps covering the signature, in document
	// order.
	TimestampIDs []string
	// EvidenceRecordIDs are the evidence records covering the signature.
	EvidenceRecordIDs []string
}

// Basic returns the basic validation result.
func (s *SignatureResult) Basic() *bbb.Result {
	return s.Blocks.Basic()
}

// Final returns the result of the highest executed level.
func (s *SignatureResult) Final() *bbb.Result {
	switch {
	case s.Archival != nil:
		return s.Archival
	case s.LongTermData != nil:
		return s.LongTermData
	}
	return s.Basic()
}

// Conclusion returns the conclusion of the highest executed level.
func (s *SignatureResult) Conclusion() *ades.Conclusion {
	return s.Final().Conclusion
}

// TimestampResult holds the conclusions of a timestamp.
type TimestampResult struct {
	ID     string
	Type   string
	Blocks *bbb.TimestampBlocks
	// PastValidation is set when an archive or evidence record timestamp
	// that did not pass was re-judged at its own POE.
	PastValidation *bbb.Result
}

// Basic returns the basic validation result of the timestamp.
func (t *TimestampResult) Basic() *bbb.Result {
	return t.Blocks.Basic()
}

// Conclusion returns the past validation conclusion when there is one,
// otherwise the basic one.
func (t *TimestampResult) Conclusion() *ades.Conclusion {
	if t.PastValidation != nil {
		return t.PastValidation.Conclusion
	}
	return t.Basic().Conclusion
}

// EvidenceRecordResult holds the conclusion of an evidence record.
type EvidenceRecordResult struct {
	ID     string
	Blocks *bbb.EvidenceRecordBlocks
	Result *bbb.Result
	// POE is the production time of the first record timestamp, set when
	// the record passed.
	POE *time.Time
}

// Conclusion returns the conclusion of the evidence record process.
func (e *EvidenceRecordResult) Conclusion() *ades.Conclusion {
	return e.Result.Conclusion
}

// Signature returns the result of the signature with the given id.
func (r *Result) Signature(id string) *SignatureResult {
	for _, s := range r.Signatures {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Timestamp returns the result of the timestamp with the given id.
func (r *Result) Timestamp(id string) *TimestampResult {
	for _, t := range r.Timestamps {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// EvidenceRecord returns the result of the evidence record with the given
// id.
func (r *Result) EvidenceRecord(id string) *EvidenceRecordResult {
	for _, e := range r.EvidenceRecords {
		if e.ID == id {
			return e
		}
	}
	return nil
}
