// Package poe tracks proofs of existence during one validation run.
//
// A proof of existence (POE) is the earliest time at which an object is
// known to have existed. Every object starts at the run's baseline time
// (the validation time) and can only move earlier, when a valid timestamp
// or evidence record covering it was produced before its current POE.
package poe

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// ErrNoPOE is returned when an object has no proof of existence.
var ErrNoPOE = errors.New("no proof of existence available")

// Source is the kind of evidence a POE comes from.
type Source int

const (
	// SourceBaseline is the validation time every object starts from.
	SourceBaseline Source = iota
	// SourceTimestamp is a signature, content or validation data timestamp.
	SourceTimestamp
	// SourceArchiveTimestamp is an archive, document or container timestamp.
	SourceArchiveTimestamp
	// SourceEvidenceRecord is an evidence record.
	SourceEvidenceRecord
)

// String returns the string representation of the source.
func (s Source) String() string {
	switch s {
	case SourceBaseline:
		return "baseline"
	case SourceTimestamp:
		return "timestamp"
	case SourceArchiveTimestamp:
		return "archive_timestamp"
	case SourceEvidenceRecord:
		return "evidence_record"
	default:
		return fmt.Sprintf("unknown(%d)", s)
	}
}

// ProofOfExistence is evidence that an object existed at Time.
type ProofOfExistence struct {
	Time   time.Time
	Source Source
	// ProviderID is the id of the timestamp or evidence record, empty for
	// the baseline.
	ProviderID string
}

// IsValidAt reports whether the object is proven to exist at time at.
func (p ProofOfExistence) IsValidAt(at time.Time) bool {
	return !at.Before(p.Time)
}

// Tracker holds the current POE of every object of a run. It is not safe
// for concurrent use and must not outlive the run.
type Tracker struct {
	baseline time.Time
	poes     map[string]ProofOfExistence
}

// NewTracker creates a tracker whose objects all start at baseline.
func NewTracker(baseline time.Time) *Tracker {
	return &Tracker{
		baseline: baseline,
		poes:     make(map[string]ProofOfExistence),
	}
}

// Baseline returns the time every object starts from.
func (t *Tracker) Baseline() time.Time {
	return t.baseline
}

// Get returns the POE of an object. Objects never extended are at the
// baseline.
func (t *Tracker) Get(id string) ProofOfExistence {
	if p, ok := t.poes[id]; ok {
		return p
	}
	return ProofOfExistence{Time: t.baseline, Source: SourceBaseline}
}

// Lowest returns the POE time of an object.
func (t *Tracker) Lowest(id string) time.Time {
	return t.Get(id).Time
}

// Lookup returns the POE of an object that was extended by some evidence.
func (t *Tracker) Lookup(id string) (ProofOfExistence, error) {
	p, ok := t.poes[id]
	if !ok {
		return ProofOfExistence{}, fmt.Errorf("object %q: %w", id, ErrNoPOE)
	}
	return p, nil
}

// Extend records that the objects existed at time at, proven by provider.
// A POE only moves earlier; later or equal times are ignored. It returns
// the ids whose POE changed.
func (t *Tracker) Extend(at time.Time, source Source, providerID string, ids ...string) []string {
	var changed []string
	for _, id := range ids {
		if id == "" || !at.Before(t.Lowest(id)) {
			continue
		}
		t.poes[id] = ProofOfExistence{Time: at, Source: source, ProviderID: providerID}
		changed = append(changed, id)
	}
	return changed
}

// ExistedBefore reports whether the object is proven to exist strictly
// before time at.
func (t *Tracker) ExistedBefore(id string, at time.Time) bool {
	return t.Lowest(id).Before(at)
}

// IDs returns the ids of the extended objects in sorted order.
func (t *Tracker) IDs() []string {
	ids := make([]string, 0, len(t.poes))
	for id := range t.poes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
