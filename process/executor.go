// Package process combines the building blocks into the validation
// processes of ETSI EN 319 102-1: basic signature validation, timestamp
// validation, long-term data validation, archival data validation with past
// signature validation, and evidence record validation.
//
// Execute is a pure function of its inputs. Every run owns its engine, its
// POE tracker and its results, so concurrent runs never share state.
package process

import (
	"errors"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/georgepadayatti/goades/bbb"
	"github.com/georgepadayatti/goades/diagnostic"
	"github.com/georgepadayatti/goades/i18n"
	"github.com/georgepadayatti/goades/poe"
	"github.com/georgepadayatti/goades/policy"
)

// ErrPrecondition is wrapped by every PreconditionError.
var ErrPrecondition = errors.New("precondition failed")

// PreconditionError reports a missing execution argument. It is returned
// before any processing.
type PreconditionError struct {
	// Argument is the missing argument, e.g. "diagnostic data".
	Argument string
}

func (e *PreconditionError) Error() string {
	return "The " + e.Argument + " is missing"
}

func (e *PreconditionError) Unwrap() error {
	return ErrPrecondition
}

// Options are the execution parameters.
type Options struct {
	// CurrentTime is the validation time. Required.
	CurrentTime time.Time
	// Level is the highest process to run. Required.
	Level ValidationLevel
	// IncludeSemantics asks the report for indication semantics and
	// extension hints.
	IncludeSemantics bool
	// Locale selects the message language; empty means English.
	Locale string
	// Logger receives debug output. Nil discards it.
	Logger *slog.Logger
}

func (o *Options) check(data *diagnostic.Data, pol *policy.ValidationPolicy) error {
	switch {
	case data == nil:
		return &PreconditionError{Argument: "diagnostic data"}
	case pol == nil:
		return &PreconditionError{Argument: "validation policy"}
	case o.CurrentTime.IsZero():
		return &PreconditionError{Argument: "current time"}
	case !o.Level.IsValid():
		return &PreconditionError{Argument: "validation level"}
	}
	return nil
}

type executor struct {
	data      *diagnostic.Data
	policy    *policy.ValidationPolicy
	now       time.Time
	level     ValidationLevel
	semantics bool
	log       *slog.Logger
	text      *i18n.Provider
	engine    *bbb.Engine
	poe       *poe.Tracker

	timestamps map[string]*TimestampResult
	records    map[string]*EvidenceRecordResult
	// archiveAccepted marks the archive timestamps that passed or were
	// rescued by past validation.
	archiveAccepted map[string]bool
}

// Execute validates every signature, timestamp and evidence record of data
// against pol up to opts.Level.
func Execute(data *diagnostic.Data, pol *policy.ValidationPolicy, opts Options) (*Result, error) {
	if err := opts.check(data, pol); err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	text := i18n.NewProvider(opts.Locale)

	x := &executor{
		data:            data,
		policy:          pol,
		now:             opts.CurrentTime,
		level:           opts.Level,
		semantics:       opts.IncludeSemantics,
		log:             log,
		text:            text,
		engine:          bbb.NewEngine(data, pol, text, log),
		poe:             poe.NewTracker(opts.CurrentTime),
		timestamps:      make(map[string]*TimestampResult),
		records:         make(map[string]*EvidenceRecordResult),
		archiveAccepted: make(map[string]bool),
	}
	return x.run(), nil
}

func (x *executor) run() *Result {
	res := &Result{
		Level:            x.level,
		CurrentTime:      x.now,
		IncludeSemantics: x.semantics,
		Locale:           x.text.Language().String(),
	}
	x.log.Debug("validation started", "level", x.level.String(), "time", x.now,
		"signatures", len(x.data.Signatures), "timestamps", len(x.data.Timestamps),
		"evidenceRecords", len(x.data.EvidenceRecords))

	for _, s := range x.data.Signatures {
		res.Signatures = append(res.Signatures, x.basic(s))
	}

	if x.level >= Timestamps {
		for _, t := range x.data.Timestamps {
			tr := &TimestampResult{ID: t.ID, Type: t.Type, Blocks: x.engine.Timestamp(t, x.now)}
			x.timestamps[t.ID] = tr
			res.Timestamps = append(res.Timestamps, tr)
		}
		x.extendWithTimestamps()
		for _, er := range x.data.EvidenceRecords {
			r := x.evidenceRecord(er)
			x.records[er.ID] = r
			res.EvidenceRecords = append(res.EvidenceRecords, r)
		}
	}

	if x.level >= LongTermData {
		for _, sr := range res.Signatures {
			x.longTermData(sr)
		}
	}

	if x.level >= ArchivalData {
		x.extendWithEvidenceRecords(res.EvidenceRecords)
		x.extendWithArchiveTimestamps()
		for _, sr := range res.Signatures {
			x.archival(sr)
		}
	}

	res.POE = make(map[string]poe.ProofOfExistence)
	for _, id := range x.poe.IDs() {
		res.POE[id] = x.poe.Get(id)
	}
	x.log.Debug("validation finished", "level", x.level.String())
	return res
}

func (x *executor) basic(s *diagnostic.Signature) *SignatureResult {
	sr := &SignatureResult{ID: s.ID, Blocks: x.engine.Signature(s, x.now)}
	for _, t := range x.data.TimestampsCovering(s.ID) {
		sr.TimestampIDs = append(sr.TimestampIDs, t.ID)
	}
	for _, er := range x.data.EvidenceRecordsCovering(s.ID) {
		sr.EvidenceRecordIDs = append(sr.EvidenceRecordIDs, er.ID)
	}
	x.logConclusion("basic signature validation", s.ID, sr.Basic())
	return sr
}

// extendWithTimestamps lets every PASSED content, signature and validation
// data timestamp prove its timestamped objects, in production-time order.
func (x *executor) extendWithTimestamps() {
	var ordered []*diagnostic.Timestamp
	for _, t := range x.data.Timestamps {
		if !t.IsArchive() {
			ordered = append(ordered, t)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ProductionTime.Before(ordered[j].ProductionTime)
	})
	for _, t := range ordered {
		if !x.timestamps[t.ID].Basic().IsPassed() {
			continue
		}
		changed := x.poe.Extend(t.ProductionTime, poe.SourceTimestamp, t.ID, objectIDs(t.TimestampedObjects)...)
		if len(changed) > 0 {
			x.log.Debug("poe extended", "provider", t.ID, "time", t.ProductionTime, "objects", changed)
		}
	}
}

func objectIDs(refs []diagnostic.ObjectRef) []string {
	ids := make([]string, 0, len(refs))
	for _, r := range refs {
		ids = append(ids, r.ID)
	}
	return ids
}
