package process

import (
	"sort"

	"github.com/georgepadayatti/goades/ades"
	"github.com/georgepadayatti/goades/bbb"
	"github.com/georgepadayatti/goades/diagnostic"
	"github.com/georgepadayatti/goades/poe"
	"github.com/georgepadayatti/goades/policy"
)

// extendWithEvidenceRecords lets every passed evidence record prove the
// objects it covers at its POE.
func (x *executor) extendWithEvidenceRecords(records []*EvidenceRecordResult) {
	for _, r := range records {
		if r.POE == nil {
			continue
		}
		er := x.data.EvidenceRecord(r.ID)
		changed := x.poe.Extend(*r.POE, poe.SourceEvidenceRecord, er.ID, objectIDs(er.CoveredObjects)...)
		if len(changed) > 0 {
			x.log.Debug("poe extended", "provider", er.ID, "time", *r.POE, "objects", changed)
		}
	}
}

func isArchiveTimestamp(t *diagnostic.Timestamp) bool {
	return t.IsArchive() && t.Type != diagnostic.TimestampEvidenceRecord
}

// extendWithArchiveTimestamps processes the archive timestamps latest first,
// so that each one is judged with the POE the later ones established.
// Timestamps that did not pass get a past validation at their own POE.
func (x *executor) extendWithArchiveTimestamps() {
	var ordered []*diagnostic.Timestamp
	for _, t := range x.data.Timestamps {
		if isArchiveTimestamp(t) {
			ordered = append(ordered, t)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ProductionTime.After(ordered[j].ProductionTime)
	})

	sa := &x.policy.Timestamp.SignedAttributes
	for _, t := range ordered {
		tr := x.timestamps[t.ID]
		if !tr.Basic().IsPassed() {
			tb := tr.Blocks
			tr.PastValidation = x.pastValidation(t.ID, policy.ContextTimestamp, bbb.TimestampUsages(t, sa),
				tb.CV, tb.XCV, tb.Chain, tr.Basic().Conclusion)
			if !tr.PastValidation.IsPassed() {
				continue
			}
		}
		x.archiveAccepted[t.ID] = true
		changed := x.poe.Extend(t.ProductionTime, poe.SourceArchiveTimestamp, t.ID, objectIDs(t.TimestampedObjects)...)
		if len(changed) > 0 {
			x.log.Debug("poe extended", "provider", t.ID, "time", t.ProductionTime, "objects", changed)
		}
	}
}

// archival judges a signature with the POE of its archive timestamps and
// evidence records, running past signature validation when the long-term
// result did not pass.
func (x *executor) archival(sr *SignatureResult) {
	s := x.data.Signature(sr.ID)
	sb := sr.Blocks
	ltv := sr.LongTermData.Conclusion
	p := x.engine.NewProcess(bbb.KindArch, s.ID)
	sr.Archival = p.Result()

	if !acceptable(ltv) {
		p.Conclusive(ades.ArchLTVAcceptable, policy.LevelFail, ltv)
		x.logConclusion("archival data validation", s.ID, p.Result())
		return
	}
	p.Eval(bbb.Constraint{Tag: ades.ArchLTVAcceptable, Level: policy.LevelFail, OK: true})
	p.MergeNotes(ltv)

	covering := x.data.TimestampsCovering(s.ID)
	sort.SliceStable(covering, func(i, j int) bool {
		return covering[i].ProductionTime.After(covering[j].ProductionTime)
	})
	for _, t := range covering {
		if !isArchiveTimestamp(t) {
			continue
		}
		p.Eval(bbb.Constraint{
			Tag:   ades.ArchTimestampAcceptable,
			Level: policy.LevelInform,
			OK:    x.archiveAccepted[t.ID],
			Args:  []any{t.ID},
			ID:    t.ID,
		})
	}
	for _, id := range sr.EvidenceRecordIDs {
		p.Eval(bbb.Constraint{
			Tag:   ades.ArchEvidenceRecord,
			Level: policy.LevelInform,
			OK:    x.records[id].Result.IsPassed(),
			Args:  []any{id},
			ID:    id,
		})
	}

	if !ltv.IsPassed() {
		usages := bbb.SignatureUsages(s, x.policy.SignedAttributes(sb.Ctx))
		psv := x.pastValidation(s.ID, sb.Ctx, usages, sb.CV, sb.XCV, sb.Chain, ltv)
		p.Child(psv)
		p.Conclusive(ades.PSVPastSignatureConclusive, policy.LevelFail, psv.Conclusion)
	}
	x.logConclusion("archival data validation", s.ID, p.Result())
}
