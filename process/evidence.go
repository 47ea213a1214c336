package process

import (
	"sort"

	"github.com/georgepadayatti/goades/ades"
	"github.com/georgepadayatti/goades/bbb"
	"github.com/georgepadayatti/goades/diagnostic"
	"github.com/georgepadayatti/goades/poe"
	"github.com/georgepadayatti/goades/policy"
)

// evidenceRecord validates an evidence record: its building blocks, then
// its archive time-stamp chain, then the hash-tree algorithms at the
// production time of the first time-stamp.
func (x *executor) evidenceRecord(er *diagnostic.EvidenceRecord) *EvidenceRecordResult {
	eb := x.engine.EvidenceRecord(er)
	p := x.engine.NewProcess(bbb.KindER, er.ID)
	r := &EvidenceRecordResult{ID: er.ID, Blocks: eb, Result: p.Result()}
	defer x.logConclusion("evidence record validation", er.ID, p.Result())

	basic := eb.Basic().Conclusion
	p.Adopt(basic)
	if !basic.IsPassed() {
		return r
	}

	if len(er.TimestampIDs) == 0 {
		p.Eval(bbb.Constraint{Tag: ades.ERTimestampConclusive, Level: policy.LevelFail, Args: []any{"-"}})
		return r
	}
	var chain []*diagnostic.Timestamp
	for _, id := range er.TimestampIDs {
		t := x.data.Timestamp(id)
		if t == nil || x.timestamps[id] == nil {
			p.Eval(bbb.Constraint{Tag: ades.ERTimestampConclusive, Level: policy.LevelFail, Args: []any{id}, ID: id})
			return r
		}
		chain = append(chain, t)
	}
	sort.SliceStable(chain, func(i, j int) bool {
		return chain[i].ProductionTime.Before(chain[j].ProductionTime)
	})

	x.renewTimestamps(er.ID, chain)
	for _, t := range chain {
		if !p.Conclusive(ades.ERTimestampConclusive, policy.LevelFail, x.timestamps[t.ID].Conclusion(), t.ID) {
			return r
		}
	}

	at := chain[0].ProductionTime
	if !p.EvalCrypto(x.policy.Crypto(policy.ContextEvidenceRecord), bbb.EvidenceRecordUsages(er), at) {
		return r
	}
	if p.Result().IsPassed() {
		r.POE = &at
	}
	return r
}

// renewTimestamps walks the time-stamp chain of an evidence record latest
// first. Each accepted time-stamp proves the earlier ones at its production
// time, and a time-stamp that did not pass gets a past validation at the
// POE the later ones established.
func (x *executor) renewTimestamps(recordID string, chain []*diagnostic.Timestamp) {
	sa := &x.policy.Timestamp.SignedAttributes
	for i := len(chain) - 1; i >= 0; i-- {
		t := chain[i]
		tr := x.timestamps[t.ID]
		if !tr.Basic().IsPassed() {
			tb := tr.Blocks
			tr.PastValidation = x.pastValidation(t.ID, policy.ContextTimestamp, bbb.TimestampUsages(t, sa),
				tb.CV, tb.XCV, tb.Chain, tr.Basic().Conclusion)
			if !tr.PastValidation.IsPassed() {
				continue
			}
		}
		earlier := make([]string, 0, i)
		for _, e := range chain[:i] {
			earlier = append(earlier, e.ID)
		}
		changed := x.poe.Extend(t.ProductionTime, poe.SourceEvidenceRecord, recordID, earlier...)
		if len(changed) > 0 {
			x.log.Debug("poe extended", "provider", t.ID, "record", recordID, "time", t.ProductionTime, "objects", changed)
		}
	}
}
