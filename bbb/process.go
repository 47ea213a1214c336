package bbb

import (
	"time"

	"github.com/georgepadayatti/goades/ades"
	"github.com/georgepadayatti/goades/diagnostic"
	"github.com/georgepadayatti/goades/policy"
)

// Constraint is one check of a validation process built on top of the
// building blocks. It follows the same level semantics as the blocks.
type Constraint struct {
	Tag   ades.MessageTag
	Level policy.Level
	OK    bool
	Args  []any
	Info  string
	ID    string
	// Verdict replaces the failure table entry when set.
	Verdict *ades.Conclusion
}

// Process accumulates the records and conclusion of a validation process:
// long-term data, archival data, past signature validation or evidence
// record validation.
type Process struct {
	b *block
}

// NewProcess starts a process result of the given kind for object id.
func (e *Engine) NewProcess(kind Kind, id string) *Process {
	return &Process{b: e.newBlock(kind, id)}
}

// SetRole selects the role-specific failure table entries.
func (p *Process) SetRole(r policy.Role) {
	p.b.role = roleOf(r)
}

// Eval evaluates a constraint. It returns false when the constraint failed
// at FAIL level.
func (p *Process) Eval(c Constraint) bool {
	chk := check{tag: c.Tag, level: c.Level, ok: c.OK, args: c.Args, info: c.Info, id: c.ID}
	if c.Verdict != nil {
		v := verdict{c.Verdict.Indication, c.Verdict.SubIndication}
		chk.verdict = &v
	}
	return p.b.eval(chk)
}

// Conclusive records whether a nested conclusion passed; see the building
// block combination rules.
func (p *Process) Conclusive(tag ades.MessageTag, level policy.Level, child *ades.Conclusion, args ...any) bool {
	return p.b.conclusive(tag, level, child, args...)
}

// Carry re-raises a check that failed in a building block and that the
// process does not re-judge. The verdict follows the failure table for role.
func (p *Process) Carry(rec *Record, r policy.Role) {
	if rec == nil || rec.Status != ades.StatusNotOK {
		return
	}
	copied := *rec
	p.b.result.Records = append(p.b.result.Records, &copied)
	p.b.setWorse(failureFor(rec.Name.Key, roleOf(r)))
	if rec.Error != nil {
		p.b.result.Conclusion.AddError(*rec.Error)
	}
}

// EvalCrypto checks the usages against c at time at, one record per
// distinct usage.
func (p *Process) EvalCrypto(c *policy.CryptographicConstraint, usages []Usage, at time.Time) bool {
	return p.b.evalCrypto(c, usages, at)
}

// Adopt takes over the verdict and the notes of c.
func (p *Process) Adopt(c *ades.Conclusion) {
	p.b.result.Conclusion.Adopt(c)
}

// MergeNotes takes over the warnings and infos of c.
func (p *Process) MergeNotes(c *ades.Conclusion) {
	p.b.result.Conclusion.MergeNotes(c, false)
}

// Info adds an info note.
func (p *Process) Info(tag ades.MessageTag, args ...any) {
	p.b.info(tag, args...)
}

// Child attaches a nested result.
func (p *Process) Child(r *Result) {
	p.b.child(r)
}

// Result returns the process result.
func (p *Process) Result() *Result {
	return p.b.result
}

// CertificateUsage is the signature algorithm usage of a certificate.
func CertificateUsage(c *diagnostic.Certificate) Usage {
	return signatureUsage(c.Crypto, ades.PositionCertificate)
}

// EvidenceRecordUsages lists the hash-tree digest algorithms of an
// evidence record.
func EvidenceRecordUsages(er *diagnostic.EvidenceRecord) []Usage {
	var usages []Usage
	for _, m := range er.DigestMatchers {
		if m.Type == diagnostic.MatcherEvidenceRecordOrphan || m.DigestAlgorithm == "" {
			continue
		}
		usages = append(usages, digestUsage(m.DigestAlgorithm, ades.PositionEvidenceRecordHash))
	}
	return usages
}

// SelectedRevocation returns the status entry of cert in the revocation
// datum selected by its CRS within an XCV result, or nil.
func SelectedRevocation(xcv *Result, cert *diagnostic.Certificate) *diagnostic.CertificateRevocation {
	crs := xcv.Child(KindSubXCV, cert.ID).Child(KindCRS, cert.ID)
	if crs == nil || crs.RevocationID == "" {
		return nil
	}
	return cert.CertificateRevocation(crs.RevocationID)
}

// FailedCertificates returns the ids of the chain certificates whose subXCV
// result has a non-OK record for tag.
func FailedCertificates(xcv *Result, tag ades.MessageTag) []string {
	if xcv == nil {
		return nil
	}
	var ids []string
	for _, sub := range xcv.Children {
		if sub.Kind != KindSubXCV {
			continue
		}
		if rec := sub.Record(tag); rec != nil && rec.Status == ades.StatusNotOK {
			ids = append(ids, sub.ID)
		}
	}
	return ids
}
