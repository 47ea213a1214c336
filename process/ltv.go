package process

import (
	"time"

	"github.com/georgepadayatti/goades/ades"
	"github.com/georgepadayatti/goades/bbb"
	"github.com/georgepadayatti/goades/diagnostic"
	"github.com/georgepadayatti/goades/poe"
	"github.com/georgepadayatti/goades/policy"
)

// resolvable are the INDETERMINATE sub-indications a proof of existence can
// still turn into PASSED.
var resolvable = map[ades.SubIndication]bool{
	ades.SubIndicationRevokedNoPOE:                  true,
	ades.SubIndicationRevokedCANoPOE:                true,
	ades.SubIndicationOutOfBoundsNoPOE:              true,
	ades.SubIndicationOutOfBoundsNotRevoked:         true,
	ades.SubIndicationCryptoConstraintsFailureNoPOE: true,
	ades.SubIndicationTryLater:                      true,
}

func acceptable(c *ades.Conclusion) bool {
	return c.IsPassed() || (c.IsIndeterminate() && resolvable[c.SubIndication])
}

// timestampOrder ranks timestamp types by the order they must have been
// produced in.
var timestampOrder = map[string]int{
	diagnostic.TimestampContent:        0,
	diagnostic.TimestampSignature:      1,
	diagnostic.TimestampValidationData: 2,
	diagnostic.TimestampArchive:        3,
	diagnostic.TimestampDocument:       3,
	diagnostic.TimestampContainer:      3,
}

// longTermData re-judges the basic result of a signature at its
// best-signature-time.
func (x *executor) longTermData(sr *SignatureResult) {
	s := x.data.Signature(sr.ID)
	sb := sr.Blocks
	basic := sb.Basic().Conclusion
	p := x.engine.NewProcess(bbb.KindLTV, s.ID)
	sr.LongTermData = p.Result()

	if !acceptable(basic) {
		p.Conclusive(ades.LTVBasicAcceptable, policy.LevelFail, basic)
		x.logConclusion("long-term data validation", s.ID, p.Result())
		return
	}
	p.Eval(bbb.Constraint{Tag: ades.LTVBasicAcceptable, Level: policy.LevelFail, OK: true})
	p.MergeNotes(basic)

	for _, t := range x.data.TimestampsCovering(s.ID) {
		if t.IsArchive() {
			continue
		}
		p.Eval(bbb.Constraint{
			Tag:   ades.LTVTimestampConclusive,
			Level: policy.LevelInform,
			OK:    x.timestamps[t.ID].Basic().IsPassed(),
			Args:  []any{t.ID},
			ID:    t.ID,
		})
	}

	bst := x.poe.Get(s.ID)
	at := bst.Time
	sr.BestSignatureTime = &at
	if bst.Source != poe.SourceBaseline {
		p.Info(ades.LTVBestSignatureTimeInfo, bst.Time, bst.ProviderID)
	}

	if !basic.IsPassed() {
		x.resolveAtBST(p, s, sb, bst.Time)
	}

	p.Eval(bbb.Constraint{
		Tag:   ades.LTVTimestampOrder,
		Level: x.policy.Timestamp.Coherence.Level,
		OK:    x.timestampsCoherent(s.ID),
	})
	delay := x.policy.SignatureConstraints(sb.Ctx).TimestampDelay
	if s.ClaimedSigningTime != nil && bst.Source != poe.SourceBaseline {
		p.Eval(bbb.Constraint{
			Tag:   ades.LTVSigningTimeDelay,
			Level: delay.Level,
			OK:    !s.ClaimedSigningTime.Add(delay.Value).Before(bst.Time),
		})
	}
	x.logConclusion("long-term data validation", s.ID, p.Result())
}

// resolveAtBST re-judges at the best-signature-time every condition that
// failed at the current time. Each failure is checked on its own, so the
// worst condition still unresolved at the best-signature-time decides.
func (x *executor) resolveAtBST(p *bbb.Process, s *diagnostic.Signature, sb *bbb.SignatureBlocks, bst time.Time) {
	chain := x.validatedChain(sb.XCV, sb.Chain)

	for _, r := range sb.Results() {
		if r != sb.XCV {
			carryUnresolvable(p, r, policy.RoleSigningCertificate)
		}
	}
	for _, cc := range chain {
		if cc.sub.IsPassed() {
			continue
		}
		carryUnresolvable(p, cc.sub, cc.role)
		p.SetRole(cc.role)
		if failedWith(cc.sub, ades.XCVNotRevoked) {
			p.Eval(bbb.Constraint{
				Tag:   ades.LTVRevocationAfterBST,
				Level: policy.LevelFail,
				OK:    cc.entry.RevocationDate != nil && bst.Before(*cc.entry.RevocationDate),
				ID:    cc.cert.ID,
			})
		}
		if failedWith(cc.sub, ades.XCVNotOnHold) {
			before := cc.entry.RevocationDate != nil && bst.Before(*cc.entry.RevocationDate)
			p.Eval(bbb.Constraint{Tag: ades.LTVBSTBeforeSuspension, Level: policy.LevelFail, OK: before, ID: cc.cert.ID})
		}
		if failedWith(cc.sub, ades.XCVRevocationPresent) || failedWith(cc.sub, ades.XCVAcceptableRevocation) ||
			failedWith(cc.sub, ades.XCVRevocationFreshness) {
			maxAge := x.policy.Certificate(sb.Ctx, cc.role).RevocationFreshness.Value
			fresh := cc.rev != nil && bbb.Fresh(cc.rev, maxAge, bst)
			p.Eval(bbb.Constraint{Tag: ades.LTVRevocationFreshAtBST, Level: policy.LevelFail, OK: fresh, ID: cc.cert.ID})
		}
		if failedWith(cc.sub, ades.XCVValidityRange) {
			p.Eval(bbb.Constraint{Tag: ades.LTVBSTAfterIssuance, Level: policy.LevelFail, OK: !bst.Before(cc.cert.NotBefore), ID: cc.cert.ID})
			p.Eval(bbb.Constraint{Tag: ades.LTVBSTBeforeExpiration, Level: policy.LevelFail, OK: bst.Before(cc.cert.NotAfter), ID: cc.cert.ID})
			if cc.sub.Conclusion.SubIndication == ades.SubIndicationOutOfBoundsNotRevoked {
				known := cc.entry != nil && cc.entry.Status == diagnostic.StatusGood
				p.Eval(bbb.Constraint{Tag: ades.LTVKnownNotRevoked, Level: policy.LevelFail, OK: known, ID: cc.cert.ID})
			}
		}
	}
	p.SetRole(policy.RoleSigningCertificate)

	usages := bbb.SignatureUsages(s, x.policy.SignedAttributes(sb.Ctx))
	if len(x.cryptoFailures(sb.Ctx, usages, chain, x.now)) > 0 {
		failures := x.cryptoFailures(sb.Ctx, usages, chain, bst)
		p.Eval(bbb.Constraint{Tag: ades.LTVAlgorithmsReliableAtBST, Level: policy.LevelFail, OK: len(failures) == 0})
	}
}

// rejudged are the checks a proof of existence can resolve. The long-term
// process re-evaluates them at the best-signature-time.
var rejudged = map[ades.MessageTag]bool{
	ades.XCVNotRevoked:           true,
	ades.XCVNotOnHold:            true,
	ades.XCVRevocationPresent:    true,
	ades.XCVAcceptableRevocation: true,
	ades.XCVRevocationFreshness:  true,
	ades.XCVValidityRange:        true,
	ades.CryptoConstraintsMet:    true,
}

// carryUnresolvable keeps the failed checks of r that no proof of existence
// can resolve.
func carryUnresolvable(p *bbb.Process, r *bbb.Result, role policy.Role) {
	for _, rec := range r.RecordsWithStatus(ades.StatusNotOK) {
		if !rejudged[rec.Name.Key] {
			p.Carry(rec, role)
		}
	}
}

// timestampsCoherent reports whether the passed timestamps of a signature
// were produced in type order: content, signature, validation data, archive.
func (x *executor) timestampsCoherent(signatureID string) bool {
	var passed []*diagnostic.Timestamp
	for _, t := range x.data.TimestampsCovering(signatureID) {
		if _, ranked := timestampOrder[t.Type]; ranked && x.timestamps[t.ID].Basic().IsPassed() {
			passed = append(passed, t)
		}
	}
	for _, a := range passed {
		for _, b := range passed {
			if timestampOrder[a.Type] < timestampOrder[b.Type] && a.ProductionTime.After(b.ProductionTime) {
				return false
			}
		}
	}
	return true
}

func (x *executor) logConclusion(stage, id string, r *bbb.Result) {
	x.log.Debug(stage, "id", id,
		"indication", string(r.Conclusion.Indication),
		"subIndication", string(r.Conclusion.SubIndication))
}
