package bbb

import (
	"time"

	"github.com/georgepadayatti/goades/ades"
	"github.com/georgepadayatti/goades/diagnostic"
	"github.com/georgepadayatti/goades/policy"
)

// rac decides whether one revocation datum is acceptable to judge the
// status of cert at time at.
func (e *Engine) rac(ctx policy.Context, cert *diagnostic.Certificate, r policy.Role, rev *diagnostic.Revocation, entry *diagnostic.CertificateRevocation, at time.Time) *Result {
	b := e.newBlock(KindRAC, rev.ID)
	b.result.RevocationID = rev.ID
	produced := rev.ProductionDate
	b.result.ProductionDate = &produced

	consistent, info := e.consistency(cert, rev, entry)
	b.eval(check{tag: ades.XCVRevocationConsistent, level: policy.LevelFail, ok: consistent, info: info})

	rc := &e.policy.Revocation
	signer := e.data.Certificate(rev.SigningCertificateID)
	validAtProduction := signer != nil &&
		!rev.ProductionDate.Before(signer.NotBefore) && !rev.ProductionDate.After(signer.NotAfter)
	b.eval(check{tag: ades.RACIssuerValidAtProduction, level: rc.IssuerValidAtProductionTime.Level, ok: validAtProduction})

	cc := e.policy.Certificate(ctx, r)
	nextUpdateLevel := cc.CRLNextUpdatePresent.Level
	if rev.Type == diagnostic.RevocationOCSP {
		b.eval(check{tag: ades.RACNotSelfIssuedOCSP, level: rc.SelfIssuedOCSP.Level, ok: rev.SigningCertificateID != cert.ID})
		b.eval(check{tag: ades.RACResponderIDMatch, level: rc.ResponderIDMatch.Level, ok: rev.ResponderIDMatch})
		nextUpdateLevel = cc.OCSPNextUpdatePresent.Level
	}
	b.eval(check{tag: ades.RACNextUpdatePresent, level: nextUpdateLevel, ok: rev.NextUpdate != nil})

	rb := e.Revocation(rev, at)
	b.conclusive(ades.RACBasicValidation, policy.LevelFail, rb.Basic().Conclusion)
	return b.result
}

// consistency applies the revocation data consistency rule and returns the
// additional information explaining the outcome.
func (e *Engine) consistency(cert *diagnostic.Certificate, rev *diagnostic.Revocation, entry *diagnostic.CertificateRevocation) (bool, string) {
	if rev.ThisUpdate == nil {
		return false, e.text.Text(ades.RevocationNoThisUpdate)
	}
	thisUpdate := *rev.ThisUpdate
	if thisUpdate.Before(cert.NotBefore) {
		return false, e.text.Text(ades.RevocationThisUpdateBefore, thisUpdate, cert.NotBefore)
	}

	cutOff := thisUpdate
	var source ades.MessageTag
	if rev.ExpiredCertsOnCRL != nil && rev.ExpiredCertsOnCRL.Before(cutOff) {
		cutOff = *rev.ExpiredCertsOnCRL
		source = ades.RevocationConsistentCRL
	}
	if rev.ArchiveCutOff != nil && rev.ArchiveCutOff.Before(cutOff) {
		cutOff = *rev.ArchiveCutOff
		source = ades.RevocationConsistentOCSP
	}
	if rev.ExpiredCertsOnCRL == nil && rev.ArchiveCutOff == nil {
		if tl := e.expiredCertsRevocationInfo(rev); tl != nil && tl.Before(cutOff) {
			cutOff = *tl
			source = ades.RevocationConsistentTL
		}
	}

	certHash := entry != nil && entry.CertHashPresent && entry.CertHashMatch
	if cert.NotAfter.Before(cutOff) && !certHash {
		return false, e.text.Text(ades.RevocationNotAfterAfter, cert.NotAfter, cutOff)
	}
	signer := e.data.Certificate(rev.SigningCertificateID)
	if signer == nil {
		return false, e.text.Text(ades.RevocationIssuerNotFound)
	}
	if rev.Type == diagnostic.RevocationOCSP &&
		(rev.ProductionDate.Before(signer.NotBefore) || rev.ProductionDate.After(signer.NotAfter)) {
		return false, e.text.Text(ades.RevocationProducedAtBounds, rev.ProductionDate)
	}

	switch {
	case certHash && cert.NotAfter.Before(cutOff):
		return true, e.text.Text(ades.RevocationCertHashOK)
	case source != "":
		return true, e.text.Text(source, thisUpdate, cert.NotBefore, cert.NotAfter, cutOff)
	}
	return true, e.text.Text(ades.RevocationConsistent, thisUpdate, cert.NotBefore, cert.NotAfter)
}

// expiredCertsRevocationInfo returns the trusted-list expiredCertsRevocationInfo
// date of the revocation issuer, looked up along its chain.
func (e *Engine) expiredCertsRevocationInfo(rev *diagnostic.Revocation) *time.Time {
	for _, c := range e.data.BuildChain(rev.SigningCertificateID).Certificates {
		if c.ExpiredCertsRevocationInfo != nil {
			return c.ExpiredCertsRevocationInfo
		}
	}
	return nil
}

// crs collects the revocation data of cert, runs RAC on each and selects
// the latest acceptable one by production time.
func (e *Engine) crs(ctx policy.Context, cert *diagnostic.Certificate, r policy.Role, at time.Time) *Result {
	b := e.newBlock(KindCRS, cert.ID)
	b.role = roleOf(r)

	var latest *diagnostic.Revocation
	var rejected []*ades.Conclusion
	for _, entry := range cert.Revocations {
		rev := e.data.Revocation(entry.RevocationID)
		if rev == nil {
			continue
		}
		rac := e.rac(ctx, cert, r, rev, entry, at)
		b.child(rac)
		b.eval(check{
			tag:   ades.CRSRevocationAcceptable,
			level: policy.LevelInform,
			ok:    rac.IsPassed(),
			args:  []any{rev.ID},
			id:    rev.ID,
		})
		if !rac.IsPassed() {
			rejected = append(rejected, rac.Conclusion)
			continue
		}
		if latest == nil || rev.ProductionDate.After(latest.ProductionDate) {
			latest = rev
		}
	}

	if latest != nil {
		b.result.RevocationID = latest.ID
		produced := latest.ProductionDate
		b.result.ProductionDate = &produced
		return b.result
	}
	if len(rejected) == 0 {
		b.setWorse(indeterminate(ades.SubIndicationTryLater))
		b.result.Conclusion.AddError(e.text.Message(ades.XCVAcceptableRevocation.Answer()))
		return b.result
	}
	worst := ades.WorstOf(rejected...)
	v := verdict{worst.Indication, worst.SubIndication}
	if v.SubIndication == ades.SubIndicationNoCertificateChainFound {
		// The missing chain is the revocation issuer's, not the one of cert.
		v = indeterminate(ades.SubIndicationCertificateChainGeneralFailure)
	}
	b.setWorse(v)
	for _, c := range rejected {
		b.result.Conclusion.MergeNotes(c, true)
	}
	return b.result
}

// rfc checks that the selected revocation datum is fresh at time at. It
// returns nil when the policy does not level freshness for the role.
func (e *Engine) rfc(cert *diagnostic.Certificate, rev *diagnostic.Revocation, cc *policy.CertificateConstraints, at time.Time) *Result {
	if !cc.RevocationFreshness.Level.IsSet() {
		return nil
	}
	b := e.newBlock(KindRFC, cert.ID)
	b.result.RevocationID = rev.ID
	b.eval(check{tag: ades.RFCFresh, level: cc.RevocationFreshness.Level, ok: Fresh(rev, cc.RevocationFreshness.Value, at), id: rev.ID})
	return b.result
}

// Fresh reports whether a revocation datum is fresh at time at: produced no
// earlier than at minus maxAge. A zero maxAge uses the datum's own
// nextUpdate - thisUpdate interval, or zero when either is missing.
func Fresh(rev *diagnostic.Revocation, maxAge time.Duration, at time.Time) bool {
	if maxAge == 0 && rev.ThisUpdate != nil && rev.NextUpdate != nil {
		maxAge = rev.NextUpdate.Sub(*rev.ThisUpdate)
	}
	return !rev.ProductionDate.Before(at.Add(-maxAge))
}
