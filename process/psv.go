package process

import (
	"time"

	"github.com/georgepadayatti/goades/ades"
	"github.com/georgepadayatti/goades/bbb"
	"github.com/georgepadayatti/goades/diagnostic"
	"github.com/georgepadayatti/goades/policy"
)

// pastValidation re-judges a conclusion that did not pass against the POE
// of the object. It runs in three steps: a precheck (the cryptographic
// verification passed and the sub-indication is one a POE can resolve), the
// control time of that sub-indication, and the validation of the chain at
// the POE, which must lie before the control time.
func (x *executor) pastValidation(id string, ctx policy.Context, usages []bbb.Usage, cv, xcv *bbb.Result, chain *diagnostic.Chain, current *ades.Conclusion) *bbb.Result {
	p := x.engine.NewProcess(bbb.KindPSV, id)
	if !cv.IsPassed() || !current.IsIndeterminate() || !resolvable[current.SubIndication] {
		p.Adopt(current)
		return p.Result()
	}

	certs := x.validatedChain(xcv, chain)
	at := x.poe.Lowest(id)
	control, ok := x.controlTime(ctx, usages, certs, current.SubIndication)
	x.log.Debug("past validation", "id", id, "poe", at, "controlTime", control, "resolved", ok)

	if !p.Eval(bbb.Constraint{
		Tag:     ades.PSVPOEBeforeControlTime,
		Level:   policy.LevelFail,
		OK:      ok && at.Before(control),
		Verdict: current,
	}) {
		return p.Result()
	}
	p.Eval(bbb.Constraint{Tag: ades.PSVPastCertificate, Level: policy.LevelFail, OK: chainValidAt(certs, at)})
	return p.Result()
}

// controlTime returns the time before which the object must be proven to
// exist for the sub-indication not to apply. It reports false when no
// control time can be determined.
func (x *executor) controlTime(ctx policy.Context, usages []bbb.Usage, certs []chainCert, sub ades.SubIndication) (time.Time, bool) {
	var control time.Time
	found := false
	lower := func(t time.Time) {
		if !found || t.Before(control) {
			control = t
			found = true
		}
	}

	switch sub {
	case ades.SubIndicationRevokedNoPOE, ades.SubIndicationRevokedCANoPOE:
		for _, cc := range certs {
			if bbb.RevokedAt(cc.entry, x.now) && cc.entry.RevocationDate != nil {
				lower(*cc.entry.RevocationDate)
			}
		}
	case ades.SubIndicationOutOfBoundsNoPOE, ades.SubIndicationOutOfBoundsNotRevoked:
		for _, cc := range certs {
			if failedWith(cc.sub, ades.XCVValidityRange) {
				lower(cc.cert.NotAfter)
			}
		}
	case ades.SubIndicationCryptoConstraintsFailureNoPOE:
		for _, f := range x.cryptoFailures(ctx, usages, certs, x.now) {
			if f.Expiry == nil {
				return time.Time{}, false
			}
			lower(*f.Expiry)
		}
	case ades.SubIndicationTryLater:
		for _, cc := range certs {
			if failedWith(cc.sub, ades.XCVNotOnHold) && cc.entry.RevocationDate != nil {
				lower(*cc.entry.RevocationDate)
			}
		}
	}
	return control, found
}

// chainValidAt reports whether every certificate was within its validity
// range and neither revoked nor suspended at time at.
func chainValidAt(certs []chainCert, at time.Time) bool {
	for _, cc := range certs {
		if at.Before(cc.cert.NotBefore) || at.After(cc.cert.NotAfter) {
			return false
		}
		if bbb.RevokedAt(cc.entry, at) || bbb.SuspendedAt(cc.entry, at) {
			return false
		}
	}
	return true
}
