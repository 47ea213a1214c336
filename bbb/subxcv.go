package bbb

import (
	"strings"
	"time"

	"github.com/georgepadayatti/goades/ades"
	"github.com/georgepadayatti/goades/diagnostic"
	"github.com/georgepadayatti/goades/policy"
)

// subXCV validates one certificate of a chain at time at. A trust anchor
// before its sunset date ends the validation of the chain.
func (e *Engine) subXCV(ctx policy.Context, cert *diagnostic.Certificate, r policy.Role, at time.Time) *Result {
	b := e.newBlock(KindSubXCV, cert.ID)
	b.role = roleOf(r)
	cc := e.policy.Certificate(ctx, r)

	if cert.Trusted {
		beforeSunset := cert.SunsetDate == nil || at.Before(*cert.SunsetDate)
		b.eval(check{tag: ades.XCVSunsetDate, level: cc.SunsetDate.Level, ok: beforeSunset})
		if beforeSunset {
			b.result.TrustAnchor = true
			return b.result
		}
	}

	b.eval(check{tag: ades.XCVSerialPresent, level: cc.SerialNumberPresent.Level, ok: cert.SerialNumber != ""})
	b.eval(check{tag: ades.XCVKeyUsage, level: cc.KeyUsage.Level, ok: cc.KeyUsage.AcceptsAny(cert.KeyUsages), info: joinValues(cert.KeyUsages)})
	b.eval(check{tag: ades.XCVExtendedKeyUsage, level: cc.ExtendedKeyUsage.Level, ok: cc.ExtendedKeyUsage.AcceptsAny(cert.ExtendedKeyUsages), info: joinValues(cert.ExtendedKeyUsages)})
	b.eval(check{tag: ades.XCVPolicyIDs, level: cc.PolicyIds.Level, ok: cc.PolicyIds.AcceptsAny(cert.PolicyIDs), info: joinValues(cert.PolicyIDs)})
	b.eval(check{tag: ades.XCVNotSelfSigned, level: cc.NotSelfSigned.Level, ok: !cert.SelfSigned})
	b.eval(check{tag: ades.XCVCertSignatureIntact, level: cc.Signature.Level, ok: cert.SignatureIntact})
	if r == policy.RoleCACertificate {
		b.eval(check{tag: ades.XCVCACertificate, level: cc.CA.Level, ok: cert.CA})
	}

	var entry *diagnostic.CertificateRevocation
	if cert.OCSPNoCheck {
		b.info(ades.XCVOCSPNoCheck)
	} else {
		entry = e.revocationChecks(b, ctx, cert, r, cc, at)
	}

	b.evalCrypto(e.policy.CertificateCrypto(ctx, r), []Usage{signatureUsage(cert.Crypto, ades.PositionCertificate)}, at)

	inRange := !at.Before(cert.NotBefore) && !at.After(cert.NotAfter)
	chk := check{tag: ades.XCVValidityRange, level: cc.NotExpired.Level, ok: inRange}
	if !inRange && entry != nil && entry.Status == diagnostic.StatusGood {
		v := indeterminate(ades.SubIndicationOutOfBoundsNotRevoked)
		chk.verdict = &v
	}
	b.eval(chk)
	return b.result
}

// revocationChecks selects the latest acceptable revocation datum of cert
// and checks the certificate status it reports. It returns the selected
// status entry, or nil.
func (e *Engine) revocationChecks(b *block, ctx policy.Context, cert *diagnostic.Certificate, r policy.Role, cc *policy.CertificateConstraints, at time.Time) *diagnostic.CertificateRevocation {
	available := false
	for _, cr := range cert.Revocations {
		if e.data.Revocation(cr.RevocationID) != nil {
			available = true
			break
		}
	}
	b.eval(check{tag: ades.XCVRevocationPresent, level: cc.RevocationDataAvailable.Level, ok: available})
	if !available {
		return nil
	}

	crs := e.crs(ctx, cert, r, at)
	b.child(crs)
	b.conclusive(ades.XCVAcceptableRevocation, cc.AcceptableRevocationDataFound.Level, crs.Conclusion)
	if crs.RevocationID == "" {
		return nil
	}
	rev := e.data.Revocation(crs.RevocationID)
	entry := cert.CertificateRevocation(crs.RevocationID)

	b.eval(check{tag: ades.XCVNotOnHold, level: cc.NotOnHold.Level, ok: !SuspendedAt(entry, at), id: rev.ID})
	b.eval(check{tag: ades.XCVNotRevoked, level: cc.NotRevoked.Level, ok: !RevokedAt(entry, at), id: rev.ID})

	rfc := e.rfc(cert, rev, cc, at)
	b.child(rfc)
	if rfc != nil {
		b.conclusive(ades.XCVRevocationFreshness, policy.LevelFail, rfc.Conclusion)
	}
	return entry
}

// RevokedAt reports whether the entry revokes the certificate at time at.
func RevokedAt(entry *diagnostic.CertificateRevocation, at time.Time) bool {
	return entry != nil && entry.IsRevoked() && (entry.RevocationDate == nil || !entry.RevocationDate.After(at))
}

// SuspendedAt reports whether the entry suspends the certificate at time at.
func SuspendedAt(entry *diagnostic.CertificateRevocation, at time.Time) bool {
	return entry != nil && entry.IsOnHold() && (entry.RevocationDate == nil || !entry.RevocationDate.After(at))
}

func joinValues(values []string) string {
	return strings.Join(values, ", ")
}
