package bbb

import (
	"github.com/georgepadayatti/goades/ades"
	"github.com/georgepadayatti/goades/diagnostic"
	"github.com/georgepadayatti/goades/policy"
)

// ics identifies the signing certificate of a signature, timestamp or
// revocation datum and checks the signing-certificate attribute.
func (e *Engine) ics(ctx policy.Context, id, signingCertID string, refs []*diagnostic.CertificateRef) *Result {
	b := e.newBlock(KindICS, id)
	cc := e.policy.Certificate(ctx, policy.RoleSigningCertificate)
	identified := e.data.Certificate(signingCertID) != nil
	if !b.eval(check{tag: ades.ICSSigningCertificateIdentified, level: cc.Recognition.Level, ok: identified}) || !identified {
		return b.result
	}

	sa := e.policy.SignedAttributes(ctx)
	ref := signingCertificateRef(refs, signingCertID)
	if !b.eval(check{tag: ades.ICSSigningCertificateAttribute, level: sa.SigningCertificatePresent.Level, ok: ref != nil}) || ref == nil {
		return b.result
	}
	b.eval(check{tag: ades.ICSCertDigestPresent, level: sa.CertDigestPresent.Level, ok: ref.DigestPresent})
	if ref.DigestPresent {
		b.eval(check{tag: ades.ICSCertDigestMatch, level: sa.CertDigestMatch.Level, ok: ref.DigestMatch})
	}
	if ref.IssuerSerialPresent {
		b.eval(check{tag: ades.ICSIssuerSerialMatch, level: sa.IssuerSerialMatch.Level, ok: ref.IssuerSerialMatch})
	}
	return b.result
}

// signingCertificateRef returns the signing-certificate reference to the
// given certificate, or the first signing-certificate reference.
func signingCertificateRef(refs []*diagnostic.CertificateRef, certID string) *diagnostic.CertificateRef {
	var first *diagnostic.CertificateRef
	for _, r := range refs {
		if r.Origin != diagnostic.RefSigningCertificate {
			continue
		}
		if r.CertificateID == certID {
			return r
		}
		if first == nil {
			first = r
		}
	}
	return first
}

// vci initializes the validation context of a signature: its signature
// policy.
func (e *Engine) vci(ctx policy.Context, s *diagnostic.Signature) *Result {
	b := e.newBlock(KindVCI, s.ID)
	sc := e.policy.SignatureConstraints(ctx)
	p := s.Policy

	var known bool
	var info string
	switch {
	case p == nil:
		known = sc.AcceptablePolicies.Accepts("NO_POLICY")
		info = "NO_POLICY"
	case p.Implicit:
		known = sc.AcceptablePolicies.Accepts("IMPLICIT_POLICY") || sc.AcceptablePolicies.Accepts("ANY_POLICY")
		info = "IMPLICIT_POLICY"
	default:
		known = sc.AcceptablePolicies.Accepts(p.ID) || sc.AcceptablePolicies.Accepts("ANY_POLICY")
		info = p.ID
	}
	if !b.eval(check{tag: ades.VCIPolicyKnown, level: sc.AcceptablePolicies.Level, ok: known, info: info}) {
		return b.result
	}
	if p == nil || p.Implicit {
		return b.result
	}
	if p.ZeroHash && sc.AcceptZeroHashPolicy {
		return b.result
	}
	if !b.eval(check{tag: ades.VCIPolicyAvailable, level: sc.PolicyAvailable.Level, ok: p.Available, info: p.ID}) || !p.Available {
		return b.result
	}
	b.eval(check{tag: ades.VCIPolicyHashMatch, level: sc.PolicyHashMatch.Level, ok: p.HashMatch, info: p.ID})
	return b.result
}
