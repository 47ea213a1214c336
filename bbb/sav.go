package bbb

import (
	"time"

	"github.com/georgepadayatti/goades/ades"
	"github.com/georgepadayatti/goades/diagnostic"
	"github.com/georgepadayatti/goades/policy"
)

// savSignature checks the signed attributes of a signature against the
// policy and the acceptability of its cryptographic algorithms at time at.
// The algorithms are not judged once the cryptographic verification failed.
func (e *Engine) savSignature(ctx policy.Context, s *diagnostic.Signature, chain *diagnostic.Chain, cv *Result, at time.Time) *Result {
	b := e.newBlock(KindSAV, s.ID)
	sc := e.policy.SignatureConstraints(ctx)
	sa := &sc.SignedAttributes

	structural := s.StructuralValidation
	chk := check{tag: ades.SAVStructure, level: sc.StructuralValidation.Level, ok: structural == nil || structural.Valid}
	if structural != nil {
		chk.info = joinMessages(structural.Messages)
	}
	b.eval(chk)

	b.eval(check{tag: ades.SAVSigningTime, level: sa.SigningTime.Level, ok: s.ClaimedSigningTime != nil})
	b.eval(check{
		tag:   ades.SAVContentType,
		level: sa.ContentType.Level,
		ok:    s.ContentType != "" && (sa.ContentType.Value == "" || sa.ContentType.Value == s.ContentType),
		info:  s.ContentType,
	})
	b.eval(check{tag: ades.SAVCommitmentType, level: sa.CommitmentTypeIndication.Level, ok: sa.CommitmentTypeIndication.AcceptsAll(s.CommitmentTypes)})
	b.eval(check{tag: ades.SAVClaimedRole, level: sa.ClaimedRoles.Level, ok: sa.ClaimedRoles.AcceptsAny(s.ClaimedRoles)})
	b.eval(check{tag: ades.SAVCertifiedRole, level: sa.CertifiedRoles.Level, ok: sa.CertifiedRoles.AcceptsAny(s.CertifiedRoles)})
	b.eval(check{tag: ades.SAVSignerLocation, level: sa.SignerLocation.Level, ok: s.SignerLocation != ""})
	b.eval(check{tag: ades.SAVContentTimestamp, level: sa.ContentTimestamp.Level, ok: e.hasContentTimestamp(s.ID)})
	e.savCertificateRefs(b, sa, s.SigningCertificateID, s.CertificateRefs, chain)

	if !cv.IsFailed() {
		b.evalCrypto(e.policy.Crypto(ctx), SignatureUsages(s, sa), at)
	}
	return b.result
}

// SignatureUsages lists the algorithm usages of a signature: the signature
// value, the signing-certificate references, the signed data references and
// the manifest entries.
func SignatureUsages(s *diagnostic.Signature, sa *policy.SignedAttributesConstraints) []Usage {
	usages := []Usage{signatureUsage(s.Crypto, ades.PositionSignature)}
	usages = append(usages, certificateRefUsages(s.CertificateRefs, sa)...)
	for _, m := range s.DigestMatchers {
		if m.DigestAlgorithm == "" {
			continue
		}
		pos := ades.PositionSignedDataObject
		if m.Type == diagnostic.MatcherManifestEntry {
			pos = ades.PositionManifestEntry
		}
		usages = append(usages, digestUsage(m.DigestAlgorithm, pos))
	}
	return usages
}

// certificateRefUsages lists the digest algorithms of signing-certificate
// references. They are only checked when the policy levels them.
func certificateRefUsages(refs []*diagnostic.CertificateRef, sa *policy.SignedAttributesConstraints) []Usage {
	level := sa.SigningCertificateDigestAlgorithm.Level
	if !level.IsSet() {
		return nil
	}
	var usages []Usage
	for _, r := range refs {
		if r.Origin == diagnostic.RefSigningCertificate && r.DigestAlgorithm != "" {
			u := digestUsage(r.DigestAlgorithm, ades.PositionSigningCertRef)
			u.Level = level
			usages = append(usages, u)
		}
	}
	return usages
}

// savCertificateRefs checks the unicity of the signing-certificate reference
// against the built chain and the key identifier.
func (e *Engine) savCertificateRefs(b *block, sa *policy.SignedAttributesConstraints, signingCertID string, refs []*diagnostic.CertificateRef, chain *diagnostic.Chain) {
	inChain := make(map[string]bool)
	if chain != nil {
		inChain = toSet(chain.IDs())
	}
	toSigner, foreign, attribute := 0, false, false
	var kid *diagnostic.CertificateRef
	for _, r := range refs {
		switch r.Origin {
		case diagnostic.RefSigningCertificate:
			attribute = true
			if r.CertificateID == signingCertID && signingCertID != "" {
				toSigner++
			} else if !inChain[r.CertificateID] {
				foreign = true
			}
		case diagnostic.RefKeyIdentifier:
			if kid == nil {
				kid = r
			}
		}
	}
	if attribute {
		b.eval(check{tag: ades.SAVUniqueSigningCertRef, level: sa.UnicitySigningCertificate.Level, ok: toSigner == 1 && !foreign})
	}
	b.eval(check{tag: ades.SAVKeyIdentifierPresent, level: sa.KeyIdentifierPresent.Level, ok: kid != nil})
	if kid != nil {
		b.eval(check{tag: ades.SAVKeyIdentifierMatch, level: sa.KeyIdentifierMatch.Level, ok: kid.KeyIdentifierMatch})
	}
}

func (e *Engine) hasContentTimestamp(signatureID string) bool {
	for _, t := range e.data.TimestampsCovering(signatureID) {
		if t.Type == diagnostic.TimestampContent {
			return true
		}
	}
	return false
}

// savTimestamp checks the signing-certificate reference of a timestamp and
// its algorithms at time at.
func (e *Engine) savTimestamp(t *diagnostic.Timestamp, chain *diagnostic.Chain, cv *Result, at time.Time) *Result {
	b := e.newBlock(KindSAV, t.ID)
	sa := &e.policy.Timestamp.SignedAttributes
	e.savCertificateRefs(b, sa, t.SigningCertificateID, t.CertificateRefs, chain)
	if !cv.IsFailed() {
		b.evalCrypto(e.policy.Crypto(policy.ContextTimestamp), TimestampUsages(t, sa), at)
	}
	return b.result
}

// TimestampUsages lists the algorithm usages of a timestamp.
func TimestampUsages(t *diagnostic.Timestamp, sa *policy.SignedAttributesConstraints) []Usage {
	usages := []Usage{signatureUsage(t.Crypto, ades.PositionTimestamp)}
	usages = append(usages, certificateRefUsages(t.CertificateRefs, sa)...)
	if t.MessageImprint.DigestAlgorithm != "" {
		usages = append(usages, digestUsage(t.MessageImprint.DigestAlgorithm, ades.PositionMessageImprint))
	}
	for _, m := range t.DigestMatchers {
		if m.DigestAlgorithm == "" {
			continue
		}
		pos := ades.PositionSignedDataObject
		if m.Type == diagnostic.MatcherManifestEntry {
			pos = ades.PositionManifestEntry
		}
		usages = append(usages, digestUsage(m.DigestAlgorithm, pos))
	}
	return usages
}

// savRevocation checks the algorithms of a revocation datum at time at.
func (e *Engine) savRevocation(rev *diagnostic.Revocation, at time.Time) *Result {
	b := e.newBlock(KindSAV, rev.ID)
	b.evalCrypto(e.policy.Crypto(policy.ContextRevocation), []Usage{signatureUsage(rev.Crypto, ades.PositionRevocation)}, at)
	return b.result
}
