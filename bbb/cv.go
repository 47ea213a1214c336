package bbb

import (
	"github.com/georgepadayatti/goades/ades"
	"github.com/georgepadayatti/goades/diagnostic"
	"github.com/georgepadayatti/goades/policy"
)

func matcherInfo(m *diagnostic.DigestMatcher) string {
	if m.Name != "" {
		return m.Type + " " + m.Name
	}
	return m.Type
}

// cvSignature verifies the signed data references and the signature value.
func (e *Engine) cvSignature(ctx policy.Context, s *diagnostic.Signature) *Result {
	b := e.newBlock(KindCV, s.ID)
	bs := e.policy.BasicSignature(ctx)

	for _, m := range s.DigestMatchers {
		info := matcherInfo(m)
		if m.Type == diagnostic.MatcherManifestEntry {
			b.eval(check{tag: ades.CVManifestEntryFound, level: bs.ManifestEntryObjectExistence.Level, ok: m.DataFound, info: info})
			if !m.DataFound {
				continue
			}
			b.eval(check{tag: ades.CVManifestEntryIntact, level: bs.ManifestEntryObjectIntact.Level, ok: m.DataIntact, info: info})
			if m.DocumentName != "" {
				b.eval(check{tag: ades.CVManifestEntryNameMatch, level: bs.ManifestEntryNameMatch.Level, ok: m.DocumentName == m.Name, info: info})
			}
			continue
		}
		b.eval(check{tag: ades.CVReferenceFound, level: bs.ReferenceDataExistence.Level, ok: m.DataFound, info: info})
		if m.DataFound {
			b.eval(check{tag: ades.CVReferenceIntact, level: bs.ReferenceDataIntact.Level, ok: m.DataIntact, info: info})
		}
	}
	if len(s.DigestMatchers) == 0 {
		b.eval(check{tag: ades.CVReferenceFound, level: bs.ReferenceDataExistence.Level, ok: false})
	}
	b.eval(check{tag: ades.CVSignatureIntact, level: bs.SignatureIntact.Level, ok: s.SignatureIntact})
	return b.result
}

// cvTimestamp verifies the message imprint and the signature of a timestamp.
func (e *Engine) cvTimestamp(t *diagnostic.Timestamp) *Result {
	b := e.newBlock(KindCV, t.ID)
	tc := &e.policy.Timestamp
	mi := t.MessageImprint

	b.eval(check{tag: ades.CVImprintFound, level: tc.MessageImprintDataFound.Level, ok: mi.DataFound, info: matcherInfo(&mi)})
	if mi.DataFound {
		b.eval(check{tag: ades.CVImprintIntact, level: tc.MessageImprintDataIntact.Level, ok: mi.DataIntact, info: matcherInfo(&mi)})
	}
	b.eval(check{tag: ades.CVSignatureIntact, level: tc.BasicSignature.SignatureIntact.Level, ok: t.SignatureIntact})
	return b.result
}

// cvRevocation verifies the signature of a revocation datum.
func (e *Engine) cvRevocation(rev *diagnostic.Revocation) *Result {
	b := e.newBlock(KindCV, rev.ID)
	b.eval(check{tag: ades.CVSignatureIntact, level: e.policy.Revocation.BasicSignature.SignatureIntact.Level, ok: rev.SignatureIntact})
	return b.result
}

// cvEvidenceRecord verifies the data objects and the archive time-stamp
// sequence of an evidence record. Orphan references are ignored.
func (e *Engine) cvEvidenceRecord(er *diagnostic.EvidenceRecord) *Result {
	b := e.newBlock(KindCV, er.ID)
	ec := &e.policy.EvidenceRecord

	anyFound := false
	for _, m := range er.DigestMatchers {
		info := matcherInfo(m)
		switch m.Type {
		case diagnostic.MatcherEvidenceRecordOrphan:
			continue
		case diagnostic.MatcherArchiveTimestampSequence:
			b.eval(check{tag: ades.CVERSequenceFound, level: ec.SequenceFound.Level, ok: m.DataFound, info: info})
			if m.DataFound {
				b.eval(check{tag: ades.CVERSequenceIntact, level: ec.SequenceIntact.Level, ok: m.DataIntact, info: info})
			}
		default:
			b.eval(check{tag: ades.CVERDataObjectFound, level: ec.DataObjectExistence.Level, ok: m.DataFound, info: info})
			if m.DataFound {
				anyFound = true
				b.eval(check{tag: ades.CVERDataObjectIntact, level: ec.DataObjectIntact.Level, ok: m.DataIntact, info: info})
			}
		}
	}
	b.eval(check{tag: ades.CVERAnyDataObjectFound, level: ec.DataObjectFound.Level, ok: anyFound})
	return b.result
}
