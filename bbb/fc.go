package bbb

import (
	"strings"

	"github.com/georgepadayatti/goades/ades"
	"github.com/georgepadayatti/goades/diagnostic"
	"github.com/georgepadayatti/goades/policy"
)

// fcSignature checks the signature format, the container it lives in and
// the PDF document it signs.
func (e *Engine) fcSignature(ctx policy.Context, s *diagnostic.Signature) *Result {
	b := e.newBlock(KindFC, s.ID)
	sc := e.policy.SignatureConstraints(ctx)

	b.eval(check{tag: ades.FCFormat, level: sc.AcceptableFormats.Level, ok: sc.AcceptableFormats.Accepts(s.Format), info: s.Format})
	if ci := e.data.ContainerInfo; ci != nil {
		e.fcContainer(b, ci, s)
	}
	if s.PDFRevision != nil {
		b.eval(check{tag: ades.FCUndefinedChanges, level: sc.UndefinedChanges.Level, ok: !s.PDFRevision.UndefinedChanges, info: s.PDFRevision.Name})
	}
	if pdfa := e.data.PDFA; pdfa != nil && s.PDFRevision != nil {
		pc := &e.policy.PDFA
		b.eval(check{tag: ades.FCPDFAProfile, level: pc.AcceptableProfiles.Level, ok: pc.AcceptableProfiles.Accepts(pdfa.Profile), info: pdfa.Profile})
		b.eval(check{tag: ades.FCPDFACompliant, level: pc.Compliant.Level, ok: pdfa.Compliant, info: joinMessages(pdfa.Errors)})
	}
	b.eval(check{tag: ades.FCEllipticCurveKeySize, level: sc.EllipticCurveKeySize.Level, ok: curveMatchesDigest(s.Crypto)})
	return b.result
}

func (e *Engine) fcContainer(b *block, ci *diagnostic.ContainerInfo, s *diagnostic.Signature) {
	cc := &e.policy.Container
	b.eval(check{tag: ades.FCContainerType, level: cc.AcceptableContainerTypes.Level, ok: cc.AcceptableContainerTypes.Accepts(ci.ContainerType), info: ci.ContainerType})
	if b.eval(check{tag: ades.FCZipCommentPresent, level: cc.ZipCommentPresent.Level, ok: ci.ZipComment != ""}) && ci.ZipComment != "" {
		b.eval(check{tag: ades.FCZipComment, level: cc.AcceptableZipComment.Level, ok: cc.AcceptableZipComment.Accepts(ci.ZipComment), info: ci.ZipComment})
	}
	if b.eval(check{tag: ades.FCMimeTypePresent, level: cc.MimeTypeFilePresent.Level, ok: ci.MimeTypeFilePresent}) && ci.MimeTypeFilePresent {
		b.eval(check{tag: ades.FCMimeTypeContent, level: cc.AcceptableMimeTypeFileContent.Level, ok: cc.AcceptableMimeTypeFileContent.Accepts(ci.MimeTypeContent), info: ci.MimeTypeContent})
	}

	manifests := 0
	for _, mf := range ci.ManifestFiles {
		if !mf.ArchiveManifest {
			manifests++
		}
	}
	switch ci.ContainerType {
	case diagnostic.ContainerASiCE:
		b.eval(check{tag: ades.FCManifestASiCE, level: cc.ManifestFilePresent.Level, ok: manifests > 0})
	case diagnostic.ContainerASiCS:
		b.eval(check{tag: ades.FCManifestASiCS, level: cc.ManifestFilePresent.Level, ok: manifests == 0})
	}

	signed := toSet(e.data.SignedFiles(s))
	missing := ""
	for _, f := range ci.ContentFiles {
		if !signed[f] {
			missing = f
			break
		}
	}
	b.eval(check{tag: ades.FCAllFilesSigned, level: cc.AllFilesSigned.Level, ok: missing == "", info: missing})
}

// fcTimestamp checks the ats-hash-index of archive timestamps, the files
// covered by container timestamps and the PDF revision of document
// timestamps. It returns nil when none of them applies.
func (e *Engine) fcTimestamp(t *diagnostic.Timestamp) *Result {
	hashIndex := t.Type == diagnostic.TimestampArchive && t.AtsHashIndex != nil
	container := t.Type == diagnostic.TimestampContainer
	document := t.Type == diagnostic.TimestampDocument && t.PDFRevision != nil
	if !hashIndex && !container && !document {
		return nil
	}

	b := e.newBlock(KindFC, t.ID)
	tc := &e.policy.Timestamp
	if hashIndex {
		b.eval(check{tag: ades.FCAtsHashIndex, level: tc.AtsHashIndex.Level, ok: t.AtsHashIndex.Valid, info: joinMessages(t.AtsHashIndex.Messages)})
	}
	if container {
		covered := toSet(e.data.TimestampedFiles(t))
		b.eval(check{
			tag:   ades.FCSignedAndTimestampedFiles,
			level: tc.SignedAndTimestampedFilesCovered.Level,
			ok:    e.relatedFilesCovered(covered, nil, t.ID),
		})
	}
	if document {
		b.eval(check{tag: ades.FCUndefinedChanges, level: e.policy.Signature.UndefinedChanges.Level, ok: !t.PDFRevision.UndefinedChanges, info: t.PDFRevision.Name})
	}
	return b.result
}

// fcEvidenceRecord checks that an evidence record covers the files of the
// signatures and timestamps it protects. An external record is checked
// against the signed files, a container record against the container.
func (e *Engine) fcEvidenceRecord(er *diagnostic.EvidenceRecord) *Result {
	b := e.newBlock(KindFC, er.ID)
	ec := &e.policy.EvidenceRecord

	covered := make(map[string]bool)
	for _, m := range er.DigestMatchers {
		if m.Type != diagnostic.MatcherEvidenceRecordOrphan && m.DataFound && m.Name != "" {
			covered[m.Name] = true
		}
	}
	var signatures []string
	for _, o := range er.CoveredObjects {
		if o.Category == diagnostic.ObjectSignature {
			signatures = append(signatures, o.ID)
		}
	}

	if er.Origin == diagnostic.OriginExternal {
		ok := true
		for _, id := range signatures {
			if s := e.data.Signature(id); s != nil && !subset(e.data.SignedFiles(s), covered) {
				ok = false
			}
		}
		b.eval(check{tag: ades.FCSignedFilesCovered, level: ec.SignedFilesCovered.Level, ok: ok})
		return b.result
	}
	// Only a record stored in a container covers the files next to it.
	if er.Origin != diagnostic.OriginContainer || e.data.ContainerInfo == nil {
		return b.result
	}
	b.eval(check{
		tag:   ades.FCSignedAndTimestampedFiles,
		level: ec.SignedAndTimestampedFilesCovered.Level,
		ok:    e.relatedFilesCovered(covered, signatures, ""),
	})
	return b.result
}

// relatedFilesCovered reports whether every file signed or timestamped by a
// covered signature or timestamp is covered too. A signature or timestamp is
// covered when its own file is covered or it is listed in signatures.
func (e *Engine) relatedFilesCovered(covered map[string]bool, signatures []string, self string) bool {
	listed := toSet(signatures)
	for _, s := range e.data.Signatures {
		if !listed[s.ID] && (s.SignatureFilename == "" || !covered[s.SignatureFilename]) {
			continue
		}
		if !subset(e.data.SignedFiles(s), covered) {
			return false
		}
	}
	for _, t := range e.data.Timestamps {
		if t.ID == self || t.Filename == "" || !covered[t.Filename] {
			continue
		}
		if !subset(e.data.TimestampedFiles(t), covered) {
			return false
		}
	}
	return true
}

// curveMatchesDigest reports whether an ECDSA key size and the digest
// algorithm have the same security strength. Other algorithms always pass.
func curveMatchesDigest(c diagnostic.CryptoInfo) bool {
	switch policy.NormalizeAlgorithm(c.EncryptionAlgorithm) {
	case "ECDSA", "PLAINECDSA":
	default:
		return true
	}
	want, ok := map[int]string{256: "SHA256", 384: "SHA384", 521: "SHA512"}[c.KeyLength]
	if !ok || c.DigestAlgorithm == "" {
		return true
	}
	return policy.NormalizeAlgorithm(c.DigestAlgorithm) == want
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func subset(values []string, set map[string]bool) bool {
	for _, v := range values {
		if !set[v] {
			return false
		}
	}
	return true
}

func joinMessages(messages []string) string {
	return strings.Join(messages, "; ")
}
