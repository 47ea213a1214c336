package bbb

import (
	"github.com/georgepadayatti/goades/ades"
	"github.com/georgepadayatti/goades/i18n"
	"github.com/georgepadayatti/goades/policy"
)

// verdict is the indication pair set on the owning conclusion when a
// FAIL-level constraint does not hold.
type verdict struct {
	Indication    ades.Indication
	SubIndication ades.SubIndication
}

func indeterminate(sub ades.SubIndication) verdict {
	return verdict{ades.IndicationIndeterminate, sub}
}

func failed(sub ades.SubIndication) verdict {
	return verdict{ades.IndicationFailed, sub}
}

// role is the certificate role a failure table entry applies to.
type role int

const (
	anyRole role = iota
	signingRole
	caRole
)

func roleOf(r policy.Role) role {
	if r == policy.RoleCACertificate {
		return caRole
	}
	return signingRole
}

type failureKey struct {
	tag  ades.MessageTag
	role role
}

// failures maps a failed check to the verdict of its block. Entries keyed
// with anyRole apply when no role specific entry exists.
var failures = map[failureKey]verdict{
	{ades.ICSSigningCertificateIdentified, anyRole}: indeterminate(ades.SubIndicationNoSigningCertificateFound),
	{ades.ICSSigningCertificateAttribute, anyRole}:  indeterminate(ades.SubIndicationNoSigningCertificateFound),
	{ades.ICSCertDigestPresent, anyRole}:            indeterminate(ades.SubIndicationNoSigningCertificateFound),
	{ades.ICSCertDigestMatch, anyRole}:              indeterminate(ades.SubIndicationNoSigningCertificateFound),
	{ades.ICSIssuerSerialMatch, anyRole}:            indeterminate(ades.SubIndicationNoSigningCertificateFound),

	{ades.VCIPolicyKnown, anyRole}:     indeterminate(ades.SubIndicationPolicyProcessingError),
	{ades.VCIPolicyAvailable, anyRole}: indeterminate(ades.SubIndicationSignaturePolicyNotAvailable),
	{ades.VCIPolicyHashMatch, anyRole}: indeterminate(ades.SubIndicationPolicyProcessingError),

	{ades.CVReferenceFound, anyRole}:         indeterminate(ades.SubIndicationSignedDataNotFound),
	{ades.CVReferenceIntact, anyRole}:        failed(ades.SubIndicationHashFailure),
	{ades.CVManifestEntryFound, anyRole}:     indeterminate(ades.SubIndicationSignedDataNotFound),
	{ades.CVManifestEntryIntact, anyRole}:    failed(ades.SubIndicationHashFailure),
	{ades.CVManifestEntryNameMatch, anyRole}: indeterminate(ades.SubIndicationSignedDataNotFound),
	{ades.CVSignatureIntact, anyRole}:        failed(ades.SubIndicationSigCryptoFailure),
	{ades.CVImprintFound, anyRole}:           indeterminate(ades.SubIndicationSignedDataNotFound),
	{ades.CVImprintIntact, anyRole}:          failed(ades.SubIndicationHashFailure),
	{ades.CVERDataObjectFound, anyRole}:      indeterminate(ades.SubIndicationSignedDataNotFound),
	{ades.CVERDataObjectIntact, anyRole}:     failed(ades.SubIndicationHashFailure),
	{ades.CVERAnyDataObjectFound, anyRole}:   indeterminate(ades.SubIndicationSignedDataNotFound),
	{ades.CVERSequenceFound, anyRole}:        indeterminate(ades.SubIndicationSignedDataNotFound),
	{ades.CVERSequenceIntact, anyRole}:       failed(ades.SubIndicationHashFailure),

	{ades.FCFormat, anyRole}:                    failed(ades.SubIndicationFormatFailure),
	{ades.FCContainerType, anyRole}:             failed(ades.SubIndicationFormatFailure),
	{ades.FCZipCommentPresent, anyRole}:         failed(ades.SubIndicationFormatFailure),
	{ades.FCZipComment, anyRole}:                failed(ades.SubIndicationFormatFailure),
	{ades.FCMimeTypePresent, anyRole}:           failed(ades.SubIndicationFormatFailure),
	{ades.FCMimeTypeContent, anyRole}:           failed(ades.SubIndicationFormatFailure),
	{ades.FCManifestASiCE, anyRole}:             failed(ades.SubIndicationFormatFailure),
	{ades.FCManifestASiCS, anyRole}:             failed(ades.SubIndicationFormatFailure),
	{ades.FCAllFilesSigned, anyRole}:            failed(ades.SubIndicationFormatFailure),
	{ades.FCPDFAProfile, anyRole}:               failed(ades.SubIndicationFormatFailure),
	{ades.FCPDFACompliant, anyRole}:             failed(ades.SubIndicationFormatFailure),
	{ades.FCUndefinedChanges, anyRole}:          failed(ades.SubIndicationFormatFailure),
	{ades.FCEllipticCurveKeySize, anyRole}:      failed(ades.SubIndicationFormatFailure),
	{ades.FCAtsHashIndex, anyRole}:              failed(ades.SubIndicationFormatFailure),
	{ades.FCSignedAndTimestampedFiles, anyRole}: failed(ades.SubIndicationFormatFailure),
	{ades.FCSignedFilesCovered, anyRole}:        failed(ades.SubIndicationFormatFailure),

	{ades.SAVStructure, anyRole}:            indeterminate(ades.SubIndicationSigConstraintsFailure),
	{ades.SAVSigningTime, anyRole}:          indeterminate(ades.SubIndicationSigConstraintsFailure),
	{ades.SAVContentType, anyRole}:          indeterminate(ades.SubIndicationSigConstraintsFailure),
	{ades.SAVCommitmentType, anyRole}:       indeterminate(ades.SubIndicationSigConstraintsFailure),
	{ades.SAVClaimedRole, anyRole}:          indeterminate(ades.SubIndicationSigConstraintsFailure),
	{ades.SAVCertifiedRole, anyRole}:        indeterminate(ades.SubIndicationSigConstraintsFailure),
	{ades.SAVSignerLocation, anyRole}:       indeterminate(ades.SubIndicationSigConstraintsFailure),
	{ades.SAVContentTimestamp, anyRole}:     indeterminate(ades.SubIndicationSigConstraintsFailure),
	{ades.SAVUniqueSigningCertRef, anyRole}: indeterminate(ades.SubIndicationSigConstraintsFailure),
	{ades.SAVKeyIdentifierPresent, anyRole}: indeterminate(ades.SubIndicationSigConstraintsFailure),
	{ades.SAVKeyIdentifierMatch, anyRole}:   indeterminate(ades.SubIndicationSigConstraintsFailure),
	{ades.CryptoConstraintsMet, anyRole}:    indeterminate(ades.SubIndicationCryptoConstraintsFailureNoPOE),

	{ades.XCVChainBuilt, anyRole}:           indeterminate(ades.SubIndicationNoCertificateChainFound),
	{ades.XCVSunsetDate, anyRole}:           indeterminate(ades.SubIndicationNoCertificateChainFound),
	{ades.XCVSerialPresent, anyRole}:        indeterminate(ades.SubIndicationChainConstraintsFailure),
	{ades.XCVKeyUsage, anyRole}:             indeterminate(ades.SubIndicationChainConstraintsFailure),
	{ades.XCVExtendedKeyUsage, anyRole}:     indeterminate(ades.SubIndicationChainConstraintsFailure),
	{ades.XCVPolicyIDs, anyRole}:            indeterminate(ades.SubIndicationChainConstraintsFailure),
	{ades.XCVNotSelfSigned, anyRole}:        indeterminate(ades.SubIndicationChainConstraintsFailure),
	{ades.XCVCertSignatureIntact, anyRole}:  indeterminate(ades.SubIndicationCertificateChainGeneralFailure),
	{ades.XCVCACertificate, anyRole}:        indeterminate(ades.SubIndicationChainConstraintsFailure),
	{ades.XCVRevocationPresent, anyRole}:    indeterminate(ades.SubIndicationTryLater),
	{ades.XCVAcceptableRevocation, anyRole}: indeterminate(ades.SubIndicationTryLater),
	{ades.XCVNotOnHold, anyRole}:            indeterminate(ades.SubIndicationTryLater),
	{ades.XCVNotRevoked, signingRole}:       indeterminate(ades.SubIndicationRevokedNoPOE),
	{ades.XCVNotRevoked, caRole}:            indeterminate(ades.SubIndicationRevokedCANoPOE),
	{ades.XCVRevocationFreshness, anyRole}:  indeterminate(ades.SubIndicationTryLater),
	{ades.XCVValidityRange, anyRole}:        indeterminate(ades.SubIndicationOutOfBoundsNoPOE),
	{ades.XCVRevocationConsistent, anyRole}: indeterminate(ades.SubIndicationCertificateChainGeneralFailure),

	{ades.RACIssuerValidAtProduction, anyRole}: indeterminate(ades.SubIndicationCertificateChainGeneralFailure),
	{ades.RACNotSelfIssuedOCSP, anyRole}:       indeterminate(ades.SubIndicationCertificateChainGeneralFailure),
	{ades.RACResponderIDMatch, anyRole}:        indeterminate(ades.SubIndicationCertificateChainGeneralFailure),
	{ades.RACNextUpdatePresent, anyRole}:       indeterminate(ades.SubIndicationTryLater),
	{ades.RFCFresh, anyRole}:                   indeterminate(ades.SubIndicationTryLater),

	{ades.LTVRevocationAfterBST, signingRole}:  indeterminate(ades.SubIndicationRevokedNoPOE),
	{ades.LTVRevocationAfterBST, caRole}:       indeterminate(ades.SubIndicationRevokedCANoPOE),
	{ades.LTVBSTAfterIssuance, anyRole}:        failed(ades.SubIndicationNotYetValid),
	{ades.LTVBSTBeforeExpiration, anyRole}:     indeterminate(ades.SubIndicationOutOfBoundsNoPOE),
	{ades.LTVKnownNotRevoked, anyRole}:         indeterminate(ades.SubIndicationOutOfBoundsNotRevoked),
	{ades.LTVAlgorithmsReliableAtBST, anyRole}: indeterminate(ades.SubIndicationCryptoConstraintsFailureNoPOE),
	{ades.LTVBSTBeforeSuspension, anyRole}:     indeterminate(ades.SubIndicationTryLater),
	{ades.LTVRevocationFreshAtBST, anyRole}:    indeterminate(ades.SubIndicationTryLater),
	{ades.LTVTimestampOrder, anyRole}:          indeterminate(ades.SubIndicationTimestampOrderFailure),
	{ades.LTVSigningTimeDelay, anyRole}:        indeterminate(ades.SubIndicationSigConstraintsFailure),

	{ades.PSVPastCertificate, anyRole}:      indeterminate(ades.SubIndicationCertificateChainGeneralFailure),
	{ades.PSVPOEBeforeControlTime, anyRole}: indeterminate(ades.SubIndicationNoPOE),
	{ades.ERTimestampConclusive, anyRole}:   indeterminate(ades.SubIndicationNoPOE),
}

// failureFor returns the verdict of a failed check for the given role.
func failureFor(tag ades.MessageTag, r role) verdict {
	if v, ok := failures[failureKey{tag, r}]; ok {
		return v
	}
	if v, ok := failures[failureKey{tag, anyRole}]; ok {
		return v
	}
	return indeterminate(ades.SubIndicationGenericFailure)
}

// check describes one constraint evaluation.
type check struct {
	tag   ades.MessageTag
	level policy.Level
	ok    bool
	// args are rendered into the question and, unless answerArgs is set,
	// into the failure answer.
	args []any
	// answer replaces the default failure answer tag.Answer().
	answer     ades.MessageTag
	answerArgs []any
	info       string
	id         string
	// verdict replaces the failure table entry.
	verdict *verdict
}

// block accumulates the records and conclusion of one building block.
type block struct {
	result *Result
	text   *i18n.Provider
	role   role
}

func newBlock(text *i18n.Provider, kind Kind, id string) *block {
	return &block{result: newResult(kind, id), text: text}
}

// eval applies a constraint at its level. It returns false when the
// constraint failed at FAIL level; the caller decides whether to go on.
func (b *block) eval(c check) bool {
	if !c.level.IsSet() {
		return true
	}
	rec := &Record{
		Name:           b.text.Message(c.tag, c.args...),
		Status:         ades.StatusOK,
		AdditionalInfo: c.info,
		ID:             c.id,
	}
	b.result.Records = append(b.result.Records, rec)
	if c.ok {
		return true
	}

	answer := c.answer
	if answer == "" {
		answer = c.tag.Answer()
	}
	answerArgs := c.answerArgs
	if answerArgs == nil {
		answerArgs = c.args
	}
	note := b.text.Message(answer, answerArgs...)

	switch c.level {
	case policy.LevelFail:
		rec.Status = ades.StatusNotOK
		rec.Error = &note
		v := failureFor(c.tag, b.role)
		if c.verdict != nil {
			v = *c.verdict
		}
		b.setWorse(v)
		b.result.Conclusion.AddError(note)
		return false
	case policy.LevelWarn:
		rec.Status = ades.StatusWarning
		rec.Warning = &note
		b.result.Conclusion.AddWarning(note)
	case policy.LevelInform:
		rec.Status = ades.StatusInformation
		rec.Info = &note
		b.result.Conclusion.AddInfo(note)
	}
	return true
}

// conclusive records whether a nested conclusion passed. At FAIL level a
// failure adopts the nested verdict and errors. Warnings and infos of the
// nested conclusion always propagate.
func (b *block) conclusive(tag ades.MessageTag, level policy.Level, child *ades.Conclusion, args ...any) bool {
	if child == nil {
		return true
	}
	b.result.Conclusion.MergeNotes(child, false)
	if !level.IsSet() {
		return true
	}
	if child.IsPassed() || level != policy.LevelFail {
		return b.eval(check{tag: tag, level: level, ok: child.IsPassed(), args: args})
	}

	note := b.text.Message(tag.Answer(), args...)
	b.result.Records = append(b.result.Records, &Record{
		Name:   b.text.Message(tag, args...),
		Status: ades.StatusNotOK,
		Error:  &note,
	})
	b.setWorse(verdict{child.Indication, child.SubIndication})
	if len(child.Errors) == 0 {
		b.result.Conclusion.AddError(note)
		return false
	}
	b.result.Conclusion.MergeNotes(child, true)
	return false
}

// setWorse moves the conclusion to v unless it is already at least as bad.
func (b *block) setWorse(v verdict) {
	candidate := ades.NewFailedConclusion(v.Indication, v.SubIndication)
	if ades.Worse(candidate, b.result.Conclusion) {
		b.result.Conclusion.Set(v.Indication, v.SubIndication)
	}
}

func (b *block) info(tag ades.MessageTag, args ...any) {
	b.result.Conclusion.AddInfo(b.text.Message(tag, args...))
}

func (b *block) child(r *Result) {
	if r != nil {
		b.result.Children = append(b.result.Children, r)
	}
}
