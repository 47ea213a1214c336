package ades

import "strings"

// MessageTag identifies a check question, its failure answer or an
// informational note. Rendered text comes from the i18n package.
type MessageTag string

// Answer returns the failure answer of a check question.
func (t MessageTag) Answer() MessageTag {
	if strings.HasSuffix(string(t), "_ANS") {
		return t
	}
	return t + "_ANS"
}

func (t MessageTag) String() string {
	return string(t)
}

// Identification of the signing certificate (ICS)
const (
	ICSSigningCertificateIdentified MessageTag = "BBB_ICS_ISCI"
	ICSSigningCertificateAttribute  MessageTag = "BBB_ICS_ISASCP"
	ICSCertDigestPresent            MessageTag = "BBB_ICS_ISACDP"
	ICSCertDigestMatch              MessageTag = "BBB_ICS_ICDVV"
	ICSIssuerSerialMatch            MessageTag = "BBB_ICS_AIDNASNE"
)

// Validation context initialization (VCI)
const (
	VCIPolicyKnown     MessageTag = "BBB_VCI_ISPK"
	VCIPolicyAvailable MessageTag = "BBB_VCI_ISPA"
	VCIPolicyHashMatch MessageTag = "BBB_VCI_ISPM"
)

// Cryptographic verification (CV)
const (
	CVReferenceFound         MessageTag = "BBB_CV_IRDOF"
	CVReferenceIntact        MessageTag = "BBB_CV_IRDOI"
	CVManifestEntryFound     MessageTag = "BBB_CV_IMEDOF"
	CVManifestEntryIntact    MessageTag = "BBB_CV_IMEDOI"
	CVManifestEntryNameMatch MessageTag = "BBB_CV_DMENMND"
	CVSignatureIntact        MessageTag = "BBB_CV_ISI"
	CVImprintFound           MessageTag = "BBB_CV_TSP_IRDOF"
	CVImprintIntact          MessageTag = "BBB_CV_TSP_IRDOI"
	CVERDataObjectFound      MessageTag = "BBB_CV_ER_IRDOF"
	CVERDataObjectIntact     MessageTag = "BBB_CV_ER_IRDOI"
	CVERAnyDataObjectFound   MessageTag = "BBB_CV_ER_IDOF"
	CVERSequenceFound        MessageTag = "BBB_CV_ER_ATSSRF"
	CVERSequenceIntact       MessageTag = "BBB_CV_ER_ATSSRI"
)

// Format checking (FC)
const (
	FCFormat                    MessageTag = "BBB_FC_IEFF"
	FCContainerType             MessageTag = "BBB_FC_IECTF"
	FCZipCommentPresent         MessageTag = "BBB_FC_ITZCP"
	FCZipComment                MessageTag = "BBB_FC_ITEZCF"
	FCMimeTypePresent           MessageTag = "BBB_FC_ITMFP"
	FCMimeTypeContent           MessageTag = "BBB_FC_IEMCF"
	FCManifestASiCE             MessageTag = "BBB_FC_IMFP_ASICE"
	FCManifestASiCS             MessageTag = "BBB_FC_IMFP_ASICS"
	FCAllFilesSigned            MessageTag = "BBB_FC_IAFS"
	FCPDFAProfile               MessageTag = "BBB_FC_IAPDFAP"
	FCPDFACompliant             MessageTag = "BBB_FC_IDPDFAC"
	FCUndefinedChanges          MessageTag = "BBB_FC_DSCNUOM"
	FCEllipticCurveKeySize      MessageTag = "BBB_FC_IECKSCDA"
	FCAtsHashIndex              MessageTag = "BBB_FC_IAHIV"
	FCSignedAndTimestampedFiles MessageTag = "BBB_FC_ISFP_ASTFORAMC"
	FCSignedFilesCovered        MessageTag = "BBB_FC_ISFCBER"
)

// Signature acceptance validation (SAV)
const (
	SAVStructure            MessageTag = "BBB_SAV_ISSV"
	SAVSigningTime          MessageTag = "BBB_SAV_ISQPSTP"
	SAVContentType          MessageTag = "BBB_SAV_ISQPCTP"
	SAVCommitmentType       MessageTag = "BBB_SAV_ISQPXTIP"
	SAVClaimedRole          MessageTag = "BBB_SAV_ICRM"
	SAVCertifiedRole        MessageTag = "BBB_SAV_ICERRM"
	SAVSignerLocation       MessageTag = "BBB_SAV_ISQPSLP"
	SAVContentTimestamp     MessageTag = "BBB_SAV_ISQPCTSIP"
	SAVUniqueSigningCertRef MessageTag = "BBB_SAV_IUSCR"
	SAVKeyIdentifierPresent MessageTag = "BBB_SAV_KIDP"
	SAVKeyIdentifierMatch   MessageTag = "BBB_SAV_KIDM"
)

// Cryptographic constraints, shared by SAV, XCV and the evidence record process.
const (
	CryptoConstraintsMet       MessageTag = "ACCM"
	CryptoEncryptionNotAllowed MessageTag = "ASCCM_EAA_ANS"
	CryptoDigestNotAllowed     MessageTag = "ASCCM_DAA_ANS"
	CryptoKeySizeTooSmall      MessageTag = "ASCCM_AR_ANS_AKSNR"
	CryptoAlgorithmNotReliable MessageTag = "ASCCM_AR_ANS_ANR"
)

// Positions of a cryptographic check, rendered as message arguments.
const (
	PositionSignature          MessageTag = "ACCM_POS_SIG_SIG"
	PositionTimestamp          MessageTag = "ACCM_POS_TST_SIG"
	PositionRevocation         MessageTag = "ACCM_POS_REV_SIG"
	PositionCertificate        MessageTag = "ACCM_POS_CERT_SIG"
	PositionSigningCertRef     MessageTag = "ACCM_POS_SIG_CERT_REF"
	PositionSignedDataObject   MessageTag = "ACCM_POS_SIGND_PRT"
	PositionManifestEntry      MessageTag = "ACCM_POS_MAN_ENT"
	PositionMessageImprint     MessageTag = "ACCM_POS_MESS_IMP"
	PositionEvidenceRecordHash MessageTag = "ACCM_POS_ER_HASH"
)

// X.509 certificate validation (XCV / subXCV)
const (
	XCVChainBuilt           MessageTag = "BBB_XCV_CCCBB"
	XCVSubConclusive        MessageTag = "BBB_XCV_SUB"
	XCVSunsetDate           MessageTag = "BBB_XCV_IVTBCTSD"
	XCVSerialPresent        MessageTag = "BBB_XCV_ISSNP"
	XCVKeyUsage             MessageTag = "BBB_XCV_ISCGKU"
	XCVExtendedKeyUsage     MessageTag = "BBB_XCV_ISCGEKU"
	XCVPolicyIDs            MessageTag = "BBB_XCV_CMDCIPI"
	XCVNotSelfSigned        MessageTag = "BBB_XCV_ICNSS"
	XCVCertSignatureIntact  MessageTag = "BBB_XCV_ICSI"
	XCVCACertificate        MessageTag = "BBB_XCV_ICAC"
	XCVOCSPNoCheck          MessageTag = "BBB_XCV_OCSP_NO_CHECK"
	XCVRevocationPresent    MessageTag = "BBB_XCV_IRDPFC"
	XCVAcceptableRevocation MessageTag = "BBB_XCV_IARDPFC"
	XCVNotOnHold            MessageTag = "BBB_XCV_ISCOH"
	XCVNotRevoked           MessageTag = "BBB_XCV_ISCR"
	XCVRevocationFreshness  MessageTag = "BBB_XCV_RFC"
	XCVValidityRange        MessageTag = "BBB_XCV_ICTIVRSC"
	XCVRevocationConsistent MessageTag = "BBB_XCV_IRDC"
)

// Revocation acceptance (RAC), collected revocation status (CRS) and
// revocation freshness (RFC)
const (
	RACIssuerValidAtProduction MessageTag = "BBB_RAC_IRIVPT"
	RACNotSelfIssuedOCSP       MessageTag = "BBB_RAC_ISIOCSP"
	RACResponderIDMatch        MessageTag = "BBB_RAC_IRIDM"
	RACNextUpdatePresent       MessageTag = "BBB_RFC_NUP"
	RACBasicValidation         MessageTag = "BBB_RAC_IRBVC"
	CRSRevocationAcceptable    MessageTag = "BBB_CRS_IRDA"
	RFCFresh                   MessageTag = "BBB_RFC_IRIF"
)

// Additional information keys of the revocation consistency check.
const (
	RevocationNoThisUpdate     MessageTag = "REVOCATION_NO_THIS_UPDATE"
	RevocationThisUpdateBefore MessageTag = "REVOCATION_THIS_UPDATE_BEFORE"
	RevocationNotAfterAfter    MessageTag = "REVOCATION_NOT_AFTER_AFTER"
	RevocationIssuerNotFound   MessageTag = "REVOCATION_ISSUER_NOT_FOUND"
	RevocationProducedAtBounds MessageTag = "REVOCATION_PRODUCED_AT_OUT_OF_BOUNDS"
	RevocationConsistent       MessageTag = "REVOCATION_CONSISTENT"
	RevocationCertHashOK       MessageTag = "REVOCATION_CERT_HASH_OK"
	RevocationConsistentCRL    MessageTag = "REVOCATION_CONSISTENT_CRL"
	RevocationConsistentOCSP   MessageTag = "REVOCATION_CONSISTENT_OCSP"
	RevocationConsistentTL     MessageTag = "REVOCATION_CONSISTENT_TL"
)

// Basic signature validation process (BSV)
const (
	BSVFormatChecking      MessageTag = "BSV_IFCRC"
	BSVIdentification      MessageTag = "BSV_IISCRC"
	BSVValidationContext   MessageTag = "BSV_IVCIRC"
	BSVCryptographic       MessageTag = "BSV_ICVRC"
	BSVCertificateChain    MessageTag = "BSV_IXCVRC"
	BSVSignatureAcceptance MessageTag = "BSV_ISAVRC"
)

// Long-term data validation process (LTV)
const (
	LTVBasicAcceptable         MessageTag = "LTV_ABSV"
	LTVTimestampConclusive     MessageTag = "ADEST_ITVPC"
	LTVRevocationAfterBST      MessageTag = "ADEST_IRTPTBST"
	LTVBSTAfterIssuance        MessageTag = "TSV_IBSTAIDOSC"
	LTVBSTBeforeExpiration     MessageTag = "TSV_IBSTBCEC"
	LTVAlgorithmsReliableAtBST MessageTag = "TSV_WACRABST"
	LTVBSTBeforeSuspension     MessageTag = "TSV_IBSTBSUS"
	LTVRevocationFreshAtBST    MessageTag = "LTV_IRIFABST"
	LTVKnownNotRevoked         MessageTag = "LTV_ISCKNR"
	LTVTimestampOrder          MessageTag = "TSV_ASTPTCT"
	LTVSigningTimeDelay        MessageTag = "ADEST_ISTPTDABST"
	LTVBestSignatureTimeInfo   MessageTag = "ADEST_ITVPC_INFO"
)

// Archival data validation process (ARCH), past signature validation (PSV)
// and evidence record validation (ER)
const (
	ArchLTVAcceptable          MessageTag = "ARCH_LTVV"
	ArchTimestampAcceptable    MessageTag = "ARCH_IRTVBBA"
	ArchEvidenceRecord         MessageTag = "ARCH_IRERVPC"
	PSVPastSignatureConclusive MessageTag = "PSV_IPSVC"
	PSVPastCertificate         MessageTag = "PSV_IPCVA"
	PSVPOEBeforeControlTime    MessageTag = "PSV_ITPOSVAOBCT"
	ERTimestampConclusive      MessageTag = "ER_IATSVC"
)

// Semantics of indications and sub-indications, used when semantics are
// requested in the report.
func SemanticsTag(value string) MessageTag {
	return MessageTag("SEMANTICS_" + value)
}
