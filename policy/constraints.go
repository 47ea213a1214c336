package policy

import "time"

// LevelConstraint is a check with only a level.
type LevelConstraint struct {
	Level Level `yaml:"level,omitempty"`
}

// MultiValuesConstraint accepts any of a set of values. The value ANY
// accepts everything.
type MultiValuesConstraint struct {
	Level  Level    `yaml:"level,omitempty"`
	Values []string `yaml:"values,omitempty"`
}

// Accepts reports whether v is one of the accepted values.
func (c MultiValuesConstraint) Accepts(v string) bool {
	for _, a := range c.Values {
		if a == v || a == "ANY" {
			return true
		}
	}
	return false
}

// AcceptsAll reports whether every value in vs is accepted and vs is not empty.
func (c MultiValuesConstraint) AcceptsAll(vs []string) bool {
	if len(vs) == 0 {
		return c.Accepts("")
	}
	for _, v := range vs {
		if !c.Accepts(v) {
			return false
		}
	}
	return true
}

// AcceptsAny reports whether at least one value in vs is accepted.
func (c MultiValuesConstraint) AcceptsAny(vs []string) bool {
	for _, v := range vs {
		if c.Accepts(v) {
			return true
		}
	}
	return false
}

// ValueConstraint expects one value.
type ValueConstraint struct {
	Level Level  `yaml:"level,omitempty"`
	Value string `yaml:"value,omitempty"`
}

// TimeConstraint carries a duration, e.g. the maximum revocation age.
type TimeConstraint struct {
	Level Level         `yaml:"level,omitempty"`
	Value time.Duration `yaml:"value,omitempty"`
}

// CertificateConstraints apply to one certificate role in a chain.
type CertificateConstraints struct {
	Recognition                   LevelConstraint       `yaml:"recognition,omitempty"`
	Signature                     LevelConstraint       `yaml:"signature,omitempty"`
	NotExpired                    LevelConstraint       `yaml:"notExpired,omitempty"`
	SunsetDate                    LevelConstraint       `yaml:"sunsetDate,omitempty"`
	SerialNumberPresent           LevelConstraint       `yaml:"serialNumberPresent,omitempty"`
	KeyUsage                      MultiValuesConstraint `yaml:"keyUsage,omitempty"`
	ExtendedKeyUsage              MultiValuesConstraint `yaml:"extendedKeyUsage,omitempty"`
	PolicyIds                     MultiValuesConstraint `yaml:"policyIds,omitempty"`
	NotSelfSigned                 LevelConstraint       `yaml:"notSelfSigned,omitempty"`
	CA                            LevelConstraint       `yaml:"ca,omitempty"`
	RevocationDataAvailable       LevelConstraint       `yaml:"revocationDataAvailable,omitempty"`
	AcceptableRevocationDataFound LevelConstraint       `yaml:"acceptableRevocationDataFound,omitempty"`
	CRLNextUpdatePresent          LevelConstraint       `yaml:"crlNextUpdatePresent,omitempty"`
	OCSPNextUpdatePresent         LevelConstraint       `yaml:"ocspNextUpdatePresent,omitempty"`
	RevocationFreshness           TimeConstraint        `yaml:"revocationFreshness,omitempty"`
	NotRevoked                    LevelConstraint       `yaml:"notRevoked,omitempty"`
	NotOnHold                     LevelConstraint       `yaml:"notOnHold,omitempty"`

	Cryptographic *CryptographicConstraint `yaml:"cryptographic,omitempty"`
}

// BasicSignatureConstraints are shared by every signed object kind:
// signatures, timestamps and revocation data.
type BasicSignatureConstraints struct {
	ReferenceDataExistence       LevelConstraint `yaml:"referenceDataExistence,omitempty"`
	ReferenceDataIntact          LevelConstraint `yaml:"referenceDataIntact,omitempty"`
	ManifestEntryObjectExistence LevelConstraint `yaml:"manifestEntryObjectExistence,omitempty"`
	ManifestEntryObjectIntact    LevelConstraint `yaml:"manifestEntryObjectIntact,omitempty"`
	ManifestEntryNameMatch       LevelConstraint `yaml:"manifestEntryNameMatch,omitempty"`
	SignatureIntact              LevelConstraint `yaml:"signatureIntact,omitempty"`
	ProspectiveCertificateChain  LevelConstraint `yaml:"prospectiveCertificateChain,omitempty"`

	SigningCertificate CertificateConstraints `yaml:"signingCertificate,omitempty"`
	CACertificate      CertificateConstraints `yaml:"caCertificate,omitempty"`

	Cryptographic *CryptographicConstraint `yaml:"cryptographic,omitempty"`
}

// SignedAttributesConstraints cover the signed attributes of signatures and
// timestamps.
type SignedAttributesConstraints struct {
	SigningCertificatePresent         LevelConstraint       `yaml:"signingCertificatePresent,omitempty"`
	UnicitySigningCertificate         LevelConstraint       `yaml:"unicitySigningCertificate,omitempty"`
	SigningCertificateDigestAlgorithm LevelConstraint       `yaml:"signingCertificateDigestAlgorithm,omitempty"`
	CertDigestPresent                 LevelConstraint       `yaml:"certDigestPresent,omitempty"`
	CertDigestMatch                   LevelConstraint       `yaml:"certDigestMatch,omitempty"`
	IssuerSerialMatch                 LevelConstraint       `yaml:"issuerSerialMatch,omitempty"`
	KeyIdentifierPresent              LevelConstraint       `yaml:"keyIdentifierPresent,omitempty"`
	KeyIdentifierMatch                LevelConstraint       `yaml:"keyIdentifierMatch,omitempty"`
	SigningTime                       LevelConstraint       `yaml:"signingTime,omitempty"`
	ContentType                       ValueConstraint       `yaml:"contentType,omitempty"`
	CommitmentTypeIndication          MultiValuesConstraint `yaml:"commitmentTypeIndication,omitempty"`
	SignerLocation                    LevelConstraint       `yaml:"signerLocation,omitempty"`
	ContentTimestamp                  LevelConstraint       `yaml:"contentTimestamp,omitempty"`
	ClaimedRoles                      MultiValuesConstraint `yaml:"claimedRoles,omitempty"`
	CertifiedRoles                    MultiValuesConstraint `yaml:"certifiedRoles,omitempty"`
}

// SignatureConstraints apply to signatures and counter signatures.
type SignatureConstraints struct {
	StructuralValidation LevelConstraint       `yaml:"structuralValidation,omitempty"`
	AcceptablePolicies   MultiValuesConstraint `yaml:"acceptablePolicies,omitempty"`
	PolicyAvailable      LevelConstraint       `yaml:"policyAvailable,omitempty"`
	PolicyHashMatch      LevelConstraint       `yaml:"policyHashMatch,omitempty"`
	AcceptZeroHashPolicy bool                  `yaml:"acceptZeroHashPolicy,omitempty"`
	AcceptableFormats    MultiValuesConstraint `yaml:"acceptableFormats,omitempty"`
	EllipticCurveKeySize LevelConstraint       `yaml:"ellipticCurveKeySize,omitempty"`
	UndefinedChanges     LevelConstraint       `yaml:"undefinedChanges,omitempty"`
	TimestampDelay       TimeConstraint        `yaml:"timestampDelay,omitempty"`

	BasicSignature   BasicSignatureConstraints   `yaml:"basicSignature,omitempty"`
	SignedAttributes SignedAttributesConstraints `yaml:"signedAttributes,omitempty"`
}

// TimestampConstraints apply to every timestamp.
type TimestampConstraints struct {
	MessageImprintDataFound          LevelConstraint `yaml:"messageImprintDataFound,omitempty"`
	MessageImprintDataIntact         LevelConstraint `yaml:"messageImprintDataIntact,omitempty"`
	AtsHashIndex                     LevelConstraint `yaml:"atsHashIndex,omitempty"`
	SignedAndTimestampedFilesCovered LevelConstraint `yaml:"signedAndTimestampedFilesCovered,omitempty"`
	Coherence                        LevelConstraint `yaml:"coherence,omitempty"`

	BasicSignature   BasicSignatureConstraints   `yaml:"basicSignature,omitempty"`
	SignedAttributes SignedAttributesConstraints `yaml:"signedAttributes,omitempty"`
}

// RevocationConstraints apply to CRLs and OCSP responses.
type RevocationConstraints struct {
	IssuerValidAtProductionTime LevelConstraint `yaml:"issuerValidAtProductionTime,omitempty"`
	SelfIssuedOCSP              LevelConstraint `yaml:"selfIssuedOCSP,omitempty"`
	ResponderIDMatch            LevelConstraint `yaml:"responderIdMatch,omitempty"`

	BasicSignature BasicSignatureConstraints `yaml:"basicSignature,omitempty"`
}

// EvidenceRecordConstraints apply to evidence records.
type EvidenceRecordConstraints struct {
	DataObjectExistence              LevelConstraint `yaml:"dataObjectExistence,omitempty"`
	DataObjectIntact                 LevelConstraint `yaml:"dataObjectIntact,omitempty"`
	DataObjectFound                  LevelConstraint `yaml:"dataObjectFound,omitempty"`
	SequenceFound                    LevelConstraint `yaml:"sequenceFound,omitempty"`
	SequenceIntact                   LevelConstraint `yaml:"sequenceIntact,omitempty"`
	SignedFilesCovered               LevelConstraint `yaml:"signedFilesCovered,omitempty"`
	SignedAndTimestampedFilesCovered LevelConstraint `yaml:"signedAndTimestampedFilesCovered,omitempty"`

	Cryptographic *CryptographicConstraint `yaml:"cryptographic,omitempty"`
}

// ContainerConstraints apply to ASiC containers.
type ContainerConstraints struct {
	AcceptableContainerTypes      MultiValuesConstraint `yaml:"acceptableContainerTypes,omitempty"`
	ZipCommentPresent             LevelConstraint       `yaml:"zipCommentPresent,omitempty"`
	AcceptableZipComment          MultiValuesConstraint `yaml:"acceptableZipComment,omitempty"`
	MimeTypeFilePresent           LevelConstraint       `yaml:"mimeTypeFilePresent,omitempty"`
	AcceptableMimeTypeFileContent MultiValuesConstraint `yaml:"acceptableMimeTypeFileContent,omitempty"`
	ManifestFilePresent           LevelConstraint       `yaml:"manifestFilePresent,omitempty"`
	AllFilesSigned                LevelConstraint       `yaml:"allFilesSigned,omitempty"`
}

// PDFAConstraints apply to PDF documents.
type PDFAConstraints struct {
	AcceptableProfiles MultiValuesConstraint `yaml:"acceptableProfiles,omitempty"`
	Compliant          LevelConstraint       `yaml:"compliant,omitempty"`
}
