// Package diagnostic provides the diagnostic data model: the structured facts
// about signatures, certificates, revocation data, timestamps, evidence records
// and containers that the validation engine consumes. The model is read-only
// for the engine.
package diagnostic

import "time"

// Data is one diagnostic data document.
type Data struct {
	DocumentName    string            `json:"documentName,omitempty"`
	ValidationDate  time.Time         `json:"validationDate"`
	ContainerInfo   *ContainerInfo    `json:"containerInfo,omitempty"`
	PDFA            *PDFAInfo         `json:"pdfa,omitempty"`
	Signatures      []*Signature      `json:"signatures,omitempty"`
	Certificates    []*Certificate    `json:"certificates,omitempty"`
	Revocations     []*Revocation     `json:"revocations,omitempty"`
	Timestamps      []*Timestamp      `json:"timestamps,omitempty"`
	EvidenceRecords []*EvidenceRecord `json:"evidenceRecords,omitempty"`
}

// ContainerInfo describes an ASiC container.
type ContainerInfo struct {
	ContainerType       string          `json:"containerType"`
	ZipComment          string          `json:"zipComment,omitempty"`
	MimeTypeFilePresent bool            `json:"mimeTypeFilePresent"`
	MimeTypeContent     string          `json:"mimeTypeContent,omitempty"`
	ContentFiles        []string        `json:"contentFiles,omitempty"`
	ManifestFiles       []*ManifestFile `json:"manifestFiles,omitempty"`
}

// Container types.
const (
	ContainerASiCS = "ASiC-S"
	ContainerASiCE = "ASiC-E"
)

// ManifestFile is a manifest inside a container.
type ManifestFile struct {
	Filename          string   `json:"filename"`
	SignatureFilename string   `json:"signatureFilename,omitempty"`
	ArchiveManifest   bool     `json:"archiveManifest,omitempty"`
	Entries           []string `json:"entries,omitempty"`
}

// PDFAInfo is the result of PDF/A validation of the document.
type PDFAInfo struct {
	Profile   string   `json:"profile,omitempty"`
	Compliant bool     `json:"compliant"`
	Errors    []string `json:"errors,omitempty"`
}

// CryptoInfo describes the algorithms of a signature value.
type CryptoInfo struct {
	EncryptionAlgorithm string `json:"encryptionAlgorithm,omitempty"`
	DigestAlgorithm     string `json:"digestAlgorithm,omitempty"`
	KeyLength           int    `json:"keyLength,omitempty"`
}

// Certificate is one certificate and its validation facts.
type Certificate struct {
	ID                         string                   `json:"id"`
	SubjectDN                  string                   `json:"subjectDN,omitempty"`
	IssuerDN                   string                   `json:"issuerDN,omitempty"`
	SerialNumber               string                   `json:"serialNumber,omitempty"`
	NotBefore                  time.Time                `json:"notBefore"`
	NotAfter                   time.Time                `json:"notAfter"`
	IssuerID                   string                   `json:"issuerId,omitempty"`
	Trusted                    bool                     `json:"trusted,omitempty"`
	SunsetDate                 *time.Time               `json:"sunsetDate,omitempty"`
	SelfSigned                 bool                     `json:"selfSigned,omitempty"`
	SignatureIntact            bool                     `json:"signatureIntact"`
	CA                         bool                     `json:"ca,omitempty"`
	KeyUsages                  []string                 `json:"keyUsages,omitempty"`
	ExtendedKeyUsages          []string                 `json:"extendedKeyUsages,omitempty"`
	PolicyIDs                  []string                 `json:"policyIds,omitempty"`
	OCSPNoCheck                bool                     `json:"ocspNoCheck,omitempty"`
	CRLDistributionPoints      []string                 `json:"crlDistributionPoints,omitempty"`
	OCSPAccessURLs             []string                 `json:"ocspAccessUrls,omitempty"`
	ExpiredCertsRevocationInfo *time.Time               `json:"expiredCertsRevocationInfo,omitempty"`
	Crypto                     CryptoInfo               `json:"crypto"`
	Revocations                []*CertificateRevocation `json:"revocations,omitempty"`
}

// CertificateRevocation links a certificate to one revocation datum.
type CertificateRevocation struct {
	RevocationID    string           `json:"revocationId"`
	Status          RevocationStatus `json:"status"`
	RevocationDate  *time.Time       `json:"revocationDate,omitempty"`
	Reason          RevocationReason `json:"reason,omitempty"`
	CertHashPresent bool             `json:"certHashPresent,omitempty"`
	CertHashMatch   bool             `json:"certHashMatch,omitempty"`
}

// Revocation types.
const (
	RevocationCRL  = "CRL"
	RevocationOCSP = "OCSP"
)

// Revocation is a CRL or an OCSP response.
type Revocation struct {
	ID                   string     `json:"id"`
	Type                 string     `json:"type"`
	ProductionDate       time.Time  `json:"productionDate"`
	ThisUpdate           *time.Time `json:"thisUpdate,omitempty"`
	NextUpdate           *time.Time `json:"nextUpdate,omitempty"`
	ExpiredCertsOnCRL    *time.Time `json:"expiredCertsOnCrl,omitempty"`
	ArchiveCutOff        *time.Time `json:"archiveCutOff,omitempty"`
	SigningCertificateID string     `json:"signingCertificateId,omitempty"`
	SignatureIntact      bool       `json:"signatureIntact"`
	ResponderIDMatch     bool       `json:"responderIdMatch,omitempty"`
	Crypto               CryptoInfo `json:"crypto"`
}

// Certificate reference origins.
const (
	RefSigningCertificate = "SIGNING_CERTIFICATE"
	RefKeyIdentifier      = "KEY_IDENTIFIER"
)

// CertificateRef is a reference from a signed object to its signing
// certificate (signing-certificate attribute or key identifier).
type CertificateRef struct {
	Origin              string `json:"origin"`
	CertificateID       string `json:"certificateId,omitempty"`
	DigestAlgorithm     string `json:"digestAlgorithm,omitempty"`
	DigestPresent       bool   `json:"digestPresent,omitempty"`
	DigestMatch         bool   `json:"digestMatch,omitempty"`
	IssuerSerialPresent bool   `json:"issuerSerialPresent,omitempty"`
	IssuerSerialMatch   bool   `json:"issuerSerialMatch,omitempty"`
	KeyIdentifierMatch  bool   `json:"keyIdentifierMatch,omitempty"`
}

// Digest matcher types.
const (
	MatcherReference                = "REFERENCE"
	MatcherObject                   = "OBJECT"
	MatcherManifest                 = "MANIFEST"
	MatcherManifestEntry            = "MANIFEST_ENTRY"
	MatcherMessageDigest            = "MESSAGE_DIGEST"
	MatcherSignedProperties         = "SIGNED_PROPERTIES"
	MatcherCounterSignature         = "COUNTER_SIGNED_SIGNATURE_VALUE"
	MatcherMessageImprint           = "MESSAGE_IMPRINT"
	MatcherEvidenceRecordObject     = "EVIDENCE_RECORD_OBJECT"
	MatcherEvidenceRecordOrphan     = "EVIDENCE_RECORD_ORPHAN_REFERENCE"
	MatcherArchiveTimestampSequence = "ARCHIVE_TIME_STAMP_SEQUENCE"
)

// DigestMatcher records one hashed reference and whether it matched.
type DigestMatcher struct {
	Type            string `json:"type"`
	Name            string `json:"name,omitempty"`
	DocumentName    string `json:"documentName,omitempty"`
	DigestAlgorithm string `json:"digestAlgorithm,omitempty"`
	DataFound       bool   `json:"dataFound"`
	DataIntact      bool   `json:"dataIntact"`
}

// SignaturePolicy is the policy identifier of a signature.
type SignaturePolicy struct {
	ID        string `json:"id"`
	Implicit  bool   `json:"implicit,omitempty"`
	ZeroHash  bool   `json:"zeroHash,omitempty"`
	Available bool   `json:"available,omitempty"`
	HashMatch bool   `json:"hashMatch,omitempty"`
}

// PDFRevision describes the PDF revision covered by a signature or a
// document timestamp.
type PDFRevision struct {
	Name             string `json:"name,omitempty"`
	UndefinedChanges bool   `json:"undefinedChanges,omitempty"`
}

// StructuralValidation is the result of schema validation of the signature.
type StructuralValidation struct {
	Valid    bool     `json:"valid"`
	Messages []string `json:"messages,omitempty"`
}

// Signature is one signature or counter signature.
type Signature struct {
	ID                   string                `json:"id"`
	Format               string                `json:"format,omitempty"`
	ParentID             string                `json:"parentId,omitempty"`
	SignatureFilename    string                `json:"signatureFilename,omitempty"`
	ClaimedSigningTime   *time.Time            `json:"claimedSigningTime,omitempty"`
	SigningCertificateID string                `json:"signingCertificateId,omitempty"`
	CertificateRefs      []*CertificateRef     `json:"certificateRefs,omitempty"`
	SignatureIntact      bool                  `json:"signatureIntact"`
	StructuralValidation *StructuralValidation `json:"structuralValidation,omitempty"`
	DigestMatchers       []*DigestMatcher      `json:"digestMatchers,omitempty"`
	Crypto               CryptoInfo            `json:"crypto"`
	Policy               *SignaturePolicy      `json:"policy,omitempty"`
	ContentType          string                `json:"contentType,omitempty"`
	CommitmentTypes      []string              `json:"commitmentTypes,omitempty"`
	ClaimedRoles         []string              `json:"claimedRoles,omitempty"`
	CertifiedRoles       []string              `json:"certifiedRoles,omitempty"`
	SignerLocation       string                `json:"signerLocation,omitempty"`
	PDFRevision          *PDFRevision          `json:"pdfRevision,omitempty"`
}

// IsCounterSignature reports whether the signature counter-signs another one.
func (s *Signature) IsCounterSignature() bool {
	return s.ParentID != ""
}

// Timestamp types.
const (
	TimestampContent        = "CONTENT_TIMESTAMP"
	TimestampSignature      = "SIGNATURE_TIMESTAMP"
	TimestampValidationData = "VALIDATION_DATA_TIMESTAMP"
	TimestampArchive        = "ARCHIVE_TIMESTAMP"
	TimestampDocument       = "DOCUMENT_TIMESTAMP"
	TimestampContainer      = "CONTAINER_TIMESTAMP"
	TimestampEvidenceRecord = "EVIDENCE_RECORD_TIMESTAMP"
)

// Timestamped object categories.
const (
	ObjectSignature      = "SIGNATURE"
	ObjectCertificate    = "CERTIFICATE"
	ObjectRevocation     = "REVOCATION"
	ObjectTimestamp      = "TIMESTAMP"
	ObjectSignedData     = "SIGNED_DATA"
	ObjectEvidenceRecord = "EVIDENCE_RECORD"
)

// ObjectRef references an object covered by a timestamp or an evidence record.
type ObjectRef struct {
	ID       string `json:"id"`
	Category string `json:"category"`
}

// HashIndex is the ats-hash-index attribute of a CAdES archive timestamp.
type HashIndex struct {
	Valid    bool     `json:"valid"`
	Messages []string `json:"messages,omitempty"`
}

// Timestamp is one timestamp token.
type Timestamp struct {
	ID                   string            `json:"id"`
	Type                 string            `json:"type"`
	ProductionTime       time.Time         `json:"productionTime"`
	Filename             string            `json:"filename,omitempty"`
	SigningCertificateID string            `json:"signingCertificateId,omitempty"`
	CertificateRefs      []*CertificateRef `json:"certificateRefs,omitempty"`
	MessageImprint       DigestMatcher     `json:"messageImprint"`
	SignatureIntact      bool              `json:"signatureIntact"`
	Crypto               CryptoInfo        `json:"crypto"`
	TimestampedObjects   []ObjectRef       `json:"timestampedObjects,omitempty"`
	AtsHashIndex         *HashIndex        `json:"atsHashIndex,omitempty"`
	DigestMatchers       []*DigestMatcher  `json:"digestMatchers,omitempty"`
	EvidenceRecordID     string            `json:"evidenceRecordId,omitempty"`
	PDFRevision          *PDFRevision      `json:"pdfRevision,omitempty"`
}

// IsArchive reports whether the timestamp is an archive-class timestamp.
func (t *Timestamp) IsArchive() bool {
	switch t.Type {
	case TimestampArchive, TimestampDocument, TimestampContainer, TimestampEvidenceRecord:
		return true
	}
	return false
}

// Covers reports whether the timestamp covers the object with the given id.
func (t *Timestamp) Covers(id string) bool {
	for _, o := range t.TimestampedObjects {
		if o.ID == id {
			return true
		}
	}
	return false
}

// Evidence record origins.
const (
	OriginExternal  = "EXTERNAL"
	OriginContainer = "CONTAINER"
	OriginEmbedded  = "EMBEDDED"
)

// EvidenceRecord is an RFC 4998 / RFC 6283 evidence record.
type EvidenceRecord struct {
	ID                   string                `json:"id"`
	Type                 string                `json:"type,omitempty"`
	Origin               string                `json:"origin"`
	Filename             string                `json:"filename,omitempty"`
	DigestMatchers       []*DigestMatcher      `json:"digestMatchers,omitempty"`
	TimestampIDs         []string              `json:"timestampIds,omitempty"`
	CoveredObjects       []ObjectRef           `json:"coveredObjects,omitempty"`
	StructuralValidation *StructuralValidation `json:"structuralValidation,omitempty"`
}

// Covers reports whether the evidence record covers the object with the given id.
func (e *EvidenceRecord) Covers(id string) bool {
	for _, o := range e.CoveredObjects {
		if o.ID == id {
			return true
		}
	}
	return false
}
