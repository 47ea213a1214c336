package policy

// Context is the validation context a constraint is looked up in.
type Context int

const (
	// ContextSignature is the context of a signature.
	ContextSignature Context = iota
	// ContextCounterSignature is the context of a counter signature.
	ContextCounterSignature
	// ContextTimestamp is the context of a timestamp.
	ContextTimestamp
	// ContextRevocation is the context of a CRL or OCSP response.
	ContextRevocation
	// ContextEvidenceRecord is the context of an evidence record.
	ContextEvidenceRecord
)

// String returns the string representation of the context.
func (c Context) String() string {
	switch c {
	case ContextSignature:
		return "signature"
	case ContextCounterSignature:
		return "counter-signature"
	case ContextTimestamp:
		return "timestamp"
	case ContextRevocation:
		return "revocation"
	case ContextEvidenceRecord:
		return "evidence-record"
	default:
		return "unknown"
	}
}

// Role is the position of a certificate in its chain.
type Role int

const (
	// RoleSigningCertificate is the end-entity certificate of the signed object.
	RoleSigningCertificate Role = iota
	// RoleCACertificate is any issuer certificate.
	RoleCACertificate
)

// String returns the string representation of the role.
func (r Role) String() string {
	if r == RoleSigningCertificate {
		return "signing-certificate"
	}
	return "ca-certificate"
}

// ValidationPolicy is the parsed validation policy. It is read-only once
// loaded.
type ValidationPolicy struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`

	Container        ContainerConstraints      `yaml:"container,omitempty"`
	PDFA             PDFAConstraints           `yaml:"pdfa,omitempty"`
	Signature        SignatureConstraints      `yaml:"signature,omitempty"`
	CounterSignature *SignatureConstraints     `yaml:"counterSignature,omitempty"`
	Timestamp        TimestampConstraints      `yaml:"timestamp,omitempty"`
	Revocation       RevocationConstraints     `yaml:"revocation,omitempty"`
	EvidenceRecord   EvidenceRecordConstraints `yaml:"evidenceRecord,omitempty"`

	Cryptographic CryptographicConstraint `yaml:"cryptographic,omitempty"`
}

// SignatureConstraints returns the signature constraints for a signature or
// counter signature. Counter signatures use the signature constraints unless
// they have their own.
func (p *ValidationPolicy) SignatureConstraints(ctx Context) *SignatureConstraints {
	if ctx == ContextCounterSignature && p.CounterSignature != nil {
		return p.CounterSignature
	}
	return &p.Signature
}

// BasicSignature returns the basic signature constraints of a context.
// Evidence records have none and get an empty set.
func (p *ValidationPolicy) BasicSignature(ctx Context) *BasicSignatureConstraints {
	switch ctx {
	case ContextSignature, ContextCounterSignature:
		return &p.SignatureConstraints(ctx).BasicSignature
	case ContextTimestamp:
		return &p.Timestamp.BasicSignature
	case ContextRevocation:
		return &p.Revocation.BasicSignature
	}
	return &BasicSignatureConstraints{}
}

// SignedAttributes returns the signed attributes constraints of a context.
func (p *ValidationPolicy) SignedAttributes(ctx Context) *SignedAttributesConstraints {
	switch ctx {
	case ContextSignature, ContextCounterSignature:
		return &p.SignatureConstraints(ctx).SignedAttributes
	case ContextTimestamp:
		return &p.Timestamp.SignedAttributes
	}
	return &SignedAttributesConstraints{}
}

// Certificate returns the certificate constraints for a role in a context.
func (p *ValidationPolicy) Certificate(ctx Context, role Role) *CertificateConstraints {
	basic := p.BasicSignature(ctx)
	if role == RoleSigningCertificate {
		return &basic.SigningCertificate
	}
	return &basic.CACertificate
}

// Crypto returns the cryptographic constraint of a context, falling back to
// the global one.
func (p *ValidationPolicy) Crypto(ctx Context) *CryptographicConstraint {
	if ctx == ContextEvidenceRecord {
		if p.EvidenceRecord.Cryptographic != nil {
			return p.EvidenceRecord.Cryptographic
		}
		return &p.Cryptographic
	}
	if c := p.BasicSignature(ctx).Cryptographic; c != nil {
		return c
	}
	return &p.Cryptographic
}

// CertificateCrypto returns the cryptographic constraint for the certificates
// of a role, falling back to the context's constraint.
func (p *ValidationPolicy) CertificateCrypto(ctx Context, role Role) *CryptographicConstraint {
	if c := p.Certificate(ctx, role).Cryptographic; c != nil {
		return c
	}
	return p.Crypto(ctx)
}
