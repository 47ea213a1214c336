// Package diagtest builds diagnostic data for tests: a trusted root, end-entity
// certificates issued by it, CRLs, signatures, timestamps and evidence records
// around a fixed validation time.
package diagtest

import (
	"time"

	"github.com/georgepadayatti/goades/diagnostic"
)

// Now is the validation time of every fixture.
var Now = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

// Ids of the objects created by Valid.
const (
	RootID      = "C-ROOT"
	SignerID    = "C-SIGNER"
	TSAID       = "C-TSA"
	CRLID       = "R-CRL"
	SignatureID = "S-1"
	TimestampID = "T-SIG"
)

// RSA2048 is an acceptable RSA/SHA-256 algorithm set.
var RSA2048 = diagnostic.CryptoInfo{EncryptionAlgorithm: "RSA", DigestAlgorithm: "SHA256", KeyLength: 2048}

// Time returns a pointer to t.
func Time(t time.Time) *time.Time {
	return &t
}

// Root returns a trusted self-signed CA certificate.
func Root(id string) *diagnostic.Certificate {
	return &diagnostic.Certificate{
		ID:              id,
		SubjectDN:       "CN=" + id,
		IssuerDN:        "CN=" + id,
		SerialNumber:    "01",
		NotBefore:       Now.AddDate(-10, 0, 0),
		NotAfter:        Now.AddDate(10, 0, 0),
		Trusted:         true,
		SelfSigned:      true,
		SignatureIntact: true,
		CA:              true,
		KeyUsages:       []string{"keyCertSign", "crlSign"},
		Crypto:          RSA2048,
	}
}

// Leaf returns an end-entity certificate issued by issuerID, valid one year
// around Now, with a good status in revocation datum revocationID.
func Leaf(id, issuerID, revocationID string) *diagnostic.Certificate {
	c := &diagnostic.Certificate{
		ID:              id,
		SubjectDN:       "CN=" + id,
		IssuerDN:        "CN=" + issuerID,
		IssuerID:        issuerID,
		SerialNumber:    "1001",
		NotBefore:       Now.AddDate(-1, 0, 0),
		NotAfter:        Now.AddDate(1, 0, 0),
		SignatureIntact: true,
		KeyUsages:       []string{"nonRepudiation"},
		Crypto:          RSA2048,
	}
	if revocationID != "" {
		c.Revocations = []*diagnostic.CertificateRevocation{{RevocationID: revocationID, Status: diagnostic.StatusGood}}
	}
	return c
}

// CRL returns an intact CRL signed by signerID, produced at produced and
// valid for one day.
func CRL(id, signerID string, produced time.Time) *diagnostic.Revocation {
	return &diagnostic.Revocation{
		ID:                   id,
		Type:                 diagnostic.RevocationCRL,
		ProductionDate:       produced,
		ThisUpdate:           Time(produced),
		NextUpdate:           Time(produced.Add(24 * time.Hour)),
		SigningCertificateID: signerID,
		SignatureIntact:      true,
		Crypto:               RSA2048,
	}
}

// OCSP returns an intact OCSP response signed by signerID.
func OCSP(id, signerID string, produced time.Time) *diagnostic.Revocation {
	r := CRL(id, signerID, produced)
	r.Type = diagnostic.RevocationOCSP
	r.ResponderIDMatch = true
	return r
}

// SigningCertificateRef returns a matching signing-certificate reference.
func SigningCertificateRef(certID, digestAlgorithm string) *diagnostic.CertificateRef {
	return &diagnostic.CertificateRef{
		Origin:              diagnostic.RefSigningCertificate,
		CertificateID:       certID,
		DigestAlgorithm:     digestAlgorithm,
		DigestPresent:       true,
		DigestMatch:         true,
		IssuerSerialPresent: true,
		IssuerSerialMatch:   true,
	}
}

// Signature returns an intact XAdES signature by certID over one document.
func Signature(id, certID string) *diagnostic.Signature {
	return &diagnostic.Signature{
		ID:                   id,
		Format:               "XAdES-BASELINE-LTA",
		ClaimedSigningTime:   Time(Now.Add(-2 * time.Hour)),
		SigningCertificateID: certID,
		CertificateRefs:      []*diagnostic.CertificateRef{SigningCertificateRef(certID, "SHA256")},
		SignatureIntact:      true,
		DigestMatchers: []*diagnostic.DigestMatcher{{
			Type:            diagnostic.MatcherReference,
			Name:            "document.xml",
			DigestAlgorithm: "SHA256",
			DataFound:       true,
			DataIntact:      true,
		}},
		Crypto: RSA2048,
	}
}

// Timestamp returns an intact timestamp of the given type by certID,
// produced at produced and covering the given objects.
func Timestamp(id, typ, certID string, produced time.Time, covered ...diagnostic.ObjectRef) *diagnostic.Timestamp {
	return &diagnostic.Timestamp{
		ID:                   id,
		Type:                 typ,
		ProductionTime:       produced,
		SigningCertificateID: certID,
		CertificateRefs:      []*diagnostic.CertificateRef{SigningCertificateRef(certID, "SHA256")},
		MessageImprint: diagnostic.DigestMatcher{
			Type:            diagnostic.MatcherMessageImprint,
			DigestAlgorithm: "SHA256",
			DataFound:       true,
			DataIntact:      true,
		},
		SignatureIntact:    true,
		Crypto:             RSA2048,
		TimestampedObjects: covered,
	}
}

// SignatureRef references a signature as a covered object.
func SignatureRef(id string) diagnostic.ObjectRef {
	return diagnostic.ObjectRef{ID: id, Category: diagnostic.ObjectSignature}
}

// EvidenceRecord returns an external evidence record over the given files,
// protected by the given timestamps and covering the given objects.
func EvidenceRecord(id string, files []string, timestampIDs []string, covered ...diagnostic.ObjectRef) *diagnostic.EvidenceRecord {
	er := &diagnostic.EvidenceRecord{
		ID:             id,
		Type:           "XML_EVIDENCE_RECORD",
		Origin:         diagnostic.OriginExternal,
		TimestampIDs:   timestampIDs,
		CoveredObjects: covered,
	}
	for _, f := range files {
		er.DigestMatchers = append(er.DigestMatchers, &diagnostic.DigestMatcher{
			Type:            diagnostic.MatcherEvidenceRecordObject,
			Name:            f,
			DigestAlgorithm: "SHA256",
			DataFound:       true,
			DataIntact:      true,
		})
	}
	return er
}

// Valid returns diagnostic data that validates under the default policy:
// one signature by a certificate with a good CRL status, covered by a
// signature timestamp issued by a TSA under the same root.
func Valid() *diagnostic.Data {
	return &diagnostic.Data{
		DocumentName:   "document.xml",
		ValidationDate: Now,
		Certificates: []*diagnostic.Certificate{
			Leaf(SignerID, RootID, CRLID),
			Leaf(TSAID, RootID, CRLID),
			Root(RootID),
		},
		Revocations: []*diagnostic.Revocation{CRL(CRLID, RootID, Now.Add(-time.Hour))},
		Signatures:  []*diagnostic.Signature{Signature(SignatureID, SignerID)},
		Timestamps: []*diagnostic.Timestamp{
			Timestamp(TimestampID, diagnostic.TimestampSignature, TSAID, Now.Add(-90*time.Minute), SignatureRef(SignatureID)),
		},
	}
}

// ASiCE turns data into an ASiC-E container whose manifest lists files.
// The signature references every file it signs.
func ASiCE(d *diagnostic.Data, files ...string) *diagnostic.Data {
	d.ContainerInfo = &diagnostic.ContainerInfo{
		ContainerType:       diagnostic.ContainerASiCE,
		ZipComment:          "mimetype=application/vnd.etsi.asic-e+zip",
		MimeTypeFilePresent: true,
		MimeTypeContent:     "application/vnd.etsi.asic-e+zip",
		ContentFiles:        files,
		ManifestFiles: []*diagnostic.ManifestFile{{
			Filename:          "META-INF/ASiCManifest.xml",
			SignatureFilename: "META-INF/signatures.xml",
			Entries:           files,
		}},
	}
	for _, s := range d.Signatures {
		s.SignatureFilename = "META-INF/signatures.xml"
	}
	return d
}

// Revoke marks certID as revoked (or suspended with reason certificateHold)
// at date in revocation datum revocationID.
func Revoke(d *diagnostic.Data, certID, revocationID string, date time.Time, reason diagnostic.RevocationReason) {
	c := d.Certificate(certID)
	entry := c.CertificateRevocation(revocationID)
	if entry == nil {
		entry = &diagnostic.CertificateRevocation{RevocationID: revocationID}
		c.Revocations = append(c.Revocations, entry)
	}
	entry.Status = diagnostic.StatusRevoked
	entry.RevocationDate = Time(date)
	entry.Reason = reason
}
