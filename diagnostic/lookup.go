package diagnostic

// MaxChainLength caps chain building so cyclic issuer links always terminate.
const MaxChainLength = 16

// Signature returns the signature with the given id.
func (d *Data) Signature(id string) *Signature {
	for _, s := range d.Signatures {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Certificate returns the certificate with the given id.
func (d *Data) Certificate(id string) *Certificate {
	if id == "" {
		return nil
	}
	for _, c := range d.Certificates {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Revocation returns the revocation datum with the given id.
func (d *Data) Revocation(id string) *Revocation {
	for _, r := range d.Revocations {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// Timestamp returns the timestamp with the given id.
func (d *Data) Timestamp(id string) *Timestamp {
	for _, t := range d.Timestamps {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// EvidenceRecord returns the evidence record with the given id.
func (d *Data) EvidenceRecord(id string) *EvidenceRecord {
	for _, e := range d.EvidenceRecords {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// Chain is a certificate chain from a leaf towards its trust anchor.
type Chain struct {
	Certificates []*Certificate
	// Orphan is set when an issuer link points to an unknown certificate.
	Orphan bool
	// Truncated is set when the chain hit MaxChainLength or an issuer loop.
	Truncated bool
}

// Leaf returns the first certificate of the chain.
func (c *Chain) Leaf() *Certificate {
	if len(c.Certificates) == 0 {
		return nil
	}
	return c.Certificates[0]
}

// TrustAnchor returns the first trusted certificate of the chain.
func (c *Chain) TrustAnchor() *Certificate {
	for _, cert := range c.Certificates {
		if cert.Trusted {
			return cert
		}
	}
	return nil
}

// Trusted reports whether the chain reaches a trust anchor.
func (c *Chain) Trusted() bool {
	return c.TrustAnchor() != nil
}

// IDs returns the certificate ids of the chain in order.
func (c *Chain) IDs() []string {
	ids := make([]string, len(c.Certificates))
	for i, cert := range c.Certificates {
		ids[i] = cert.ID
	}
	return ids
}

// BuildChain walks issuer links from the given certificate. The walk stops at
// a self-signed certificate, a missing issuer or after MaxChainLength steps.
func (d *Data) BuildChain(certID string) *Chain {
	chain := &Chain{}
	seen := make(map[string]bool)
	cert := d.Certificate(certID)
	if cert == nil {
		chain.Orphan = certID != ""
		return chain
	}
	for cert != nil {
		if seen[cert.ID] || len(chain.Certificates) >= MaxChainLength {
			chain.Truncated = true
			break
		}
		seen[cert.ID] = true
		chain.Certificates = append(chain.Certificates, cert)
		if cert.SelfSigned || cert.IssuerID == "" || cert.IssuerID == cert.ID {
			break
		}
		issuer := d.Certificate(cert.IssuerID)
		if issuer == nil {
			chain.Orphan = true
		}
		cert = issuer
	}
	return chain
}

// Issuer returns the issuer certificate of c.
func (d *Data) Issuer(c *Certificate) *Certificate {
	if c == nil || c.IssuerID == "" || c.IssuerID == c.ID {
		return nil
	}
	return d.Certificate(c.IssuerID)
}

// CounterSignatures returns the signatures that counter-sign the given one.
func (d *Data) CounterSignatures(signatureID string) []*Signature {
	var out []*Signature
	for _, s := range d.Signatures {
		if s.ParentID == signatureID {
			out = append(out, s)
		}
	}
	return out
}

// TimestampsCovering returns the timestamps covering the object, in
// document order.
func (d *Data) TimestampsCovering(id string) []*Timestamp {
	var out []*Timestamp
	for _, t := range d.Timestamps {
		if t.Covers(id) {
			out = append(out, t)
		}
	}
	return out
}

// EvidenceRecordsCovering returns the evidence records covering the object.
func (d *Data) EvidenceRecordsCovering(id string) []*EvidenceRecord {
	var out []*EvidenceRecord
	for _, e := range d.EvidenceRecords {
		if e.Covers(id) {
			out = append(out, e)
		}
	}
	return out
}

// SignedFiles returns the names of the files signed by a signature: the
// names of its digest matchers plus the entries of its container manifest.
func (d *Data) SignedFiles(s *Signature) []string {
	var files []string
	seen := make(map[string]bool)
	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			files = append(files, name)
		}
	}
	for _, m := range s.DigestMatchers {
		switch m.Type {
		case MatcherReference, MatcherObject, MatcherManifestEntry, MatcherMessageDigest:
			if m.DataFound {
				add(m.Name)
			}
		}
	}
	if d.ContainerInfo != nil && s.SignatureFilename != "" {
		for _, mf := range d.ContainerInfo.ManifestFiles {
			if mf.SignatureFilename == s.SignatureFilename && !mf.ArchiveManifest {
				for _, e := range mf.Entries {
					add(e)
				}
			}
		}
	}
	return files
}

// TimestampedFiles returns the container files covered by a container
// timestamp: its manifest entries and the names of its digest matchers.
func (d *Data) TimestampedFiles(t *Timestamp) []string {
	var files []string
	seen := make(map[string]bool)
	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			files = append(files, name)
		}
	}
	for _, m := range t.DigestMatchers {
		if m.DataFound {
			add(m.Name)
		}
	}
	if d.ContainerInfo != nil && t.Filename != "" {
		for _, mf := range d.ContainerInfo.ManifestFiles {
			if mf.SignatureFilename == t.Filename {
				for _, e := range mf.Entries {
					add(e)
				}
			}
		}
	}
	return files
}
