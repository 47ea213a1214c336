package report

import (
	"time"

	"github.com/georgepadayatti/goades/ades"
	"github.com/georgepadayatti/goades/diagnostic"
)

// SimpleReport condenses a run into one verdict per object.
type SimpleReport struct {
	ID                   string                  `json:"id"`
	ValidationTime       time.Time               `json:"validationTime"`
	Level                string                  `json:"validationLevel"`
	Policy               string                  `json:"policy,omitempty"`
	DocumentName         string                  `json:"documentName,omitempty"`
	ValidSignaturesCount int                     `json:"validSignaturesCount"`
	SignaturesCount      int                     `json:"signaturesCount"`
	Signatures           []*SimpleSignature      `json:"signatures,omitempty"`
	Timestamps           []*SimpleTimestamp      `json:"timestamps,omitempty"`
	EvidenceRecords      []*SimpleEvidenceRecord `json:"evidenceRecords,omitempty"`
	// Semantics describe every indication and sub-indication of the report,
	// in order of first appearance. Only set when semantics were requested.
	Semantics []Semantic `json:"semantics,omitempty"`
}

// Verdict is an indication with its sub-indication and messages.
type Verdict struct {
	Indication    ades.Indication    `json:"indication"`
	SubIndication ades.SubIndication `json:"subIndication,omitempty"`
	Errors        []ades.Message     `json:"errors,omitempty"`
	Warnings      []ades.Message     `json:"warnings,omitempty"`
	Infos         []ades.Message     `json:"infos,omitempty"`
}

func verdictOf(c *ades.Conclusion, indication ades.Indication) Verdict {
	return Verdict{
		Indication:    indication,
		SubIndication: c.SubIndication,
		Errors:        c.Errors,
		Warnings:      c.Warnings,
		Infos:         c.Infos,
	}
}

// ChainItem is one certificate of a chain summary.
type ChainItem struct {
	ID      string `json:"id"`
	Subject string `json:"subject,omitempty"`
	Trusted bool   `json:"trusted,omitempty"`
}

// SimpleSignature is the verdict of a signature. Its indication is
// TOTAL_PASSED, TOTAL_FAILED or INDETERMINATE.
type SimpleSignature struct {
	Verdict
	ID                 string      `json:"id"`
	ParentID           string      `json:"parentId,omitempty"`
	Format             string      `json:"format,omitempty"`
	Filename           string      `json:"filename,omitempty"`
	ClaimedSigningTime *time.Time  `json:"claimedSigningTime,omitempty"`
	BestSignatureTime  *time.Time  `json:"bestSignatureTime,omitempty"`
	SignedBy           string      `json:"signedBy,omitempty"`
	CertificateChain   []ChainItem `json:"certificateChain,omitempty"`
	Qualification      string      `json:"qualification,omitempty"`
	TimestampIDs       []string    `json:"timestampIds,omitempty"`
	EvidenceRecordIDs  []string    `json:"evidenceRecordIds,omitempty"`
	// ExtensionPeriodMin and ExtensionPeriodMax bound the period in which a
	// TRY_LATER signature should be validated again. Only set when
	// semantics were requested.
	ExtensionPeriodMin *time.Time `json:"extensionPeriodMin,omitempty"`
	ExtensionPeriodMax *time.Time `json:"extensionPeriodMax,omitempty"`
}

// SimpleTimestamp is the verdict of a timestamp.
type SimpleTimestamp struct {
	Verdict
	ID               string      `json:"id"`
	Type             string      `json:"type"`
	ProductionTime   time.Time   `json:"productionTime"`
	ProducedBy       string      `json:"producedBy,omitempty"`
	CertificateChain []ChainItem `json:"certificateChain,omitempty"`
}

// SimpleEvidenceRecord is the verdict of an evidence record.
type SimpleEvidenceRecord struct {
	Verdict
	ID           string     `json:"id"`
	Type         string     `json:"type,omitempty"`
	Origin       string     `json:"origin,omitempty"`
	POE          *time.Time `json:"poe,omitempty"`
	TimestampIDs []string   `json:"timestampIds,omitempty"`
}

// Semantic explains an indication or sub-indication.
type Semantic struct {
	Value       string `json:"value"`
	Description string `json:"description"`
}

func (b *Builder) simple(id string) *SimpleReport {
	res := b.result
	r := &SimpleReport{
		ID:              id,
		ValidationTime:  res.CurrentTime,
		Level:           res.Level.String(),
		Policy:          b.policyName(),
		DocumentName:    b.data.DocumentName,
		SignaturesCount: len(res.Signatures),
	}

	for _, sr := range res.Signatures {
		s := b.data.Signature(sr.ID)
		c := sr.Conclusion()
		ss := &SimpleSignature{
			Verdict:            verdictOf(c, c.Indication.Total()),
			ID:                 sr.ID,
			ParentID:           s.ParentID,
			Format:             s.Format,
			Filename:           s.SignatureFilename,
			ClaimedSigningTime: s.ClaimedSigningTime,
			BestSignatureTime:  sr.BestSignatureTime,
			CertificateChain:   chainSummary(sr.Blocks.Chain),
			TimestampIDs:       sr.TimestampIDs,
			EvidenceRecordIDs:  sr.EvidenceRecordIDs,
		}
		if cert := b.data.Certificate(s.SigningCertificateID); cert != nil {
			ss.SignedBy = cert.SubjectDN
		}
		if b.qualifier != nil {
			ss.Qualification = b.qualifier.Qualify(s, c)
		}
		if res.IncludeSemantics && c.SubIndication == ades.SubIndicationTryLater {
			ss.ExtensionPeriodMin, ss.ExtensionPeriodMax = b.extensionPeriod(s)
		}
		if ss.Indication == ades.IndicationTotalPassed {
			r.ValidSignaturesCount++
		}
		r.Signatures = append(r.Signatures, ss)
	}

	for _, tr := range res.Timestamps {
		t := b.data.Timestamp(tr.ID)
		c := tr.Conclusion()
		st := &SimpleTimestamp{
			Verdict:          verdictOf(c, c.Indication),
			ID:               tr.ID,
			Type:             tr.Type,
			ProductionTime:   t.ProductionTime,
			CertificateChain: chainSummary(tr.Blocks.Chain),
		}
		if cert := b.data.Certificate(t.SigningCertificateID); cert != nil {
			st.ProducedBy = cert.SubjectDN
		}
		r.Timestamps = append(r.Timestamps, st)
	}

	for _, er := range res.EvidenceRecords {
		e := b.data.EvidenceRecord(er.ID)
		c := er.Conclusion()
		r.EvidenceRecords = append(r.EvidenceRecords, &SimpleEvidenceRecord{
			Verdict:      verdictOf(c, c.Indication),
			ID:           er.ID,
			Type:         e.Type,
			Origin:       e.Origin,
			POE:          er.POE,
			TimestampIDs: e.TimestampIDs,
		})
	}

	if res.IncludeSemantics {
		r.Semantics = b.semantics(r)
	}
	return r
}

func chainSummary(chain *diagnostic.Chain) []ChainItem {
	if chain == nil {
		return nil
	}
	items := make([]ChainItem, 0, len(chain.Certificates))
	for _, c := range chain.Certificates {
		items = append(items, ChainItem{ID: c.ID, Subject: c.SubjectDN, Trusted: c.Trusted})
	}
	return items
}

// extensionPeriod returns the next updates of the signing certificate's
// revocation data that fall after the validation time: the earliest one and
// the latest one.
func (b *Builder) extensionPeriod(s *diagnostic.Signature) (*time.Time, *time.Time) {
	cert := b.data.Certificate(s.SigningCertificateID)
	if cert == nil {
		return nil, nil
	}
	var lo, hi *time.Time
	for _, entry := range cert.Revocations {
		rev := b.data.Revocation(entry.RevocationID)
		if rev == nil || rev.NextUpdate == nil || !rev.NextUpdate.After(b.result.CurrentTime) {
			continue
		}
		next := *rev.NextUpdate
		if lo == nil || next.Before(*lo) {
			lo = &next
		}
		if hi == nil || next.After(*hi) {
			hi = &next
		}
	}
	return lo, hi
}

func (b *Builder) semantics(r *SimpleReport) []Semantic {
	var out []Semantic
	seen := make(map[string]bool)
	add := func(values ...string) {
		for _, v := range values {
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			out = append(out, Semantic{Value: v, Description: b.text.Semantics(v)})
		}
	}
	for _, s := range r.Signatures {
		add(string(s.Indication), string(s.SubIndication))
	}
	for _, t := range r.Timestamps {
		add(string(t.Indication), string(t.SubIndication))
	}
	for _, e := range r.EvidenceRecords {
		add(string(e.Indication), string(e.SubIndication))
	}
	return out
}

// Signature returns the verdict of the signature with the given id.
func (r *SimpleReport) Signature(id string) *SimpleSignature {
	for _, s := range r.Signatures {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Timestamp returns the verdict of the timestamp with the given id.
func (r *SimpleReport) Timestamp(id string) *SimpleTimestamp {
	for _, t := range r.Timestamps {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// EvidenceRecord returns the verdict of the evidence record with the given
// id.
func (r *SimpleReport) EvidenceRecord(id string) *SimpleEvidenceRecord {
	for _, e := range r.EvidenceRecords {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// FirstSignature returns the first signature verdict, or nil.
func (r *SimpleReport) FirstSignature() *SimpleSignature {
	if len(r.Signatures) == 0 {
		return nil
	}
	return r.Signatures[0]
}

// FirstTimestamp returns the first timestamp verdict, or nil.
func (r *SimpleReport) FirstTimestamp() *SimpleTimestamp {
	if len(r.Timestamps) == 0 {
		return nil
	}
	return r.Timestamps[0]
}

// FirstEvidenceRecord returns the first evidence record verdict, or nil.
func (r *SimpleReport) FirstEvidenceRecord() *SimpleEvidenceRecord {
	if len(r.EvidenceRecords) == 0 {
		return nil
	}
	return r.EvidenceRecords[0]
}

// PassedCount returns the number of TOTAL_PASSED signatures.
func (r *SimpleReport) PassedCount() int {
	return r.ValidSignaturesCount
}

// FailedCount returns the number of TOTAL_FAILED signatures.
func (r *SimpleReport) FailedCount() int {
	count := 0
	for _, s := range r.Signatures {
		if s.Indication == ades.IndicationTotalFailed {
			count++
		}
	}
	return count
}

// Overall combines the signature verdicts: TOTAL_PASSED when every signature
// passed, TOTAL_FAILED when one failed, INDETERMINATE otherwise. A report
// without signatures is INDETERMINATE.
func (r *SimpleReport) Overall() ades.Indication {
	switch {
	case len(r.Signatures) == 0:
		return ades.IndicationIndeterminate
	case r.FailedCount() > 0:
		return ades.IndicationTotalFailed
	case r.ValidSignaturesCount == len(r.Signatures):
		return ades.IndicationTotalPassed
	}
	return ades.IndicationIndeterminate
}
