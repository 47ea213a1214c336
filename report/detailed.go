package report

import (
	"sort"
	"time"

	"github.com/georgepadayatti/goades/ades"
	"github.com/georgepadayatti/goades/bbb"
)

// DetailedReport holds every building block result and per-level
// conclusion of a run.
type DetailedReport struct {
	ID              string                  `json:"id"`
	ValidationTime  time.Time               `json:"validationTime"`
	Level           string                  `json:"validationLevel"`
	Policy          string                  `json:"policy,omitempty"`
	Signatures      []*SignatureDetail      `json:"signatures,omitempty"`
	Timestamps      []*TimestampDetail      `json:"timestamps,omitempty"`
	EvidenceRecords []*EvidenceRecordDetail `json:"evidenceRecords,omitempty"`
	// ProofsOfExistence are sorted by object id.
	ProofsOfExistence []*ProofOfExistence `json:"proofsOfExistence,omitempty"`
}

// SignatureDetail holds the results of one signature.
type SignatureDetail struct {
	ID                string        `json:"id"`
	ParentID          string        `json:"parentId,omitempty"`
	BuildingBlocks    []*bbb.Result `json:"buildingBlocks"`
	Basic             *bbb.Result   `json:"basic"`
	LongTermData      *bbb.Result   `json:"longTermData,omitempty"`
	Archival          *bbb.Result   `json:"archivalData,omitempty"`
	BestSignatureTime *time.Time    `json:"bestSignatureTime,omitempty"`
	TimestampIDs      []string      `json:"timestampIds,omitempty"`
	EvidenceRecordIDs []string      `json:"evidenceRecordIds,omitempty"`
}

// Conclusion returns the conclusion of the highest executed level.
func (d *SignatureDetail) Conclusion() *ades.Conclusion {
	switch {
	case d.Archival != nil:
		return d.Archival.Conclusion
	case d.LongTermData != nil:
		return d.LongTermData.Conclusion
	}
	return d.Basic.Conclusion
}

// TimestampDetail holds the results of one timestamp.
type TimestampDetail struct {
	ID             string        `json:"id"`
	Type           string        `json:"type"`
	ProductionTime time.Time     `json:"productionTime"`
	BuildingBlocks []*bbb.Result `json:"buildingBlocks"`
	Basic          *bbb.Result   `json:"basic"`
	PastValidation *bbb.Result   `json:"pastValidation,omitempty"`
}

// Conclusion returns the past validation conclusion when the timestamp was
// re-judged, otherwise the basic one.
func (d *TimestampDetail) Conclusion() *ades.Conclusion {
	if d.PastValidation != nil {
		return d.PastValidation.Conclusion
	}
	return d.Basic.Conclusion
}

// EvidenceRecordDetail holds the results of one evidence record.
type EvidenceRecordDetail struct {
	ID             string        `json:"id"`
	BuildingBlocks []*bbb.Result `json:"buildingBlocks"`
	Basic          *bbb.Result   `json:"basic"`
	Validation     *bbb.Result   `json:"validation"`
	POE            *time.Time    `json:"poe,omitempty"`
}

// Conclusion returns the conclusion of the evidence record process.
func (d *EvidenceRecordDetail) Conclusion() *ades.Conclusion {
	return d.Validation.Conclusion
}

// ProofOfExistence is the earliest proven existence time of an object.
type ProofOfExistence struct {
	ObjectID string    `json:"objectId"`
	Time     time.Time `json:"time"`
	Source   string    `json:"source"`
	Provider string    `json:"provider,omitempty"`
}

func (b *Builder) detailed(id string) *DetailedReport {
	res := b.result
	r := &DetailedReport{
		ID:             id,
		ValidationTime: res.CurrentTime,
		Level:          res.Level.String(),
		Policy:         b.policyName(),
	}

	for _, sr := range res.Signatures {
		d := &SignatureDetail{
			ID:                sr.ID,
			BuildingBlocks:    sr.Blocks.Results(),
			Basic:             sr.Basic(),
			LongTermData:      sr.LongTermData,
			Archival:          sr.Archival,
			BestSignatureTime: sr.BestSignatureTime,
			TimestampIDs:      sr.TimestampIDs,
			EvidenceRecordIDs: sr.EvidenceRecordIDs,
		}
		if s := b.data.Signature(sr.ID); s != nil {
			d.ParentID = s.ParentID
		}
		r.Signatures = append(r.Signatures, d)
	}

	for _, tr := range res.Timestamps {
		d := &TimestampDetail{
			ID:             tr.ID,
			Type:           tr.Type,
			BuildingBlocks: tr.Blocks.Results(),
			Basic:          tr.Basic(),
			PastValidation: tr.PastValidation,
		}
		if t := b.data.Timestamp(tr.ID); t != nil {
			d.ProductionTime = t.ProductionTime
		}
		r.Timestamps = append(r.Timestamps, d)
	}

	for _, er := range res.EvidenceRecords {
		r.EvidenceRecords = append(r.EvidenceRecords, &EvidenceRecordDetail{
			ID:             er.ID,
			BuildingBlocks: er.Blocks.Results(),
			Basic:          er.Blocks.Basic(),
			Validation:     er.Result,
			POE:            er.POE,
		})
	}

	ids := make([]string, 0, len(res.POE))
	for oid := range res.POE {
		ids = append(ids, oid)
	}
	sort.Strings(ids)
	for _, oid := range ids {
		p := res.POE[oid]
		r.ProofsOfExistence = append(r.ProofsOfExistence, &ProofOfExistence{
			ObjectID: oid,
			Time:     p.Time,
			Source:   p.Source.String(),
			Provider: p.ProviderID,
		})
	}
	return r
}

// Signature returns the details of the signature with the given id.
func (r *DetailedReport) Signature(id string) *SignatureDetail {
	for _, s := range r.Signatures {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Timestamp returns the details of the timestamp with the given id.
func (r *DetailedReport) Timestamp(id string) *TimestampDetail {
	for _, t := range r.Timestamps {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// EvidenceRecord returns the details of the evidence record with the given
// id.
func (r *DetailedReport) EvidenceRecord(id string) *EvidenceRecordDetail {
	for _, e := range r.EvidenceRecords {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// FirstSignatureID returns the id of the first signature, or "".
func (r *DetailedReport) FirstSignatureID() string {
	if len(r.Signatures) == 0 {
		return ""
	}
	return r.Signatures[0].ID
}

// FirstTimestampID returns the id of the first timestamp, or "".
func (r *DetailedReport) FirstTimestampID() string {
	if len(r.Timestamps) == 0 {
		return ""
	}
	return r.Timestamps[0].ID
}

// FirstEvidenceRecordID returns the id of the first evidence record, or "".
func (r *DetailedReport) FirstEvidenceRecordID() string {
	if len(r.EvidenceRecords) == 0 {
		return ""
	}
	return r.EvidenceRecords[0].ID
}

// BuildingBlocks returns the building block results of any object.
func (r *DetailedReport) BuildingBlocks(id string) []*bbb.Result {
	if s := r.Signature(id); s != nil {
		return s.BuildingBlocks
	}
	if t := r.Timestamp(id); t != nil {
		return t.BuildingBlocks
	}
	if e := r.EvidenceRecord(id); e != nil {
		return e.BuildingBlocks
	}
	return nil
}

// BuildingBlock returns the result of one building block of an object.
func (r *DetailedReport) BuildingBlock(id string, kind bbb.Kind) *bbb.Result {
	for _, res := range r.BuildingBlocks(id) {
		if res.Kind == kind {
			return res
		}
	}
	return nil
}

// BasicConclusion returns the basic validation conclusion of any object.
func (r *DetailedReport) BasicConclusion(id string) *ades.Conclusion {
	if s := r.Signature(id); s != nil {
		return s.Basic.Conclusion
	}
	if t := r.Timestamp(id); t != nil {
		return t.Basic.Conclusion
	}
	if e := r.EvidenceRecord(id); e != nil {
		return e.Basic.Conclusion
	}
	return nil
}

// LongTermDataConclusion returns the long-term data conclusion of a
// signature, or nil when the level was not executed.
func (r *DetailedReport) LongTermDataConclusion(id string) *ades.Conclusion {
	if s := r.Signature(id); s != nil && s.LongTermData != nil {
		return s.LongTermData.Conclusion
	}
	return nil
}

// ArchivalConclusion returns the archival data conclusion of a signature,
// or nil when the level was not executed.
func (r *DetailedReport) ArchivalConclusion(id string) *ades.Conclusion {
	if s := r.Signature(id); s != nil && s.Archival != nil {
		return s.Archival.Conclusion
	}
	return nil
}

// Conclusion returns the conclusion of the highest executed level of any
// object.
func (r *DetailedReport) Conclusion(id string) *ades.Conclusion {
	if s := r.Signature(id); s != nil {
		return s.Conclusion()
	}
	if t := r.Timestamp(id); t != nil {
		return t.Conclusion()
	}
	if e := r.EvidenceRecord(id); e != nil {
		return e.Conclusion()
	}
	return nil
}

// ProofOfExistenceOf returns the proof of existence of an object.
func (r *DetailedReport) ProofOfExistenceOf(id string) *ProofOfExistence {
	for _, p := range r.ProofsOfExistence {
		if p.ObjectID == id {
			return p
		}
	}
	return nil
}
