package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"

	"github.com/georgepadayatti/goades/ades"
	"github.com/georgepadayatti/goades/bbb"
	"github.com/georgepadayatti/goades/i18n"
)

// Format is a report rendering.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// ParseFormat parses a rendering name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatXML:
		return f, nil
	}
	return "", fmt.Errorf("unknown report format %q", s)
}

// Renderer is implemented by both reports.
type Renderer interface {
	ToJSON() ([]byte, error)
	ToXML() ([]byte, error)
	ToText() string
}

// Write renders r in format f to w.
func Write(w io.Writer, r Renderer, f Format) error {
	var (
		out []byte
		err error
	)
	switch f {
	case FormatJSON:
		out, err = r.ToJSON()
	case FormatXML:
		out, err = r.ToXML()
	case FormatText:
		out = []byte(r.ToText())
	default:
		return fmt.Errorf("unknown report format %q", f)
	}
	if err != nil {
		return fmt.Errorf("rendering %s report: %w", f, err)
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// ToJSON serializes the report to JSON.
func (r *SimpleReport) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// ToJSON serializes the report to JSON.
func (r *DetailedReport) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

func newDocument(root string, id string, at time.Time) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	el := doc.CreateElement(root)
	el.CreateAttr("Id", id)
	el.CreateElement("ValidationTime").SetText(i18n.FormatTime(at))
	return doc, el
}

func finish(doc *etree.Document) ([]byte, error) {
	doc.Indent(2)
	return doc.WriteToBytes()
}

func textElement(parent *etree.Element, tag, value string) {
	if value != "" {
		parent.CreateElement(tag).SetText(value)
	}
}

func timeElement(parent *etree.Element, tag string, t *time.Time) {
	if t != nil {
		parent.CreateElement(tag).SetText(i18n.FormatTime(*t))
	}
}

func messageElements(parent *etree.Element, tag string, msgs []ades.Message) {
	for _, m := range msgs {
		el := parent.CreateElement(tag)
		el.CreateAttr("Key", string(m.Key))
		el.SetText(m.Value)
	}
}

func noteElement(parent *etree.Element, tag string, m *ades.Message) {
	if m != nil {
		messageElements(parent, tag, []ades.Message{*m})
	}
}

func verdictElements(parent *etree.Element, v Verdict) {
	parent.CreateElement("Indication").SetText(string(v.Indication))
	textElement(parent, "SubIndication", string(v.SubIndication))
	messageElements(parent, "Error", v.Errors)
	messageElements(parent, "Warning", v.Warnings)
	messageElements(parent, "Info", v.Infos)
}

func chainElement(parent *etree.Element, chain []ChainItem) {
	if len(chain) == 0 {
		return
	}
	el := parent.CreateElement("CertificateChain")
	for _, c := range chain {
		cert := el.CreateElement("Certificate")
		cert.CreateAttr("Id", c.ID)
		if c.Trusted {
			cert.CreateAttr("Trusted", "true")
		}
		cert.SetText(c.Subject)
	}
}

func idList(parent *etree.Element, tag, item string, ids []string) {
	if len(ids) == 0 {
		return
	}
	el := parent.CreateElement(tag)
	for _, id := range ids {
		el.CreateElement(item).CreateAttr("Id", id)
	}
}

// ToXML serializes the report to XML.
func (r *SimpleReport) ToXML() ([]byte, error) {
	doc, root := newDocument("SimpleReport", r.ID, r.ValidationTime)
	root.CreateElement("ValidationLevel").SetText(r.Level)
	textElement(root, "Policy", r.Policy)
	textElement(root, "DocumentName", r.DocumentName)
	root.CreateElement("ValidSignaturesCount").SetText(strconv.Itoa(r.ValidSignaturesCount))
	root.CreateElement("SignaturesCount").SetText(strconv.Itoa(r.SignaturesCount))

	for _, s := range r.Signatures {
		el := root.CreateElement("Signature")
		el.CreateAttr("Id", s.ID)
		if s.ParentID != "" {
			el.CreateAttr("CounterSignatureOf", s.ParentID)
		}
		textElement(el, "Format", s.Format)
		textElement(el, "Filename", s.Filename)
		timeElement(el, "ClaimedSigningTime", s.ClaimedSigningTime)
		timeElement(el, "BestSignatureTime", s.BestSignatureTime)
		textElement(el, "SignedBy", s.SignedBy)
		chainElement(el, s.CertificateChain)
		verdictElements(el, s.Verdict)
		textElement(el, "Qualification", s.Qualification)
		timeElement(el, "ExtensionPeriodMin", s.ExtensionPeriodMin)
		timeElement(el, "ExtensionPeriodMax", s.ExtensionPeriodMax)
		idList(el, "Timestamps", "Timestamp", s.TimestampIDs)
		idList(el, "EvidenceRecords", "EvidenceRecord", s.EvidenceRecordIDs)
	}
	for _, t := range r.Timestamps {
		el := root.CreateElement("Timestamp")
		el.CreateAttr("Id", t.ID)
		el.CreateAttr("Type", t.Type)
		el.CreateElement("ProductionTime").SetText(i18n.FormatTime(t.ProductionTime))
		textElement(el, "ProducedBy", t.ProducedBy)
		chainElement(el, t.CertificateChain)
		verdictElements(el, t.Verdict)
	}
	for _, e := range r.EvidenceRecords {
		el := root.CreateElement("EvidenceRecord")
		el.CreateAttr("Id", e.ID)
		textElement(el, "Type", e.Type)
		textElement(el, "Origin", e.Origin)
		timeElement(el, "POE", e.POE)
		verdictElements(el, e.Verdict)
		idList(el, "Timestamps", "Timestamp", e.TimestampIDs)
	}
	for _, s := range r.Semantics {
		el := root.CreateElement("Semantic")
		el.CreateAttr("Value", s.Value)
		el.SetText(s.Description)
	}
	return finish(doc)
}

func conclusionElement(parent *etree.Element, c *ades.Conclusion) {
	el := parent.CreateElement("Conclusion")
	verdictElements(el, verdictOf(c, c.Indication))
}

func resultElement(parent *etree.Element, tag string, r *bbb.Result) {
	if r == nil {
		return
	}
	el := parent.CreateElement(tag)
	el.CreateAttr("Kind", string(r.Kind))
	if r.ID != "" {
		el.CreateAttr("Id", r.ID)
	}
	if r.TrustAnchor {
		el.CreateAttr("TrustAnchor", "true")
	}
	if r.RevocationID != "" {
		el.CreateAttr("RevocationId", r.RevocationID)
	}
	conclusionElement(el, r.Conclusion)
	for _, rec := range r.Records {
		c := el.CreateElement("Constraint")
		c.CreateAttr("Status", string(rec.Status))
		if rec.ID != "" {
			c.CreateAttr("Id", rec.ID)
		}
		name := c.CreateElement("Name")
		name.CreateAttr("Key", string(rec.Name.Key))
		name.SetText(rec.Name.Value)
		noteElement(c, "Error", rec.Error)
		noteElement(c, "Warning", rec.Warning)
		noteElement(c, "Info", rec.Info)
		textElement(c, "AdditionalInfo", rec.AdditionalInfo)
	}
	for _, child := range r.Children {
		resultElement(el, "BuildingBlock", child)
	}
}

// ToXML serializes the report to XML.
func (r *DetailedReport) ToXML() ([]byte, error) {
	doc, root := newDocument("DetailedReport", r.ID, r.ValidationTime)
	root.CreateElement("ValidationLevel").SetText(r.Level)
	textElement(root, "Policy", r.Policy)

	for _, s := range r.Signatures {
		el := root.CreateElement("Signature")
		el.CreateAttr("Id", s.ID)
		if s.ParentID != "" {
			el.CreateAttr("CounterSignatureOf", s.ParentID)
		}
		timeElement(el, "BestSignatureTime", s.BestSignatureTime)
		for _, b := range s.BuildingBlocks {
			resultElement(el, "BuildingBlock", b)
		}
		resultElement(el, "BasicValidation", s.Basic)
		resultElement(el, "LongTermDataValidation", s.LongTermData)
		resultElement(el, "ArchivalDataValidation", s.Archival)
	}
	for _, t := range r.Timestamps {
		el := root.CreateElement("Timestamp")
		el.CreateAttr("Id", t.ID)
		el.CreateAttr("Type", t.Type)
		el.CreateElement("ProductionTime").SetText(i18n.FormatTime(t.ProductionTime))
		for _, b := range t.BuildingBlocks {
			resultElement(el, "BuildingBlock", b)
		}
		resultElement(el, "BasicValidation", t.Basic)
		resultElement(el, "PastSignatureValidation", t.PastValidation)
	}
	for _, e := range r.EvidenceRecords {
		el := root.CreateElement("EvidenceRecord")
		el.CreateAttr("Id", e.ID)
		timeElement(el, "POE", e.POE)
		for _, b := range e.BuildingBlocks {
			resultElement(el, "BuildingBlock", b)
		}
		resultElement(el, "BasicValidation", e.Basic)
		resultElement(el, "EvidenceRecordValidation", e.Validation)
	}
	for _, p := range r.ProofsOfExistence {
		el := root.CreateElement("ProofOfExistence")
		el.CreateAttr("Id", p.ObjectID)
		el.CreateAttr("Source", p.Source)
		if p.Provider != "" {
			el.CreateAttr("Provider", p.Provider)
		}
		el.SetText(i18n.FormatTime(p.Time))
	}
	return finish(doc)
}

func writeVerdict(sb *strings.Builder, v Verdict) {
	sb.WriteString(fmt.Sprintf("Result: %s", v.Indication))
	if v.SubIndication != "" {
		sb.WriteString(fmt.Sprintf(" (%s)", v.SubIndication))
	}
	sb.WriteString("\n")
	for _, m := range v.Errors {
		sb.WriteString(fmt.Sprintf("  ERROR: %s - %s\n", m.Key, m.Value))
	}
	for _, m := range v.Warnings {
		sb.WriteString(fmt.Sprintf("  WARNING: %s - %s\n", m.Key, m.Value))
	}
	for _, m := range v.Infos {
		sb.WriteString(fmt.Sprintf("  INFO: %s - %s\n", m.Key, m.Value))
	}
}

// ToText renders a plain text summary.
func (r *SimpleReport) ToText() string {
	var sb strings.Builder

	sb.WriteString("=== VALIDATION REPORT ===\n")
	sb.WriteString(fmt.Sprintf("Report ID: %s\n", r.ID))
	sb.WriteString(fmt.Sprintf("Validation Time: %s\n", i18n.FormatTime(r.ValidationTime)))
	sb.WriteString(fmt.Sprintf("Validation Level: %s\n", r.Level))
	if r.Policy != "" {
		sb.WriteString(fmt.Sprintf("Policy: %s\n", r.Policy))
	}
	if r.DocumentName != "" {
		sb.WriteString(fmt.Sprintf("Document: %s\n", r.DocumentName))
	}
	sb.WriteString(fmt.Sprintf("\nOverall Result: %s\n", r.Overall()))
	sb.WriteString(fmt.Sprintf("\nSignatures: %d total, %d passed, %d failed\n",
		r.SignaturesCount, r.PassedCount(), r.FailedCount()))

	for i, s := range r.Signatures {
		sb.WriteString(fmt.Sprintf("\n--- Signature %d ---\n", i+1))
		sb.WriteString(fmt.Sprintf("ID: %s\n", s.ID))
		if s.ParentID != "" {
			sb.WriteString(fmt.Sprintf("Counter signature of: %s\n", s.ParentID))
		}
		if s.Format != "" {
			sb.WriteString(fmt.Sprintf("Format: %s\n", s.Format))
		}
		if s.SignedBy != "" {
			sb.WriteString(fmt.Sprintf("Signed by: %s\n", s.SignedBy))
		}
		if s.ClaimedSigningTime != nil {
			sb.WriteString(fmt.Sprintf("Claimed Signing Time: %s\n", i18n.FormatTime(*s.ClaimedSigningTime)))
		}
		if s.BestSignatureTime != nil {
			sb.WriteString(fmt.Sprintf("Best Signature Time: %s\n", i18n.FormatTime(*s.BestSignatureTime)))
		}
		if s.Qualification != "" {
			sb.WriteString(fmt.Sprintf("Qualification: %s\n", s.Qualification))
		}
		if len(s.CertificateChain) > 0 {
			sb.WriteString("Certificate Chain:\n")
			for j, c := range s.CertificateChain {
				sb.WriteString(fmt.Sprintf("  %d. %s", j+1, c.Subject))
				if c.Trusted {
					sb.WriteString(" [trusted]")
				}
				sb.WriteString("\n")
			}
		}
		if s.ExtensionPeriodMin != nil {
			sb.WriteString(fmt.Sprintf("Validate again after: %s\n", i18n.FormatTime(*s.ExtensionPeriodMin)))
		}
		writeVerdict(&sb, s.Verdict)
	}

	if len(r.Timestamps) > 0 {
		sb.WriteString("\nTimestamps:\n")
		for _, t := range r.Timestamps {
			sb.WriteString(fmt.Sprintf("  - %s %s: %s\n", t.ID, t.Type, i18n.FormatTime(t.ProductionTime)))
			sb.WriteString("    ")
			writeVerdict(&sb, t.Verdict)
		}
	}
	if len(r.EvidenceRecords) > 0 {
		sb.WriteString("\nEvidence Records:\n")
		for _, e := range r.EvidenceRecords {
			sb.WriteString(fmt.Sprintf("  - %s\n", e.ID))
			sb.WriteString("    ")
			writeVerdict(&sb, e.Verdict)
		}
	}
	if len(r.Semantics) > 0 {
		sb.WriteString("\nSemantics:\n")
		for _, s := range r.Semantics {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", s.Value, s.Description))
		}
	}
	return sb.String()
}

func writeResult(sb *strings.Builder, depth int, r *bbb.Result) {
	if r == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	sb.WriteString(fmt.Sprintf("%s%s", indent, r.Kind))
	if r.ID != "" {
		sb.WriteString(" " + r.ID)
	}
	sb.WriteString(fmt.Sprintf(": %s", r.Conclusion.Indication))
	if r.Conclusion.SubIndication != "" {
		sb.WriteString(fmt.Sprintf(" (%s)", r.Conclusion.SubIndication))
	}
	sb.WriteString("\n")
	for _, rec := range r.Records {
		sb.WriteString(fmt.Sprintf("%s  [%s] %s\n", indent, rec.Status, rec.Name.Value))
	}
	for _, c := range r.Children {
		writeResult(sb, depth+1, c)
	}
}

// ToText renders every result tree as indented text.
func (r *DetailedReport) ToText() string {
	var sb strings.Builder

	sb.WriteString("=== DETAILED VALIDATION REPORT ===\n")
	sb.WriteString(fmt.Sprintf("Report ID: %s\n", r.ID))
	sb.WriteString(fmt.Sprintf("Validation Time: %s\n", i18n.FormatTime(r.ValidationTime)))
	sb.WriteString(fmt.Sprintf("Validation Level: %s\n", r.Level))

	for _, s := range r.Signatures {
		sb.WriteString(fmt.Sprintf("\n--- Signature %s ---\n", s.ID))
		for _, b := range s.BuildingBlocks {
			writeResult(&sb, 0, b)
		}
		writeResult(&sb, 0, s.Basic)
		writeResult(&sb, 0, s.LongTermData)
		writeResult(&sb, 0, s.Archival)
	}
	for _, t := range r.Timestamps {
		sb.WriteString(fmt.Sprintf("\n--- Timestamp %s ---\n", t.ID))
		for _, b := range t.BuildingBlocks {
			writeResult(&sb, 0, b)
		}
		writeResult(&sb, 0, t.Basic)
		writeResult(&sb, 0, t.PastValidation)
	}
	for _, e := range r.EvidenceRecords {
		sb.WriteString(fmt.Sprintf("\n--- Evidence Record %s ---\n", e.ID))
		for _, b := range e.BuildingBlocks {
			writeResult(&sb, 0, b)
		}
		writeResult(&sb, 0, e.Validation)
	}
	return sb.String()
}
