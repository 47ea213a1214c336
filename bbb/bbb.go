package bbb

import (
	"io"
	"log/slog"
	"time"

	"github.com/georgepadayatti/goades/ades"
	"github.com/georgepadayatti/goades/diagnostic"
	"github.com/georgepadayatti/goades/i18n"
	"github.com/georgepadayatti/goades/policy"
)

// MaxRevocationDepth bounds the nesting of revocation data validations
// (revocation data of the revocation issuer, and so on).
const MaxRevocationDepth = 4

// Blocks is the set of building block results of one validated object.
// It is one of *SignatureBlocks, *TimestampBlocks, *RevocationBlocks or
// *EvidenceRecordBlocks.
type Blocks interface {
	ObjectID() string
	Context() policy.Context
	// Results returns the executed building blocks in evaluation order.
	Results() []*Result
	// Basic returns the combination of the building blocks.
	Basic() *Result
	isBlocks()
}

// SignatureBlocks are the building blocks of a signature or counter
// signature.
type SignatureBlocks struct {
	ID    string
	Ctx   policy.Context
	Chain *diagnostic.Chain
	FC    *Result
	ICS   *Result
	VCI   *Result
	CV    *Result
	XCV   *Result
	SAV   *Result
	basic *Result
}

// TimestampBlocks are the building blocks of a timestamp. FC is only set
// for archive timestamps with an ats-hash-index, container timestamps and
// PDF document timestamps.
type TimestampBlocks struct {
	ID    string
	Chain *diagnostic.Chain
	FC    *Result
	ICS   *Result
	CV    *Result
	XCV   *Result
	SAV   *Result
	basic *Result
}

// RevocationBlocks are the building blocks of a CRL or OCSP response.
type RevocationBlocks struct {
	ID    string
	Chain *diagnostic.Chain
	ICS   *Result
	CV    *Result
	XCV   *Result
	SAV   *Result
	basic *Result
}

// EvidenceRecordBlocks are the building blocks of an evidence record. The
// time-stamp chain and the hash-tree algorithms are judged by the evidence
// record process.
type EvidenceRecordBlocks struct {
	ID    string
	FC    *Result
	CV    *Result
	basic *Result
}

func (b *SignatureBlocks) ObjectID() string      { return b.ID }
func (b *TimestampBlocks) ObjectID() string      { return b.ID }
func (b *RevocationBlocks) ObjectID() string     { return b.ID }
func (b *EvidenceRecordBlocks) ObjectID() string { return b.ID }

func (b *SignatureBlocks) Context() policy.Context      { return b.Ctx }
func (b *TimestampBlocks) Context() policy.Context      { return policy.ContextTimestamp }
func (b *RevocationBlocks) Context() policy.Context     { return policy.ContextRevocation }
func (b *EvidenceRecordBlocks) Context() policy.Context { return policy.ContextEvidenceRecord }

func (b *SignatureBlocks) Results() []*Result {
	return nonNil(b.FC, b.ICS, b.VCI, b.CV, b.XCV, b.SAV)
}

func (b *TimestampBlocks) Results() []*Result {
	return nonNil(b.FC, b.ICS, b.CV, b.XCV, b.SAV)
}

func (b *RevocationBlocks) Results() []*Result {
	return nonNil(b.ICS, b.CV, b.XCV, b.SAV)
}

func (b *EvidenceRecordBlocks) Results() []*Result {
	return nonNil(b.FC, b.CV)
}

func (b *SignatureBlocks) Basic() *Result      { return b.basic }
func (b *TimestampBlocks) Basic() *Result      { return b.basic }
func (b *RevocationBlocks) Basic() *Result     { return b.basic }
func (b *EvidenceRecordBlocks) Basic() *Result { return b.basic }

func (*SignatureBlocks) isBlocks()      {}
func (*TimestampBlocks) isBlocks()      {}
func (*RevocationBlocks) isBlocks()     {}
func (*EvidenceRecordBlocks) isBlocks() {}

func nonNil(results ...*Result) []*Result {
	out := make([]*Result, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

type revocationKey struct {
	id string
	at int64
}

// Engine evaluates building blocks for one validation run. It memoises
// revocation data results and is not safe for concurrent use.
type Engine struct {
	data   *diagnostic.Data
	policy *policy.ValidationPolicy
	text   *i18n.Provider
	log    *slog.Logger

	revocations map[revocationKey]*RevocationBlocks
	active      map[string]bool
	depth       int
}

// NewEngine creates an engine for one run. A nil logger discards output.
func NewEngine(data *diagnostic.Data, pol *policy.ValidationPolicy, text *i18n.Provider, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if text == nil {
		text = i18n.NewProvider(i18n.DefaultLocale)
	}
	return &Engine{
		data:        data,
		policy:      pol,
		text:        text,
		log:         log,
		revocations: make(map[revocationKey]*RevocationBlocks),
		active:      make(map[string]bool),
	}
}

// Text returns the message provider of the engine.
func (e *Engine) Text() *i18n.Provider {
	return e.text
}

func (e *Engine) newBlock(kind Kind, id string) *block {
	return newBlock(e.text, kind, id)
}

// Signature runs the building blocks of a signature at time at.
func (e *Engine) Signature(s *diagnostic.Signature, at time.Time) *SignatureBlocks {
	ctx := policy.ContextSignature
	if s.IsCounterSignature() {
		ctx = policy.ContextCounterSignature
	}
	e.log.Debug("signature building blocks", "id", s.ID, "context", ctx.String(), "at", at)

	sb := &SignatureBlocks{ID: s.ID, Ctx: ctx}
	sb.FC = e.fcSignature(ctx, s)
	sb.ICS = e.ics(ctx, s.ID, s.SigningCertificateID, s.CertificateRefs)
	sb.VCI = e.vci(ctx, s)
	sb.CV = e.cvSignature(ctx, s)
	if e.data.Certificate(s.SigningCertificateID) != nil {
		sb.XCV, sb.Chain = e.xcv(ctx, s.SigningCertificateID, at)
	} else {
		sb.Chain = e.data.BuildChain(s.SigningCertificateID)
	}
	sb.SAV = e.savSignature(ctx, s, sb.Chain, sb.CV, at)
	sb.basic = e.combine(s.ID, []part{
		{ades.BSVFormatChecking, sb.FC},
		{ades.BSVIdentification, sb.ICS},
		{ades.BSVValidationContext, sb.VCI},
		{ades.BSVCryptographic, sb.CV},
		{ades.BSVCertificateChain, sb.XCV},
		{ades.BSVSignatureAcceptance, sb.SAV},
	})
	return sb
}

// Timestamp runs the building blocks of a timestamp at time at.
func (e *Engine) Timestamp(t *diagnostic.Timestamp, at time.Time) *TimestampBlocks {
	e.log.Debug("timestamp building blocks", "id", t.ID, "type", t.Type, "at", at)
	ctx := policy.ContextTimestamp

	tb := &TimestampBlocks{ID: t.ID}
	tb.FC = e.fcTimestamp(t)
	tb.ICS = e.ics(ctx, t.ID, t.SigningCertificateID, t.CertificateRefs)
	tb.CV = e.cvTimestamp(t)
	if e.data.Certificate(t.SigningCertificateID) != nil {
		tb.XCV, tb.Chain = e.xcv(ctx, t.SigningCertificateID, at)
	} else {
		tb.Chain = e.data.BuildChain(t.SigningCertificateID)
	}
	tb.SAV = e.savTimestamp(t, tb.Chain, tb.CV, at)
	tb.basic = e.combine(t.ID, []part{
		{ades.BSVFormatChecking, tb.FC},
		{ades.BSVIdentification, tb.ICS},
		{ades.BSVCryptographic, tb.CV},
		{ades.BSVCertificateChain, tb.XCV},
		{ades.BSVSignatureAcceptance, tb.SAV},
	})
	return tb
}

// Revocation runs the building blocks of a revocation datum at time at.
// Results are memoised per run; nesting beyond MaxRevocationDepth and
// cyclic references yield an INDETERMINATE result.
func (e *Engine) Revocation(rev *diagnostic.Revocation, at time.Time) *RevocationBlocks {
	key := revocationKey{rev.ID, at.UnixNano()}
	if rb, ok := e.revocations[key]; ok {
		return rb
	}
	if e.active[rev.ID] || e.depth >= MaxRevocationDepth {
		e.log.Debug("revocation validation not resolved", "id", rev.ID, "depth", e.depth)
		return e.unresolvedRevocation(rev)
	}
	e.active[rev.ID] = true
	e.depth++
	defer func() {
		delete(e.active, rev.ID)
		e.depth--
	}()

	e.log.Debug("revocation building blocks", "id", rev.ID, "type", rev.Type, "at", at)
	ctx := policy.ContextRevocation
	rb := &RevocationBlocks{ID: rev.ID}
	rb.ICS = e.ics(ctx, rev.ID, rev.SigningCertificateID, nil)
	rb.CV = e.cvRevocation(rev)
	if e.data.Certificate(rev.SigningCertificateID) != nil {
		rb.XCV, rb.Chain = e.xcv(ctx, rev.SigningCertificateID, at)
	} else {
		rb.Chain = e.data.BuildChain(rev.SigningCertificateID)
	}
	rb.SAV = e.savRevocation(rev, at)
	rb.basic = e.combine(rev.ID, []part{
		{ades.BSVIdentification, rb.ICS},
		{ades.BSVCryptographic, rb.CV},
		{ades.BSVCertificateChain, rb.XCV},
		{ades.BSVSignatureAcceptance, rb.SAV},
	})
	e.revocations[key] = rb
	return rb
}

func (e *Engine) unresolvedRevocation(rev *diagnostic.Revocation) *RevocationBlocks {
	b := e.newBlock(KindBasic, rev.ID)
	b.setWorse(indeterminate(ades.SubIndicationCertificateChainGeneralFailure))
	b.result.Conclusion.AddError(e.text.Message(ades.RACBasicValidation.Answer()))
	return &RevocationBlocks{ID: rev.ID, basic: b.result}
}

// EvidenceRecord runs the format and cryptographic verification blocks of
// an evidence record.
func (e *Engine) EvidenceRecord(er *diagnostic.EvidenceRecord) *EvidenceRecordBlocks {
	e.log.Debug("evidence record building blocks", "id", er.ID, "origin", er.Origin)
	eb := &EvidenceRecordBlocks{ID: er.ID}
	eb.FC = e.fcEvidenceRecord(er)
	eb.CV = e.cvEvidenceRecord(er)
	eb.basic = e.combine(er.ID, []part{
		{ades.BSVFormatChecking, eb.FC},
		{ades.BSVCryptographic, eb.CV},
	})
	return eb
}

type part struct {
	tag    ades.MessageTag
	result *Result
}

// combine folds block results into the basic validation result. The worst
// block decides the verdict, and every failing block contributes its errors.
func (e *Engine) combine(id string, parts []part) *Result {
	b := e.newBlock(KindBasic, id)
	for _, p := range parts {
		if p.result == nil {
			continue
		}
		b.conclusive(p.tag, policy.LevelFail, p.result.Conclusion)
	}
	return b.result
}
