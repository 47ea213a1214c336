package bbb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgepadayatti/goades/ades"
	"github.com/georgepadayatti/goades/i18n"
	"github.com/georgepadayatti/goades/policy"
)

func testBlock() *block {
	return newBlock(i18n.NewProvider("en"), KindSAV, "S-1")
}

func TestEvalAbsentLevelLeavesNoTrace(t *testing.T) {
	b := testBlock()

	assert.True(t, b.eval(check{tag: ades.SAVSigningTime, ok: false}))
	assert.Empty(t, b.result.Records)
	assert.True(t, b.result.Conclusion.IsPassed())
	assert.Empty(t, b.result.Conclusion.Errors)
}

func TestEvalPassedCheck(t *testing.T) {
	b := testBlock()

	assert.True(t, b.eval(check{tag: ades.SAVSigningTime, level: policy.LevelFail, ok: true}))
	require.Len(t, b.result.Records, 1)
	assert.Equal(t, ades.StatusOK, b.result.Records[0].Status)
	assert.Nil(t, b.result.Records[0].Error)
	assert.True(t, b.result.Conclusion.IsPassed())
}

func TestEvalFailedCheckByLevel(t *testing.T) {
	tests := []struct {
		level      policy.Level
		status     ades.Status
		indication ades.Indication
		cont       bool
	}{
		{policy.LevelFail, ades.StatusNotOK, ades.IndicationIndeterminate, false},
		{policy.LevelWarn, ades.StatusWarning, ades.IndicationPassed, true},
		{policy.LevelInform, ades.StatusInformation, ades.IndicationPassed, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			b := testBlock()
			cont := b.eval(check{tag: ades.SAVSigningTime, level: tt.level})

			assert.Equal(t, tt.cont, cont)
			require.Len(t, b.result.Records, 1)
			rec := b.result.Records[0]
			assert.Equal(t, tt.status, rec.Status)
			assert.Equal(t, tt.indication, b.result.Conclusion.Indication)

			c := b.result.Conclusion
			switch tt.level {
			case policy.LevelFail:
				assert.Equal(t, ades.SubIndicationSigConstraintsFailure, c.SubIndication)
				assert.True(t, c.HasError(ades.SAVSigningTime.Answer()))
				assert.Equal(t, ades.SAVSigningTime.Answer(), rec.Error.Key)
			case policy.LevelWarn:
				assert.True(t, c.HasWarning(ades.SAVSigningTime.Answer()))
				assert.Empty(t, c.Errors)
			case policy.LevelInform:
				assert.True(t, c.HasInfo(ades.SAVSigningTime.Answer()))
				assert.Empty(t, c.Warnings)
			}
		})
	}
}

func TestFailureTableUsesRole(t *testing.T) {
	assert.Equal(t, indeterminate(ades.SubIndicationRevokedNoPOE), failureFor(ades.XCVNotRevoked, signingRole))
	assert.Equal(t, indeterminate(ades.SubIndicationRevokedCANoPOE), failureFor(ades.XCVNotRevoked, caRole))
	assert.Equal(t, indeterminate(ades.SubIndicationTryLater), failureFor(ades.XCVNotOnHold, caRole))
	assert.Equal(t, indeterminate(ades.SubIndicationGenericFailure), failureFor(ades.MessageTag("UNKNOWN"), anyRole))
}

func TestEvalVerdictOverride(t *testing.T) {
	b := testBlock()
	v := indeterminate(ades.SubIndicationOutOfBoundsNotRevoked)
	b.eval(check{tag: ades.XCVValidityRange, level: policy.LevelFail, verdict: &v})

	assert.Equal(t, ades.SubIndicationOutOfBoundsNotRevoked, b.result.Conclusion.SubIndication)
}

func TestEvalKeepsWorstVerdict(t *testing.T) {
	b := testBlock()
	b.eval(check{tag: ades.CVSignatureIntact, level: policy.LevelFail})
	b.eval(check{tag: ades.SAVSigningTime, level: policy.LevelFail})

	c := b.result.Conclusion
	assert.Equal(t, ades.IndicationFailed, c.Indication)
	assert.Equal(t, ades.SubIndicationSigCryptoFailure, c.SubIndication)
	assert.Len(t, c.Errors, 2)
}

func TestConclusiveAdoptsChild(t *testing.T) {
	text := i18n.NewProvider("en")
	child := newBlock(text, KindCRS, "C-1")
	child.eval(check{tag: ades.RFCFresh, level: policy.LevelFail})
	child.eval(check{tag: ades.XCVSerialPresent, level: policy.LevelWarn})

	b := newBlock(text, KindSubXCV, "C-1")
	assert.False(t, b.conclusive(ades.XCVAcceptableRevocation, policy.LevelFail, child.result.Conclusion))

	c := b.result.Conclusion
	assert.Equal(t, ades.IndicationIndeterminate, c.Indication)
	assert.Equal(t, ades.SubIndicationTryLater, c.SubIndication)
	assert.True(t, c.HasError(ades.RFCFresh.Answer()))
	assert.True(t, c.HasWarning(ades.XCVSerialPresent.Answer()))
	require.Len(t, b.result.Records, 1)
	assert.Equal(t, ades.StatusNotOK, b.result.Records[0].Status)
}

func TestConclusiveAtWarnKeepsIndication(t *testing.T) {
	text := i18n.NewProvider("en")
	child := newBlock(text, KindCRS, "C-1")
	child.eval(check{tag: ades.RFCFresh, level: policy.LevelFail})

	b := newBlock(text, KindSubXCV, "C-1")
	assert.True(t, b.conclusive(ades.XCVAcceptableRevocation, policy.LevelWarn, child.result.Conclusion))

	c := b.result.Conclusion
	assert.True(t, c.IsPassed())
	assert.Empty(t, c.Errors)
	assert.True(t, c.HasWarning(ades.XCVAcceptableRevocation.Answer()))
}

func TestConclusiveWithoutChildErrorsAddsOwnAnswer(t *testing.T) {
	b := testBlock()
	child := ades.NewFailedConclusion(ades.IndicationIndeterminate, ades.SubIndicationTryLater)

	b.conclusive(ades.BSVCertificateChain, policy.LevelFail, child)
	assert.True(t, b.result.Conclusion.HasError(ades.BSVCertificateChain.Answer()))
}

func TestResultLookups(t *testing.T) {
	b := testBlock()
	b.eval(check{tag: ades.SAVSigningTime, level: policy.LevelFail, ok: true})
	b.eval(check{tag: ades.SAVStructure, level: policy.LevelWarn})
	sub := newResult(KindCRS, "C-1")
	b.child(sub)
	b.child(nil)

	r := b.result
	assert.NotNil(t, r.Record(ades.SAVSigningTime))
	assert.Nil(t, r.Record(ades.SAVContentType))
	assert.Len(t, r.RecordsWithStatus(ades.StatusWarning), 1)
	assert.Same(t, sub, r.Child(KindCRS, "C-1"))
	assert.Nil(t, r.Child(KindCRS, "C-2"))

	var kinds []Kind
	r.Walk(func(x *Result) { kinds = append(kinds, x.Kind) })
	assert.Equal(t, []Kind{KindSAV, KindCRS}, kinds)

	var nilResult *Result
	assert.True(t, nilResult.IsPassed())
}
