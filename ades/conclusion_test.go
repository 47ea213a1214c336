package ades

import "testing"

// Indication tests

func TestIndicationTotal(t *testing.T) {
	tests := []struct {
		in       Indication
		expected Indication
	}{
		{IndicationPassed, IndicationTotalPassed},
		{IndicationFailed, IndicationTotalFailed},
		{IndicationIndeterminate, IndicationIndeterminate},
		{IndicationTotalPassed, IndicationTotalPassed},
	}

	for _, tt := range tests {
		if got := tt.in.Total(); got != tt.expected {
			t.Errorf("%s.Total() = %q, want %q", tt.in, got, tt.expected)
		}
	}
}

func TestIndicationPredicates(t *testing.T) {
	if !IndicationTotalPassed.IsPassed() {
		t.Error("TOTAL_PASSED should be passed")
	}
	if !IndicationTotalFailed.IsFailed() {
		t.Error("TOTAL_FAILED should be failed")
	}
	if IndicationIndeterminate.IsPassed() || IndicationIndeterminate.IsFailed() {
		t.Error("INDETERMINATE is neither passed nor failed")
	}
}

func TestSubIndicationRank(t *testing.T) {
	if SubIndicationNoCertificateChainFound.Rank() != 0 {
		t.Errorf("NO_CERTIFICATE_CHAIN_FOUND rank = %d, want 0", SubIndicationNoCertificateChainFound.Rank())
	}
	if SubIndicationHashFailure.Rank() >= SubIndicationFormatFailure.Rank() {
		t.Error("HASH_FAILURE should rank before FORMAT_FAILURE")
	}
	if SubIndicationTryLater.Rank() >= SubIndicationCertificateChainGeneralFailure.Rank() {
		t.Error("TRY_LATER should rank before CERTIFICATE_CHAIN_GENERAL_FAILURE")
	}
	if SubIndicationSignedDataNotFound.Rank() != len(subIndicationPrecedence) {
		t.Errorf("unlisted rank = %d, want %d", SubIndicationSignedDataNotFound.Rank(), len(subIndicationPrecedence))
	}
}

// Conclusion tests

func TestConclusionSetClearsSubIndicationOnPass(t *testing.T) {
	c := NewFailedConclusion(IndicationIndeterminate, SubIndicationTryLater)
	if c.SubIndication != SubIndicationTryLater {
		t.Fatalf("SubIndication = %q, want %q", c.SubIndication, SubIndicationTryLater)
	}

	c.Set(IndicationPassed, SubIndicationTryLater)
	if c.SubIndication != SubIndicationNone {
		t.Errorf("SubIndication = %q, want empty", c.SubIndication)
	}
}

func TestConclusionNilSafety(t *testing.T) {
	var c *Conclusion
	if c.IsPassed() || c.IsFailed() || c.IsIndeterminate() {
		t.Error("nil conclusion should not report any indication")
	}
	if c.Clone() != nil {
		t.Error("Clone of nil should be nil")
	}
}

func TestConclusionCloneIsDeep(t *testing.T) {
	c := NewConclusion()
	c.AddWarning(Message{Key: "W1", Value: "w"})

	cp := c.Clone()
	cp.AddWarning(Message{Key: "W2", Value: "w"})
	cp.Warnings[0].Value = "changed"

	if len(c.Warnings) != 1 || c.Warnings[0].Value != "w" {
		t.Errorf("original warnings modified: %+v", c.Warnings)
	}
}

func TestConclusionMergeNotes(t *testing.T) {
	parent := NewConclusion()
	parent.AddInfo(Message{Key: "I1", Value: "i"})

	child := NewFailedConclusion(IndicationFailed, SubIndicationHashFailure)
	child.AddError(Message{Key: "E1", Value: "e"})
	child.AddWarning(Message{Key: "W1", Value: "w"})
	child.AddInfo(Message{Key: "I1", Value: "i"})

	parent.MergeNotes(child, false)
	if len(parent.Errors) != 0 {
		t.Errorf("errors merged without withErrors: %+v", parent.Errors)
	}
	if !parent.HasWarning("W1") {
		t.Error("warning not merged")
	}
	if len(parent.Infos) != 1 {
		t.Errorf("duplicate info merged: %+v", parent.Infos)
	}
	if !parent.IsPassed() {
		t.Error("MergeNotes must not change the indication")
	}

	parent.Adopt(child)
	if !parent.IsFailed() || parent.SubIndication != SubIndicationHashFailure {
		t.Errorf("Adopt = %s/%s, want FAILED/HASH_FAILURE", parent.Indication, parent.SubIndication)
	}
	if !parent.HasError("E1") {
		t.Error("error not adopted")
	}
}

// Worst-of tests

func TestWorstOf(t *testing.T) {
	passed := NewConclusion()
	tryLater := NewFailedConclusion(IndicationIndeterminate, SubIndicationTryLater)
	noChain := NewFailedConclusion(IndicationIndeterminate, SubIndicationNoCertificateChainFound)
	hash := NewFailedConclusion(IndicationFailed, SubIndicationHashFailure)
	format := NewFailedConclusion(IndicationFailed, SubIndicationFormatFailure)

	tests := []struct {
		name     string
		in       []*Conclusion
		expected *Conclusion
	}{
		{"empty", nil, nil},
		{"single passed", []*Conclusion{passed}, passed},
		{"indeterminate beats passed", []*Conclusion{passed, tryLater}, tryLater},
		{"failed beats indeterminate", []*Conclusion{noChain, format}, format},
		{"precedence breaks tie", []*Conclusion{tryLater, noChain}, noChain},
		{"failed precedence", []*Conclusion{format, hash}, hash},
		{"first of equals", []*Conclusion{format, format.Clone()}, format},
		{"nil ignored", []*Conclusion{nil, tryLater, nil}, tryLater},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WorstOf(tt.in...)
			if tt.expected == nil {
				if !got.IsPassed() {
					t.Errorf("WorstOf() = %s, want PASSED", got.Indication)
				}
				return
			}
			if got != tt.expected {
				t.Errorf("WorstOf() = %s/%s, want %s/%s", got.Indication, got.SubIndication,
					tt.expected.Indication, tt.expected.SubIndication)
			}
		})
	}
}

func TestMessageTagAnswer(t *testing.T) {
	if got := XCVNotRevoked.Answer(); got != "BBB_XCV_ISCR_ANS" {
		t.Errorf("Answer() = %q, want %q", got, "BBB_XCV_ISCR_ANS")
	}
	if got := XCVNotRevoked.Answer().Answer(); got != "BBB_XCV_ISCR_ANS" {
		t.Errorf("Answer().Answer() = %q, want %q", got, "BBB_XCV_ISCR_ANS")
	}
	if got := SemanticsTag("TRY_LATER"); got != "SEMANTICS_TRY_LATER" {
		t.Errorf("SemanticsTag() = %q", got)
	}
}
