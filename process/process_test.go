package process_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgepadayatti/goades/ades"
	"github.com/georgepadayatti/goades/bbb"
	"github.com/georgepadayatti/goades/diagnostic"
	"github.com/georgepadayatti/goades/diagnostic/diagtest"
	"github.com/georgepadayatti/goades/poe"
	"github.com/georgepadayatti/goades/policy"
	"github.com/georgepadayatti/goades/process"
)

func execute(t *testing.T, d *diagnostic.Data, pol *policy.ValidationPolicy, level process.ValidationLevel) *process.Result {
	t.Helper()
	if pol == nil {
		pol = policy.Default()
	}
	res, err := process.Execute(d, pol, process.Options{CurrentTime: diagtest.Now, Level: level})
	require.NoError(t, err)
	return res
}

func signature(t *testing.T, res *process.Result) *process.SignatureResult {
	t.Helper()
	sr := res.Signature(diagtest.SignatureID)
	require.NotNil(t, sr)
	return sr
}

func assertVerdict(t *testing.T, c *ades.Conclusion, indication ades.Indication, sub ades.SubIndication) {
	t.Helper()
	require.NotNil(t, c)
	assert.Equal(t, indication, c.Indication, "errors: %v", c.Errors)
	assert.Equal(t, sub, c.SubIndication)
}

// archiveOnly replaces the timestamps of d with one archive timestamp over
// the signature.
func archiveOnly(d *diagnostic.Data, produced time.Time) {
	d.Timestamps = []*diagnostic.Timestamp{
		diagtest.Timestamp("T-ARC", diagnostic.TimestampArchive, diagtest.TSAID, produced, diagtest.SignatureRef(diagtest.SignatureID)),
	}
}

func withEvidenceRecord(d *diagnostic.Data, produced time.Time) {
	d.Timestamps = []*diagnostic.Timestamp{
		diagtest.Timestamp("T-ER", diagnostic.TimestampEvidenceRecord, diagtest.TSAID, produced,
			diagnostic.ObjectRef{ID: "E-1", Category: diagnostic.ObjectEvidenceRecord}),
	}
	d.EvidenceRecords = []*diagnostic.EvidenceRecord{
		diagtest.EvidenceRecord("E-1", []string{"document.xml"}, []string{"T-ER"}, diagtest.SignatureRef(diagtest.SignatureID)),
	}
}

func TestExecutePreconditions(t *testing.T) {
	valid := process.Options{CurrentTime: diagtest.Now, Level: process.BasicSignatures}

	tests := []struct {
		name    string
		data    *diagnostic.Data
		policy  *policy.ValidationPolicy
		opts    process.Options
		message string
	}{
		{"no diagnostic data", nil, policy.Default(), valid, "The diagnostic data is missing"},
		{"no policy", diagtest.Valid(), nil, valid, "The validation policy is missing"},
		{"no current time", diagtest.Valid(), policy.Default(), process.Options{Level: process.ArchivalData}, "The current time is missing"},
		{"no level", diagtest.Valid(), policy.Default(), process.Options{CurrentTime: diagtest.Now}, "The validation level is missing"},
		{"data checked first", nil, nil, process.Options{}, "The diagnostic data is missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := process.Execute(tt.data, tt.policy, tt.opts)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.EqualError(t, err, tt.message)
			assert.True(t, errors.Is(err, process.ErrPrecondition))

			var pe *process.PreconditionError
			require.True(t, errors.As(err, &pe))
		})
	}
}

func TestParseValidationLevel(t *testing.T) {
	for _, l := range process.Levels() {
		got, err := process.ParseValidationLevel(l.String())
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}

	got, err := process.ParseValidationLevel(" long-term-data ")
	require.NoError(t, err)
	assert.Equal(t, process.LongTermData, got)

	_, err = process.ParseValidationLevel("QUALIFICATION")
	assert.Error(t, err)
	assert.False(t, process.ValidationLevel(0).IsValid())
	assert.Equal(t, "ValidationLevel(0)", process.ValidationLevel(0).String())
}

func TestExecutionStopsAtRequestedLevel(t *testing.T) {
	res := execute(t, diagtest.Valid(), nil, process.BasicSignatures)
	sr := signature(t, res)
	assertVerdict(t, sr.Conclusion(), ades.IndicationPassed, ades.SubIndicationNone)
	assert.Nil(t, sr.LongTermData)
	assert.Nil(t, sr.Archival)
	assert.Empty(t, res.Timestamps)
	assert.Equal(t, []string{diagtest.TimestampID}, sr.TimestampIDs)

	res = execute(t, diagtest.Valid(), nil, process.Timestamps)
	require.Len(t, res.Timestamps, 1)
	assert.True(t, res.Timestamp(diagtest.TimestampID).Basic().IsPassed())
	assert.Nil(t, signature(t, res).LongTermData)
	assert.Contains(t, res.POE, diagtest.SignatureID)

	res = execute(t, diagtest.Valid(), nil, process.ArchivalData)
	sr = signature(t, res)
	require.NotNil(t, sr.LongTermData)
	require.NotNil(t, sr.Archival)
	assert.Same(t, sr.Archival, sr.Final())
	assertVerdict(t, sr.Conclusion(), ades.IndicationPassed, ades.SubIndicationNone)
}

func TestBestSignatureTimeFromTimestamp(t *testing.T) {
	res := execute(t, diagtest.Valid(), nil, process.LongTermData)
	sr := signature(t, res)

	require.NotNil(t, sr.BestSignatureTime)
	assert.True(t, sr.BestSignatureTime.Equal(diagtest.Now.Add(-90*time.Minute)))
	assert.True(t, sr.LongTermData.Conclusion.HasInfo(ades.LTVBestSignatureTimeInfo))

	rec := sr.LongTermData.Record(ades.LTVTimestampConclusive)
	require.NotNil(t, rec)
	assert.Equal(t, ades.StatusOK, rec.Status)
	assert.Equal(t, diagtest.TimestampID, rec.ID)

	p := res.POE[diagtest.SignatureID]
	assert.Equal(t, poe.SourceTimestamp, p.Source)
	assert.Equal(t, diagtest.TimestampID, p.ProviderID)
}

func TestOnHoldResolvedByTimestamp(t *testing.T) {
	d := diagtest.Valid()
	diagtest.Revoke(d, diagtest.SignerID, diagtest.CRLID, diagtest.Now.Add(-80*time.Minute), diagnostic.ReasonCertificateHold)

	sr := signature(t, execute(t, d, nil, process.LongTermData))
	assertVerdict(t, sr.Basic().Conclusion, ades.IndicationIndeterminate, ades.SubIndicationTryLater)
	assertVerdict(t, sr.LongTermData.Conclusion, ades.IndicationPassed, ades.SubIndicationNone)
	assert.Empty(t, sr.LongTermData.Conclusion.Errors)

	rec := sr.LongTermData.Record(ades.LTVBSTBeforeSuspension)
	require.NotNil(t, rec)
	assert.Equal(t, ades.StatusOK, rec.Status)
	assert.Equal(t, diagtest.SignerID, rec.ID)
}

func TestOnHoldWithoutTimestampStaysTryLater(t *testing.T) {
	d := diagtest.Valid()
	d.Timestamps = nil
	diagtest.Revoke(d, diagtest.SignerID, diagtest.CRLID, diagtest.Now.Add(-80*time.Minute), diagnostic.ReasonCertificateHold)

	sr := signature(t, execute(t, d, nil, process.LongTermData))
	assertVerdict(t, sr.LongTermData.Conclusion, ades.IndicationIndeterminate, ades.SubIndicationTryLater)
	assert.True(t, sr.LongTermData.Conclusion.HasError(ades.LTVBSTBeforeSuspension.Answer()))
	assert.False(t, sr.LongTermData.Conclusion.HasInfo(ades.LTVBestSignatureTimeInfo))
}

func TestRevokedAfterBestSignatureTime(t *testing.T) {
	d := diagtest.Valid()
	diagtest.Revoke(d, diagtest.SignerID, diagtest.CRLID, diagtest.Now.Add(-time.Hour), diagnostic.ReasonKeyCompromise)

	sr := signature(t, execute(t, d, nil, process.LongTermData))
	assertVerdict(t, sr.Basic().Conclusion, ades.IndicationIndeterminate, ades.SubIndicationRevokedNoPOE)
	assertVerdict(t, sr.LongTermData.Conclusion, ades.IndicationPassed, ades.SubIndicationNone)

	diagtest.Revoke(d, diagtest.SignerID, diagtest.CRLID, diagtest.Now.Add(-2*time.Hour), diagnostic.ReasonKeyCompromise)
	sr = signature(t, execute(t, d, nil, process.LongTermData))
	assertVerdict(t, sr.LongTermData.Conclusion, ades.IndicationIndeterminate, ades.SubIndicationRevokedNoPOE)
	assert.True(t, sr.LongTermData.Conclusion.HasError(ades.LTVRevocationAfterBST.Answer()))
}

// withIntermediate inserts a CA certificate between the signer and the root.
func withIntermediate(d *diagnostic.Data, id string) {
	ca := diagtest.Leaf(id, diagtest.RootID, diagtest.CRLID)
	ca.CA = true
	ca.KeyUsages = []string{"keyCertSign", "crlSign"}
	ca.SerialNumber = "2001"
	d.Certificates = append(d.Certificates, ca)

	signer := d.Certificate(diagtest.SignerID)
	signer.IssuerID = id
	signer.IssuerDN = "CN=" + id
}

func TestEveryChainFailureJudgedAtBestSignatureTime(t *testing.T) {
	d := diagtest.Valid()
	withIntermediate(d, "C-CA")
	// The CA is revoked after the best-signature-time, the signer was
	// already suspended before it.
	diagtest.Revoke(d, "C-CA", diagtest.CRLID, diagtest.Now.Add(-30*time.Minute), diagnostic.ReasonKeyCompromise)
	diagtest.Revoke(d, diagtest.SignerID, diagtest.CRLID, diagtest.Now.Add(-2*time.Hour), diagnostic.ReasonCertificateHold)

	sr := signature(t, execute(t, d, nil, process.LongTermData))
	assert.Equal(t, ades.IndicationIndeterminate, sr.Basic().Conclusion.Indication)

	ltv := sr.LongTermData
	assertVerdict(t, ltv.Conclusion, ades.IndicationIndeterminate, ades.SubIndicationTryLater)
	assert.True(t, ltv.Conclusion.HasError(ades.LTVBSTBeforeSuspension.Answer()))

	var revocation, suspension *bbb.Record
	for _, rec := range ltv.Records {
		switch {
		case rec.ID == "C-CA" && rec.Status == ades.StatusOK:
			revocation = rec
		case rec.ID == diagtest.SignerID && rec.Status == ades.StatusNotOK:
			suspension = rec
		}
	}
	require.NotNil(t, revocation, "the CA revocation should be checked at the best-signature-time")
	require.NotNil(t, suspension, "the signer suspension should be checked at the best-signature-time")

	// Once the suspension lies after the best-signature-time both resolve.
	diagtest.Revoke(d, diagtest.SignerID, diagtest.CRLID, diagtest.Now.Add(-80*time.Minute), diagnostic.ReasonCertificateHold)
	sr = signature(t, execute(t, d, nil, process.LongTermData))
	assertVerdict(t, sr.LongTermData.Conclusion, ades.IndicationPassed, ades.SubIndicationNone)
}

func TestFailureOutsideTheChainIsKept(t *testing.T) {
	pol := policy.Default()
	pol.Signature.SignedAttributes.SigningTime.Level = policy.LevelFail
	d := diagtest.Valid()
	d.Signature(diagtest.SignatureID).ClaimedSigningTime = nil
	diagtest.Revoke(d, diagtest.SignerID, diagtest.CRLID, diagtest.Now.Add(-80*time.Minute), diagnostic.ReasonCertificateHold)

	sr := signature(t, execute(t, d, pol, process.LongTermData))
	assertVerdict(t, sr.Basic().Conclusion, ades.IndicationIndeterminate, ades.SubIndicationTryLater)

	ltv := sr.LongTermData.Conclusion
	assertVerdict(t, ltv, ades.IndicationIndeterminate, ades.SubIndicationSigConstraintsFailure)
	assert.True(t, ltv.HasError(ades.SAVSigningTime.Answer()))
	assert.False(t, ltv.HasError(ades.LTVBSTBeforeSuspension.Answer()))
}

func TestUnacceptableBasicResultIsCopied(t *testing.T) {
	d := diagtest.Valid()
	d.Signature(diagtest.SignatureID).DigestMatchers[0].DataIntact = false

	sr := signature(t, execute(t, d, nil, process.ArchivalData))
	for _, r := range []*bbb.Result{sr.Basic(), sr.LongTermData, sr.Archival} {
		assertVerdict(t, r.Conclusion, ades.IndicationFailed, ades.SubIndicationHashFailure)
	}
	rec := sr.LongTermData.Record(ades.LTVBasicAcceptable)
	require.NotNil(t, rec)
	assert.Equal(t, ades.StatusNotOK, rec.Status)
	assert.Nil(t, sr.Archival.Child(bbb.KindPSV, ""))
}

func TestAlgorithmsReliableAtBestSignatureTime(t *testing.T) {
	d := diagtest.Valid()
	d.Signature(diagtest.SignatureID).Crypto.DigestAlgorithm = "SHA1"

	sr := signature(t, execute(t, d, nil, process.LongTermData))
	assertVerdict(t, sr.Basic().Conclusion, ades.IndicationIndeterminate, ades.SubIndicationCryptoConstraintsFailureNoPOE)
	assertVerdict(t, sr.LongTermData.Conclusion, ades.IndicationIndeterminate, ades.SubIndicationCryptoConstraintsFailureNoPOE)
	assert.True(t, sr.LongTermData.Conclusion.HasError(ades.LTVAlgorithmsReliableAtBST.Answer()))

	d.Timestamp(diagtest.TimestampID).ProductionTime = time.Date(2008, time.January, 1, 0, 0, 0, 0, time.UTC)
	sr = signature(t, execute(t, d, nil, process.LongTermData))
	assertVerdict(t, sr.LongTermData.Conclusion, ades.IndicationPassed, ades.SubIndicationNone)
}

func TestTimestampOrder(t *testing.T) {
	d := diagtest.Valid()
	d.Timestamps = append(d.Timestamps, diagtest.Timestamp("T-CONTENT", diagnostic.TimestampContent, diagtest.TSAID,
		diagtest.Now.Add(-80*time.Minute), diagtest.SignatureRef(diagtest.SignatureID)))

	sr := signature(t, execute(t, d, nil, process.LongTermData))
	assertVerdict(t, sr.LongTermData.Conclusion, ades.IndicationPassed, ades.SubIndicationNone)
	assert.True(t, sr.LongTermData.Conclusion.HasWarning(ades.LTVTimestampOrder.Answer()))

	pol := policy.Default()
	pol.Timestamp.Coherence.Level = policy.LevelFail
	sr = signature(t, execute(t, d, pol, process.LongTermData))
	assertVerdict(t, sr.LongTermData.Conclusion, ades.IndicationIndeterminate, ades.SubIndicationTimestampOrderFailure)
}

func TestSigningTimeDelay(t *testing.T) {
	tests := []struct {
		name  string
		delay time.Duration
		want  ades.Indication
	}{
		{"within delay", time.Hour, ades.IndicationPassed},
		{"timestamp too late", 10 * time.Minute, ades.IndicationIndeterminate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pol := policy.Default()
			pol.Signature.TimestampDelay = policy.TimeConstraint{Level: policy.LevelFail, Value: tt.delay}

			sr := signature(t, execute(t, diagtest.Valid(), pol, process.LongTermData))
			assert.Equal(t, tt.want, sr.LongTermData.Conclusion.Indication)
			require.NotNil(t, sr.LongTermData.Record(ades.LTVSigningTimeDelay))
		})
	}
}

func TestArchiveTimestampRescuesRevokedSignature(t *testing.T) {
	d := diagtest.Valid()
	archiveOnly(d, diagtest.Now.Add(-150*time.Minute))
	diagtest.Revoke(d, diagtest.SignerID, diagtest.CRLID, diagtest.Now.Add(-2*time.Hour), diagnostic.ReasonKeyCompromise)

	res := execute(t, d, nil, process.ArchivalData)
	sr := signature(t, res)
	assertVerdict(t, sr.LongTermData.Conclusion, ades.IndicationIndeterminate, ades.SubIndicationRevokedNoPOE)
	assertVerdict(t, sr.Archival.Conclusion, ades.IndicationPassed, ades.SubIndicationNone)

	psv := sr.Archival.Child(bbb.KindPSV, diagtest.SignatureID)
	require.NotNil(t, psv)
	assert.True(t, psv.IsPassed())
	assert.NotNil(t, sr.Archival.Record(ades.ArchTimestampAcceptable))

	p := res.POE[diagtest.SignatureID]
	assert.Equal(t, poe.SourceArchiveTimestamp, p.Source)
	assert.Equal(t, "T-ARC", p.ProviderID)
}

func TestArchiveTimestampAfterRevocation(t *testing.T) {
	d := diagtest.Valid()
	archiveOnly(d, diagtest.Now.Add(-90*time.Minute))
	diagtest.Revoke(d, diagtest.SignerID, diagtest.CRLID, diagtest.Now.Add(-2*time.Hour), diagnostic.ReasonKeyCompromise)

	sr := signature(t, execute(t, d, nil, process.ArchivalData))
	assertVerdict(t, sr.Archival.Conclusion, ades.IndicationIndeterminate, ades.SubIndicationRevokedNoPOE)

	psv := sr.Archival.Child(bbb.KindPSV, diagtest.SignatureID)
	require.NotNil(t, psv)
	rec := psv.Record(ades.PSVPOEBeforeControlTime)
	require.NotNil(t, rec)
	assert.Equal(t, ades.StatusNotOK, rec.Status)
	assert.Nil(t, psv.Record(ades.PSVPastCertificate))
}

func TestEvidenceRecordProvesExistence(t *testing.T) {
	d := diagtest.Valid()
	withEvidenceRecord(d, diagtest.Now.Add(-3*time.Hour))
	diagtest.Revoke(d, diagtest.SignerID, diagtest.CRLID, diagtest.Now.Add(-2*time.Hour), diagnostic.ReasonKeyCompromise)

	res := execute(t, d, nil, process.ArchivalData)
	er := res.EvidenceRecord("E-1")
	require.NotNil(t, er)
	assertVerdict(t, er.Conclusion(), ades.IndicationPassed, ades.SubIndicationNone)
	require.NotNil(t, er.POE)
	assert.True(t, er.POE.Equal(diagtest.Now.Add(-3*time.Hour)))

	sr := signature(t, res)
	assert.Equal(t, []string{"E-1"}, sr.EvidenceRecordIDs)
	assertVerdict(t, sr.LongTermData.Conclusion, ades.IndicationIndeterminate, ades.SubIndicationRevokedNoPOE)
	assertVerdict(t, sr.Archival.Conclusion, ades.IndicationPassed, ades.SubIndicationNone)
	assert.Equal(t, poe.SourceEvidenceRecord, res.POE[diagtest.SignatureID].Source)
}

func TestEvidenceRecordTimestampDecides(t *testing.T) {
	d := diagtest.Valid()
	withEvidenceRecord(d, diagtest.Now.Add(-3*time.Hour))
	d.Timestamp("T-ER").MessageImprint.DataIntact = false

	res := execute(t, d, nil, process.ArchivalData)
	er := res.EvidenceRecord("E-1")
	assertVerdict(t, er.Conclusion(), ades.IndicationFailed, ades.SubIndicationHashFailure)
	assert.Nil(t, er.POE)

	rec := er.Result.Record(ades.ERTimestampConclusive)
	require.NotNil(t, rec)
	assert.Equal(t, ades.StatusNotOK, rec.Status)

	sr := signature(t, res)
	rec = sr.Archival.Record(ades.ArchEvidenceRecord)
	require.NotNil(t, rec)
	assert.Equal(t, ades.StatusInformation, rec.Status)
}

// withRenewedEvidenceRecord protects E-1 with T-ER1 by the TSA and a
// renewal T-ER2 by a second TSA that also covers T-ER1.
func withRenewedEvidenceRecord(d *diagnostic.Data, first, renewal time.Time) {
	d.Certificates = append(d.Certificates, diagtest.Leaf("C-TSA2", diagtest.RootID, diagtest.CRLID))
	record := diagnostic.ObjectRef{ID: "E-1", Category: diagnostic.ObjectEvidenceRecord}
	d.Timestamps = []*diagnostic.Timestamp{
		diagtest.Timestamp("T-ER1", diagnostic.TimestampEvidenceRecord, diagtest.TSAID, first, record),
		diagtest.Timestamp("T-ER2", diagnostic.TimestampEvidenceRecord, "C-TSA2", renewal, record,
			diagnostic.ObjectRef{ID: "T-ER1", Category: diagnostic.ObjectTimestamp}),
	}
	d.EvidenceRecords = []*diagnostic.EvidenceRecord{
		diagtest.EvidenceRecord("E-1", []string{"document.xml"}, []string{"T-ER1", "T-ER2"}, diagtest.SignatureRef(diagtest.SignatureID)),
	}
}

func TestEvidenceRecordRenewalProvesEarlierTimestamp(t *testing.T) {
	d := diagtest.Valid()
	withRenewedEvidenceRecord(d, diagtest.Now.Add(-72*time.Hour), diagtest.Now.Add(-48*time.Hour))
	diagtest.Revoke(d, diagtest.TSAID, diagtest.CRLID, diagtest.Now.Add(-24*time.Hour), diagnostic.ReasonKeyCompromise)

	res := execute(t, d, nil, process.ArchivalData)
	first := res.Timestamp("T-ER1")
	require.NotNil(t, first)
	assertVerdict(t, first.Basic().Conclusion, ades.IndicationIndeterminate, ades.SubIndicationRevokedNoPOE)
	require.NotNil(t, first.PastValidation)
	assertVerdict(t, first.Conclusion(), ades.IndicationPassed, ades.SubIndicationNone)

	p := res.POE["T-ER1"]
	assert.Equal(t, poe.SourceEvidenceRecord, p.Source)
	assert.Equal(t, "E-1", p.ProviderID)
	assert.True(t, p.Time.Equal(diagtest.Now.Add(-48*time.Hour)))

	er := res.EvidenceRecord("E-1")
	assertVerdict(t, er.Conclusion(), ades.IndicationPassed, ades.SubIndicationNone)
	require.NotNil(t, er.POE)
	assert.True(t, er.POE.Equal(diagtest.Now.Add(-72*time.Hour)))
	assert.Nil(t, res.Timestamp("T-ER2").PastValidation)
}

func TestEvidenceRecordRenewalAfterRevocation(t *testing.T) {
	d := diagtest.Valid()
	withRenewedEvidenceRecord(d, diagtest.Now.Add(-72*time.Hour), diagtest.Now.Add(-12*time.Hour))
	diagtest.Revoke(d, diagtest.TSAID, diagtest.CRLID, diagtest.Now.Add(-24*time.Hour), diagnostic.ReasonKeyCompromise)

	res := execute(t, d, nil, process.ArchivalData)
	first := res.Timestamp("T-ER1")
	require.NotNil(t, first.PastValidation)
	rec := first.PastValidation.Record(ades.PSVPOEBeforeControlTime)
	require.NotNil(t, rec)
	assert.Equal(t, ades.StatusNotOK, rec.Status)

	er := res.EvidenceRecord("E-1")
	assertVerdict(t, er.Conclusion(), ades.IndicationIndeterminate, ades.SubIndicationRevokedNoPOE)
	assert.Nil(t, er.POE)
}

func TestEvidenceRecordHashTreeAtPOE(t *testing.T) {
	d := diagtest.Valid()
	withEvidenceRecord(d, diagtest.Now.Add(-3*time.Hour))
	d.EvidenceRecord("E-1").DigestMatchers[0].DigestAlgorithm = "SHA1"

	er := execute(t, d, nil, process.Timestamps).EvidenceRecord("E-1")
	assertVerdict(t, er.Conclusion(), ades.IndicationIndeterminate, ades.SubIndicationCryptoConstraintsFailureNoPOE)

	d.Timestamp("T-ER").ProductionTime = time.Date(2008, time.June, 1, 0, 0, 0, 0, time.UTC)
	er = execute(t, d, nil, process.Timestamps).EvidenceRecord("E-1")
	assertVerdict(t, er.Conclusion(), ades.IndicationPassed, ades.SubIndicationNone)
}

func TestEvidenceRecordWithoutTimestamps(t *testing.T) {
	d := diagtest.Valid()
	d.EvidenceRecords = []*diagnostic.EvidenceRecord{
		diagtest.EvidenceRecord("E-1", []string{"document.xml"}, nil, diagtest.SignatureRef(diagtest.SignatureID)),
	}

	er := execute(t, d, nil, process.Timestamps).EvidenceRecord("E-1")
	assertVerdict(t, er.Conclusion(), ades.IndicationIndeterminate, ades.SubIndicationNoPOE)
}

func TestExecuteIsDeterministic(t *testing.T) {
	build := func() *process.Result {
		d := diagtest.ASiCE(diagtest.Valid(), "document.xml")
		archiveOnly(d, diagtest.Now.Add(-150*time.Minute))
		diagtest.Revoke(d, diagtest.SignerID, diagtest.CRLID, diagtest.Now.Add(-2*time.Hour), diagnostic.ReasonKeyCompromise)
		return execute(t, d, nil, process.ArchivalData)
	}

	assert.Equal(t, build(), build())
}
