// Package ades holds the conclusion model shared by every validation stage:
// ETSI EN 319 102-1 indications, sub-indications, constraint statuses and
// the message tags used to explain them.
package ades

// Indication is the coarse validation verdict.
type Indication string

// Validation Indication values per ETSI EN 319 102-1
const (
	IndicationPassed        Indication = "PASSED"
	IndicationFailed        Indication = "FAILED"
	IndicationIndeterminate Indication = "INDETERMINATE"

	// Signature-level indications used by the simple report.
	IndicationTotalPassed Indication = "TOTAL_PASSED"
	IndicationTotalFailed Indication = "TOTAL_FAILED"
)

// severity orders indications for worst-of combination.
func (i Indication) severity() int {
	switch i {
	case IndicationPassed, IndicationTotalPassed:
		return 0
	case IndicationIndeterminate:
		return 1
	case IndicationFailed, IndicationTotalFailed:
		return 2
	}
	return 1
}

// IsPassed reports whether the indication is PASSED or TOTAL_PASSED.
func (i Indication) IsPassed() bool {
	return i == IndicationPassed || i == IndicationTotalPassed
}

// IsFailed reports whether the indication is FAILED or TOTAL_FAILED.
func (i Indication) IsFailed() bool {
	return i == IndicationFailed || i == IndicationTotalFailed
}

// Total converts a signature indication to its TOTAL_* form.
func (i Indication) Total() Indication {
	switch i {
	case IndicationPassed:
		return IndicationTotalPassed
	case IndicationFailed:
		return IndicationTotalFailed
	}
	return i
}

// SubIndication is the fine-grained reason accompanying a non-PASSED indication.
type SubIndication string

// Sub-indication values per ETSI EN 319 102-1
const (
	SubIndicationNone SubIndication = ""

	// FAILED sub-indications
	SubIndicationFormatFailure            SubIndication = "FORMAT_FAILURE"
	SubIndicationHashFailure              SubIndication = "HASH_FAILURE"
	SubIndicationSigCryptoFailure         SubIndication = "SIG_CRYPTO_FAILURE"
	SubIndicationRevoked                  SubIndication = "REVOKED"
	SubIndicationExpired                  SubIndication = "EXPIRED"
	SubIndicationNotYetValid              SubIndication = "NOT_YET_VALID"
	SubIndicationCryptoConstraintsFailure SubIndication = "CRYPTO_CONSTRAINTS_FAILURE"

	// INDETERMINATE sub-indications
	SubIndicationSigConstraintsFailure          SubIndication = "SIG_CONSTRAINTS_FAILURE"
	SubIndicationChainConstraintsFailure        SubIndication = "CHAIN_CONSTRAINTS_FAILURE"
	SubIndicationCertificateChainGeneralFailure SubIndication = "CERTIFICATE_CHAIN_GENERAL_FAILURE"
	SubIndicationCryptoConstraintsFailureNoPOE  SubIndication = "CRYPTO_CONSTRAINTS_FAILURE_NO_POE"
	SubIndicationPolicyProcessingError          SubIndication = "POLICY_PROCESSING_ERROR"
	SubIndicationSignaturePolicyNotAvailable    SubIndication = "SIGNATURE_POLICY_NOT_AVAILABLE"
	SubIndicationTimestampOrderFailure          SubIndication = "TIMESTAMP_ORDER_FAILURE"
	SubIndicationNoSigningCertificateFound      SubIndication = "NO_SIGNING_CERTIFICATE_FOUND"
	SubIndicationNoCertificateChainFound        SubIndication = "NO_CERTIFICATE_CHAIN_FOUND"
	SubIndicationRevokedNoPOE                   SubIndication = "REVOKED_NO_POE"
	SubIndicationRevokedCANoPOE                 SubIndication = "REVOKED_CA_NO_POE"
	SubIndicationOutOfBoundsNoPOE               SubIndication = "OUT_OF_BOUNDS_NO_POE"
	SubIndicationOutOfBoundsNotRevoked          SubIndication = "OUT_OF_BOUNDS_NOT_REVOKED"
	SubIndicationNoPOE                          SubIndication = "NO_POE"
	SubIndicationTryLater                       SubIndication = "TRY_LATER"
	SubIndicationSignedDataNotFound             SubIndication = "SIGNED_DATA_NOT_FOUND"
	SubIndicationGenericFailure                 SubIndication = "GENERIC"
)

// subIndicationPrecedence breaks ties between conclusions of equal
// indication. Lower rank wins. Unlisted values rank after every listed one.
var subIndicationPrecedence = map[SubIndication]int{
	SubIndicationNoCertificateChainFound:        0,
	SubIndicationHashFailure:                    1,
	SubIndicationSigCryptoFailure:               2,
	SubIndicationFormatFailure:                  3,
	SubIndicationRevokedNoPOE:                   4,
	SubIndicationRevokedCANoPOE:                 5,
	SubIndicationRevoked:                        6,
	SubIndicationCryptoConstraintsFailure:       7,
	SubIndicationCryptoConstraintsFailureNoPOE:  8,
	SubIndicationOutOfBoundsNoPOE:               9,
	SubIndicationOutOfBoundsNotRevoked:          10,
	SubIndicationTryLater:                       11,
	SubIndicationCertificateChainGeneralFailure: 12,
	SubIndicationChainConstraintsFailure:        13,
}

// Rank returns the precedence rank of the sub-indication.
func (s SubIndication) Rank() int {
	if r, ok := subIndicationPrecedence[s]; ok {
		return r
	}
	return len(subIndicationPrecedence)
}

// Status is the outcome of one evaluated constraint.
type Status string

const (
	StatusOK          Status = "OK"
	StatusNotOK       Status = "NOT_OK"
	StatusWarning     Status = "WARNING"
	StatusInformation Status = "INFORMATION"
)
