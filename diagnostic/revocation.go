package diagnostic

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/crypto/ocsp"
)

// RevocationStatus is the status of a certificate in one revocation datum.
type RevocationStatus string

const (
	StatusGood    RevocationStatus = "good"
	StatusRevoked RevocationStatus = "revoked"
	StatusUnknown RevocationStatus = "unknown"
)

// StatusFromOCSP maps an OCSP certificate status to a revocation status.
func StatusFromOCSP(status int) RevocationStatus {
	switch status {
	case ocsp.Good:
		return StatusGood
	case ocsp.Revoked:
		return StatusRevoked
	default:
		return StatusUnknown
	}
}

// OCSPStatus returns the OCSP certificate status code.
func (s RevocationStatus) OCSPStatus() int {
	switch s {
	case StatusGood:
		return ocsp.Good
	case StatusRevoked:
		return ocsp.Revoked
	default:
		return ocsp.Unknown
	}
}

// RevocationReason is the CRL / OCSP revocation reason.
type RevocationReason string

const (
	ReasonUnspecified          RevocationReason = "unspecified"
	ReasonKeyCompromise        RevocationReason = "keyCompromise"
	ReasonCACompromise         RevocationReason = "cACompromise"
	ReasonAffiliationChanged   RevocationReason = "affiliationChanged"
	ReasonSuperseded           RevocationReason = "superseded"
	ReasonCessationOfOperation RevocationReason = "cessationOfOperation"
	ReasonCertificateHold      RevocationReason = "certificateHold"
	ReasonRemoveFromCRL        RevocationReason = "removeFromCRL"
	ReasonPrivilegeWithdrawn   RevocationReason = "privilegeWithdrawn"
	ReasonAACompromise         RevocationReason = "aACompromise"
)

var reasonCodes = map[RevocationReason]int{
	ReasonUnspecified:          ocsp.Unspecified,
	ReasonKeyCompromise:        ocsp.KeyCompromise,
	ReasonCACompromise:         ocsp.CACompromise,
	ReasonAffiliationChanged:   ocsp.AffiliationChanged,
	ReasonSuperseded:           ocsp.Superseded,
	ReasonCessationOfOperation: ocsp.CessationOfOperation,
	ReasonCertificateHold:      ocsp.CertificateHold,
	ReasonRemoveFromCRL:        ocsp.RemoveFromCRL,
	ReasonPrivilegeWithdrawn:   ocsp.PrivilegeWithdrawn,
	ReasonAACompromise:         ocsp.AACompromise,
}

// ReasonFromCode maps an RFC 5280 reason code to a revocation reason.
func ReasonFromCode(code int) (RevocationReason, error) {
	for r, c := range reasonCodes {
		if c == code {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown revocation reason code %d", code)
}

// Code returns the RFC 5280 reason code, or -1 for an unknown reason.
func (r RevocationReason) Code() int {
	if c, ok := reasonCodes[r]; ok {
		return c
	}
	return -1
}

// IsHold reports whether the reason suspends rather than revokes.
func (r RevocationReason) IsHold() bool {
	return r == ReasonCertificateHold
}

// UnmarshalJSON accepts a reason name (case insensitive) or a numeric code.
func (r *RevocationReason) UnmarshalJSON(b []byte) error {
	var code int
	if err := json.Unmarshal(b, &code); err == nil {
		reason, err := ReasonFromCode(code)
		if err != nil {
			return err
		}
		*r = reason
		return nil
	}
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return fmt.Errorf("revocation reason: %w", err)
	}
	if name == "" {
		*r = ""
		return nil
	}
	for known := range reasonCodes {
		if strings.EqualFold(string(known), name) {
			*r = known
			return nil
		}
	}
	return fmt.Errorf("unknown revocation reason %q", name)
}

// CertificateRevocation returns the entry of c for the given revocation id.
func (c *Certificate) CertificateRevocation(revocationID string) *CertificateRevocation {
	for _, r := range c.Revocations {
		if r.RevocationID == revocationID {
			return r
		}
	}
	return nil
}

// IsRevoked reports whether the entry revokes the certificate for good.
func (r *CertificateRevocation) IsRevoked() bool {
	return r.Status == StatusRevoked && !r.Reason.IsHold()
}

// IsOnHold reports whether the entry suspends the certificate.
func (r *CertificateRevocation) IsOnHold() bool {
	return r.Status == StatusRevoked && r.Reason.IsHold()
}
