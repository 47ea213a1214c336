package policy

import (
	"sort"
	"strings"
	"time"
)

// AlgoExpiration is the date after which an algorithm, optionally limited
// to a key size, is no longer considered reliable.
type AlgoExpiration struct {
	Algorithm string `yaml:"algorithm"`
	KeySize   int    `yaml:"keySize,omitempty"`
	Date      Date   `yaml:"date"`
}

// CryptographicConstraint lists acceptable algorithms, minimum key sizes and
// algorithm expiration dates.
type CryptographicConstraint struct {
	Level                          Level            `yaml:"level,omitempty"`
	AcceptableEncryptionAlgorithms []string         `yaml:"acceptableEncryptionAlgorithms,omitempty"`
	MiniPublicKeySize              map[string]int   `yaml:"miniPublicKeySize,omitempty"`
	AcceptableDigestAlgorithms     []string         `yaml:"acceptableDigestAlgorithms,omitempty"`
	AlgoExpirationDates            []AlgoExpiration `yaml:"algoExpirationDates,omitempty"`
}

// NormalizeAlgorithm canonicalizes an algorithm name for comparison:
// upper case without dashes or underscores ("sha-256" -> "SHA256").
func NormalizeAlgorithm(name string) string {
	r := strings.NewReplacer("-", "", "_", "", " ", "")
	return strings.ToUpper(r.Replace(name))
}

func containsAlgorithm(list []string, algo string) bool {
	n := NormalizeAlgorithm(algo)
	for _, a := range list {
		if NormalizeAlgorithm(a) == n {
			return true
		}
	}
	return false
}

// EncryptionAllowed reports whether the encryption algorithm is acceptable.
func (c *CryptographicConstraint) EncryptionAllowed(algo string) bool {
	return containsAlgorithm(c.AcceptableEncryptionAlgorithms, algo)
}

// DigestAllowed reports whether the digest algorithm is acceptable.
func (c *CryptographicConstraint) DigestAllowed(algo string) bool {
	return containsAlgorithm(c.AcceptableDigestAlgorithms, algo)
}

// MinKeySize returns the minimum key size for an encryption algorithm.
func (c *CryptographicConstraint) MinKeySize(algo string) (int, bool) {
	n := NormalizeAlgorithm(algo)
	for k, v := range c.MiniPublicKeySize {
		if NormalizeAlgorithm(k) == n {
			return v, true
		}
	}
	return 0, false
}

// DigestExpiration returns the expiration date of a digest algorithm.
func (c *CryptographicConstraint) DigestExpiration(algo string) (time.Time, bool) {
	n := NormalizeAlgorithm(algo)
	for _, e := range c.AlgoExpirationDates {
		if e.KeySize == 0 && NormalizeAlgorithm(e.Algorithm) == n {
			return e.Date.Time, true
		}
	}
	return time.Time{}, false
}

// EncryptionExpiration returns the expiration date of an encryption
// algorithm for the given key size. The entry with the largest key size not
// above keySize applies; keys smaller than every entry use the smallest one.
func (c *CryptographicConstraint) EncryptionExpiration(algo string, keySize int) (time.Time, bool) {
	n := NormalizeAlgorithm(algo)
	var entries []AlgoExpiration
	for _, e := range c.AlgoExpirationDates {
		if NormalizeAlgorithm(e.Algorithm) == n {
			entries = append(entries, e)
		}
	}
	if len(entries) == 0 {
		return time.Time{}, false
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].KeySize < entries[j].KeySize })

	chosen := entries[0]
	for _, e := range entries {
		if e.KeySize <= keySize {
			chosen = e
		}
	}
	return chosen.Date.Time, true
}
