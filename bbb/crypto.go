package bbb

import (
	"strconv"
	"time"

	"github.com/georgepadayatti/goades/ades"
	"github.com/georgepadayatti/goades/diagnostic"
	"github.com/georgepadayatti/goades/policy"
)

// Usage is one use of a cryptographic algorithm in a validated object: a
// signature value (encryption algorithm, digest and key length) or a
// digest-only use such as a reference or a message imprint.
type Usage struct {
	Encryption string
	Digest     string
	KeyLength  int
	Position   ades.MessageTag
	// Level overrides the level of the cryptographic constraint.
	Level policy.Level
}

func signatureUsage(c diagnostic.CryptoInfo, pos ades.MessageTag) Usage {
	return Usage{
		Encryption: c.EncryptionAlgorithm,
		Digest:     c.DigestAlgorithm,
		KeyLength:  c.KeyLength,
		Position:   pos,
	}
}

func digestUsage(algo string, pos ades.MessageTag) Usage {
	return Usage{Digest: algo, Position: pos}
}

func (u Usage) key() string {
	return string(u.Position) + "|" + policy.NormalizeAlgorithm(u.Encryption) + "|" +
		policy.NormalizeAlgorithm(u.Digest) + "|" + strconv.Itoa(u.KeyLength)
}

// CryptoFailure explains why a usage is not acceptable.
type CryptoFailure struct {
	Answer ades.MessageTag
	Args   []any
	// Expiry is set when the algorithm was acceptable before that date.
	Expiry *time.Time
}

// CheckUsage evaluates a usage against a cryptographic constraint at the
// given time. It returns nil when the usage is acceptable.
func CheckUsage(c *policy.CryptographicConstraint, u Usage, at time.Time) *CryptoFailure {
	if c == nil {
		return nil
	}
	if u.Encryption != "" && !c.EncryptionAllowed(u.Encryption) {
		return &CryptoFailure{Answer: ades.CryptoEncryptionNotAllowed, Args: []any{u.Encryption, u.Position}}
	}
	if u.Digest != "" && !c.DigestAllowed(u.Digest) {
		return &CryptoFailure{Answer: ades.CryptoDigestNotAllowed, Args: []any{u.Digest, u.Position}}
	}
	if u.Encryption != "" && u.KeyLength > 0 {
		if minSize, ok := c.MinKeySize(u.Encryption); ok && u.KeyLength < minSize {
			return &CryptoFailure{Answer: ades.CryptoKeySizeTooSmall, Args: []any{u.KeyLength, u.Position}}
		}
	}
	if u.Digest != "" {
		if exp, ok := c.DigestExpiration(u.Digest); ok && !at.Before(exp) {
			return &CryptoFailure{
				Answer: ades.CryptoAlgorithmNotReliable,
				Args:   []any{u.Digest, u.Position, at},
				Expiry: &exp,
			}
		}
	}
	if u.Encryption != "" && u.KeyLength > 0 {
		if exp, ok := c.EncryptionExpiration(u.Encryption, u.KeyLength); ok && !at.Before(exp) {
			return &CryptoFailure{
				Answer: ades.CryptoAlgorithmNotReliable,
				Args:   []any{u.Encryption + strconv.Itoa(u.KeyLength), u.Position, at},
				Expiry: &exp,
			}
		}
	}
	return nil
}

// evalCrypto records one cryptographic check per distinct usage.
func (b *block) evalCrypto(c *policy.CryptographicConstraint, usages []Usage, at time.Time) bool {
	if c == nil {
		return true
	}
	ok := true
	seen := make(map[string]bool)
	for _, u := range usages {
		if seen[u.key()] {
			continue
		}
		seen[u.key()] = true
		level := c.Level
		if u.Level.IsSet() {
			level = u.Level
		}
		chk := check{tag: ades.CryptoConstraintsMet, level: level, ok: true, args: []any{u.Position}}
		if f := CheckUsage(c, u, at); f != nil {
			chk.ok = false
			chk.answer = f.Answer
			chk.answerArgs = f.Args
		}
		if !b.eval(chk) {
			ok = false
		}
	}
	return ok
}

// UsagesExpiredAt returns the failures of the usages at the given time.
func UsagesExpiredAt(c *policy.CryptographicConstraint, usages []Usage, at time.Time) []*CryptoFailure {
	var out []*CryptoFailure
	for _, u := range usages {
		if f := CheckUsage(c, u, at); f != nil {
			out = append(out, f)
		}
	}
	return out
}
