package process

import (
	"time"

	"github.com/georgepadayatti/goades/ades"
	"github.com/georgepadayatti/goades/bbb"
	"github.com/georgepadayatti/goades/diagnostic"
	"github.com/georgepadayatti/goades/policy"
)

// chainCert is a certificate of a validated chain with the facts the
// long-term processes re-judge at another time.
type chainCert struct {
	cert  *diagnostic.Certificate
	role  policy.Role
	sub   *bbb.Result
	rev   *diagnostic.Revocation
	entry *diagnostic.CertificateRevocation
}

// validatedChain lists the certificates that got a subXCV result, leaf
// first. Trust anchors that ended the walk are left out.
func (x *executor) validatedChain(xcv *bbb.Result, chain *diagnostic.Chain) []chainCert {
	certs, roles := bbb.ChainCertificates(chain)
	var out []chainCert
	for i, c := range certs {
		sub := xcv.Child(bbb.KindSubXCV, c.ID)
		if sub == nil || sub.TrustAnchor {
			continue
		}
		cc := chainCert{cert: c, role: roles[i], sub: sub, entry: bbb.SelectedRevocation(xcv, c)}
		if cc.entry != nil {
			cc.rev = x.data.Revocation(cc.entry.RevocationID)
		}
		out = append(out, cc)
	}
	return out
}

func failedWith(r *bbb.Result, tag ades.MessageTag) bool {
	rec := r.Record(tag)
	return rec != nil && rec.Status == ades.StatusNotOK
}

// failLevelOnly keeps the usages that are judged at FAIL level under c.
func failLevelOnly(c *policy.CryptographicConstraint, usages []bbb.Usage) []bbb.Usage {
	var out []bbb.Usage
	for _, u := range usages {
		level := c.Level
		if u.Level.IsSet() {
			level = u.Level
		}
		if level == policy.LevelFail {
			out = append(out, u)
		}
	}
	return out
}

// cryptoFailures returns the FAIL-level algorithm failures of an object and
// of its validated chain at time at.
func (x *executor) cryptoFailures(ctx policy.Context, usages []bbb.Usage, chain []chainCert, at time.Time) []*bbb.CryptoFailure {
	c := x.policy.Crypto(ctx)
	out := bbb.UsagesExpiredAt(c, failLevelOnly(c, usages), at)
	for _, cc := range chain {
		cert := x.policy.CertificateCrypto(ctx, cc.role)
		out = append(out, bbb.UsagesExpiredAt(cert, failLevelOnly(cert, []bbb.Usage{bbb.CertificateUsage(cc.cert)}), at)...)
	}
	return out
}
