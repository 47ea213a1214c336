package bbb

import (
	"time"

	"github.com/georgepadayatti/goades/ades"
	"github.com/georgepadayatti/goades/diagnostic"
	"github.com/georgepadayatti/goades/policy"
)

// xcv validates the certificate chain of certID at time at. Each
// certificate from the leaf up to the trust anchor gets a subXCV result.
func (e *Engine) xcv(ctx policy.Context, certID string, at time.Time) (*Result, *diagnostic.Chain) {
	chain := e.data.BuildChain(certID)
	b := e.newBlock(KindXCV, certID)
	bs := e.policy.BasicSignature(ctx)

	trusted := chain.Trusted()
	if !b.eval(check{tag: ades.XCVChainBuilt, level: bs.ProspectiveCertificateChain.Level, ok: trusted}) {
		return b.result, chain
	}

	for i, cert := range chain.Certificates {
		r := policy.RoleCACertificate
		if i == 0 {
			r = policy.RoleSigningCertificate
		}
		sub := e.subXCV(ctx, cert, r, at)
		b.child(sub)
		before := len(b.result.Records)
		b.conclusive(ades.XCVSubConclusive, policy.LevelFail, sub.Conclusion)
		if len(b.result.Records) > before {
			b.result.Records[len(b.result.Records)-1].ID = cert.ID
		}
		if sub.TrustAnchor {
			break
		}
	}
	return b.result, chain
}

// ChainCertificates returns the certificates of a chain up to and including
// its trust anchor, paired with their roles.
func ChainCertificates(chain *diagnostic.Chain) ([]*diagnostic.Certificate, []policy.Role) {
	var certs []*diagnostic.Certificate
	var roles []policy.Role
	if chain == nil {
		return nil, nil
	}
	for i, c := range chain.Certificates {
		r := policy.RoleCACertificate
		if i == 0 {
			r = policy.RoleSigningCertificate
		}
		certs = append(certs, c)
		roles = append(roles, r)
		if c.Trusted {
			break
		}
	}
	return certs, roles
}
