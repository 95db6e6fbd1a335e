// Package sumcheck implements the prover and verifier for the plain
// sum-check protocol: proving that a multilinear polynomial sums to a
// claimed value over the Boolean hypercube.
package sumcheck

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/zkfabric/sumcheck-core/polynomial"
)

// Proof is the transcript-independent artifact a Prove call emits: the
// polynomial being claimed about (for the verifier's final oracle query),
// the claimed sum, the round-0 polynomial, and one round polynomial for
// each subsequent variable.
type Proof struct {
	Poly             *polynomial.MultilinearPoly
	Sum              fr.Element
	InitialRoundPoly *polynomial.MultilinearPoly
	RoundPolys       []*polynomial.MultilinearPoly
}

// ToBytes serializes the proof as polynomial, sum, round polynomials, then
// the initial round polynomial - the field order the original proof type
// uses. Nothing in this package consumes this encoding internally; each
// round polynomial is individually absorbed into the transcript as it is
// produced (see Prove/Verify).
func (p *Proof) ToBytes() []byte {
	var out []byte
	out = append(out, p.Poly.ToBytes()...)
	sumBytes := p.Sum.Marshal()
	out = append(out, sumBytes...)
	for _, rp := range p.RoundPolys {
		out = append(out, rp.ToBytes()...)
	}
	out = append(out, p.InitialRoundPoly.ToBytes()...)
	return out
}
