package sumcheck

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/zkfabric/sumcheck-core/polynomial"
	"github.com/zkfabric/sumcheck-core/transcript"
)

// roundPoly returns the length-2 evaluation-form univariate a multilinear
// polynomial induces in its leading variable: summing over the rest of the
// hypercube is exactly summing the first and second halves of the
// evaluation vector, since variable 0 is the most significant bit.
func roundPoly(p *polynomial.MultilinearPoly) *polynomial.MultilinearPoly {
	half := len(p.Evals) / 2
	var lo, hi fr.Element
	for i := 0; i < half; i++ {
		lo.Add(&lo, &p.Evals[i])
	}
	for i := half; i < len(p.Evals); i++ {
		hi.Add(&hi, &p.Evals[i])
	}
	out, _ := polynomial.NewMultilinearPoly(1, []fr.Element{lo, hi})
	return out
}

// Prove runs the plain sum-check prover on p, asserting that p sums to the
// total of its own evaluation vector over the Boolean hypercube. It returns
// the proof and the full challenge vector, which equals the point the
// verifier's final oracle query evaluates p at.
func Prove(p *polynomial.MultilinearPoly) (*Proof, []fr.Element, error) {
	n := p.NumVars
	if n == 0 {
		return nil, nil, polynomial.ErrEvaluationLength
	}

	var sum fr.Element
	for _, e := range p.Evals {
		sum.Add(&sum, &e)
	}

	tr := transcript.New()
	cur := p
	g0 := roundPoly(cur)
	tr.Append(g0.ToBytes())

	roundPolys := make([]*polynomial.MultilinearPoly, 0, n-1)
	challenges := make([]fr.Element, 0, n)

	// Rounds for variables 1..n-1: each fixes the current leading variable
	// using the just-squeezed challenge, then publishes the round
	// polynomial for the next leading variable.
	for i := 0; i < n-1; i++ {
		r := tr.SqueezeField()
		challenges = append(challenges, r)

		next, err := cur.PartialEval(r, 0)
		if err != nil {
			return nil, nil, err
		}
		cur = next

		g := roundPoly(cur)
		roundPolys = append(roundPolys, g)
		tr.Append(g.ToBytes())
	}

	// The final challenge fixes the last remaining variable; the verifier
	// checks it by evaluating the last round polynomial directly rather
	// than requiring a further round-consistency absorption.
	final := tr.SqueezeField()
	challenges = append(challenges, final)

	proof := &Proof{
		Poly:             p,
		Sum:              sum,
		InitialRoundPoly: g0,
		RoundPolys:       roundPolys,
	}
	return proof, challenges, nil
}
