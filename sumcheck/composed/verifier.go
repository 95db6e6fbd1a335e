package composed

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/zkfabric/sumcheck-core/polynomial"
	"github.com/zkfabric/sumcheck-core/transcript"
)

// evalRoundPolyAt interpolates a round polynomial's evaluation-form values
// at nodes 0..d and evaluates the result at point. This is only needed away
// from the fixed nodes; checking g(0)+g(1) never needs it, since both are
// already stored directly in the evaluation form.
func evalRoundPolyAt(roundPoly []fr.Element, point fr.Element) (fr.Element, error) {
	nodes := make([]fr.Element, len(roundPoly))
	for k := range nodes {
		nodes[k].SetUint64(uint64(k))
	}
	interp, err := polynomial.LagrangeInterpolate(nodes, roundPoly)
	if err != nil {
		return fr.Element{}, err
	}
	return interp.Evaluate(point), nil
}

// Verify checks proof against the claimed sum, replaying the prover's
// transcript order and finishing with an oracle query through poly.
func Verify(poly *polynomial.ComposedMultilinearPoly, sum fr.Element, proof *Proof) bool {
	n := poly.NumVars()
	if len(proof.RoundPolys) != n {
		return false
	}

	tr := transcript.New()
	claimed := sum
	challenges := make([]fr.Element, 0, n)

	for _, g := range proof.RoundPolys {
		if len(g) != poly.MaxDegree()+1 {
			return false
		}
		var roundSum fr.Element
		roundSum.Add(&g[0], &g[1])
		if !roundSum.Equal(&claimed) {
			return false
		}

		tr.Append(bytesOfRoundPoly(g))
		r := tr.SqueezeField()
		challenges = append(challenges, r)

		next, err := evalRoundPolyAt(g, r)
		if err != nil {
			return false
		}
		claimed = next
	}

	finalEval, err := poly.Evaluate(challenges)
	if err != nil {
		return false
	}
	return finalEval.Equal(&proof.FinalEval)
}
