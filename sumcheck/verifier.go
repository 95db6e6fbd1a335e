package sumcheck

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/zkfabric/sumcheck-core/transcript"
)

// Verify recreates an independent transcript, replays the prover's
// absorption order, checks every round-consistency equation, and finishes
// with a direct oracle query against proof.Poly. It never panics on
// malformed-but-well-typed input: any inconsistency is a negative verdict.
func Verify(proof *Proof) bool {
	if proof == nil || proof.Poly == nil || proof.InitialRoundPoly == nil || len(proof.InitialRoundPoly.Evals) != 2 {
		return false
	}
	n := proof.Poly.NumVars
	if n == 0 || len(proof.RoundPolys) != n-1 {
		return false
	}

	var claimed fr.Element
	claimed.Add(&proof.InitialRoundPoly.Evals[0], &proof.InitialRoundPoly.Evals[1])
	if !claimed.Equal(&proof.Sum) {
		return false
	}

	tr := transcript.New()
	tr.Append(proof.InitialRoundPoly.ToBytes())

	challenges := make([]fr.Element, 0, n)
	prev := proof.InitialRoundPoly
	for _, g := range proof.RoundPolys {
		if g == nil || len(g.Evals) != 2 {
			return false
		}
		r := tr.SqueezeField()
		challenges = append(challenges, r)

		prevEval, err := prev.EvalFull([]fr.Element{r})
		if err != nil {
			return false
		}
		var currSum fr.Element
		currSum.Add(&g.Evals[0], &g.Evals[1])
		if !prevEval.Equal(&currSum) {
			return false
		}

		tr.Append(g.ToBytes())
		prev = g
	}

	finalChallenge := tr.SqueezeField()
	challenges = append(challenges, finalChallenge)

	last := proof.InitialRoundPoly
	if len(proof.RoundPolys) > 0 {
		last = proof.RoundPolys[len(proof.RoundPolys)-1]
	}
	lastEval, err := last.EvalFull([]fr.Element{finalChallenge})
	if err != nil {
		return false
	}

	oracleEval, err := proof.Poly.EvalFull(challenges)
	if err != nil {
		return false
	}
	return lastEval.Equal(&oracleEval)
}
