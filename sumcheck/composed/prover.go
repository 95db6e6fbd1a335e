package composed

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/zkfabric/sumcheck-core/polynomial"
	"github.com/zkfabric/sumcheck-core/transcript"
)

// computeRoundPoly evaluates the current composed polynomial's round
// polynomial g(k) at each node k = 0..maxDegree, by fixing variable 0 to k
// and summing the elementwise product over the rest of the hypercube.
func computeRoundPoly(p *polynomial.ComposedMultilinearPoly) ([]fr.Element, error) {
	d := p.MaxDegree()
	out := make([]fr.Element, d+1)
	for k := 0; k <= d; k++ {
		var kElem fr.Element
		kElem.SetUint64(uint64(k))

		fixed, err := p.PartialEval(kElem, 0)
		if err != nil {
			return nil, err
		}
		var sum fr.Element
		for _, v := range fixed.ElementwiseProduct() {
			sum.Add(&sum, &v)
		}
		out[k] = sum
	}
	return out, nil
}

// Prove runs the composed sum-check prover over p, claiming that the
// elementwise product of its factors sums to the total of that product over
// the Boolean hypercube. It returns the proof and the full challenge vector.
func Prove(p *polynomial.ComposedMultilinearPoly) (*Proof, []fr.Element, error) {
	n := p.NumVars()
	tr := transcript.New()
	cur := p

	roundPolys := make([][]fr.Element, 0, n)
	challenges := make([]fr.Element, 0, n)

	for i := 0; i < n; i++ {
		g, err := computeRoundPoly(cur)
		if err != nil {
			return nil, nil, err
		}
		roundPolys = append(roundPolys, g)
		tr.Append(bytesOfRoundPoly(g))

		r := tr.SqueezeField()
		challenges = append(challenges, r)

		cur, err = cur.PartialEval(r, 0)
		if err != nil {
			return nil, nil, err
		}
	}

	finalEval, err := cur.Evaluate(nil)
	if err != nil {
		return nil, nil, err
	}

	return &Proof{RoundPolys: roundPolys, FinalEval: finalEval}, challenges, nil
}

func bytesOfRoundPoly(g []fr.Element) []byte {
	var out []byte
	for _, v := range g {
		out = append(out, v.Marshal()...)
	}
	return out
}
