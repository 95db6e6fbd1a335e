package polynomial

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// ErrEvaluationLength is returned when a multilinear polynomial is
// constructed with an evaluation vector whose length is not a power of two
// matching the claimed variable count. The check compares against 1<<n -
// never against 1>>n, which equals 1<<n only for n==0 and is zero for every
// larger n, so it would reject every non-empty vector once n>0.
var ErrEvaluationLength = errors.New("polynomial: evaluation vector length is not 2^numVars")

// ErrVariableIndex is returned when a variable index passed to PartialEval
// is out of range for the polynomial's current variable count.
var ErrVariableIndex = errors.New("polynomial: variable index out of range")

// MultilinearPoly is a multilinear polynomial over {0,1}^NumVars, stored as
// its full evaluation table on the Boolean hypercube. Evals is ordered so
// that variable 0 is the most significant bit of the index: Evals[i]
// corresponds to the point whose bit string, read MSB-first, is the binary
// expansion of i across NumVars bits.
type MultilinearPoly struct {
	NumVars int
	Evals   []fr.Element
}

// NewMultilinearPoly builds a multilinear polynomial from its evaluation
// table. len(evals) must equal 2^numVars exactly.
func NewMultilinearPoly(numVars int, evals []fr.Element) (*MultilinearPoly, error) {
	if len(evals) != 1<<numVars {
		return nil, ErrEvaluationLength
	}
	return &MultilinearPoly{NumVars: numVars, Evals: evals}, nil
}

// ZeroMultilinearPoly returns the all-zero multilinear polynomial over
// numVars variables.
func ZeroMultilinearPoly(numVars int) *MultilinearPoly {
	return &MultilinearPoly{NumVars: numVars, Evals: make([]fr.Element, 1<<numVars)}
}

// PartialEval fixes variable k to r, returning a polynomial over NumVars-1
// variables. The remaining variables keep their relative order and the
// MSB-first convention: a variable with index greater than k shifts down by
// one, a variable with index less than k keeps its index.
func (p *MultilinearPoly) PartialEval(r fr.Element, k int) (*MultilinearPoly, error) {
	if k < 0 || k >= p.NumVars {
		return nil, ErrVariableIndex
	}
	pairs := generatePairs(len(p.Evals), k)
	out := make([]fr.Element, len(pairs))
	for i, pr := range pairs {
		lo, hi := p.Evals[pr[0]], p.Evals[pr[1]]
		var diff, scaled fr.Element
		diff.Sub(&hi, &lo)
		scaled.Mul(&diff, &r)
		out[i].Add(&lo, &scaled)
	}
	return &MultilinearPoly{NumVars: p.NumVars - 1, Evals: out}, nil
}

// EvalFull evaluates p at a full assignment of all NumVars variables, by
// partially evaluating one variable at a time until a single value remains.
func (p *MultilinearPoly) EvalFull(xs []fr.Element) (fr.Element, error) {
	if len(xs) != p.NumVars {
		return fr.Element{}, ErrEvaluationLength
	}
	cur := p
	for _, x := range xs {
		next, err := cur.PartialEval(x, 0)
		if err != nil {
			return fr.Element{}, err
		}
		cur = next
	}
	if len(cur.Evals) == 0 {
		return fr.Element{}, nil
	}
	return cur.Evals[0], nil
}

// Add returns p+q. When the two polynomials do not share the same variable
// count, the shorter evaluation vector is tiled - each of its entries
// repeated stride = longer/shorter times, contiguously - to the longer
// length before the elementwise sum, rather than rejecting the mismatch.
func (p *MultilinearPoly) Add(q *MultilinearPoly) *MultilinearPoly {
	longer, shorter := p, q
	if len(shorter.Evals) > len(longer.Evals) {
		longer, shorter = shorter, longer
	}
	stride := len(longer.Evals) / len(shorter.Evals)

	out := make([]fr.Element, len(longer.Evals))
	for i, v := range longer.Evals {
		tiled := shorter.Evals[i/stride]
		out[i].Add(&v, &tiled)
	}
	return &MultilinearPoly{NumVars: longer.NumVars, Evals: out}
}

// ToBytes serializes p as: little-endian u32 variable count, little-endian
// u32 evaluation-vector length, then each evaluation's canonical big-endian
// field encoding in order. This is the byte image the Fiat-Shamir transcript
// absorbs for each round polynomial.
func (p *MultilinearPoly) ToBytes() []byte {
	out := make([]byte, 0, 8+len(p.Evals)*fr.Bytes)
	out = append(out, le32(uint32(p.NumVars))...)
	out = append(out, le32(uint32(len(p.Evals)))...)
	for _, e := range p.Evals {
		out = append(out, e.Marshal()...)
	}
	return out
}

func le32(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}
