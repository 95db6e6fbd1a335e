package polynomial

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/sync/errgroup"
)

// ErrNoFactors is returned when a ComposedMultilinearPoly is built from an
// empty factor list.
var ErrNoFactors = errors.New("polynomial: composed polynomial has no factors")

// ErrFactorMismatch is returned when a ComposedMultilinearPoly's factors do
// not all share the same variable count.
var ErrFactorMismatch = errors.New("polynomial: composed polynomial factors have mismatched variable counts")

// ComposedMultilinearPoly represents the pointwise product of a list of
// multilinear polynomials sharing the same variable count - the shape of a
// sum-check summand that is itself a product of several multilinear factors
// (as in a GKR-style composition).
type ComposedMultilinearPoly struct {
	Factors []*MultilinearPoly
}

// NewComposedMultilinearPoly wraps factors as their pointwise product. All
// factors must share NumVars.
func NewComposedMultilinearPoly(factors []*MultilinearPoly) (*ComposedMultilinearPoly, error) {
	if len(factors) == 0 {
		return nil, ErrNoFactors
	}
	n := factors[0].NumVars
	for _, f := range factors[1:] {
		if f.NumVars != n {
			return nil, ErrFactorMismatch
		}
	}
	return &ComposedMultilinearPoly{Factors: factors}, nil
}

// NumVars returns the shared variable count of the factors.
func (c *ComposedMultilinearPoly) NumVars() int {
	return c.Factors[0].NumVars
}

// MaxDegree is the number of factors: the degree the sum-check round
// polynomial can reach in any single variable, since each factor contributes
// at most one degree to it.
func (c *ComposedMultilinearPoly) MaxDegree() int {
	return len(c.Factors)
}

// Evaluate evaluates every factor at xs and multiplies the results.
func (c *ComposedMultilinearPoly) Evaluate(xs []fr.Element) (fr.Element, error) {
	result := one()
	for _, f := range c.Factors {
		v, err := f.EvalFull(xs)
		if err != nil {
			return fr.Element{}, err
		}
		result.Mul(&result, &v)
	}
	return result, nil
}

// PartialEval fixes variable k to r in every factor, returning a new
// composed polynomial over one fewer variable.
func (c *ComposedMultilinearPoly) PartialEval(r fr.Element, k int) (*ComposedMultilinearPoly, error) {
	next := make([]*MultilinearPoly, len(c.Factors))
	for i, f := range c.Factors {
		p, err := f.PartialEval(r, k)
		if err != nil {
			return nil, err
		}
		next[i] = p
	}
	return &ComposedMultilinearPoly{Factors: next}, nil
}

// ElementwiseProduct returns, for every point of the hypercube, the product
// of the factors' evaluations at that point.
func (c *ComposedMultilinearPoly) ElementwiseProduct() []fr.Element {
	size := len(c.Factors[0].Evals)
	out := make([]fr.Element, size)
	for i := range out {
		v := one()
		for _, f := range c.Factors {
			v.Mul(&v, &f.Evals[i])
		}
		out[i] = v
	}
	return out
}

// ElementwiseProductParallel computes the same result as ElementwiseProduct,
// sharded across goroutines via errgroup. Each output slot is still computed
// by a single goroutine end to end, so the result is bit-identical to the
// sequential version - sharding only distributes slots across workers, it
// never splits one slot's product across more than one goroutine.
func (c *ComposedMultilinearPoly) ElementwiseProductParallel(shards int) ([]fr.Element, error) {
	size := len(c.Factors[0].Evals)
	if shards < 1 {
		shards = 1
	}
	out := make([]fr.Element, size)

	var g errgroup.Group
	chunk := (size + shards - 1) / shards
	for s := 0; s < shards; s++ {
		start := s * chunk
		if start >= size {
			break
		}
		end := start + chunk
		if end > size {
			end = size
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				v := one()
				for _, f := range c.Factors {
					v.Mul(&v, &f.Evals[i])
				}
				out[i] = v
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// ToBytes serializes the composed polynomial as the concatenation of each
// factor's ToBytes image, in order.
func (c *ComposedMultilinearPoly) ToBytes() []byte {
	var out []byte
	for _, f := range c.Factors {
		out = append(out, f.ToBytes()...)
	}
	return out
}
