// Package shamir implements Shamir secret sharing, built entirely on the
// univariate polynomial and Lagrange interpolation layer: a thin client of
// the polynomial package, not new algebra.
package shamir

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/zkfabric/sumcheck-core/polynomial"
)

// CreateShares samples a degree-threshold random polynomial with constant
// term secret, and evaluates it at x = 1, 2, ..., members. Reconstructing
// the secret requires at least threshold+1 of the returned shares.
func CreateShares(secret fr.Element, threshold, members uint64) (xs, ys []fr.Element, err error) {
	coeffs := make([]fr.Element, threshold+1)
	coeffs[0] = secret
	for i := uint64(1); i <= threshold; i++ {
		if _, err := coeffs[i].SetRandom(); err != nil {
			return nil, nil, err
		}
	}
	poly := polynomial.NewUnivariatePoly(coeffs)

	xs = make([]fr.Element, members)
	ys = make([]fr.Element, members)
	for i := uint64(0); i < members; i++ {
		xs[i].SetUint64(i + 1)
		ys[i] = poly.Evaluate(xs[i])
	}
	return xs, ys, nil
}

// ReconstructSecret recovers the polynomial through (xs, ys) via Lagrange
// interpolation and evaluates it at at (typically zero, the constant term).
// Duplicate or mismatched xs surface as an error rather than panicking.
func ReconstructSecret(xs, ys []fr.Element, at fr.Element) (fr.Element, error) {
	poly, err := polynomial.LagrangeInterpolate(xs, ys)
	if err != nil {
		return fr.Element{}, err
	}
	return poly.Evaluate(at), nil
}
