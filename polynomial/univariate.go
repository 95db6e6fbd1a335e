// Package polynomial implements the univariate, multilinear and composed
// multilinear polynomial layers the sum-check protocol is built on.
package polynomial

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

var (
	// ErrMismatchedLength is returned when two coordinate slices that must
	// walk in lock-step (x's and y's for interpolation) differ in length.
	ErrMismatchedLength = errors.New("polynomial: mismatched slice lengths")
	// ErrDuplicateX is returned when an interpolation's x-coordinates are
	// not pairwise distinct, which makes the Lagrange basis undefined.
	ErrDuplicateX = errors.New("polynomial: duplicate x coordinate")
)

// UnivariatePoly is a single-variable polynomial stored as its coefficient
// vector, lowest degree first: Coefficients[i] is the coefficient of x^i.
type UnivariatePoly struct {
	Coefficients []fr.Element
}

// NewUnivariatePoly wraps a coefficient vector. The vector is used as-is,
// low-degree-first; a nil or empty vector represents the zero polynomial.
func NewUnivariatePoly(coefficients []fr.Element) UnivariatePoly {
	return UnivariatePoly{Coefficients: coefficients}
}

// Degree returns len(Coefficients)-1: the polynomial's degree when the last
// coefficient is non-zero, and -1 for an empty coefficient vector. Trailing
// zero coefficients are counted.
func (p UnivariatePoly) Degree() int {
	return len(p.Coefficients) - 1
}

// Add returns p+q. Unlike Mul, the result is not trimmed of trailing zero
// coefficients: it always has the longer operand's length, so when the top
// coefficients cancel, Degree() of the sum reports that length minus one
// rather than the true degree.
func Add(p, q UnivariatePoly) UnivariatePoly {
	n := len(p.Coefficients)
	if len(q.Coefficients) > n {
		n = len(q.Coefficients)
	}
	out := make([]fr.Element, n)
	for i := 0; i < n; i++ {
		var a, b fr.Element
		if i < len(p.Coefficients) {
			a = p.Coefficients[i]
		}
		if i < len(q.Coefficients) {
			b = q.Coefficients[i]
		}
		out[i].Add(&a, &b)
	}
	return UnivariatePoly{Coefficients: out}
}

// Mul returns p*q via the schoolbook convolution, buffered into a single
// result slice of exactly deg(p)+deg(q)+1 coefficients - the one length that
// can hold every term of the product without truncating the top degree.
func Mul(p, q UnivariatePoly) UnivariatePoly {
	if len(p.Coefficients) == 0 || len(q.Coefficients) == 0 {
		return UnivariatePoly{}
	}
	size := len(p.Coefficients) + len(q.Coefficients) - 1
	out := make([]fr.Element, size)
	for i, a := range p.Coefficients {
		if a.IsZero() {
			continue
		}
		for j, b := range q.Coefficients {
			var t fr.Element
			t.Mul(&a, &b)
			out[i+j].Add(&out[i+j], &t)
		}
	}
	return UnivariatePoly{Coefficients: trimTrailingZeros(out)}
}

func trimTrailingZeros(coeffs []fr.Element) []fr.Element {
	last := len(coeffs)
	for last > 0 && coeffs[last-1].IsZero() {
		last--
	}
	return coeffs[:last]
}

// Evaluate evaluates p at x using Horner's method. It always walks the full
// coefficient vector, including the constant term, regardless of x's value -
// there is no shortcut for x==0 that would skip c0.
func (p UnivariatePoly) Evaluate(x fr.Element) fr.Element {
	var result fr.Element
	for i := len(p.Coefficients) - 1; i >= 0; i-- {
		result.Mul(&result, &x)
		result.Add(&result, &p.Coefficients[i])
	}
	return result
}

// LagrangeInterpolate builds the unique polynomial of degree < len(xs) that
// passes through (xs[i], ys[i]) for every i, via the Lagrange basis. xs must
// be pairwise distinct and xs/ys must have equal length; empty inputs yield
// the zero polynomial with no error.
func LagrangeInterpolate(xs, ys []fr.Element) (UnivariatePoly, error) {
	if len(xs) != len(ys) {
		return UnivariatePoly{}, ErrMismatchedLength
	}
	if len(xs) == 0 {
		return UnivariatePoly{}, nil
	}
	for i := 0; i < len(xs); i++ {
		for j := i + 1; j < len(xs); j++ {
			if xs[i].Equal(&xs[j]) {
				return UnivariatePoly{}, ErrDuplicateX
			}
		}
	}

	result := UnivariatePoly{Coefficients: make([]fr.Element, len(xs))}
	for i := range xs {
		basis := UnivariatePoly{Coefficients: []fr.Element{one()}}
		var denom fr.Element
		denom.SetOne()
		for j := range xs {
			if i == j {
				continue
			}
			var negXj fr.Element
			negXj.Neg(&xs[j])
			linear := UnivariatePoly{Coefficients: []fr.Element{negXj, one()}}
			basis = Mul(basis, linear)

			var diff fr.Element
			diff.Sub(&xs[i], &xs[j])
			denom.Mul(&denom, &diff)
		}
		var denomInv fr.Element
		denomInv.Inverse(&denom)

		var scale fr.Element
		scale.Mul(&ys[i], &denomInv)

		for k, c := range basis.Coefficients {
			var term fr.Element
			term.Mul(&c, &scale)
			result.Coefficients[k].Add(&result.Coefficients[k], &term)
		}
	}
	return UnivariatePoly{Coefficients: trimTrailingZeros(result.Coefficients)}, nil
}

func one() fr.Element {
	var e fr.Element
	e.SetOne()
	return e
}
