// Package composed implements the sum-check prover and verifier for a
// polynomial that is the product of several multilinear factors, where the
// round polynomial can have degree greater than one.
package composed

import "github.com/consensys/gnark-crypto/ecc/bn254/fr"

// Proof is the sum-check artifact for a composed (product) polynomial: one
// round polynomial per variable, each stored as d+1 evaluations at nodes
// 0..d (d = number of factors), plus the final evaluation scalar the
// verifier's oracle query compares against.
type Proof struct {
	RoundPolys [][]fr.Element
	FinalEval  fr.Element
}
