package composed

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/zkfabric/sumcheck-core/polynomial"
)

// Sum computes the claimed sum for a composed sum-check session: the total
// of the elementwise product of p's factors over the Boolean hypercube.
func Sum(p *polynomial.ComposedMultilinearPoly) fr.Element {
	var total fr.Element
	for _, v := range p.ElementwiseProduct() {
		total.Add(&total, &v)
	}
	return total
}
