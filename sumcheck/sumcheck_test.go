package sumcheck

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zkfabric/sumcheck-core/polynomial"
)

func felts(vals ...int64) []fr.Element {
	out := make([]fr.Element, len(vals))
	for i, v := range vals {
		out[i].SetInt64(v)
	}
	return out
}

func TestProveInitialRoundPolynomial(t *testing.T) {
	p, err := polynomial.NewMultilinearPoly(3, felts(0, 0, 0, 2, 2, 2, 2, 4))
	require.NoError(t, err)

	proof, _, err := Prove(p)
	require.NoError(t, err)

	want := felts(2, 10)
	assert.True(t, proof.InitialRoundPoly.Evals[0].Equal(&want[0]))
	assert.True(t, proof.InitialRoundPoly.Evals[1].Equal(&want[1]))

	want12 := felts(12)[0]
	assert.True(t, proof.Sum.Equal(&want12))
}

func TestProveVerifyRoundTripAccepts(t *testing.T) {
	p, err := polynomial.NewMultilinearPoly(3, felts(0, 0, 0, 2, 2, 2, 2, 4))
	require.NoError(t, err)

	proof, _, err := Prove(p)
	require.NoError(t, err)
	assert.True(t, Verify(proof))
}

func TestVerifyRejectsTamperedEvaluation(t *testing.T) {
	p, err := polynomial.NewMultilinearPoly(3, felts(0, 0, 0, 2, 2, 2, 2, 4))
	require.NoError(t, err)

	proof, _, err := Prove(p)
	require.NoError(t, err)

	tampered := make([]fr.Element, len(p.Evals))
	copy(tampered, p.Evals)
	tampered[0].SetInt64(99)
	tamperedPoly, err := polynomial.NewMultilinearPoly(p.NumVars, tampered)
	require.NoError(t, err)
	proof.Poly = tamperedPoly

	assert.False(t, Verify(proof))
}

func TestProveVerifyRoundTripSingleVariable(t *testing.T) {
	p, err := polynomial.NewMultilinearPoly(1, felts(3, 9))
	require.NoError(t, err)

	proof, _, err := Prove(p)
	require.NoError(t, err)
	assert.True(t, Verify(proof))
}
