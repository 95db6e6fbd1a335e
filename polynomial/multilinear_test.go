package polynomial

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultilinearPartialEvalAndEvalFull(t *testing.T) {
	p, err := NewMultilinearPoly(2, felts(0, 0, 2, 5))
	require.NoError(t, err)

	var r fr.Element
	r.SetInt64(3)
	partial, err := p.PartialEval(r, 0)
	require.NoError(t, err)

	want := felts(6, 15)
	require.Len(t, partial.Evals, 2)
	assert.True(t, partial.Evals[0].Equal(&want[0]))
	assert.True(t, partial.Evals[1].Equal(&want[1]))

	full, err := p.EvalFull(felts(3, 5))
	require.NoError(t, err)
	want51 := felts(51)[0]
	assert.True(t, full.Equal(&want51))
}

func TestMultilinearConstructorRejectsWrongLength(t *testing.T) {
	_, err := NewMultilinearPoly(2, felts(1, 2, 3))
	assert.ErrorIs(t, err, ErrEvaluationLength)
}

func TestMultilinearAddMixedN(t *testing.T) {
	p1, err := NewMultilinearPoly(3, felts(1, 2, 3, 4, 1, 2, 3, 4))
	require.NoError(t, err)
	p2, err := NewMultilinearPoly(2, felts(1, 2, 3, 4))
	require.NoError(t, err)

	sum := p1.Add(p2)
	assert.Equal(t, 3, sum.NumVars)
	want := felts(2, 3, 5, 6, 4, 5, 7, 8)
	for i := range want {
		assert.True(t, sum.Evals[i].Equal(&want[i]), "index %d", i)
	}
}

func TestMultilinearEvalFullViaSequentialPartialEval(t *testing.T) {
	// Quantified invariant: eval_full(r) equals applying partial_eval(r_i, 0)
	// for each r_i in order.
	p, err := NewMultilinearPoly(3, felts(1, 2, 3, 4, 5, 6, 7, 8))
	require.NoError(t, err)

	point := felts(2, 9, 4)
	viaEvalFull, err := p.EvalFull(point)
	require.NoError(t, err)

	cur := p
	for _, x := range point {
		cur, err = cur.PartialEval(x, 0)
		require.NoError(t, err)
	}
	require.Len(t, cur.Evals, 1)
	assert.True(t, viaEvalFull.Equal(&cur.Evals[0]))
}

func TestMultilinearPartialEvalAtZeroAndOneAreHypercubeSlices(t *testing.T) {
	p, err := NewMultilinearPoly(2, felts(10, 20, 30, 40))
	require.NoError(t, err)

	var zero, one fr.Element
	one.SetOne()

	atZero, err := p.PartialEval(zero, 0)
	require.NoError(t, err)
	wantZero := felts(10, 20)
	for i := range wantZero {
		assert.True(t, atZero.Evals[i].Equal(&wantZero[i]))
	}

	atOne, err := p.PartialEval(one, 0)
	require.NoError(t, err)
	wantOne := felts(30, 40)
	for i := range wantOne {
		assert.True(t, atOne.Evals[i].Equal(&wantOne[i]))
	}
}

func TestMultilinearPartialEvalOutOfRangeIndex(t *testing.T) {
	p, err := NewMultilinearPoly(2, felts(1, 2, 3, 4))
	require.NoError(t, err)
	var r fr.Element
	r.SetInt64(1)
	_, err = p.PartialEval(r, 2)
	assert.ErrorIs(t, err, ErrVariableIndex)
}

func TestMultilinearToBytesDeterministic(t *testing.T) {
	p, err := NewMultilinearPoly(2, felts(1, 2, 3, 4))
	require.NoError(t, err)
	a := p.ToBytes()
	b := p.ToBytes()
	assert.Equal(t, a, b)
	assert.NotEmpty(t, a)
}
