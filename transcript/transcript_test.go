package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranscriptDeterminism(t *testing.T) {
	a := New()
	b := New()

	a.Append([]byte("round-0"))
	b.Append([]byte("round-0"))

	assert.Equal(t, a.SqueezeBytes(), b.SqueezeBytes())

	a.Append([]byte("round-1"))
	b.Append([]byte("round-1"))

	fa := a.SqueezeField()
	fb := b.SqueezeField()
	assert.True(t, fa.Equal(&fb))
}

func TestTranscriptSqueezeIsNotIdempotent(t *testing.T) {
	tr := New()
	tr.Append([]byte("seed"))

	first := tr.SqueezeBytes()
	second := tr.SqueezeBytes()
	assert.NotEqual(t, first, second)
}

func TestTranscriptDivergesOnDifferentAbsorptions(t *testing.T) {
	a := New()
	b := New()
	a.Append([]byte("left"))
	b.Append([]byte("right"))
	assert.NotEqual(t, a.SqueezeBytes(), b.SqueezeBytes())
}
