// Package circuit implements a layered arithmetic circuit evaluator and
// exposes the GKR-style wiring predicates (add_i, mul_i) a sum-check
// composition over circuit layers would consume. It is a thin collaborator
// to the sum-check core, not part of its hard algebra.
package circuit

import (
	"math/bits"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// GateType distinguishes the two fan-in-2 gates a layer can contain.
type GateType int

const (
	Add GateType = iota
	Mul
)

// Gate is a two-input gate whose In indices reference wires in the layer
// below (the layer closer to the circuit's inputs).
type Gate struct {
	Type GateType
	In   [2]int
}

// Layer holds one layer's gates, addressed by their position within it.
type Layer struct {
	Gates []Gate
}

// Len returns the number of gates in the layer.
func (l Layer) Len() int {
	return len(l.Gates)
}

// Circuit is a layered arithmetic circuit. Layers[0] is the output layer;
// the virtual input layer at index len(Layers) holds NumInputs wires with
// no gates of their own.
type Circuit struct {
	Layers    []Layer
	NumInputs int
}

// New builds a Circuit from its layers (output-first) and input count.
func New(layers []Layer, numInputs int) *Circuit {
	return &Circuit{Layers: layers, NumInputs: numInputs}
}

// NumVarsAt returns log2 of the gate count at the given layer index (the
// virtual input layer is index len(Layers)), and false if layer is out of
// range.
func (c *Circuit) NumVarsAt(layer int) (int, bool) {
	switch {
	case layer < 0 || layer > len(c.Layers):
		return 0, false
	case layer == len(c.Layers):
		return bits.TrailingZeros(uint(c.NumInputs)), true
	default:
		return bits.TrailingZeros(uint(c.Layers[layer].Len())), true
	}
}

// Evaluation holds every layer's wire values, indexed output-first to match
// Circuit.Layers, with input values appended as the last entry.
type Evaluation struct {
	Layers [][]fr.Element
}

// W returns the value of wire label at the given layer.
func (e Evaluation) W(layer, label int) fr.Element {
	return e.Layers[layer][label]
}

// Evaluate propagates input (the input-layer wire values) up through each
// layer by applying every gate's operation to its two referenced wires in
// the layer below, then reverses the accumulated layers so Layers[0] is the
// circuit's output layer, matching Circuit.Layers' own ordering.
func (c *Circuit) Evaluate(input []fr.Element) Evaluation {
	layers := make([][]fr.Element, 0, len(c.Layers)+1)
	layers = append(layers, input)

	cur := input
	for i := len(c.Layers) - 1; i >= 0; i-- {
		layer := c.Layers[i]
		next := make([]fr.Element, len(layer.Gates))
		for gi, g := range layer.Gates {
			switch g.Type {
			case Add:
				next[gi].Add(&cur[g.In[0]], &cur[g.In[1]])
			case Mul:
				next[gi].Mul(&cur[g.In[0]], &cur[g.In[1]])
			}
		}
		layers = append(layers, next)
		cur = next
	}

	for i, j := 0, len(layers)-1; i < j; i, j = i+1, j-1 {
		layers[i], layers[j] = layers[j], layers[i]
	}
	return Evaluation{Layers: layers}
}

// AddI is the wiring predicate for Add gates: true iff gate a of layer is an
// Add gate reading wires b, c of the layer below.
func (c *Circuit) AddI(layer, a, b, cc int) bool {
	if layer < 0 || layer >= len(c.Layers) || a < 0 || a >= len(c.Layers[layer].Gates) {
		return false
	}
	g := c.Layers[layer].Gates[a]
	return g.Type == Add && g.In[0] == b && g.In[1] == cc
}

// MulI is the wiring predicate for Mul gates: true iff gate a of layer is a
// Mul gate reading wires b, c of the layer below.
func (c *Circuit) MulI(layer, a, b, cc int) bool {
	if layer < 0 || layer >= len(c.Layers) || a < 0 || a >= len(c.Layers[layer].Gates) {
		return false
	}
	g := c.Layers[layer].Gates[a]
	return g.Type == Mul && g.In[0] == b && g.In[1] == cc
}

// GateMask returns a bitset marking which gates of layer are of type t, a
// sparse representation suited to circuits where one gate type dominates a
// layer.
func (c *Circuit) GateMask(layer int, t GateType) *bitset.BitSet {
	l := c.Layers[layer]
	mask := bitset.New(uint(len(l.Gates)))
	for i, g := range l.Gates {
		if g.Type == t {
			mask.Set(uint(i))
		}
	}
	return mask
}
