// Package transcript implements the Fiat-Shamir transcript the sum-check
// prover and verifier use to derive deterministic challenges from a
// Keccak-256 sponge.
package transcript

import (
	"hash"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/crypto/sha3"
)

// Transcript is a Keccak-256 absorbing sponge. It owns exclusive mutable
// state for the duration of one proof session and must not be shared
// between sessions.
type Transcript struct {
	h hash.Hash
}

// New returns a fresh transcript with empty absorbed state.
func New() *Transcript {
	return &Transcript{h: sha3.NewLegacyKeccak256()}
}

// Append absorbs data into the sponge.
func (t *Transcript) Append(data []byte) {
	t.h.Write(data)
}

// SqueezeBytes finalizes the sponge into a 32-byte digest, re-absorbs that
// digest so the next squeeze is not idempotent, and returns it.
func (t *Transcript) SqueezeBytes() [32]byte {
	digest := t.h.Sum(nil)
	t.h.Reset()
	t.h.Write(digest)

	var out [32]byte
	copy(out[:], digest)
	return out
}

// SqueezeField finalizes the sponge the same way as SqueezeBytes and maps
// the digest into the field by modular reduction. gnark-crypto's
// fr.Element.SetBytes always reduces rather than failing, so this never
// needs rejection sampling to avoid a silent failure on valid input.
func (t *Transcript) SqueezeField() fr.Element {
	digest := t.SqueezeBytes()
	var e fr.Element
	e.SetBytes(digest[:])
	return e
}
