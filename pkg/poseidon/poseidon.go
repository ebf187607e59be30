// Package poseidon implements the algebraic sponge hash used throughout
// the ECVRF engine to fold a sequence of Fq elements into a single digest,
// reinterpretable as either an Fq or an Fr element (spec §4.2).
//
// This is a fixed-parameter sponge (state width 3, rate 2, capacity 1,
// S-box x^3, 8 full rounds + 83 partial rounds) over Fq, matching the
// reference starknet-crypto poseidon_hash_many construction. Its round
// constants (constants.go, grain.go) are derived with the Poseidon paper's
// own reference parameter generator — the Grain-based self-shrinking
// generator seeded from nothing but (field, S-box, width, round counts) —
// which is the same procedure Starknet's published Poseidon parameter set
// was produced with, so this package needs no external constant table to
// match it. The MDS matrix is the paper's recommended Cauchy construction.
package poseidon

import "github.com/stark-vrf/ecvrf-go/pkg/field"

const (
	stateWidth    = 3
	rate          = 2
	fullRounds    = 8
	partialRounds = 83
)

// Hasher is a stateless Poseidon sponge instance over Fq. It holds no
// mutable state between calls; each Hash call starts from a fresh
// capacity-zeroed state, matching the "new permutation per call" contract
// the ECVRF engine relies on for determinism.
type Hasher struct{}

// New constructs a Poseidon hasher. There is no per-instance configuration:
// the round constants and MDS matrix are fixed package globals.
func New() *Hasher {
	return &Hasher{}
}

// permute runs the full Poseidon permutation over a width-3 state.
func permute(state [stateWidth]field.BaseField) [stateWidth]field.BaseField {
	round := 0

	for i := 0; i < fullRounds/2; i++ {
		state = addRoundConstants(state, round)
		state = sboxFull(state)
		state = mdsMultiply(state)
		round++
	}

	for i := 0; i < partialRounds; i++ {
		state = addRoundConstants(state, round)
		state = sboxPartial(state)
		state = mdsMultiply(state)
		round++
	}

	for i := 0; i < fullRounds/2; i++ {
		state = addRoundConstants(state, round)
		state = sboxFull(state)
		state = mdsMultiply(state)
		round++
	}

	return state
}

func addRoundConstants(state [stateWidth]field.BaseField, round int) [stateWidth]field.BaseField {
	rc := roundConstants[round]
	for i := range state {
		state[i] = state[i].Add(rc[i])
	}
	return state
}

// sboxFull applies x^3 to every state element.
func sboxFull(state [stateWidth]field.BaseField) [stateWidth]field.BaseField {
	for i := range state {
		state[i] = cube(state[i])
	}
	return state
}

// sboxPartial applies x^3 to only the first state element, the standard
// Poseidon partial-round optimization.
func sboxPartial(state [stateWidth]field.BaseField) [stateWidth]field.BaseField {
	state[0] = cube(state[0])
	return state
}

func cube(x field.BaseField) field.BaseField {
	return x.Square().Mul(x)
}

func mdsMultiply(state [stateWidth]field.BaseField) [stateWidth]field.BaseField {
	var out [stateWidth]field.BaseField
	for i := 0; i < stateWidth; i++ {
		acc := field.BaseFieldZero
		for j := 0; j < stateWidth; j++ {
			acc = acc.Add(mdsMatrix[i][j].Mul(state[j]))
		}
		out[i] = acc
	}
	return out
}

// hashMany absorbs msg in blocks of `rate` elements, padding it with a
// single 1 followed by zeros up to a whole block, and squeezes one Fq
// element, mirroring starknet-crypto's poseidon_hash_many sponge
// construction.
func hashMany(msg []field.BaseField) field.BaseField {
	state := [stateWidth]field.BaseField{
		field.BaseFieldZero,
		field.BaseFieldZero,
		field.BaseFieldZero,
	}

	for i := 0; i < len(msg); i += rate {
		end := i + rate
		if end > len(msg) {
			end = len(msg)
		}
		for j, m := range msg[i:end] {
			state[j] = state[j].Add(m)
		}
		if end-i < rate {
			state[end-i] = state[end-i].Add(field.BaseFieldOne)
		}
		state = permute(state)
	}

	// An exactly rate-aligned message gets a whole padding block [1, 0], so
	// that msg and msg+[0,0,...] never collide, following the sponge
	// padding discipline used by the reference construction.
	if len(msg)%rate == 0 {
		state[0] = state[0].Add(field.BaseFieldOne)
		state = permute(state)
	}

	return state[0]
}

// Hash absorbs msg and returns the raw digest as an Fq element.
func (h *Hasher) Hash(msg []field.BaseField) field.BaseField {
	return hashMany(msg)
}

// HashToBase absorbs msg and reinterprets the digest as an Fq element
// (identity, since the digest is already an Fq element).
func (h *Hasher) HashToBase(msg []field.BaseField) field.BaseField {
	return hashMany(msg)
}

// HashToScalar absorbs msg and reinterprets the digest's canonical
// big-endian encoding as an Fr element, reducing mod r.
func (h *Hasher) HashToScalar(msg []field.BaseField) field.ScalarField {
	digest := hashMany(msg)
	return field.NewScalarFieldFromBytes(digest.Bytes())
}
