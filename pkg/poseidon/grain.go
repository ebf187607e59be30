package poseidon

import (
	"math/big"

	"github.com/stark-vrf/ecvrf-go/pkg/field"
)

// grainLFSR is the 80-bit self-shrinking generator the Poseidon reference
// parameter script uses to turn (field, s-box, n, t, R_F, R_P) into round
// constants with no external table and no randomness beyond those six
// numbers. Its feedback taps (0, 13, 23, 38, 51, 62) are Grain v1's
// feedback polynomial x^80+x^62+x^51+x^38+x^23+x^13+1, the same LFSR the
// paper's generator borrows wholesale.
type grainLFSR struct {
	state [80]byte
}

// newGrainLFSR seeds the register from the Poseidon instance's parameters,
// laid out exactly as generate_parameters_grain.sage does: 2 bits marking
// a prime field, 4 bits marking a non-inverse x^alpha S-box, 12 bits for
// the field's bit length, 12 bits for the state width, 10 bits each for
// the full- and partial-round counts, and the remaining bits padded with
// ones. The register is then clocked 160 times before any bit is used, the
// generator's prescribed warm-up.
func newGrainLFSR(fieldBits, width, fullR, partialR int) *grainLFSR {
	bits := make([]byte, 0, 80)
	bits = appendBits(bits, 1, 2)  // field type: GF(p)
	bits = appendBits(bits, 0, 4)  // S-box: x^alpha, non-inverse
	bits = appendBits(bits, uint64(fieldBits), 12)
	bits = appendBits(bits, uint64(width), 12)
	bits = appendBits(bits, uint64(fullR), 10)
	bits = appendBits(bits, uint64(partialR), 10)
	for len(bits) < 80 {
		bits = append(bits, 1)
	}

	g := &grainLFSR{}
	copy(g.state[:], bits)
	for i := 0; i < 160; i++ {
		g.clock()
	}
	return g
}

func appendBits(bits []byte, v uint64, width int) []byte {
	for i := width - 1; i >= 0; i-- {
		bits = append(bits, byte((v>>uint(i))&1))
	}
	return bits
}

// clock advances the register by one step and returns the bit shifted in.
func (g *grainLFSR) clock() byte {
	newBit := g.state[0] ^ g.state[13] ^ g.state[23] ^ g.state[38] ^ g.state[51] ^ g.state[62]
	copy(g.state[:79], g.state[1:])
	g.state[79] = newBit
	return newBit
}

// nextBit draws one bit from the self-shrinking filter built on top of the
// raw LFSR stream: bits come out of the register two at a time, and a pair
// only yields output when its first bit is 1 — the second bit is then the
// output bit, and pairs starting with 0 are discarded outright.
func (g *grainLFSR) nextBit() byte {
	for {
		b0 := g.clock()
		b1 := g.clock()
		if b0 == 1 {
			return b1
		}
	}
}

// nextFieldElement draws bitLen self-shrunk bits, most-significant first,
// and rejects the candidate (redrawing a fresh bitLen bits, never reusing a
// rejected draw) whenever it lands at or above modulus — the same
// rejection-sampling discipline the reference generator uses so constants
// are uniform over [0, modulus) rather than biased toward the low end.
func (g *grainLFSR) nextFieldElement(bitLen int, modulus *big.Int) field.BaseField {
	for {
		v := new(big.Int)
		for i := 0; i < bitLen; i++ {
			v.Lsh(v, 1)
			if g.nextBit() == 1 {
				v.SetBit(v, 0, 1)
			}
		}
		if v.Cmp(modulus) < 0 {
			return field.NewBaseFieldFromBigInt(v)
		}
	}
}
