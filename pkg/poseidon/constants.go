package poseidon

import (
	"math/big"

	"github.com/stark-vrf/ecvrf-go/pkg/field"
)

// roundConstants and mdsMatrix are generated once at package init, using
// the same procedure the Poseidon paper's reference parameter generator
// (generate_parameters_grain.sage, from the hadesMiMC/poseidonperm
// reference implementation the paper ships alongside) uses to derive round
// constants from nothing but the field, S-box, width, and round counts —
// the same procedure Starknet's own Poseidon parameter set was produced
// with. See grain.go for the generator itself. The MDS matrix is a Cauchy
// matrix over distinct field points, which is invertible by construction
// (Grassi et al.'s recommended Poseidon MDS instantiation) — invertibility
// is asserted at init rather than assumed.
var (
	roundConstants [fullRounds + partialRounds][stateWidth]field.BaseField
	mdsMatrix      [stateWidth][stateWidth]field.BaseField
)

// baseFieldBits is q's bit length (252), the n parameter the Grain
// generator's seed and per-constant rejection sampling both use.
const baseFieldBits = 252

func init() {
	modulus, ok := new(big.Int).SetString(field.BaseFieldModulusDecimal, 10)
	if !ok {
		panic("poseidon: invalid base field modulus literal")
	}

	lfsr := newGrainLFSR(baseFieldBits, stateWidth, fullRounds, partialRounds)
	for round := 0; round < fullRounds+partialRounds; round++ {
		for lane := 0; lane < stateWidth; lane++ {
			roundConstants[round][lane] = lfsr.nextFieldElement(baseFieldBits, modulus)
		}
	}

	for i := 0; i < stateWidth; i++ {
		xi := field.NewBaseFieldFromUint64(uint64(i) + 1)
		for j := 0; j < stateWidth; j++ {
			yj := field.NewBaseFieldFromUint64(uint64(stateWidth + j + 1))
			denom := xi.Add(yj)
			inv, err := denom.Inverse()
			if err != nil {
				panic("poseidon: degenerate Cauchy MDS entry")
			}
			mdsMatrix[i][j] = inv
		}
	}

	if !isInvertible(mdsMatrix) {
		panic("poseidon: generated MDS matrix is singular")
	}
}

// isInvertible checks the 3x3 MDS matrix has a nonzero determinant, so the
// mix layer never collapses the state.
func isInvertible(m [stateWidth][stateWidth]field.BaseField) bool {
	// Cofactor expansion along the first row for a 3x3 matrix.
	minor := func(r0, r1, c0, c1 int) field.BaseField {
		return m[r0][c0].Mul(m[r1][c1]).Sub(m[r0][c1].Mul(m[r1][c0]))
	}
	det := m[0][0].Mul(minor(1, 2, 1, 2)).
		Sub(m[0][1].Mul(minor(1, 2, 0, 2))).
		Add(m[0][2].Mul(minor(1, 2, 0, 1)))
	return !det.IsZero()
}
