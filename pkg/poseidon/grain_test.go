package poseidon

import (
	"math/big"
	"testing"
)

func testModulus(t *testing.T) *big.Int {
	t.Helper()
	m, ok := new(big.Int).SetString("3618502788666131213697322783095070105623107215331596699973092056135872020481", 10)
	if !ok {
		t.Fatalf("bad modulus literal")
	}
	return m
}

func TestGrainLFSRIsDeterministic(t *testing.T) {
	modulus := testModulus(t)

	a := newGrainLFSR(baseFieldBits, stateWidth, fullRounds, partialRounds)
	b := newGrainLFSR(baseFieldBits, stateWidth, fullRounds, partialRounds)

	for i := 0; i < 8; i++ {
		x := a.nextFieldElement(baseFieldBits, modulus)
		y := b.nextFieldElement(baseFieldBits, modulus)
		if !x.Equal(y) {
			t.Fatalf("newGrainLFSR with identical parameters produced different streams at index %d", i)
		}
	}
}

func TestGrainLFSRProducesDistinctConstants(t *testing.T) {
	modulus := testModulus(t)
	lfsr := newGrainLFSR(baseFieldBits, stateWidth, fullRounds, partialRounds)

	seen := make(map[string]bool)
	for i := 0; i < 16; i++ {
		v := lfsr.nextFieldElement(baseFieldBits, modulus)
		if seen[v.Decimal()] {
			t.Fatalf("round %d repeated an earlier constant — generator is degenerate", i)
		}
		seen[v.Decimal()] = true
	}
}

func TestGrainLFSRFieldElementsAreBelowModulus(t *testing.T) {
	modulus := testModulus(t)
	lfsr := newGrainLFSR(baseFieldBits, stateWidth, fullRounds, partialRounds)

	for i := 0; i < 16; i++ {
		v := lfsr.nextFieldElement(baseFieldBits, modulus)
		if v.BigInt().Cmp(modulus) >= 0 {
			t.Fatalf("constant %d is not reduced below the modulus: %s", i, v)
		}
	}
}

func TestPackageInitPopulatedDistinctRoundConstants(t *testing.T) {
	seen := make(map[string]bool)
	for round := 0; round < fullRounds+partialRounds; round++ {
		for lane := 0; lane < stateWidth; lane++ {
			v := roundConstants[round][lane]
			key := v.Decimal()
			if seen[key] && !v.IsZero() {
				t.Fatalf("round constant at (%d,%d) repeats an earlier nonzero constant", round, lane)
			}
			seen[key] = true
		}
	}
}
