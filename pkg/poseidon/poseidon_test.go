package poseidon

import (
	"math/big"
	"testing"

	"github.com/stark-vrf/ecvrf-go/pkg/field"
)

func TestHashIsDeterministic(t *testing.T) {
	h := New()
	msg := []field.BaseField{field.NewBaseFieldFromUint64(1), field.NewBaseFieldFromUint64(42)}

	a := h.HashToBase(msg)
	b := h.HashToBase(msg)
	if !a.Equal(b) {
		t.Errorf("HashToBase is not deterministic: %s != %s", a, b)
	}
}

func TestHashDependsOnEveryElement(t *testing.T) {
	h := New()
	a := h.HashToBase([]field.BaseField{field.NewBaseFieldFromUint64(1), field.NewBaseFieldFromUint64(42)})
	b := h.HashToBase([]field.BaseField{field.NewBaseFieldFromUint64(1), field.NewBaseFieldFromUint64(43)})
	if a.Equal(b) {
		t.Errorf("changing one message element should change the digest")
	}
}

func TestHashDistinguishesTrailingZero(t *testing.T) {
	h := New()
	withZero := h.HashToBase([]field.BaseField{field.NewBaseFieldFromUint64(1), field.NewBaseFieldFromUint64(0)})
	without := h.HashToBase([]field.BaseField{field.NewBaseFieldFromUint64(1)})
	if withZero.Equal(without) {
		t.Errorf("a message and its trailing-zero extension must hash differently")
	}
}

func TestHashToScalarStaysInRange(t *testing.T) {
	h := New()
	s := h.HashToScalar([]field.BaseField{field.NewBaseFieldFromUint64(7)})

	rMinusOne, err := field.NewScalarFieldFromDecimal(field.ScalarFieldModulusDecimal)
	if err != nil {
		t.Fatalf("NewScalarFieldFromDecimal: %v", err)
	}
	if !rMinusOne.Equal(field.ScalarFieldZero) {
		t.Fatalf("sanity: modulus should reduce to zero")
	}
	r, ok := new(big.Int).SetString(field.ScalarFieldModulusDecimal, 10)
	if !ok {
		t.Fatalf("bad modulus literal")
	}
	if s.BigInt().Sign() < 0 || s.BigInt().Cmp(r) >= 0 {
		t.Errorf("HashToScalar = %s, want a value in [0, r)", s)
	}
}

func TestHashToScalarIsHashToBaseReducedModR(t *testing.T) {
	h := New()
	msg := []field.BaseField{field.NewBaseFieldFromUint64(190)}
	base := h.HashToBase(msg)
	scalar := h.HashToScalar(msg)

	// Both are derived from the same raw digest, so their byte encodings
	// agree whenever the digest already lies below the smaller (scalar)
	// modulus; this only asserts the two views are consistent reductions
	// of one underlying digest, not that they're always numerically equal.
	reduced, err := field.NewScalarFieldFromDecimal(base.Decimal())
	if err != nil {
		t.Fatalf("NewScalarFieldFromDecimal: %v", err)
	}
	if !reduced.Equal(scalar) {
		t.Errorf("HashToScalar should equal HashToBase's digest reduced mod r")
	}
}

func TestChallengeAndProofToHashTagsProduceDistinctDigests(t *testing.T) {
	h := New()
	gx := field.NewBaseFieldFromUint64(1)
	gy := field.NewBaseFieldFromUint64(2)

	challengeTag := field.NewBaseFieldFromUint64(2)
	proofToHashTag := field.NewBaseFieldFromUint64(3)

	a := h.HashToBase([]field.BaseField{challengeTag, gx, gy, field.BaseFieldZero})
	b := h.HashToBase([]field.BaseField{proofToHashTag, gx, gy, field.BaseFieldZero})
	if a.Equal(b) {
		t.Errorf("swapping the domain tag must change the digest")
	}
}
