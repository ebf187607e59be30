package swu

import (
	"testing"

	"github.com/stark-vrf/ecvrf-go/pkg/field"
)

func TestZetaCandidateOneIsResidue(t *testing.T) {
	// A sanity check on the premise of New's zeta guard: 1 is always a
	// quadratic residue, so it could never serve as zeta. New() takes no
	// parameters and always uses the curve's fixed zeta=19, so the guard's
	// rejection branch itself is not reached here.
	if field.BaseFieldOne.Legendre() != field.QuadraticResidue {
		t.Fatalf("sanity check failed: 1 should be a quadratic residue")
	}
}

func TestMapToCurveProducesOnCurvePoints(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, n := range []uint64{0, 1, 42, 43, 190, 999999} {
		u := field.NewBaseFieldFromUint64(n)
		p := m.MapToCurve(u)
		if !p.IsOnCurve() {
			t.Errorf("MapToCurve(%d) produced an off-curve point", n)
		}
	}
}

func TestMapToCurveIsDeterministic(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	u := field.NewBaseFieldFromUint64(42)
	p1 := m.MapToCurve(u)
	p2 := m.MapToCurve(u)
	if !p1.Equal(p2) {
		t.Errorf("MapToCurve is not deterministic")
	}
}

func TestHashToSqrtRatioHintSquaresToGx1OrZetaGx1(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	u := field.NewBaseFieldFromUint64(42)
	h := m.HashToSqrtRatioHint(u)

	hSquared := h.Square()

	// Recompute gx1 the same way MapToCurve does, via the direct SWU
	// numerator/denominator, to cross-check the hint's independent
	// tv1..tv6 derivation against it.
	tv1 := m.zeta.Mul(u.Square())
	tv2 := tv1.Square()
	x1 := tv1.Add(tv2)
	x1, _ = x1.Inverse()
	x1 = x1.Add(field.BaseFieldOne)
	x1 = x1.Mul(m.negBOverA)
	gx1 := x1.Square().Add(m.a).Mul(x1).Add(m.b)

	zetaGx1 := m.zeta.Mul(gx1)

	if !hSquared.Equal(gx1) && !hSquared.Equal(zetaGx1) {
		t.Errorf("hint^2 should equal gx1 or zeta*gx1")
	}
}

func TestHashToSqrtRatioHintBranchMatchesLegendre(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	u := field.NewBaseFieldFromUint64(42)

	tv1 := m.zeta.Mul(u.Square())
	tv2 := tv1.Square()
	x1 := tv1.Add(tv2)
	x1, _ = x1.Inverse()
	x1 = x1.Add(field.BaseFieldOne)
	x1 = x1.Mul(m.negBOverA)
	gx1 := x1.Square().Add(m.a).Mul(x1).Add(m.b)

	h := m.HashToSqrtRatioHint(u)
	hSquared := h.Square()

	if gx1.Legendre() == field.QuadraticResidue {
		if !hSquared.Equal(gx1) {
			t.Errorf("gx1 is a QR, hint^2 should equal gx1 directly")
		}
	} else {
		if !hSquared.Equal(m.zeta.Mul(gx1)) {
			t.Errorf("gx1 is a non-residue, hint^2 should equal zeta*gx1")
		}
	}
}
