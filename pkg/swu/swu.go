// Package swu implements the Simplified SWU map-to-curve algorithm (RFC
// 9380 §6.6.2/6.6.3) for the STARK curve, plus the auxiliary
// sqrt-ratio hint consumed by succinct verifiers that cannot evaluate
// Legendre symbols or square roots themselves (spec §4.3).
package swu

import (
	"fmt"

	"github.com/stark-vrf/ecvrf-go/pkg/curve"
	"github.com/stark-vrf/ecvrf-go/pkg/field"
)

// Mapper evaluates the Simplified SWU map for one fixed (A, B, zeta)
// parameterization. It is constructed once per ecvrf.Instance (mirroring
// the Rust SWUMap::new()) and validates that zeta is a non-residue, so a
// Mapper either exists in a fully usable state or is never returned.
type Mapper struct {
	a, b, zeta field.BaseField
	negBOverA  field.BaseField
}

// New builds a Mapper for the STARK curve's fixed parameters, failing if
// zeta is not a non-residue in Fq (it is, by construction of the curve
// config — this check exists because a generic curve/hash parameterization
// (Design Notes §9) could otherwise be misconfigured).
func New() (*Mapper, error) {
	a := curve.A()
	b := curve.B()
	zeta := curve.Zeta()

	if zeta.Legendre() != field.NonResidue {
		return nil, fmt.Errorf("swu: zeta is not a non-residue in Fq")
	}
	if a.IsZero() || b.IsZero() {
		return nil, fmt.Errorf("swu: simplified SWU requires nonzero A and B")
	}

	negB, err := a.Inverse()
	if err != nil {
		return nil, fmt.Errorf("swu: A has no inverse: %w", err)
	}
	negBOverA := b.Neg().Mul(negB)

	return &Mapper{a: a, b: b, zeta: zeta, negBOverA: negBOverA}, nil
}

// inv0 returns x^-1, or zero if x is zero (RFC 9380's inv0 helper).
func inv0(x field.BaseField) field.BaseField {
	if x.IsZero() {
		return field.BaseFieldZero
	}
	v, _ := x.Inverse()
	return v
}

// cmov returns b if cond else a, named to match the RFC's constant-time
// selection helper even though this implementation branches in Go.
func cmov(a, b field.BaseField, cond bool) field.BaseField {
	if cond {
		return b
	}
	return a
}

// MapToCurve evaluates the Simplified SWU map at u, following RFC 9380
// §6.6.2's straight-line algorithm for a short-Weierstrass curve with
// nonzero A and B.
func (m *Mapper) MapToCurve(u field.BaseField) curve.Point {
	tv1 := m.zeta.Mul(u.Square())
	tv2 := tv1.Square()
	x1 := tv1.Add(tv2)
	x1 = inv0(x1)
	e1 := x1.IsZero()
	x1 = x1.Add(field.BaseFieldOne)
	x1 = cmov(x1, inv0(m.zeta).Neg(), e1)
	x1 = x1.Mul(m.negBOverA)

	gx1 := x1.Square().Add(m.a).Mul(x1).Add(m.b)

	x2 := tv1.Mul(x1)
	tv2 = tv1.Mul(tv2)
	gx2 := gx1.Mul(tv2)

	e2 := gx1.Legendre() != field.NonResidue

	x := cmov(x2, x1, e2)
	y2 := cmov(gx2, gx1, e2)

	y, ok := y2.Sqrt()
	if !ok {
		// Unreachable for a correctly parameterized curve: y2 is gx1 or
		// gx2 = gx1*tv1^3, one of which is always a square by
		// construction of the Simplified SWU map.
		panic("swu: map_to_curve produced a non-square y^2")
	}

	e3 := u.IsOdd() == y.IsOdd()
	y = cmov(y.Neg(), y, e3)

	return curve.Point{X: x, Y: y}
}

// HashToSqrtRatioHint computes the auxiliary square root described in
// spec §4.3/§8 Scenario E: it returns h such that h^2 is either gx1 or
// zeta*gx1, where gx1 is the SWU numerator/denominator ratio for u,
// letting a verifier that cannot compute Legendre symbols still check the
// map without branching on quadratic-residue status itself.
func (m *Mapper) HashToSqrtRatioHint(u field.BaseField) field.BaseField {
	tv1 := m.zeta.Mul(u).Mul(u)
	tv2 := tv1.Square().Add(tv1)
	tv3 := m.b.Mul(tv2.Add(field.BaseFieldOne))

	var tv4 field.BaseField
	if tv2.IsZero() {
		tv4 = m.zeta
	} else {
		tv4 = tv2.Neg()
	}
	tv4 = m.a.Mul(tv4)

	tv2b := tv3.Square()
	tv6 := tv4.Square()
	tv5 := m.a.Mul(tv6)
	tv2c := tv2b.Add(tv5)
	tv2d := tv2c.Mul(tv3)
	tv6b := tv6.Mul(tv4)
	tv5b := m.b.Mul(tv6b)
	tv2e := tv2d.Add(tv5b)

	gx1, err := tv2e.Div(tv6b)
	if err != nil {
		panic("swu: sqrt-ratio hint division by zero")
	}

	if gx1.Legendre() == field.QuadraticResidue {
		root, ok := gx1.Sqrt()
		if !ok {
			panic("swu: gx1 marked as a quadratic residue but has no square root")
		}
		return root
	}

	zetaGx1 := m.zeta.Mul(gx1)
	root, ok := zetaGx1.Sqrt()
	if !ok {
		panic("swu: zeta*gx1 expected to be a quadratic residue by Legendre multiplicativity")
	}
	return root
}
