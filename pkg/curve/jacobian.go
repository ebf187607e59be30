package curve

import "github.com/stark-vrf/ecvrf-go/pkg/field"

// JacobianPoint is the projective representation (X, Y, Z) with
// affine x = X/Z^2, y = Y/Z^3, used internally by ScalarMul's
// double-and-add ladder to avoid a field inversion per step.
type JacobianPoint struct {
	X, Y, Z  field.BaseField
	Infinity bool
}

func jacobianInfinity() JacobianPoint {
	return JacobianPoint{
		X:        field.BaseFieldOne,
		Y:        field.BaseFieldOne,
		Z:        field.BaseFieldZero,
		Infinity: true,
	}
}

func (p Point) toJacobian() JacobianPoint {
	if p.Infinity {
		return jacobianInfinity()
	}
	return JacobianPoint{X: p.X, Y: p.Y, Z: field.BaseFieldOne}
}

// toAffine converts j back to an affine Point, paying one field inversion.
func (j JacobianPoint) toAffine() Point {
	if j.Infinity || j.Z.IsZero() {
		return PointInfinity
	}
	zInv, err := j.Z.Inverse()
	if err != nil {
		return PointInfinity
	}
	zInv2 := zInv.Square()
	zInv3 := zInv2.Mul(zInv)
	return Point{
		X: j.X.Mul(zInv2),
		Y: j.Y.Mul(zInv3),
	}
}

// double computes 2*j for the general short-Weierstrass curve (coefficient
// A need not be -3), following the EFD "dbl-2007-bl" formulas.
func (j JacobianPoint) double() JacobianPoint {
	if j.Infinity || j.Y.IsZero() {
		return jacobianInfinity()
	}

	two := field.NewBaseFieldFromUint64(2)
	three := field.NewBaseFieldFromUint64(3)
	eight := field.NewBaseFieldFromUint64(8)

	xx := j.X.Square()
	yy := j.Y.Square()
	yyyy := yy.Square()
	zz := j.Z.Square()

	s := two.Mul(j.X.Add(yy).Square().Sub(xx).Sub(yyyy))
	m := three.Mul(xx).Add(a.Mul(zz.Square()))

	t := m.Square().Sub(two.Mul(s))
	y3 := m.Mul(s.Sub(t)).Sub(eight.Mul(yyyy))
	z3 := j.Y.Add(j.Z).Square().Sub(yy).Sub(zz)

	return JacobianPoint{X: t, Y: y3, Z: z3}
}

// addMixed computes j+q where q is given in affine form (Z implicitly 1),
// following the EFD "madd-2007-bl" formulas, falling back to doubling or
// the identity when the inputs collide.
func (j JacobianPoint) addMixed(q JacobianPoint) JacobianPoint {
	if j.Infinity {
		return q
	}
	if q.Infinity {
		return j
	}

	z1z1 := j.Z.Square()
	u2 := q.X.Mul(z1z1)
	s2 := q.Y.Mul(j.Z).Mul(z1z1)

	h := u2.Sub(j.X)
	r := field.NewBaseFieldFromUint64(2).Mul(s2.Sub(j.Y))

	if h.IsZero() {
		if r.IsZero() {
			return j.double()
		}
		return jacobianInfinity()
	}

	four := field.NewBaseFieldFromUint64(4)
	two := field.NewBaseFieldFromUint64(2)

	hh := h.Square()
	i := four.Mul(hh)
	jj := h.Mul(i)
	v := j.X.Mul(i)

	x3 := r.Square().Sub(jj).Sub(two.Mul(v))
	y3 := r.Mul(v.Sub(x3)).Sub(two.Mul(j.Y).Mul(jj))
	z3 := j.Z.Add(h).Square().Sub(z1z1).Sub(hh)

	return JacobianPoint{X: x3, Y: y3, Z: z3}
}
