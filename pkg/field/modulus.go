// Package field implements the two prime fields used by the STARK-curve
// ECVRF: the base field Fq and the scalar field Fr.
package field

import (
	"fmt"
	"math/big"
)

// modulus is a small arithmetic engine bound to one prime, shared by the
// BaseField and ScalarField wrapper types. Values are kept as canonical
// math/big.Int in [0, p) rather than a Montgomery-limb backend: the two
// are observably identical at the API boundary, and no library available
// to this module implements Montgomery arithmetic for an arbitrary
// 252-bit STARK prime, so math/big is the grounded choice (see DESIGN.md).
type modulus struct {
	p *big.Int
}

func newModulus(decimal string) *modulus {
	p, ok := new(big.Int).SetString(decimal, 10)
	if !ok {
		panic(fmt.Sprintf("field: invalid modulus literal %q", decimal))
	}
	return &modulus{p: p}
}

func (m *modulus) reduce(v *big.Int) *big.Int {
	z := new(big.Int).Mod(v, m.p)
	return z
}

func (m *modulus) add(x, y *big.Int) *big.Int {
	return m.reduce(new(big.Int).Add(x, y))
}

func (m *modulus) sub(x, y *big.Int) *big.Int {
	return m.reduce(new(big.Int).Sub(x, y))
}

func (m *modulus) mul(x, y *big.Int) *big.Int {
	return m.reduce(new(big.Int).Mul(x, y))
}

func (m *modulus) neg(x *big.Int) *big.Int {
	return m.reduce(new(big.Int).Neg(x))
}

// inv returns x^-1 mod p, or an error if x is zero.
func (m *modulus) inv(x *big.Int) (*big.Int, error) {
	if x.Sign() == 0 {
		return nil, fmt.Errorf("field: inverse of zero")
	}
	z := new(big.Int).ModInverse(x, m.p)
	if z == nil {
		return nil, fmt.Errorf("field: %s has no inverse mod %s", x.String(), m.p.String())
	}
	return z, nil
}

// sqrt returns a square root of x mod p, following the same
// big.Int.ModSqrt-based approach as the teacher's decompressPoint helper.
// It reports false when x is a quadratic non-residue.
func (m *modulus) sqrt(x *big.Int) (*big.Int, bool) {
	if x.Sign() == 0 {
		return big.NewInt(0), true
	}
	y := new(big.Int).ModSqrt(x, m.p)
	if y == nil {
		return nil, false
	}
	return y, true
}

// legendre computes the Legendre symbol of x via Euler's criterion,
// following sachinlv-chainlink/core/services/vrf.IsSquare's
// exponentiation-based approach.
func (m *modulus) legendre(x *big.Int) int {
	if x.Sign() == 0 {
		return 0
	}
	exp := new(big.Int).Sub(m.p, big.NewInt(1))
	exp.Div(exp, big.NewInt(2))
	r := new(big.Int).Exp(x, exp, m.p)
	if r.Cmp(big.NewInt(1)) == 0 {
		return 1
	}
	return -1
}
