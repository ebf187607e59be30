package field

import (
	"fmt"
	"math/big"

	"github.com/stark-vrf/ecvrf-go/internal/hexutil"
	"github.com/stark-vrf/ecvrf-go/internal/verrors"
)

// ScalarField is an element of Fr, the STARK curve's scalar field. Fr only
// needs ring operations and inversion for this module: secret keys, nonces,
// and proof scalars live here, but nothing in the VRF ever takes a square
// root or a Legendre symbol of a scalar.
type ScalarField struct {
	v *big.Int
}

// ScalarFieldZero is the additive identity of Fr.
var ScalarFieldZero = ScalarField{v: big.NewInt(0)}

// ScalarFieldOne is the multiplicative identity of Fr.
var ScalarFieldOne = ScalarField{v: big.NewInt(1)}

// NewScalarFieldFromDecimal parses a decimal integer string into an Fr
// element, reducing it mod r.
func NewScalarFieldFromDecimal(s string) (ScalarField, error) {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return ScalarField{}, verrors.SerializationError(fmt.Errorf("field: invalid scalar field decimal literal %q", s))
	}
	return ScalarField{v: scalarModulus.reduce(i)}, nil
}

// NewScalarFieldFromHex parses a "0x"-prefixed or bare hex string into an
// Fr element, reducing it mod r.
func NewScalarFieldFromHex(s string) (ScalarField, error) {
	i, ok := new(big.Int).SetString(hexutil.TrimPrefix(s), 16)
	if !ok {
		return ScalarField{}, verrors.SerializationError(fmt.Errorf("field: invalid scalar field hex literal %q", s))
	}
	return ScalarField{v: scalarModulus.reduce(i)}, nil
}

// NewScalarFieldFromUint64 embeds a small integer as an Fr element.
func NewScalarFieldFromUint64(n uint64) ScalarField {
	return ScalarField{v: scalarModulus.reduce(new(big.Int).SetUint64(n))}
}

// NewScalarFieldFromBigInt reduces an arbitrary big.Int into Fr.
func NewScalarFieldFromBigInt(i *big.Int) ScalarField {
	return ScalarField{v: scalarModulus.reduce(i)}
}

// NewScalarFieldFromBytes reduces a big-endian byte string into Fr, used to
// fold a hash digest down to a valid scalar (challenge and nonce derivation).
func NewScalarFieldFromBytes(b []byte) ScalarField {
	return ScalarField{v: scalarModulus.reduce(new(big.Int).SetBytes(b))}
}

func (a ScalarField) bigInt() *big.Int {
	if a.v == nil {
		return big.NewInt(0)
	}
	return a.v
}

// Add returns a+b mod r.
func (a ScalarField) Add(b ScalarField) ScalarField {
	return ScalarField{v: scalarModulus.add(a.bigInt(), b.bigInt())}
}

// Sub returns a-b mod r.
func (a ScalarField) Sub(b ScalarField) ScalarField {
	return ScalarField{v: scalarModulus.sub(a.bigInt(), b.bigInt())}
}

// Mul returns a*b mod r.
func (a ScalarField) Mul(b ScalarField) ScalarField {
	return ScalarField{v: scalarModulus.mul(a.bigInt(), b.bigInt())}
}

// Neg returns -a mod r.
func (a ScalarField) Neg() ScalarField {
	return ScalarField{v: scalarModulus.neg(a.bigInt())}
}

// Inverse returns a^-1 mod r, or an error if a is zero.
func (a ScalarField) Inverse() (ScalarField, error) {
	v, err := scalarModulus.inv(a.bigInt())
	if err != nil {
		return ScalarField{}, err
	}
	return ScalarField{v: v}, nil
}

// IsZero reports whether a is the additive identity.
func (a ScalarField) IsZero() bool {
	return a.bigInt().Sign() == 0
}

// Equal reports whether a and b represent the same field element.
func (a ScalarField) Equal(b ScalarField) bool {
	return a.bigInt().Cmp(b.bigInt()) == 0
}

// BigInt returns the canonical limb big-integer form, in [0, r).
func (a ScalarField) BigInt() *big.Int {
	return new(big.Int).Set(a.bigInt())
}

// Decimal renders the canonical decimal-string form.
func (a ScalarField) Decimal() string {
	return a.bigInt().String()
}

// Hex renders the canonical "0x"-prefixed hex-string form.
func (a ScalarField) Hex() string {
	return "0x" + a.bigInt().Text(16)
}

// String implements fmt.Stringer with the decimal form.
func (a ScalarField) String() string {
	return a.Decimal()
}

// Bytes returns the big-endian encoding of the canonical representative,
// zero-padded to 32 bytes (r fits in 252 bits).
func (a ScalarField) Bytes() []byte {
	buf := make([]byte, 32)
	a.bigInt().FillBytes(buf)
	return buf
}
