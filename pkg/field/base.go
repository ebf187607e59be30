package field

import (
	"fmt"
	"math/big"

	"github.com/stark-vrf/ecvrf-go/internal/hexutil"
	"github.com/stark-vrf/ecvrf-go/internal/verrors"
)

// BaseField is an element of Fq, the STARK curve's base field.
type BaseField struct {
	v *big.Int
}

// BaseFieldZero is the additive identity of Fq.
var BaseFieldZero = BaseField{v: big.NewInt(0)}

// BaseFieldOne is the multiplicative identity of Fq.
var BaseFieldOne = BaseField{v: big.NewInt(1)}

// NewBaseFieldFromDecimal parses a canonical or non-canonical decimal
// integer string into an Fq element, reducing it mod q.
func NewBaseFieldFromDecimal(s string) (BaseField, error) {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return BaseField{}, verrors.SerializationError(fmt.Errorf("field: invalid base field decimal literal %q", s))
	}
	return BaseField{v: baseModulus.reduce(i)}, nil
}

// NewBaseFieldFromHex parses a "0x"-prefixed or bare hex string into an
// Fq element, reducing it mod q.
func NewBaseFieldFromHex(s string) (BaseField, error) {
	i, ok := new(big.Int).SetString(hexutil.TrimPrefix(s), 16)
	if !ok {
		return BaseField{}, verrors.SerializationError(fmt.Errorf("field: invalid base field hex literal %q", s))
	}
	return BaseField{v: baseModulus.reduce(i)}, nil
}

// NewBaseFieldFromUint64 embeds a small integer (e.g. a domain tag) as
// an Fq element.
func NewBaseFieldFromUint64(n uint64) BaseField {
	return BaseField{v: baseModulus.reduce(new(big.Int).SetUint64(n))}
}

// NewBaseFieldFromBigInt reduces an arbitrary big.Int into Fq.
func NewBaseFieldFromBigInt(i *big.Int) BaseField {
	return BaseField{v: baseModulus.reduce(i)}
}

func (a BaseField) bigInt() *big.Int {
	if a.v == nil {
		return big.NewInt(0)
	}
	return a.v
}

// Add returns a+b mod q.
func (a BaseField) Add(b BaseField) BaseField {
	return BaseField{v: baseModulus.add(a.bigInt(), b.bigInt())}
}

// Sub returns a-b mod q.
func (a BaseField) Sub(b BaseField) BaseField {
	return BaseField{v: baseModulus.sub(a.bigInt(), b.bigInt())}
}

// Mul returns a*b mod q.
func (a BaseField) Mul(b BaseField) BaseField {
	return BaseField{v: baseModulus.mul(a.bigInt(), b.bigInt())}
}

// Neg returns -a mod q.
func (a BaseField) Neg() BaseField {
	return BaseField{v: baseModulus.neg(a.bigInt())}
}

// Square returns a*a mod q.
func (a BaseField) Square() BaseField {
	return a.Mul(a)
}

// Inverse returns a^-1 mod q, or an error if a is zero.
func (a BaseField) Inverse() (BaseField, error) {
	v, err := baseModulus.inv(a.bigInt())
	if err != nil {
		return BaseField{}, err
	}
	return BaseField{v: v}, nil
}

// Div returns a/b mod q, or an error if b is zero.
func (a BaseField) Div(b BaseField) (BaseField, error) {
	inv, err := b.Inverse()
	if err != nil {
		return BaseField{}, err
	}
	return a.Mul(inv), nil
}

// Sqrt returns a square root of a mod q and true, or a zero value and
// false if a is a quadratic non-residue.
func (a BaseField) Sqrt() (BaseField, bool) {
	v, ok := baseModulus.sqrt(a.bigInt())
	if !ok {
		return BaseField{}, false
	}
	return BaseField{v: v}, true
}

// Legendre classifies a as zero, a quadratic residue, or a non-residue.
func (a BaseField) Legendre() Residue {
	return residueFromLegendre(baseModulus.legendre(a.bigInt()))
}

// IsZero reports whether a is the additive identity.
func (a BaseField) IsZero() bool {
	return a.bigInt().Sign() == 0
}

// Equal reports whether a and b represent the same field element.
func (a BaseField) Equal(b BaseField) bool {
	return a.bigInt().Cmp(b.bigInt()) == 0
}

// IsOdd reports the parity of a's canonical representative, used by the
// SWU map's sign-fixing step (sgn0).
func (a BaseField) IsOdd() bool {
	return a.bigInt().Bit(0) == 1
}

// BigInt returns the canonical limb big-integer form, in [0, q).
func (a BaseField) BigInt() *big.Int {
	return new(big.Int).Set(a.bigInt())
}

// Decimal renders the canonical decimal-string form.
func (a BaseField) Decimal() string {
	return a.bigInt().String()
}

// Hex renders the canonical "0x"-prefixed hex-string form.
func (a BaseField) Hex() string {
	return "0x" + a.bigInt().Text(16)
}

// String implements fmt.Stringer with the decimal form, matching the
// teacher's Proof.String() decimal-dump convention.
func (a BaseField) String() string {
	return a.Decimal()
}

// Bytes returns the big-endian encoding of the canonical representative,
// zero-padded to 32 bytes (q fits in 252 bits).
func (a BaseField) Bytes() []byte {
	buf := make([]byte, 32)
	a.bigInt().FillBytes(buf)
	return buf
}
