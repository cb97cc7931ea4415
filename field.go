package secp256k1

import (
	"encoding/hex"
	"fmt"
	"math/big"
)

// FieldElement is an integer modulo the secp256k1 field prime p.  A
// FieldElement is never mutated after construction; all arithmetic returns a
// new element.  The zero value (and a nil pointer) represents 0.
type FieldElement struct {
	v *big.Int
}

// NewFieldElement returns v reduced modulo p.
func NewFieldElement(v *big.Int) *FieldElement {
	return &FieldElement{v: new(big.Int).Mod(v, fieldPrime)}
}

// FieldElementFromUint64 returns the field element with the given value.
func FieldElementFromUint64(v uint64) *FieldElement {
	return &FieldElement{v: new(big.Int).SetUint64(v)}
}

// FieldElementFromBytes decodes a 32-byte big-endian field element.  Unlike
// NewFieldElement, values that are not less than p are rejected rather than
// reduced.
func FieldElementFromBytes(b []byte) (*FieldElement, error) {
	if len(b) != 32 {
		str := fmt.Sprintf("field element must be 32 bytes, got %d", len(b))
		return nil, MakeError(ErrInvalidFieldElement, str)
	}

	v := new(big.Int).SetBytes(b)
	if v.Cmp(fieldPrime) >= 0 {
		return nil, MakeError(ErrInvalidFieldElement, "field element >= field prime")
	}

	return &FieldElement{v: v}, nil
}

func (f *FieldElement) int() *big.Int {
	if f == nil || f.v == nil {
		return bigZero
	}

	return f.v
}

// wrapField takes ownership of v and reduces it in place.
func wrapField(v *big.Int) *FieldElement {
	return &FieldElement{v: v.Mod(v, fieldPrime)}
}

// Add returns f + o mod p.
func (f *FieldElement) Add(o *FieldElement) *FieldElement {
	return wrapField(new(big.Int).Add(f.int(), o.int()))
}

// Sub returns f - o mod p.
func (f *FieldElement) Sub(o *FieldElement) *FieldElement {
	return wrapField(new(big.Int).Sub(f.int(), o.int()))
}

// Mul returns f * o mod p.
func (f *FieldElement) Mul(o *FieldElement) *FieldElement {
	return wrapField(new(big.Int).Mul(f.int(), o.int()))
}

// Square returns f^2 mod p.
func (f *FieldElement) Square() *FieldElement {
	return f.Mul(f)
}

// MulInt returns f * k mod p for a small constant k.
func (f *FieldElement) MulInt(k int64) *FieldElement {
	return wrapField(new(big.Int).Mul(f.int(), big.NewInt(k)))
}

// Negate returns -f mod p.
func (f *FieldElement) Negate() *FieldElement {
	return wrapField(new(big.Int).Neg(f.int()))
}

// Invert returns the multiplicative inverse of f modulo p.  Zero has no
// inverse and yields ErrDivisionByZero.
func (f *FieldElement) Invert() (*FieldElement, error) {
	if f.IsZero() {
		return nil, MakeError(ErrDivisionByZero, "cannot invert zero field element")
	}

	return &FieldElement{v: new(big.Int).ModInverse(f.int(), fieldPrime)}, nil
}

// Exp returns f^e mod p.
func (f *FieldElement) Exp(e *big.Int) *FieldElement {
	return &FieldElement{v: new(big.Int).Exp(f.int(), e, fieldPrime)}
}

// Sqrt returns a square root of f and true, or nil and false when f is not a
// quadratic residue.  Since p = 3 mod 4 the candidate root is f^((p+1)/4).
// The returned root is not normalized with respect to its parity.
func (f *FieldElement) Sqrt() (*FieldElement, bool) {
	root := f.Exp(sqrtExponent)
	if !root.Square().Equals(f) {
		return nil, false
	}

	return root, true
}

// IsQuadraticResidue reports whether f has a square root modulo p.  Zero is
// considered a residue since its root is zero.
func (f *FieldElement) IsQuadraticResidue() bool {
	return big.Jacobi(f.int(), fieldPrime) >= 0
}

// IsZero reports whether f is 0.
func (f *FieldElement) IsZero() bool {
	return f.int().Sign() == 0
}

// IsOdd reports whether the canonical value of f is odd.
func (f *FieldElement) IsOdd() bool {
	return f.int().Bit(0) == 1
}

// Equals reports whether f and o are the same residue.
func (f *FieldElement) Equals(o *FieldElement) bool {
	return f.int().Cmp(o.int()) == 0
}

// Bytes returns the 32-byte big-endian encoding of f.
func (f *FieldElement) Bytes() [32]byte {
	var b [32]byte
	f.int().FillBytes(b[:])
	return b
}

// BigInt returns a copy of the value of f.
func (f *FieldElement) BigInt() *big.Int {
	return new(big.Int).Set(f.int())
}

// String returns f as a 64 character hex string.
func (f *FieldElement) String() string {
	b := f.Bytes()
	return hex.EncodeToString(b[:])
}
