package secp256k1

import (
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
)

// Scalar is an integer modulo the secp256k1 group order n.  Private keys,
// nonces and signature components are scalars.  Like FieldElement, a Scalar
// is immutable and the zero value represents 0.
type Scalar struct {
	v *big.Int
}

// NewScalar returns v reduced modulo n.
func NewScalar(v *big.Int) *Scalar {
	return &Scalar{v: new(big.Int).Mod(v, groupOrder)}
}

// ScalarFromUint64 returns the scalar with the given value.
func ScalarFromUint64(v uint64) *Scalar {
	return &Scalar{v: new(big.Int).SetUint64(v)}
}

// ScalarFromBytes decodes a 32-byte big-endian scalar.  Values that are not
// less than n are rejected with ErrInvalidScalar.
func ScalarFromBytes(b []byte) (*Scalar, error) {
	if len(b) != 32 {
		str := fmt.Sprintf("scalar must be 32 bytes, got %d", len(b))
		return nil, MakeError(ErrInvalidScalar, str)
	}

	v := new(big.Int).SetBytes(b)
	if v.Cmp(groupOrder) >= 0 {
		return nil, MakeError(ErrInvalidScalar, "scalar >= group order")
	}

	return &Scalar{v: v}, nil
}

// ScalarFromHash converts a hash digest to a scalar the way ECDSA and BIP-340
// do: the leftmost 256 bits of the digest are read as a big-endian integer
// and reduced modulo n.  Shorter digests are read as-is.
func ScalarFromHash(digest []byte) *Scalar {
	if len(digest) > 32 {
		digest = digest[:32]
	}

	return wrapScalar(new(big.Int).SetBytes(digest))
}

// RandomScalar reads from r until it obtains a uniformly distributed scalar
// in [1, n-1].
func RandomScalar(r io.Reader) (*Scalar, error) {
	var buf [32]byte
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, fmt.Errorf("failed to read randomness: %w", err)
		}

		v := new(big.Int).SetBytes(buf[:])
		if v.Sign() != 0 && v.Cmp(groupOrder) < 0 {
			return &Scalar{v: v}, nil
		}
	}
}

func (s *Scalar) int() *big.Int {
	if s == nil || s.v == nil {
		return bigZero
	}

	return s.v
}

func wrapScalar(v *big.Int) *Scalar {
	return &Scalar{v: v.Mod(v, groupOrder)}
}

// Add returns s + o mod n.
func (s *Scalar) Add(o *Scalar) *Scalar {
	return wrapScalar(new(big.Int).Add(s.int(), o.int()))
}

// Sub returns s - o mod n.
func (s *Scalar) Sub(o *Scalar) *Scalar {
	return wrapScalar(new(big.Int).Sub(s.int(), o.int()))
}

// Mul returns s * o mod n.
func (s *Scalar) Mul(o *Scalar) *Scalar {
	return wrapScalar(new(big.Int).Mul(s.int(), o.int()))
}

// Negate returns -s mod n.
func (s *Scalar) Negate() *Scalar {
	return wrapScalar(new(big.Int).Neg(s.int()))
}

// Invert returns the multiplicative inverse of s modulo n, or
// ErrDivisionByZero when s is zero.
func (s *Scalar) Invert() (*Scalar, error) {
	if s.IsZero() {
		return nil, MakeError(ErrDivisionByZero, "cannot invert zero scalar")
	}

	return &Scalar{v: new(big.Int).ModInverse(s.int(), groupOrder)}, nil
}

// IsZero reports whether s is 0.
func (s *Scalar) IsZero() bool {
	return s.int().Sign() == 0
}

// IsOverHalfOrder reports whether s > n/2.
func (s *Scalar) IsOverHalfOrder() bool {
	return s.int().Cmp(halfOrder) > 0
}

// Equals reports whether s and o are the same residue.
func (s *Scalar) Equals(o *Scalar) bool {
	return s.int().Cmp(o.int()) == 0
}

// Bytes returns the 32-byte big-endian encoding of s.
func (s *Scalar) Bytes() [32]byte {
	var b [32]byte
	s.int().FillBytes(b[:])
	return b
}

// BigInt returns a copy of the value of s.
func (s *Scalar) BigInt() *big.Int {
	return new(big.Int).Set(s.int())
}

// String returns s as a 64 character hex string.
func (s *Scalar) String() string {
	b := s.Bytes()
	return hex.EncodeToString(b[:])
}
