package secp256k1

import (
	"crypto/rand"
	"fmt"
	"io"
)

// PrivKeyBytesLen is the length of a serialized private key.
const PrivKeyBytesLen = 32

// PrivateKey is a secp256k1 private key: a scalar d with 0 < d < n.
type PrivateKey struct {
	key *Scalar
}

// NewPrivateKey returns a private key wrapping d.  It fails with
// ErrInvalidScalar when d is zero.
func NewPrivateKey(d *Scalar) (*PrivateKey, error) {
	if d == nil || d.IsZero() {
		return nil, MakeError(ErrInvalidScalar, "private key scalar is zero")
	}

	// A Scalar built through NewScalar is always reduced, but one built
	// around a caller owned value is checked again here.
	if d.int().Cmp(groupOrder) >= 0 {
		return nil, MakeError(ErrInvalidScalar, "private key scalar >= group order")
	}

	return &PrivateKey{key: d}, nil
}

// PrivKeyFromBytes decodes a 32-byte big-endian private key.  Values of zero
// or not less than n fail with ErrInvalidScalar.
func PrivKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != PrivKeyBytesLen {
		str := fmt.Sprintf("private key must be %d bytes, got %d",
			PrivKeyBytesLen, len(b))
		return nil, MakeError(ErrInvalidScalar, str)
	}

	d, err := ScalarFromBytes(b)
	if err != nil {
		return nil, err
	}

	return NewPrivateKey(d)
}

// GeneratePrivateKey returns a new private key using crypto/rand.
func GeneratePrivateKey() (*PrivateKey, error) {
	return GeneratePrivateKeyFromRand(rand.Reader)
}

// GeneratePrivateKeyFromRand returns a new private key read from r.
func GeneratePrivateKeyFromRand(r io.Reader) (*PrivateKey, error) {
	d, err := RandomScalar(r)
	if err != nil {
		return nil, fmt.Errorf("failed to generate private key: %w", err)
	}

	return &PrivateKey{key: d}, nil
}

// Key returns the scalar d of the private key.
func (k *PrivateKey) Key() *Scalar {
	return k.key
}

// Serialize returns the 32-byte big-endian encoding of the private key.
func (k *PrivateKey) Serialize() []byte {
	b := k.key.Bytes()
	return b[:]
}

// PubKey returns the public key d*G.
func (k *PrivateKey) PubKey() *PublicKey {
	return &PublicKey{point: ScalarBaseMul(k.key)}
}

// PublicKey is a secp256k1 public key: a finite point on the curve.
type PublicKey struct {
	point *Point
}

// NewPublicKey returns a public key for p.  It fails with ErrInvalidPoint
// when p is the point at infinity or not on the curve.
func NewPublicKey(p *Point) (*PublicKey, error) {
	if p.IsInfinity() {
		return nil, MakeError(ErrInvalidPoint, "public key is the point at infinity")
	}
	if !p.IsOnCurve() {
		return nil, MakeError(ErrInvalidPoint, "public key is not on the curve")
	}

	return &PublicKey{point: p}, nil
}

// ParsePubKey decodes a compressed (33 bytes) or uncompressed (65 bytes)
// public key.  Any decoding failure, including the encoding of the point at
// infinity, yields ErrInvalidPoint.
func ParsePubKey(b []byte) (*PublicKey, error) {
	switch len(b) {
	case PubKeyBytesLenCompressed, PubKeyBytesLenUncompressed:
	default:
		str := fmt.Sprintf("malformed public key: invalid length: %d", len(b))
		return nil, MakeError(ErrInvalidPoint, str)
	}

	p, err := ParsePoint(b)
	if err != nil {
		return nil, err
	}

	return NewPublicKey(p)
}

// Point returns the curve point of the public key.
func (k *PublicKey) Point() *Point {
	return k.point
}

// X returns the x coordinate of the public key.
func (k *PublicKey) X() *FieldElement {
	return k.point.X()
}

// Y returns the y coordinate of the public key.
func (k *PublicKey) Y() *FieldElement {
	return k.point.Y()
}

// SerializeCompressed returns the 33-byte compressed encoding.
func (k *PublicKey) SerializeCompressed() []byte {
	return k.point.SerializeCompressed()
}

// SerializeUncompressed returns the 65-byte uncompressed encoding.
func (k *PublicKey) SerializeUncompressed() []byte {
	return k.point.SerializeUncompressed()
}

// IsEqual reports whether both keys are the same point.
func (k *PublicKey) IsEqual(other *PublicKey) bool {
	return k.point.Equals(other.point)
}
