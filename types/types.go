package types

import (
	"encoding/hex"
)

// Curve is a prime order group with a fixed base point.  Implementations over
// secp256k1 must agree on every encoding so they can be used interchangeably.
type Curve interface {
	Name() string
	BitSize() uint64
	CompressedPointSize() int
	BasePoint() Point
	// AltBasePoint returns a second generator whose discrete log with
	// respect to BasePoint is unknown.
	AltBasePoint() Point
	NewRandomScalar() Scalar
	ScalarFromInt(uint32) Scalar
	ScalarFromBytes([32]byte) Scalar
	HashToScalar([]byte) (Scalar, error)
	ScalarBaseMul(Scalar) Point
	ScalarMul(Scalar, Point) Point
	DecodeToPoint([]byte) (Point, error)
	DecodeToScalar([]byte) (Scalar, error)
}

type Scalar interface {
	Add(Scalar) Scalar
	Sub(Scalar) Scalar
	Negate() Scalar
	Mul(Scalar) Scalar
	Inverse() Scalar
	Encode() []byte
	Eq(Scalar) bool
	IsZero() bool
}

type Point interface {
	Copy() Point
	Add(Point) Point
	Sub(Point) Point
	ScalarMul(Scalar) Point
	Encode() []byte
	IsZero() bool
	Equals(other Point) bool
}

// altBasePoint is the compressed encoding of the point with x coordinate
// SHA-256 of the uncompressed base point, as used for BIP-341 unspendable
// keys.
const altBasePoint = "0250929b74c1a04954b78b4b6035e97a5e078a5a0f28ec96d547bfee9ace803ac0"

// AltBasePointEncoding returns the compressed encoding every secp256k1 backend
// uses for AltBasePoint.
func AltBasePointEncoding() []byte {
	b, err := hex.DecodeString(altBasePoint)
	if err != nil {
		panic(err)
	}

	return b
}
