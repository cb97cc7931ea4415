// Package dleq implements non-interactive proofs that two points share the
// same discrete log with respect to the base point and the alternate base
// point of a curve.
package dleq

import (
	"errors"

	"github.com/athanorlabs/go-secp256k1/types"
)

type Curve = types.Curve
type Point = types.Point
type Scalar = types.Scalar

var errZeroSecret = errors.New("secret must not be zero")

// Proof represents a DLEq proof and commitments to the witness.
//
// CommitmentG = x*G and CommitmentH = x*H where G is the curve's base point
// and H its alternate base point.
type Proof struct {
	CommitmentG, CommitmentH Point
	challenge                Scalar
	response                 Scalar
}

// NewProof returns a new proof for the given secret on the given curve.
func NewProof(curve Curve, x Scalar) (*Proof, error) {
	if x.IsZero() {
		return nil, errZeroSecret
	}

	G, H := curve.BasePoint(), curve.AltBasePoint()
	XG := curve.ScalarBaseMul(x)
	XH := curve.ScalarMul(x, H)

	// k*G, k*H for a fresh nonce k
	k := curve.NewRandomScalar()
	KG := curve.ScalarBaseMul(k)
	KH := curve.ScalarMul(k, H)

	e, err := hashToScalar(curve, G, H, XG, XH, KG, KH)
	if err != nil {
		return nil, err
	}

	// s = k - e*x
	s := k.Sub(e.Mul(x))

	return &Proof{
		CommitmentG: XG,
		CommitmentH: XH,
		challenge:   e,
		response:    s,
	}, nil
}

func hashToScalar(curve Curve, elements ...interface{}) (Scalar, error) {
	preimage := []byte{}

	for _, e := range elements {
		switch el := e.(type) {
		case Scalar:
			preimage = append(preimage, el.Encode()...)
		case Point:
			preimage = append(preimage, el.Encode()...)
		default:
			return nil, errors.New("input element must be scalar or point")
		}
	}

	return curve.HashToScalar(preimage)
}
