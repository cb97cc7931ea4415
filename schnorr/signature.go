package schnorr

import (
	"fmt"

	"github.com/athanorlabs/go-secp256k1"
)

const (
	// SignatureSize is the size of an encoded Schnorr signature.
	SignatureSize = 64

	// scalarSize is the size of an encoded big endian scalar.
	scalarSize = 32
)

// Signature is a BIP-340 signature: the x coordinate of the nonce point R and
// the scalar s.
type Signature struct {
	r *secp256k1.FieldElement
	s *secp256k1.Scalar
}

// NewSignature instantiates a new signature given some r and s values.
func NewSignature(r *secp256k1.FieldElement, s *secp256k1.Scalar) *Signature {
	return &Signature{r: r, s: s}
}

// R returns the x coordinate of the nonce point.
func (sig *Signature) R() *secp256k1.FieldElement {
	return sig.r
}

// S returns the s value of the signature.
func (sig *Signature) S() *secp256k1.Scalar {
	return sig.s
}

// Serialize returns the Schnorr signature in the more strict format.
//
// The signatures are encoded as
//
//	sig[0:32]  x coordinate of the point R, encoded as a big-endian uint256
//	sig[32:64] s, encoded also as big-endian uint256
func (sig *Signature) Serialize() []byte {
	var b [SignatureSize]byte
	r, s := sig.r.Bytes(), sig.s.Bytes()
	copy(b[0:scalarSize], r[:])
	copy(b[scalarSize:], s[:])
	return b[:]
}

// ParseSignature parses a 64-byte BIP-340 signature.  A wrong length, an r
// that is not less than the field prime, or an s that is not less than the
// group order fail with ErrMalformedSignature.
func ParseSignature(sig []byte) (*Signature, error) {
	if len(sig) != SignatureSize {
		str := fmt.Sprintf("malformed signature: wrong size: %d != %d",
			len(sig), SignatureSize)
		return nil, secp256k1.MakeError(secp256k1.ErrMalformedSignature, str)
	}

	r, err := secp256k1.FieldElementFromBytes(sig[0:scalarSize])
	if err != nil {
		return nil, secp256k1.MakeError(secp256k1.ErrMalformedSignature,
			"invalid signature: r >= field prime")
	}
	s, err := secp256k1.ScalarFromBytes(sig[scalarSize:])
	if err != nil {
		return nil, secp256k1.MakeError(secp256k1.ErrMalformedSignature,
			"invalid signature: s >= group order")
	}

	return NewSignature(r, s), nil
}

// IsEqual compares this Signature instance to the one passed, returning true
// if both Signatures are equivalent.
func (sig *Signature) IsEqual(otherSig *Signature) bool {
	return sig.r.Equals(otherSig.r) && sig.s.Equals(otherSig.s)
}
