package schnorr

import (
	"fmt"

	"github.com/athanorlabs/go-secp256k1"
)

// PubKeyBytesLen is the length of a BIP-340 x-only public key.
const PubKeyBytesLen = 32

// LiftX returns the point with x coordinate x and an even y coordinate.  It
// fails with ErrInvalidPoint when x^3 + 7 is not a square.
func LiftX(x *secp256k1.FieldElement) (*secp256k1.Point, error) {
	return secp256k1.DecompressPoint(x, false)
}

// ParsePubKey parses a 32-byte x-only public key and lifts it to the point
// with an even y coordinate.  Every failure is reported as ErrInvalidPoint.
func ParsePubKey(pubKeyStr []byte) (*secp256k1.PublicKey, error) {
	if len(pubKeyStr) != PubKeyBytesLen {
		str := fmt.Sprintf("bad pubkey byte string size (want %v, have %v)",
			PubKeyBytesLen, len(pubKeyStr))
		return nil, secp256k1.MakeError(secp256k1.ErrInvalidPoint, str)
	}

	x, err := secp256k1.FieldElementFromBytes(pubKeyStr)
	if err != nil {
		return nil, secp256k1.MakeError(secp256k1.ErrInvalidPoint,
			"invalid pubkey x coordinate: "+err.Error())
	}

	p, err := LiftX(x)
	if err != nil {
		return nil, err
	}

	return secp256k1.NewPublicKey(p)
}

// SerializePubKey serializes a public key as specified by BIP 340: the 32-byte
// x coordinate.  The y coordinate is implied to be even.
func SerializePubKey(pub *secp256k1.PublicKey) []byte {
	x := pub.X().Bytes()
	return x[:]
}
