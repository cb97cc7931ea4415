package schnorr

import (
	"github.com/athanorlabs/go-secp256k1"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// schnorrVerify attempts to verify the signature for the provided message and
// x-only public key and either returns nil if successful or a specific error
// indicating why it failed if not successful.
func schnorrVerify(sig *Signature, msg []byte, pubKeyBytes []byte) error {
	// 1. P = lift_x(int(pk)), fail if that fails
	// 2. r = int(sig[0:32]), fail if r >= p
	// 3. s = int(sig[32:64]), fail if s >= n
	// 4. e = int(tagged_hash("BIP0340/challenge", bytes(r) || bytes(P) || m)) mod n
	// 5. R = s*G - e*P
	// 6. Fail if is_infinite(R)
	// 7. Fail if not has_even_y(R)
	// 8. Fail if x(R) != r
	//
	// Steps 2 and 3 are enforced by the Signature type.
	pubKey, err := ParsePubKey(pubKeyBytes)
	if err != nil {
		return err
	}

	rBytes := sig.r.Bytes()
	commitment := secp256k1.TaggedHash(
		chainhash.TagBIP0340Challenge, rBytes[:], pubKeyBytes, msg,
	)
	e := secp256k1.ScalarFromHash(commitment[:])

	R := secp256k1.ScalarBaseMul(sig.s).Sub(secp256k1.ScalarMul(e, pubKey.Point()))
	if R.IsInfinity() {
		return signatureError(ErrSigRIsInfinity, "calculated R point is the point at infinity")
	}
	if R.Y().IsOdd() {
		return signatureError(ErrSigRYIsOdd, "calculated R y-value is odd")
	}
	if !R.X().Equals(sig.r) {
		return signatureError(ErrUnequalRValues, "calculated R point was not given R")
	}

	return nil
}

// Verify returns whether or not the signature is valid for the provided
// message and public key.  Only the x coordinate of pubKey is used.
func (sig *Signature) Verify(msg []byte, pubKey *secp256k1.PublicKey) bool {
	if sig == nil || pubKey == nil {
		return false
	}

	return verify(sig, msg, SerializePubKey(pubKey))
}

// Verify returns whether or not sig is a valid signature of msg under the
// x-only public key pubKeyX.
func Verify(pubKeyX *secp256k1.FieldElement, msg []byte, sig *Signature) bool {
	if sig == nil {
		return false
	}

	x := pubKeyX.Bytes()
	return verify(sig, msg, x[:])
}

// VerifyBytes verifies a serialized signature against a serialized x-only
// public key.  Every malformed input yields false.
func VerifyBytes(pubKey, msg, sig []byte) bool {
	s, err := ParseSignature(sig)
	if err != nil {
		log.Debugf("Unable to parse signature: %v", err)
		return false
	}

	return verify(s, msg, pubKey)
}

func verify(sig *Signature, msg, pubKeyBytes []byte) bool {
	if err := schnorrVerify(sig, msg, pubKeyBytes); err != nil {
		log.Debugf("Signature verification failed: %v", err)
		return false
	}

	return true
}
