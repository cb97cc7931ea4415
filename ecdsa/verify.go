package ecdsa

import (
	"github.com/athanorlabs/go-secp256k1"
)

// Verify returns whether or not the signature is valid for the provided hash
// and secp256k1 public key.  Any s in [1, n-1] is accepted, so signatures
// made WithoutLowS verify as well.
func (sig *Signature) Verify(hash []byte, pubKey *secp256k1.PublicKey) bool {
	// 1. Fail if r and s are not in [1, N-1]
	// 2. e = H(m)
	// 3. w = s^-1 mod N
	// 4. u1 = e * w mod N
	//    u2 = r * w mod N
	// 5. X = u1G + u2Q
	// 6. Fail if X is the point at infinity
	// 7. Verified if X.x mod N == r
	if sig == nil || pubKey == nil {
		return false
	}
	if sig.r.IsZero() || sig.s.IsZero() {
		return false
	}

	e := secp256k1.ScalarFromHash(hash)
	w, err := sig.s.Invert()
	if err != nil {
		return false
	}

	u1 := e.Mul(w)
	u2 := sig.r.Mul(w)
	X := secp256k1.ScalarBaseMul(u1).Add(secp256k1.ScalarMul(u2, pubKey.Point()))
	if X.IsInfinity() {
		return false
	}

	return secp256k1.NewScalar(X.X().BigInt()).Equals(sig.r)
}

// Verify is the function form of Signature.Verify.
func Verify(pubKey *secp256k1.PublicKey, hash []byte, sig *Signature) bool {
	return sig.Verify(hash, pubKey)
}

// VerifyStrict is like Verify but also rejects signatures whose s is in the
// upper half of the group order.
func VerifyStrict(pubKey *secp256k1.PublicKey, hash []byte, sig *Signature) bool {
	if sig == nil || sig.s.IsOverHalfOrder() {
		return false
	}

	return sig.Verify(hash, pubKey)
}

// VerifyMessage hashes msg with SHA-256 and verifies the signature against the
// digest.
func VerifyMessage(pubKey *secp256k1.PublicKey, msg []byte, sig *Signature) bool {
	hash := secp256k1.Sha256(msg)
	return sig.Verify(hash[:], pubKey)
}
