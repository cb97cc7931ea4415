package schnorr

import (
	"github.com/athanorlabs/go-secp256k1"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// SignOption is a functional option argument that allows callers to modify the
// way we generate BIP-340 schnorr signatures.
type SignOption func(*signOptions)

type signOptions struct {
	// fastSign skips the verification of the produced signature.
	fastSign bool
}

func defaultSignOptions() *signOptions {
	return &signOptions{}
}

// FastSign forces signing to skip the extra verification step at the end.
func FastSign() SignOption {
	return func(o *signOptions) {
		o.fastSign = true
	}
}

// Sign generates a BIP-340 signature over the secp256k1 curve for msg using the
// given private key and 32 bytes of auxiliary randomness.  The same key,
// message and auxiliary data always yield the same signature.  msg may be of
// any length.
//
// The implementation is not constant time.
func Sign(privKey *secp256k1.PrivateKey, msg []byte, auxRand [32]byte,
	signOpts ...SignOption) (*Signature, error) {

	opts := defaultSignOptions()
	for _, option := range signOpts {
		option(opts)
	}

	// G = curve generator
	// n = curve order
	// d = private key
	// m = message
	// a = input randomness
	//
	// 1. P = d*G
	// 2. Negate d if P.y is odd
	// 3. t = bytes(d) xor tagged_hash("BIP0340/aux", a)
	// 4. rand = tagged_hash("BIP0340/nonce", t || bytes(P) || m)
	// 5. k' = int(rand) mod n
	// 6. Fail if k' = 0
	// 7. Continue in schnorrSign
	d := privKey.Key()
	P := secp256k1.ScalarBaseMul(d)
	if P.Y().IsOdd() {
		d = d.Negate()
	}
	pBytes := P.X().Bytes()

	dBytes := d.Bytes()
	auxHash := secp256k1.TaggedHash(chainhash.TagBIP0340Aux, auxRand[:])
	var t [scalarSize]byte
	for i := range t {
		t[i] = dBytes[i] ^ auxHash[i]
	}

	nonceHash := secp256k1.TaggedHash(chainhash.TagBIP0340Nonce, t[:], pBytes[:], msg)
	k := secp256k1.ScalarFromHash(nonceHash[:])
	if k.IsZero() {
		return nil, secp256k1.MakeError(secp256k1.ErrNonceCollision,
			"generated nonce is zero")
	}

	return schnorrSign(d, k, pBytes[:], msg, opts)
}

// schnorrSign finishes a BIP-340 signature given the even-y adjusted private
// key d, a non-zero nonce k and the x-only public key.
func schnorrSign(d, k *secp256k1.Scalar, pBytes, msg []byte,
	opts *signOptions) (*Signature, error) {

	// 1. R = k*G
	// 2. Negate k if R.y is odd
	// 3. e = tagged_hash("BIP0340/challenge", bytes(R) || bytes(P) || m) mod n
	// 4. sig = bytes(R) || bytes((k + e*d) mod n)
	// 5. If Verify(bytes(P), m, sig) fails, abort.
	R := secp256k1.ScalarBaseMul(k)
	if R.Y().IsOdd() {
		k = k.Negate()
	}

	rBytes := R.X().Bytes()
	commitment := secp256k1.TaggedHash(
		chainhash.TagBIP0340Challenge, rBytes[:], pBytes, msg,
	)
	e := secp256k1.ScalarFromHash(commitment[:])

	s := e.Mul(d).Add(k)
	sig := NewSignature(R.X(), s)

	if !opts.fastSign {
		if err := schnorrVerify(sig, msg, pBytes); err != nil {
			log.Errorf("Produced signature does not verify: %v", err)
			return nil, signatureError(ErrSelfVerify, err.Error())
		}
	}

	return sig, nil
}
