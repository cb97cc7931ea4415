package ecdsa

import (
	"errors"
	"fmt"

	"github.com/athanorlabs/go-secp256k1"
)

const defaultMaxAttempts = 16

// SignOption is a functional option argument that allows callers to modify
// the way an ECDSA signature is generated.
type SignOption func(*signOptions)

type signOptions struct {
	nonceSource NonceSource
	extraData   []byte
	lowS        bool
	maxAttempts int
}

func defaultSignOptions() *signOptions {
	return &signOptions{
		lowS:        true,
		maxAttempts: defaultMaxAttempts,
	}
}

// WithNonceSource replaces the default RFC 6979 nonce source.
func WithNonceSource(src NonceSource) SignOption {
	return func(o *signOptions) {
		o.nonceSource = src
	}
}

// WithExtraData mixes extra into the RFC 6979 nonce derivation.  It has no
// effect when a custom nonce source is used.
func WithExtraData(extra [32]byte) SignOption {
	return func(o *signOptions) {
		o.extraData = extra[:]
	}
}

// WithoutLowS disables normalization of s into the lower half of the group
// order.  Signatures produced this way are rejected by VerifyStrict.
func WithoutLowS() SignOption {
	return func(o *signOptions) {
		o.lowS = false
	}
}

// WithMaxAttempts bounds the number of nonces Sign tries before giving up with
// ErrNonceCollision.
func WithMaxAttempts(n int) SignOption {
	return func(o *signOptions) {
		if n > 0 {
			o.maxAttempts = n
		}
	}
}

// SignWithNonce signs hash with the private key using the caller supplied
// nonce k.  It never retries: when k yields r == 0 or s == 0 it fails with
// ErrNonceCollision and the caller must choose another nonce.  A zero nonce
// fails with ErrInvalidScalar.  The returned s is always in the lower half of
// the group order.
func SignWithNonce(privKey *secp256k1.PrivateKey, hash []byte,
	k *secp256k1.Scalar) (*Signature, error) {

	return signWithNonce(privKey, hash, k, true)
}

func signWithNonce(privKey *secp256k1.PrivateKey, hash []byte,
	k *secp256k1.Scalar, lowS bool) (*Signature, error) {

	// G = curve generator
	// N = curve order
	// d = private key
	// m = message
	// r, s = signature
	//
	// 1. R = kG
	// 2. r = R.x mod N, fail if r = 0
	// 3. e = H(m)
	// 4. s = k^-1(e + dr) mod N, fail if s = 0
	// 5. s = -s if s > N/2 (low-S)
	if k == nil || k.IsZero() {
		return nil, secp256k1.MakeError(secp256k1.ErrInvalidScalar, "nonce is zero")
	}

	R := secp256k1.ScalarBaseMul(k)
	if R.IsInfinity() {
		return nil, secp256k1.MakeError(secp256k1.ErrNonceCollision,
			"nonce point is the point at infinity")
	}

	r := secp256k1.NewScalar(R.X().BigInt())
	if r.IsZero() {
		return nil, secp256k1.MakeError(secp256k1.ErrNonceCollision,
			"calculated R is zero")
	}

	e := secp256k1.ScalarFromHash(hash)
	kInv, err := k.Invert()
	if err != nil {
		return nil, err
	}

	s := privKey.Key().Mul(r).Add(e).Mul(kInv)
	if s.IsZero() {
		return nil, secp256k1.MakeError(secp256k1.ErrNonceCollision,
			"calculated S is zero")
	}
	if lowS && s.IsOverHalfOrder() {
		s = s.Negate()
	}

	return NewSignature(r, s), nil
}

// Sign generates an ECDSA signature over the secp256k1 curve for the provided
// hash (which should be the result of hashing a larger message) using the
// given private key.  Nonces are drawn from RFC 6979 unless WithNonceSource is
// passed.  A nonce yielding r == 0 or s == 0 is rejected and the next
// candidate is taken from the source, which for RFC 6979 is the step H
// resampling of section 3.2.  At most WithMaxAttempts candidates are tried.
// SignWithNonce signs with a single given nonce and never retries.
func Sign(privKey *secp256k1.PrivateKey, hash []byte,
	signOpts ...SignOption) (*Signature, error) {

	opts := defaultSignOptions()
	for _, option := range signOpts {
		option(opts)
	}

	nonces := opts.nonceSource
	if nonces == nil {
		nonces = DeterministicNonce(opts.extraData)
	}

	privKeyBytes := privKey.Serialize()
	for iteration := uint32(0); iteration < uint32(opts.maxAttempts); iteration++ {
		k, err := nonces.Nonce(privKeyBytes, hash, iteration)
		if err != nil {
			return nil, fmt.Errorf("unable to generate nonce: %w", err)
		}

		sig, err := signWithNonce(privKey, hash, k, opts.lowS)
		if errors.Is(err, secp256k1.ErrNonceCollision) {
			log.Debugf("Nonce for iteration %d rejected: %v", iteration, err)
			continue
		}

		return sig, err
	}

	str := fmt.Sprintf("no usable nonce after %d attempts", opts.maxAttempts)
	return nil, secp256k1.MakeError(secp256k1.ErrNonceCollision, str)
}

// SignMessage hashes msg with SHA-256 and signs the digest.
func SignMessage(privKey *secp256k1.PrivateKey, msg []byte,
	signOpts ...SignOption) (*Signature, error) {

	hash := secp256k1.Sha256(msg)
	return Sign(privKey, hash[:], signOpts...)
}
