package ecdsa

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"io"

	"github.com/athanorlabs/go-secp256k1"
)

var (
	// singleZero is used during RFC6979 nonce generation.
	singleZero = []byte{0x00}

	// singleOne is used during RFC6979 nonce generation.
	singleOne = []byte{0x01}

	// oneInitializer is the initial value of V in RFC6979 nonce generation.
	oneInitializer = bytes.Repeat([]byte{0x01}, sha256.Size)
)

// NonceSource supplies ECDSA nonces.  Nonce must return a scalar in [1, n-1]
// for the given 32-byte private key and message hash.  The iteration counter
// starts at zero and is incremented by Sign each time the previous nonce
// produced a degenerate signature, so a source must return a different nonce
// for every iteration.
type NonceSource interface {
	Nonce(privKey, hash []byte, iteration uint32) (*secp256k1.Scalar, error)
}

// NonceFunc adapts an ordinary function to the NonceSource interface.
type NonceFunc func(privKey, hash []byte, iteration uint32) (*secp256k1.Scalar, error)

// Nonce calls f(privKey, hash, iteration).
func (f NonceFunc) Nonce(privKey, hash []byte, iteration uint32) (*secp256k1.Scalar, error) {
	return f(privKey, hash, iteration)
}

// DeterministicNonce returns the RFC 6979 nonce source.  extra is the optional
// additional data of section 3.6 and is ignored unless it is 32 bytes long.
func DeterministicNonce(extra []byte) NonceSource {
	return NonceFunc(func(privKey, hash []byte, iteration uint32) (*secp256k1.Scalar, error) {
		return NonceRFC6979(privKey, hash, extra, nil, iteration), nil
	})
}

// RandomNonce returns a nonce source that draws uniformly random nonces from
// r.  The iteration counter is ignored since every draw is fresh.
func RandomNonce(r io.Reader) NonceSource {
	return NonceFunc(func(_, _ []byte, _ uint32) (*secp256k1.Scalar, error) {
		return secp256k1.RandomScalar(r)
	})
}

// NonceRFC6979 generates a nonce deterministically according to RFC 6979 using
// HMAC-SHA256 for the hashing function.  The extra and version arguments are
// optional, but allow additional data to be added to the input of the HMAC.
// When provided, the extra data must be 32 bytes and version must be 16 bytes
// or they will be ignored.
//
// The extraIterations parameter selects a later element of the stream of
// nonces the generator produces, so signing code can move past a nonce that
// yields an invalid signature.  Signing code should start with 0.
func NonceRFC6979(privKey, hash, extra, version []byte, extraIterations uint32) *secp256k1.Scalar {
	const (
		privKeyLen = 32
		hashLen    = 32
		extraLen   = 32
		versionLen = 16
	)

	// int2octets(x) || bits2octets(h1) [|| extra [|| version]]
	//
	// bits2octets reduces the hash modulo the group order.
	var keyBuf [privKeyLen + hashLen + extraLen + versionLen]byte
	if len(privKey) > privKeyLen {
		privKey = privKey[:privKeyLen]
	}
	offset := privKeyLen - len(privKey)
	offset += copy(keyBuf[offset:], privKey)
	h1 := secp256k1.ScalarFromHash(hash).Bytes()
	offset += copy(keyBuf[offset:], h1[:])
	if len(extra) == extraLen {
		offset += copy(keyBuf[offset:], extra)
		if len(version) == versionLen {
			offset += copy(keyBuf[offset:], version)
		}
	} else if len(version) == versionLen {
		// The extra data portion stays all zero.
		offset += extraLen
		offset += copy(keyBuf[offset:], version)
	}
	key := keyBuf[:offset]

	// Steps B through G.
	v := oneInitializer
	k := make([]byte, hashLen)
	k = hmacSHA256(k, v, singleZero, key)
	v = hmacSHA256(k, v)
	k = hmacSHA256(k, v, singleOne, key)
	v = hmacSHA256(k, v)

	// Step H.  Since the output of the hash is exactly qlen bits, T is a
	// single block.
	var generated uint32
	for {
		v = hmacSHA256(k, v)

		secret, err := secp256k1.ScalarFromBytes(v)
		if err == nil && !secret.IsZero() {
			generated++
			if generated > extraIterations {
				return secret
			}
			log.Tracef("Skipping RFC6979 candidate %d of %d", generated,
				extraIterations)
		}

		k = hmacSHA256(k, v, singleZero)
		v = hmacSHA256(k, v)
	}
}

func hmacSHA256(key []byte, data ...[]byte) []byte {
	h := hmac.New(sha256.New, key)
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}
