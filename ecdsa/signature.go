package ecdsa

import (
	"fmt"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"

	"github.com/athanorlabs/go-secp256k1"
)

// CompactSigLen is the length of a compact r || s signature.
const CompactSigLen = 64

// Signature is an ECDSA signature over secp256k1: the pair (r, s), both in
// [1, n-1] for a well-formed signature.
type Signature struct {
	r, s *secp256k1.Scalar
}

// NewSignature instantiates a new signature given the r and s values.
func NewSignature(r, s *secp256k1.Scalar) *Signature {
	return &Signature{r: r, s: s}
}

// R returns the r value of the signature.
func (sig *Signature) R() *secp256k1.Scalar {
	return sig.r
}

// S returns the s value of the signature.
func (sig *Signature) S() *secp256k1.Scalar {
	return sig.s
}

// IsEqual compares this Signature instance to the one passed, returning true if
// both Signatures are equivalent.
func (sig *Signature) IsEqual(other *Signature) bool {
	return sig.r.Equals(other.r) && sig.s.Equals(other.s)
}

// Serialize returns the ECDSA signature in the Distinguished Encoding Rules
// (DER) format:
//
//	0x30 <length of whole message> <0x02> <length of R> <R> 0x2 <length of S> <S>
//
// R and S are minimal big-endian integers, with a 0x00 byte prepended when the
// high bit of the first byte would otherwise be set.
func (sig *Signature) Serialize() []byte {
	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1BigInt(sig.r.BigInt())
		b.AddASN1BigInt(sig.s.BigInt())
	})

	return b.BytesOrPanic()
}

// ParseDERSignature parses a DER encoded signature.  Structural problems, such
// as a wrong tag, a length that disagrees with the buffer, a non-minimal length
// or integer encoding, a negative integer or trailing bytes, fail with
// ErrMalformedDER.  Well-formed encodings of r or s that are zero or not less
// than the group order fail with ErrInvalidScalar.
func ParseDERSignature(sig []byte) (*Signature, error) {
	var (
		r, s  = new(big.Int), new(big.Int)
		inner cryptobyte.String
	)

	input := cryptobyte.String(sig)
	if !input.ReadASN1(&inner, asn1.SEQUENCE) {
		return nil, derError("malformed signature: no valid sequence")
	}
	if !input.Empty() {
		str := fmt.Sprintf("malformed signature: %d trailing bytes after "+
			"sequence", len(input))
		return nil, derError(str)
	}

	if !inner.ReadASN1Integer(r) {
		return nil, derError("malformed signature: bad R integer")
	}
	if !inner.ReadASN1Integer(s) {
		return nil, derError("malformed signature: bad S integer")
	}
	if !inner.Empty() {
		return nil, derError("malformed signature: trailing bytes inside sequence")
	}

	if r.Sign() < 0 {
		return nil, derError("malformed signature: R is negative")
	}
	if s.Sign() < 0 {
		return nil, derError("malformed signature: S is negative")
	}

	rs, err := componentFromInt(r, "R")
	if err != nil {
		return nil, err
	}
	ss, err := componentFromInt(s, "S")
	if err != nil {
		return nil, err
	}

	return NewSignature(rs, ss), nil
}

// SerializeCompact returns the 64-byte r || s encoding of the signature.
func (sig *Signature) SerializeCompact() []byte {
	var b [CompactSigLen]byte
	r, s := sig.r.Bytes(), sig.s.Bytes()
	copy(b[:32], r[:])
	copy(b[32:], s[:])
	return b[:]
}

// ParseCompactSignature parses a 64-byte r || s signature.  A wrong length or a
// component that is zero or not less than the group order fails with
// ErrMalformedSignature.
func ParseCompactSignature(sig []byte) (*Signature, error) {
	if len(sig) != CompactSigLen {
		str := fmt.Sprintf("malformed signature: wrong size: %d", len(sig))
		return nil, secp256k1.MakeError(secp256k1.ErrMalformedSignature, str)
	}

	r, err := secp256k1.ScalarFromBytes(sig[:32])
	if err != nil || r.IsZero() {
		return nil, secp256k1.MakeError(secp256k1.ErrMalformedSignature,
			"invalid signature: R is zero or >= group order")
	}
	s, err := secp256k1.ScalarFromBytes(sig[32:])
	if err != nil || s.IsZero() {
		return nil, secp256k1.MakeError(secp256k1.ErrMalformedSignature,
			"invalid signature: S is zero or >= group order")
	}

	return NewSignature(r, s), nil
}

func componentFromInt(v *big.Int, name string) (*secp256k1.Scalar, error) {
	if v.Sign() == 0 {
		str := fmt.Sprintf("invalid signature: %s is 0", name)
		return nil, secp256k1.MakeError(secp256k1.ErrInvalidScalar, str)
	}
	if v.Cmp(secp256k1.N()) >= 0 {
		str := fmt.Sprintf("invalid signature: %s >= group order", name)
		return nil, secp256k1.MakeError(secp256k1.ErrInvalidScalar, str)
	}

	return secp256k1.NewScalar(v), nil
}

func derError(desc string) error {
	return secp256k1.MakeError(secp256k1.ErrMalformedDER, desc)
}
