package dleq

import (
	"bytes"
	"errors"

	"github.com/athanorlabs/go-secp256k1/types"
)

// scalarLen is the encoded length of a secp256k1 scalar.
const scalarLen = 32

var (
	errInputBytesTooShort = errors.New("input bytes too short")
	errInputBytesTooLong  = errors.New("input bytes too long")
)

// Serialize encodes the proof as CommitmentG || CommitmentH || e || s.
func (p *Proof) Serialize() []byte {
	b := append(p.CommitmentG.Encode(), p.CommitmentH.Encode()...)
	b = append(b, p.challenge.Encode()...)
	b = append(b, p.response.Encode()...)
	return b
}

// Deserialize decodes the proof for the given curve.
func (p *Proof) Deserialize(curve types.Curve, in []byte) error {
	pointLen := curve.CompressedPointSize()
	expected := 2*pointLen + 2*scalarLen
	if len(in) < expected {
		return errInputBytesTooShort
	}
	if len(in) > expected {
		return errInputBytesTooLong
	}

	reader := bytes.NewBuffer(in)

	var err error
	p.CommitmentG, err = curve.DecodeToPoint(reader.Next(pointLen))
	if err != nil {
		return err
	}

	p.CommitmentH, err = curve.DecodeToPoint(reader.Next(pointLen))
	if err != nil {
		return err
	}

	p.challenge, err = curve.DecodeToScalar(reader.Next(scalarLen))
	if err != nil {
		return err
	}

	p.response, err = curve.DecodeToScalar(reader.Next(scalarLen))
	if err != nil {
		return err
	}

	return nil
}
