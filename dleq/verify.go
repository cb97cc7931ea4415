package dleq

import (
	"errors"
)

var (
	errInvalidProof     = errors.New("invalid proof")
	errCommitmentIsZero = errors.New("commitment is the point at infinity")
	errIncompleteProof  = errors.New("proof is missing a challenge or response")
)

// Verify verifies the proof is valid against the given curve.
func (p *Proof) Verify(curve Curve) error {
	if p.CommitmentG == nil || p.CommitmentH == nil ||
		p.challenge == nil || p.response == nil {
		return errIncompleteProof
	}

	if p.CommitmentG.IsZero() || p.CommitmentH.IsZero() {
		return errCommitmentIsZero
	}

	// s*G + e*X = k*G and s*H + e*Y = k*H for an honest prover
	G, H := curve.BasePoint(), curve.AltBasePoint()
	KG := curve.ScalarBaseMul(p.response).Add(p.CommitmentG.ScalarMul(p.challenge))
	KH := curve.ScalarMul(p.response, H).Add(p.CommitmentH.ScalarMul(p.challenge))

	e, err := hashToScalar(curve, G, H, p.CommitmentG, p.CommitmentH, KG, KH)
	if err != nil {
		return err
	}

	if !e.Eq(p.challenge) {
		return errInvalidProof
	}

	return nil
}
