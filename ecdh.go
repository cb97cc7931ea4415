package secp256k1

// SharedSecretPoint returns the Diffie-Hellman point d*Q for the private key
// d and the remote public key Q.
func SharedSecretPoint(privkey *PrivateKey, pubkey *PublicKey) (*Point, error) {
	if pubkey == nil || pubkey.point.IsInfinity() {
		return nil, MakeError(ErrInvalidPoint, "remote public key is the point at infinity")
	}
	if !pubkey.point.IsOnCurve() {
		return nil, MakeError(ErrInvalidPoint, "remote public key is not on the curve")
	}

	s := ScalarMul(privkey.key, pubkey.point)
	if s.IsInfinity() {
		return nil, MakeError(ErrInvalidPoint, "shared secret is the point at infinity")
	}

	return s, nil
}

// GenerateSharedSecret generates a shared secret based on a private key and a
// public key using Diffie-Hellman key exchange (ECDH) (RFC 5903).
// RFC5903 Section 9 states we should only return x.
//
// The result is the raw x coordinate.  It is recommended to securely hash the
// result before using it as a cryptographic key.
func GenerateSharedSecret(privkey *PrivateKey, pubkey *PublicKey) ([]byte, error) {
	s, err := SharedSecretPoint(privkey, pubkey)
	if err != nil {
		return nil, err
	}

	x := s.X().Bytes()
	return x[:], nil
}

// ECDH is an alias for GenerateSharedSecret on the private key.
func (k *PrivateKey) ECDH(remote *PublicKey) ([]byte, error) {
	return GenerateSharedSecret(k, remote)
}
