/*
Package secp256k1 implements elliptic curve arithmetic over the secp256k1 curve
together with the key types used by the ecdsa and schnorr sub packages.

The package provides:

  - FieldElement for arithmetic modulo the field prime p
  - Scalar for arithmetic modulo the group order n
  - Point for affine curve points including the point at infinity
  - Scalar multiplication with an arbitrary point and with the base point
  - Private and public keys, with compressed and uncompressed SEC1 encodings
  - Elliptic curve Diffie-Hellman (ECDH) shared secrets

All values are immutable once constructed, so they may be shared between
goroutines without synchronization.  The curve parameters are package level
values that are never modified after initialization.

WARNING: none of the operations in this package run in constant time and no
attempt is made to resist side channel attacks.  The implementation favors
clarity of the underlying mathematics over hardening.
*/
package secp256k1
