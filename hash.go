package secp256k1

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Sha256 returns the SHA-256 digest of data.
func Sha256(data []byte) [32]byte {
	return chainhash.HashH(data)
}

// TaggedHash returns SHA256(SHA256(tag) || SHA256(tag) || msgs...).
func TaggedHash(tag []byte, msgs ...[]byte) [32]byte {
	return *chainhash.TaggedHash(tag, msgs...)
}
