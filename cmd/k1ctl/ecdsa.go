package main

import (
	"errors"
	"fmt"

	"github.com/athanorlabs/go-secp256k1"
	"github.com/athanorlabs/go-secp256k1/ecdsa"
)

type ecdsaSignCmd struct {
	Prehashed bool   `long:"prehashed" description:"The message is a hex encoded 32-byte hash and is signed as is"`
	Hex       bool   `long:"hex" description:"The message is hex encoded"`
	Compact   bool   `long:"compact" description:"Print the 64-byte r || s encoding instead of DER"`
	ExtraData string `long:"extra" description:"Hex encoded 32 bytes mixed into the RFC 6979 nonce"`
	NoLowS    bool   `long:"nolows" description:"Do not normalize s to the lower half of the group order"`
}

func (cmd *ecdsaSignCmd) Execute(args []string) error {
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	if len(args) != 2 {
		return errors.New("required private key and message parameters not specified")
	}
	privKey, err := parsePrivKeyArg(args[0])
	if err != nil {
		return err
	}
	hash, err := cmd.hash(args[1])
	if err != nil {
		return err
	}

	var opts []ecdsa.SignOption
	if cmd.ExtraData != "" {
		extra, err := decodeHexArg("extra data", cmd.ExtraData)
		if err != nil {
			return err
		}
		if len(extra) != 32 {
			return fmt.Errorf("extra data must be 32 bytes, got %d", len(extra))
		}
		var e [32]byte
		copy(e[:], extra)
		opts = append(opts, ecdsa.WithExtraData(e))
	}
	if cmd.NoLowS {
		opts = append(opts, ecdsa.WithoutLowS())
	}

	log.Debugf("Signing hash %x", hash)
	sig, err := ecdsa.Sign(privKey, hash, opts...)
	if err != nil {
		return err
	}

	if cmd.Compact {
		printf("%x\n", sig.SerializeCompact())
		return nil
	}
	printf("%x\n", sig.Serialize())
	return nil
}

func (cmd *ecdsaSignCmd) hash(arg string) ([]byte, error) {
	if cmd.Prehashed {
		hash, err := decodeHexArg("hash", arg)
		if err != nil {
			return nil, err
		}
		if len(hash) != 32 {
			return nil, fmt.Errorf("hash must be 32 bytes, got %d", len(hash))
		}
		return hash, nil
	}

	msg, err := messageArg(arg, cmd.Hex)
	if err != nil {
		return nil, err
	}
	hash := secp256k1.Sha256(msg)
	return hash[:], nil
}

func (cmd *ecdsaSignCmd) Usage() string {
	return "<private-key> <message>"
}

type ecdsaVerifyCmd struct {
	Prehashed bool `long:"prehashed" description:"The message is a hex encoded 32-byte hash"`
	Hex       bool `long:"hex" description:"The message is hex encoded"`
	Strict    bool `long:"strict" description:"Reject signatures whose s is in the upper half of the group order"`
	Compact   bool `long:"compact" description:"The signature is the 64-byte r || s encoding"`
}

func (cmd *ecdsaVerifyCmd) Execute(args []string) error {
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	if len(args) != 3 {
		return errors.New("required public key, message and signature parameters not specified")
	}
	pubKey, err := parsePubKeyArg(args[0])
	if err != nil {
		return err
	}
	signer := ecdsaSignCmd{Prehashed: cmd.Prehashed, Hex: cmd.Hex}
	hash, err := signer.hash(args[1])
	if err != nil {
		return err
	}
	sigBytes, err := decodeHexArg("signature", args[2])
	if err != nil {
		return err
	}

	sig, err := parseSignatureArg(sigBytes, cmd.Compact)
	if err != nil {
		log.Debugf("Unable to parse signature: %v", err)
		printf("false\n")
		return errVerifyFailed
	}

	verify := ecdsa.Verify
	if cmd.Strict {
		verify = ecdsa.VerifyStrict
	}
	if !verify(pubKey, hash, sig) {
		printf("false\n")
		return errVerifyFailed
	}

	printf("true\n")
	return nil
}

// parseSignatureArg decodes an ECDSA signature.  DER is tried first since a
// DER signature can also be 64 bytes long; the compact encoding is only used
// when forced or when a 64-byte input is not valid DER.
func parseSignatureArg(b []byte, compact bool) (*ecdsa.Signature, error) {
	if compact {
		return ecdsa.ParseCompactSignature(b)
	}

	sig, err := ecdsa.ParseDERSignature(b)
	if errors.Is(err, secp256k1.ErrMalformedDER) && len(b) == ecdsa.CompactSigLen {
		log.Debugf("Signature is not DER, parsing as compact: %v", err)
		return ecdsa.ParseCompactSignature(b)
	}
	return sig, err
}

func (cmd *ecdsaVerifyCmd) Usage() string {
	return "<public-key> <message> <signature>"
}
