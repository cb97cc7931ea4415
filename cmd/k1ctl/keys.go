package main

import (
	"encoding/hex"
	"errors"

	"github.com/athanorlabs/go-secp256k1"
	"github.com/athanorlabs/go-secp256k1/schnorr"
)

type keygenCmd struct {
	Uncompressed bool `short:"u" long:"uncompressed" description:"Print the public key in uncompressed form"`
}

func (cmd *keygenCmd) Execute(args []string) error {
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	privKey, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return err
	}

	pubKey := privKey.PubKey()
	pubBytes := pubKey.SerializeCompressed()
	if cmd.Uncompressed {
		pubBytes = pubKey.SerializeUncompressed()
	}

	printf("private: %x\n", privKey.Serialize())
	printf("public:  %x\n", pubBytes)
	printf("xonly:   %x\n", schnorr.SerializePubKey(pubKey))
	return nil
}

type pubkeyCmd struct {
	Uncompressed bool `short:"u" long:"uncompressed" description:"Print the public key in uncompressed form"`
	XOnly        bool `short:"x" long:"xonly" description:"Print the 32-byte BIP-340 public key"`
}

func (cmd *pubkeyCmd) Execute(args []string) error {
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	if len(args) != 1 {
		return errors.New("required private key parameter not specified")
	}
	privBytes, err := decodeHexArg("private key", args[0])
	if err != nil {
		return err
	}

	c, err := activeCurve()
	if err != nil {
		return err
	}
	d, err := c.DecodeToScalar(privBytes)
	if err != nil {
		return err
	}
	if d.IsZero() {
		return secp256k1.MakeError(secp256k1.ErrInvalidScalar,
			"private key is zero")
	}

	log.Debugf("Deriving public key with the %s backend", c.Name())
	encoded := c.ScalarBaseMul(d).Encode()
	if !cmd.Uncompressed && !cmd.XOnly {
		printf("%s\n", hex.EncodeToString(encoded))
		return nil
	}

	pubKey, err := secp256k1.ParsePubKey(encoded)
	if err != nil {
		return err
	}
	if cmd.XOnly {
		printf("%x\n", schnorr.SerializePubKey(pubKey))
		return nil
	}

	printf("%x\n", pubKey.SerializeUncompressed())
	return nil
}

func (cmd *pubkeyCmd) Usage() string {
	return "<private-key>"
}
