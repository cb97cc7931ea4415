package main

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/athanorlabs/go-secp256k1/schnorr"
)

type schnorrSignCmd struct {
	Hex     bool   `long:"hex" description:"The message is hex encoded"`
	AuxRand string `long:"aux" description:"Hex encoded 32 bytes of auxiliary randomness (random when omitted)"`
}

func (cmd *schnorrSignCmd) Execute(args []string) error {
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
	msg, err := messageArg(args[1], cmd.Hex)
	if err != nil {
		return err
	}

	var aux [32]byte
	if cmd.AuxRand != "" {
		b, err := decodeHexArg("auxiliary randomness", cmd.AuxRand)
		if err != nil {
			return err
		}
		if len(b) != len(aux) {
			return fmt.Errorf("auxiliary randomness must be 32 bytes, got %d", len(b))
		}
		copy(aux[:], b)
	} else if _, err := io.ReadFull(rand.Reader, aux[:]); err != nil {
		return err
	}

	sig, err := schnorr.Sign(privKey, msg, aux)
	if err != nil {
		return err
	}

	printf("%x\n", sig.Serialize())
	return nil
}

func (cmd *schnorrSignCmd) Usage() string {
	return "<private-key> <message>"
}

type schnorrVerifyCmd struct {
	Hex bool `long:"hex" description:"The message is hex encoded"`
}

func (cmd *schnorrVerifyCmd) Execute(args []string) error {
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	if len(args) != 3 {
		return errors.New("required public key, message and signature parameters not specified")
	}
	pubKey, err := decodeHexArg("public key", args[0])
	if err != nil {
		return err
	}
	msg, err := messageArg(args[1], cmd.Hex)
	if err != nil {
		return err
	}
	sig, err := decodeHexArg("signature", args[2])
	if err != nil {
		return err
	}

	if !schnorr.VerifyBytes(pubKey, msg, sig) {
		printf("false\n")
		return errVerifyFailed
	}

	printf("true\n")
	return nil
}

func (cmd *schnorrVerifyCmd) Usage() string {
	return "<xonly-public-key> <message> <signature>"
}
