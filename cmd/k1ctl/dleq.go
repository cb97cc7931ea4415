package main

import (
	"errors"

	"github.com/athanorlabs/go-secp256k1/dleq"
)

type dleqProveCmd struct{}

func (cmd *dleqProveCmd) Execute(args []string) error {
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	if len(args) != 1 {
		return errors.New("required private key parameter not specified")
	}
	privKey, err := parsePrivKeyArg(args[0])
	if err != nil {
		return err
	}

	c, err := activeCurve()
	if err != nil {
		return err
	}
	x, err := c.DecodeToScalar(privKey.Serialize())
	if err != nil {
		return err
	}

	proof, err := dleq.NewProof(c, x)
	if err != nil {
		return err
	}

	printf("%x\n", proof.Serialize())
	return nil
}

func (cmd *dleqProveCmd) Usage() string {
	return "<private-key>"
}

type dleqVerifyCmd struct{}

func (cmd *dleqVerifyCmd) Execute(args []string) error {
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	if len(args) != 1 {
		return errors.New("required proof parameter not specified")
	}
	b, err := decodeHexArg("proof", args[0])
	if err != nil {
		return err
	}

	c, err := activeCurve()
	if err != nil {
		return err
	}

	proof := new(dleq.Proof)
	if err := proof.Deserialize(c, b); err != nil {
		log.Debugf("Unable to parse proof: %v", err)
		printf("false\n")
		return errVerifyFailed
	}
	if err := proof.Verify(c); err != nil {
		log.Debugf("Proof verification failed: %v", err)
		printf("false\n")
		return errVerifyFailed
	}

	printf("true\n")
	return nil
}

func (cmd *dleqVerifyCmd) Usage() string {
	return "<proof>"
}
