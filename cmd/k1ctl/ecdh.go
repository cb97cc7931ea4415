package main

import (
	"errors"

	"github.com/athanorlabs/go-secp256k1"
)

type ecdhCmd struct {
	Point bool `long:"point" description:"Print the compressed shared point instead of its x coordinate"`
}

func (cmd *ecdhCmd) Execute(args []string) error {
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	if len(args) != 2 {
		return errors.New("required private key and peer public key parameters not specified")
	}
	privKey, err := parsePrivKeyArg(args[0])
	if err != nil {
		return err
	}
	pubKey, err := parsePubKeyArg(args[1])
	if err != nil {
		return err
	}

	c, err := activeCurve()
	if err != nil {
		return err
	}
	d, err := c.DecodeToScalar(privKey.Serialize())
	if err != nil {
		return err
	}
	peer, err := c.DecodeToPoint(pubKey.SerializeCompressed())
	if err != nil {
		return err
	}

	log.Debugf("Computing shared secret with the %s backend", c.Name())
	shared := c.ScalarMul(d, peer)
	if shared.IsZero() {
		return secp256k1.MakeError(secp256k1.ErrInvalidPoint,
			"shared point is the point at infinity")
	}

	encoded := shared.Encode()
	if cmd.Point {
		printf("%x\n", encoded)
		return nil
	}
	printf("%x\n", encoded[1:])
	return nil
}

func (cmd *ecdhCmd) Usage() string {
	return "<private-key> <peer-public-key>"
}
