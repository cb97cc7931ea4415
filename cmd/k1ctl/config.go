package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btclog"

	"github.com/athanorlabs/go-secp256k1"
	"github.com/athanorlabs/go-secp256k1/curve"
	"github.com/athanorlabs/go-secp256k1/types"
)

const (
	defaultDebugLevel = "info"
)

// config defines the global configuration options for k1ctl.
//
// See setupGlobalConfig for details on the validation process.
type config struct {
	Curve      string `short:"c" long:"curve" description:"Group arithmetic backend used by pubkey and ecdh {decred, gnark, native}"`
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
}

// cfg holds the global options of the invocation being executed.
var cfg *config

func defaultConfig() *config {
	return &config{
		Curve:      curve.DefaultName,
		DebugLevel: defaultDebugLevel,
	}
}

// setupGlobalConfig validates the global options and applies the requested
// logging level to every subsystem logger.
func setupGlobalConfig() error {
	level, ok := btclog.LevelFromString(cfg.DebugLevel)
	if !ok {
		str := "the specified debug level [%v] is invalid"
		return fmt.Errorf(str, cfg.DebugLevel)
	}
	setLogLevels(level)

	if _, err := curve.New(cfg.Curve); err != nil {
		return err
	}

	return nil
}

// activeCurve returns the backend selected with --curve.
func activeCurve() (types.Curve, error) {
	return curve.New(cfg.Curve)
}

// decodeHexArg decodes a hex encoded positional argument, tolerating an
// optional 0x prefix.
func decodeHexArg(name, arg string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(arg, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}

	return b, nil
}

func parsePrivKeyArg(arg string) (*secp256k1.PrivateKey, error) {
	b, err := decodeHexArg("private key", arg)
	if err != nil {
		return nil, err
	}

	privKey, err := secp256k1.PrivKeyFromBytes(b)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	return privKey, nil
}

func parsePubKeyArg(arg string) (*secp256k1.PublicKey, error) {
	b, err := decodeHexArg("public key", arg)
	if err != nil {
		return nil, err
	}

	pubKey, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, fmt.Errorf("invalid public key: %w", err)
	}

	return pubKey, nil
}

// messageArg returns the bytes of a message argument, which is either the
// literal text or, with asHex, its hex decoding.
func messageArg(arg string, asHex bool) ([]byte, error) {
	if asHex {
		return decodeHexArg("message", arg)
	}

	return []byte(arg), nil
}
