package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btclog"
	flags "github.com/jessevdk/go-flags"

	"github.com/athanorlabs/go-secp256k1/ecdsa"
	"github.com/athanorlabs/go-secp256k1/schnorr"
)

var (
	// out receives command results.  Logs go to logWriter.
	out       io.Writer = os.Stdout
	logWriter io.Writer = os.Stderr

	log        btclog.Logger
	ecdsaLog   btclog.Logger
	schnorrLog btclog.Logger

	// errVerifyFailed is returned by the verify commands when the signature
	// does not verify, so the process exits with a non-zero status.
	errVerifyFailed = errors.New("signature verification failed")
)

// setupLoggers creates one subsystem logger per package on a shared backend.
func setupLoggers() {
	backendLogger := btclog.NewBackend(logWriter)
	log = backendLogger.Logger("K1CT")
	ecdsaLog = backendLogger.Logger("ECDS")
	schnorrLog = backendLogger.Logger("SCHN")

	ecdsa.UseLogger(ecdsaLog)
	schnorr.UseLogger(schnorrLog)
}

func setLogLevels(level btclog.Level) {
	log.SetLevel(level)
	ecdsaLog.SetLevel(level)
	schnorrLog.SetLevel(level)
}

// newParser builds the command line parser with a fresh set of options.
func newParser() *flags.Parser {
	cfg = defaultConfig()

	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	parserFlags := flags.Options(flags.HelpFlag | flags.PassDoubleDash)
	parser := flags.NewNamedParser(appName, parserFlags)
	parser.AddGroup("Global Options", "", cfg)
	parser.AddCommand("keygen",
		"Generate a new private key",
		"Generate a new private key and print it along with its public key.",
		&keygenCmd{})
	parser.AddCommand("pubkey",
		"Derive the public key of a private key", "",
		&pubkeyCmd{})
	parser.AddCommand("ecdsa-sign",
		"Create an ECDSA signature",
		"Create a DER (or compact) ECDSA signature.  The message is hashed "+
			"with SHA-256 unless --prehashed is given.",
		&ecdsaSignCmd{})
	parser.AddCommand("ecdsa-verify",
		"Verify an ECDSA signature", "",
		&ecdsaVerifyCmd{})
	parser.AddCommand("schnorr-sign",
		"Create a BIP-340 Schnorr signature", "",
		&schnorrSignCmd{})
	parser.AddCommand("schnorr-verify",
		"Verify a BIP-340 Schnorr signature", "",
		&schnorrVerifyCmd{})
	parser.AddCommand("ecdh",
		"Compute an ECDH shared secret",
		"Compute the x coordinate of the shared point between a private key "+
			"and a peer public key.",
		&ecdhCmd{})
	parser.AddCommand("dleq-prove",
		"Prove that x*G and x*H share the secret x", "",
		&dleqProveCmd{})
	parser.AddCommand("dleq-verify",
		"Verify a discrete log equality proof", "",
		&dleqVerifyCmd{})

	return parser
}

// run parses args and invokes the Execute function of the selected command.
func run(args []string) error {
	setupLoggers()

	parser := newParser()
	if _, err := parser.ParseArgs(args); err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			parser.WriteHelp(logWriter)
		} else if !errors.Is(err, errVerifyFailed) {
			log.Error(err)
		}

		return err
	}

	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

func printf(format string, a ...interface{}) {
	fmt.Fprintf(out, format, a...)
}
