package main

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	flags "github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"

	"github.com/athanorlabs/go-secp256k1"
	"github.com/athanorlabs/go-secp256k1/curve"
	"github.com/athanorlabs/go-secp256k1/ecdsa"
)

const (
	keyOne      = "0000000000000000000000000000000000000000000000000000000000000001"
	keyThree    = "0000000000000000000000000000000000000000000000000000000000000003"
	encodedG    = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	uncompressG = "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
		"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
	zero32 = "0000000000000000000000000000000000000000000000000000000000000000"
)

// runCmd executes k1ctl with args and returns what it printed.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	prevOut, prevLog := out, logWriter
	out, logWriter = &stdout, &stderr
	t.Cleanup(func() {
		out, logWriter = prevOut, prevLog
	})

	err := run(args)
	return strings.TrimSpace(stdout.String()), err
}

func TestKeygen(t *testing.T) {
	output, err := runCmd(t, "keygen")
	require.NoError(t, err)

	lines := strings.Split(output, "\n")
	require.Len(t, lines, 3)

	privHex := strings.TrimSpace(strings.TrimPrefix(lines[0], "private:"))
	pubHex := strings.TrimSpace(strings.TrimPrefix(lines[1], "public:"))

	priv, err := secp256k1.PrivKeyFromBytes(mustHex(t, privHex))
	require.NoError(t, err)
	require.Equal(t, hex.EncodeToString(priv.PubKey().SerializeCompressed()), pubHex)
}

func TestPubkey(t *testing.T) {
	for _, name := range curve.Names() {
		t.Run(name, func(t *testing.T) {
			output, err := runCmd(t, "--curve", name, "pubkey", keyOne)
			require.NoError(t, err)
			require.Equal(t, encodedG, output)

			output, err = runCmd(t, "--curve", name, "pubkey", "--uncompressed", keyOne)
			require.NoError(t, err)
			require.Equal(t, uncompressG, output)

			output, err = runCmd(t, "--curve", name, "pubkey", "--xonly", keyThree)
			require.NoError(t, err)
			require.Equal(t, "f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9", output)

			_, err = runCmd(t, "--curve", name, "pubkey", zero32)
			require.Error(t, err)
		})
	}
}

func TestECDSASignKnownVector(t *testing.T) {
	hash := chainhash.DoubleHashB([]byte("test message"))
	output, err := runCmd(t, "ecdsa-sign", "--prehashed",
		"22a47fa09a223f2aa079edf85a7c2d4f8720ee63e502ee2869afab7de234b80c",
		hex.EncodeToString(hash))
	require.NoError(t, err)

	want := "304402201008e236fa8cd0f25df4482dddbb622e8a8b26ef0ba731719458de3ccd93805b" +
		"022032f8ebe514ba5f672466eba334639282616bb3c2f0ab09998037513d1f9e3d6d"
	require.Equal(t, want, output)
}

func TestECDSASignVerify(t *testing.T) {
	priv, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)
	privHex := hex.EncodeToString(priv.Serialize())
	pubHex := hex.EncodeToString(priv.PubKey().SerializeCompressed())

	for _, compact := range []bool{false, true} {
		args := []string{"ecdsa-sign"}
		if compact {
			args = append(args, "--compact")
		}
		sig, err := runCmd(t, append(args, privHex, "hello world")...)
		require.NoError(t, err)
		if compact {
			require.Len(t, sig, 128)
		}

		output, err := runCmd(t, "ecdsa-verify", "--strict", pubHex, "hello world", sig)
		require.NoError(t, err)
		require.Equal(t, "true", output)

		output, err = runCmd(t, "ecdsa-verify", pubHex, "hello world!", sig)
		require.ErrorIs(t, err, errVerifyFailed)
		require.Equal(t, "false", output)
	}

	output, err := runCmd(t, "ecdsa-verify", pubHex, "hello world", "3006020101020101")
	require.ErrorIs(t, err, errVerifyFailed)
	require.Equal(t, "false", output)

	output, err = runCmd(t, "ecdsa-verify", pubHex, "hello world", "30")
	require.ErrorIs(t, err, errVerifyFailed)
	require.Equal(t, "false", output)
}

func TestParseSignatureArg(t *testing.T) {
	// r and s of 29 bytes each give a DER encoding of exactly 64 bytes.
	component := bytes.Repeat([]byte{0x01}, 29)
	der := append([]byte{0x30, 0x3e, 0x02, 0x1d}, component...)
	der = append(der, 0x02, 0x1d)
	der = append(der, component...)
	require.Len(t, der, ecdsa.CompactSigLen)

	want := secp256k1.NewScalar(new(big.Int).SetBytes(component))
	sig, err := parseSignatureArg(der, false)
	require.NoError(t, err)
	require.True(t, sig.R().Equals(want))
	require.True(t, sig.S().Equals(want))
	require.Equal(t, der, sig.Serialize())

	// Forcing the compact encoding reads the same bytes as r || s.
	sig, err = parseSignatureArg(der, true)
	require.NoError(t, err)
	require.False(t, sig.R().Equals(want))

	// A 64-byte input that is not DER falls back to the compact encoding.
	compact := make([]byte, ecdsa.CompactSigLen)
	compact[31] = 1
	compact[63] = 2
	sig, err = parseSignatureArg(compact, false)
	require.NoError(t, err)
	require.True(t, sig.R().Equals(secp256k1.ScalarFromUint64(1)))
	require.True(t, sig.S().Equals(secp256k1.ScalarFromUint64(2)))

	_, err = parseSignatureArg(compact[:63], false)
	require.ErrorIs(t, err, secp256k1.ErrMalformedDER)
}

func TestECDSASignOptions(t *testing.T) {
	plain, err := runCmd(t, "ecdsa-sign", keyOne, "msg")
	require.NoError(t, err)

	extra, err := runCmd(t, "ecdsa-sign", "--extra", strings.Repeat("ab", 32), keyOne, "msg")
	require.NoError(t, err)
	require.NotEqual(t, plain, extra)

	_, err = runCmd(t, "ecdsa-sign", "--extra", "abcd", keyOne, "msg")
	require.Error(t, err)

	_, err = runCmd(t, "ecdsa-sign", "--prehashed", keyOne, "abcd")
	require.Error(t, err)

	viaHex, err := runCmd(t, "ecdsa-sign", "--hex", keyOne, hex.EncodeToString([]byte("msg")))
	require.NoError(t, err)
	require.Equal(t, plain, viaHex)
}

func TestSchnorrSignVector(t *testing.T) {
	output, err := runCmd(t, "schnorr-sign", "--hex", "--aux", zero32, keyThree, zero32)
	require.NoError(t, err)
	require.Equal(t, "e907831f80848d1069a5371b402410364bdf1c5f8307b0084c55f1ce2dca8215"+
		"25f66a4a85ea8b71e482a74f382d2ce5ebeee8fdb2172f477df4900d310536c0", output)

	output, err = runCmd(t, "schnorr-verify", "--hex",
		"f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9", zero32, output)
	require.NoError(t, err)
	require.Equal(t, "true", output)
}

func TestSchnorrSignVerify(t *testing.T) {
	priv, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)
	privHex := hex.EncodeToString(priv.Serialize())

	xonly, err := runCmd(t, "pubkey", "--xonly", privHex)
	require.NoError(t, err)

	sig, err := runCmd(t, "schnorr-sign", privHex, "a message of any length")
	require.NoError(t, err)
	require.Len(t, sig, 128)

	output, err := runCmd(t, "schnorr-verify", xonly, "a message of any length", sig)
	require.NoError(t, err)
	require.Equal(t, "true", output)

	output, err = runCmd(t, "schnorr-verify", xonly, "another message", sig)
	require.ErrorIs(t, err, errVerifyFailed)
	require.Equal(t, "false", output)

	output, err = runCmd(t, "schnorr-verify", xonly, "a message of any length", sig[:64])
	require.ErrorIs(t, err, errVerifyFailed)
	require.Equal(t, "false", output)
}

func TestECDH(t *testing.T) {
	privA, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)
	privB, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)

	want, err := secp256k1.GenerateSharedSecret(privA, privB.PubKey())
	require.NoError(t, err)

	for _, name := range curve.Names() {
		t.Run(name, func(t *testing.T) {
			ab, err := runCmd(t, "--curve", name, "ecdh",
				hex.EncodeToString(privA.Serialize()),
				hex.EncodeToString(privB.PubKey().SerializeCompressed()))
			require.NoError(t, err)
			require.Equal(t, hex.EncodeToString(want), ab)

			ba, err := runCmd(t, "--curve", name, "ecdh",
				hex.EncodeToString(privB.Serialize()),
				hex.EncodeToString(privA.PubKey().SerializeUncompressed()))
			require.NoError(t, err)
			require.Equal(t, ab, ba)
		})
	}

	_, err = runCmd(t, "ecdh", keyOne, "020000000000000000000000000000000000000000000000000000000000000005")
	require.ErrorIs(t, err, secp256k1.ErrInvalidPoint)
}

func TestDLEQ(t *testing.T) {
	priv, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)
	privHex := hex.EncodeToString(priv.Serialize())

	for _, prover := range curve.Names() {
		proof, err := runCmd(t, "--curve", prover, "dleq-prove", privHex)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(proof, hex.EncodeToString(priv.PubKey().SerializeCompressed())))

		for _, verifier := range curve.Names() {
			output, err := runCmd(t, "--curve", verifier, "dleq-verify", proof)
			require.NoError(t, err)
			require.Equal(t, "true", output)
		}

		output, err := runCmd(t, "dleq-verify", proof[:len(proof)-2])
		require.ErrorIs(t, err, errVerifyFailed)
		require.Equal(t, "false", output)
	}
}

func TestGlobalConfigErrors(t *testing.T) {
	_, err := runCmd(t, "--curve", "p256", "pubkey", keyOne)
	require.Error(t, err)

	_, err = runCmd(t, "--debuglevel", "loud", "pubkey", keyOne)
	require.Error(t, err)

	_, err = runCmd(t, "pubkey")
	require.Error(t, err)

	_, err = runCmd(t, "pubkey", "zz")
	require.Error(t, err)

	_, err = runCmd(t, "--help")
	var flagsErr *flags.Error
	require.ErrorAs(t, err, &flagsErr)
	require.Equal(t, flags.ErrHelp, flagsErr.Type)
}

func TestDebugLogging(t *testing.T) {
	var stdout, stderr bytes.Buffer
	prevOut, prevLog := out, logWriter
	out, logWriter = &stdout, &stderr
	defer func() {
		out, logWriter = prevOut, prevLog
	}()

	err := run([]string{"--debuglevel", "debug", "--curve", "gnark", "pubkey", keyOne})
	require.NoError(t, err)
	require.Contains(t, stderr.String(), "[DBG] K1CT: Deriving public key with the gnark backend")
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}
