package secp256k1

import (
	"bytes"
	"crypto/rand"
	"testing"

	dcrsecp "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/require"
)

func TestPrivKeyFromBytes(t *testing.T) {
	_, err := PrivKeyFromBytes(make([]byte, 32))
	require.ErrorIs(t, err, ErrInvalidScalar)

	_, err = PrivKeyFromBytes(hexToBytes("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"))
	require.ErrorIs(t, err, ErrInvalidScalar)

	_, err = PrivKeyFromBytes(make([]byte, PrivKeyBytesLen-1))
	require.ErrorIs(t, err, ErrInvalidScalar)

	_, err = PrivKeyFromBytes(make([]byte, PrivKeyBytesLen+1))
	require.ErrorIs(t, err, ErrInvalidScalar)

	_, err = NewPrivateKey(&Scalar{})
	require.ErrorIs(t, err, ErrInvalidScalar)

	raw := hexToBytes("0000000000000000000000000000000000000000000000000000000000000003")
	priv, err := PrivKeyFromBytes(raw)
	require.NoError(t, err)
	require.Equal(t, raw, priv.Serialize())
	require.Len(t, priv.Serialize(), PrivKeyBytesLen)
	require.True(t, priv.PubKey().Point().Equals(threeG))
}

func TestPubKeyMatchesDecred(t *testing.T) {
	for i := 0; i < 8; i++ {
		priv, err := GeneratePrivateKey()
		require.NoError(t, err)

		want := dcrsecp.PrivKeyFromBytes(priv.Serialize()).PubKey()
		require.Equal(t, want.SerializeCompressed(), priv.PubKey().SerializeCompressed())
		require.Equal(t, want.SerializeUncompressed(), priv.PubKey().SerializeUncompressed())
	}
}

func TestGeneratePrivateKeyFromRand(t *testing.T) {
	seed := bytes.Repeat([]byte{0x11}, 32)
	priv, err := GeneratePrivateKeyFromRand(bytes.NewReader(seed))
	require.NoError(t, err)
	require.Equal(t, seed, priv.Serialize())

	_, err = GeneratePrivateKeyFromRand(bytes.NewReader(seed[:4]))
	require.Error(t, err)
}

func TestParsePubKey(t *testing.T) {
	priv, err := GeneratePrivateKeyFromRand(rand.Reader)
	require.NoError(t, err)
	pub := priv.PubKey()

	parsed, err := ParsePubKey(pub.SerializeCompressed())
	require.NoError(t, err)
	require.True(t, parsed.IsEqual(pub))

	parsed, err = ParsePubKey(pub.SerializeUncompressed())
	require.NoError(t, err)
	require.True(t, parsed.IsEqual(pub))
	require.True(t, parsed.X().Equals(pub.X()))
	require.True(t, parsed.Y().Equals(pub.Y()))

	_, err = ParsePubKey([]byte{0x00})
	require.ErrorIs(t, err, ErrInvalidPoint)

	_, err = ParsePubKey(pub.SerializeCompressed()[:20])
	require.ErrorIs(t, err, ErrInvalidPoint)
}

func TestNewPublicKey(t *testing.T) {
	_, err := NewPublicKey(Infinity())
	require.ErrorIs(t, err, ErrInvalidPoint)

	pub, err := NewPublicKey(Generator())
	require.NoError(t, err)
	require.True(t, pub.Point().Equals(Generator()))
}
