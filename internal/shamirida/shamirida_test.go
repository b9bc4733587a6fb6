package shamirida

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lcrostarosa/shamirida/internal/blockmode"
	"github.com/lcrostarosa/shamirida/internal/partition"
)

func TestSplitJoin2of3(t *testing.T) {
	// S4: ShamirIda 2-of-3, AES-256-CBC, ISO 7816-4.
	secret := []byte("hello world")
	xs := []byte{1, 2, 3}
	scheme := Scheme{K: 2, NewMode: blockmode.AES256CBC}

	shares, err := partition.SplitInMemory(scheme, secret, xs)
	require.NoError(t, err)

	// len(secret) == 11, AES block size 16: ISO 7816-4 pads it up to one
	// 16-byte ciphertext block. The k=2 IDA layer pads that again to a
	// multiple of 2; 16 is already aligned, so a full 2-byte padding row is
	// added (18 bytes), which disperses to 18/2 == 9 bytes per share.
	const wantCipherShareLen = 9
	wantShareLen := blockmode.AES256CBCKeySize + blockmode.AES256CBCIVSize + wantCipherShareLen
	for _, x := range xs {
		assert.Len(t, shares[x], wantShareLen)
	}

	for _, pair := range [][2]byte{{1, 2}, {1, 3}, {2, 3}} {
		got, err := partition.JoinInMemory(scheme, shares, pair[:])
		require.NoError(t, err, "pair %v", pair)
		assert.Equal(t, secret, got, "pair %v", pair)
	}
}

func TestSplitJoinRoundTripVariousLengths(t *testing.T) {
	xs := []byte{1, 2, 3, 4}
	scheme := Scheme{K: 3, NewMode: blockmode.AES256CBC}

	for _, l := range []int{0, 1, 15, 16, 17, 1000} {
		secret := make([]byte, l)
		for i := range secret {
			secret[i] = byte(i)
		}
		shares, err := partition.SplitInMemory(scheme, secret, xs)
		require.NoError(t, err, "length %d", l)
		got, err := partition.JoinInMemory(scheme, shares, []byte{2, 3, 4})
		require.NoError(t, err, "length %d", l)
		assert.Equal(t, secret, got, "length %d", l)
	}
}

func TestSharesDifferFromSecret(t *testing.T) {
	secret := []byte("a shared secret key recovery path")
	scheme := Scheme{K: 2, NewMode: blockmode.AES256CBC}
	shares, err := partition.SplitInMemory(scheme, secret, []byte{1, 2, 3})
	require.NoError(t, err)

	for _, s := range shares {
		assert.NotEqual(t, secret, s)
	}
}

func TestJoinRejectsKeyShareLengthMismatch(t *testing.T) {
	scheme := Scheme{K: 2, NewMode: blockmode.AES256CBC}
	shares, err := partition.SplitInMemory(scheme, []byte("payload"), []byte{1, 2, 3})
	require.NoError(t, err)

	truncated := map[byte][]byte{
		1: shares[1][:10],
		2: shares[2][:10],
	}
	var out bytes.Buffer
	inputs := []partition.InputPartition{
		{X: 1, R: bytes.NewReader(truncated[1])},
		{X: 2, R: bytes.NewReader(truncated[2])},
	}
	err = scheme.Join(inputs, &out)
	assert.Error(t, err)
}
