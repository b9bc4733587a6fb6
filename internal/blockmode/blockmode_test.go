package blockmode

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAES256CBCRoundTrip(t *testing.T) {
	key := make([]byte, AES256CBCKeySize)
	iv := make([]byte, AES256CBCIVSize)
	_, _ = rand.Read(key)
	_, _ = rand.Read(iv)

	enc, err := AES256CBC(key, iv)
	require.NoError(t, err)
	dec, err := AES256CBC(key, iv)
	require.NoError(t, err)

	plain := make([]byte, enc.BlockSize()*4)
	_, _ = rand.Read(plain)

	cipherText := append([]byte(nil), plain...)
	enc.EncryptBlocks(cipherText)
	assert.NotEqual(t, plain, cipherText)

	dec.DecryptBlocks(cipherText)
	assert.Equal(t, plain, cipherText)
}

func TestAES256CBCRejectsBadKeySize(t *testing.T) {
	_, err := AES256CBC(make([]byte, 16), make([]byte, AES256CBCIVSize))
	assert.Error(t, err)
}

func TestAES256CBCRejectsBadIVSize(t *testing.T) {
	_, err := AES256CBC(make([]byte, AES256CBCKeySize), make([]byte, 8))
	assert.Error(t, err)
}
