// Package blockmode defines the opaque block-cipher contract the streaming
// adapters in internal/blockstream are built against, and ships one
// concrete instance, AES-256-CBC. Swapping in another block/mode pair only
// requires a new Mode implementation; nothing in blockstream depends on AES
// specifically.
package blockmode

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// Mode is a stateful block-mode transform: given a key and IV, it encrypts
// or decrypts whole blocks in place, strictly in the order they're
// presented (CBC/CFB-style modes carry chaining state across calls).
type Mode interface {
	BlockSize() int
	KeySize() int
	IVSize() int
	// EncryptBlocks encrypts blocks in place. len(blocks) must be a
	// nonzero multiple of BlockSize().
	EncryptBlocks(blocks []byte)
	// DecryptBlocks decrypts blocks in place. len(blocks) must be a
	// nonzero multiple of BlockSize().
	DecryptBlocks(blocks []byte)
}

// Factory constructs a Mode from a freshly generated key and IV of the
// sizes the mode demands.
type Factory func(key, iv []byte) (Mode, error)

// AES256CBCKeySize and AES256CBCIVSize are the KEY||IV sizes AES256CBC
// consumes: a 32-byte AES-256 key and a 16-byte (one AES block) IV.
const (
	AES256CBCKeySize = 32
	AES256CBCIVSize  = aes.BlockSize
)

// AES256CBC is the Factory for AES-256 in CBC mode.
func AES256CBC(key, iv []byte) (Mode, error) {
	if len(key) != AES256CBCKeySize {
		return nil, fmt.Errorf("blockmode: AES-256 key must be %d bytes, got %d", AES256CBCKeySize, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != block.BlockSize() {
		return nil, fmt.Errorf("blockmode: IV must be %d bytes, got %d", block.BlockSize(), len(iv))
	}
	return &aesCBC{
		block: block,
		enc:   cipher.NewCBCEncrypter(block, iv),
		dec:   cipher.NewCBCDecrypter(block, iv),
	}, nil
}

type aesCBC struct {
	block cipher.Block
	enc   cipher.BlockMode
	dec   cipher.BlockMode
}

func (a *aesCBC) BlockSize() int { return a.block.BlockSize() }
func (a *aesCBC) KeySize() int   { return AES256CBCKeySize }
func (a *aesCBC) IVSize() int    { return a.block.BlockSize() }

func (a *aesCBC) EncryptBlocks(blocks []byte) { a.enc.CryptBlocks(blocks, blocks) }
func (a *aesCBC) DecryptBlocks(blocks []byte) { a.dec.CryptBlocks(blocks, blocks) }
