// Package blockstream turns a block-mode cipher (blockmode.Mode) into a
// byte-oriented stream: EncryptReadStream composes a padding reader with
// in-place block encryption so a caller can just Read() ciphertext;
// DecryptWriteStream buffers to block alignment, decrypts in place, and
// forwards through a padding writer so a caller can just Write()
// ciphertext and Flush() to recover the plaintext tail.
package blockstream

import (
	"fmt"
	"io"

	"github.com/lcrostarosa/shamirida/internal/blockmode"
	ierr "github.com/lcrostarosa/shamirida/internal/errors"
	"github.com/lcrostarosa/shamirida/internal/padding"
	"github.com/lcrostarosa/shamirida/internal/partition"
)

// ErrContractViolation marks an internal invariant violation: the padded
// reader handed back a read whose length wasn't a multiple of the cipher's
// block size. It should never trigger given a correct padding.Reader; it
// exists as a defensive check at the boundary between the two packages.
var ErrContractViolation = ierr.ContractViolation

// EncryptReadStream reads plaintext from an underlying reader, ISO 7816-4
// pads it, encrypts it block by block, and serves ciphertext to its own
// Read callers.
type EncryptReadStream struct {
	padded *padding.Reader
	mode   blockmode.Mode
	buf    []byte
	bufLen int
	pos    int
	eof    bool
}

// NewEncryptReadStream wraps r, pulling plaintext from it and serving
// ciphertext. mode must already be initialised with the key/IV to use.
func NewEncryptReadStream(r io.Reader, mode blockmode.Mode) *EncryptReadStream {
	bs := mode.BlockSize()
	scratchBlocks := 1024 / bs
	if scratchBlocks < 1 {
		scratchBlocks = 1
	}
	return &EncryptReadStream{
		padded: padding.NewReader(r, bs, padding.Pad),
		mode:   mode,
		buf:    make([]byte, scratchBlocks*bs),
	}
}

func (e *EncryptReadStream) Read(p []byte) (int, error) {
	for e.pos >= e.bufLen {
		if e.eof {
			return 0, io.EOF
		}
		n, err := partition.ReadFull(e.padded, e.buf)
		if n%e.mode.BlockSize() != 0 {
			return 0, fmt.Errorf("%w: padded reader returned %d bytes, not a multiple of block size %d", ErrContractViolation, n, e.mode.BlockSize())
		}
		if err != nil {
			return 0, err
		}
		if n > 0 {
			e.mode.EncryptBlocks(e.buf[:n])
		}
		e.bufLen = n
		e.pos = 0
		if n == 0 {
			e.eof = true
			return 0, io.EOF
		}
	}
	n := copy(p, e.buf[e.pos:e.bufLen])
	e.pos += n
	return n, nil
}

// DecryptWriteStream accepts ciphertext via Write, buffers it to block
// alignment, decrypts in place, and forwards the plaintext (with ISO
// 7816-4 padding stripped) to an underlying writer. Flush MUST be called
// exactly once, after the last Write, to release the final block.
type DecryptWriteStream struct {
	w    *padding.Writer
	mode blockmode.Mode
	buf  []byte
}

// NewDecryptWriteStream wraps w, the final plaintext sink. mode must
// already be initialised with the key/IV recovered for this stream.
func NewDecryptWriteStream(w io.Writer, mode blockmode.Mode) *DecryptWriteStream {
	bs := mode.BlockSize()
	return &DecryptWriteStream{
		w:    padding.NewWriter(w, bs, padding.Unpad),
		mode: mode,
		buf:  make([]byte, 0, 8*bs),
	}
}

func (d *DecryptWriteStream) Write(p []byte) (int, error) {
	bs := d.mode.BlockSize()
	d.buf = append(d.buf, p...)

	whole := len(d.buf) - (len(d.buf) % bs)
	if whole > 0 {
		blocks := append([]byte(nil), d.buf[:whole]...)
		d.mode.DecryptBlocks(blocks)
		if _, err := d.w.Write(blocks); err != nil {
			return 0, err
		}
		remaining := len(d.buf) - whole
		copy(d.buf, d.buf[whole:])
		d.buf = d.buf[:remaining]
	}
	return len(p), nil
}

// Flush requires that no partial block remains buffered, then releases the
// final block (with padding stripped) to the underlying writer.
func (d *DecryptWriteStream) Flush() error {
	if len(d.buf) != 0 {
		return fmt.Errorf("%w: %d partial bytes remain at flush", padding.ErrInvalidData, len(d.buf))
	}
	return d.w.Flush()
}
