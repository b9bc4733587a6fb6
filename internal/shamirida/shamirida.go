// Package shamirida composes Shamir secret sharing, block-cipher streaming,
// and information dispersal into the hybrid (k,n) scheme: a random
// symmetric key and IV are Shamir-split (cheap, but O(|M|) per share); the
// plaintext is encrypted and the ciphertext is IDA-dispersed (O(|M|/k) per
// share). Every share therefore carries the full KEY‖IV share followed by
// its slice of the ciphertext; the 2-byte (k, x) share header is a file
// concern and is written by the caller, not by this package.
package shamirida

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/lcrostarosa/shamirida/internal/blockmode"
	"github.com/lcrostarosa/shamirida/internal/blockstream"
	ierr "github.com/lcrostarosa/shamirida/internal/errors"
	"github.com/lcrostarosa/shamirida/internal/ida"
	"github.com/lcrostarosa/shamirida/internal/partition"
	"github.com/lcrostarosa/shamirida/internal/shamir"
)

// ErrContractViolation marks malformed parameters or share disagreement at
// a layer this package is directly responsible for (as opposed to errors
// bubbled up unchanged from shamir/ida/blockstream).
var ErrContractViolation = ierr.ContractViolation

// Scheme parameterises the hybrid split/join over a concrete block mode
// factory. K is the reconstruction threshold shared by both the Shamir and
// IDA layers.
type Scheme struct {
	K       int
	NewMode blockmode.Factory
	Rand    io.Reader
}

var _ partition.Splitter = Scheme{}
var _ partition.Joiner = Scheme{}

func (s Scheme) rng() io.Reader {
	if s.Rand != nil {
		return s.Rand
	}
	return rand.Reader
}

// keyIVSize probes the factory for the key/IV sizes it expects.
func (s Scheme) keyIVSize() (int, int, error) {
	probe, err := s.NewMode(make([]byte, blockmode.AES256CBCKeySize), make([]byte, blockmode.AES256CBCIVSize))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: could not size key/IV from mode factory: %v", ErrContractViolation, err)
	}
	return probe.KeySize(), probe.IVSize(), nil
}

// Split samples a fresh KEY‖IV, Shamir-splits it onto the front of every
// output, then streams the AES-encrypted, IDA-dispersed ciphertext onto the
// remainder of each output. Because the two splits run in sequence against
// the same writers, the key share bytes always precede the cipher share
// bytes in every output file, matching the on-disk layout.
func (s Scheme) Split(r io.Reader, outputs []partition.OutputPartition) error {
	keySize, ivSize, err := s.keyIVSize()
	if err != nil {
		return err
	}

	keyIV := make([]byte, keySize+ivSize)
	if _, err := io.ReadFull(s.rng(), keyIV); err != nil {
		return fmt.Errorf("shamirida: generating key/IV: %w", err)
	}

	shamirSplitter := shamir.Splitter{K: s.K, Rand: s.rng()}
	if err := shamirSplitter.Split(bytes.NewReader(keyIV), outputs); err != nil {
		return fmt.Errorf("shamirida: splitting key/IV: %w", err)
	}

	mode, err := s.NewMode(keyIV[:keySize], keyIV[keySize:])
	if err != nil {
		return fmt.Errorf("shamirida: initialising block mode: %w", err)
	}

	encStream := blockstream.NewEncryptReadStream(r, mode)
	idaSplitter := ida.Splitter{K: s.K}
	return idaSplitter.Split(encStream, outputs)
}

// Join recovers KEY‖IV from the head of each input, then IDA-joins and
// decrypts the remainder into w, flushing to release the final block.
func (s Scheme) Join(inputs []partition.InputPartition, w io.Writer) error {
	keySize, ivSize, err := s.keyIVSize()
	if err != nil {
		return err
	}
	keyIVLen := keySize + ivSize

	keyInputs := make([]partition.InputPartition, len(inputs))
	for i, in := range inputs {
		keyInputs[i] = partition.InputPartition{X: in.X, R: io.LimitReader(in.R, int64(keyIVLen))}
	}

	var keyIV bytes.Buffer
	shamirJoiner := shamir.Joiner{}
	if err := shamirJoiner.Join(keyInputs, &keyIV); err != nil {
		return fmt.Errorf("shamirida: recovering key/IV: %w", err)
	}
	if keyIV.Len() != keyIVLen {
		return fmt.Errorf("%w: recovered key/IV is %d bytes, want %d", ErrContractViolation, keyIV.Len(), keyIVLen)
	}

	mode, err := s.NewMode(keyIV.Bytes()[:keySize], keyIV.Bytes()[keySize:])
	if err != nil {
		return fmt.Errorf("shamirida: initialising block mode: %w", err)
	}

	decStream := blockstream.NewDecryptWriteStream(w, mode)
	idaJoiner := ida.Joiner{K: s.K}
	if err := idaJoiner.Join(inputs, decStream); err != nil {
		return err
	}
	return decStream.Flush()
}
