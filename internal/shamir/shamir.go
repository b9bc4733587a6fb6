// Package shamir implements (k,n) Shamir Secret Sharing over a streamed
// byte sequence: each byte position of the input defines an independent
// degree-(k-1) polynomial over GF(2^8) whose constant term is that byte;
// share j stores the polynomial evaluated at its x. Any k shares recover
// the polynomial (via Lagrange interpolation at 0, hence the secret); any
// k-1 reveal nothing.
package shamir

import (
	"crypto/rand"
	"fmt"
	"io"

	ierr "github.com/lcrostarosa/shamirida/internal/errors"
	"github.com/lcrostarosa/shamirida/internal/field"
	"github.com/lcrostarosa/shamirida/internal/lagrange"
	"github.com/lcrostarosa/shamirida/internal/partition"
)

// chunkSize bounds how many bytes of the secret are processed, and how
// much fresh randomness is drawn, per iteration.
const chunkSize = 512

// ErrContractViolation is returned for malformed parameters: threshold
// below 2, more shares requested than outputs/inputs provided, or bad
// share indices (delegated to partition.ValidateIndices).
var ErrContractViolation = ierr.ContractViolation

// Splitter splits a secret into len(outputs) shares requiring K of them to
// reconstruct. Rand is the CSPRNG used for polynomial coefficients; if nil,
// crypto/rand.Reader is used.
type Splitter struct {
	K    int
	Rand io.Reader
}

var _ partition.Splitter = Splitter{}

// Split reads the secret from r and writes one share per output.
func (s Splitter) Split(r io.Reader, outputs []partition.OutputPartition) error {
	n := len(outputs)
	if s.K < 2 {
		return fmt.Errorf("%w: threshold must be at least 2, got %d", ErrContractViolation, s.K)
	}
	if n < s.K {
		return fmt.Errorf("%w: %d outputs is fewer than threshold %d", ErrContractViolation, n, s.K)
	}
	if n > 255 {
		return fmt.Errorf("%w: %d outputs exceeds 255", ErrContractViolation, n)
	}

	xs := make([]byte, n)
	for i, o := range outputs {
		xs[i] = o.X
	}
	if err := partition.ValidateIndices(xs); err != nil {
		return fmt.Errorf("%w: %v", ErrContractViolation, err)
	}

	rng := s.Rand
	if rng == nil {
		rng = rand.Reader
	}

	plainBuf := make([]byte, chunkSize)
	shareBufs := make([][]byte, n)
	for i := range shareBufs {
		shareBufs[i] = make([]byte, chunkSize)
	}
	coeff := make([]byte, chunkSize)
	xPow := make([]byte, n)

	for {
		read, err := partition.ReadFull(r, plainBuf)
		if err != nil {
			return err
		}
		if read == 0 {
			return nil
		}
		chunk := plainBuf[:read]

		for i := range shareBufs {
			copy(shareBufs[i][:read], chunk)
		}
		for j := range outputs {
			xPow[j] = outputs[j].X
		}
		for d := 1; d < s.K; d++ {
			if _, err := io.ReadFull(rng, coeff[:read]); err != nil {
				return fmt.Errorf("shamir: reading random coefficients: %w", err)
			}
			for j := range outputs {
				field.AddScaledMultiword(shareBufs[j][:read], coeff[:read], xPow[j])
				xPow[j] = field.Mult(xPow[j], outputs[j].X)
			}
		}

		for i, o := range outputs {
			if _, err := o.W.Write(shareBufs[i][:read]); err != nil {
				return err
			}
		}

		if read < chunkSize {
			return nil
		}
	}
}

// Joiner reconstructs a secret from k or more Shamir shares.
type Joiner struct{}

var _ partition.Joiner = Joiner{}

// Join reads len(inputs) shares (inputs must carry distinct, nonzero x
// values) and writes the reconstructed secret to w.
func (Joiner) Join(inputs []partition.InputPartition, w io.Writer) error {
	if len(inputs) < 2 {
		return fmt.Errorf("%w: need at least 2 shares, got %d", ErrContractViolation, len(inputs))
	}

	xs := make([]byte, len(inputs))
	for i, in := range inputs {
		xs[i] = in.X
	}
	if err := partition.ValidateIndices(xs); err != nil {
		return fmt.Errorf("%w: %v", ErrContractViolation, err)
	}

	lambda := lagrange.Eval(xs, []byte{0})[0]

	bufs := make([][]byte, len(inputs))
	for i := range bufs {
		bufs[i] = make([]byte, chunkSize)
	}
	out := make([]byte, chunkSize)

	for {
		minRead := chunkSize
		for i, in := range inputs {
			n, err := partition.ReadFull(in.R, bufs[i])
			if err != nil {
				return err
			}
			if n < minRead {
				minRead = n
			}
		}
		if minRead == 0 {
			return nil
		}

		for p := 0; p < minRead; p++ {
			out[p] = 0
		}
		for i := range inputs {
			field.AddScaledMultiword(out[:minRead], bufs[i][:minRead], lambda[i])
		}

		if _, err := w.Write(out[:minRead]); err != nil {
			return err
		}

		if minRead < chunkSize {
			return nil
		}
	}
}
