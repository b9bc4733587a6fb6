// Package ida implements (k,n) Rabin Information Dispersal over GF(2^8):
// plaintext bytes are grouped into k-byte rows, each row interpolated as a
// degree ≤ k-1 polynomial through the fixed data points (0,...,k-1), and
// each share stores one evaluation of that polynomial per row. Unlike
// Shamir sharing, a share is 1/k the size of the row it was built from.
package ida

import (
	"fmt"
	"io"

	ierr "github.com/lcrostarosa/shamirida/internal/errors"
	"github.com/lcrostarosa/shamirida/internal/field"
	"github.com/lcrostarosa/shamirida/internal/lagrange"
	"github.com/lcrostarosa/shamirida/internal/padding"
	"github.com/lcrostarosa/shamirida/internal/partition"
)

// ErrContractViolation marks malformed parameters: threshold below 2, more
// shares requested than outputs/inputs provided, or bad share indices.
var ErrContractViolation = ierr.ContractViolation

// dataXs returns the fixed data points [0, 1, ..., k-1] that index plaintext
// bytes within a row.
func dataXs(k int) []byte {
	xs := make([]byte, k)
	for i := range xs {
		xs[i] = byte(i)
	}
	return xs
}

// Splitter disperses a byte stream into len(outputs) shares requiring K of
// them to reconstruct. The input is padded (ISO 7816-4) to a multiple of K
// bytes before rows are formed.
type Splitter struct {
	K int
}

var _ partition.Splitter = Splitter{}

// Split reads the plaintext from r, pads it to a row boundary, and writes
// one byte per row per output.
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

	lam := lagrange.Eval(dataXs(s.K), xs) // n x k

	padded := padding.NewReader(r, s.K, padding.Pad)
	row := make([]byte, s.K)
	shareByte := make([]byte, n)

	for {
		read, err := partition.ReadFull(padded, row)
		if err != nil {
			return err
		}
		if read == 0 {
			return nil
		}
		if read != s.K {
			return fmt.Errorf("%w: padded row length %d is not a multiple of %d", padding.ErrInvalidData, read, s.K)
		}

		for j := range outputs {
			var acc byte
			for i := 0; i < s.K; i++ {
				acc = field.Add(acc, field.Mult(row[i], lam[j][i]))
			}
			shareByte[j] = acc
		}
		for j, o := range outputs {
			if _, err := o.W.Write(shareByte[j : j+1]); err != nil {
				return err
			}
		}
	}
}

// Joiner reconstructs a dispersed byte stream from k or more IDA shares.
type Joiner struct {
	K int
}

var _ partition.Joiner = Joiner{}

// Join reads len(inputs) shares (inputs must carry distinct x values, and
// at least K of them must be present) and writes the reconstructed,
// unpadded byte stream to w.
func (j Joiner) Join(inputs []partition.InputPartition, w io.Writer) error {
	if j.K < 2 {
		return fmt.Errorf("%w: threshold must be at least 2, got %d", ErrContractViolation, j.K)
	}
	if len(inputs) < j.K {
		return fmt.Errorf("%w: %d inputs is fewer than threshold %d", ErrContractViolation, len(inputs), j.K)
	}

	xs := make([]byte, len(inputs))
	for i, in := range inputs {
		xs[i] = in.X
	}
	if err := partition.ValidateIndices(xs); err != nil {
		return fmt.Errorf("%w: %v", ErrContractViolation, err)
	}

	lamPrime := lagrange.Eval(xs, dataXs(j.K)) // k x k

	out := padding.NewWriter(w, j.K, padding.Unpad)
	shareByte := make([]byte, len(inputs))
	row := make([]byte, j.K)

	for {
		minRead := 1
		for i, in := range inputs {
			n, err := partition.ReadFull(in.R, shareByte[i:i+1])
			if err != nil {
				return err
			}
			if n == 0 {
				minRead = 0
			}
		}
		if minRead == 0 {
			break
		}

		for i := 0; i < j.K; i++ {
			var acc byte
			for jj := range inputs {
				acc = field.Add(acc, field.Mult(shareByte[jj], lamPrime[i][jj]))
			}
			row[i] = acc
		}
		if _, err := out.Write(row); err != nil {
			return err
		}
	}

	return out.Flush()
}
