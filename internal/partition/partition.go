// Package partition defines the shared split/join contract used by both
// the Shamir and IDA schemes, plus small helpers (full-buffer reads, index
// validation, in-memory test doubles) so neither scheme has to reimplement
// them.
package partition

import (
	"bytes"
	"errors"
	"io"
)

// ErrDuplicateIndex is returned when two outputs or inputs carry the same
// share index x.
var ErrDuplicateIndex = errors.New("partition: duplicate share index")

// ErrZeroIndex is returned when a share index is 0; index 0 is reserved for
// the secret itself (Shamir) or the first data byte of a row (IDA).
var ErrZeroIndex = errors.New("partition: share index 0 is reserved")

// OutputPartition is the sink for one share while splitting.
type OutputPartition struct {
	X byte
	W io.Writer
}

// InputPartition is the source for one share while joining.
type InputPartition struct {
	X byte
	R io.Reader
}

// Splitter disperses the bytes read from r across outputs.
type Splitter interface {
	Split(r io.Reader, outputs []OutputPartition) error
}

// Joiner reconstructs a byte stream from inputs, writing it to w.
type Joiner interface {
	Join(inputs []InputPartition, w io.Writer) error
}

// ValidateIndices checks that every x is nonzero and that no two are equal.
// The source this package was ported from left this check as a TODO and
// trusted callers; here it is enforced unconditionally.
func ValidateIndices(xs []byte) error {
	seen := make(map[byte]struct{}, len(xs))
	for _, x := range xs {
		if x == 0 {
			return ErrZeroIndex
		}
		if _, ok := seen[x]; ok {
			return ErrDuplicateIndex
		}
		seen[x] = struct{}{}
	}
	return nil
}

// ReadFull loops read on r until buf is full or r is exhausted, returning
// the number of bytes actually placed in buf. Unlike io.ReadFull, reaching
// EOF before buf is full is not an error: the caller decides what a short
// read means (end of stream, for every joiner in this module).
func ReadFull(r io.Reader, buf []byte) (int, error) {
	read := 0
	for read < len(buf) {
		n, err := r.Read(buf[read:])
		read += n
		if err != nil {
			if err == io.EOF {
				return read, nil
			}
			return read, err
		}
		if n == 0 {
			return read, nil
		}
	}
	return read, nil
}

// SplitInMemory runs s over data and collects each output share keyed by x,
// without touching the filesystem.
func SplitInMemory(s Splitter, data []byte, xs []byte) (map[byte][]byte, error) {
	bufs := make([]*bytes.Buffer, len(xs))
	outputs := make([]OutputPartition, len(xs))
	for i, x := range xs {
		bufs[i] = &bytes.Buffer{}
		outputs[i] = OutputPartition{X: x, W: bufs[i]}
	}
	if err := s.Split(bytes.NewReader(data), outputs); err != nil {
		return nil, err
	}
	result := make(map[byte][]byte, len(xs))
	for i, x := range xs {
		result[x] = bufs[i].Bytes()
	}
	return result, nil
}

// JoinInMemory reconstructs the byte stream from shares (keyed by x) using
// j, selecting exactly the indices in xs.
func JoinInMemory(j Joiner, shares map[byte][]byte, xs []byte) ([]byte, error) {
	inputs := make([]InputPartition, len(xs))
	for i, x := range xs {
		inputs[i] = InputPartition{X: x, R: bytes.NewReader(shares[x])}
	}
	var out bytes.Buffer
	if err := j.Join(inputs, &out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
