package shamirida

import (
	"fmt"
	"io"

	"github.com/lcrostarosa/shamirida/internal/blockmode"
)

// Params is the single validated, in-memory configuration record built once
// per invocation: there is no config file to load, so NewParams performs
// every precondition check in one place instead of scattering them across
// Split and Join.
type Params struct {
	K       int
	N       int
	KeySize int
	IVSize  int
}

// NewParams validates (k, n) against the 1 < k <= n <= 255 invariant and
// records the key/IV sizes the chosen block mode requires. N is only
// meaningful for Split; Join callers that don't know n up front may pass 0
// and it is left unchecked against K.
func NewParams(k, n, keySize, ivSize int) (Params, error) {
	if k < 2 {
		return Params{}, fmt.Errorf("%w: threshold k must be at least 2, got %d", ErrContractViolation, k)
	}
	if n != 0 {
		if n > 255 {
			return Params{}, fmt.Errorf("%w: n must be at most 255, got %d", ErrContractViolation, n)
		}
		if k > n {
			return Params{}, fmt.Errorf("%w: k (%d) must be <= n (%d)", ErrContractViolation, k, n)
		}
	}
	return Params{K: k, N: n, KeySize: keySize, IVSize: ivSize}, nil
}

// Scheme builds the Scheme this set of parameters describes, wiring in the
// block mode factory and the randomness source the caller wants to use for
// the Shamir layer. A nil rand defaults to crypto/rand at split time.
func (p Params) Scheme(newMode blockmode.Factory, rand io.Reader) Scheme {
	return Scheme{K: p.K, NewMode: newMode, Rand: rand}
}
