// Package lagrange precomputes Lagrange basis values: given interpolation
// nodes xs and a set of evaluation points eval_xs, it returns the value at
// each eval_x of every basis polynomial for xs. Both Shamir (evaluating the
// basis at x=0) and IDA (evaluating the basis at each share's x, and the
// inverse at x=0..k-1) build on this.
package lagrange

import "github.com/lcrostarosa/shamirida/internal/field"

// Eval returns an e x m matrix L where L[j][i] is the value at eval_xs[j] of
// the i-th Lagrange basis polynomial for nodes xs (len(xs) == m).
//
//	L_i(x) = prod_{i'!=i} (x - xs[i']) / (xs[i] - xs[i'])
//
// When eval_xs[j] equals xs[i], the basis polynomials evaluate to the
// Kronecker delta (1 at i, 0 elsewhere) rather than 0/0 — this is handled
// explicitly below and is what lets a decoder evaluate at a node that
// coincides with one of its own data points.
func Eval(xs, evalXs []byte) [][]byte {
	denom := make([]byte, len(xs))
	for i := range xs {
		denom[i] = 1
		for j := range xs {
			if i == j {
				continue
			}
			denom[i] = field.Mult(denom[i], field.Sub(xs[i], xs[j]))
		}
	}

	out := make([][]byte, len(evalXs))
	for j, ex := range evalXs {
		var numerator byte = 1
		for _, x := range xs {
			numerator = field.Mult(numerator, field.Sub(ex, x))
		}

		row := make([]byte, len(xs))
		if numerator == 0 {
			for i, x := range xs {
				if x == ex {
					row[i] = 1
				}
			}
		} else {
			for i, x := range xs {
				row[i] = field.Div(field.Div(numerator, field.Sub(x, ex)), denom[i])
			}
		}
		out[j] = row
	}
	return out
}
