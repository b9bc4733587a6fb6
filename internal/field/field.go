// Package field implements GF(2^8) arithmetic for the Shamir and IDA
// splitters: addition, multiplication, division, and a scaled multiword
// kernel used to fold a random polynomial coefficient into a share buffer.
package field

// Poly is the reduction polynomial used by this field: x^8 + x^4 + x^3 + x^2 + 1.
// Fixing it here (rather than letting callers choose) is what makes every
// share produced by this package reproducible across split/join.
const Poly = 0x11d

// generator is the primitive root of GF(2^8) under Poly that the exp/log
// tables below are powers of; init multiplies by it as a one-bit left shift
// rather than referring to this constant. Multiplication results do not
// depend on which primitive root was used to build the tables, only on Poly.
const generator = 2

var expTable [256]byte
var logTable [256]byte

func init() {
	x := 1
	for i := 0; i < 255; i++ {
		expTable[i] = byte(x)
		logTable[byte(x)] = byte(i)
		x <<= 1
		if x&0x100 != 0 {
			x ^= Poly & 0xff
		}
	}
	expTable[255] = expTable[0]
}

// Add returns a XOR b, the field's addition (and subtraction).
func Add(a, b byte) byte {
	return a ^ b
}

// Sub is identical to Add in GF(2^8): x - y == x + y == x XOR y.
func Sub(a, b byte) byte {
	return a ^ b
}

// Mult returns a * b in GF(2^8).
func Mult(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	sum := int(logTable[a]) + int(logTable[b])
	if sum >= 255 {
		sum -= 255
	}
	return expTable[sum]
}

// Div returns a / b in GF(2^8). b must be nonzero: division by zero is a
// programmer error, not a runtime condition callers are expected to recover
// from, so Div panics rather than returning an error. Every call site in
// this module (Lagrange basis construction) is structured so the
// denominator is always nonzero.
func Div(a, b byte) byte {
	if b == 0 {
		panic("field: division by zero")
	}
	if a == 0 {
		return 0
	}
	diff := int(logTable[a]) - int(logTable[b])
	if diff < 0 {
		diff += 255
	}
	return expTable[diff]
}

// Inv returns the multiplicative inverse of a. a must be nonzero.
func Inv(a byte) byte {
	if a == 0 {
		panic("field: inverse of zero")
	}
	return expTable[255-int(logTable[a])]
}

// AddScaledMultiword computes dst[i] ^= Mult(src[i], scalar) for every i,
// i.e. dst += src*scalar pointwise. dst and src must have equal length.
// This is the bulk kernel both Shamir (folding a random coefficient across
// a chunk) and IDA (folding a row byte across all output shares) reduce to.
func AddScaledMultiword(dst, src []byte, scalar byte) {
	if len(dst) != len(src) {
		panic("field: dst and src length mismatch")
	}
	switch scalar {
	case 0:
		return
	case 1:
		for i := range dst {
			dst[i] ^= src[i]
		}
		return
	}
	scalarLog := int(logTable[scalar])
	for i, s := range src {
		if s == 0 {
			continue
		}
		sum := int(logTable[s]) + scalarLog
		if sum >= 255 {
			sum -= 255
		}
		dst[i] ^= expTable[sum]
	}
}
