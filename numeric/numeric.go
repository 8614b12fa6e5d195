package numeric

import (
	"math/big"
)

const (
	// DecPrec is the working precision of decimal values in bits. It
	// dominates the 64-bit significand of the widest native floating
	// format, so lifting any host float through a decimal is lossless.
	DecPrec = 128

	// FloatDigits is the fractional digit count for float and double
	// output.
	FloatDigits = 6

	// DecDigits is the fractional digit count for decimal and
	// extended-precision output.
	DecDigits = 10
)

// ParseInt parses base-10 text into an arbitrary-precision integer.
// Malformed text yields zero; no error is signaled.
func ParseInt(text string) *big.Int {
	v := new(big.Int)
	if _, ok := v.SetString(text, 10); !ok {
		v.SetInt64(0)
	}
	return v
}

// NewDec returns a zero decimal with its working precision established.
// Every decimal must originate here or in ParseDec before arithmetic
// touches it.
func NewDec() *big.Float {
	return new(big.Float).SetPrec(DecPrec)
}

// ParseDec parses decimal text into a value with the working precision
// established. Malformed text yields zero; no error is signaled.
func ParseDec(text string) *big.Float {
	v := NewDec()
	if _, ok := v.SetString(text); !ok {
		v.SetInt64(0)
	}
	return v
}

// DecFromFloat lifts a host float into the decimal representation.
func DecFromFloat(f float64) *big.Float {
	return NewDec().SetFloat64(f)
}

// Add computes result = a + b and returns result. a and b are
// unmodified.
func Add(result, a, b *big.Float) *big.Float {
	return result.Add(a, b)
}

// Sub computes result = a - b and returns result.
func Sub(result, a, b *big.Float) *big.Float {
	return result.Sub(a, b)
}

// Mul computes result = a * b and returns result.
func Mul(result, a, b *big.Float) *big.Float {
	return result.Mul(a, b)
}

// Div computes result = a / b and returns result. 0/0 has no defined
// value in the source language; it yields zero rather than panicking.
func Div(result, a, b *big.Float) *big.Float {
	if a.Sign() == 0 && b.Sign() == 0 {
		return result.SetInt64(0)
	}
	return result.Quo(a, b)
}

// Compare returns -1, 0, or +1 ordering a against b.
func Compare(a, b *big.Float) int {
	return a.Cmp(b)
}
