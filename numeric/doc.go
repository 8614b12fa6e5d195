// Package numeric bridges fixed-width host numerics to the
// arbitrary-precision integer and decimal representations used for
// Ember's numeric literals.
//
// Integers are math/big Ints parsed from base-10 text. Decimals are
// math/big Floats carrying a working precision of DecPrec bits,
// established by the constructors before any arithmetic can reach the
// value. Arithmetic computes into a pre-initialized result operand and
// leaves its inputs unmodified:
//
//	a := numeric.ParseDec("1.5")
//	b := numeric.ParseDec("2.5")
//	sum := numeric.Add(numeric.NewDec(), a, b)
//	numeric.Compare(sum, numeric.ParseDec("4.0")) // 0
//
// Parsing performs no validation: malformed text yields a zero value,
// not an error. This matches the unvalidated behavior of the underlying
// representations the compiler targets.
//
// All non-integer printing renders a fixed number of fractional digits
// (6 for float and double, 10 for decimals and for extended precision
// lifted through the decimal representation) so output is portable
// across hosts that lack native extended-precision formatting.
package numeric
