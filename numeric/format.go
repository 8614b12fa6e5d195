package numeric

import (
	"fmt"
	"io"
	"math/big"
	"strconv"
)

// FormatInt renders v in base 10.
func FormatInt(v *big.Int) string {
	return v.Text(10)
}

// FormatDec renders v with DecDigits fractional digits.
func FormatDec(v *big.Float) string {
	return v.Text('f', DecDigits)
}

// FormatFloat renders a 32-bit float with FloatDigits fractional digits.
func FormatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', FloatDigits, 32)
}

// FormatDouble renders a 64-bit float with FloatDigits fractional digits.
func FormatDouble(f float64) string {
	return strconv.FormatFloat(f, 'f', FloatDigits, 64)
}

// FprintInt writes the base-10 representation of v followed by a
// newline.
func FprintInt(w io.Writer, v *big.Int) error {
	_, err := fmt.Fprintln(w, v.Text(10))
	return err
}

// FprintDec writes v with DecDigits fractional digits followed by a
// newline.
func FprintDec(w io.Writer, v *big.Float) error {
	_, err := fmt.Fprintln(w, FormatDec(v))
	return err
}

// FprintExtended writes an extended-precision value lifted through the
// decimal representation, with DecDigits fractional digits and a
// newline. Hosts without native extended-precision formatting produce
// identical output this way.
func FprintExtended(w io.Writer, f float64) error {
	return FprintDec(w, DecFromFloat(f))
}

// Fixed-width print helpers for the closed set of host integer and
// floating types. Each writes the value followed by a newline.

func FprintI8(w io.Writer, v int8) error   { return printlnInt(w, int64(v)) }
func FprintI16(w io.Writer, v int16) error { return printlnInt(w, int64(v)) }
func FprintI32(w io.Writer, v int32) error { return printlnInt(w, int64(v)) }
func FprintI64(w io.Writer, v int64) error { return printlnInt(w, v) }

func FprintU8(w io.Writer, v uint8) error   { return printlnUint(w, uint64(v)) }
func FprintU16(w io.Writer, v uint16) error { return printlnUint(w, uint64(v)) }
func FprintU32(w io.Writer, v uint32) error { return printlnUint(w, uint64(v)) }
func FprintU64(w io.Writer, v uint64) error { return printlnUint(w, v) }

func FprintF32(w io.Writer, v float32) error {
	_, err := fmt.Fprintln(w, FormatFloat(v))
	return err
}

func FprintF64(w io.Writer, v float64) error {
	_, err := fmt.Fprintln(w, FormatDouble(v))
	return err
}

func printlnInt(w io.Writer, v int64) error {
	_, err := fmt.Fprintln(w, strconv.FormatInt(v, 10))
	return err
}

func printlnUint(w io.Writer, v uint64) error {
	_, err := fmt.Fprintln(w, strconv.FormatUint(v, 10))
	return err
}
