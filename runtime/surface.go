package runtime

import (
	"io"
	"math/big"
	"os"
	"sync"

	emberruntime "github.com/emberlang/ember-runtime"
	"github.com/emberlang/ember-runtime/heap"
	"github.com/emberlang/ember-runtime/numeric"
	"github.com/emberlang/ember-runtime/printer"
	"github.com/emberlang/ember-runtime/strval"
)

// Stdin and Stdout are the streams the surface reads and prints
// through. Tests swap them; generated programs leave them alone.
var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
)

var (
	inputScanner *strval.Scanner
	scannerOnce  sync.Once
)

// Memory surface

// Allocate registers a zeroed block with the process-wide tracker.
// Allocation failure yields handle 0 and a nil block.
func Allocate(size int) (heap.Handle, []byte) {
	return heap.Default().Alloc(size)
}

// DuplicateString copies s into a tracked block.
func DuplicateString(s string) (heap.Handle, []byte) {
	return heap.Default().Duplicate(s)
}

// Release frees a tracked block. Untracked handles are ignored.
func Release(h heap.Handle) bool {
	return heap.Default().Release(h)
}

// Cleanup sweeps every still-live tracked allocation. Runs at normal
// program termination, exactly once.
func Cleanup() int {
	return heap.Cleanup()
}

// String values

// NewString copies text into a new reference-counted string value.
func NewString(text string) *strval.Value {
	return strval.New(heap.Default(), text)
}

// Concat produces a new value holding a's bytes followed by b's.
func Concat(a, b *strval.Value) *strval.Value {
	return strval.Concat(heap.Default(), a, b)
}

// StringsEqual reports byte equality; two nil values are equal, a nil
// and a live empty string are not.
func StringsEqual(a, b *strval.Value) bool {
	return strval.Equal(a, b)
}

// Retain adds a reference to v.
func Retain(v *strval.Value) {
	v.Retain()
}

// ReleaseString drops a reference to v, destroying it at zero.
func ReleaseString(v *strval.Value) bool {
	return v.Release()
}

// PrintString writes v's contents and a newline.
func PrintString(v *strval.Value) {
	io.WriteString(Stdout, strval.Text(v)+"\n")
}

// Input writes prompt and blocks until one whitespace-delimited token
// arrives on Stdin; end of stream yields "". The token is tracked, so
// the shutdown sweep reclaims it if the program never does.
func Input(prompt string) string {
	scannerOnce.Do(func() {
		inputScanner = strval.NewScanner(heap.Default(), Stdin)
	})
	return inputScanner.Input(Stdout, prompt)
}

// Numeric surface

// ParseBigInt parses a base-10 integer literal of any magnitude.
func ParseBigInt(text string) *big.Int {
	return numeric.ParseInt(text)
}

// PrintBigInt writes v in base 10 followed by a newline.
func PrintBigInt(v *big.Int) {
	numeric.FprintInt(Stdout, v)
}

// ParseDecimal parses a decimal literal at the fixed working precision.
func ParseDecimal(text string) *big.Float {
	return numeric.ParseDec(text)
}

// PrintDecimal writes v with fixed fractional digits and a newline.
func PrintDecimal(v *big.Float) {
	numeric.FprintDec(Stdout, v)
}

// Fixed-width print helpers

func PrintI8(v int8)   { numeric.FprintI8(Stdout, v) }
func PrintI16(v int16) { numeric.FprintI16(Stdout, v) }
func PrintI32(v int32) { numeric.FprintI32(Stdout, v) }
func PrintI64(v int64) { numeric.FprintI64(Stdout, v) }

func PrintU8(v uint8)   { numeric.FprintU8(Stdout, v) }
func PrintU16(v uint16) { numeric.FprintU16(Stdout, v) }
func PrintU32(v uint32) { numeric.FprintU32(Stdout, v) }
func PrintU64(v uint64) { numeric.FprintU64(Stdout, v) }

func PrintF32(v float32) { numeric.FprintF32(Stdout, v) }
func PrintF64(v float64) { numeric.FprintF64(Stdout, v) }

// PrintExtended writes an extended-precision value lifted through the
// decimal representation.
func PrintExtended(v float64) { numeric.FprintExtended(Stdout, v) }

// Arrays

// PrintArray writes seq in literal syntax per the element tag; a nil
// sequence prints the bare literal null.
func PrintArray(seq emberruntime.Sequence, tag emberruntime.ElemTag) {
	printer.FprintArray(Stdout, seq, tag)
}
