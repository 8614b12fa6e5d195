// Package runtime is the flat call surface Ember generated code links
// against.
//
// It operates on the process-wide allocation tracker and the package
// Stdin/Stdout streams, so emitted code stays a sequence of plain
// function calls:
//
//	s := runtime.NewString("hello ")
//	name := runtime.Input("name? ")
//	runtime.PrintString(runtime.Concat(s, runtime.NewString(name)))
//	runtime.Cleanup()
//
// Cleanup must run exactly once at normal termination; it sweeps every
// still-live tracked allocation regardless of which control path the
// program took. On abnormal termination it is best-effort only.
package runtime
