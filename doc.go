// Package emberruntime is the runtime support layer linked by code the
// Ember compiler generates.
//
// It defines how Ember values live, are shared, are copied, and are
// destroyed, and it bridges fixed-width host numerics to the
// arbitrary-precision integer and decimal representations used for
// Ember's numeric literals.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	ember-runtime/       Root package with element tags and the Sequence interface
//	├── runtime/         Flat call surface generated code links against
//	├── box/             Shared value boxes (manual reference counting)
//	├── heap/            Allocation tracker with shutdown sweep
//	├── array/           Growable arrays with amortized doubling
//	├── numeric/         Arbitrary-precision integers and decimals
//	├── strval/          String value construction and comparison
//	├── printer/         Literal-syntax value rendering
//	└── errors/          Structured error types for debugging
//
// # Ownership Model
//
// Whoever receives a handle from an Alloc or Duplicate call owns it and
// must route it through exactly one matching Release, or rely on the
// tracker's shutdown sweep as a backstop. Shared ownership is expressed
// through box.Box: each additional outstanding reference is established
// via Retain and matched by exactly one Release.
//
// Generated programs are single-threaded. No package in this module
// guarantees safe concurrent access to a single value; see the package
// documentation of box and array for the details.
//
// # Quick Start
//
//	tr := heap.NewTracker()
//	defer tr.Sweep()
//
//	a := strval.New(tr, "ab")
//	b := strval.New(tr, "cd")
//	c := strval.Concat(tr, a, b)
//	fmt.Println(strval.Text(c)) // "abcd"
//
// Generated code uses the flat surface in the runtime subpackage
// instead, which operates on a process-wide tracker and ends with one
// runtime.Cleanup() call.
package emberruntime
