// Package box implements the shared value box: a heap wrapper granting
// shared ownership of a payload through a manual reference count.
//
// A box is created with a count of one. Every additional outstanding
// reference must be established with Retain and matched by exactly one
// Release. When the count reaches zero the destructor runs exactly once
// and the box becomes unusable.
//
//	b := box.New("payload", func(s string) { cleanup(s) })
//	b.Retain()
//	b.Release() // count back to 1
//	b.Release() // destructor runs, box dead
//
// # Limitations
//
// Boxes are not safe for concurrent use. Generated Ember programs are
// single-threaded; concurrent Retain/Release on the same box is
// undefined behavior, not a detected error.
//
// There is no cycle collection. Two boxes whose payloads reference each
// other keep both counts above zero forever and leak.
package box
