// Package array implements the growable array backing Ember's array
// values.
//
// Array is generic over its element type. Growth doubles the capacity,
// giving amortized O(1) append; removal halves the capacity once the
// length falls below one quarter of it, so alternating append/remove
// near a boundary cannot thrash reallocation.
//
// Out-of-range indices on Insert and Remove are absorbed as no-ops that
// report false; generated code treats them as caller bugs, and the
// explicit result keeps the behavior assertable.
//
// The element type tag used for printing is not stored here; arrays are
// plain containers, and the compiler supplies the tag at the printing
// boundary (see the printer package).
package array
