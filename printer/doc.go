// Package printer renders scalar and array values in Ember's literal
// syntax.
//
// Arrays render as "[e0, e1, ...]" followed by a newline; an absent
// array renders the bare literal "null". Element formatting is chosen
// by the compiler-supplied element tag, not by the array, because
// arrays are plain containers with no type information of their own.
// An unrecognized tag renders "?" for every element rather than
// failing.
package printer
