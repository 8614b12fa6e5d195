package strval

import (
	"github.com/emberlang/ember-runtime/box"
	"github.com/emberlang/ember-runtime/heap"
)

// Str is the payload of a boxed string value: the text plus the handle
// of its tracked backing block.
type Str struct {
	Text   string
	handle heap.Handle
}

// Value is a reference-counted string. Retain/Release semantics come
// from box.Box; the destructor releases the tracked block.
type Value = box.Box[Str]

// New copies text into a tracked block and wraps it in a box with a
// reference count of one. A nil-equivalent (empty) text is allowed.
func New(tr *heap.Tracker, text string) *Value {
	h, data := tr.Duplicate(text)
	return box.New(Str{Text: string(data), handle: h}, func(p Str) {
		tr.Release(p.handle)
	})
}

// Text returns the contents of v; a nil or destroyed value reads as
// the empty string.
func Text(v *Value) string {
	p, ok := v.Get()
	if !ok {
		return ""
	}
	return p.Text
}

// Concat produces a new value holding the byte-wise concatenation of
// a and b. Either operand may be nil, acting as the empty string;
// neither operand is modified or consumed.
func Concat(tr *heap.Tracker, a, b *Value) *Value {
	return New(tr, Text(a)+Text(b))
}

// Equal reports whether a and b hold the same bytes. Two nil values
// compare equal; a nil and a live empty string do not.
func Equal(a, b *Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return Text(a) == Text(b)
}

// RawConcat is the legacy non-shared concatenation: the result is
// registered with the tracker and ownership passes entirely to the
// caller. Empty operands act as the empty string.
func RawConcat(tr *heap.Tracker, a, b string) string {
	_, data := tr.Duplicate(a + b)
	return string(data)
}

// RawEqual is the legacy boolean string comparison.
func RawEqual(a, b string) bool {
	return a == b
}
