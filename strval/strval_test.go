package strval

import (
	"strings"
	"testing"

	"github.com/emberlang/ember-runtime/heap"
)

func TestNewAndText(t *testing.T) {
	tr := heap.NewTracker()

	v := New(tr, "hello")
	if Text(v) != "hello" {
		t.Fatalf("Text = %q", Text(v))
	}
	if tr.Len() != 1 {
		t.Fatalf("expected 1 tracked block, got %d", tr.Len())
	}

	if !v.Release() {
		t.Fatal("release failed")
	}
	if tr.Len() != 0 {
		t.Fatal("backing block not released with the box")
	}
	if Text(v) != "" {
		t.Fatal("destroyed value should read as empty")
	}
}

func TestConcat(t *testing.T) {
	tr := heap.NewTracker()

	a := New(tr, "ab")
	b := New(tr, "cd")
	c := Concat(tr, a, b)

	if !Equal(c, New(tr, "abcd")) {
		t.Fatalf("concat = %q", Text(c))
	}
	// Operands untouched
	if Text(a) != "ab" || Text(b) != "cd" {
		t.Fatal("operands modified")
	}

	// Nil operands act as empty strings
	if Text(Concat(tr, nil, b)) != "cd" {
		t.Fatal("nil left operand")
	}
	if Text(Concat(tr, a, nil)) != "ab" {
		t.Fatal("nil right operand")
	}
	if Text(Concat(tr, nil, nil)) != "" {
		t.Fatal("both nil")
	}
}

func TestEqual(t *testing.T) {
	tr := heap.NewTracker()

	if !Equal(nil, nil) {
		t.Fatal("nil == nil")
	}
	if Equal(New(tr, ""), nil) {
		t.Fatal("empty value vs nil must differ")
	}
	if Equal(nil, New(tr, "")) {
		t.Fatal("nil vs empty value must differ")
	}
	if !Equal(New(tr, "x"), New(tr, "x")) {
		t.Fatal("same contents compare equal")
	}
	if Equal(New(tr, "x"), New(tr, "y")) {
		t.Fatal("different contents compare unequal")
	}
}

func TestSharedLifetime(t *testing.T) {
	tr := heap.NewTracker()

	v := New(tr, "shared")
	v.Retain()
	v.Release()
	if tr.Len() != 1 {
		t.Fatal("block released while a reference was outstanding")
	}
	v.Release()
	if tr.Len() != 0 {
		t.Fatal("block survived the final release")
	}
}

func TestRawVariants(t *testing.T) {
	tr := heap.NewTracker()

	s := RawConcat(tr, "foo", "bar")
	if s != "foobar" {
		t.Fatalf("RawConcat = %q", s)
	}
	if tr.Len() != 1 {
		t.Fatalf("raw result not tracked: %d", tr.Len())
	}
	if !RawEqual("a", "a") || RawEqual("a", "b") {
		t.Fatal("RawEqual")
	}

	// The sweep is the only bookkeeping raw results get
	if tr.Sweep() != 1 {
		t.Fatal("sweep missed the raw result")
	}
}

func TestScannerInput(t *testing.T) {
	tr := heap.NewTracker()
	var out strings.Builder

	sc := NewScanner(tr, strings.NewReader("  alpha beta\n\tgamma "))

	if got := sc.Input(&out, "> "); got != "alpha" {
		t.Fatalf("first token = %q", got)
	}
	if got := sc.Input(&out, "> "); got != "beta" {
		t.Fatalf("second token = %q", got)
	}
	if got := sc.Input(&out, "> "); got != "gamma" {
		t.Fatalf("third token = %q", got)
	}
	// Stream exhausted: empty string, nothing registered
	if got := sc.Input(&out, "> "); got != "" {
		t.Fatalf("EOF token = %q", got)
	}

	if out.String() != "> > > > " {
		t.Fatalf("prompts = %q", out.String())
	}
	if tr.Len() != 3 {
		t.Fatalf("tracked inputs = %d, want 3", tr.Len())
	}
}
