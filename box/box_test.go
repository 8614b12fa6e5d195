package box

import (
	"testing"
)

type recordingObserver struct {
	events []Event
}

func (o *recordingObserver) OnBoxEvent(e Event) {
	o.events = append(o.events, e)
}

func TestBox_DestructorFiresOnce(t *testing.T) {
	drops := 0
	b := New("payload", func(s string) {
		if s != "payload" {
			t.Errorf("destructor got %q", s)
		}
		drops++
	})

	if !b.Release() {
		t.Fatal("expected Release to destroy the box")
	}
	if drops != 1 {
		t.Fatalf("destructor ran %d times", drops)
	}

	// Further releases are no-ops
	if b.Release() {
		t.Fatal("release of destroyed box should be ignored")
	}
	if drops != 1 {
		t.Fatalf("destructor ran again: %d times", drops)
	}
}

func TestBox_RetainReleaseBalance(t *testing.T) {
	drops := 0
	b := New(42, func(int) { drops++ })

	// create + 3 retains = 4 owed releases
	b.Retain()
	b.Retain()
	b.Retain()
	if b.Refs() != 4 {
		t.Fatalf("expected 4 refs, got %d", b.Refs())
	}

	for i := 0; i < 3; i++ {
		if b.Release() {
			t.Fatalf("destroyed early at release %d", i+1)
		}
		if drops != 0 {
			t.Fatalf("destructor fired early at release %d", i+1)
		}
	}

	if !b.Release() {
		t.Fatal("final release did not destroy")
	}
	if drops != 1 {
		t.Fatalf("destructor ran %d times", drops)
	}
}

func TestBox_NilSafety(t *testing.T) {
	var b *Box[string]

	b.Retain() // must not panic
	if b.Release() {
		t.Fatal("release of nil box should report false")
	}
	if _, ok := b.Get(); ok {
		t.Fatal("Get on nil box should report false")
	}
	if b.Refs() != 0 {
		t.Fatal("nil box should report zero refs")
	}
}

func TestBox_NilDestructor(t *testing.T) {
	b := New([]byte("x"), nil)
	if !b.Release() {
		t.Fatal("expected destruction with nil destructor")
	}
}

func TestBox_DeadBoxIsEmpty(t *testing.T) {
	b := New("text", nil)
	b.Release()

	if _, ok := b.Get(); ok {
		t.Fatal("destroyed box should not yield payload")
	}
	b.Retain() // retain after death is a no-op
	if b.Refs() != 0 {
		t.Fatalf("refs after death = %d", b.Refs())
	}
}

func TestBox_ObserverEvents(t *testing.T) {
	obs := &recordingObserver{}
	Subscribe(obs)
	defer Unsubscribe(obs)

	b := New("v", nil)
	b.Retain()
	b.Release()
	b.Release()

	want := []EventType{EventCreated, EventRetained, EventReleased, EventDestroyed}
	if len(obs.events) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(obs.events))
	}
	for i, e := range obs.events {
		if e.Type != want[i] {
			t.Errorf("event %d: got type %d, want %d", i, e.Type, want[i])
		}
	}
	if obs.events[1].Refs != 2 {
		t.Errorf("retain event refs = %d, want 2", obs.events[1].Refs)
	}

	Unsubscribe(obs)
	before := len(obs.events)
	New("w", nil).Release()
	if len(obs.events) != before {
		t.Error("observer still notified after Unsubscribe")
	}
}
