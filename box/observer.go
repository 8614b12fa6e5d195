package box

import "sync"

// Event types for box lifecycle notifications.
type EventType uint8

const (
	EventCreated EventType = iota
	EventRetained
	EventReleased
	EventDestroyed
)

// Event describes one box lifecycle transition. Refs is the count after
// the transition; for EventDestroyed the payload is the value the
// destructor received.
type Event struct {
	Payload any
	Refs    uint32
	Type    EventType
}

// Observer receives notifications about box lifecycle events.
type Observer interface {
	OnBoxEvent(Event)
}

var (
	observers []Observer
	obsMu     sync.RWMutex
)

// Subscribe adds an observer for lifecycle events on every box in the
// process. Intended for diagnostics and tests.
func Subscribe(o Observer) {
	obsMu.Lock()
	defer obsMu.Unlock()
	observers = append(observers, o)
}

// Unsubscribe removes an observer.
func Unsubscribe(o Observer) {
	obsMu.Lock()
	defer obsMu.Unlock()
	for i, obs := range observers {
		if obs == o {
			observers = append(observers[:i], observers[i+1:]...)
			return
		}
	}
}

func notify(e Event) {
	obsMu.RLock()
	defer obsMu.RUnlock()
	for _, o := range observers {
		o.OnBoxEvent(e)
	}
}
