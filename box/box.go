package box

// Box grants shared ownership of a payload of type T via a manual
// reference count. The type parameter ties the destructor to the
// payload it destroys, so a box can never run a destructor written for
// a different payload type.
//
// The zero Box is not usable; create boxes with New.
type Box[T any] struct {
	payload T
	drop    func(T)
	refs    uint32
	dead    bool
}

// New creates a box owning payload with a reference count of one.
// drop runs exactly once, when the count reaches zero; nil is allowed
// for payloads that need no cleanup.
func New[T any](payload T, drop func(T)) *Box[T] {
	b := &Box[T]{payload: payload, drop: drop, refs: 1}
	notify(Event{Type: EventCreated, Refs: 1, Payload: payload})
	return b
}

// Retain adds one reference. A nil or already-destroyed box is a no-op.
func (b *Box[T]) Retain() {
	if b == nil || b.dead {
		return
	}
	b.refs++
	notify(Event{Type: EventRetained, Refs: b.refs, Payload: b.payload})
}

// Release drops one reference. When the count reaches zero the
// destructor runs on the payload, the box is cleared, and Release
// reports true. Releasing a nil or already-destroyed box is a no-op
// reporting false, so the count can never go negative through this API.
func (b *Box[T]) Release() bool {
	if b == nil || b.dead {
		return false
	}
	b.refs--
	if b.refs > 0 {
		notify(Event{Type: EventReleased, Refs: b.refs, Payload: b.payload})
		return false
	}

	payload := b.payload
	drop := b.drop
	b.dead = true
	b.drop = nil
	var zero T
	b.payload = zero

	if drop != nil {
		drop(payload)
	}
	notify(Event{Type: EventDestroyed, Refs: 0, Payload: payload})
	return true
}

// Get returns the payload and whether the box is still live.
func (b *Box[T]) Get() (T, bool) {
	if b == nil || b.dead {
		var zero T
		return zero, false
	}
	return b.payload, true
}

// Refs returns the current reference count; zero for nil or destroyed
// boxes.
func (b *Box[T]) Refs() uint32 {
	if b == nil || b.dead {
		return 0
	}
	return b.refs
}
