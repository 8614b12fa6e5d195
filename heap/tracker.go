package heap

import (
	"sync"

	"go.uber.org/zap"
)

// Handle is an opaque reference to a tracked block.
// Handle 0 is reserved and always invalid.
type Handle uint32

type entry struct {
	data  []byte
	valid bool
}

// Tracker records every live allocation made through it. Values in
// generated programs are single-threaded; the mutex exists because the
// Default tracker is process-wide state, it is not a concurrency
// guarantee for the blocks themselves.
type Tracker struct {
	entries  []entry
	freeList []Handle
	mu       sync.Mutex
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		entries:  make([]entry, 0, 64),
		freeList: make([]Handle, 0, 16),
	}
}

// Alloc registers a zeroed block of the given size and returns its
// handle and backing bytes. A non-positive size yields (0, nil) with
// nothing registered, mirroring allocation failure.
func (t *Tracker) Alloc(size int) (Handle, []byte) {
	if size <= 0 {
		return 0, nil
	}
	buf := make([]byte, size)
	h := t.register(buf)
	logger().Debug("alloc", zap.Uint32("handle", uint32(h)), zap.Int("size", size))
	return h, buf
}

// Duplicate registers a copy of s and returns its handle and backing
// bytes. The empty string is allowed and registers an empty block.
func (t *Tracker) Duplicate(s string) (Handle, []byte) {
	buf := []byte(s)
	h := t.register(buf)
	logger().Debug("duplicate", zap.Uint32("handle", uint32(h)), zap.Int("size", len(buf)))
	return h, buf
}

func (t *Tracker) register(buf []byte) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	e := entry{data: buf, valid: true}

	if len(t.freeList) > 0 {
		h := t.freeList[len(t.freeList)-1]
		t.freeList = t.freeList[:len(t.freeList)-1]
		t.entries[h-1] = e
		return h
	}

	t.entries = append(t.entries, e)
	return Handle(len(t.entries))
}

// Release frees the block for h and removes it from the live set.
// An untracked or already-released handle changes nothing and reports
// false, protecting against double-free and foreign handles.
func (t *Tracker) Release(h Handle) bool {
	if h == 0 {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	idx := int(h) - 1
	if idx >= len(t.entries) {
		return false
	}

	e := &t.entries[idx]
	if !e.valid {
		return false
	}

	e.valid = false
	e.data = nil
	t.freeList = append(t.freeList, h)
	logger().Debug("release", zap.Uint32("handle", uint32(h)))
	return true
}

// Sweep frees every block still live and clears the registry, returning
// the number of blocks freed. Safe to call more than once; later calls
// free nothing.
func (t *Tracker) Sweep() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	freed := 0
	for i := range t.entries {
		if t.entries[i].valid {
			t.entries[i].valid = false
			t.entries[i].data = nil
			freed++
		}
	}
	t.entries = t.entries[:0]
	t.freeList = t.freeList[:0]

	if freed > 0 {
		logger().Debug("sweep", zap.Int("freed", freed))
	}
	return freed
}

// Get returns the live block for h.
func (t *Tracker) Get(h Handle) ([]byte, bool) {
	if h == 0 {
		return nil, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	idx := int(h) - 1
	if idx >= len(t.entries) || !t.entries[idx].valid {
		return nil, false
	}
	return t.entries[idx].data, true
}

// Len returns the number of live blocks.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := 0
	for _, e := range t.entries {
		if e.valid {
			n++
		}
	}
	return n
}

// Each iterates over all live blocks until fn returns false.
func (t *Tracker) Each(fn func(Handle, []byte) bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, e := range t.entries {
		if e.valid {
			if !fn(Handle(i+1), e.data) {
				break
			}
		}
	}
}

var (
	defaultTracker *Tracker
	defaultOnce    sync.Once
)

// Default returns the lazily initialized process-wide tracker used by
// the generated-code call surface.
func Default() *Tracker {
	defaultOnce.Do(func() {
		defaultTracker = NewTracker()
	})
	return defaultTracker
}

// Cleanup sweeps the process-wide tracker. Generated programs call it
// exactly once at normal termination as the leak backstop; it is
// best-effort only when the process dies abnormally.
func Cleanup() int {
	return Default().Sweep()
}
