// Package heap implements the allocation tracker: every direct heap
// allocation or string duplication made on behalf of generated code is
// registered in a live set, and one shutdown sweep frees whatever is
// still registered regardless of which control path the program took.
//
// # Handle Table
//
// The Tracker maps integer handles to live blocks:
//
//	tr := heap.NewTracker()
//
//	// Allocate a zeroed block, get a handle
//	h, buf := tr.Alloc(64)
//
//	// Duplicate a string into a tracked block
//	h2, copy := tr.Duplicate("hello")
//
//	// Release a block; untracked handles are ignored
//	ok := tr.Release(h)
//
//	// Free everything still live
//	n := tr.Sweep()
//
// Releasing a handle twice, or releasing a handle the tracker never
// issued, is reported as ignored (false) rather than corrupting the
// registry. This guards against double-free and against freeing memory
// the tracker does not manage.
//
// # Scalability
//
// Entries live in a slice indexed by handle with a free list for slot
// reuse, giving O(1) release while keeping the registry dependency-free.
// Handle values are never reissued concurrently with an outstanding use
// of the same slot; the free list recycles slots only after release.
//
// # Process-wide tracker
//
// Default returns a lazily initialized process-wide tracker for
// generated code; Cleanup sweeps it and is the single cleanup entry
// point that must run at normal program termination. It is best-effort
// only on abnormal termination.
package heap
