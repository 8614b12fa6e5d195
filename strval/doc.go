// Package strval implements Ember string values.
//
// A string value is a shared value box whose payload is a raw string
// registered with an allocation tracker: the box carries the shared
// lifetime, the tracker carries the backstop. Releasing the last
// reference releases the tracked block; anything the program forgets
// is caught by the tracker's shutdown sweep.
//
// The Raw* functions and Scanner.Input are the legacy non-shared entry
// points: they return plain strings whose only bookkeeping is the
// tracker registration, for callers that do not participate in
// reference counting.
package strval
