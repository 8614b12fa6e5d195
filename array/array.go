package array

// Array is a growable container with an explicit capacity policy:
// append doubles the capacity when full, remove halves it once the
// length drops below a quarter of it. Not safe for concurrent use.
type Array[T any] struct {
	data []T
	n    int
}

// New creates an array with the given initial capacity and length zero.
// Negative capacities are treated as zero.
func New[T any](capacity int) *Array[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Array[T]{data: make([]T, capacity)}
}

// Len returns the number of stored elements.
func (a *Array[T]) Len() int {
	if a == nil {
		return 0
	}
	return a.n
}

// Cap returns the current capacity.
func (a *Array[T]) Cap() int {
	if a == nil {
		return 0
	}
	return len(a.data)
}

// At returns the element at index i.
func (a *Array[T]) At(i int) (T, bool) {
	if a == nil || i < 0 || i >= a.n {
		var zero T
		return zero, false
	}
	return a.data[i], true
}

// Set overwrites the element at index i. Out-of-range indices are
// ignored and report false.
func (a *Array[T]) Set(i int, v T) bool {
	if a == nil || i < 0 || i >= a.n {
		return false
	}
	a.data[i] = v
	return true
}

// Item returns the element at index i as an untyped value, or nil when
// out of range. It exists for the printing boundary, which walks arrays
// without knowing the element type.
func (a *Array[T]) Item(i int) any {
	v, ok := a.At(i)
	if !ok {
		return nil
	}
	return v
}

func (a *Array[T]) grow() {
	newCap := len(a.data) * 2
	if newCap == 0 {
		newCap = 1
	}
	next := make([]T, newCap)
	copy(next, a.data[:a.n])
	a.data = next
}

// Append stores v after the last element, doubling the capacity first
// if the array is full. Reports whether the element was stored; callers
// that need to detect a failed append compare lengths, matching the
// original contract.
func (a *Array[T]) Append(v T) bool {
	if a == nil {
		return false
	}
	if a.n == len(a.data) {
		a.grow()
	}
	a.data[a.n] = v
	a.n++
	return true
}

// Insert places v at index i, shifting elements in [i, Len) right by
// one. An index past the end is ignored and reports false; i == Len
// appends.
func (a *Array[T]) Insert(i int, v T) bool {
	if a == nil || i < 0 || i > a.n {
		return false
	}
	if a.n == len(a.data) {
		a.grow()
	}
	copy(a.data[i+1:a.n+1], a.data[i:a.n])
	a.data[i] = v
	a.n++
	return true
}

// Remove deletes the element at index i, shifting elements in
// [i+1, Len) left by one. An out-of-range index is ignored and reports
// false. When the new length falls below a quarter of the capacity and
// the capacity is above one, the capacity halves.
func (a *Array[T]) Remove(i int) bool {
	if a == nil || i < 0 || i >= a.n {
		return false
	}
	copy(a.data[i:], a.data[i+1:a.n])
	a.n--
	var zero T
	a.data[a.n] = zero

	if len(a.data) > 1 && a.n < len(a.data)/4 {
		a.shrink()
	}
	return true
}

func (a *Array[T]) shrink() {
	newCap := len(a.data) / 2
	next := make([]T, newCap)
	copy(next, a.data[:a.n])
	a.data = next
}

// Pop removes and returns the element at index i.
func (a *Array[T]) Pop(i int) (T, bool) {
	v, ok := a.At(i)
	if !ok {
		return v, false
	}
	a.Remove(i)
	return v, true
}

// Clear empties the array. Capacity is retained; stored elements are
// zeroed so they do not pin referenced memory.
func (a *Array[T]) Clear() {
	if a == nil {
		return
	}
	var zero T
	for i := 0; i < a.n; i++ {
		a.data[i] = zero
	}
	a.n = 0
}

// Destroy releases the backing storage. The array must not be used
// afterward.
func (a *Array[T]) Destroy() {
	if a == nil {
		return
	}
	a.data = nil
	a.n = 0
}
