package samplelog

// Ring is a fixed-capacity circular buffer that keeps the newest values.
type Ring[T any] struct {
	buf   []T
	pos   int
	count int
}

// NewRing creates a ring with the given capacity (minimum 1).
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring[T]{
		buf: make([]T, capacity),
	}
}

// Push adds a value, overwriting the oldest once full.
func (r *Ring[T]) Push(val T) {
	r.buf[r.pos] = val
	r.pos = (r.pos + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

// Values returns all stored values in chronological order.
func (r *Ring[T]) Values() []T {
	if r.count == 0 {
		return nil
	}
	result := make([]T, r.count)
	if r.count < len(r.buf) {
		copy(result, r.buf[:r.count])
	} else {
		n := copy(result, r.buf[r.pos:])
		copy(result[n:], r.buf[:r.pos])
	}
	return result
}

// Last returns the most recent value and false if empty.
func (r *Ring[T]) Last() (T, bool) {
	var zero T
	if r.count == 0 {
		return zero, false
	}
	idx := (r.pos - 1 + len(r.buf)) % len(r.buf)
	return r.buf[idx], true
}

// Len returns the number of stored values.
func (r *Ring[T]) Len() int {
	return r.count
}

// Cap returns the capacity.
func (r *Ring[T]) Cap() int {
	return len(r.buf)
}

// Reset drops all values.
func (r *Ring[T]) Reset() {
	var zero T
	for i := range r.buf {
		r.buf[i] = zero
	}
	r.pos = 0
	r.count = 0
}
