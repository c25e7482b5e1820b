package deferred

import (
	"errors"
	"slices"
)

// Vec represents a vector whose contents are produced lazily by a fetch
// function. The fetch function runs at most once, on the first operation that
// needs the contents; until then the vector is deferred and holds nothing.
// A Vec must be created with [New] or [MustNew]; the zero value is not ready for use.
//
// A Vec is not safe for concurrent use. Callers that share one between
// goroutines must serialize every method call with their own lock.
type Vec[T any] struct {
	items []T
	fetch func() []T
	ready bool
}

// New creates a new deferred vector backed by fetch.
// The fetch function is not called here; it runs once, on the first access to
// the vector's contents. The fetch function must not be nil.
func New[T any](fetch func() []T) (*Vec[T], error) {
	if fetch == nil {
		return nil, errors.New("fetch function must not be nil")
	}

	return &Vec[T]{fetch: fetch}, nil
}

// MustNew creates a new deferred vector backed by fetch.
// It panics if fetch is nil.
func MustNew[T any](fetch func() []T) *Vec[T] {
	vec, err := New(fetch)
	if err != nil {
		panic(err)
	}
	return vec
}

// IsDeferred reports whether the fetch function has not run yet.
// It never triggers materialization, so laziness can be observed without
// forcing it.
func (v *Vec[T]) IsDeferred() bool {
	return !v.ready
}

// materialize runs the fetch function and caches its result. It is the single
// materialization point: every accessor that needs the contents calls it
// first. Once the vector is materialized the fetch function is dropped, so
// calling materialize again is a no-op.
func (v *Vec[T]) materialize() {
	if v.ready {
		return
	}

	v.items = v.fetch()
	v.fetch = nil
	v.ready = true
}

// Len returns the number of elements in the vector,
// materializing it if needed.
func (v *Vec[T]) Len() int {
	v.materialize()
	return len(v.items)
}

// IsEmpty reports whether the vector has no elements,
// materializing it if needed.
func (v *Vec[T]) IsEmpty() bool {
	return v.Len() == 0
}

// At returns the element at index i.
// It returns the zero value and false when i is out of range; a false result
// is the only out-of-range signal, no panic is raised. The element is returned
// by value, so mutating it does not affect the vector.
func (v *Vec[T]) At(i int) (T, bool) {
	v.materialize()

	var zero T
	if i < 0 || i >= len(v.items) {
		return zero, false
	}

	return v.items[i], true
}

// Values returns a copy of the vector's contents in insertion order.
// The returned slice is independent of the vector: mutating it does not affect
// subsequent calls.
func (v *Vec[T]) Values() []T {
	v.materialize()
	return slices.Clone(v.items)
}

// Append appends values to the end of the vector, materializing it first.
func (v *Vec[T]) Append(values ...T) {
	v.materialize()
	v.items = append(v.items, values...)
}
