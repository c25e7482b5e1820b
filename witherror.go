package deferred

import (
	"errors"
	"fmt"
	"slices"
)

// ErrOutOfRange is reported by [VecWithError.At] when the index is outside
// the vector's bounds. Use [errors.Is] to match it.
var ErrOutOfRange = errors.New("index out of range")

// VecWithError represents a vector whose contents are produced lazily by a
// fetch function that can fail. A fetch failure propagates to the caller and
// leaves the vector deferred, so the next access retries the fetch; once the
// fetch succeeds it never runs again.
// A VecWithError must be created with [NewWithError] or [MustNewWithError];
// the zero value is not ready for use.
//
// Like [Vec], a VecWithError is not safe for concurrent use.
type VecWithError[T any] struct {
	items []T
	fetch func() ([]T, error)
	ready bool
}

// NewWithError creates a new deferred vector backed by a fetch function that
// can fail. The fetch function is not called here; it runs on the first access
// to the vector's contents and is retried on the next access if it fails.
// The fetch function must not be nil.
func NewWithError[T any](fetch func() ([]T, error)) (*VecWithError[T], error) {
	if fetch == nil {
		return nil, errors.New("fetch function must not be nil")
	}

	return &VecWithError[T]{fetch: fetch}, nil
}

// MustNewWithError creates a new deferred vector backed by a fetch function
// that can fail. It panics if fetch is nil.
func MustNewWithError[T any](fetch func() ([]T, error)) *VecWithError[T] {
	vec, err := NewWithError(fetch)
	if err != nil {
		panic(err)
	}
	return vec
}

// IsDeferred reports whether the fetch function has not succeeded yet.
// It never triggers materialization.
func (v *VecWithError[T]) IsDeferred() bool {
	return !v.ready
}

// materialize runs the fetch function and caches its result. On fetch failure
// the vector keeps its fetch function and stays deferred, so the caller of the
// next accessor retries. On success the fetch function is dropped and
// materialize becomes a no-op.
func (v *VecWithError[T]) materialize() error {
	if v.ready {
		return nil
	}

	items, err := v.fetch()
	if err != nil {
		return err
	}

	v.items = items
	v.fetch = nil
	v.ready = true
	return nil
}

// Len returns the number of elements in the vector, materializing it if
// needed. A non-nil error is the fetch function's failure.
func (v *VecWithError[T]) Len() (int, error) {
	if err := v.materialize(); err != nil {
		return 0, err
	}
	return len(v.items), nil
}

// IsEmpty reports whether the vector has no elements, materializing it if
// needed. A non-nil error is the fetch function's failure.
func (v *VecWithError[T]) IsEmpty() (bool, error) {
	n, err := v.Len()
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// At returns the element at index i. When i is out of range the error wraps
// [ErrOutOfRange]; any other non-nil error is the fetch function's failure.
// The element is returned by value.
func (v *VecWithError[T]) At(i int) (T, error) {
	var zero T

	if err := v.materialize(); err != nil {
		return zero, err
	}

	if i < 0 || i >= len(v.items) {
		return zero, fmt.Errorf("index %d with length %d: %w", i, len(v.items), ErrOutOfRange)
	}

	return v.items[i], nil
}

// Values returns a copy of the vector's contents in insertion order.
// The returned slice is independent of the vector. A non-nil error is the
// fetch function's failure.
func (v *VecWithError[T]) Values() ([]T, error) {
	if err := v.materialize(); err != nil {
		return nil, err
	}
	return slices.Clone(v.items), nil
}

// Append appends values to the end of the vector, materializing it first.
// When materialization fails the values are not appended.
func (v *VecWithError[T]) Append(values ...T) error {
	if err := v.materialize(); err != nil {
		return err
	}

	v.items = append(v.items, values...)
	return nil
}
