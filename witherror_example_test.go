package deferred_test

import (
	"errors"
	"fmt"

	deferred "github.com/afmiguel/deferred-vector"
)

// This example demonstrates a fetch function that fails on its first attempt.
// The failure propagates to the caller and the vector stays deferred, so the
// next access retries.
func Example_fetchFailure() {
	attempts := 0
	vec := deferred.MustNewWithError(func() ([]int, error) {
		attempts++
		if attempts == 1 {
			return nil, errors.New("temporary failure")
		}
		return []int{1, 2, 3}, nil
	})

	_, err := vec.Len()
	fmt.Printf("First access: %v (deferred: %t)\n", err, vec.IsDeferred())

	n, err := vec.Len()
	fmt.Printf("Second access: %d elements, err=%v (deferred: %t)\n", n, err, vec.IsDeferred())

	// Output:
	// First access: temporary failure (deferred: true)
	// Second access: 3 elements, err=<nil> (deferred: false)
}

// This example shows the out-of-range sentinel reported by At.
func Example_outOfRange() {
	vec := deferred.MustNewWithError(func() ([]string, error) {
		return []string{"a", "b"}, nil
	})

	_, err := vec.At(5)
	fmt.Printf("Out of range? %t\n", errors.Is(err, deferred.ErrOutOfRange))

	// Output:
	// Out of range? true
}
