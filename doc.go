// Package deferred provides a generic vector whose contents are computed
// lazily by a user-supplied fetch function.
//
// Two vector types are provided:
//
//   - [Vec]: a deferred vector backed by a fetch function that cannot fail
//   - [VecWithError]: a deferred vector backed by a fetch function that can fail
//
// Both defer the fetch function until the first operation that needs the
// contents, run it at most once, and cache the result for the rest of the
// vector's lifetime.
//
// # Basic Usage
//
// Create a vector and access it; the fetch function runs on first access:
//
//	vec := deferred.MustNew(func() []int {
//	    return []int{1, 2, 3}
//	})
//	vec.IsDeferred() // true, nothing fetched yet
//	vec.Len()        // 3, fetch ran here
//	vec.IsDeferred() // false from now on
//
// # Observing Laziness
//
// [Vec.IsDeferred] never triggers the fetch, so it can be used to check
// whether the contents have been materialized without forcing them:
//
//	if vec.IsDeferred() {
//	    // fetch has not run yet
//	}
//
// # Fallible Fetch Functions
//
// When producing the contents can fail (a database read, an API call), use
// [VecWithError]. A fetch failure propagates to the caller and leaves the
// vector deferred, so the next access retries:
//
//	vec := deferred.MustNewWithError(func() ([]Row, error) {
//	    return loadRows(db)
//	})
//	n, err := vec.Len() // err is loadRows' error, if any
//
// # Copies
//
// Accessors hand out copies rather than the internal buffer: [Vec.Values]
// returns a fresh slice, and [Vec.At] returns the element by value. Mutating a
// returned slice never affects the vector. Element copies are shallow; if T
// contains pointers, the pointed-to data is shared.
//
// Neither type is safe for concurrent use. A vector shared between goroutines
// must be protected by the caller's own lock around every method call, because
// the deferred-to-materialized transition is not atomic.
package deferred
