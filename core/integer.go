// Package core defines the shared numeric foundation for every sieve
// package: the Integer constraint, the tuned linear-sieve threshold, and
// the small integer-math helpers (integer square root, base-prime bounds,
// prime-count estimation) that the sieves build on.
//
// All helpers are pure functions with no package state, so they are safe
// to call from any number of goroutines.
package core

// Integer is the set of built-in integer types the sieves operate on.
// Callers pick the width; every sieve package is generic over this
// constraint. Sieve bounds must be non-negative, which each entry point
// validates explicitly, so signed types are welcome.
type Integer interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// LinearSieveLimit is the upper bound below which a direct linear sieve
// beats the setup cost of segmentation. 4096 is where benchmarked
// performance of the linear sieve begins to diverge from the windowed
// algorithms.
const LinearSieveLimit = 4096
