// Package interval implements bitmask sieving over a single bounded
// window [lo, hi): a re-armable Sieve for repeated contiguous windows and
// a one-shot Mask with parallel composite marking.
//
// 🚀 What is an interval sieve?
//
//	Given base primes covering everything up to sqrt(hi), composites in an
//	arbitrary window [lo, hi) can be struck without sieving from zero: for
//	each base prime p, clear the bitmask at every multiple of p inside the
//	window, starting at max(p², first multiple of p ≥ lo). Surviving
//	positions, translated back to absolute values, are the window's primes.
//
// ✨ Two flavors:
//
//   - Sieve — constructed once against a base-prime table, then re-armed
//     for successive windows via NewRange without reallocating the mask.
//     This amortizes setup across the many small windows of a segmented
//     scan: O(window) per reset instead of O(window + sqrt(hi)).
//   - Mask — one-shot convenience: computes its own base primes via the
//     linear sieve, then marks composites in parallel across contiguous
//     mask chunks (one goroutine per chunk, capped at GOMAXPROCS) before a
//     single in-order survivor scan.
//
// Special case: positions holding values below 2 are forced non-prime
// regardless of mask state (neither 0 nor 1 is prime).
//
// Complexity:
//
//   - Time:  O((hi-lo)·log log hi) marking + O(hi-lo) extraction
//   - Space: O(hi-lo) for the bitmask
//
// See example_test.go for runnable usage.
package interval
