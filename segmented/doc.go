// Package segmented implements cache-aware segmented sieving: a large
// range [lo, hi) is partitioned into fixed-size windows that fit the L1
// data cache, each window is sieved independently against one shared
// base-prime table, and the per-window results are concatenated strictly
// in partition order.
//
// 🚀 Why segment?
//
//	A monolithic bitmask over [2, N) for large N thrashes the cache and
//	holds O(N) memory. Sieving window by window keeps the working set
//	cache-resident and bounds memory to O(window + sqrt(N)).
//
// ✨ Execution modes:
//
//   - Sieve — one interval sieve task per window, dispatched onto a
//     bounded worker pool (errgroup with SetLimit). Results are indexed by
//     window position and merged in that order after the join, so task
//     completion order can never leak into the output. A failing window
//     fails the whole call: no partial results.
//   - Sequential — a single interval.Sieve re-armed per window via
//     NewRange, for callers that want the amortized single-threaded path.
//   - Primes — convenience entry that computes its own base primes: the
//     linear sieve when sqrt(hi) is small, extended by a recursive
//     segmented pass when sqrt(hi) itself exceeds the linear threshold.
//
// Window sizing: the default window is the detected L1 data-cache size ×8
// (klauspost/cpuid), falling back to 32 KiB ×8 when detection is
// unavailable. Override with WithWindowSize.
//
// Invariant: for any window size, the concatenation of per-window prime
// sets in ascending window order equals the prime set of one monolithic
// sieve over [lo, hi).
//
// Complexity:
//
//   - Time:  O((hi-lo)·log log hi + sqrt(hi)) work, spread over workers
//   - Space: O(window × workers + sqrt(hi))
//
// See example_test.go for runnable usage.
package segmented
