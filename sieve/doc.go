// Package sieve is the top-level prime-generation engine: given an upper
// bound (Primes) or a range (Range) and an execution Policy, it selects
// the cheapest algorithm composition and returns the merged, ordered
// prime set.
//
// 🚀 Dispatch, by range size:
//
//	upperBound ≤ 2                    → empty set (primes live in [2, hi))
//	upperBound ≤ core.LinearSieveLimit → direct linear sieve
//	Sequential policy                 → linear sieve for base primes, then a
//	                                    single re-armed interval sieve swept
//	                                    window by window over the remainder
//	Parallel policy                   → the linear small-primes pass and the
//	                                    segmented remainder scan run on two
//	                                    concurrent tasks, joined fail-fast,
//	                                    small primes merged in front
//
// Range(lo, hi) uses the same dispatch keyed on sqrt(hi) and trims leading
// entries below lo from the sorted result (the machinery computes base
// primes below lo for algorithmic reasons).
//
// ✨ Guarantees:
//
//   - Output is strictly ascending, duplicate-free, deterministic: the
//     same arguments produce the identical slice under either policy and
//     any scheduling.
//   - Half-open everywhere: Primes(n) is the primes in [2, n), so
//     Primes(2) is empty and Primes(3) is [2].
//   - Fail-fast: invalid ranges are rejected, a failing subtask aborts
//     the whole request, and no partial results are returned.
//
// Example:
//
//	primes, err := sieve.Primes(10_000_000, sieve.WithPolicy(sieve.Parallel))
//
// See example_test.go for more.
package sieve
