// Package lvlprime is your in-memory playground for generating prime
// numbers — from a classic linear sieve to cache-aware segmented sieving
// with parallel window dispatch.
//
// 🚀 What is lvlprime?
//
//	A modern, generic library that composes several sieve algorithms and
//	picks the right one for the job:
//		• Linear sieve: true O(n) smallest-prime-factor sieve for small bounds
//		• Interval sieve: re-armable bitmask sieve over one window [lo, hi)
//		• Mask sieve: one-shot window sieve with parallel composite marking
//		• Segmented sieve: cache-sized windows dispatched onto bounded workers
//		• Engine: adaptive dispatch + sequential/parallel execution policies
//
// ✨ Why choose lvlprime?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – deterministic ordered output under any scheduling
//   - Generic – works with any built-in integer type via core.Integer
//   - Cache-aware – segment windows sized from the detected L1 data cache
//
// Under the hood, everything is organized under five subpackages:
//
//	core/      — shared Integer constraint, integer sqrt & π(x) estimation
//	linear/    — O(n) least-divisor sieve for small upper bounds
//	interval/  — re-armable window sieve + one-shot parallel mask sieve
//	segmented/ — window partitioning, worker dispatch, in-order merge
//	sieve/     — top-level engine: Primes, Range, execution Policy
//
// Quick example:
//
//	primes, err := sieve.Primes(1_000_000, sieve.WithPolicy(sieve.Parallel))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(primes[:4]) // [2 3 5 7]
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/lvlprime
package lvlprime
