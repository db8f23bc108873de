// Package linear implements the O(n) smallest-prime-factor sieve
// (the "linear sieve") for enumerating primes below a small bound.
//
// 🚀 What is a linear sieve?
//
//	A variant of the sieve of Eratosthenes in which every composite is
//	struck exactly once — by its smallest prime factor — instead of once
//	per prime divisor. The scan keeps a least-divisor table: table[i]
//	holds the smallest prime factor of i, or zero while i is still an
//	undiscovered prime.
//
// ✨ Key properties:
//   - True O(n) time: no composite is marked twice
//   - One allocation: the least-divisor table lives for a single call
//   - Pure and reentrant: no package state, safe from any goroutine
//   - Half-open contract: Sieve(n) returns the primes in [2, n)
//
// The linear sieve is the workhorse for small bounds and for producing
// the base-prime tables consumed by interval and segmented sieving; above
// core.LinearSieveLimit the windowed algorithms win.
//
// Complexity:
//
//   - Time:  O(n)
//   - Space: O(n) for the least-divisor table, freed on return
//
// See example_test.go for runnable usage.
package linear
