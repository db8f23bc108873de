// Package sieve_test provides runnable examples for the engine.
package sieve_test

import (
	"fmt"

	"github.com/katalvlaran/lvlprime/sieve"
)

// ExamplePrimes demonstrates the default (sequential) engine.
func ExamplePrimes() {
	// 1) All primes below 30; dispatch picks the linear sieve here.
	primes, err := sieve.Primes(30)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(primes)
	// Output: [2 3 5 7 11 13 17 19 23 29]
}

// ExamplePrimes_parallel demonstrates the parallel policy on a range large
// enough to be segmented. The output is identical to the sequential
// policy's — scheduling never leaks into the result.
func ExamplePrimes_parallel() {
	primes, err := sieve.Primes(1_000_000, sieve.WithPolicy(sieve.Parallel))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) π(10^6) = 78498, and the slice is sorted ascending.
	fmt.Println(len(primes), primes[0], primes[len(primes)-1])
	// Output: 78498 2 999983
}

// ExampleRange demonstrates a bounded range query: only primes in
// [lo, hi) are returned, whatever base primes the machinery needed.
func ExampleRange() {
	primes, err := sieve.Range(10, 30)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(primes)
	// Output: [11 13 17 19 23 29]
}

// ExamplePolicy demonstrates that the policy is an explicit enumerated
// parameter, printable for logs and config round-trips.
func ExamplePolicy() {
	fmt.Println(sieve.Sequential, sieve.Parallel)
	// Output: sequential parallel
}
