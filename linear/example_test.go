// Package linear_test provides runnable examples for the linear sieve.
// Each example runs via “go test -run Example”, showing code and output.
package linear_test

import (
	"fmt"

	"github.com/katalvlaran/lvlprime/linear"
)

// ExampleSieve demonstrates enumerating the primes below 30.
// Complexity: O(n) — each composite is struck exactly once.
func ExampleSieve() {
	// 1) Sieve the half-open range [2, 30).
	primes, err := linear.Sieve(30)
	// 2) Handle any potential error (negative or oversized bound).
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Print the resulting prime set.
	fmt.Println(primes)
	// Output: [2 3 5 7 11 13 17 19 23 29]
}

// ExampleSieve_halfOpen highlights the half-open upper bound: the bound
// itself is never included, even when it is prime.
func ExampleSieve_halfOpen() {
	// 1) 11 is prime, but [2, 11) stops just short of it.
	primes, _ := linear.Sieve(11)
	fmt.Println(primes)

	// 2) Raising the bound by one admits it.
	primes, _ = linear.Sieve(12)
	fmt.Println(primes)
	// Output:
	// [2 3 5 7]
	// [2 3 5 7 11]
}
