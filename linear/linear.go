package linear

import (
	"github.com/katalvlaran/lvlprime/core"
)

// Sieve returns all primes in the half-open range [2, upperBound) in
// ascending order.
//
// The scan maintains a least-divisor table sized upperBound+1. When
// table[i] is still zero, i is prime: it is recorded and table[i] is set
// to i. Then, for every already-found prime p with p <= table[i] and
// i*p <= upperBound, table[i*p] is set to p. Each composite is therefore
// marked exactly once, by its smallest prime factor.
//
// Boundary policy: for any upperBound < 2 the result is an empty,
// non-nil slice. A negative bound returns ErrNegativeBound; a bound whose
// table cannot be addressed returns ErrBoundTooLarge.
//
// Complexity:
//   - Time:  O(n)
//   - Space: O(n), discarded on return
func Sieve[T core.Integer](upperBound T) ([]T, error) {
	// 1) Fail fast on contract violations before touching memory.
	if upperBound < 0 {
		return nil, ErrNegativeBound
	}
	if uint64(upperBound) > maxTableBound {
		return nil, ErrBoundTooLarge
	}

	// 2) Primes below 2 form the empty set.
	if upperBound < 2 {
		return []T{}, nil
	}

	// 3) Allocate the transient least-divisor table. Index i holds the
	//    smallest prime factor of i once discovered, zero until then.
	bound := int(upperBound)
	leastDivisors := make([]T, bound+1)

	// 4) Reserve the output using the π(x) upper bound so the append loop
	//    below never reallocates.
	primes := make([]T, 0, core.PrimeCountCeil(upperBound))

	// 5) Single ascending scan; i is prime iff nothing smaller divided it.
	var product int
	for i := 2; i < bound; i++ {
		if leastDivisors[i] == 0 {
			leastDivisors[i] = T(i)
			primes = append(primes, T(i))
		}

		// 6) Strike i*p for each found prime p up to the least divisor of
		//    i. Both break conditions are monotone in p, so each composite
		//    is visited through exactly one (i, p) pair.
		for _, p := range primes {
			if p > leastDivisors[i] {
				break
			}
			product = i * int(p)
			if product > bound {
				break
			}
			leastDivisors[product] = p
		}
	}

	return primes, nil
}
