package core

import "math"

// ISqrt returns the floor of the square root of x.
//
// The float64 estimate is exact for x below 2^52 and may be off by one
// above that, so we correct the candidate with integer comparisons only.
// This keeps BaseBound trustworthy for 64-bit ranges where
// math.Sqrt(float64(x)) alone would drift.
//
// Complexity:
//   - Time:  O(1)
//   - Space: O(1)
func ISqrt[T Integer](x T) T {
	// 1) Small values: sqrt(0)=0; 1, 2 and 3 all floor to 1.
	if x < 1 {
		return 0
	}
	if x < 4 {
		return 1
	}

	// 2) Seed from the hardware sqrt.
	r := T(math.Sqrt(float64(x)))

	// 3) Nudge down while the candidate overshoots.
	for r > 0 && r > x/r {
		r--
	}

	// 4) Nudge up while the next candidate still fits.
	for (r+1) <= x/(r+1) {
		r++
	}

	return r
}

// BaseBound returns the exclusive upper bound on base primes required to
// sieve composites in any window below hi: isqrt(hi-1)+1. Every composite
// c < hi has a prime factor ≤ sqrt(c) ≤ isqrt(hi-1), so the primes in
// [2, BaseBound(hi)) are sufficient.
//
// For hi < 2 there is nothing to sieve and BaseBound returns 0.
func BaseBound[T Integer](hi T) T {
	if hi < 2 {
		return 0
	}

	return ISqrt(hi-1) + 1
}

// primeCountFactor is 30·ln(113)/113 — the tightest known constant c such
// that π(x) ≤ c·x/ln(x) holds for all x ≥ 2 (magic numbers from Wikipedia).
var primeCountFactor = 30 * math.Log(113) / 113

// PrimeCountCeil returns an upper bound on the number of primes below x,
// suitable for pre-sizing result slices. For x < 2 it returns 0.
//
// Complexity:
//   - Time:  O(1)
//   - Space: O(1)
func PrimeCountCeil[T Integer](x T) int {
	if x < 2 {
		return 0
	}

	return int(math.Floor(primeCountFactor * float64(x) / math.Log(float64(x))))
}

// PrimeCountRangeCeil estimates how many primes fall in the window
// [lo, hi): hi/ln(hi) - lo/ln(lo), floored at a small positive reserve so
// callers can always pre-size an append target. This is a reservation
// hint, not a bound.
func PrimeCountRangeCeil[T Integer](lo, hi T) int {
	if hi < 3 {
		return 0
	}

	estimate := float64(hi) / math.Log(float64(hi))
	if lo > 2 {
		estimate -= float64(lo) / math.Log(float64(lo))
	}
	if estimate < 16 {
		return 16
	}

	return int(estimate)
}
