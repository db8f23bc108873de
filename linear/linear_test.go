// Package linear_test contains unit tests for the linear sieve.
// These tests validate the half-open boundary contract, input rejection,
// agreement with trial division, and determinism across repeated calls.
package linear_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/lvlprime/linear"
)

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestSieve_NegativeBound(t *testing.T) {
	// A negative bound is a caller bug and must be rejected loudly.
	_, err := linear.Sieve(-1)
	if !errors.Is(err, linear.ErrNegativeBound) {
		t.Fatalf("Expected ErrNegativeBound, got %v", err)
	}
}

func TestSieve_BoundBelowTwo(t *testing.T) {
	// 0, 1 and 2 all yield the empty set: there is no prime below 2,
	// and the range [2, 2) is empty.
	for _, bound := range []int{0, 1, 2} {
		primes, err := linear.Sieve(bound)
		if err != nil {
			t.Fatalf("Sieve(%d) returned error: %v", bound, err)
		}
		if primes == nil {
			t.Fatalf("Sieve(%d) returned nil; want empty non-nil slice", bound)
		}
		if len(primes) != 0 {
			t.Fatalf("Sieve(%d) = %v; want empty", bound, primes)
		}
	}
}

// ------------------------------------------------------------------------
// 2. Basic Functionality: Known values and the half-open upper bound.
// ------------------------------------------------------------------------

func TestSieve_KnownSmallValues(t *testing.T) {
	cases := []struct {
		bound int
		want  []int
	}{
		{3, []int{2}},
		{10, []int{2, 3, 5, 7}},
		{11, []int{2, 3, 5, 7}},  // 11 itself excluded: half-open [2, 11)
		{12, []int{2, 3, 5, 7, 11}},
		{30, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}},
	}
	for _, tc := range cases {
		got, err := linear.Sieve(tc.bound)
		if err != nil {
			t.Fatalf("Sieve(%d) returned error: %v", tc.bound, err)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Sieve(%d) = %v; want %v", tc.bound, got, tc.want)
		}
	}
}

// isPrimeByDivision is the independent oracle: n is prime iff it has no
// divisor other than 1 and itself.
func isPrimeByDivision(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}

	return true
}

func TestSieve_AgreesWithTrialDivision(t *testing.T) {
	const bound = 5000
	got, err := linear.Sieve(bound)
	if err != nil {
		t.Fatal(err)
	}

	want := make([]int, 0, len(got))
	for n := 2; n < bound; n++ {
		if isPrimeByDivision(n) {
			want = append(want, n)
		}
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Sieve(%d) disagrees with trial division: got %d primes, want %d", bound, len(got), len(want))
	}
}

// ------------------------------------------------------------------------
// 3. Contract Properties: ordering, determinism, generic widths.
// ------------------------------------------------------------------------

func TestSieve_StrictlyAscending(t *testing.T) {
	primes, err := linear.Sieve(4096)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(primes); i++ {
		if primes[i] <= primes[i-1] {
			t.Fatalf("output not strictly ascending at index %d: %d then %d", i, primes[i-1], primes[i])
		}
	}
}

func TestSieve_Deterministic(t *testing.T) {
	first, err := linear.Sieve(2048)
	if err != nil {
		t.Fatal(err)
	}
	second, err := linear.Sieve(2048)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("repeated calls with identical arguments diverged")
	}
}

func TestSieve_GenericWidths(t *testing.T) {
	// The same bound sieved through different Integer widths must agree
	// value for value.
	asInt, err := linear.Sieve(int(100))
	if err != nil {
		t.Fatal(err)
	}
	asUint64, err := linear.Sieve(uint64(100))
	if err != nil {
		t.Fatal(err)
	}
	asInt32, err := linear.Sieve(int32(100))
	if err != nil {
		t.Fatal(err)
	}

	if len(asInt) != len(asUint64) || len(asInt) != len(asInt32) {
		t.Fatalf("width mismatch: int=%d uint64=%d int32=%d", len(asInt), len(asUint64), len(asInt32))
	}
	for i := range asInt {
		if uint64(asInt[i]) != asUint64[i] || int32(asInt[i]) != asInt32[i] {
			t.Fatalf("value mismatch at index %d", i)
		}
	}
}
