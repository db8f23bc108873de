package interval

import (
	"github.com/katalvlaran/lvlprime/core"
)

// Sieve is a re-armable bitmask sieve over one window [lo, hi).
//
// A Sieve is constructed once against a base-prime table covering all
// primes up to sqrt(hi), and can then be pointed at a new window with
// NewRange without reallocating the bitmask. The zero value is not usable;
// construct with New.
//
// A Sieve is owned by a single goroutine: it carries mutable marking
// state. Concurrent window sieving uses one Sieve per task (see the
// segmented package).
type Sieve[T core.Integer] struct {
	lo, hi T      // current half-open window
	base   []T    // base primes, read-only after construction
	mask   []bool // mask[i] == true means lo+i is still a candidate
}

// New constructs a Sieve armed for [lo, hi) against the supplied base
// primes and marks the window's composites immediately.
//
// The base table must contain every prime up to sqrt(hi'), where hi' is
// the largest upper bound this Sieve will ever be re-armed to; the linear
// sieve up to core.BaseBound(hi') produces exactly that table. The base
// slice is retained and must not be mutated while the Sieve is in use.
//
// Errors: ErrNegativeBound, ErrInvalidRange, ErrWindowTooLarge on window
// contract violations; ErrEmptyBase when the window can contain composites
// (hi > 4) but no base primes were given.
func New[T core.Integer](lo, hi T, base []T) (*Sieve[T], error) {
	if err := validateWindow(lo, hi); err != nil {
		return nil, err
	}
	if hi > 4 && len(base) == 0 {
		return nil, ErrEmptyBase
	}

	s := &Sieve[T]{base: base}
	s.arm(lo, hi)

	return s, nil
}

// NewRange re-arms the Sieve for a new window [lo, hi) and re-marks its
// composites. The bitmask is reused whenever its capacity suffices, so
// sweeping many contiguous windows costs O(window) per reset instead of
// O(window + sqrt(hi)).
func (s *Sieve[T]) NewRange(lo, hi T) error {
	if err := validateWindow(lo, hi); err != nil {
		return err
	}
	if hi > 4 && len(s.base) == 0 {
		return ErrEmptyBase
	}

	s.arm(lo, hi)

	return nil
}

// arm resets the window, the candidate mask, and strikes composites.
func (s *Sieve[T]) arm(lo, hi T) {
	s.lo, s.hi = lo, hi

	// 1) Size the mask to the window, reusing capacity when possible.
	span := int(hi - lo)
	if cap(s.mask) >= span {
		s.mask = s.mask[:span]
	} else {
		s.mask = make([]bool, span)
	}

	// 2) Every position starts as a candidate.
	for i := range s.mask {
		s.mask[i] = true
	}

	// 3) Strike composites against the base primes.
	markComposites(s.mask, lo, hi, s.base)
}

// Lo returns the current window's inclusive lower bound.
func (s *Sieve[T]) Lo() T { return s.lo }

// Hi returns the current window's exclusive upper bound.
func (s *Sieve[T]) Hi() T { return s.hi }

// AppendPrimes appends the current window's surviving values to dst in
// ascending order and returns the extended slice.
func (s *Sieve[T]) AppendPrimes(dst []T) []T {
	return appendSurvivors(dst, s.mask, s.lo)
}

// markComposites clears mask positions holding composite values of the
// half-open window [lo, hi). For each base prime p the strike starts at
// max(p², first multiple of p ≥ lo): anything smaller with p as a factor
// also has a smaller prime factor and is struck by that prime instead.
func markComposites[T core.Integer](mask []bool, lo, hi T, base []T) {
	// 1) 0 and 1 are never prime, whatever the mask says.
	for v := lo; v < hi && v < 2; v++ {
		mask[int(v-lo)] = false
	}

	// 2) The smallest composite is 4; shorter windows have nothing to mark.
	if hi <= 4 {
		return
	}

	// 3) Strike multiples of each base prime inside the window.
	var start T
	var ok bool
	for _, p := range base {
		if start, ok = firstMultiple(p, lo, hi); !ok {
			continue
		}
		for v := start; v < hi; v += p {
			mask[int(v-lo)] = false
		}
	}
}

// firstMultiple returns the first composite multiple of p inside [lo, hi),
// or ok=false when none exists. Requires hi > 4.
func firstMultiple[T core.Integer](p, lo, hi T) (T, bool) {
	// Primes above sqrt(hi-1) have no multiple in the window that is not
	// already covered by a smaller prime; this check also keeps p*p below
	// hi, so it cannot overflow for any representable window.
	if p < 2 || p > (hi-1)/p {
		return 0, false
	}

	// First multiple of p at or above lo, without overflowing lo+p.
	first := lo / p * p
	if first < lo {
		first += p
	}
	if sq := p * p; first < sq {
		first = sq
	}
	if first >= hi {
		return 0, false
	}

	return first, true
}

// appendSurvivors translates surviving mask offsets back to absolute
// values and appends them to dst in ascending order.
func appendSurvivors[T core.Integer](dst []T, mask []bool, lo T) []T {
	for i, candidate := range mask {
		if candidate {
			dst = append(dst, lo+T(i))
		}
	}

	return dst
}
