package linear

import (
	"errors"
	"math"
)

// Sentinel errors returned by the linear sieve.
var (
	// ErrNegativeBound indicates that a negative upper bound was supplied.
	// The contract requires upperBound >= 0; rejecting loudly surfaces
	// caller bugs instead of silently returning an empty set.
	ErrNegativeBound = errors.New("linear: upper bound is negative")

	// ErrBoundTooLarge indicates that the least-divisor table for the
	// requested bound cannot be indexed (or allocated) on this platform.
	ErrBoundTooLarge = errors.New("linear: upper bound exceeds addressable table size")
)

// maxTableBound caps the least-divisor table so that every index and every
// in-range product i*p stays within int.
const maxTableBound = math.MaxInt >> 1
