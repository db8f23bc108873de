package interval

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvlprime/core"
)

// Sentinel errors returned by the interval sieves.
var (
	// ErrNegativeBound indicates a window with a negative lower bound.
	ErrNegativeBound = errors.New("interval: bounds must be non-negative")

	// ErrInvalidRange indicates a window with hi < lo.
	ErrInvalidRange = errors.New("interval: hi must be >= lo")

	// ErrWindowTooLarge indicates that the bitmask for the requested
	// window cannot be indexed (or allocated) on this platform.
	ErrWindowTooLarge = errors.New("interval: window exceeds addressable bitmask size")

	// ErrEmptyBase indicates that no base primes were supplied for a
	// window that contains composites. Callers must provide every prime
	// up to sqrt(hi); the linear sieve produces exactly that table.
	ErrEmptyBase = errors.New("interval: base primes required for windows above 4")
)

// maxWindowBound caps the bitmask length so every offset stays within int.
const maxWindowBound = math.MaxInt >> 1

// validateWindow enforces the shared window contract: 0 <= lo <= hi and an
// int-addressable span.
func validateWindow[T core.Integer](lo, hi T) error {
	if lo < 0 {
		return ErrNegativeBound
	}
	if hi < lo {
		return ErrInvalidRange
	}
	if uint64(hi-lo) > maxWindowBound {
		return ErrWindowTooLarge
	}

	return nil
}
