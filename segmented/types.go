package segmented

import (
	"errors"
	"math"
	"runtime"

	"github.com/klauspost/cpuid/v2"

	"github.com/katalvlaran/lvlprime/core"
)

// Sentinel errors returned by the segmented sieve.
var (
	// ErrNegativeBound indicates a range with a negative lower bound.
	ErrNegativeBound = errors.New("segmented: bounds must be non-negative")

	// ErrInvalidRange indicates a range with hi < lo.
	ErrInvalidRange = errors.New("segmented: hi must be >= lo")

	// ErrRangeTooLarge indicates that the window partition of the
	// requested range cannot be indexed on this platform.
	ErrRangeTooLarge = errors.New("segmented: window count exceeds addressable slice size")

	// ErrBadWindowSize indicates WithWindowSize was given a non-positive
	// size.
	ErrBadWindowSize = errors.New("segmented: window size must be positive")

	// ErrBadWorkers indicates WithWorkers was given a non-positive count.
	ErrBadWorkers = errors.New("segmented: worker count must be positive")
)

const (
	// fallbackCacheBytes is the L1 data-cache size assumed when hardware
	// detection is unavailable (the classic 32 KiB).
	fallbackCacheBytes = 32768

	// cacheAmortization is how many sieved values each cache byte is
	// stretched across; ×8 keeps re-arm overhead negligible while the
	// window stays cache-resident.
	cacheAmortization = 8
)

// Options configures window partitioning and worker dispatch.
//
// WindowSize – values per window; defaults to the detected L1 data-cache
// size × 8 (fallback 32768 × 8 when detection fails).
// Workers    – maximum concurrently sieving window tasks; defaults to
// runtime.GOMAXPROCS(0).
type Options struct {
	WindowSize int // Values per window; last window truncated to hi.
	Workers    int // Concurrency cap for window tasks.
}

// Option represents a functional option for configuring segmented sieving.
type Option func(*Options)

// WithWindowSize overrides the cache-derived window size.
// Must pass a positive value; zero or negative panic with ErrBadWindowSize.
func WithWindowSize(size int) Option {
	return func(o *Options) {
		if size <= 0 {
			panic(ErrBadWindowSize.Error())
		}
		o.WindowSize = size
	}
}

// WithWorkers caps the number of concurrently sieving window tasks.
// Must pass a positive value; zero or negative panic with ErrBadWorkers.
func WithWorkers(workers int) Option {
	return func(o *Options) {
		if workers <= 0 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = workers
	}
}

// DefaultOptions returns an Options struct initialized with the
// cache-derived window size and the available hardware concurrency. Use
// this as the starting point for functional-option overrides.
func DefaultOptions() Options {
	return Options{
		WindowSize: defaultWindowSize(),
		Workers:    runtime.GOMAXPROCS(0),
	}
}

// defaultWindowSize derives the window span from the detected L1 data
// cache, falling back to the 32 KiB convention when the CPU does not
// report one.
func defaultWindowSize() int {
	if l1 := cpuid.CPU.Cache.L1D; l1 > 0 {
		return l1 * cacheAmortization
	}

	return fallbackCacheBytes * cacheAmortization
}

// maxWindows caps the partition length so results can be indexed by int.
const maxWindows = math.MaxInt >> 1

// window is one half-open partition cell [lo, hi).
type window[T core.Integer] struct {
	lo, hi T
}

// validateRange enforces the shared range contract: 0 <= lo <= hi.
func validateRange[T core.Integer](lo, hi T) error {
	if lo < 0 {
		return ErrNegativeBound
	}
	if hi < lo {
		return ErrInvalidRange
	}

	return nil
}

// partition splits [lo, hi) into contiguous, non-overlapping windows of
// the given size (the last one truncated to hi), covering the range
// exactly once, in ascending order.
func partition[T core.Integer](lo, hi T, size int) ([]window[T], error) {
	if hi == lo {
		return nil, nil
	}

	span := uint64(hi - lo)
	count := (span + uint64(size) - 1) / uint64(size)
	if count > maxWindows {
		return nil, ErrRangeTooLarge
	}

	windows := make([]window[T], 0, int(count))
	step := T(size)
	for cursor := lo; cursor < hi; cursor += step {
		next := cursor + step
		if next > hi || next < cursor {
			// Truncate the last window (and absorb wrap-around at the top
			// of the type's range).
			next = hi
		}
		windows = append(windows, window[T]{lo: cursor, hi: next})
	}

	return windows, nil
}
