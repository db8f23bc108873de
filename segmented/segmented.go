package segmented

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlprime/core"
	"github.com/katalvlaran/lvlprime/interval"
	"github.com/katalvlaran/lvlprime/linear"
)

// Sieve returns all primes in [lo, hi) in ascending order, sieving
// cache-sized windows concurrently against the supplied base primes.
//
// The base table must contain every prime up to sqrt(hi) (the linear
// sieve up to core.BaseBound(hi) produces exactly that) and is shared
// read-only across all window tasks. Each task owns its output buffer
// exclusively until the join; buffers are then concatenated strictly in
// window order, never in completion order.
//
// Failure in any window fails the call: the first error is reported at
// the join and no partial result is produced.
//
// Complexity:
//   - Time:  O((hi-lo)·log log hi) work across min(Workers, windows) tasks
//   - Space: O(WindowSize × Workers) live masks + output
func Sieve[T core.Integer](lo, hi T, base []T, opts ...Option) ([]T, error) {
	// 1) Build and validate configuration.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validateRange(lo, hi); err != nil {
		return nil, err
	}

	// 2) Partition the range into contiguous windows.
	windows, err := partition(lo, hi, cfg.WindowSize)
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return []T{}, nil
	}

	// 3) Dispatch one interval-sieve task per window onto a bounded pool.
	//    results is indexed by window position; each slot is written by
	//    exactly one task.
	results := make([][]T, len(windows))
	grp := new(errgroup.Group)
	grp.SetLimit(cfg.Workers)
	for i, w := range windows {
		i, w := i, w
		grp.Go(func() error {
			task, taskErr := interval.New(w.lo, w.hi, base)
			if taskErr != nil {
				return fmt.Errorf("segmented: window [%v, %v): %w", w.lo, w.hi, taskErr)
			}
			results[i] = task.AppendPrimes(make([]T, 0, core.PrimeCountRangeCeil(w.lo, w.hi)))

			return nil
		})
	}

	// 4) Join; fail fast on the first window error.
	if err = grp.Wait(); err != nil {
		return nil, err
	}

	// 5) Concatenate in ascending window order. Windows are contiguous and
	//    disjoint, so the concatenation is already globally sorted.
	total := 0
	for _, r := range results {
		total += len(r)
	}
	out := make([]T, 0, total)
	for _, r := range results {
		out = append(out, r...)
	}

	return out, nil
}

// Sequential returns all primes in [lo, hi) in ascending order using a
// single re-armed interval sieve: one bitmask allocation, one NewRange per
// window. This is the engine's sequential-policy workhorse.
//
// Complexity:
//   - Time:  O((hi-lo)·log log hi), single-threaded
//   - Space: O(WindowSize) live mask + output
func Sequential[T core.Integer](lo, hi T, base []T, opts ...Option) ([]T, error) {
	// 1) Build and validate configuration.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validateRange(lo, hi); err != nil {
		return nil, err
	}

	out := make([]T, 0, core.PrimeCountRangeCeil(lo, hi))
	if lo == hi {
		return out, nil
	}

	// 2) Arm the sieve for the first window.
	step := T(cfg.WindowSize)
	cursor, next := lo, lo+step
	if next > hi || next < cursor {
		next = hi
	}
	task, err := interval.New(cursor, next, base)
	if err != nil {
		return nil, fmt.Errorf("segmented: window [%v, %v): %w", cursor, next, err)
	}
	out = task.AppendPrimes(out)

	// 3) Re-arm for each subsequent window, appending in range order.
	for cursor = next; cursor < hi; cursor = next {
		next = cursor + step
		if next > hi || next < cursor {
			next = hi
		}
		if err = task.NewRange(cursor, next); err != nil {
			return nil, fmt.Errorf("segmented: window [%v, %v): %w", cursor, next, err)
		}
		out = task.AppendPrimes(out)
	}

	return out, nil
}

// Primes returns all primes in [lo, hi) in ascending order, computing its
// own base primes first: directly via the linear sieve when sqrt(hi) is
// below the linear threshold, otherwise by extending a linear-sieved seed
// with a recursive segmented pass up to sqrt(hi).
func Primes[T core.Integer](lo, hi T, opts ...Option) ([]T, error) {
	// 1) Validate before computing base bounds (BaseBound assumes hi >= 0).
	if err := validateRange(lo, hi); err != nil {
		return nil, err
	}

	// 2) Base primes up to sqrt(hi).
	limit := core.BaseBound(hi)
	var base []T
	var err error
	if limit <= core.LinearSieveLimit {
		if base, err = linear.Sieve(limit); err != nil {
			return nil, fmt.Errorf("segmented: base prime sieve failed: %w", err)
		}
	} else {
		if base, err = linear.Sieve(T(core.LinearSieveLimit)); err != nil {
			return nil, fmt.Errorf("segmented: base prime sieve failed: %w", err)
		}
		// sqrt(hi) itself exceeds the direct-sieve threshold: extend the
		// seed with a recursive pass. Recursion depth is log log hi — the
		// bound shrinks by a square root per level.
		extension, extErr := Primes(T(core.LinearSieveLimit), limit, opts...)
		if extErr != nil {
			return nil, extErr
		}
		base = append(base, extension...)
	}

	// 3) Sieve the requested range against the full base table.
	return Sieve(lo, hi, base, opts...)
}
