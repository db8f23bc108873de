package sieve

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlprime/core"
	"github.com/katalvlaran/lvlprime/linear"
	"github.com/katalvlaran/lvlprime/segmented"
)

// Primes returns all primes in the half-open range [2, upperBound) in
// ascending order, dispatching on range size and execution policy.
//
// Boundary policy: Primes(2) and anything below it yield the empty set;
// Primes(3) yields [2]. The bound itself is never included.
//
// Dispatch:
//   - upperBound within the linear threshold: one linear sieve. Parallel
//     requests up to twice the threshold take this path too — the fork
//     overhead exceeds the sieve.
//   - Sequential: base primes via the linear sieve, remainder swept by one
//     re-armed interval sieve.
//   - Parallel: the doubled-threshold small-primes pass and the segmented
//     remainder scan run as two concurrent tasks, joined fail-fast; the
//     small primes are merged in front of the segmented result.
//
// Complexity:
//   - Time:  O(n·log log n) work, spread over workers under Parallel
//   - Space: O(sqrt(n) + window × workers) beyond the output
func Primes[T core.Integer](upperBound T, opts ...Option) ([]T, error) {
	// 1) Build and validate configuration.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// 2) Validate the bound and settle the trivial cases.
	if upperBound < 0 {
		return nil, ErrNegativeBound
	}
	if upperBound <= 2 {
		return []T{}, nil
	}

	// 3) Small bounds: segmentation overhead beats the linear sieve.
	if upperBound <= core.LinearSieveLimit ||
		(cfg.Policy == Parallel && upperBound <= 2*core.LinearSieveLimit) {
		return linear.Sieve(upperBound)
	}

	// 4) Large bounds: policy-selected composition.
	if cfg.Policy == Sequential {
		return sequentialPrimes(upperBound, cfg.segmentedOptions())
	}

	return parallelPrimes(upperBound, cfg.segmentedOptions())
}

// Range returns all primes in the half-open range [lo, hi) in ascending
// order. The dispatch mirrors Primes, keyed on sqrt(hi); because the
// machinery computes base primes below lo for algorithmic reasons, the
// sorted result is trimmed from the front of entries below lo.
func Range[T core.Integer](lo, hi T, opts ...Option) ([]T, error) {
	// 1) Build and validate configuration.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// 2) Validate the range contract: hi >= lo >= 0.
	if lo < 0 {
		return nil, ErrNegativeBound
	}
	if hi < lo {
		return nil, ErrInvalidRange
	}
	if hi <= 2 {
		return []T{}, nil
	}

	// 3) Small ceilings run the linear sieve outright.
	if hi <= core.LinearSieveLimit ||
		(cfg.Policy == Parallel && hi <= 2*core.LinearSieveLimit) {
		primes, err := linear.Sieve(hi)
		if err != nil {
			return nil, err
		}

		return trimBelow(primes, lo), nil
	}

	segOpts := cfg.segmentedOptions()

	// 4) Base primes below sqrt(hi) are needed regardless of lo; the
	//    remainder is sieved from wherever the base coverage ends or lo,
	//    whichever is higher, so nothing is produced twice.
	limit := core.BaseBound(hi)
	start := limit
	if lo > start {
		start = lo
	}

	var prefix, rest []T
	var err error
	if cfg.Policy == Sequential {
		if prefix, err = sequentialPrimes(limit, segOpts); err != nil {
			return nil, err
		}
		if rest, err = segmented.Sequential(start, hi, prefix, segOpts...); err != nil {
			return nil, err
		}
	} else {
		if prefix, rest, err = parallelRange(limit, start, hi, segOpts); err != nil {
			return nil, err
		}
	}

	// 5) Merge in range order, then trim entries below lo.
	return trimBelow(append(prefix, rest...), lo), nil
}

// sequentialPrimes returns all primes below hi on the calling goroutine:
// a linear sieve up to the threshold (or up to sqrt(hi) recursively when
// that itself is large), then one re-armed interval sieve over the
// remainder. Recursion depth is log log hi.
func sequentialPrimes[T core.Integer](hi T, segOpts []segmented.Option) ([]T, error) {
	if hi <= core.LinearSieveLimit {
		return linear.Sieve(hi)
	}

	// Base coverage must reach sqrt(hi), but sieving linearly below the
	// threshold is cheaper than windowing there.
	pivot := core.BaseBound(hi)
	if pivot < core.LinearSieveLimit {
		pivot = core.LinearSieveLimit
	}

	base, err := sequentialPrimes(pivot, segOpts)
	if err != nil {
		return nil, err
	}

	rest, err := segmented.Sequential(pivot, hi, base, segOpts...)
	if err != nil {
		return nil, err
	}

	return append(base, rest...), nil
}

// parallelPrimes splits [2, hi) at twice the linear threshold: the small
// side runs the linear sieve while the large side runs the self-seeding
// segmented scan, on two concurrent tasks. The join is fail-fast; the
// merge is by range position, never completion order.
func parallelPrimes[T core.Integer](hi T, segOpts []segmented.Option) ([]T, error) {
	var small, rest []T

	grp := new(errgroup.Group)
	grp.Go(func() error {
		var err error
		small, err = linear.Sieve(T(2 * core.LinearSieveLimit))

		return err
	})
	grp.Go(func() error {
		var err error
		rest, err = segmented.Primes(T(2*core.LinearSieveLimit), hi, segOpts...)

		return err
	})
	if err := grp.Wait(); err != nil {
		return nil, fmt.Errorf("sieve: parallel pass failed: %w", err)
	}

	return append(small, rest...), nil
}

// parallelRange produces the base prefix (primes below limit) and the
// remainder [start, hi) for Range's parallel policy. When limit is small
// the prefix is one linear sieve and runs alongside the remainder scan;
// otherwise the prefix itself is split linear-vs-segmented first and the
// remainder is sieved against it afterwards.
func parallelRange[T core.Integer](limit, start, hi T, segOpts []segmented.Option) (prefix, rest []T, err error) {
	grp := new(errgroup.Group)

	if limit <= 2*core.LinearSieveLimit {
		grp.Go(func() error {
			var taskErr error
			prefix, taskErr = linear.Sieve(limit)

			return taskErr
		})
		grp.Go(func() error {
			var taskErr error
			rest, taskErr = segmented.Primes(start, hi, segOpts...)

			return taskErr
		})
		if err = grp.Wait(); err != nil {
			return nil, nil, fmt.Errorf("sieve: parallel pass failed: %w", err)
		}

		return prefix, rest, nil
	}

	// sqrt(hi) itself is large: build the base table with the same
	// two-task split before attacking the remainder.
	var small, mid []T
	grp.Go(func() error {
		var taskErr error
		small, taskErr = linear.Sieve(T(2 * core.LinearSieveLimit))

		return taskErr
	})
	grp.Go(func() error {
		var taskErr error
		mid, taskErr = segmented.Primes(T(2*core.LinearSieveLimit), limit, segOpts...)

		return taskErr
	})
	if err = grp.Wait(); err != nil {
		return nil, nil, fmt.Errorf("sieve: parallel pass failed: %w", err)
	}

	prefix = append(small, mid...)
	if rest, err = segmented.Sieve(start, hi, prefix, segOpts...); err != nil {
		return nil, nil, err
	}

	return prefix, rest, nil
}

// trimBelow drops leading entries below lo from the sorted slice — a
// linear scan from the front, since everything is ascending.
func trimBelow[T core.Integer](primes []T, lo T) []T {
	cut := 0
	for cut < len(primes) && primes[cut] < lo {
		cut++
	}

	return primes[cut:]
}
