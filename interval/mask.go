package interval

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/katalvlaran/lvlprime/core"
	"github.com/katalvlaran/lvlprime/linear"
)

// Mask returns all primes in [lo, hi) in ascending order, one-shot:
// base primes up to sqrt(hi) are computed via the linear sieve, composites
// are marked in parallel, and a single sequential scan extracts survivors.
//
// Parallel marking partitions the bitmask into contiguous chunks, one
// worker per chunk (capped at GOMAXPROCS); each chunk is marked against
// the full base table by exactly one goroutine, so no mask index is ever
// written by two workers. Completion order cannot affect the result: the
// survivor scan runs only after the join, in window order.
//
// Complexity:
//   - Time:  O(sqrt(hi) + (hi-lo)·log log hi), marking spread over workers
//   - Space: O(sqrt(hi) + (hi-lo))
func Mask[T core.Integer](lo, hi T) ([]T, error) {
	// 1) Validate the window contract up front.
	if err := validateWindow(lo, hi); err != nil {
		return nil, err
	}

	// 2) Compute base primes up to sqrt(hi).
	base, err := linear.Sieve(core.BaseBound(hi))
	if err != nil {
		return nil, fmt.Errorf("interval: base prime sieve failed: %w", err)
	}

	// 3) Allocate the window's bitmask, everything a candidate.
	mask := make([]bool, int(hi-lo))
	for i := range mask {
		mask[i] = true
	}

	// 4) Mark composites, fanning out across mask chunks.
	parallelMark(mask, lo, hi, base)

	// 5) Extract survivors in ascending order.
	out := make([]T, 0, core.PrimeCountRangeCeil(lo, hi))

	return appendSurvivors(out, mask, lo), nil
}

// parallelMark splits the mask into contiguous per-worker chunks and marks
// each chunk's composites on its own goroutine. A chunk [start, end) of
// the mask is itself just the window [lo+start, lo+end), so the sequential
// marking routine is reused verbatim per chunk.
func parallelMark[T core.Integer](mask []bool, lo, hi T, base []T) {
	span := len(mask)
	workers := runtime.GOMAXPROCS(0)
	if workers > span {
		workers = span
	}

	// Small windows are not worth the fan-out.
	if workers <= 1 || span < minParallelSpan {
		markComposites(mask, lo, hi, base)

		return
	}

	chunk := (span + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < span; start += chunk {
		end := start + chunk
		if end > span {
			end = span
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			markComposites(mask[start:end], lo+T(start), lo+T(end), base)
		}(start, end)
	}
	wg.Wait()
}

// minParallelSpan is the window size below which goroutine dispatch costs
// more than the marking it parallelizes.
const minParallelSpan = 1 << 12
