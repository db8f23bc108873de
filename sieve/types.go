package sieve

import (
	"errors"

	"github.com/katalvlaran/lvlprime/segmented"
)

// Sentinel errors returned by the engine.
var (
	// ErrNegativeBound indicates a negative bound; the contract requires
	// hi >= lo >= 0, and rejecting loudly surfaces caller bugs instead of
	// silently returning an empty set.
	ErrNegativeBound = errors.New("sieve: bounds must be non-negative")

	// ErrInvalidRange indicates a range with hi < lo.
	ErrInvalidRange = errors.New("sieve: hi must be >= lo")

	// ErrBadPolicy indicates an execution policy outside the enumerated
	// set {Sequential, Parallel}.
	ErrBadPolicy = errors.New("sieve: unknown execution policy")

	// ErrBadWindowSize indicates WithWindowSize was given a non-positive
	// size.
	ErrBadWindowSize = errors.New("sieve: window size must be positive")

	// ErrBadWorkers indicates WithWorkers was given a non-positive count.
	ErrBadWorkers = errors.New("sieve: worker count must be positive")
)

// Policy selects how the engine executes above the linear threshold.
// It is an explicit enumerated parameter: callers state the policy, the
// engine never infers it from anything else.
type Policy int

const (
	// Sequential runs every phase on the calling goroutine, reusing one
	// interval sieve across windows.
	Sequential Policy = iota

	// Parallel runs the small-primes pass concurrently with the segmented
	// remainder scan and dispatches window tasks onto bounded workers.
	Parallel
)

// String implements fmt.Stringer for log and test output.
func (p Policy) String() string {
	switch p {
	case Sequential:
		return "sequential"
	case Parallel:
		return "parallel"
	default:
		return "unknown"
	}
}

// Options configures one engine call.
//
// Policy     – execution policy (default Sequential).
// WindowSize – segmented window override; 0 keeps the cache-derived default.
// Workers    – segmented worker cap override; 0 keeps GOMAXPROCS.
type Options struct {
	Policy     Policy
	WindowSize int
	Workers    int
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// WithPolicy selects the execution policy. Validity is checked when the
// engine runs (ErrBadPolicy), so policies can be forwarded from config.
func WithPolicy(p Policy) Option {
	return func(o *Options) {
		o.Policy = p
	}
}

// WithWindowSize overrides the segmented window size.
// Must pass a positive value; zero or negative panic with ErrBadWindowSize.
func WithWindowSize(size int) Option {
	return func(o *Options) {
		if size <= 0 {
			panic(ErrBadWindowSize.Error())
		}
		o.WindowSize = size
	}
}

// WithWorkers caps the segmented worker count.
// Must pass a positive value; zero or negative panic with ErrBadWorkers.
func WithWorkers(workers int) Option {
	return func(o *Options) {
		if workers <= 0 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = workers
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults: Sequential policy, cache-derived window size, GOMAXPROCS
// workers.
func DefaultOptions() Options {
	return Options{
		Policy:     Sequential,
		WindowSize: 0,
		Workers:    0,
	}
}

// segmentedOptions translates engine overrides into segmented options.
func (o Options) segmentedOptions() []segmented.Option {
	var opts []segmented.Option
	if o.WindowSize > 0 {
		opts = append(opts, segmented.WithWindowSize(o.WindowSize))
	}
	if o.Workers > 0 {
		opts = append(opts, segmented.WithWorkers(o.Workers))
	}

	return opts
}

// validate rejects configurations the engine cannot run.
func (o Options) validate() error {
	if o.Policy != Sequential && o.Policy != Parallel {
		return ErrBadPolicy
	}

	return nil
}
