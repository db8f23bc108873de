package interval_test

import (
	"testing"

	"github.com/katalvlaran/lvlprime/core"
	"github.com/katalvlaran/lvlprime/interval"
	"github.com/katalvlaran/lvlprime/linear"
)

// BenchmarkMask measures one-shot window sieving, including the internal
// base-prime computation and parallel marking fan-out.
func BenchmarkMask(b *testing.B) {
	cases := []struct {
		name   string
		lo, hi uint64
	}{
		{"Low_1e5", 0, 100_000},
		{"Mid_1e6", 1_000_000, 2_000_000},
		{"High_1e9", 1_000_000_000, 1_001_000_000},
	}

	for _, tc := range cases {
		tc := tc
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := interval.Mask(tc.lo, tc.hi); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkSieve_NewRange measures the amortized window-reuse path: one
// Sieve swept across contiguous windows, against fresh construction per
// window for contrast.
func BenchmarkSieve_NewRange(b *testing.B) {
	const upper = 1 << 20
	const window = 1 << 14

	base, err := linear.Sieve(core.BaseBound(uint64(upper)))
	if err != nil {
		b.Fatal(err)
	}

	b.Run("Reused", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			s, err := interval.New(uint64(2), uint64(2+window), base)
			if err != nil {
				b.Fatal(err)
			}
			out := s.AppendPrimes(nil)
			for lo := uint64(2 + window); lo < upper; lo += window {
				if err = s.NewRange(lo, lo+window); err != nil {
					b.Fatal(err)
				}
				out = s.AppendPrimes(out)
			}
		}
	})

	b.Run("FreshPerWindow", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			var out []uint64
			for lo := uint64(2); lo < upper; lo += window {
				s, err := interval.New(lo, lo+window, base)
				if err != nil {
					b.Fatal(err)
				}
				out = s.AppendPrimes(out)
			}
		}
	})
}
