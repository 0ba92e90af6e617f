package seggo_bench_test

import (
	"fmt"
	"testing"

	"github.com/hupe1980/seggo"
	"github.com/hupe1980/seggo/testutil"
)

const benchSeed = 4711

type fixture struct {
	engine *seggo.Engine
}

func newFixture(b *testing.B, n, numMarkers, k int) *fixture {
	b.Helper()

	rng := testutil.NewRNG(benchSeed)
	strand := rng.Strand(n)
	markers := rng.Markers(numMarkers, k)

	engine, err := seggo.New(strand, markers, k)
	if err != nil {
		b.Fatal(err)
	}
	return &fixture{engine: engine}
}

func formatN(n int) string {
	if n >= 1000 {
		return fmt.Sprintf("n=%dk", n/1000)
	}
	return fmt.Sprintf("n=%d", n)
}

// BenchmarkSolve compares all strategies on the same random instances. The
// marker set is sparse relative to the alphabet, the regime where the trie
// walk's early stop pays off.
func BenchmarkSolve(b *testing.B) {
	sizes := []int{100, 1000, 10000, 50000}
	k := 50
	numMarkers := 1000

	for _, n := range sizes {
		fx := newFixture(b, n, numMarkers, k)

		for _, strategy := range seggo.Strategies {
			b.Run(fmt.Sprintf("%s/%s", strategy, formatN(n)), func(b *testing.B) {
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					_ = fx.engine.Solve(strategy)
				}
			})
		}
	}
}

// BenchmarkSolveDense uses markers sampled out of the strand itself, forcing
// deep trie walks at most positions. This is the adversarial regime for the
// trie-forward strategy.
func BenchmarkSolveDense(b *testing.B) {
	n := 10000
	k := 20

	rng := testutil.NewRNG(benchSeed)
	strand := rng.Strand(n)
	markers := rng.SubstringMarkers(strand, 500, k)

	engine, err := seggo.New(strand, markers, k)
	if err != nil {
		b.Fatal(err)
	}

	for _, strategy := range seggo.Strategies {
		b.Run(strategy.String(), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = engine.Solve(strategy)
			}
		})
	}
}

// BenchmarkBuild measures engine construction, dominated by trie building.
func BenchmarkBuild(b *testing.B) {
	markerCounts := []int{100, 1000, 10000}
	k := 50

	for _, count := range markerCounts {
		rng := testutil.NewRNG(benchSeed)
		strand := rng.Strand(1000)
		markers := rng.Markers(count, k)

		b.Run(fmt.Sprintf("markers=%d", count), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := seggo.New(strand, markers, k); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
