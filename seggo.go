package seggo

import (
	"time"

	"github.com/hupe1980/seggo/trie"
)

// Strategy selects one of the solving strategies an Engine supports.
type Strategy int

// Constants representing the available solving strategies.
const (
	StrategyTopDown Strategy = iota
	StrategyBottomUp
	StrategyTrieForward
)

const strategyCount = 3

// Strategies lists all supported strategies, in iota order.
var Strategies = []Strategy{StrategyTopDown, StrategyBottomUp, StrategyTrieForward}

// String returns a string representation of the Strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyTopDown:
		return "TopDown"
	case StrategyBottomUp:
		return "BottomUp"
	case StrategyTrieForward:
		return "TrieForward"
	default:
		return "Unknown"
	}
}

// Engine holds one segmentation problem instance: a strand, a marker set and
// the maximum marker length k, plus the prefix index built from the markers.
//
// An Engine is immutable after construction. Solve calls allocate their own
// working tables, so a single Engine may be used from multiple goroutines
// concurrently, and any strategy may be invoked repeatedly in any order.
type Engine struct {
	strand  string
	markers map[string]struct{}
	index   *trie.Trie
	k       int
	n       int

	logger  *Logger
	metrics MetricsCollector
}

// New constructs an Engine for the given strand, marker set and maximum
// marker length k.
//
// It fails with ErrInvalidMarker if any marker is empty, and with ErrInvalidK
// if k < 1 while markers is non-empty or if any marker is longer than k
// (as *ErrMarkerTooLong). Duplicate markers collapse; the strand alphabet is
// unconstrained.
func New(strand string, markers []string, k int, optFns ...Option) (*Engine, error) {
	o := applyOptions(optFns)

	start := time.Now()
	e, err := build(strand, markers, k, o)
	o.metricsCollector.RecordBuild(len(markers), time.Since(start), err)
	o.logger.LogBuild(len(strand), len(markers), k, err)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func build(strand string, markers []string, k int, o options) (*Engine, error) {
	// k < 1 with a non-empty marker set falls out of the length check below:
	// every non-empty marker is then longer than k.
	set := make(map[string]struct{}, len(markers))
	for _, m := range markers {
		if len(m) == 0 {
			return nil, translateError(trie.ErrEmptyMarker)
		}
		if len(m) > k {
			return nil, &ErrMarkerTooLong{Marker: m, K: k}
		}
		set[m] = struct{}{}
	}

	index, err := trie.Build(markers)
	if err != nil {
		return nil, translateError(err)
	}

	return &Engine{
		strand:  strand,
		markers: set,
		index:   index,
		k:       k,
		n:       len(strand),
		logger:  o.logger,
		metrics: o.metricsCollector,
	}, nil
}

// Strand returns the strand this Engine was built for.
func (e *Engine) Strand() string { return e.strand }

// K returns the maximum marker length.
func (e *Engine) K() int { return e.k }

// MarkerCount returns the number of distinct markers.
func (e *Engine) MarkerCount() int { return e.index.Size() }

// Solve runs the given strategy and returns the maximum number of
// non-overlapping marker occurrences selectable within the strand.
// Unknown strategies fall back to StrategyTrieForward.
func (e *Engine) Solve(s Strategy) int {
	switch s {
	case StrategyTopDown:
		return e.SolveTopDown()
	case StrategyBottomUp:
		return e.SolveBottomUp()
	default:
		return e.SolveTrieForward()
	}
}

func (e *Engine) instrument(s Strategy, solve func() int) int {
	start := time.Now()
	score := solve()
	elapsed := time.Since(start)
	e.metrics.RecordSolve(s, score, elapsed)
	e.logger.LogSolve(s, score, elapsed)
	return score
}
