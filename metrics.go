package seggo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordBuild is called after each engine construction attempt.
	// markers is the number of markers supplied, err is nil if successful.
	RecordBuild(markers int, duration time.Duration, err error)

	// RecordSolve is called after each solve call.
	// score is the value the strategy returned.
	RecordSolve(strategy Strategy, score int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordSolve(Strategy, int, time.Duration) {}

// strategyStats accumulates per-strategy counters.
type strategyStats struct {
	Count      atomic.Int64
	TotalNanos atomic.Int64
}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount      atomic.Int64
	BuildErrors     atomic.Int64
	BuildTotalNanos atomic.Int64

	solves [strategyCount]strategyStats
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(markers int, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	b.BuildTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BuildErrors.Add(1)
	}
}

// RecordSolve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSolve(strategy Strategy, score int, duration time.Duration) {
	if strategy < 0 || int(strategy) >= strategyCount {
		return
	}
	s := &b.solves[strategy]
	s.Count.Add(1)
	s.TotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	stats := BasicMetricsStats{
		BuildCount:  b.BuildCount.Load(),
		BuildErrors: b.BuildErrors.Load(),
	}
	if stats.BuildCount > 0 {
		stats.BuildAvgNanos = b.BuildTotalNanos.Load() / stats.BuildCount
	}
	for i := range b.solves {
		count := b.solves[i].Count.Load()
		snap := StrategySolveStats{Count: count}
		if count > 0 {
			snap.AvgNanos = b.solves[i].TotalNanos.Load() / count
		}
		stats.Solves[i] = snap
	}
	return stats
}

// StrategySolveStats is a snapshot of solve counters for one strategy.
type StrategySolveStats struct {
	Count    int64
	AvgNanos int64
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
// Solves is indexed by Strategy.
type BasicMetricsStats struct {
	BuildCount    int64
	BuildErrors   int64
	BuildAvgNanos int64
	Solves        [strategyCount]StrategySolveStats
}
