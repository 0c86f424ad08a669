package gridgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational
// metrics of the pipeline stages. Implement this interface to integrate
// with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordIndex is called after each metadata rebuild.
	// rows is the dataset size, duration the total build time.
	RecordIndex(rows int, duration time.Duration)

	// RecordFilter is called after each filter-and-search pass.
	// total is the dataset size, visible the number of surviving rows.
	RecordFilter(total, visible int, duration time.Duration)

	// RecordSort is called after each sort pass over the visible rows.
	RecordSort(rows int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordIndex(int, time.Duration)       {}
func (NoopMetricsCollector) RecordFilter(int, int, time.Duration) {}
func (NoopMetricsCollector) RecordSort(int, time.Duration)        {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	IndexCount       atomic.Int64
	IndexRows        atomic.Int64
	IndexTotalNanos  atomic.Int64
	FilterCount      atomic.Int64
	FilterVisible    atomic.Int64
	FilterTotalNanos atomic.Int64
	SortCount        atomic.Int64
	SortTotalNanos   atomic.Int64
}

// RecordIndex implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIndex(rows int, duration time.Duration) {
	b.IndexCount.Add(1)
	b.IndexRows.Add(int64(rows))
	b.IndexTotalNanos.Add(duration.Nanoseconds())
}

// RecordFilter implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFilter(total, visible int, duration time.Duration) {
	b.FilterCount.Add(1)
	b.FilterVisible.Add(int64(visible))
	b.FilterTotalNanos.Add(duration.Nanoseconds())
}

// RecordSort implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSort(rows int, duration time.Duration) {
	b.SortCount.Add(1)
	b.SortTotalNanos.Add(duration.Nanoseconds())
}
