package metrics

import (
	"context"

	metricspkg "github.com/ninfea/babylog/internal/metrics"
)

// NoopWriter is wired when the time-series store is not configured.
type NoopWriter struct{}

func NewNoopWriter() metricspkg.Writer {
	return &NoopWriter{}
}

func (w *NoopWriter) WriteNap(_ context.Context, _ metricspkg.NapMetric) error { return nil }

func (w *NoopWriter) WriteEvent(_ context.Context, _ metricspkg.EventPoint) error { return nil }

func (w *NoopWriter) Close() {}
