package stream

import (
	"context"
	"time"

	"github.com/kbukum/streamkit/logger"
	"github.com/kbukum/streamkit/observability"
)

// WithLogging wraps an Iterator so each pull is logged.
// Logs: stream name, duration, and success/exhausted/error status.
func WithLogging[T any](source Iterator[T], log *logger.Logger, name string) Iterator[T] {
	return &loggingIter[T]{source: source, log: log, name: name}
}

type loggingIter[T any] struct {
	source Iterator[T]
	log    *logger.Logger
	name   string
}

func (it *loggingIter[T]) Next(ctx context.Context) (T, bool, error) {
	start := time.Now()
	val, ok, err := it.source.Next(ctx)
	duration := time.Since(start)

	fields := map[string]interface{}{
		"stream":   it.name,
		"duration": duration.String(),
	}

	switch {
	case err != nil:
		fields["error"] = err.Error()
		it.log.Error("stream pull failed", fields)
	case !ok:
		it.log.Debug("stream exhausted", fields)
	default:
		it.log.Debug("stream pull ok", fields)
	}

	return val, ok, err
}

func (it *loggingIter[T]) Close() error { return it.source.Close() }

// WithTracing wraps an Iterator so each pull runs inside an OpenTelemetry
// span named "{name}.pull".
func WithTracing[T any](source Iterator[T], name string) Iterator[T] {
	return &tracingIter[T]{source: source, name: name}
}

type tracingIter[T any] struct {
	source Iterator[T]
	name   string
}

func (it *tracingIter[T]) Next(ctx context.Context) (T, bool, error) {
	ctx, span := observability.StartSpan(ctx, it.name+".pull")
	defer span.End()

	observability.SetSpanAttribute(ctx, observability.AttrStreamName, it.name)

	val, ok, err := it.source.Next(ctx)
	if err != nil {
		observability.SetSpanError(ctx, err)
	}
	observability.SetSpanAttribute(ctx, observability.AttrExhausted, err == nil && !ok)

	return val, ok, err
}

func (it *tracingIter[T]) Close() error { return it.source.Close() }

// WithMetrics wraps an Iterator so each pull is recorded on the
// observability.Metrics instruments: pull count, duration, and errors.
func WithMetrics[T any](source Iterator[T], metrics *observability.Metrics, name string) Iterator[T] {
	return &metricsIter[T]{source: source, metrics: metrics, name: name}
}

type metricsIter[T any] struct {
	source  Iterator[T]
	metrics *observability.Metrics
	name    string
}

func (it *metricsIter[T]) Next(ctx context.Context) (T, bool, error) {
	start := time.Now()
	val, ok, err := it.source.Next(ctx)
	duration := time.Since(start)

	status := "ok"
	switch {
	case err != nil:
		status = "error"
		it.metrics.RecordError(ctx, "pull", it.name)
	case !ok:
		status = "exhausted"
	}
	it.metrics.RecordPull(ctx, it.name, status, duration)

	return val, ok, err
}

func (it *metricsIter[T]) Close() error { return it.source.Close() }
