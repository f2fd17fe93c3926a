// Package observability provides OpenTelemetry tracing and metrics
// integration for stream instrumentation.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("my-service"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, "ingest.pull")
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("my-service"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("my-service"))
//	metrics.RecordPull(ctx, "ingest", "ok", duration)
//
// stream.WithTracing and stream.WithMetrics wire these helpers around any
// stream.Iterator.
package observability
