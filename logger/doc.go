// Package logger provides structured logging using zerolog.
//
// It supports multiple output formats (JSON, console), log level
// configuration, and component-scoped loggers with structured fields.
//
// # Usage
//
//	log := logger.NewFromEnv("ingest")
//	log.Info("pull complete", logger.Fields("stream", "orders", "count", 42))
package logger
