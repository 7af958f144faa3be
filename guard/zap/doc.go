// Package zap provides the production implementation of the guard's log
// abstraction.
//
// It bridges guard/log to zap while preserving structured fields and
// correlating entries with any active OpenTelemetry span.
package zap
