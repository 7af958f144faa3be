package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// StdLogger is a dependency-free Logger backed by an io.Writer, for hosts
// that want installation decisions on stderr without wiring a production
// logger.
//
// All string field values and the message are sanitized to prevent log
// injection (CWE-117).
type StdLogger struct {
	mu     sync.Mutex
	out    io.Writer
	level  Level
	fields []Field
}

// NewStd creates a StdLogger writing to out at the given verbosity ceiling.
// A nil out defaults to os.Stderr.
func NewStd(out io.Writer, level Level) *StdLogger {
	if out == nil {
		out = os.Stderr
	}

	return &StdLogger{out: out, level: level}
}

// Log writes a single line with level, message, and key=value fields.
func (l *StdLogger) Log(_ context.Context, level Level, msg string, fields ...Field) {
	if l == nil || !l.Enabled(level) {
		return
	}

	var sb strings.Builder

	sb.WriteString(level.String())
	sb.WriteString(": ")
	sb.WriteString(sanitizeLogString(msg))

	for _, field := range append(l.fields, sanitizeFields(fields)...) {
		fmt.Fprintf(&sb, " %s=%v", field.Key, field.Value)
	}

	sb.WriteString("\n")

	l.mu.Lock()
	defer l.mu.Unlock()

	_, _ = io.WriteString(l.out, sb.String())
}

// With returns a child logger carrying additional fields.
//
//nolint:ireturn
func (l *StdLogger) With(fields ...Field) Logger {
	if l == nil {
		return NewNop()
	}

	child := &StdLogger{out: l.out, level: l.level}
	child.fields = append(append([]Field(nil), l.fields...), sanitizeFields(fields)...)

	return child
}

// Enabled reports whether the level passes the verbosity ceiling.
func (l *StdLogger) Enabled(level Level) bool {
	if l == nil {
		return false
	}

	return l.level >= level
}

// Sync is a no-op; writes are unbuffered.
func (l *StdLogger) Sync(_ context.Context) error {
	return nil
}
