// Package log provides context-aware diagnostic logging for ask.
// Diagnostics go to stderr; primary data output is the output
// package's job.
package log

import (
	"context"
	"fmt"
	"io"

	"github.com/raphi011/ask/style"
)

type ctxKey struct{}

var (
	warnStyle = style.MustNew(style.Spec{Foreground: style.Yellow})
	errStyle  = style.MustNew(style.Spec{Foreground: style.Red, Bold: true})
)

// Logger writes diagnostics. Verbose gates debug output; quiet
// suppresses everything except errors.
type Logger struct {
	out     io.Writer
	verbose bool
	quiet   bool
}

// New creates a new logger.
func New(out io.Writer, verbose, quiet bool) *Logger {
	return &Logger{out: out, verbose: verbose, quiet: quiet}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{out: io.Discard, quiet: true}
}

// Infof writes formatted progress output. Suppressed in quiet mode.
func (l *Logger) Infof(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, format+"\n", args...)
}

// Debugf writes formatted output shown only in verbose mode.
func (l *Logger) Debugf(format string, args ...any) {
	if !l.verbose || l.quiet {
		return
	}
	fmt.Fprintf(l.out, format+"\n", args...)
}

// Warnf writes a styled warning. Suppressed in quiet mode.
func (l *Logger) Warnf(format string, args ...any) {
	if l.quiet {
		return
	}
	warnStyle.Fprintln(l.out, fmt.Sprintf("Warning: "+format, args...))
}

// Errorf writes a styled error. Never suppressed.
func (l *Logger) Errorf(format string, args ...any) {
	errStyle.Fprintln(l.out, fmt.Sprintf(format, args...))
}

// Verbose returns true if verbose mode is enabled.
func (l *Logger) Verbose() bool {
	return l.verbose
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}
