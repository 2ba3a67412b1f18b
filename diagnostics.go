// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effected

import "github.com/rs/zerolog"

// Logger receives the diagnostics this package surfaces: a duplicate
// resume/terminate (ignored, so the run goes on), a concurrent Step call
// losing its race, an exhausted step budget, and a step of unrecognised
// kind. The last three are reported alongside the error the affected
// caller then gets (ErrConcurrentStep, ErrStepBudgetExceeded,
// MalformedYieldError); the Logger only reports, it never carries the
// failure. No diagnostic is emitted for a Computation built without this
// package's constructors.
type Logger interface {
	Warnf(format string, args ...any)
}

// zerologLogger adapts a zerolog.Logger to Logger.
type zerologLogger struct {
	log zerolog.Logger
}

// NewZerologLogger wraps an existing zerolog.Logger for use as an
// interpreter's diagnostics sink.
func NewZerologLogger(log zerolog.Logger) Logger {
	return &zerologLogger{log: log}
}

func (l *zerologLogger) Warnf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

// noopLogger discards every warning. Used when no Logger is configured.
type noopLogger struct{}

func (noopLogger) Warnf(string, ...any) {}

// defaultLogger is the fallback sink for diagnostics raised outside of any
// particular Interpreter's context — a handlerEntry's duplicate-settlement
// warning, say, which can fire from combinator code built independently of
// whichever Interpreter eventually runs it. NewInterpreter(WithLogger(...))
// also points run-scoped diagnostics (affinity, step budget) at a Logger of
// its own; SetDefaultLogger changes the shared fallback every combinator
// sees regardless of which Interpreter is driving it.
var defaultLogger Logger = noopLogger{}

// SetDefaultLogger replaces the package-wide fallback diagnostics sink.
func SetDefaultLogger(l Logger) {
	if l == nil {
		l = noopLogger{}
	}
	defaultLogger = l
}
