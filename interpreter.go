// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effected

// Interpreter drives a Computation's steps to completion. It owns the
// cross-cutting concerns a bare step loop doesn't: diagnostics, goroutine
// affinity checking, and an optional step budget to bound runaway
// computations (a handler that keeps resuming itself with more work, say).
//
// RunSync, RunAsync and RunAsyncFuture each build one of these internally
// from the InterpreterOptions they are given; no runner accepts an
// *Interpreter value directly.
type Interpreter struct {
	logger      Logger
	affinity    bool
	stepBudget  int64
}

// InterpreterOption configures an Interpreter built by NewInterpreter.
type InterpreterOption func(*Interpreter)

// WithLogger directs this Interpreter's diagnostics (goroutine-affinity
// violations, step-budget exhaustion) to the given Logger instead of
// discarding them.
func WithLogger(l Logger) InterpreterOption {
	return func(ip *Interpreter) { ip.logger = l }
}

// WithGoroutineChecks enables the affinity guard that warns when a single
// run's Step calls interleave across goroutines — off by default, since it
// costs a goid.Get() call per step.
func WithGoroutineChecks(enabled bool) InterpreterOption {
	return func(ip *Interpreter) { ip.affinity = enabled }
}

// WithStepBudget bounds the number of StepFunc calls a single run may make
// before it's aborted with ErrStepBudgetExceeded. Zero (the default) means
// unbounded.
func WithStepBudget(n int64) InterpreterOption {
	return func(ip *Interpreter) { ip.stepBudget = n }
}

// NewInterpreter builds an Interpreter with the given options applied over
// sane defaults: a noop Logger, affinity checking disabled, no step budget.
func NewInterpreter(opts ...InterpreterOption) *Interpreter {
	ip := &Interpreter{logger: noopLogger{}}
	for _, opt := range opts {
		opt(ip)
	}
	return ip
}
