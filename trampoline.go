// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effected

import "github.com/pkg/errors"

// runOutcome is what advancing a run reaches before control must return to
// the caller: the computation is Done, it faulted, or it suspended on host
// asynchrony and carries a Pending marker the caller must register against
// before calling advance again with the resolved value.
type runOutcome struct {
	Value    any
	HasValue bool
	Err      error
	Pending  *asyncMarker
}

// runState threads the step budget across the possibly-many advance calls a
// single run makes when it suspends asynchronously more than once.
type runState struct {
	step   StepFunc
	ip     *Interpreter
	budget int64
	guard  *affinityGuard
}

// newRun wraps c so every effect that escapes all installed Handle layers
// reaches rootDispatch instead of StepYieldEffect bubbling out raw: a
// matched-everything Handle whose body either runs the effect's own
// DefaultHandler or faults with UnhandledEffectError. This lets advance
// reuse Handle's intercept/async/disposition machinery for the run
// boundary's fallback instead of duplicating it.
func newRun(ip *Interpreter, c Computation[any]) *runState {
	wrapped := Handle(c, alwaysMatch, rootDispatch)
	return &runState{
		step:  wrapped.factory(),
		ip:    ip,
		guard: newAffinityGuard(ip.affinity, ip.logger),
	}
}

func alwaysMatch(string) bool { return true }

func rootDispatch(ctx *Context, payloads ...any) {
	if ctx.Effect.DefaultHandler == nil {
		panic(wrapFault(&UnhandledEffectError{Name: ctx.Effect.Name}))
	}
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && isKnownFault(errors.Cause(e)) {
				panic(r)
			}
			panic(wrapFault(&DefaultHandlerPanicError{EffectName: ctx.Effect.Name, Recovered: r}))
		}
	}()
	ctx.Effect.DefaultHandler(ctx, payloads...)
}

// isKnownFault reports whether a recovered panic value is already one of
// this package's typed faults, in which case it should propagate as-is
// rather than be wrapped a second time as a HandlerPanicError.
func isKnownFault(r any) bool {
	switch r.(type) {
	case *UnhandledEffectError, *NonResumableEffectError, *AsyncUnderSyncError,
		*MalformedYieldError, *HandlerPanicError, *DefaultHandlerPanicError,
		*undeclaredEffectError, *ThrownError:
		return true
	}
	return false
}

// driveStep advances step once, converting a panic from a HandlerBody (or
// any user code reachable from it — the single recovery boundary spec.md §7
// calls for) into a HandlerPanicError instead of unwinding the caller's
// goroutine. A panic that already carries one of this package's own fault
// types propagates unchanged.
func driveStep(step StepFunc, lastEffect string, input Resumed, hasInput bool) (s Step, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && isKnownFault(errors.Cause(e)) {
				err = e
				return
			}
			err = wrapFault(&HandlerPanicError{EffectName: lastEffect, Recovered: r})
		}
	}()
	s = step(input, hasInput)
	return s, nil
}

// advance drives rs.step forward from (input, hasInput) until it reaches
// Done, a fault, or an async suspension. allowAsync distinguishes RunSync
// (which faults on a StepYieldAsync) from RunAsync (which returns it as
// Pending for the caller to register against).
func advance(rs *runState, input Resumed, hasInput bool, allowAsync bool) runOutcome {
	lastEffect := ""
	for {
		if rs.ip.stepBudget > 0 {
			rs.budget++
			if rs.budget > rs.ip.stepBudget {
				rs.ip.logger.Warnf("effected: step budget of %d exceeded", rs.ip.stepBudget)
				return runOutcome{Err: wrapFault(ErrStepBudgetExceeded)}
			}
		}

		if !rs.guard.enter() {
			return runOutcome{Err: ErrConcurrentStep}
		}
		s, err := driveStep(rs.step, lastEffect, input, hasInput)
		rs.guard.leave()
		if err != nil {
			return runOutcome{Err: err}
		}

		switch s.Kind {
		case StepDone:
			return runOutcome{Value: s.Value, HasValue: s.HasValue}

		case StepYieldSync:
			if s.Sync == nil {
				return runOutcome{Err: wrapFault(&MalformedYieldError{Kind: s.Kind})}
			}
			input, hasInput = s.Sync.Value, s.Sync.HasValue
			continue

		case StepYieldAsync:
			if s.Async == nil {
				return runOutcome{Err: wrapFault(&MalformedYieldError{Kind: s.Kind})}
			}
			if !allowAsync {
				return runOutcome{Err: wrapFault(&AsyncUnderSyncError{EffectName: lastEffect})}
			}
			return runOutcome{Pending: s.Async}

		case StepYieldEffect:
			// newRun's rootDispatch Handle matches every name, so every
			// effect c performs is dispatched there. An effect reaching here
			// was performed by a sub-computation a DefaultHandler resumed or
			// terminated with: Handle drives such an intercept without
			// dispatching its yields, so nothing handles it.
			lastEffect = s.Effect.Name
			return runOutcome{Err: wrapFault(&MalformedYieldError{Kind: StepYieldEffect})}

		default:
			rs.ip.logger.Warnf("effected: step of unrecognised kind %d yielded", s.Kind)
			return runOutcome{Err: wrapFault(&MalformedYieldError{Kind: s.Kind})}
		}
	}
}
