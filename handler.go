// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effected

import (
	"strings"
	"sync"
)

// disposition records which of Resume/Terminate a handler entry was settled
// with. Zero means "not yet settled".
type disposition int8

const (
	dispositionNone disposition = iota
	dispositionResume
	dispositionTerminate
)

// HandlerBody is the code a Handle call runs when a matching effect is
// yielded. It receives the effect's payloads and a Context through which it
// must eventually call Resume or Terminate exactly once — synchronously
// before returning, from a goroutine spawned later, or never (in which case
// the enclosing computation simply never progresses past this point).
type HandlerBody func(ctx *Context, payloads ...any)

// handlerEntry is the one-shot rendezvous between a HandlerBody and the
// Handle step driving it: at most one of Resume/Terminate may settle it,
// enforced by the same affine onceGuard primitive the teacher uses for its
// continuations.
type handlerEntry struct {
	onceGuard
	mu          sync.Mutex
	disposition disposition
	value       any
	hasValue    bool
	onReady     func(v any, hasValue bool)
	effectName  string
}

// settle claims the entry for the given disposition, recording the value and
// firing whatever completion callback is already registered. A duplicate
// call (the guard already claimed) is a recoverable no-op: the spec treats a
// second Resume/Terminate as ignored, surfaced only as a diagnostic.
func (e *handlerEntry) settle(d disposition, v any, hasValue bool) {
	if !e.claim() {
		defaultLogger.Warnf("effected: duplicate resume/terminate ignored for effect %q", e.effectName)
		return
	}
	e.mu.Lock()
	e.disposition = d
	e.value, e.hasValue = v, hasValue
	ready := e.onReady
	e.onReady = nil
	e.mu.Unlock()
	if ready != nil {
		ready(v, hasValue)
	}
}

// peekOrRegister returns the settled disposition if one already landed
// (synchronously, before the handler body returned), or atomically installs
// onReady as the callback to invoke once it does. The two code paths share
// one mutex so a race between a late-firing goroutine and the Handle loop
// checking in can never drop a settlement.
func (e *handlerEntry) peekOrRegister(onReady func(v any, hasValue bool)) (d disposition, v any, hasValue bool, ready bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.disposition != dispositionNone {
		return e.disposition, e.value, e.hasValue, true
	}
	e.onReady = onReady
	return dispositionNone, nil, false, false
}

// Context is the handle a HandlerBody uses to settle the effect occurrence
// it was invoked for.
type Context struct {
	Effect *Effect
	entry  *handlerEntry
}

func firstOrNone(v []any) (any, bool) {
	if len(v) == 0 {
		return nil, false
	}
	return v[0], true
}

// Resume settles the handled effect with an optional value, which becomes
// the result Perform's call site sees. Resuming a non-resumable effect
// (built with NewError, or NonResumable) panics: there is no continuation to
// hand a value back to.
func (c *Context) Resume(v ...any) {
	if !c.Effect.Resumable {
		panic(&NonResumableEffectError{Name: c.Effect.Name})
	}
	val, has := firstOrNone(v)
	c.entry.settle(dispositionResume, val, has)
}

// Terminate settles the handled effect by aborting the whole Handle-wrapped
// computation, producing v as its final result instead of resuming the point
// that performed the effect.
func (c *Context) Terminate(v ...any) {
	val, has := firstOrNone(v)
	c.entry.settle(dispositionTerminate, val, has)
}

// Handle installs body for every yielded effect whose name satisfies match,
// within c. Effects that don't match flow through untouched — unchanged if
// c itself carries no default handler, or with their default handler
// rewritten to try (match, body) first if it does, so an outer default
// handler still respects this layer's handling (see
// Effect.withComposedDefaultHandler).
//
// body must settle its Context via Resume or Terminate; until it does, the
// factory yields an async suspension upward (see asyncMarker) rather than
// blocking.
func Handle[A any](c Computation[A], match func(name string) bool, body HandlerBody) Computation[A] {
	return Computation[A]{factory: func() StepFunc {
		inner := c.factory()

		// intercept drives a sub-computation a handler body settled with
		// instead of a plain value; interceptDisposition remembers which
		// disposition to apply once it reaches Done.
		var intercept StepFunc
		var interceptDisposition disposition

		// pending is set while we're waiting on an asynchronous settlement;
		// on re-entry, input/hasInput already carry the resolved value and
		// pending.disposition tells us which way it was settled.
		var pending *handlerEntry

		var step StepFunc
		step = func(input Resumed, hasInput bool) Step {
			for {
				if intercept != nil {
					s := intercept(input, hasInput)
					if s.Kind != StepDone {
						return s
					}
					d := interceptDisposition
					intercept = nil
					if d == dispositionTerminate {
						return doneStep(s.Value, s.HasValue)
					}
					input, hasInput = s.Value, s.HasValue
					continue
				}

				if pending != nil {
					entry := pending
					pending = nil
					d := entry.disposition
					v, hv := entry.value, entry.hasValue
					if isComputationValue(v) {
						intercept = anyComputationStep(v)
						interceptDisposition = d
						input, hasInput = nil, false
						continue
					}
					if d == dispositionTerminate {
						return doneStep(v, hv)
					}
					input, hasInput = v, hv
					continue
				}

				s := inner(input, hasInput)
				if s.Kind != StepYieldEffect {
					return s
				}

				eff := s.Effect
				if eff.DefaultHandler != nil {
					eff = eff.withComposedDefaultHandler(match, body)
				}
				if !match(eff.Name) {
					if eff != s.Effect {
						return yieldEffectStep(eff)
					}
					return s
				}

				entry := newHandlerEntry(eff.Name)
				ctx := &Context{Effect: eff, entry: entry}
				body(ctx, eff.Payloads...)

				d, v, hv, ready := entry.peekOrRegister(nil)
				if !ready {
					marker := &asyncMarker{}
					marker.register = func(cb func(any, bool)) {
						_, v2, hv2, ready2 := entry.peekOrRegister(func(vv any, hvv bool) {
							cb(vv, hvv)
						})
						if ready2 {
							cb(v2, hv2)
						}
					}
					pending = entry
					return yieldAsyncStep(marker)
				}
				if isComputationValue(v) {
					intercept = anyComputationStep(v)
					interceptDisposition = d
					input, hasInput = nil, false
					continue
				}
				if d == dispositionTerminate {
					return doneStep(v, hv)
				}
				input, hasInput = v, hv
				continue
			}
		}
		return step
	}}
}

// Resume installs a handler for match that computes a resume value from f
// applied to the effect's payloads. f may return either a plain value or a
// Computation, matching AndThen's coercion convention.
func Resume[A any](c Computation[A], match func(name string) bool, f func(payloads ...any) any) Computation[A] {
	return Handle(c, match, func(ctx *Context, payloads ...any) {
		ctx.Resume(f(payloads...))
	})
}

// Terminate installs a handler for match that aborts c with a value computed
// from f applied to the effect's payloads.
func Terminate[A any](c Computation[A], match func(name string) bool, f func(payloads ...any) any) Computation[A] {
	return Handle(c, match, func(ctx *Context, payloads ...any) {
		ctx.Terminate(f(payloads...))
	})
}

// Catch aborts c with f's result the first time it throws errName (an
// effect built with NewError(errName, ...)), and lets every other effect
// pass through unhandled.
func Catch[A any](c Computation[A], errName string, f func(payloads ...any) A) Computation[A] {
	full := "error:" + errName
	return Handle(c, func(name string) bool { return name == full }, func(ctx *Context, payloads ...any) {
		ctx.Terminate(f(payloads...))
	})
}

// CatchAll is Catch generalised to every "error:"-named effect, regardless
// of which name it throws.
func CatchAll[A any](c Computation[A], f func(name string, payloads ...any) A) Computation[A] {
	return Handle(c, isErrorName, func(ctx *Context, payloads ...any) {
		ctx.Terminate(f(strings.TrimPrefix(ctx.Effect.Name, "error:"), payloads...))
	})
}

// CatchAndThrow catches errName the same as Catch, but instead of
// terminating c with f's result as a plain (successful) value, it raises
// f's result as a host-level ThrownError: the enclosing RunSync/RunAsync
// fails with it instead of returning it as a value. Use Catch to recover;
// use CatchAndThrow to reclassify one failure as another that must still
// propagate as a failure.
func CatchAndThrow[A any](c Computation[A], errName string, f func(payloads ...any) any) Computation[A] {
	full := "error:" + errName
	return Handle(c, func(name string) bool { return name == full }, func(ctx *Context, payloads ...any) {
		panic(&ThrownError{Name: errName, Value: f(payloads...)})
	})
}

// CatchAllAndThrow combines CatchAll and CatchAndThrow.
func CatchAllAndThrow[A any](c Computation[A], f func(name string, payloads ...any) any) Computation[A] {
	return Handle(c, isErrorName, func(ctx *Context, payloads ...any) {
		name := strings.TrimPrefix(ctx.Effect.Name, "error:")
		panic(&ThrownError{Name: name, Value: f(name, payloads...)})
	})
}

func isErrorName(name string) bool { return strings.HasPrefix(name, "error:") }

// Provide resumes every occurrence of the "dependency:"+depName effect with
// a fixed value.
func Provide[A any, D any](c Computation[A], depName string, value D) Computation[A] {
	full := "dependency:" + depName
	return Handle(c, func(name string) bool { return name == full }, func(ctx *Context, payloads ...any) {
		ctx.Resume(value)
	})
}

// ProvideBy is Provide with the value computed afresh (and possibly
// effectfully — factory may return a Computation) on every occurrence.
func ProvideBy[A any](c Computation[A], depName string, factory func(payloads ...any) any) Computation[A] {
	full := "dependency:" + depName
	return Handle(c, func(name string) bool { return name == full }, func(ctx *Context, payloads ...any) {
		ctx.Resume(factory(payloads...))
	})
}

// handlerDefinition is DefineHandlerFor's return value: an identity helper
// that exists purely to let a call site name E and R once instead of at
// every With call.
type handlerDefinition[E, R any] struct{}

// DefineHandlerFor names the effect-row type E and result type R a
// subsequent With call transforms between. It carries no runtime state.
func DefineHandlerFor[E, R any]() handlerDefinition[E, R] {
	return handlerDefinition[E, R]{}
}

// With returns transform unchanged — DefineHandlerFor().With(transform) is
// runtime-equivalent to calling transform directly, and exists only so a
// handler definition reads as a named declaration at its use site.
func (handlerDefinition[E, R]) With(transform func(Computation[E]) Computation[R]) func(Computation[E]) Computation[R] {
	return transform
}
