// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effected

import "strings"

// Resource safety primitives: acquire → use → release, where release is
// guaranteed to run whether use finishes normally, panics, or throws an
// "error:"-convention effect of its own.

// catchAllAndRethrow runs cleanup(name, payloads) the first time c throws an
// "error:"-convention effect, then re-performs that same effect so an outer
// Catch/CatchAll still sees it. This is deliberately NOT CatchAllAndThrow:
// that combinator raises a new host-level ThrownError that terminates the
// run, whereas resource cleanup must let the original error keep propagating
// as the same catchable effect it always was.
func catchAllAndRethrow[A any](c Computation[A], cleanup func(name string, payloads ...any) Computation[struct{}]) Computation[A] {
	return Handle(c, isErrorName, func(ctx *Context, payloads ...any) {
		name := strings.TrimPrefix(ctx.Effect.Name, "error:")
		ctx.Terminate(FlatMap(cleanup(name, payloads...), func(struct{}) Computation[any] {
			return Perform[any](NewError(name, payloads...))
		}))
	})
}

// safeStep advances step once, recovering a Go panic instead of letting it
// unwind past the caller. Bracket uses this to still run release when use's
// computation panics synchronously — the one failure mode catchAllAndRethrow,
// an effect-level mechanism, cannot see.
func safeStep(step StepFunc, input Resumed, hasInput bool) (s Step, recovered any) {
	defer func() {
		if r := recover(); r != nil {
			recovered = r
		}
	}()
	s = step(input, hasInput)
	return s, nil
}

// Bracket runs use(a) with a acquired via acquire, guaranteeing release(a)
// runs afterward regardless of how use(a) finished: normal completion, a Go
// panic, or an "error:"-convention throw use itself doesn't catch. An effect
// that escapes entirely unhandled — reaching UnhandledEffectError at the run
// boundary — is outside any resource combinator's reach, same as for any
// cleanup primitive built without full delimited continuations.
func Bracket[A, B any](acquire Computation[A], use func(A) Computation[B], release func(A) Computation[struct{}]) Computation[B] {
	return FlatMap(acquire, func(a A) Computation[B] {
		protectedUse := catchAllAndRethrow(use(a), func(string, ...any) Computation[struct{}] {
			return release(a)
		})

		return Computation[B]{factory: func() StepFunc {
			const (
				phaseUse = iota
				phaseReleaseAfterSuccess
				phaseReleaseAfterPanic
				phaseDone
			)
			phase := phaseUse
			var useStep, releaseStep StepFunc
			var finalValue B
			var hasFinalValue bool
			var pendingPanic any

			var step StepFunc
			step = func(input Resumed, hasInput bool) Step {
				switch phase {
				case phaseUse:
					if useStep == nil {
						useStep = protectedUse.factory()
					}
					s, caught := safeStep(useStep, input, hasInput)
					if caught != nil {
						pendingPanic = caught
						phase = phaseReleaseAfterPanic
						releaseStep = release(a).factory()
						return step(nil, false)
					}
					if s.Kind != StepDone {
						return s
					}
					if s.HasValue {
						finalValue, _ = s.Value.(B)
						hasFinalValue = true
					}
					phase = phaseReleaseAfterSuccess
					releaseStep = release(a).factory()
					return step(nil, false)

				case phaseReleaseAfterSuccess:
					s := releaseStep(input, hasInput)
					if s.Kind != StepDone {
						return s
					}
					phase = phaseDone
					return doneStep(finalValue, hasFinalValue)

				case phaseReleaseAfterPanic:
					s := releaseStep(input, hasInput)
					if s.Kind != StepDone {
						return s
					}
					phase = phaseDone
					panic(pendingPanic)

				default:
					return doneStep(nil, false)
				}
			}
			return step
		}}
	})
}

// OnError runs onErr(name, payloads) when c throws an "error:"-convention
// effect, then rethrows the same error once onErr's cleanup completes. It
// does not catch the error itself — c's failure still propagates to
// whatever Catch or CatchAll wraps this call.
func OnError[A any](c Computation[A], onErr func(name string, payloads ...any) Computation[struct{}]) Computation[A] {
	return catchAllAndRethrow(c, onErr)
}
