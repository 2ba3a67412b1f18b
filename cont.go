// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effected

// Computation[A] is a re-runnable stepwise computation producing a value of
// type A. It wraps a factory rather than a single StepFunc so the same
// Computation value can be driven by RunSync/RunAsync more than once, each
// time from clean internal state — ownership is per run, not per value.
type Computation[A any] struct {
	factory func() StepFunc
}

// Effected wraps a raw StepFunc factory as a Computation. This is the escape
// hatch for code that builds the stepwise protocol directly instead of going
// through Of/From/Perform and the combinators below.
func Effected[A any](factory func() StepFunc) Computation[A] {
	return Computation[A]{factory: factory}
}

// Of lifts a pure value: the resulting computation completes on its first
// step with no yields.
func Of[A any](v A) Computation[A] {
	return Computation[A]{factory: func() StepFunc {
		done := false
		return func(Resumed, bool) Step {
			if done {
				return doneStep(nil, false)
			}
			done = true
			return doneStep(v, true)
		}
	}}
}

// From lifts a thunk: f runs exactly once, on the first step, and its result
// becomes the Done value.
func From[A any](f func() A) Computation[A] {
	return Computation[A]{factory: func() StepFunc {
		done := false
		return func(Resumed, bool) Step {
			if done {
				return doneStep(nil, false)
			}
			done = true
			return doneStep(f(), true)
		}
	}}
}

// DeclareEffects records the effect names this computation's author believes
// cover every handler-installed or matched name reachable from it. Optional
// and purely additive: every effect name the computation yields is checked
// against this set as it's yielded, standing in for the type-level
// effect-row subtraction Go cannot express. The check is part of the
// returned Computation, so every runner applies it, RunSyncUnsafe and
// RunAsyncUnsafe included. It catches an
// undeclared name the first time that name is actually performed, not before
// — side effects a computation performs ahead of an undeclared yield have
// already happened by the time this panics.
func (c Computation[A]) DeclareEffects(names ...string) Computation[A] {
	declared := append([]string(nil), names...)
	return Computation[A]{factory: func() StepFunc {
		return declaringStep(c.factory(), declared)
	}}
}

func declaringStep(inner StepFunc, declared []string) StepFunc {
	return func(input Resumed, hasInput bool) Step {
		s := inner(input, hasInput)
		if s.Kind == StepYieldEffect && !containsName(declared, s.Effect.Name) {
			panic(&undeclaredEffectError{Name: s.Effect.Name, Declared: declared})
		}
		return s
	}
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
