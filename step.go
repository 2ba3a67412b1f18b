// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effected

// Operation is the runtime type for effect operations flowing through the
// stepwise protocol. Handler bodies receive the triggering *Effect directly;
// Operation exists so dispatch-adjacent signatures read symmetrically with
// Resumed.
type Operation any

// Resumed is the runtime type for values flowing through suspension and
// resumption: payloads, resume/terminate arguments, and Done values.
type Resumed any

// StepKind tags the disjoint cases a Step can carry. An explicit tag beats
// probing optional fields or duck-typing a kind out of which pointer is
// non-nil: exactly one switch, exhaustively checkable.
type StepKind uint8

const (
	// StepDone marks a completed computation. Value/HasValue carry the result.
	StepDone StepKind = iota
	// StepYieldEffect marks a suspension on an Effect awaiting a handler.
	StepYieldEffect
	// StepYieldAsync marks a suspension on host asynchrony (see asyncMarker).
	StepYieldAsync
	// StepYieldSync marks a suspension that resumes immediately with a carried
	// value, without a handler. Only a hand-built StepFunc produces it; the
	// driving loop feeds the carried value straight back in.
	StepYieldSync
)

// Step is the explicit, tagged result of advancing a StepFunc by one call.
// Exactly the field selected by Kind is meaningful.
type Step struct {
	Kind     StepKind
	Value    Resumed // StepDone: the result, when HasValue.
	HasValue bool    // StepDone: whether Value is meaningful ("no value" done).
	Effect   *Effect // StepYieldEffect: the effect awaiting a handler.
	Async    *asyncMarker
	Sync     *syncMarker
}

// StepFunc is the stepwise computation protocol: given the value resumed
// from the previous yield (ignored on the first call, signalled by
// hasInput=false), it advances the computation by exactly one step.
//
// A StepFunc that has reported StepDone must keep reporting StepDone on
// every later call — Done is idempotent, never re-running an effect.
type StepFunc func(input Resumed, hasInput bool) Step

func doneStep(v Resumed, has bool) Step {
	return Step{Kind: StepDone, Value: v, HasValue: has}
}

func yieldEffectStep(e *Effect) Step {
	return Step{Kind: StepYieldEffect, Effect: e}
}

func yieldAsyncStep(m *asyncMarker) Step {
	return Step{Kind: StepYieldAsync, Async: m}
}

func yieldSyncStep(m *syncMarker) Step {
	return Step{Kind: StepYieldSync, Sync: m}
}

// doneStepFunc is an already-exhausted StepFunc: every call reports
// completion with no value. Nothing in this package calls it.
func doneStepFunc() StepFunc {
	return func(Resumed, bool) Step { return doneStep(nil, false) }
}
