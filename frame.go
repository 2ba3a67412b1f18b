// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effected

// Erased represents a type-erased value at the boundary between a statically
// typed Computation[A] and the dynamically named effects it yields. Concrete
// types are recovered via type assertions at that boundary.
type Erased = any

// erasedComputation is the marker every Computation[A] satisfies regardless
// of A — its method set never mentions the type parameter, so a type switch
// on this interface recognises "is this value itself a computation" without
// knowing A up front. Resume/Terminate (via Handle), Tap and Pipe use it to
// detect a returned sub-computation versus a plain value, replacing what the
// source expresses by duck-typing. AndThen does not: it checks for a
// Computation[B] only.
type erasedComputation interface {
	newStep() StepFunc
}

func (c Computation[A]) newStep() StepFunc { return c.factory() }

// anyComputationStep coerces an arbitrary value into a StepFunc: if v is
// itself a computation, its own stepper is used; otherwise v is treated as
// an already-produced value and wrapped as a one-shot Done.
func anyComputationStep(v any) StepFunc {
	if ec, ok := v.(erasedComputation); ok {
		return ec.newStep()
	}
	done := false
	return func(Resumed, bool) Step {
		if done {
			return doneStep(nil, false)
		}
		done = true
		return doneStep(v, true)
	}
}

// isComputationValue reports whether v is a Computation[T] for some T.
func isComputationValue(v any) bool {
	_, ok := v.(erasedComputation)
	return ok
}
