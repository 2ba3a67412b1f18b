// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effected

// With applies a transform directly to c — sugar for calling h(c), kept so
// callers can place a transformation step inline in a combinator chain
// instead of naming an intermediate variable.
func With[A, B any](c Computation[A], h func(Computation[A]) Computation[B]) Computation[B] {
	return h(c)
}

// Pipe threads c through a chain of transforms, each of which may return
// either a Computation or a plain value (coerced to Of(value), same
// convention AndThen uses). Go's type system cannot express a variadic chain
// of distinct A→B, B→C, ... transforms statically, so each step operates on
// an erased value — the price of a heterogeneous pipeline in a generic
// Computation[A] instead of a fixed two-step FlatMap/AndThen call.
func Pipe[A any](c Computation[A], fns ...func(any) any) Computation[any] {
	return Computation[any]{factory: func() StepFunc {
		cur := anyComputationStep(c)
		idx := 0
		var sub StepFunc
		inSub := false
		var advance func(input Resumed, hasInput bool) Step
		advance = func(input Resumed, hasInput bool) Step {
			if inSub {
				s := sub(input, hasInput)
				if s.Kind != StepDone {
					return s
				}
				inSub = false
				var v any
				if s.HasValue {
					v = s.Value
				}
				if idx >= len(fns) {
					return doneStep(v, true)
				}
				next := fns[idx](v)
				idx++
				sub = anyComputationStep(next)
				inSub = true
				return sub(nil, false)
			}
			s := cur(input, hasInput)
			if s.Kind != StepDone {
				return s
			}
			var v any
			if s.HasValue {
				v = s.Value
			}
			if idx >= len(fns) {
				return doneStep(v, true)
			}
			next := fns[idx](v)
			idx++
			sub = anyComputationStep(next)
			inSub = true
			return sub(nil, false)
		}
		return advance
	}}
}
