// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effected

// Composition combinators for Computation[A].
//
// Each combinator wraps an inner factory with a new one that drives the
// inner StepFunc and, once it (and any sub-computation it spawns) reaches
// Done, decides what to hand upward next. None of them interpret effects —
// unmatched yields flow through untouched, exactly as spec'd: a combinator
// only ever inspects the Done case.

// Map transforms the result of c with a pure function f. Yields pass
// through unchanged; a "no value" Done propagates as "no value" Done rather
// than calling f on a zero value.
func Map[A, B any](c Computation[A], f func(A) B) Computation[B] {
	return Computation[B]{factory: func() StepFunc {
		inner := c.factory()
		return func(input Resumed, hasInput bool) Step {
			s := inner(input, hasInput)
			if s.Kind != StepDone {
				return s
			}
			if !s.HasValue {
				return doneStep(nil, false)
			}
			a, _ := s.Value.(A)
			return doneStep(f(a), true)
		}
	}}
}

// FlatMap runs c to completion, then starts g(result) and threads its steps
// upward in c's place. g's own effects flow through exactly like c's did.
func FlatMap[A, B any](c Computation[A], g func(A) Computation[B]) Computation[B] {
	return Computation[B]{factory: func() StepFunc {
		inner := c.factory()
		var sub StepFunc
		inSub := false
		return func(input Resumed, hasInput bool) Step {
			if inSub {
				return sub(input, hasInput)
			}
			s := inner(input, hasInput)
			if s.Kind != StepDone {
				return s
			}
			var a A
			if s.HasValue {
				a, _ = s.Value.(A)
			}
			sub = g(a).factory()
			inSub = true
			return sub(nil, false)
		}
	}}
}

// AndThen is FlatMap that also accepts h returning a plain B value instead
// of a Computation[B] — such a return is treated as Of(h(v)).
func AndThen[A, B any](c Computation[A], h func(A) any) Computation[B] {
	return Computation[B]{factory: func() StepFunc {
		inner := c.factory()
		var sub StepFunc
		inSub := false
		return func(input Resumed, hasInput bool) Step {
			if inSub {
				return sub(input, hasInput)
			}
			s := inner(input, hasInput)
			if s.Kind != StepDone {
				return s
			}
			var a A
			if s.HasValue {
				a, _ = s.Value.(A)
			}
			r := h(a)
			if comp, ok := r.(Computation[B]); ok {
				sub = comp.factory()
			} else {
				b, _ := r.(B)
				sub = Of(b).factory()
			}
			inSub = true
			return sub(nil, false)
		}
	}}
}

// Tap runs h(result) for its effects — h may itself return a computation,
// which is run to completion — then hands the original result upward,
// discarding whatever h produced.
func Tap[A any](c Computation[A], h func(A) any) Computation[A] {
	return Computation[A]{factory: func() StepFunc {
		inner := c.factory()
		var sub StepFunc
		inSub := false
		var saved A
		return func(input Resumed, hasInput bool) Step {
			if inSub {
				s := sub(input, hasInput)
				if s.Kind != StepDone {
					return s
				}
				return doneStep(saved, true)
			}
			s := inner(input, hasInput)
			if s.Kind != StepDone {
				return s
			}
			if s.HasValue {
				saved, _ = s.Value.(A)
			}
			sub = anyComputationStep(h(saved))
			inSub = true
			return sub(nil, false)
		}
	}}
}

// As replaces c's result with the constant s once c completes.
func As[A, B any](c Computation[A], s B) Computation[B] {
	return Map(c, func(A) B { return s })
}

// AsVoid discards c's result, keeping only its effects.
func AsVoid[A any](c Computation[A]) Computation[struct{}] {
	return As[A, struct{}](c, struct{}{})
}

// Zip runs a to completion, then b, pairing their results.
func Zip[A, B any](a Computation[A], b Computation[B]) Computation[Pair[A, B]] {
	return FlatMap(a, func(av A) Computation[Pair[A, B]] {
		return Map(b, func(bv B) Pair[A, B] { return Pair[A, B]{First: av, Second: bv} })
	})
}

// ZipWith runs a then b like Zip, combining their results with f instead of
// pairing them.
func ZipWith[A, B, C any](a Computation[A], b Computation[B], f func(A, B) C) Computation[C] {
	return FlatMap(a, func(av A) Computation[C] {
		return Map(b, func(bv B) C { return f(av, bv) })
	})
}

// Pair holds two values, used by Zip and Listen-style combinators.
type Pair[A, B any] struct {
	First  A
	Second B
}
