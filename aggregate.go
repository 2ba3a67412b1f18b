// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effected

// AllSeq runs each computation in order, one fully to completion before the
// next starts, collecting their results. Unlike All, a handler's decisions
// about one computation can observe the others having already run.
func AllSeq[A any](cs ...Computation[A]) Computation[[]A] {
	return Computation[[]A]{factory: func() StepFunc {
		idx := 0
		results := make([]A, len(cs))
		var sub StepFunc

		var step StepFunc
		step = func(input Resumed, hasInput bool) Step {
			for {
				if sub == nil {
					if idx >= len(cs) {
						return doneStep(results, true)
					}
					sub = cs[idx].factory()
					input, hasInput = nil, false
				}
				s := sub(input, hasInput)
				if s.Kind != StepDone {
					return s
				}
				if s.HasValue {
					results[idx], _ = s.Value.(A)
				}
				idx++
				sub = nil
				input, hasInput = nil, false
			}
		}
		return step
	}}
}

// AllSeqMap is AllSeq keyed by K instead of positional order.
func AllSeqMap[K comparable, A any](cs map[K]Computation[A]) Computation[map[K]A] {
	return Computation[map[K]A]{factory: func() StepFunc {
		keys := make([]K, 0, len(cs))
		values := make([]Computation[A], 0, len(cs))
		for k, c := range cs {
			keys = append(keys, k)
			values = append(values, c)
		}
		seqStep := AllSeq(values...).factory()
		return func(input Resumed, hasInput bool) Step {
			s := seqStep(input, hasInput)
			if s.Kind != StepDone {
				return s
			}
			if !s.HasValue {
				return doneStep(nil, false)
			}
			raw := s.Value.([]A)
			out := make(map[K]A, len(raw))
			for i, v := range raw {
				out[keys[i]] = v
			}
			return doneStep(out, true)
		}
	}}
}
