// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effected

import "sync"

// branchSlot tracks one sub-computation's progress through an idle-rotation
// round: whether it's finished, the value to feed it next, and (while
// suspended) the asyncMarker it's waiting on.
type branchSlot struct {
	step            StepFunc
	done            bool
	value           any
	hasValue        bool
	marker          *asyncMarker
	pendingInput    any
	hasPendingInput bool
}

// runAll drives every branch's StepFunc via idle rotation: each round tries
// every not-yet-done, not-currently-suspended branch once. A branch that
// yields an effect immediately bubbles it up from the whole group (the next
// call's input feeds back to that one branch, since the StepFunc protocol
// carries only one resumable slot); a branch that suspends asynchronously
// registers its own wakeup and rotation moves on to the remaining branches.
// Only once an entire round makes no progress — every remaining branch is
// asleep on its own marker — does the group itself suspend, with a single
// asyncMarker tagged by a shared label so an outer observer can recognise
// the whole group's suspensions as belonging to one All call.
func runAll(branches []*branchSlot) StepFunc {
	remaining := len(branches)
	awaitingEffect := -1
	lbl := newLabel()

	var wake sync.Mutex
	var extCB func(v any, hasValue bool)
	woken := false

	signalWake := func() {
		wake.Lock()
		if extCB != nil {
			cb := extCB
			extCB = nil
			wake.Unlock()
			cb(nil, true)
			return
		}
		woken = true
		wake.Unlock()
	}

	return func(input Resumed, hasInput bool) Step {
		if awaitingEffect >= 0 {
			branches[awaitingEffect].pendingInput = input
			branches[awaitingEffect].hasPendingInput = hasInput
			awaitingEffect = -1
		}
		for {
			progressed := false
			for i, sl := range branches {
				if sl.done || sl.marker != nil {
					continue
				}
				in, has := sl.pendingInput, sl.hasPendingInput
				sl.pendingInput, sl.hasPendingInput = nil, false
				s := sl.step(in, has)
				switch s.Kind {
				case StepDone:
					sl.done = true
					sl.hasValue = s.HasValue
					if s.HasValue {
						sl.value = s.Value
					}
					remaining--
					progressed = true
				case StepYieldEffect:
					awaitingEffect = i
					return s
				case StepYieldAsync:
					sl.marker = s.Async
					slot := sl
					s.Async.OnComplete(func(v any, hv bool) {
						slot.marker = nil
						slot.pendingInput = v
						slot.hasPendingInput = hv
						signalWake()
					})
				case StepYieldSync:
					sl.pendingInput = s.Sync.Value
					sl.hasPendingInput = s.Sync.HasValue
					progressed = true
				}
			}
			if remaining == 0 {
				out := make([]any, len(branches))
				for i, sl := range branches {
					out[i] = sl.value
				}
				releaseBranchSlots(branches)
				return doneStep(out, true)
			}
			if progressed {
				continue
			}
			marker := &asyncMarker{Interruptable: lbl}
			marker.register = func(cb func(any, bool)) {
				wake.Lock()
				if woken {
					woken = false
					wake.Unlock()
					cb(nil, true)
					return
				}
				extCB = cb
				wake.Unlock()
			}
			return yieldAsyncStep(marker)
		}
	}
}

// All runs every computation concurrently (in the idle-rotation sense
// above — there is no goroutine per branch, only interleaved stepping) and
// collects their results in argument order.
func All[A any](cs ...Computation[A]) Computation[[]A] {
	return Computation[[]A]{factory: func() StepFunc {
		branches := make([]*branchSlot, len(cs))
		for i, c := range cs {
			branches[i] = acquireBranchSlot(eraseComputation(c).factory())
		}
		inner := runAll(branches)
		finished := false
		return func(input Resumed, hasInput bool) Step {
			if finished {
				return doneStep(nil, false)
			}
			s := inner(input, hasInput)
			if s.Kind != StepDone {
				return s
			}
			finished = true
			if !s.HasValue {
				return doneStep(nil, false)
			}
			raw := s.Value.([]any)
			out := make([]A, len(raw))
			for i, v := range raw {
				out[i], _ = v.(A)
			}
			return doneStep(out, true)
		}
	}}
}

// AllMap is All keyed by an arbitrary comparable K instead of positional
// order, for groups of computations assembled from a map rather than a
// fixed argument list.
func AllMap[K comparable, A any](cs map[K]Computation[A]) Computation[map[K]A] {
	return Computation[map[K]A]{factory: func() StepFunc {
		keys := make([]K, 0, len(cs))
		branches := make([]*branchSlot, 0, len(cs))
		for k, c := range cs {
			keys = append(keys, k)
			branches = append(branches, acquireBranchSlot(eraseComputation(c).factory()))
		}
		inner := runAll(branches)
		finished := false
		return func(input Resumed, hasInput bool) Step {
			if finished {
				return doneStep(nil, false)
			}
			s := inner(input, hasInput)
			if s.Kind != StepDone {
				return s
			}
			finished = true
			if !s.HasValue {
				return doneStep(nil, false)
			}
			raw := s.Value.([]any)
			out := make(map[K]A, len(raw))
			for i, v := range raw {
				a, _ := v.(A)
				out[keys[i]] = a
			}
			return doneStep(out, true)
		}
	}}
}
