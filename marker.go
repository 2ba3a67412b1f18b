// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effected

// label is an opaque, pointer-identity token minted once per All call and
// attached to every asyncMarker the group itself yields when all its
// remaining branches are suspended (the branches' own markers are not
// tagged). It lets a handler further up the stack recognise "these
// suspensions all belong to the same parallel group" (the spec's
// "interruptable" tag) without exposing any structure beyond identity —
// comparing two labels is just pointer equality.
type label struct{ _ byte }

func newLabel() *label { return &label{} }

// asyncMarker tags a suspension on host asynchrony: nothing is known about
// when, or on what goroutine, the value will arrive — only that the
// registered callback eventually fires exactly once with the resolved value.
type asyncMarker struct {
	register      func(cb func(v any, hasValue bool))
	Interruptable *label
}

// OnComplete registers the single callback invoked once this suspension's
// value becomes available. The runners in run.go and runAll (parallel.go)
// call it; calling it more than once per marker is a caller error.
func (m *asyncMarker) OnComplete(cb func(v any, hasValue bool)) {
	m.register(cb)
}

// syncMarker tags a suspension that already carries its own resumption
// value: the driving loop (advance, or runAll for an All branch) calls back
// in on the very next step with it, without going through a handler. No
// combinator in this package produces one; only a hand-built StepFunc
// (via Effected) does.
type syncMarker struct {
	Value    any
	HasValue bool
}

// handlerEntry is deliberately not pool-allocated: a HandlerBody is handed
// its Context and may retain it past the point Handle has moved on (to
// settle it from a goroutine it spawns later, say). Recycling the backing
// struct would let a stale duplicate Resume/Terminate call corrupt whatever
// unrelated Handle invocation had since been issued the reused object, which
// is strictly worse than the duplicate call it would otherwise just log and
// ignore.
func newHandlerEntry(effectName string) *handlerEntry {
	return &handlerEntry{effectName: effectName}
}
