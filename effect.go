// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effected

// Effect is an opaque descriptor for one effect occurrence: a name used for
// handler matching, the payloads passed to whichever handler body catches
// it, whether the triggering computation may be resumed, and an optional
// fallback handler body to run if nothing installed upstream matches.
//
// Effects are immutable once built; matching is by Name only — two effects
// built from different call sites with the same Name are indistinguishable
// to a handler. That is a documented hazard, not a bug: nothing in this
// package deduplicates names across independently authored factories.
type Effect struct {
	Name           string
	Payloads       []any
	Resumable      bool
	DefaultHandler HandlerBody
}

// NewEffect builds a resumable effect with no default handler.
func NewEffect(name string, payloads ...any) *Effect {
	return &Effect{Name: name, Payloads: payloads, Resumable: true}
}

// NewError builds a non-resumable effect under the "error:" naming
// convention used by Catch/CatchAll (§6 of the design): throwing aborts the
// computation rather than resuming it with a value.
func NewError(name string, payloads ...any) *Effect {
	return &Effect{Name: "error:" + name, Payloads: payloads, Resumable: false}
}

// NewDependency builds a resumable effect under the "dependency:" naming
// convention used by Provide/ProvideBy.
func NewDependency(name string, payloads ...any) *Effect {
	return &Effect{Name: "dependency:" + name, Payloads: payloads, Resumable: true}
}

// NonResumable returns a copy of e marked non-resumable. Descriptors are
// immutable, so this never mutates e itself.
func (e *Effect) NonResumable() *Effect {
	cp := *e
	cp.Resumable = false
	return &cp
}

// WithDefaultHandler returns a copy of e carrying the given fallback body,
// invoked by the interpreter only when the effect reaches the outermost run
// with no installed handler matching its Name.
func (e *Effect) WithDefaultHandler(body HandlerBody) *Effect {
	cp := *e
	cp.DefaultHandler = body
	return &cp
}

// withComposedDefaultHandler returns a copy of e whose default handler first
// tries (match, body) — the handler a surrounding Handle call installs — and
// only falls back to e's own default handler if match doesn't apply. This is
// the immutable rewrite the interpreter performs when a surrounding handler
// is present for a descriptor that also carries a default handler, so that
// default-handler fallback still respects whatever handler layering the
// caller already set up (spec Design Notes item 3: rewrite, never mutate).
func (e *Effect) withComposedDefaultHandler(match func(name string) bool, body HandlerBody) *Effect {
	if e.DefaultHandler == nil {
		return e
	}
	original := e.DefaultHandler
	composed := func(ctx *Context, payloads ...any) {
		if match(ctx.Effect.Name) {
			body(ctx, payloads...)
			return
		}
		original(ctx, payloads...)
	}
	cp := *e
	cp.DefaultHandler = composed
	return &cp
}

// Perform yields e and resumes with whatever value the matching handler
// supplies. The type parameter A is the resumed value's expected type; a
// handler resuming with a value of a different type does not fail — the
// comma-ok type assertion yields A's zero value, consistent with the rest
// of the dynamic effect surface.
func Perform[A any](e *Effect) Computation[A] {
	return Computation[A]{factory: func() StepFunc {
		state := 0
		return func(input Resumed, hasInput bool) Step {
			switch state {
			case 0:
				state = 1
				return yieldEffectStep(e)
			case 1:
				state = 2
				if !hasInput {
					return doneStep(nil, false)
				}
				v, _ := input.(A)
				return doneStep(v, true)
			default:
				return doneStep(nil, false)
			}
		}
	}}
}
