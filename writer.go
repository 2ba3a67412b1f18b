// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effected

// Writer effect library: Tell accumulates output W, RunWriter captures it
// for c's own scope, and Listen/Censor observe or rewrite a nested
// computation's output while still letting it propagate to whatever Writer
// encloses them — the same "resume with a Computation value" trick Local
// uses for Reader.

func isTellName(name string) bool { return name == "writer:tell" }

// Tell performs "writer:tell", appending w to the output of the nearest
// enclosing RunWriter (or, inside Listen/Censor, the one enclosing that).
func Tell[W any](w W) Computation[struct{}] {
	return Perform[struct{}](NewEffect("writer:tell", w))
}

// RunWriter captures every Tell[W] performed within c and returns c's
// result paired with the accumulated output, in Tell order.
func RunWriter[W, A any](c Computation[A]) Computation[Pair[[]W, A]] {
	return Computation[Pair[[]W, A]]{factory: func() StepFunc {
		var log []W
		handled := Handle(c, isTellName, func(ctx *Context, payloads ...any) {
			v, _ := firstOrNone(payloads)
			w, _ := v.(W)
			log = append(log, w)
			ctx.Resume(struct{}{})
		})
		return Map(handled, func(a A) Pair[[]W, A] { return Pair[[]W, A]{First: log, Second: a} }).factory()
	}}
}

// ExecWriter is RunWriter keeping only the accumulated output.
func ExecWriter[W, A any](c Computation[A]) Computation[[]W] {
	return Map(RunWriter[W, A](c), func(p Pair[[]W, A]) []W { return p.First })
}

// Listen runs c, capturing a local copy of every Tell[W] it performs for
// inspection, while still forwarding each one upward (resuming with
// Tell(w) itself, a Computation value, rather than a plain unit) so an
// outer RunWriter still records it. The local copy and the outer log are
// independent: Listen changes what the caller can see, not what the
// surrounding Writer accumulates.
func Listen[W, A any](c Computation[A]) Computation[Pair[[]W, A]] {
	return Computation[Pair[[]W, A]]{factory: func() StepFunc {
		var captured []W
		handled := Handle(c, isTellName, func(ctx *Context, payloads ...any) {
			v, _ := firstOrNone(payloads)
			w, _ := v.(W)
			captured = append(captured, w)
			ctx.Resume(Tell(w))
		})
		return Map(handled, func(a A) Pair[[]W, A] { return Pair[[]W, A]{First: captured, Second: a} }).factory()
	}}
}

// Censor runs c, rewriting every Tell[W] value with f before it propagates
// to whatever Writer encloses Censor. f sees one value at a time, not the
// accumulated slice — to rewrite output in bulk, compose Censor with Listen.
func Censor[W, A any](f func(W) W, c Computation[A]) Computation[A] {
	return Handle(c, isTellName, func(ctx *Context, payloads ...any) {
		v, _ := firstOrNone(payloads)
		w, _ := v.(W)
		ctx.Resume(Tell(f(w)))
	})
}
