// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effected

// State effect library: Get/Put/Modify perform dynamic effects under a
// "state:" name, and RunState installs a handler that threads a mutable S
// through the performances, closing over it rather than passing a *S.

// Get performs "state:get", resuming with the current state value installed
// by the nearest enclosing RunState.
func Get[S any]() Computation[S] {
	return Perform[S](NewEffect("state:get"))
}

// Put performs "state:put", replacing the state RunState threads through
// with v.
func Put[S any](v S) Computation[struct{}] {
	return Perform[struct{}](NewEffect("state:put", v))
}

// Modify performs "state:modify", replacing the threaded state with
// f(current) and resuming with the new value.
func Modify[S any](f func(S) S) Computation[S] {
	return Perform[S](NewEffect("state:modify", f))
}

func isStateName(name string) bool {
	return name == "state:get" || name == "state:put" || name == "state:modify"
}

// RunState threads a mutable S through c's Get/Put/Modify performances,
// starting from initial, and returns c's result paired with the final
// state. Unlike Provide's constant value, every Put/Modify changes what
// subsequent Gets within c observe.
func RunState[S, A any](initial S, c Computation[A]) Computation[Pair[S, A]] {
	return Computation[Pair[S, A]]{factory: func() StepFunc {
		state := initial
		handled := Handle(c, isStateName, func(ctx *Context, payloads ...any) {
			switch ctx.Effect.Name {
			case "state:get":
				ctx.Resume(state)
			case "state:put":
				v, _ := firstOrNone(payloads)
				state, _ = v.(S)
				ctx.Resume(struct{}{})
			case "state:modify":
				v, _ := firstOrNone(payloads)
				f, _ := v.(func(S) S)
				state = f(state)
				ctx.Resume(state)
			}
		})
		return Map(handled, func(a A) Pair[S, A] { return Pair[S, A]{First: state, Second: a} }).factory()
	}}
}

// EvalState is RunState keeping only c's result.
func EvalState[S, A any](initial S, c Computation[A]) Computation[A] {
	return Map(RunState(initial, c), func(p Pair[S, A]) A { return p.Second })
}

// ExecState is RunState keeping only the final state.
func ExecState[S, A any](initial S, c Computation[A]) Computation[S] {
	return Map(RunState(initial, c), func(p Pair[S, A]) S { return p.First })
}
