// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effected

// Reader effect library: Ask reads a read-only environment value, and
// RunReader installs a handler supplying it. Local rebinds the environment
// for a sub-computation by re-performing Ask upward through a Map — see its
// doc comment for why that's the correct way to express it here.

func isAskName(name string) bool { return name == "reader:ask" }

// Ask performs "reader:ask", resuming with the environment installed by the
// nearest enclosing RunReader.
func Ask[R any]() Computation[R] {
	return Perform[R](NewEffect("reader:ask"))
}

// Asks is Ask followed by a pure projection, the common case of wanting one
// field out of the environment rather than the whole value.
func Asks[R, A any](f func(R) A) Computation[A] {
	return Map(Ask[R](), f)
}

// RunReader installs env as the environment every Ask[R] within c resumes
// with.
func RunReader[R, A any](env R, c Computation[A]) Computation[A] {
	return Handle(c, isAskName, func(ctx *Context, _ ...any) {
		ctx.Resume(env)
	})
}

// Local runs c with its Asks answered by f(outerEnv) instead of outerEnv
// directly. It does not know outerEnv itself — instead of intercepting Ask
// with a value, it resumes each occurrence with Map(Ask[R](), f), a
// Computation value, which Handle recognises and drives as a sub-computation
// in place of a plain resume. That sub-computation performs its own
// "reader:ask", which this Handle layer does not re-intercept (a computation
// handed to Resume escapes the handler that produced it), so it reaches
// whichever RunReader encloses Local and gets the real outer environment.
func Local[R, A any](f func(R) R, c Computation[A]) Computation[A] {
	return Handle(c, isAskName, func(ctx *Context, _ ...any) {
		ctx.Resume(Map(Ask[R](), f))
	})
}
