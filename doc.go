// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package effected implements algebraic effects for Go: computations that
// declare what they need (state, a reader environment, accumulated output,
// an error, an async wait) by yielding a named Effect, leaving how that need
// gets satisfied to whatever Handle wraps them.
//
// A Computation[A] is a re-runnable stepwise value built from Of, From,
// Perform and combinators like Map, FlatMap, and Handle. Driving one with
// RunSync, RunAsync, or RunAsyncFuture advances it one step at a time: each
// step either completes with a value, yields an Effect awaiting a handler,
// or suspends on host asynchrony. Handle installs a HandlerBody that matches
// effects by name and decides, via the Context it receives, whether to
// Resume the suspended computation with a value, Terminate it early, or
// settle it from another goroutine later — exactly once, enforced the same
// affine way the rest of this package enforces one-shot continuations.
//
// Get/Put/Modify, Ask/Asks/Local, and Tell/Listen/Censor build on Handle to
// give State, Reader, and Writer their usual shapes; Catch/CatchAll and
// Bracket/OnError build resource-safety and error-handling on top of the
// same "error:"-prefixed effect convention. All, AllMap, AllSeq, and
// AllSeqMap compose independent computations, either interleaved or in
// strict order.
package effected
