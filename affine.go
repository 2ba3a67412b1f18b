// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effected

import "sync/atomic"

// onceGuard enforces at-most-once claiming of a disposition (resume or
// terminate). It is the same affine one-shot primitive the teacher uses for
// continuation resumption, generalised here to guard a handler entry's
// resume/terminate pair instead of a single continuation call.
type onceGuard struct {
	used atomic.Uintptr
}

// claim reports whether this call is the first to succeed. Later calls
// return false and must not apply their effect — callers use this to turn a
// duplicate resume/terminate into a diagnostic instead of corrupting state.
func (g *onceGuard) claim() bool {
	return g.used.Add(1) == 1
}

// claimed reports whether the guard has already been claimed, without
// attempting to claim it.
func (g *onceGuard) claimed() bool {
	return g.used.Load() != 0
}
