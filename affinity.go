// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effected

import (
	"sync/atomic"

	"github.com/petermattis/goid"
)

// affinityGuard tags the goroutine currently driving a run's steps, the way
// AnatoleLucet-sig's owner/runtime tracking keys a per-goroutine map off
// goid.Get(). A Computation's steps may legitimately run on different
// goroutines across separate RunSync/RunAsync calls, but a single in-flight
// run must not be stepped concurrently from two goroutines at once — doing
// so would race on the very closures StepFunc captures.
type affinityGuard struct {
	owner    atomic.Int64
	checking bool
	logger   Logger
}

const noOwner = 0

func newAffinityGuard(checking bool, logger Logger) *affinityGuard {
	return &affinityGuard{checking: checking, logger: logger}
}

// enter claims the run for the calling goroutine's id, returning false
// (without claiming anything) if a different goroutine already holds it.
func (g *affinityGuard) enter() bool {
	if !g.checking {
		return true
	}
	gid := goid.Get()
	if g.owner.CompareAndSwap(noOwner, gid) {
		return true
	}
	if g.owner.Load() == gid {
		return true
	}
	g.logger.Warnf("effected: concurrent Step call on goroutine %d while goroutine %d is driving this run", gid, g.owner.Load())
	return false
}

// leave releases the run so a later Step call (from any goroutine) may
// claim it again — called once a Step call returns, not held for the run's
// whole lifetime, since RunAsync's async gaps hand control back to
// whichever goroutine the host's callback fires on.
func (g *affinityGuard) leave() {
	if !g.checking {
		return
	}
	g.owner.Store(noOwner)
}
