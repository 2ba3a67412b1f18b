// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effected

import "sync"

// branchSlot pool: All/AllMap build one slot per branch on every call, and a
// caller driving many short-lived parallel groups (a request handler
// fanning out per-field validation, say) would otherwise churn one
// allocation per branch per group. Pooled the same way the teacher pools
// its frame types — acquire, use affinely for the branch's lifetime,
// release with every field zeroed.
var branchSlotPool = sync.Pool{New: func() any { return new(branchSlot) }}

func acquireBranchSlot(step StepFunc) *branchSlot {
	sl := branchSlotPool.Get().(*branchSlot)
	sl.step = step
	return sl
}

func releaseBranchSlots(slots []*branchSlot) {
	for _, sl := range slots {
		sl.step = nil
		sl.done = false
		sl.value = nil
		sl.hasValue = false
		sl.marker = nil
		sl.pendingInput = nil
		sl.hasPendingInput = false
		branchSlotPool.Put(sl)
	}
}
