// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effected_test

import (
	"math/rand/v2"
	"testing"

	effected "code.effectlab.dev/effected"
)

func TestRunStateThreadsGetPutModify(t *testing.T) {
	c := effected.FlatMap(effected.Get[int](), func(s int) effected.Computation[int] {
		return effected.FlatMap(effected.Put(s+10), func(struct{}) effected.Computation[int] {
			return effected.Modify(func(s int) int { return s * 2 })
		})
	})
	pair, err := effected.RunSync(effected.RunState(5, c))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pair.Second != 30 {
		t.Fatalf("result = %d, want 30", pair.Second)
	}
	if pair.First != 30 {
		t.Fatalf("final state = %d, want 30", pair.First)
	}
}

func TestEvalStateDiscardsFinalState(t *testing.T) {
	c := effected.Get[int]()
	v, err := effected.RunSync(effected.EvalState(99, c))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 99 {
		t.Fatalf("got %d, want 99", v)
	}
}

func TestExecStateDiscardsResult(t *testing.T) {
	c := effected.Put(123)
	s, err := effected.RunSync(effected.ExecState(0, c))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != 123 {
		t.Fatalf("final state = %d, want 123", s)
	}
}

func TestRunStatePropertyAccumulate(t *testing.T) {
	rng := rand.New(rand.NewPCG(29, 0))
	for range 200 {
		n := rng.IntN(50)
		total := 0
		c := effected.Of(struct{}{})
		for range n {
			inc := rng.IntN(11) - 5
			total += inc
			c = effected.FlatMap(c, func(struct{}) effected.Computation[struct{}] {
				return effected.AsVoid(effected.Modify(func(s int) int { return s + inc }))
			})
		}
		s, err := effected.RunSync(effected.ExecState(0, c))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s != total {
			t.Fatalf("final state = %d, want %d", s, total)
		}
	}
}
