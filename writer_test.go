// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effected_test

import (
	"reflect"
	"testing"

	effected "code.effectlab.dev/effected"
)

func TestRunWriterAccumulatesInOrder(t *testing.T) {
	c := effected.FlatMap(effected.Tell("a"), func(struct{}) effected.Computation[struct{}] {
		return effected.FlatMap(effected.Tell("b"), func(struct{}) effected.Computation[struct{}] {
			return effected.Tell("c")
		})
	})
	p, err := effected.RunSync(effected.RunWriter[string](c))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(p.First, want) {
		t.Fatalf("log = %v, want %v", p.First, want)
	}
}

func TestListenCapturesAndForwards(t *testing.T) {
	inner := effected.FlatMap(effected.Tell("x"), func(struct{}) effected.Computation[string] {
		return effected.As[struct{}, string](effected.Tell("y"), "done")
	})
	outer := effected.RunWriter[string](effected.Listen[string](inner))

	p, err := effected.RunSync(outer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	localLog := p.Second.First
	outerLog := p.First
	want := []string{"x", "y"}
	if !reflect.DeepEqual(localLog, want) {
		t.Fatalf("Listen's local capture = %v, want %v", localLog, want)
	}
	if !reflect.DeepEqual(outerLog, want) {
		t.Fatalf("outer log after Listen = %v, want %v (Tells must still propagate)", outerLog, want)
	}
}

func TestCensorRewritesBeforePropagating(t *testing.T) {
	inner := effected.Tell("hello")
	censored := effected.Censor(func(s string) string { return s + "!" }, inner)
	p, err := effected.RunSync(effected.RunWriter[string](censored))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"hello!"}
	if !reflect.DeepEqual(p.First, want) {
		t.Fatalf("log = %v, want %v", p.First, want)
	}
}
