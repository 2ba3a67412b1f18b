// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effected_test

import (
	"math/rand/v2"
	"testing"

	effected "code.effectlab.dev/effected"
)

func TestOfCompletesImmediately(t *testing.T) {
	v, err := effected.RunSync(effected.Of(42))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 42 {
		t.Fatalf("got %d, want 42", v)
	}
}

func TestFromRunsThunkOnce(t *testing.T) {
	calls := 0
	c := effected.From(func() int {
		calls++
		return calls
	})
	v, err := effected.RunSync(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 1 || calls != 1 {
		t.Fatalf("thunk ran %d times, want 1 (v=%d)", calls, v)
	}
}

func TestMapFlatMapLaws(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 0))
	for range 200 {
		a := rng.IntN(2001) - 1000
		f := func(x int) int { return x*3 + 1 }
		left, _ := effected.RunSync(effected.Map(effected.Of(a), f))
		right := f(a)
		if left != right {
			t.Fatalf("Map(Of(a), f) != f(a): %d != %d (a=%d)", left, right, a)
		}
	}
}

func TestFlatMapLeftIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 0))
	for range 200 {
		a := rng.IntN(2001) - 1000
		f := func(x int) effected.Computation[int] { return effected.Of(x * 3) }
		left, _ := effected.RunSync(effected.FlatMap(effected.Of(a), f))
		right, _ := effected.RunSync(f(a))
		if left != right {
			t.Fatalf("left identity: %d != %d (a=%d)", left, right, a)
		}
	}
}

func TestFlatMapRightIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 0))
	for range 200 {
		a := rng.IntN(2001) - 1000
		m := effected.Of(a)
		left, _ := effected.RunSync(effected.FlatMap(m, effected.Of[int]))
		right, _ := effected.RunSync(m)
		if left != right {
			t.Fatalf("right identity: %d != %d (a=%d)", left, right, a)
		}
	}
}

func TestDeclareEffectsRejectsUndeclared(t *testing.T) {
	c := effected.Perform[int](effected.NewEffect("mystery")).DeclareEffects("known")
	_, err := effected.RunSync(c)
	if err == nil {
		t.Fatal("expected an error for an undeclared effect name")
	}
}
