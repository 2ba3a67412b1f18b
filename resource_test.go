// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effected_test

import (
	"testing"

	effected "code.effectlab.dev/effected"
)

func TestBracketReleasesOnSuccess(t *testing.T) {
	released := false
	c := effected.Bracket(
		effected.Of("handle"),
		func(h string) effected.Computation[int] { return effected.Of(len(h)) },
		func(h string) effected.Computation[struct{}] {
			released = true
			return effected.Of(struct{}{})
		},
	)
	v, err := effected.RunSync(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 6 {
		t.Fatalf("got %d, want 6", v)
	}
	if !released {
		t.Fatal("release did not run on success")
	}
}

func TestBracketReleasesOnThrow(t *testing.T) {
	released := false
	c := effected.Bracket(
		effected.Of("handle"),
		func(h string) effected.Computation[int] { return effected.Throw[int]("boom", "bad") },
		func(h string) effected.Computation[struct{}] {
			released = true
			return effected.Of(struct{}{})
		},
	)
	_, err := effected.RunSync(c)
	if err == nil {
		t.Fatal("expected the rethrown error to reach RunSync")
	}
	if !released {
		t.Fatal("release did not run before the rethrow")
	}
}

func TestBracketReleasesOnPanic(t *testing.T) {
	released := false
	c := effected.Bracket(
		effected.Of("handle"),
		func(h string) effected.Computation[int] {
			return effected.From(func() int { panic("kaboom") })
		},
		func(h string) effected.Computation[struct{}] {
			released = true
			return effected.Of(struct{}{})
		},
	)
	_, err := effected.RunSync(c)
	if err == nil {
		t.Fatal("expected the panic to surface as an error")
	}
	if !released {
		t.Fatal("release did not run before the panic propagated")
	}
}

func TestOnErrorRunsCleanupAndRethrows(t *testing.T) {
	cleaned := false
	c := effected.OnError(effected.Throw[int]("fail", 99), func(name string, payloads ...any) effected.Computation[struct{}] {
		cleaned = true
		if name != "fail" {
			t.Fatalf("cleanup saw name %q, want %q", name, "fail")
		}
		return effected.Of(struct{}{})
	})
	caught := effected.Catch(c, "fail", func(payloads ...any) int {
		v, _ := payloads[0].(int)
		return v
	})
	v, err := effected.RunSync(caught)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cleaned {
		t.Fatal("OnError's cleanup did not run")
	}
	if v != 99 {
		t.Fatalf("got %d, want 99", v)
	}
}
