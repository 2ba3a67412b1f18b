// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effected_test

import (
	"testing"

	effected "code.effectlab.dev/effected"
)

func TestHandleResumesWithValue(t *testing.T) {
	c := effected.Perform[int](effected.NewEffect("ask-number"))
	handled := effected.Handle(c, func(name string) bool { return name == "ask-number" }, func(ctx *effected.Context, _ ...any) {
		ctx.Resume(7)
	})
	v, err := effected.RunSync(handled)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 7 {
		t.Fatalf("got %d, want 7", v)
	}
}

func TestHandleTerminateShortCircuits(t *testing.T) {
	c := effected.FlatMap(effected.Perform[int](effected.NewEffect("abort")), func(n int) effected.Computation[int] {
		t.Fatal("continuation ran after Terminate")
		return effected.Of(n)
	})
	handled := effected.Handle(c, func(name string) bool { return name == "abort" }, func(ctx *effected.Context, _ ...any) {
		ctx.Terminate(-1)
	})
	v, err := effected.RunSync(handled)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != -1 {
		t.Fatalf("got %d, want -1", v)
	}
}

func TestResumeWithComputationIntercepts(t *testing.T) {
	c := effected.Perform[int](effected.NewEffect("double-ask"))
	handled := effected.Handle(c, func(name string) bool { return name == "double-ask" }, func(ctx *effected.Context, _ ...any) {
		ctx.Resume(effected.Of(21 * 2))
	})
	v, err := effected.RunSync(handled)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 42 {
		t.Fatalf("got %d, want 42", v)
	}
}

func TestDuplicateResumeIsIgnored(t *testing.T) {
	c := effected.Handle(effected.Perform[int](effected.NewEffect("greedy")), func(name string) bool { return name == "greedy" }, func(ctx *effected.Context, _ ...any) {
		ctx.Resume(1)
		ctx.Resume(2) // must not panic, must not change the outcome
	})
	v, err := effected.RunSync(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 1 {
		t.Fatalf("got %d, want 1 (second Resume should be ignored)", v)
	}
}

func TestUnhandledEffectFaults(t *testing.T) {
	c := effected.Perform[int](effected.NewEffect("nobody-handles-this"))
	_, err := effected.RunSync(c)
	if err == nil {
		t.Fatal("expected an UnhandledEffectError")
	}
	if _, ok := err.(interface{ Error() string }); !ok {
		t.Fatalf("expected an error value, got %T", err)
	}
}

func TestResumingNonResumableEffectPanics(t *testing.T) {
	c := effected.Perform[int](effected.NewError("boom"))
	handled := effected.Handle(c, func(name string) bool { return name == "error:boom" }, func(ctx *effected.Context, _ ...any) {
		ctx.Resume(1) // should panic: error effects aren't resumable
	})
	_, err := effected.RunSync(handled)
	if err == nil {
		t.Fatal("expected an error from resuming a non-resumable effect")
	}
}

func TestProvideSuppliesDependency(t *testing.T) {
	c := effected.Perform[string](effected.NewDependency("config"))
	provided := effected.Provide(c, "config", "prod")
	v, err := effected.RunSync(provided)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "prod" {
		t.Fatalf("got %q, want %q", v, "prod")
	}
}
