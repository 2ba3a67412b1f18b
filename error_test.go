// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effected_test

import (
	"errors"
	"testing"

	effected "code.effectlab.dev/effected"
)

func TestAttemptCatchesMatchingThrow(t *testing.T) {
	c := effected.Attempt(effected.Throw[int]("parse", "bad input"), "parse")
	either, err := effected.RunSync(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if either.IsRight() {
		t.Fatal("expected a Left")
	}
	msg, _ := either.GetLeft()
	if msg != "bad input" {
		t.Fatalf("got %v, want %q", msg, "bad input")
	}
}

func TestAttemptPassesThroughSuccess(t *testing.T) {
	c := effected.Attempt(effected.Of(42), "parse")
	either, err := effected.RunSync(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := either.GetRight()
	if !ok || v != 42 {
		t.Fatalf("got (%d, %v), want (42, true)", v, ok)
	}
}

func TestAttemptAllCatchesAnyName(t *testing.T) {
	c := effected.AttemptAll(effected.Throw[int]("whatever-name", "x"))
	either, err := effected.RunSync(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if either.IsRight() {
		t.Fatal("expected a Left")
	}
}

func TestMatchEitherAndMapEither(t *testing.T) {
	right := effected.Right[string, int](10)
	doubled := effected.MapEither(right, func(n int) int { return n * 2 })
	v := effected.MatchEither(doubled, func(string) int { return -1 }, func(n int) int { return n })
	if v != 20 {
		t.Fatalf("got %d, want 20", v)
	}

	left := effected.Left[string, int]("bad")
	mapped := effected.MapEither(left, func(n int) int { return n * 2 })
	if !mapped.IsLeft() {
		t.Fatal("MapEither must not touch a Left")
	}
}

func TestFlatMapEitherShortCircuitsOnLeft(t *testing.T) {
	left := effected.Left[string, int]("bad")
	result := effected.FlatMapEither(left, func(n int) effected.Either[string, int] {
		t.Fatal("f must not run on a Left")
		return effected.Right[string, int](n)
	})
	if !result.IsLeft() {
		t.Fatal("expected a Left")
	}
}

func TestCatchVersusCatchAllNameScoping(t *testing.T) {
	c := effected.Catch(effected.Throw[int]("other", 1), "expected", func(payloads ...any) int { return -1 })
	_, err := effected.RunSync(c)
	if err == nil {
		t.Fatal("Catch must not swallow an effect thrown under a different name")
	}
}

func TestCatchRecoversButCatchAndThrowRaises(t *testing.T) {
	recovered := effected.Catch(effected.Throw[string]("a", "x"), "a", func(payloads ...any) string {
		return "a" + ":" + payloads[0].(string)
	})
	v, err := effected.RunSync(recovered)
	if err != nil {
		t.Fatalf("Catch must recover into a successful run, got error: %v", err)
	}
	if v != "a:x" {
		t.Fatalf("got %q, want %q", v, "a:x")
	}

	thrown := effected.CatchAndThrow(effected.Throw[string]("a", "x"), "a", func(payloads ...any) any {
		return "a" + ":" + payloads[0].(string)
	})
	_, err = effected.RunSync(thrown)
	if err == nil {
		t.Fatal("CatchAndThrow must raise a host-level error, not terminate the run successfully")
	}
	if err.Error() != "a:x" {
		t.Fatalf("got error %q, want %q", err.Error(), "a:x")
	}
}

func TestCatchAllAndThrowRaisesForSpecScenario(t *testing.T) {
	c := effected.CatchAllAndThrow(effected.Throw[string]("a", "x"), func(name string, payloads ...any) any {
		return name + ":" + payloads[0].(string)
	})
	_, err := effected.RunSync(c)
	if err == nil {
		t.Fatal("CatchAllAndThrow must fail run_sync with a host-level error")
	}
	if err.Error() != "a:x" {
		t.Fatalf("got error %q, want %q", err.Error(), "a:x")
	}
	var thrown *effected.ThrownError
	if !errors.As(err, &thrown) {
		t.Fatalf("expected a *effected.ThrownError in the chain, got %T: %v", err, err)
	}
	if thrown.Name != "a" {
		t.Fatalf("got thrown.Name = %q, want %q", thrown.Name, "a")
	}
}
