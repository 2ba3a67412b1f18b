// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effected_test

import (
	"testing"

	effected "code.effectlab.dev/effected"
)

type readerTestEnv struct {
	Name string
	Port int
}

func TestAskResumesWithEnvironment(t *testing.T) {
	env := readerTestEnv{Name: "svc", Port: 8080}
	v, err := effected.RunSync(effected.RunReader(env, effected.Ask[readerTestEnv]()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != env {
		t.Fatalf("got %+v, want %+v", v, env)
	}
}

func TestAsksProjectsEnvironment(t *testing.T) {
	env := readerTestEnv{Name: "svc", Port: 8080}
	port, err := effected.RunSync(effected.RunReader(env, effected.Asks(func(e readerTestEnv) int { return e.Port })))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if port != 8080 {
		t.Fatalf("got %d, want 8080", port)
	}
}

func TestLocalRebindsForSubComputation(t *testing.T) {
	outer := effected.RunReader(10, effected.FlatMap(
		effected.Local(func(n int) int { return n * 100 }, effected.Ask[int]()),
		func(inner int) effected.Computation[effected.Pair[int, int]] {
			return effected.Map(effected.Ask[int](), func(after int) effected.Pair[int, int] {
				return effected.Pair[int, int]{First: inner, Second: after}
			})
		},
	))
	p, err := effected.RunSync(outer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.First != 1000 {
		t.Fatalf("inner Ask under Local = %d, want 1000", p.First)
	}
	if p.Second != 10 {
		t.Fatalf("Ask after Local = %d, want 10 (unaffected)", p.Second)
	}
}
