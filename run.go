// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effected

func eraseComputation[A any](c Computation[A]) Computation[any] {
	return Map(c, func(a A) any { return a })
}

func coerceOutcome[A any](o runOutcome) (A, error) {
	var zero A
	if o.Err != nil {
		return zero, o.Err
	}
	if !o.HasValue {
		return zero, nil
	}
	v, _ := o.Value.(A)
	return v, nil
}

// RunSync drives c to completion on the calling goroutine, returning an
// AsyncUnderSyncError if c ever suspends on host asynchrony, or an
// UnhandledEffectError if it performs an
// effect nothing — no installed Handle, no DefaultHandler — catches.
func RunSync[A any](c Computation[A], opts ...InterpreterOption) (A, error) {
	ip := NewInterpreter(opts...)
	rs := newRun(ip, eraseComputation(c))
	return coerceOutcome[A](advance(rs, nil, false, false))
}

// RunSyncUnsafe is RunSync with the error panicked instead of returned.
func RunSyncUnsafe[A any](c Computation[A], opts ...InterpreterOption) A {
	v, err := RunSync(c, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// RunAsync drives c to completion, blocking the calling goroutine across
// any asynchronous suspensions c performs (via Effectify or a handler that
// settles its Context from another goroutine) until a final value or fault
// is reached.
func RunAsync[A any](c Computation[A], opts ...InterpreterOption) (A, error) {
	ip := NewInterpreter(opts...)
	rs := newRun(ip, eraseComputation(c))

	result := make(chan runOutcome, 1)
	var step func(input Resumed, hasInput bool)
	step = func(input Resumed, hasInput bool) {
		outcome := advance(rs, input, hasInput, true)
		if outcome.Pending != nil {
			outcome.Pending.OnComplete(func(v any, hv bool) { step(v, hv) })
			return
		}
		result <- outcome
	}
	step(nil, false)
	return coerceOutcome[A](<-result)
}

// RunAsyncUnsafe is RunAsync with the error panicked instead of returned.
func RunAsyncUnsafe[A any](c Computation[A], opts ...InterpreterOption) A {
	v, err := RunAsync(c, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// RunAsyncFuture drives c without blocking the calling goroutine, returning
// a Future that settles once c reaches a final value or fault.
func RunAsyncFuture[A any](c Computation[A], opts ...InterpreterOption) Future[A] {
	ip := NewInterpreter(opts...)
	rs := newRun(ip, eraseComputation(c))
	d := NewDeferred[A]()

	var step func(input Resumed, hasInput bool)
	step = func(input Resumed, hasInput bool) {
		outcome := advance(rs, input, hasInput, true)
		if outcome.Pending != nil {
			outcome.Pending.OnComplete(func(v any, hv bool) { step(v, hv) })
			return
		}
		v, err := coerceOutcome[A](outcome)
		if err != nil {
			d.Reject(err)
			return
		}
		d.Resolve(v)
	}
	step(nil, false)
	return d.Future()
}
