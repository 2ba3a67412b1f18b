// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effected

import "sync"

// Future is the minimal shape this package needs from host asynchrony: a
// value that becomes available later, delivered by a single OnComplete
// callback. RunAsyncFuture returns one; Effectify goes the other way,
// turning a Future into a Computation any handler can await on.
type Future[A any] interface {
	OnComplete(cb func(v A, err error))
}

// FutureFunc adapts a plain func to Future, for host code that already has
// a "give me a callback" API and doesn't want to build a Deferred.
type FutureFunc[A any] func(cb func(v A, err error))

func (f FutureFunc[A]) OnComplete(cb func(v A, err error)) { f(cb) }

// Resolver is the write side of a Deferred, exposed separately so a
// producer can be handed Resolver[A] without also getting read access.
type Resolver[A any] interface {
	Resolve(v A)
	Reject(err error)
}

// Deferred is a one-shot, multi-observer Future: Resolve/Reject settles it
// exactly once (later calls are ignored, same affine discipline as
// handlerEntry), and OnComplete calls registered before or after settlement
// both see the result exactly once.
type Deferred[A any] struct {
	mu        sync.Mutex
	settled   bool
	value     A
	err       error
	callbacks []func(A, error)
}

// NewDeferred creates an unsettled Deferred.
func NewDeferred[A any]() *Deferred[A] { return &Deferred[A]{} }

// Resolve settles the Deferred with a success value.
func (d *Deferred[A]) Resolve(v A) { d.settle(v, nil) }

// Reject settles the Deferred with a failure.
func (d *Deferred[A]) Reject(err error) {
	var zero A
	d.settle(zero, err)
}

func (d *Deferred[A]) settle(v A, err error) {
	d.mu.Lock()
	if d.settled {
		d.mu.Unlock()
		return
	}
	d.settled = true
	d.value, d.err = v, err
	cbs := d.callbacks
	d.callbacks = nil
	d.mu.Unlock()
	for _, cb := range cbs {
		cb(v, err)
	}
}

// Future returns the read side of this Deferred.
func (d *Deferred[A]) Future() Future[A] { return (*deferredFuture[A])(d) }

type deferredFuture[A any] Deferred[A]

func (f *deferredFuture[A]) OnComplete(cb func(v A, err error)) {
	d := (*Deferred[A])(f)
	d.mu.Lock()
	if d.settled {
		v, err := d.value, d.err
		d.mu.Unlock()
		cb(v, err)
		return
	}
	d.callbacks = append(d.callbacks, cb)
	d.mu.Unlock()
}

// Effectify lifts a Future into a Computation: awaiting it suspends the
// computation asynchronously (see asyncMarker), resuming with the Future's
// value on success, or performing a NewError("future", err) effect — caught
// the usual way with Catch/CatchAll — on failure.
func Effectify[A any](f Future[A]) Computation[A] {
	return Computation[A]{factory: func() StepFunc {
		state := 0
		var resolvedVal A
		var resolvedErr error
		return func(Resumed, bool) Step {
			switch state {
			case 0:
				state = 1
				marker := &asyncMarker{}
				marker.register = func(cb func(any, bool)) {
					f.OnComplete(func(v A, err error) {
						resolvedVal, resolvedErr = v, err
						cb(nil, true)
					})
				}
				return yieldAsyncStep(marker)
			case 1:
				state = 2
				if resolvedErr != nil {
					return yieldEffectStep(NewError("future", resolvedErr))
				}
				return doneStep(resolvedVal, true)
			default:
				return doneStep(nil, false)
			}
		}
	}}
}
