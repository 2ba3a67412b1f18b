// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effected

import (
	"fmt"

	"github.com/pkg/errors"
)

// UnhandledEffectError is returned (RunSync/RunAsync) or panicked
// (RunSyncUnsafe/RunAsyncUnsafe) when an effect reaches the outermost run
// with no installed handler matching its name and no default handler.
type UnhandledEffectError struct {
	Name string
}

func (e *UnhandledEffectError) Error() string {
	return fmt.Sprintf("effected: unhandled effect %q", e.Name)
}

// NonResumableEffectError is panicked when a HandlerBody calls Resume on an
// effect built with NewError or NonResumable.
type NonResumableEffectError struct {
	Name string
}

func (e *NonResumableEffectError) Error() string {
	return fmt.Sprintf("effected: effect %q is not resumable", e.Name)
}

// AsyncUnderSyncError is returned by RunSync/RunSyncUnsafe when a
// computation yields an async suspension — host asynchrony can only be
// driven by RunAsync/RunAsyncFuture.
type AsyncUnderSyncError struct {
	EffectName string
}

func (e *AsyncUnderSyncError) Error() string {
	return fmt.Sprintf("effected: computation suspended asynchronously (last effect %q) under RunSync", e.EffectName)
}

// MalformedYieldError is returned when a Step reaching the run boundary
// carries a StepKind the interpreter does not recognise, a
// StepYieldAsync/StepYieldSync with its payload field left nil, or an
// effect performed by a sub-computation a DefaultHandler settled with
// (nothing dispatches that effect). A nil payload field met earlier, inside
// a Handle or All layer, is not checked there and surfaces as a
// HandlerPanicError instead.
type MalformedYieldError struct {
	Kind StepKind
}

func (e *MalformedYieldError) Error() string {
	return fmt.Sprintf("effected: malformed step (kind %d) — yield fields inconsistent with its Kind", e.Kind)
}

// HandlerPanicError wraps a panic recovered from a HandlerBody.
type HandlerPanicError struct {
	EffectName string
	Recovered  any
}

func (e *HandlerPanicError) Error() string {
	return fmt.Sprintf("effected: handler for %q panicked: %v", e.EffectName, e.Recovered)
}

// DefaultHandlerPanicError wraps a panic recovered from an Effect's
// DefaultHandler.
type DefaultHandlerPanicError struct {
	EffectName string
	Recovered  any
}

func (e *DefaultHandlerPanicError) Error() string {
	return fmt.Sprintf("effected: default handler for %q panicked: %v", e.EffectName, e.Recovered)
}

// ErrConcurrentStep is returned by a Step call that loses the race to
// advance a run already being driven by another goroutine (see affinity.go).
var ErrConcurrentStep = errors.New("effected: concurrent Step call on the same run")

// ErrStepBudgetExceeded is returned when a run's StepFunc call count passes
// the Interpreter's WithStepBudget limit — a diagnosed, catchable distinct
// failure from a malformed yield, since nothing about the steps taken was
// actually malformed; the computation is just not terminating.
var ErrStepBudgetExceeded = errors.New("effected: step budget exceeded")

// ThrownError is the host-level failure CatchAndThrow/CatchAllAndThrow raise
// in place of a plain recovered value: f's return value becomes the failure
// RunSync/RunAsync report instead of a Done result, per spec.md §4.3's
// "raise a host-level error" contract (Catch/CatchAll terminate with a plain
// value instead — they don't fail the run).
type ThrownError struct {
	Name  string
	Value any
}

func (e *ThrownError) Error() string {
	if s, ok := e.Value.(string); ok {
		return s
	}
	return fmt.Sprintf("effected: %q thrown: %v", e.Name, e.Value)
}

// undeclaredEffectError is panicked by DeclareEffects when any yielded
// effect's name isn't in the declared set.
type undeclaredEffectError struct {
	Name     string
	Declared []string
}

func (e *undeclaredEffectError) Error() string {
	return fmt.Sprintf("effected: effect %q is not among the declared names %v", e.Name, e.Declared)
}

// wrapFault annotates err with a stack trace captured at the detection site,
// using pkg/errors rather than stdlib's error wrapping so a failure's stack
// survives being passed up through RunSync/RunAsync's plain error return.
func wrapFault(err error) error {
	return errors.WithStack(err)
}
