// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effected

// Error-effect sugar built on the "error:" naming convention NewError
// establishes and Catch/CatchAll already understand.

// Throw performs a non-resumable effect under errName, aborting the
// enclosing computation the moment it's handled (by Catch, CatchAll, or the
// run's own unhandled-effect fault if nothing catches it).
func Throw[A any](errName string, payloads ...any) Computation[A] {
	return Perform[A](NewError(errName, payloads...))
}

// Either represents a value that is either Left (error) or Right (success),
// the result shape Attempt/AttemptAll produce out of a computation that may
// throw.
type Either[E, A any] struct {
	isRight bool
	left    E
	right   A
}

// Left creates a Left (error) value.
func Left[E, A any](e E) Either[E, A] { return Either[E, A]{isRight: false, left: e} }

// Right creates a Right (success) value.
func Right[E, A any](a A) Either[E, A] { return Either[E, A]{isRight: true, right: a} }

// IsRight returns true if this is a Right value.
func (e Either[E, A]) IsRight() bool { return e.isRight }

// IsLeft returns true if this is a Left value.
func (e Either[E, A]) IsLeft() bool { return !e.isRight }

// GetRight returns the Right value and true, or zero and false.
func (e Either[E, A]) GetRight() (A, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero A
	return zero, false
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[E, A]) GetLeft() (E, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero E
	return zero, false
}

// MatchEither pattern matches on the Either, calling onLeft or onRight.
func MatchEither[E, A, T any](e Either[E, A], onLeft func(E) T, onRight func(A) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapEither applies a function to the Right value.
func MapEither[E, A, B any](e Either[E, A], f func(A) B) Either[E, B] {
	if e.isRight {
		return Right[E](f(e.right))
	}
	return Left[E, B](e.left)
}

// FlatMapEither sequences two Either computations.
func FlatMapEither[E, A, B any](e Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	if e.isRight {
		return f(e.right)
	}
	return Left[E, B](e.left)
}

// Attempt runs c, converting a Throw of errName into a Left instead of
// aborting the caller, and a normal completion into Right. Any other error
// name, or any other effect, still flows through unhandled.
func Attempt[A any](c Computation[A], errName string) Computation[Either[any, A]] {
	wrapped := Map(c, func(a A) Either[any, A] { return Right[any, A](a) })
	return Catch(wrapped, errName, func(payloads ...any) Either[any, A] {
		v, _ := firstOrNone(payloads)
		return Left[any, A](v)
	})
}

// AttemptAll is Attempt generalised to every "error:"-named effect.
func AttemptAll[A any](c Computation[A]) Computation[Either[any, A]] {
	wrapped := Map(c, func(a A) Either[any, A] { return Right[any, A](a) })
	return CatchAll(wrapped, func(name string, payloads ...any) Either[any, A] {
		v, _ := firstOrNone(payloads)
		return Left[any, A](v)
	})
}
