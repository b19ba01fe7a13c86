package bijectz

import "errors"

// Result holds the outcome of one reverse conversion: either a value or the
// *InversionFailure that prevented it. It exists for code that wants to
// keep outcomes around as data, for example inverting a batch and
// inspecting the failures afterwards, instead of branching on each error
// right away.
type Result[A any] struct {
	value   A
	failure *InversionFailure
}

// Success wraps a successfully inverted value.
func Success[A any](value A) Result[A] {
	return Result[A]{value: value}
}

// Failure wraps a failed inversion. A nil failure is treated as a failure
// with no transform, input or cause.
func Failure[A any](failure *InversionFailure) Result[A] {
	if failure == nil {
		failure = &InversionFailure{}
	}
	return Result[A]{failure: failure}
}

// Attempt inverts b and records the outcome. Errors that are not
// *InversionFailure, which a hand-written Injection may return, are wrapped
// in one naming the injection.
func Attempt[A, B any](inj Injection[A, B], b B) Result[A] {
	a, err := inj.Invert(b)
	if err != nil {
		return Failure[A](failureOf(inj.Name(), b, err))
	}
	return Success(a)
}

// InvertAll inverts every value in bs and returns one Result per input, in
// order. A failure for one value does not stop the others.
func InvertAll[A, B any](inj Injection[A, B], bs []B) []Result[A] {
	results := make([]Result[A], len(bs))
	for i, b := range bs {
		results[i] = Attempt(inj, b)
	}
	return results
}

// Get returns the value and a nil error, or the zero value and the failure.
func (r Result[A]) Get() (A, error) {
	if r.failure != nil {
		var zero A
		return zero, r.failure
	}
	return r.value, nil
}

// IsSuccess reports whether the inversion succeeded.
func (r Result[A]) IsSuccess() bool {
	return r.failure == nil
}

// IsFailure reports whether the inversion failed.
func (r Result[A]) IsFailure() bool {
	return r.failure != nil
}

// Value returns the inverted value, or the zero value on failure.
func (r Result[A]) Value() A {
	return r.value
}

// Failure returns the failure, or nil on success.
func (r Result[A]) Failure() *InversionFailure {
	return r.failure
}

// OrElse returns the inverted value, or fallback on failure.
func (r Result[A]) OrElse(fallback A) A {
	if r.failure != nil {
		return fallback
	}
	return r.value
}

func failureOf(transform Name, input any, err error) *InversionFailure {
	var failure *InversionFailure
	if errors.As(err, &failure) {
		return failure
	}
	return NewInversionFailure(transform, input, err)
}
