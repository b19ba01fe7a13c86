package bijectz

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInversion matches every *InversionFailure through errors.Is, so callers
// can detect a failed inversion without knowing the transform's types.
var ErrInversion = errors.New("inversion failed")

// InversionFailure is returned when the reverse side of an Injection (or the
// forward side of a Partial) meets a value it cannot represent.
//
// It is a terminal value: composed chains return it unchanged and never
// retry. The offending input is kept as an opaque value for debugging; the
// underlying cause, when there is one, is available through errors.Unwrap.
//
// Example:
//
//	n, err := codec.Int64String().Invert("hello")
//	var failure *bijectz.InversionFailure
//	if errors.As(err, &failure) {
//	    log.Printf("%s rejected %v: %v", failure.Transform, failure.Input, failure.Cause)
//	}
type InversionFailure struct {
	Input     any
	Cause     error
	Transform Name
}

// NewInversionFailure builds a failure for the named transform.
func NewInversionFailure(transform Name, input any, cause error) *InversionFailure {
	return &InversionFailure{
		Transform: transform,
		Input:     input,
		Cause:     cause,
	}
}

// Error implements the error interface.
func (f *InversionFailure) Error() string {
	location := fmt.Sprintf("%s for input %s", ErrInversion.Error(), describeInput(f.Input))
	if f.Transform != "" {
		location = fmt.Sprintf("%s in %q for input %s", ErrInversion.Error(), f.Transform, describeInput(f.Input))
	}
	if f.Cause == nil {
		return location
	}
	return fmt.Sprintf("%s: %v", location, f.Cause)
}

// Unwrap returns the underlying cause, which may be nil.
func (f *InversionFailure) Unwrap() error {
	return f.Cause
}

// Is reports whether target is ErrInversion.
func (*InversionFailure) Is(target error) bool {
	return target == ErrInversion
}

// PanicError is the cause recorded when an invert function panics.
type PanicError struct {
	Value any
}

// Error implements the error interface.
func (p *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", p.Value)
}

// asFailure returns err unchanged when it already is an *InversionFailure,
// otherwise it wraps err as the cause of a new failure for the transform.
func asFailure(transform Name, input any, err error) error {
	var failure *InversionFailure
	if errors.As(err, &failure) {
		return err
	}
	return NewInversionFailure(transform, input, err)
}

func describeInput(input any) string {
	switch v := input.(type) {
	case nil:
		return "<nil>"
	case string:
		return strconv.Quote(v)
	case []byte:
		return fmt.Sprintf("[%d bytes]", len(v))
	default:
		return fmt.Sprintf("%v", v)
	}
}
