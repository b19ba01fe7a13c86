package bijectz

// NewInjection creates an Injection from a total forward function and a
// reverse function that may fail. Use it whenever some values of B have no
// counterpart in A: parsing text, decoding bytes, narrowing numbers.
//
// The reverse function reports failure by returning an error. Plain errors
// are wrapped in an *InversionFailure naming this transform and recording
// the rejected input; an *InversionFailure returned by the function is kept
// as is. A panic inside the reverse function is recovered and reported the
// same way, with a *PanicError as the cause.
//
// Example:
//
//	const PortName = bijectz.Name("port-string")
//	port := bijectz.NewInjection(PortName,
//	    func(p uint16) string { return strconv.FormatUint(uint64(p), 10) },
//	    func(s string) (uint16, error) {
//	        n, err := strconv.ParseUint(s, 10, 16)
//	        return uint16(n), err
//	    },
//	)
//	p, err := port.Invert("8080") // 8080, nil
//	_, err = port.Invert("http")  // *InversionFailure wrapping strconv.ErrSyntax
func NewInjection[A, B any](name Name, apply func(A) B, invert func(B) (A, error)) Injection[A, B] {
	return injection[A, B]{
		name:   name,
		apply:  apply,
		invert: invert,
	}
}

type injection[A, B any] struct {
	apply  func(A) B
	invert func(B) (A, error)
	name   Name
}

func (i injection[A, B]) Apply(a A) B {
	return i.apply(a)
}

func (i injection[A, B]) Invert(b B) (result A, err error) {
	defer recoverInversion(&result, &err, i.name, b)
	result, err = i.invert(b)
	if err != nil {
		var zero A
		return zero, asFailure(i.name, b, err)
	}
	return result, nil
}

func (i injection[A, B]) Inverse() Partial[B, A] {
	return injectionInverse[A, B]{of: i}
}

func (i injection[A, B]) Name() Name {
	return i.name
}

// AsInjection views a Bijection as an Injection whose Invert always
// succeeds. The view holds the bijection and nothing else; no function is
// re-implemented and no value is copied.
//
// It is how bijections join injection chains:
//
//	chain := bijectz.AndThenInjection(codec.GZip(), bijectz.AsInjection(rot13))
func AsInjection[A, B any](b Bijection[A, B]) Injection[A, B] {
	return bijectionView[A, B]{of: b}
}

// AsPartial views a Bijection as a Partial whose Apply always succeeds.
func AsPartial[A, B any](b Bijection[A, B]) Partial[A, B] {
	return bijectionPartial[A, B]{of: b}
}

type bijectionView[A, B any] struct {
	of Bijection[A, B]
}

func (v bijectionView[A, B]) Apply(a A) B {
	return v.of.Apply(a)
}

func (v bijectionView[A, B]) Invert(b B) (A, error) {
	return v.of.Invert(b), nil
}

func (v bijectionView[A, B]) Inverse() Partial[B, A] {
	return bijectionPartial[B, A]{of: v.of.Inverse()}
}

func (v bijectionView[A, B]) Name() Name {
	return v.of.Name()
}

type bijectionPartial[A, B any] struct {
	of Bijection[A, B]
}

func (v bijectionPartial[A, B]) Apply(a A) (B, error) {
	return v.of.Apply(a), nil
}

func (v bijectionPartial[A, B]) Invert(b B) A {
	return v.of.Invert(b)
}

func (v bijectionPartial[A, B]) Inverse() Injection[B, A] {
	return bijectionView[B, A]{of: v.of.Inverse()}
}

func (v bijectionPartial[A, B]) Name() Name {
	return v.of.Name()
}

// injectionInverse views an Injection[A, B] as a Partial[B, A].
type injectionInverse[A, B any] struct {
	of Injection[A, B]
}

func (v injectionInverse[A, B]) Apply(b B) (A, error) {
	return v.of.Invert(b)
}

func (v injectionInverse[A, B]) Invert(a A) B {
	return v.of.Apply(a)
}

func (v injectionInverse[A, B]) Inverse() Injection[A, B] {
	return v.of
}

func (v injectionInverse[A, B]) Name() Name {
	return inverseName(v.of.Name())
}

// partialInverse views a Partial[A, B] as an Injection[B, A].
type partialInverse[A, B any] struct {
	of Partial[A, B]
}

func (v partialInverse[A, B]) Apply(b B) A {
	return v.of.Invert(b)
}

func (v partialInverse[A, B]) Invert(a A) (B, error) {
	return v.of.Apply(a)
}

func (v partialInverse[A, B]) Inverse() Partial[A, B] {
	return v.of
}

func (v partialInverse[A, B]) Name() Name {
	return inverseName(v.of.Name())
}

// recoverInversion turns a panic in a reverse function into a failure.
func recoverInversion[A any](result *A, err *error, transform Name, input any) {
	if r := recover(); r != nil {
		var zero A
		*result = zero
		*err = NewInversionFailure(transform, input, &PanicError{Value: r})
	}
}
