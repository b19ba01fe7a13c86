package bijectz

// NewBijection creates a Bijection from a pair of functions that are exact
// inverses of each other. Use it for conversions that can never fail in
// either direction: unit changes, bit casts, field renames, reversible
// re-encodings of a closed set of values.
//
// The round-trip law is not checked. If either direction can fail for some
// inputs, model the conversion as an Injection instead.
//
// Example:
//
//	const MilliCelsiusName = bijectz.Name("millicelsius-millikelvin")
//	celsius := bijectz.NewBijection(MilliCelsiusName,
//	    func(mc int64) int64 { return mc + 273150 },
//	    func(mk int64) int64 { return mk - 273150 },
//	)
//	kelvin := celsius.Inverse()
//
// Float arithmetic rarely round-trips exactly; prefer integer offsets or bit
// casts such as math.Float64bits.
func NewBijection[A, B any](name Name, apply func(A) B, invert func(B) A) Bijection[A, B] {
	return bijection[A, B]{
		name:        name,
		inverseName: inverseName(name),
		apply:       apply,
		invert:      invert,
	}
}

// Identity returns the bijection that maps every value to itself.
func Identity[A any]() Bijection[A, A] {
	id := func(a A) A { return a }
	return bijection[A, A]{
		name:        identityName,
		inverseName: identityName,
		apply:       id,
		invert:      id,
	}
}

const identityName Name = "identity"

type bijection[A, B any] struct {
	apply       func(A) B
	invert      func(B) A
	name        Name
	inverseName Name
}

func (b bijection[A, B]) Apply(a A) B {
	return b.apply(a)
}

func (b bijection[A, B]) Invert(v B) A {
	return b.invert(v)
}

// Inverse swaps the two functions and the two names, nothing else.
func (b bijection[A, B]) Inverse() Bijection[B, A] {
	return bijection[B, A]{
		name:        b.inverseName,
		inverseName: b.name,
		apply:       b.invert,
		invert:      b.apply,
	}
}

func (b bijection[A, B]) Name() Name {
	return b.name
}

// bijectionInverse views a Bijection[A, B] as a Bijection[B, A].
type bijectionInverse[A, B any] struct {
	of Bijection[A, B]
}

func (v bijectionInverse[A, B]) Apply(b B) A {
	return v.of.Invert(b)
}

func (v bijectionInverse[A, B]) Invert(a A) B {
	return v.of.Apply(a)
}

func (v bijectionInverse[A, B]) Inverse() Bijection[A, B] {
	return v.of
}

func (v bijectionInverse[A, B]) Name() Name {
	return inverseName(v.of.Name())
}

// inverseName derives the name shown for an inverted transform.
func inverseName(name Name) Name {
	return "inverse(" + name + ")"
}
