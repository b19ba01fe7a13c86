package bijectz

// Name is a type alias for transform names.
// Names appear in InversionFailure messages and in the names of composites,
// so storing them as constants keeps failures easy to trace back.
//
// Example:
//
//	const (
//	    ParseCountName Name = "parse-count"
//	    EncodeBodyName Name = "encode-body"
//	)
type Name = string

// Transform is the one-way capability shared by every transform kind.
// Apply never fails: anything that can fail on the forward side is not a
// Transform, it is the Apply of a Partial.
type Transform[A, B any] interface {
	Apply(A) B
	Name() Name
}

// Bijection is a total, two-way transform between A and B.
//
// Implementations must satisfy the round-trip law:
//
//	b.Invert(b.Apply(a)) == a            for every a
//	b.Apply(b.Invert(x)) == x            for every x in the image of Apply
//
// The law is a contract, not something checked at runtime. Use the
// assertions in the testing sub-package to verify it.
//
// Inverse must be O(1): it swaps which direction is forward and never
// recomputes or copies anything. Inverting twice yields a transform that
// behaves exactly like the original.
type Bijection[A, B any] interface {
	Transform[A, B]
	Invert(B) A
	Inverse() Bijection[B, A]
}

// Injection is a transform whose forward direction is total and whose
// reverse direction may fail.
//
// Invert(Apply(a)) always succeeds and returns a. For values of B that do
// not represent any A, Invert returns an *InversionFailure carrying the
// offending input and the underlying cause.
//
// The inverse of an Injection swaps the totality of the two directions,
// so Inverse returns a Partial rather than another Injection.
type Injection[A, B any] interface {
	Transform[A, B]
	Invert(B) (A, error)
	Inverse() Partial[B, A]
}

// Partial is the dual of an Injection: Apply may fail, Invert never does.
// It is what you get by calling Inverse on an Injection, and its own
// Inverse returns an Injection that behaves like the original.
type Partial[A, B any] interface {
	Apply(A) (B, error)
	Invert(B) A
	Inverse() Injection[B, A]
	Name() Name
}
