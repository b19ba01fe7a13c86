// Package bijectz provides typed, composable two-way transforms for Go.
//
// # Overview
//
// Many conversions come in pairs: encode and decode, format and parse,
// compress and decompress. bijectz models such a pair as one value, so
// both directions travel together, compose together and invert together.
// A pipeline built once from small transforms can then be run in either
// direction without writing the reverse by hand.
//
// # Core Concepts
//
// Three capability interfaces, one per kind of totality:
//
//	type Bijection[A, B any] interface {     // both directions total
//	    Apply(A) B
//	    Invert(B) A
//	    Inverse() Bijection[B, A]
//	    Name() Name
//	}
//
//	type Injection[A, B any] interface {     // forward total, reverse partial
//	    Apply(A) B
//	    Invert(B) (A, error)
//	    Inverse() Partial[B, A]
//	    Name() Name
//	}
//
//	type Partial[A, B any] interface {       // forward partial, reverse total
//	    Apply(A) (B, error)
//	    Invert(B) A
//	    Inverse() Injection[B, A]
//	    Name() Name
//	}
//
// Inverting an Injection yields a Partial rather than another Injection:
// the fallible direction moves to the front, and the type says so instead of
// hiding a failure behind a total-looking Apply.
//
// Design philosophy:
//   - Transforms are immutable values, safe to share between goroutines
//   - Inverse is O(1): it swaps directions and copies nothing
//   - Forward Apply on a Bijection or Injection never fails
//   - Partial failure is an ordinary error value, an *InversionFailure
//
// # Building Transforms
//
// NewBijection - both directions always succeed:
//
//	bits := bijectz.NewBijection("float64-bits",
//	    math.Float64bits,
//	    math.Float64frombits,
//	)
//
// NewInjection - the reverse direction may fail:
//
//	count := bijectz.NewInjection("count-string",
//	    func(n int) string { return strconv.Itoa(n) },
//	    strconv.Atoi,
//	)
//
// AsInjection - use a bijection where an injection is expected, at no cost:
//
//	chain := bijectz.AndThenInjection(count, bijectz.AsInjection(rot13))
//
// # Composition
//
// Go methods cannot take type parameters, so composition is a set of
// package functions:
//
//	bijectz.AndThen(f, g)            // Bijection: f then g
//	bijectz.Compose(f, g)            // Bijection: g then f
//	bijectz.AndThenInjection(f, g)   // Injection: f then g
//	bijectz.ComposeInjection(f, g)   // Injection: g then f
//	bijectz.AndThenPartial(f, g)     // Partial:   f then g
//
// Inversion distributes over composition by reversing both the order and
// the direction of the legs:
//
//	AndThen(f, g).Inverse() ≡ AndThen(g.Inverse(), f.Inverse())
//
// Composed injections short-circuit on the way back. AndThenInjection(f, g)
// inverts by calling g first; if g fails, that failure is returned as is
// and f is never called.
//
// # Error Handling
//
// Every failed inversion is an *InversionFailure:
//
//	type InversionFailure struct {
//	    Input     any   // The rejected value
//	    Cause     error // The underlying error, if any
//	    Transform Name  // The transform that rejected it
//	}
//
// It matches ErrInversion through errors.Is and unwraps to its cause:
//
//	_, err := chain.Invert(input)
//	if errors.Is(err, strconv.ErrSyntax) {
//	    // the string leg rejected the input
//	}
//
// Result[A] keeps outcomes as data when that reads better than an if:
//
//	for _, r := range bijectz.InvertAll(count, []string{"1", "x", "3"}) {
//	    fmt.Println(r.OrElse(-1))
//	}
//
// # Observability
//
// NewObserved wraps an Injection with metricz counters, tracez spans and
// hookz events, leaving its results untouched. See Observed.
//
// # Sub-packages
//
//   - codec: concrete transforms (strconv, base64, hex, gzip, msgpack, yaml, json)
//     and a registry of named byte codecs
//   - testing: law assertions and a recording mock injection
//   - cmd/bijectz: command line encoder/decoder built on the registry
package bijectz
