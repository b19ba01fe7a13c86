package bijectz

// Go methods cannot declare their own type parameters, so composition lives
// in package functions instead of AndThen/Compose methods.
//
// Every composite is built once, holds its two legs and nothing else, and
// is never mutated. Its name is "<first> → <second>" in application order.

// AndThen chains two bijections: f runs first on the way forward, and g's
// Invert runs first on the way back.
//
//	AndThen(f, g).Apply(a)  == g.Apply(f.Apply(a))
//	AndThen(f, g).Invert(c) == f.Invert(g.Invert(c))
//
// Inverting a composite reverses both the order and the direction of its
// legs:
//
//	AndThen(f, g).Inverse() ≡ AndThen(g.Inverse(), f.Inverse())
//	                        ≡ Compose(f.Inverse(), g.Inverse())
func AndThen[A, B, C any](f Bijection[A, B], g Bijection[B, C]) Bijection[A, C] {
	return bijectionChain[A, B, C]{
		first:  f,
		second: g,
		name:   chainName(f.Name(), g.Name()),
	}
}

// Compose chains two bijections in argument-then-receiver order.
// Compose(f, g) is AndThen(g, f).
func Compose[A, B, C any](f Bijection[A, B], g Bijection[C, A]) Bijection[C, B] {
	return AndThen(g, f)
}

// AndThenInjection chains two injections.
//
// Apply runs f then g. Invert calls g.Invert first; if that fails its
// failure is returned unchanged and f.Invert is never called. Otherwise the
// outcome of f.Invert, success or failure, is returned unchanged.
//
// Bijections take part through AsInjection. Since their Invert never fails,
// a mixed chain can only fail in one of its injection legs:
//
//	text := bijectz.AndThenInjection(codec.GZip(), codec.Base64Std())
//	upper := bijectz.AndThenInjection(text, bijectz.AsInjection(rot13))
func AndThenInjection[A, B, C any](f Injection[A, B], g Injection[B, C]) Injection[A, C] {
	return injectionChain[A, B, C]{
		first:  f,
		second: g,
		name:   chainName(f.Name(), g.Name()),
	}
}

// ComposeInjection chains two injections in argument-then-receiver order.
// ComposeInjection(f, g) is AndThenInjection(g, f).
func ComposeInjection[A, B, C any](f Injection[A, B], g Injection[C, A]) Injection[C, B] {
	return AndThenInjection(g, f)
}

// AndThenPartial chains two partials. Apply calls f.Apply first and stops
// at the first failure; Invert runs g.Invert then f.Invert.
func AndThenPartial[A, B, C any](f Partial[A, B], g Partial[B, C]) Partial[A, C] {
	return partialChain[A, B, C]{
		first:  f,
		second: g,
		name:   chainName(f.Name(), g.Name()),
	}
}

// ComposePartial chains two partials in argument-then-receiver order.
// ComposePartial(f, g) is AndThenPartial(g, f).
func ComposePartial[A, B, C any](f Partial[A, B], g Partial[C, A]) Partial[C, B] {
	return AndThenPartial(g, f)
}

type bijectionChain[A, B, C any] struct {
	first  Bijection[A, B]
	second Bijection[B, C]
	name   Name
}

func (c bijectionChain[A, B, C]) Apply(a A) C {
	return c.second.Apply(c.first.Apply(a))
}

func (c bijectionChain[A, B, C]) Invert(v C) A {
	return c.first.Invert(c.second.Invert(v))
}

func (c bijectionChain[A, B, C]) Inverse() Bijection[C, A] {
	return bijectionInverse[A, C]{of: c}
}

func (c bijectionChain[A, B, C]) Name() Name {
	return c.name
}

type injectionChain[A, B, C any] struct {
	first  Injection[A, B]
	second Injection[B, C]
	name   Name
}

func (c injectionChain[A, B, C]) Apply(a A) C {
	return c.second.Apply(c.first.Apply(a))
}

func (c injectionChain[A, B, C]) Invert(v C) (A, error) {
	b, err := c.second.Invert(v)
	if err != nil {
		var zero A
		return zero, err
	}
	return c.first.Invert(b)
}

func (c injectionChain[A, B, C]) Inverse() Partial[C, A] {
	return injectionInverse[A, C]{of: c}
}

func (c injectionChain[A, B, C]) Name() Name {
	return c.name
}

type partialChain[A, B, C any] struct {
	first  Partial[A, B]
	second Partial[B, C]
	name   Name
}

func (c partialChain[A, B, C]) Apply(a A) (C, error) {
	b, err := c.first.Apply(a)
	if err != nil {
		var zero C
		return zero, err
	}
	return c.second.Apply(b)
}

func (c partialChain[A, B, C]) Invert(v C) A {
	return c.first.Invert(c.second.Invert(v))
}

func (c partialChain[A, B, C]) Inverse() Injection[C, A] {
	return partialInverse[A, C]{of: c}
}

func (c partialChain[A, B, C]) Name() Name {
	return c.name
}

func chainName(first, second Name) Name {
	return first + " → " + second
}
