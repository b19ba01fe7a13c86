// Package testing provides test utilities for bijectz transforms.
//
// The round-trip laws of Bijection and Injection are contracts the
// compiler cannot check. The assertions here check them over sample
// inputs, and MockInjection records calls so tests can see which legs of
// a composed chain actually ran.
//
// Example usage:
//
//	func TestPortCodec(t *testing.T) {
//		samples := []uint16{0, 80, 443, 8080, 65535}
//		bijectztest.AssertInjectionLaws(t, portCodec, samples)
//		bijectztest.AssertInversionFails(t, portCodec, "http")
//	}
package testing

import (
	"errors"
	"testing"

	"github.com/zoobzio/bijectz"
)

// AssertRoundTrip verifies that bij maps a to b and back, in both
// directions and through its inverse.
func AssertRoundTrip[A, B comparable](t testing.TB, bij bijectz.Bijection[A, B], a A, b B) {
	t.Helper()
	inv := bij.Inverse()

	if got := bij.Apply(a); got != b {
		t.Errorf("%s: Apply(%v) = %v, expected %v", bij.Name(), a, got, b)
	}
	if got := bij.Invert(b); got != a {
		t.Errorf("%s: Invert(%v) = %v, expected %v", bij.Name(), b, got, a)
	}
	if got := inv.Apply(b); got != a {
		t.Errorf("%s: Inverse().Apply(%v) = %v, expected %v", bij.Name(), b, got, a)
	}
	if got := inv.Invert(a); got != b {
		t.Errorf("%s: Inverse().Invert(%v) = %v, expected %v", bij.Name(), a, got, b)
	}
}

// AssertBijectionLaws verifies the round-trip law, double inversion and
// self-cancelling composition for every sample.
func AssertBijectionLaws[A, B comparable](t testing.TB, bij bijectz.Bijection[A, B], samples []A) {
	t.Helper()
	twice := bij.Inverse().Inverse()
	cancel := bijectz.AndThen(bij, bij.Inverse())

	for _, a := range samples {
		b := bij.Apply(a)
		if got := bij.Invert(b); got != a {
			t.Errorf("%s: Invert(Apply(%v)) = %v", bij.Name(), a, got)
		}
		if got := bij.Apply(bij.Invert(b)); got != b {
			t.Errorf("%s: Apply(Invert(%v)) = %v", bij.Name(), b, got)
		}
		if got := twice.Apply(a); got != b {
			t.Errorf("%s: Inverse().Inverse().Apply(%v) = %v, expected %v", bij.Name(), a, got, b)
		}
		if got := twice.Invert(b); got != a {
			t.Errorf("%s: Inverse().Inverse().Invert(%v) = %v, expected %v", bij.Name(), b, got, a)
		}
		if got := cancel.Apply(a); got != a {
			t.Errorf("%s: AndThen(bij, bij.Inverse()).Apply(%v) = %v", bij.Name(), a, got)
		}
		if got := cancel.Inverse().Apply(a); got != a {
			t.Errorf("%s: AndThen(bij, bij.Inverse()).Inverse().Apply(%v) = %v", bij.Name(), a, got)
		}
	}
}

// AssertInjectionLaws verifies that Invert(Apply(a)) succeeds and returns a
// for every sample, directly and through the Partial inverse.
func AssertInjectionLaws[A comparable, B any](t testing.TB, inj bijectz.Injection[A, B], samples []A) {
	t.Helper()
	partial := inj.Inverse()
	back := partial.Inverse()

	for _, a := range samples {
		b := inj.Apply(a)
		got, err := inj.Invert(b)
		if err != nil {
			t.Errorf("%s: Invert(Apply(%v)) failed: %v", inj.Name(), a, err)
			continue
		}
		if got != a {
			t.Errorf("%s: Invert(Apply(%v)) = %v", inj.Name(), a, got)
		}
		if got, err := partial.Apply(partial.Invert(a)); err != nil || got != a {
			t.Errorf("%s: Inverse() round trip of %v = %v, %v", inj.Name(), a, got, err)
		}
		if got, err := back.Invert(back.Apply(a)); err != nil || got != a {
			t.Errorf("%s: Inverse().Inverse() round trip of %v = %v, %v", inj.Name(), a, got, err)
		}
	}
}

// AssertInversionFails verifies that inverting b fails with an
// *InversionFailure and returns it for further checks. It returns nil when
// the inversion unexpectedly succeeds.
func AssertInversionFails[A, B any](t testing.TB, inj bijectz.Injection[A, B], b B) *bijectz.InversionFailure {
	t.Helper()
	got, err := inj.Invert(b)
	if err == nil {
		t.Errorf("%s: Invert(%v) = %v, expected failure", inj.Name(), b, got)
		return nil
	}
	var failure *bijectz.InversionFailure
	if !errors.As(err, &failure) {
		t.Errorf("%s: Invert(%v) returned %T, expected *bijectz.InversionFailure", inj.Name(), b, err)
		return nil
	}
	if !errors.Is(err, bijectz.ErrInversion) {
		t.Errorf("%s: failure does not match bijectz.ErrInversion", inj.Name())
	}
	return failure
}
