package testing

import (
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/zoobzio/bijectz"
)

func TestMockInjection(t *testing.T) {
	t.Run("Returns Configured Value", func(t *testing.T) {
		mock := NewMockInjection[int, string]("mock").WithInvert(7, nil)

		got, err := mock.Invert("anything")
		if err != nil || got != 7 {
			t.Errorf("expected 7, nil; got %d, %v", got, err)
		}
		if mock.LastInvert() != "anything" {
			t.Errorf("expected last input 'anything', got %q", mock.LastInvert())
		}
	})

	t.Run("Wraps Configured Error", func(t *testing.T) {
		cause := errors.New("rejected")
		mock := NewMockInjection[int, string]("mock").WithInvert(0, cause)

		_, err := mock.Invert("x")
		var failure *bijectz.InversionFailure
		if !errors.As(err, &failure) {
			t.Fatalf("expected *InversionFailure, got %v", err)
		}
		if failure.Transform != "mock" || failure.Input != "x" {
			t.Errorf("unexpected failure: %+v", failure)
		}
		if !errors.Is(err, cause) {
			t.Error("expected cause to be preserved")
		}
	})

	t.Run("Invert Func", func(t *testing.T) {
		mock := NewMockInjection[int, string]("mock").
			WithApply(strconv.Itoa).
			WithInvertFunc(strconv.Atoi)

		if s := mock.Apply(5); s != "5" {
			t.Errorf("expected \"5\", got %q", s)
		}
		got, err := mock.Invert("12")
		if err != nil || got != 12 {
			t.Errorf("expected 12, nil; got %d, %v", got, err)
		}
		AssertApplied(t, mock, 1)
		AssertInverted(t, mock, 1)
		if mock.LastApply() != 5 {
			t.Errorf("expected last apply 5, got %d", mock.LastApply())
		}
	})

	t.Run("Zero Values Until Configured", func(t *testing.T) {
		mock := NewMockInjection[int, string]("mock")
		if mock.Apply(1) != "" {
			t.Error("expected zero value from unconfigured Apply")
		}
		if got, err := mock.Invert("1"); err != nil || got != 0 {
			t.Errorf("expected 0, nil; got %d, %v", got, err)
		}
	})

	t.Run("Shows Short Circuit In A Chain", func(t *testing.T) {
		inner := NewMockInjection[int, int]("inner").WithInvert(1, nil)
		outer := NewMockInjection[int, string]("outer").WithInvert(0, errors.New("bad input"))
		chain := bijectz.AndThenInjection[int, int, string](inner, outer)

		_, err := chain.Invert("x")
		var failure *bijectz.InversionFailure
		if !errors.As(err, &failure) || failure.Transform != "outer" {
			t.Errorf("expected failure from outer, got %v", err)
		}
		AssertInverted(t, outer, 1)
		AssertNotInverted(t, inner)

		outer.WithInvert(9, nil)
		if _, err := chain.Invert("y"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		AssertInverted(t, inner, 1)
		if inner.LastInvert() != 9 {
			t.Errorf("expected inner to receive 9, got %d", inner.LastInvert())
		}
	})

	t.Run("Inverse", func(t *testing.T) {
		mock := NewMockInjection[int, string]("mock").WithApply(strconv.Itoa).WithInvertFunc(strconv.Atoi)
		partial := mock.Inverse()

		if got, err := partial.Apply("3"); err != nil || got != 3 {
			t.Errorf("expected 3, nil; got %d, %v", got, err)
		}
		if partial.Invert(4) != "4" {
			t.Errorf("expected \"4\", got %q", partial.Invert(4))
		}
		if partial.Name() != "inverse(mock)" {
			t.Errorf("unexpected name %q", partial.Name())
		}
		if partial.Inverse() != bijectz.Injection[int, string](mock) {
			t.Error("expected double inverse to return the mock")
		}
	})

	t.Run("History And Reset", func(t *testing.T) {
		mock := NewMockInjection[int, string]("mock")
		for _, s := range []string{"a", "b", "c"} {
			_, _ = mock.Invert(s) //nolint:errcheck
		}
		history := mock.InvertHistory()
		if len(history) != 3 || history[0] != "a" || history[2] != "c" {
			t.Errorf("unexpected history %v", history)
		}

		mock.Reset()
		if mock.InvertCount() != 0 || mock.ApplyCount() != 0 || len(mock.InvertHistory()) != 0 {
			t.Error("expected reset to clear tracking")
		}
		if mock.LastInvert() != "" {
			t.Errorf("expected empty last input, got %q", mock.LastInvert())
		}
	})

	t.Run("Concurrent Calls", func(t *testing.T) {
		mock := NewMockInjection[int, string]("mock").WithInvert(1, nil)
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 10; j++ {
					_, _ = mock.Invert("x") //nolint:errcheck
				}
			}()
		}
		wg.Wait()
		AssertInverted(t, mock, 100)
	})
}
