package bijectz

import (
	"errors"
	"strconv"
	"testing"
)

// plainInjection returns bare errors, the way a hand-written
// implementation of the interface might.
type plainInjection struct{}

func (plainInjection) Apply(n int) string { return strconv.Itoa(n) }

func (plainInjection) Invert(s string) (int, error) { return strconv.Atoi(s) }

func (p plainInjection) Inverse() Partial[string, int] { return injectionInverse[int, string]{of: p} }

func (plainInjection) Name() Name { return "plain" }

func TestResult(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r := Attempt(int64String(), "21")
		if !r.IsSuccess() || r.IsFailure() {
			t.Fatal("expected success")
		}
		if r.Value() != 21 {
			t.Errorf("expected 21, got %d", r.Value())
		}
		if r.Failure() != nil {
			t.Error("expected nil failure")
		}
		v, err := r.Get()
		if err != nil || v != 21 {
			t.Errorf("expected 21, nil; got %d, %v", v, err)
		}
		if r.OrElse(-1) != 21 {
			t.Error("OrElse must return the value on success")
		}
	})

	t.Run("Failure", func(t *testing.T) {
		r := Attempt(int64String(), "hello")
		if r.IsSuccess() || !r.IsFailure() {
			t.Fatal("expected failure")
		}
		if r.Value() != 0 {
			t.Errorf("expected zero value, got %d", r.Value())
		}
		if r.Failure().Input != "hello" {
			t.Errorf("expected input 'hello', got %v", r.Failure().Input)
		}
		_, err := r.Get()
		if !errors.Is(err, strconv.ErrSyntax) {
			t.Errorf("expected strconv.ErrSyntax, got %v", err)
		}
		if r.OrElse(-1) != -1 {
			t.Error("OrElse must return the fallback on failure")
		}
	})

	t.Run("Plain Errors Are Wrapped", func(t *testing.T) {
		r := Attempt[int, string](plainInjection{}, "x")
		if !r.IsFailure() {
			t.Fatal("expected failure")
		}
		if r.Failure().Transform != "plain" {
			t.Errorf("expected transform 'plain', got %q", r.Failure().Transform)
		}
		var numErr *strconv.NumError
		if !errors.As(r.Failure().Cause, &numErr) {
			t.Errorf("expected *strconv.NumError cause, got %T", r.Failure().Cause)
		}
	})

	t.Run("Nil Failure", func(t *testing.T) {
		r := Failure[int](nil)
		if !r.IsFailure() {
			t.Error("expected failure")
		}
		if _, err := r.Get(); !errors.Is(err, ErrInversion) {
			t.Errorf("expected ErrInversion, got %v", err)
		}
	})

	t.Run("InvertAll", func(t *testing.T) {
		results := InvertAll(int64String(), []string{"1", "x", "3"})
		if len(results) != 3 {
			t.Fatalf("expected 3 results, got %d", len(results))
		}
		got := []int64{results[0].OrElse(-1), results[1].OrElse(-1), results[2].OrElse(-1)}
		want := []int64{1, -1, 3}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("result %d: expected %d, got %d", i, want[i], got[i])
			}
		}
		if !results[1].IsFailure() {
			t.Error("expected second result to fail")
		}
	})

	t.Run("InvertAll Empty", func(t *testing.T) {
		if results := InvertAll(int64String(), nil); len(results) != 0 {
			t.Errorf("expected no results, got %d", len(results))
		}
	})
}
