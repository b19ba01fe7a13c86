package testing

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/zoobzio/bijectz"
)

// MockInjection is a configurable bijectz.Injection that records every
// call. Put it in a composed chain to assert which legs ran and with what.
type MockInjection[A, B any] struct { //nolint:govet // fieldalignment: Test helper struct optimized for functionality over memory efficiency
	name        bijectz.Name
	applyFn     func(A) B
	invertVal   A
	invertErr   error
	invertFn    func(B) (A, error)
	applyCount  int64
	invertCount int64
	mu          sync.RWMutex
	lastApply   A
	lastInvert  B
	history     []B
}

// NewMockInjection creates a mock whose Apply returns the zero B and whose
// Invert returns the zero A until configured.
func NewMockInjection[A, B any](name bijectz.Name) *MockInjection[A, B] {
	return &MockInjection[A, B]{name: name}
}

// WithApply sets the forward function.
func (m *MockInjection[A, B]) WithApply(fn func(A) B) *MockInjection[A, B] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.applyFn = fn
	return m
}

// WithInvert makes every Invert return val and err. A non-nil err is
// wrapped in an *InversionFailure naming the mock.
func (m *MockInjection[A, B]) WithInvert(val A, err error) *MockInjection[A, B] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invertVal = val
	m.invertErr = err
	m.invertFn = nil
	return m
}

// WithInvertFunc makes Invert delegate to fn.
func (m *MockInjection[A, B]) WithInvertFunc(fn func(B) (A, error)) *MockInjection[A, B] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invertFn = fn
	return m
}

// Apply implements bijectz.Injection.
func (m *MockInjection[A, B]) Apply(a A) B {
	atomic.AddInt64(&m.applyCount, 1)
	m.mu.Lock()
	m.lastApply = a
	fn := m.applyFn
	m.mu.Unlock()

	if fn == nil {
		var zero B
		return zero
	}
	return fn(a)
}

// Invert implements bijectz.Injection.
func (m *MockInjection[A, B]) Invert(b B) (A, error) {
	atomic.AddInt64(&m.invertCount, 1)
	m.mu.Lock()
	m.lastInvert = b
	m.history = append(m.history, b)
	fn, val, err := m.invertFn, m.invertVal, m.invertErr
	m.mu.Unlock()

	if fn != nil {
		val, err = fn(b)
	}
	if err != nil {
		var zero A
		var failure *bijectz.InversionFailure
		if errors.As(err, &failure) {
			return zero, failure
		}
		return zero, bijectz.NewInversionFailure(m.name, b, err)
	}
	return val, nil
}

// Inverse implements bijectz.Injection.
func (m *MockInjection[A, B]) Inverse() bijectz.Partial[B, A] {
	return mockPartial[A, B]{m}
}

// Name implements bijectz.Injection.
func (m *MockInjection[A, B]) Name() bijectz.Name {
	return m.name
}

// ApplyCount returns the number of Apply calls.
func (m *MockInjection[A, B]) ApplyCount() int {
	return int(atomic.LoadInt64(&m.applyCount))
}

// InvertCount returns the number of Invert calls.
func (m *MockInjection[A, B]) InvertCount() int {
	return int(atomic.LoadInt64(&m.invertCount))
}

// LastApply returns the input of the most recent Apply.
func (m *MockInjection[A, B]) LastApply() A {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastApply
}

// LastInvert returns the input of the most recent Invert.
func (m *MockInjection[A, B]) LastInvert() B {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastInvert
}

// InvertHistory returns a copy of every Invert input, oldest first.
func (m *MockInjection[A, B]) InvertHistory() []B {
	m.mu.RLock()
	defer m.mu.RUnlock()
	history := make([]B, len(m.history))
	copy(history, m.history)
	return history
}

// Reset clears all call tracking.
func (m *MockInjection[A, B]) Reset() {
	atomic.StoreInt64(&m.applyCount, 0)
	atomic.StoreInt64(&m.invertCount, 0)
	m.mu.Lock()
	defer m.mu.Unlock()
	var zeroA A
	var zeroB B
	m.lastApply = zeroA
	m.lastInvert = zeroB
	m.history = nil
}

type mockPartial[A, B any] struct {
	m *MockInjection[A, B]
}

func (p mockPartial[A, B]) Apply(b B) (A, error) { return p.m.Invert(b) }

func (p mockPartial[A, B]) Invert(a A) B { return p.m.Apply(a) }

func (p mockPartial[A, B]) Inverse() bijectz.Injection[A, B] { return p.m }

func (p mockPartial[A, B]) Name() bijectz.Name { return "inverse(" + p.m.name + ")" }

// AssertInverted verifies that the mock's Invert ran exactly n times.
func AssertInverted[A, B any](t testing.TB, mock *MockInjection[A, B], n int) {
	t.Helper()
	if got := mock.InvertCount(); got != n {
		t.Errorf("%s: expected %d Invert calls, got %d", mock.name, n, got)
	}
}

// AssertNotInverted verifies that the mock's Invert never ran.
func AssertNotInverted[A, B any](t testing.TB, mock *MockInjection[A, B]) {
	t.Helper()
	AssertInverted(t, mock, 0)
}

// AssertApplied verifies that the mock's Apply ran exactly n times.
func AssertApplied[A, B any](t testing.TB, mock *MockInjection[A, B], n int) {
	t.Helper()
	if got := mock.ApplyCount(); got != n {
		t.Errorf("%s: expected %d Apply calls, got %d", mock.name, n, got)
	}
}
