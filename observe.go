package bijectz

import (
	"context"
	"sync"
	"time"

	"github.com/zoobzio/clockz"
	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"
	"go.uber.org/zap"
)

// Metric keys for Observed.
const (
	ObservedApplyTotal          = metricz.Key("observed.apply.total")
	ObservedInvertTotal         = metricz.Key("observed.invert.total")
	ObservedInvertFailuresTotal = metricz.Key("observed.invert.failures.total")
	ObservedInvertDurationMs    = metricz.Key("observed.invert.duration.ms")
)

// Span names for Observed.
const (
	ObservedApplySpan  = tracez.Key("observed.apply")
	ObservedInvertSpan = tracez.Key("observed.invert")
)

// Span tags for Observed.
const (
	ObservedTagName      = tracez.Tag("observed.name")
	ObservedTagTransform = tracez.Tag("observed.transform")
	ObservedTagSuccess   = tracez.Tag("observed.success")
	ObservedTagError     = tracez.Tag("observed.error")

	// Hook event keys.
	ObservedEventInverted        = hookz.Key("observed.inverted")
	ObservedEventInversionFailed = hookz.Key("observed.inversion_failed")
)

// ObservedEvent describes one call to Observed.Invert.
// It is emitted via hookz after the wrapped Invert returns.
type ObservedEvent struct {
	Name      Name              // Observer name
	Transform Name              // Name of the wrapped transform
	Success   bool              // Whether the inversion succeeded
	Failure   *InversionFailure // Failure if it did not
	Duration  time.Duration     // Time spent in Invert
	Timestamp time.Time         // When the event occurred
}

// Observed wraps an Injection with metrics, tracing and events without
// changing what it computes. Apply and Invert delegate to the wrapped
// injection and return its results unchanged, failures included.
//
// Bijections are observed through AsInjection:
//
//	observed := bijectz.NewObserved("payload", bijectz.AsInjection(payload))
//
// Observed is the one stateful piece of the package. Its counters and hooks
// are safe for concurrent use, so a single instance can be shared the same
// way the transform it wraps is shared.
//
// # Observability
//
// Metrics:
//   - observed.apply.total: Counter of Apply calls
//   - observed.invert.total: Counter of Invert calls
//   - observed.invert.failures.total: Counter of failed Invert calls
//   - observed.invert.duration.ms: Gauge of the last Invert duration
//
// Traces:
//   - observed.apply: Span for each Apply
//   - observed.invert: Span for each Invert
//
// Events (via hooks):
//   - observed.inverted: Fired after a successful Invert
//   - observed.inversion_failed: Fired after a failed Invert
//
// Failed inversions are also logged at debug level on Logger().
type Observed[A, B any] struct {
	inner Injection[A, B]
	name  Name
	clock clockz.Clock
	mu    sync.RWMutex

	// Observability
	metrics *metricz.Registry
	tracer  *tracez.Tracer
	hooks   *hookz.Hooks[ObservedEvent]
}

// NewObserved wraps inj under the given observer name.
func NewObserved[A, B any](name Name, inj Injection[A, B]) *Observed[A, B] {
	registry := metricz.New()
	registry.Counter(ObservedApplyTotal)
	registry.Counter(ObservedInvertTotal)
	registry.Counter(ObservedInvertFailuresTotal)
	registry.Gauge(ObservedInvertDurationMs)

	return &Observed[A, B]{
		inner:   inj,
		name:    name,
		metrics: registry,
		tracer:  tracez.New(),
		hooks:   hookz.New[ObservedEvent](),
	}
}

// Apply delegates to the wrapped injection.
func (o *Observed[A, B]) Apply(a A) B {
	_, span := o.tracer.StartSpan(context.Background(), ObservedApplySpan)
	defer span.Finish()
	span.SetTag(ObservedTagName, o.name)
	span.SetTag(ObservedTagTransform, o.inner.Name())

	o.metrics.Counter(ObservedApplyTotal).Inc()
	b := o.inner.Apply(a)
	span.SetTag(ObservedTagSuccess, "true")
	return b
}

// Invert delegates to the wrapped injection and records the outcome.
func (o *Observed[A, B]) Invert(b B) (A, error) {
	clock := o.getClock()
	start := clock.Now()

	ctx, span := o.tracer.StartSpan(context.Background(), ObservedInvertSpan)
	defer span.Finish()
	span.SetTag(ObservedTagName, o.name)
	span.SetTag(ObservedTagTransform, o.inner.Name())

	o.metrics.Counter(ObservedInvertTotal).Inc()
	a, err := o.inner.Invert(b)
	elapsed := clock.Since(start)
	o.metrics.Gauge(ObservedInvertDurationMs).Set(float64(elapsed.Milliseconds()))

	if err != nil {
		o.metrics.Counter(ObservedInvertFailuresTotal).Inc()
		span.SetTag(ObservedTagSuccess, "false")
		span.SetTag(ObservedTagError, err.Error())

		Logger().Debug("inversion failed",
			zap.String("observer", o.name),
			zap.String("transform", o.inner.Name()),
			zap.Error(err))

		_ = o.hooks.Emit(ctx, ObservedEventInversionFailed, ObservedEvent{ //nolint:errcheck
			Name:      o.name,
			Transform: o.inner.Name(),
			Success:   false,
			Failure:   failureOf(o.inner.Name(), b, err),
			Duration:  elapsed,
			Timestamp: clock.Now(),
		})

		var zero A
		return zero, err
	}

	span.SetTag(ObservedTagSuccess, "true")
	_ = o.hooks.Emit(ctx, ObservedEventInverted, ObservedEvent{ //nolint:errcheck
		Name:      o.name,
		Transform: o.inner.Name(),
		Success:   true,
		Duration:  elapsed,
		Timestamp: clock.Now(),
	})
	return a, nil
}

// Inverse returns a Partial view over the observer, so calls made through
// the inverse are still counted.
func (o *Observed[A, B]) Inverse() Partial[B, A] {
	return injectionInverse[A, B]{of: o}
}

// Name returns the observer name.
func (o *Observed[A, B]) Name() Name {
	return o.name
}

// Unwrap returns the wrapped injection.
func (o *Observed[A, B]) Unwrap() Injection[A, B] {
	return o.inner
}

// WithClock sets a custom clock for testing.
func (o *Observed[A, B]) WithClock(clock clockz.Clock) *Observed[A, B] {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.clock = clock
	return o
}

func (o *Observed[A, B]) getClock() clockz.Clock {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.clock == nil {
		return clockz.RealClock
	}
	return o.clock
}

// Metrics returns the metrics registry for this observer.
func (o *Observed[A, B]) Metrics() *metricz.Registry {
	return o.metrics
}

// Tracer returns the tracer for this observer.
func (o *Observed[A, B]) Tracer() *tracez.Tracer {
	return o.tracer
}

// Close shuts down the tracer and the hooks.
func (o *Observed[A, B]) Close() error {
	if o.tracer != nil {
		o.tracer.Close()
	}
	o.hooks.Close()
	return nil
}

// OnInverted registers a handler for successful inversions.
// The handler is called asynchronously.
func (o *Observed[A, B]) OnInverted(handler func(context.Context, ObservedEvent) error) error {
	_, err := o.hooks.Hook(ObservedEventInverted, handler)
	return err
}

// OnInversionFailed registers a handler for failed inversions.
// The handler is called asynchronously.
func (o *Observed[A, B]) OnInversionFailed(handler func(context.Context, ObservedEvent) error) error {
	_, err := o.hooks.Hook(ObservedEventInversionFailed, handler)
	return err
}
