package wrapper

import (
	"context"
	"sync/atomic"

	"github.com/rise-and-shine/wrapkit/op"
)

// Counter accumulates invocation statistics across every operation it wraps.
// It is the stateful-wrap variant: the state lives in the wrapper, not the
// target, and survives across invocations.
type Counter struct {
	invocations atomic.Int64
	failures    atomic.Int64
}

// NewCounter creates an empty counter.
func NewCounter() *Counter {
	return &Counter{}
}

// Invocations returns the total number of invocations observed.
func (c *Counter) Invocations() int64 {
	return c.invocations.Load()
}

// Failures returns the number of invocations that returned an error.
func (c *Counter) Failures() int64 {
	return c.failures.Load()
}

// CounterWrapper counts invocations and failures of the wrapped operation.
type CounterWrapper[I op.Input, R op.Result] struct {
	counter *Counter
	next    op.Op[I, R]
}

// NewCounterWrapper creates a counting wrap around an operation. Passing the
// same Counter to several wraps aggregates their statistics.
func NewCounterWrapper[I op.Input, R op.Result](counter *Counter) op.WrapFunc[I, R] {
	return func(next op.Op[I, R]) op.Op[I, R] {
		return &CounterWrapper[I, R]{counter: counter, next: next}
	}
}

func (w *CounterWrapper[I, R]) Invoke(ctx context.Context, in I) (R, error) {
	w.counter.invocations.Add(1)

	result, err := w.next.Invoke(ctx, in)
	if err != nil {
		w.counter.failures.Add(1)
	}

	return result, err
}

func (w *CounterWrapper[I, R]) Unwrap() op.Op[I, R] { return w.next }
