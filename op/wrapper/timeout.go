package wrapper

import (
	"context"
	"time"

	"github.com/rise-and-shine/wrapkit/op"
)

// TimeoutWrapper applies a deadline to the context of every invocation.
type TimeoutWrapper[I op.Input, R op.Result] struct {
	timeout time.Duration
	next    op.Op[I, R]
}

// NewTimeoutWrapper creates a timeout wrap around an operation.
func NewTimeoutWrapper[I op.Input, R op.Result](timeout time.Duration) op.WrapFunc[I, R] {
	return func(next op.Op[I, R]) op.Op[I, R] {
		return &TimeoutWrapper[I, R]{timeout: timeout, next: next}
	}
}

func (w *TimeoutWrapper[I, R]) Invoke(ctx context.Context, in I) (R, error) {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	return w.next.Invoke(ctx, in)
}

func (w *TimeoutWrapper[I, R]) Unwrap() op.Op[I, R] { return w.next }
