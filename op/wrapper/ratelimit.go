package wrapper

import (
	"context"

	"github.com/rise-and-shine/wrapkit/meta"
	"github.com/rise-and-shine/wrapkit/op"
	"github.com/rise-and-shine/wrapkit/ratelimit"
)

// anonymousCaller identifies invocations without a caller ID in the context,
// so unauthenticated traffic shares one quota.
const anonymousCaller = "anonymous"

// RateLimitWrapper enforces a call quota per caller identifier. The caller
// ID is read from the invocation context; the target is not invoked when
// the quota is exhausted.
type RateLimitWrapper[I op.Input, R op.Result] struct {
	limiter ratelimit.Limiter
	next    op.Op[I, R]
}

// NewRateLimitWrapper creates a rate-limiting wrap around an operation.
func NewRateLimitWrapper[I op.Input, R op.Result](limiter ratelimit.Limiter) op.WrapFunc[I, R] {
	return func(next op.Op[I, R]) op.Op[I, R] {
		return &RateLimitWrapper[I, R]{limiter: limiter, next: next}
	}
}

func (w *RateLimitWrapper[I, R]) Invoke(ctx context.Context, in I) (R, error) {
	id := meta.GetFromContext(ctx, meta.CallerID)
	if id == "" {
		id = anonymousCaller
	}

	if err := w.limiter.Allow(id); err != nil {
		var zero R
		return zero, err
	}

	return w.next.Invoke(ctx, in)
}

func (w *RateLimitWrapper[I, R]) Unwrap() op.Op[I, R] { return w.next }
