package wrapper

import (
	"context"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/rise-and-shine/wrapkit/logger"
	"github.com/rise-and-shine/wrapkit/op"
)

const retryMaxJitterMs = 10

// RetryWrapper re-invokes a failing target up to the configured number of
// attempts, with a fixed delay plus a small jitter between attempts. This
// deliberately breaks the invoke-exactly-once contract of plain wraps.
type RetryWrapper[I op.Input, R op.Result] struct {
	logger   logger.Logger
	attempts uint
	delay    time.Duration
	next     op.Op[I, R]
}

// NewRetryWrapper creates a retrying wrap around an operation.
func NewRetryWrapper[I op.Input, R op.Result](
	log logger.Logger,
	attempts uint,
	delay time.Duration,
) op.WrapFunc[I, R] {
	return func(next op.Op[I, R]) op.Op[I, R] {
		return &RetryWrapper[I, R]{
			logger:   log.Named("op.retry").With("op_name", op.OperationID(next)),
			attempts: attempts,
			delay:    delay,
			next:     next,
		}
	}
}

func (w *RetryWrapper[I, R]) Invoke(ctx context.Context, in I) (R, error) {
	return retry.DoWithData(
		func() (R, error) {
			return w.next.Invoke(ctx, in)
		},
		retry.Attempts(w.attempts),
		retry.Delay(w.delay),
		retry.MaxJitter(retryMaxJitterMs*time.Millisecond),
		retry.LastErrorOnly(true), // only return the last error
		retry.OnRetry(func(n uint, err error) {
			w.logger.
				WithContext(ctx).
				With("attempt", n+1, "error", err.Error()).
				Warn("operation failed, retrying")
		}),
		retry.Context(ctx), // respond to context cancellation
	)
}

func (w *RetryWrapper[I, R]) Unwrap() op.Op[I, R] { return w.next }
