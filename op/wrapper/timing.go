package wrapper

import (
	"context"
	"time"

	"github.com/rcrowley/go-metrics"

	"github.com/rise-and-shine/wrapkit/logger"
	"github.com/rise-and-shine/wrapkit/op"
)

// TimingWrapper records the duration of every invocation in a go-metrics
// timer named "op.<name>.duration" and logs it at debug level.
type TimingWrapper[I op.Input, R op.Result] struct {
	logger logger.Logger
	timer  metrics.Timer
	next   op.Op[I, R]
}

// NewTimingWrapper creates a timing wrap around an operation.
// A nil registry falls back to the go-metrics default registry.
func NewTimingWrapper[I op.Input, R op.Result](
	log logger.Logger,
	registry metrics.Registry,
) op.WrapFunc[I, R] {
	return func(next op.Op[I, R]) op.Op[I, R] {
		opName := op.OperationID(next)
		return &TimingWrapper[I, R]{
			logger: log.Named("op.timing").With("op_name", opName),
			timer:  metrics.GetOrRegisterTimer("op."+opName+".duration", registry),
			next:   next,
		}
	}
}

func (w *TimingWrapper[I, R]) Invoke(ctx context.Context, in I) (R, error) {
	start := time.Now()

	result, err := w.next.Invoke(ctx, in)

	duration := time.Since(start)
	w.timer.Update(duration)

	w.logger.
		WithContext(ctx).
		With("execution_time", duration.String()).
		Debug("operation timed")

	return result, err
}

func (w *TimingWrapper[I, R]) Unwrap() op.Op[I, R] { return w.next }
