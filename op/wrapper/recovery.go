package wrapper

import (
	"context"
	"fmt"
	"runtime"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/wrapkit/logger"
	"github.com/rise-and-shine/wrapkit/op"
)

// RecoveryWrapper converts panics in the wrapped operation into errx errors,
// so a panicking target surfaces as a regular error to callers.
type RecoveryWrapper[I op.Input, R op.Result] struct {
	logger logger.Logger
	next   op.Op[I, R]
	opName string
}

// NewRecoveryWrapper creates a panic-recovering wrap around an operation.
// When opName is empty, the wrapped operation's ID is used.
func NewRecoveryWrapper[I op.Input, R op.Result](log logger.Logger, opName string) op.WrapFunc[I, R] {
	return func(next op.Op[I, R]) op.Op[I, R] {
		name := opName
		if name == "" {
			name = op.OperationID(next)
		}
		return &RecoveryWrapper[I, R]{
			logger: log.Named("op.recovery").With("op_name", name),
			next:   next,
			opName: name,
		}
	}
}

func (w *RecoveryWrapper[I, R]) Invoke(ctx context.Context, in I) (result R, err error) {
	defer func() {
		if r := recover(); r != nil {
			stackTrace := make([]byte, 4096) // 4KB
			stackTrace = stackTrace[:runtime.Stack(stackTrace, false)]

			w.logger.
				WithContext(ctx).
				With(
					"stack_trace", string(stackTrace),
					"panic_values", fmt.Sprintf("%v", r),
				).
				Error("panic recovered in recovery wrapper")

			err = errx.New("panic recovered in recovery wrapper",
				errx.WithCode(CodePanicRecovered),
				errx.WithDetails(errx.D{
					"stack_trace":  string(stackTrace),
					"panic_values": fmt.Sprintf("%v", r),
				}))
		}
	}()

	result, err = w.next.Invoke(ctx, in)
	return result, err
}

func (w *RecoveryWrapper[I, R]) Unwrap() op.Op[I, R] { return w.next }
