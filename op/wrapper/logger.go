package wrapper

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/wrapkit/logger"
	"github.com/rise-and-shine/wrapkit/mask"
	"github.com/rise-and-shine/wrapkit/op"
)

// LoggerWrapper logs every invocation with its duration, masked input and
// outcome. Inputs are rendered through the mask package so fields tagged
// `mask:"true"` never reach the logs.
type LoggerWrapper[I op.Input, R op.Result] struct {
	logger logger.Logger
	next   op.Op[I, R]
	opName string
}

// NewLoggerWrapper creates a logging wrap around an operation.
// When opName is empty, the wrapped operation's ID is used.
func NewLoggerWrapper[I op.Input, R op.Result](log logger.Logger, opName string) op.WrapFunc[I, R] {
	return func(next op.Op[I, R]) op.Op[I, R] {
		name := opName
		if name == "" {
			name = op.OperationID(next)
		}
		return &LoggerWrapper[I, R]{
			logger: log.Named("op.logger").With("op_name", name),
			next:   next,
			opName: name,
		}
	}
}

func (w *LoggerWrapper[I, R]) Invoke(ctx context.Context, in I) (R, error) {
	start := time.Now()

	result, err := invokeWithRecovery(ctx, w.next, in)

	duration := time.Since(start)

	log := w.logger.
		WithContext(ctx).
		With(
			"execution_time", duration.String(),
			"input", mask.StructToOrdMap(in),
		)

	if err != nil {
		e := errx.AsErrorX(err)
		log.With("error", map[string]any{
			"code":    e.Code(),
			"message": e.Error(),
			"type":    e.Type().String(),
			"trace":   e.Trace(),
			"fields":  e.Fields(),
			"details": e.Details(),
		}).Error("operation failed")
	} else {
		log.Info("operation completed")
	}

	return result, err
}

func (w *LoggerWrapper[I, R]) Unwrap() op.Op[I, R] { return w.next }

func invokeWithRecovery[I op.Input, R op.Result](
	ctx context.Context,
	target op.Op[I, R],
	in I,
) (_ R, err error) {
	defer func() {
		if r := recover(); r != nil {
			stackTrace := make([]byte, 4096) // 4KB
			stackTrace = stackTrace[:runtime.Stack(stackTrace, false)]
			err = errx.New("panic recovered in logger wrapper",
				errx.WithCode(CodePanicRecovered),
				errx.WithDetails(errx.D{
					"stack_trace":  string(stackTrace),
					"panic_values": fmt.Sprintf("%v", r),
				}))
		}
	}()

	return target.Invoke(ctx, in)
}
