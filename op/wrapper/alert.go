package wrapper

import (
	"context"
	"fmt"
	"time"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/wrapkit/alert"
	"github.com/rise-and-shine/wrapkit/logger"
	"github.com/rise-and-shine/wrapkit/meta"
	"github.com/rise-and-shine/wrapkit/op"
)

const alertTimeout = 3 * time.Second

// AlertWrapper reports internal errors of the wrapped operation through an
// alert.Provider. Alerts are sent asynchronously and never affect the
// invocation result. Non-internal error types (validation, auth, throttling)
// are the caller's problem and do not alert.
type AlertWrapper[I op.Input, R op.Result] struct {
	logger        logger.Logger
	alertProvider alert.Provider
	next          op.Op[I, R]
	opName        string
}

// NewAlertWrapper creates an alerting wrap around an operation.
func NewAlertWrapper[I op.Input, R op.Result](
	log logger.Logger,
	alertProvider alert.Provider,
) op.WrapFunc[I, R] {
	return func(next op.Op[I, R]) op.Op[I, R] {
		return &AlertWrapper[I, R]{
			logger:        log.Named("op.alerting"),
			alertProvider: alertProvider,
			next:          next,
			opName:        op.OperationID(next),
		}
	}
}

func (w *AlertWrapper[I, R]) Invoke(ctx context.Context, in I) (R, error) {
	result, err := w.next.Invoke(ctx, in)
	if err == nil {
		return result, nil
	}

	e := errx.AsErrorX(err)
	if e.Type() != errx.T_Internal {
		return result, err
	}

	operation := fmt.Sprintf("op: %s", w.opName)
	details := make(map[string]string)
	for k, v := range meta.ExtractMetaFromContext(ctx) {
		details[string(k)] = v
	}

	newCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), alertTimeout)

	go func() {
		defer cancel() // ensure newCtx is cancelled after sending alert

		sendErr := w.alertProvider.SendError(newCtx, e.Code(), err.Error(), operation, details)
		if sendErr != nil {
			w.logger.With("alert_send_error", sendErr).Warn("failed to send error alert")
		}
	}()

	return result, err
}

func (w *AlertWrapper[I, R]) Unwrap() op.Op[I, R] { return w.next }
