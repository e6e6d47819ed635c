package wrapper

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/rise-and-shine/wrapkit/meta"
	"github.com/rise-and-shine/wrapkit/op"
)

// MetaInjectWrapper seeds the invocation context with trace ID, service
// identity and the operation name, so downstream wrappers and the logger
// can pick them up.
type MetaInjectWrapper[I op.Input, R op.Result] struct {
	serviceName    string
	serviceVersion string
	opName         string
	next           op.Op[I, R]
}

// NewMetaInjectWrapper creates a metadata-injecting wrap around an operation.
func NewMetaInjectWrapper[I op.Input, R op.Result](serviceName, serviceVersion string) op.WrapFunc[I, R] {
	return func(next op.Op[I, R]) op.Op[I, R] {
		return &MetaInjectWrapper[I, R]{
			serviceName:    serviceName,
			serviceVersion: serviceVersion,
			opName:         op.OperationID(next),
			next:           next,
		}
	}
}

func (w *MetaInjectWrapper[I, R]) Invoke(ctx context.Context, in I) (R, error) {
	metadata := map[meta.ContextKey]string{ //nolint:exhaustive // we are not using all keys
		meta.TraceID:        getTraceID(ctx),
		meta.OpName:         w.opName,
		meta.ServiceName:    w.serviceName,
		meta.ServiceVersion: w.serviceVersion,
	}

	// add meta to context for the downstream chain
	ctx = meta.InjectMetaToContext(ctx, metadata)

	return w.next.Invoke(ctx, in)
}

func (w *MetaInjectWrapper[I, R]) Unwrap() op.Op[I, R] { return w.next }

// getTraceID extracts the trace ID from the current span in the context.
// If no trace ID is available, it generates a new UUID to use as a trace ID.
func getTraceID(ctx context.Context) string {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID()

	if traceID.IsValid() {
		return traceID.String()
	}

	return fmt.Sprintf("man-%s", uuid.New().String())
}
