// Package meta provides functionality for managing invocation metadata through context.
package meta

import "context"

// ContextKey is a type for keys used in context values for metadata.
type ContextKey string

const (
	// TraceID represents a unique identifier for tracing an invocation chain.
	TraceID ContextKey = "trace_id"

	// CallerID identifies the caller performing the invocation.
	CallerID ContextKey = "caller_id"

	// CallerRole indicates the current role of the caller.
	CallerRole ContextKey = "caller_role"

	// OpName identifies the operation being invoked.
	OpName ContextKey = "op_name"

	// ServiceName identifies the name of the current running service.
	ServiceName ContextKey = "service_name"

	// ServiceVersion indicates the version of the service.
	ServiceVersion ContextKey = "service_version"
)

// allKeys lists every predefined context key, in extraction order.
//
//nolint:gochecknoglobals // static lookup shared by extraction helpers
var allKeys = []ContextKey{
	TraceID,
	CallerID,
	CallerRole,
	OpName,
	ServiceName,
	ServiceVersion,
}

// InjectMetaToContext adds metadata from the provided map to the context.
// It only adds values that are not empty strings and returns a new context
// with the added values.
func InjectMetaToContext(ctx context.Context, data map[ContextKey]string) context.Context {
	for k, v := range data {
		if v != "" {
			ctx = context.WithValue(ctx, k, v) //nolint:fatcontext // allow due to finite number of keys
		}
	}
	return ctx
}

// ExtractMetaFromContext extracts all metadata from the provided context.
// It retrieves values for all predefined context keys and returns them in a map.
// Only non-empty string values are included in the returned map.
func ExtractMetaFromContext(ctx context.Context) map[ContextKey]string {
	data := make(map[ContextKey]string)
	for _, k := range allKeys {
		if v := GetFromContext(ctx, k); v != "" {
			data[k] = v
		}
	}
	return data
}

// GetFromContext returns the value stored in ctx for the given key,
// or an empty string when the key is absent or holds a non-string value.
func GetFromContext(ctx context.Context, key ContextKey) string {
	v, _ := ctx.Value(key).(string)
	return v
}
