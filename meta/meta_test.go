// Package meta_test contains tests for the meta package.
package meta_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rise-and-shine/wrapkit/meta"
)

func TestInjectMetaToContext(t *testing.T) {
	tests := []struct {
		name        string
		metaData    map[meta.ContextKey]string
		keyToVerify meta.ContextKey
		valueExpect string
	}{
		{
			name:        "inject single value",
			metaData:    map[meta.ContextKey]string{meta.TraceID: "abc-123"},
			keyToVerify: meta.TraceID,
			valueExpect: "abc-123",
		},
		{
			name: "inject multiple values",
			metaData: map[meta.ContextKey]string{
				meta.TraceID:    "trace-123",
				meta.CallerID:   "user-456",
				meta.CallerRole: "customer",
			},
			keyToVerify: meta.CallerID,
			valueExpect: "user-456",
		},
		{
			name: "skip empty values",
			metaData: map[meta.ContextKey]string{
				meta.TraceID:  "trace-123",
				meta.CallerID: "",
			},
			keyToVerify: meta.CallerID,
			valueExpect: "",
		},
		{
			name:        "empty map",
			metaData:    map[meta.ContextKey]string{},
			keyToVerify: meta.TraceID,
			valueExpect: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := meta.InjectMetaToContext(t.Context(), tc.metaData)
			assert.Equal(t, tc.valueExpect, meta.GetFromContext(ctx, tc.keyToVerify))
		})
	}
}

func TestInjectOverwritesExistingValue(t *testing.T) {
	ctx := meta.InjectMetaToContext(t.Context(), map[meta.ContextKey]string{
		meta.TraceID: "old-trace-id",
	})
	ctx = meta.InjectMetaToContext(ctx, map[meta.ContextKey]string{
		meta.TraceID: "new-trace-id",
	})

	assert.Equal(t, "new-trace-id", meta.GetFromContext(ctx, meta.TraceID))
}

func TestExtractMetaFromContext(t *testing.T) {
	tests := []struct {
		name     string
		ctxSetup func() context.Context
		expected map[meta.ContextKey]string
	}{
		{
			name: "extract multiple values",
			ctxSetup: func() context.Context {
				return meta.InjectMetaToContext(t.Context(), map[meta.ContextKey]string{
					meta.TraceID:     "trace-123",
					meta.CallerID:    "user-456",
					meta.ServiceName: "auth-service",
				})
			},
			expected: map[meta.ContextKey]string{
				meta.TraceID:     "trace-123",
				meta.CallerID:    "user-456",
				meta.ServiceName: "auth-service",
			},
		},
		{
			name: "ignore non-string values",
			ctxSetup: func() context.Context {
				ctx := context.WithValue(t.Context(), meta.TraceID, 12345)
				return context.WithValue(ctx, meta.ServiceName, "auth-service")
			},
			expected: map[meta.ContextKey]string{
				meta.ServiceName: "auth-service",
			},
		},
		{
			name: "custom keys outside the predefined list are not extracted",
			ctxSetup: func() context.Context {
				ctx := context.WithValue(t.Context(), meta.ContextKey("custom_key"), "custom_value")
				return context.WithValue(ctx, meta.TraceID, "trace-123")
			},
			expected: map[meta.ContextKey]string{
				meta.TraceID: "trace-123",
			},
		},
		{
			name:     "empty context",
			ctxSetup: t.Context,
			expected: map[meta.ContextKey]string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, meta.ExtractMetaFromContext(tc.ctxSetup()))
		})
	}
}

func TestGetFromContext(t *testing.T) {
	t.Run("missing key returns empty string", func(t *testing.T) {
		assert.Empty(t, meta.GetFromContext(t.Context(), meta.CallerID))
	})

	t.Run("non-string value returns empty string", func(t *testing.T) {
		ctx := context.WithValue(t.Context(), meta.CallerID, 42)
		assert.Empty(t, meta.GetFromContext(ctx, meta.CallerID))
	})
}

func TestRoundTrip(t *testing.T) {
	metadata := map[meta.ContextKey]string{
		meta.TraceID:        "trace-123",
		meta.CallerRole:     "user",
		meta.CallerID:       "caller-123",
		meta.OpName:         "orders.create",
		meta.ServiceName:    "auth-service",
		meta.ServiceVersion: "v1.0.0",
	}

	ctx := meta.InjectMetaToContext(t.Context(), metadata)

	assert.Equal(t, metadata, meta.ExtractMetaFromContext(ctx))
}
