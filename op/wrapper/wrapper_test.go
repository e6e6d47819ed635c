// Package wrapper_test contains tests for the wrapper package.
package wrapper_test

import (
	"context"
	"testing"
	"time"

	"github.com/code19m/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/wrapkit/logger"
	"github.com/rise-and-shine/wrapkit/meta"
	"github.com/rise-and-shine/wrapkit/op"
	"github.com/rise-and-shine/wrapkit/op/wrapper"
	"github.com/rise-and-shine/wrapkit/val"
)

func testLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.New(logger.Config{Disable: true})
	require.NoError(t, err)
	return log
}

// callerCtx returns a context carrying an authenticated caller.
func callerCtx(t *testing.T, id, role string) context.Context {
	t.Helper()
	return meta.InjectMetaToContext(t.Context(), map[meta.ContextKey]string{
		meta.CallerID:   id,
		meta.CallerRole: role,
	})
}

func TestAuthWrapper(t *testing.T) {
	target := op.Describe[string, string](
		op.Func[string, string](func(_ context.Context, in string) (string, error) {
			return "hello " + in, nil
		}),
		"greeter.greet",
		"",
	)

	t.Run("unauthenticated caller rejected", func(t *testing.T) {
		invoked := false
		guarded := op.Chain(
			op.Func[string, string](func(_ context.Context, in string) (string, error) {
				invoked = true
				return in, nil
			}),
			wrapper.NewAuthWrapper[string, string](),
		)

		_, err := guarded.Invoke(t.Context(), "world")
		require.Error(t, err)
		assert.Equal(t, errx.T_Authentication, errx.GetType(err))
		assert.True(t, errx.IsCodeIn(err, wrapper.CodeUnauthenticated))
		assert.False(t, invoked, "target must not be invoked")
	})

	t.Run("authenticated caller passes", func(t *testing.T) {
		guarded := op.Chain(target, wrapper.NewAuthWrapper[string, string]())

		out, err := guarded.Invoke(callerCtx(t, "user-1", "member"), "world")
		require.NoError(t, err)
		assert.Equal(t, "hello world", out)
	})

	t.Run("role not allowed", func(t *testing.T) {
		guarded := op.Chain(target, wrapper.NewAuthWrapper[string, string]("admin"))

		_, err := guarded.Invoke(callerCtx(t, "user-1", "member"), "world")
		require.Error(t, err)
		assert.Equal(t, errx.T_Forbidden, errx.GetType(err))
		assert.True(t, errx.IsCodeIn(err, wrapper.CodePermissionDenied))
	})

	t.Run("role allowed", func(t *testing.T) {
		guarded := op.Chain(target, wrapper.NewAuthWrapper[string, string]("admin", "member"))

		_, err := guarded.Invoke(callerCtx(t, "user-1", "member"), "world")
		assert.NoError(t, err)
	})
}

type transferInput struct {
	Account string `json:"account" validate:"required"`
	Amount  int    `json:"amount"  validate:"gt=0"`
}

func TestValidationWrapper(t *testing.T) {
	invocations := 0
	target := op.Func[transferInput, int](func(_ context.Context, in transferInput) (int, error) {
		invocations++
		return in.Amount, nil
	})

	validated := op.Chain(target,
		wrapper.NewValidationWrapper[transferInput, int](
			val.NewRule("even amount", func(in transferInput) bool { return in.Amount%2 == 0 }),
		),
	)

	t.Run("valid input reaches the target", func(t *testing.T) {
		out, err := validated.Invoke(t.Context(), transferInput{Account: "acc-1", Amount: 10})
		require.NoError(t, err)
		assert.Equal(t, 10, out)
	})

	t.Run("schema violation rejected", func(t *testing.T) {
		before := invocations
		_, err := validated.Invoke(t.Context(), transferInput{Account: "", Amount: 10})
		require.Error(t, err)
		assert.Equal(t, errx.T_Validation, errx.GetType(err))
		assert.Equal(t, before, invocations, "target must not be invoked")
	})

	t.Run("rule violation rejected", func(t *testing.T) {
		before := invocations
		_, err := validated.Invoke(t.Context(), transferInput{Account: "acc-1", Amount: 3})
		require.Error(t, err)
		assert.Equal(t, errx.T_Validation, errx.GetType(err))
		assert.Equal(t, before, invocations, "target must not be invoked")
	})

	t.Run("non-struct input skips schema validation", func(t *testing.T) {
		double := op.Chain(
			op.Func[int, int](func(_ context.Context, in int) (int, error) { return in * 2, nil }),
			wrapper.NewValidationWrapper[int, int](
				val.NewRule("positive", func(v int) bool { return v > 0 }),
			),
		)

		out, err := double.Invoke(t.Context(), 4)
		require.NoError(t, err)
		assert.Equal(t, 8, out)

		_, err = double.Invoke(t.Context(), -4)
		assert.Error(t, err)
	})
}

func TestCounterWrapper(t *testing.T) {
	counter := wrapper.NewCounter()

	flaky := op.Chain(
		op.Func[bool, string](func(_ context.Context, fail bool) (string, error) {
			if fail {
				return "", errx.New("boom")
			}
			return "ok", nil
		}),
		wrapper.NewCounterWrapper[bool, string](counter),
	)

	_, _ = flaky.Invoke(t.Context(), false)
	_, _ = flaky.Invoke(t.Context(), true)
	_, _ = flaky.Invoke(t.Context(), false)

	assert.Equal(t, int64(3), counter.Invocations())
	assert.Equal(t, int64(1), counter.Failures())
}

func TestRecoveryWrapper(t *testing.T) {
	panicky := op.Chain(
		op.Func[string, string](func(_ context.Context, in string) (string, error) {
			if in == "explode" {
				panic("kaboom")
			}
			return in, nil
		}),
		wrapper.NewRecoveryWrapper[string, string](testLogger(t), "test.panicky"),
	)

	t.Run("panic becomes an error", func(t *testing.T) {
		_, err := panicky.Invoke(t.Context(), "explode")
		require.Error(t, err)
		assert.True(t, errx.IsCodeIn(err, wrapper.CodePanicRecovered))

		e := errx.AsErrorX(err)
		assert.Contains(t, e.Details()["panic_values"], "kaboom")
	})

	t.Run("normal invocation untouched", func(t *testing.T) {
		out, err := panicky.Invoke(t.Context(), "fine")
		require.NoError(t, err)
		assert.Equal(t, "fine", out)
	})
}

func TestTimeoutWrapper(t *testing.T) {
	slow := op.Chain(
		op.Func[time.Duration, string](func(ctx context.Context, d time.Duration) (string, error) {
			select {
			case <-time.After(d):
				return "done", nil
			case <-ctx.Done():
				return "", errx.Wrap(ctx.Err())
			}
		}),
		wrapper.NewTimeoutWrapper[time.Duration, string](20*time.Millisecond),
	)

	t.Run("fast target completes", func(t *testing.T) {
		out, err := slow.Invoke(t.Context(), time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, "done", out)
	})

	t.Run("slow target times out", func(t *testing.T) {
		_, err := slow.Invoke(t.Context(), 200*time.Millisecond)
		assert.Error(t, err)
	})
}

func TestLoggerWrapperPassesThrough(t *testing.T) {
	logged := op.Chain(
		op.Describe[int, int](
			op.Func[int, int](func(_ context.Context, in int) (int, error) { return in + 1, nil }),
			"math.increment",
			"",
		),
		wrapper.NewLoggerWrapper[int, int](testLogger(t), ""),
	)

	out, err := logged.Invoke(t.Context(), 41)
	require.NoError(t, err)
	assert.Equal(t, 42, out)

	// identity survives the wrap
	assert.Equal(t, "math.increment", op.OperationID(logged))
}

func TestLoggerWrapperRecoversPanics(t *testing.T) {
	logged := op.Chain(
		op.Func[int, int](func(_ context.Context, _ int) (int, error) { panic("unexpected") }),
		wrapper.NewLoggerWrapper[int, int](testLogger(t), "test.panicky"),
	)

	_, err := logged.Invoke(t.Context(), 1)
	require.Error(t, err)
	assert.True(t, errx.IsCodeIn(err, wrapper.CodePanicRecovered))
}

func TestMetaInjectWrapper(t *testing.T) {
	var seen map[meta.ContextKey]string

	injected := op.Chain(
		op.Describe[op.NoResult, op.NoResult](
			op.Func[op.NoResult, op.NoResult](func(ctx context.Context, _ op.NoResult) (op.NoResult, error) {
				seen = meta.ExtractMetaFromContext(ctx)
				return op.NoResult{}, nil
			}),
			"probe.capture",
			"",
		),
		wrapper.NewMetaInjectWrapper[op.NoResult, op.NoResult]("wrapkit-test", "1.2.3"),
	)

	_, err := injected.Invoke(t.Context(), op.NoResult{})
	require.NoError(t, err)

	assert.Equal(t, "wrapkit-test", seen[meta.ServiceName])
	assert.Equal(t, "1.2.3", seen[meta.ServiceVersion])
	assert.Equal(t, "probe.capture", seen[meta.OpName])
	assert.NotEmpty(t, seen[meta.TraceID])
}
