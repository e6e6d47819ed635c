package wrapper

import (
	"context"
	"slices"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/wrapkit/meta"
	"github.com/rise-and-shine/wrapkit/op"
)

// AuthWrapper rejects invocations without an authenticated caller. When
// allowedRoles is non-empty, the caller's role must also be in the list.
// The target is not invoked on rejection.
type AuthWrapper[I op.Input, R op.Result] struct {
	allowedRoles []string
	next         op.Op[I, R]
}

// NewAuthWrapper creates an authorization wrap around an operation.
func NewAuthWrapper[I op.Input, R op.Result](allowedRoles ...string) op.WrapFunc[I, R] {
	return func(next op.Op[I, R]) op.Op[I, R] {
		return &AuthWrapper[I, R]{allowedRoles: allowedRoles, next: next}
	}
}

func (w *AuthWrapper[I, R]) Invoke(ctx context.Context, in I) (R, error) {
	var zero R

	callerID := meta.GetFromContext(ctx, meta.CallerID)
	if callerID == "" {
		return zero, errx.New(
			"caller is not authenticated",
			errx.WithCode(CodeUnauthenticated),
			errx.WithType(errx.T_Authentication),
		)
	}

	if len(w.allowedRoles) > 0 {
		role := meta.GetFromContext(ctx, meta.CallerRole)
		if !slices.Contains(w.allowedRoles, role) {
			return zero, errx.New(
				"caller role is not allowed",
				errx.WithCode(CodePermissionDenied),
				errx.WithType(errx.T_Forbidden),
				errx.WithDetails(errx.D{
					"caller_id":   callerID,
					"caller_role": role,
				}),
			)
		}
	}

	return w.next.Invoke(ctx, in)
}

func (w *AuthWrapper[I, R]) Unwrap() op.Op[I, R] { return w.next }
