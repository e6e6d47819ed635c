package wrapper

import (
	"context"
	"reflect"

	"github.com/rise-and-shine/wrapkit/op"
	"github.com/rise-and-shine/wrapkit/val"
)

// ValidationWrapper checks the input before the target runs: struct inputs
// are validated against their `validate` tags, then the configured predicate
// rules are evaluated in order. The target is not invoked on violation.
type ValidationWrapper[I op.Input, R op.Result] struct {
	rules []val.Rule[I]
	next  op.Op[I, R]
}

// NewValidationWrapper creates a validating wrap around an operation.
func NewValidationWrapper[I op.Input, R op.Result](rules ...val.Rule[I]) op.WrapFunc[I, R] {
	return func(next op.Op[I, R]) op.Op[I, R] {
		return &ValidationWrapper[I, R]{rules: rules, next: next}
	}
}

func (w *ValidationWrapper[I, R]) Invoke(ctx context.Context, in I) (R, error) {
	var zero R

	if isStructInput(in) {
		if err := val.ValidateSchema(in); err != nil {
			return zero, err
		}
	}

	if err := val.CheckRules(in, w.rules...); err != nil {
		return zero, err
	}

	return w.next.Invoke(ctx, in)
}

func (w *ValidationWrapper[I, R]) Unwrap() op.Op[I, R] { return w.next }

// isStructInput reports whether in can carry `validate` tags.
func isStructInput(in any) bool {
	if in == nil {
		return false
	}
	v := reflect.Indirect(reflect.ValueOf(in))
	return v.Kind() == reflect.Struct
}
