package val

import (
	"fmt"

	"github.com/code19m/errx"
)

// Rule is a named predicate over a value of type T.
type Rule[T any] struct {
	// Name identifies the rule in error reports.
	Name string

	// Check returns true when the value satisfies the rule.
	Check func(T) bool
}

// NewRule creates a named predicate rule.
func NewRule[T any](name string, check func(T) bool) Rule[T] {
	return Rule[T]{Name: name, Check: check}
}

// CheckRules evaluates rules against v in order and returns an errx error of
// type T_Validation for the first rule that fails, naming the rule and its
// position. It returns nil when every rule passes.
func CheckRules[T any](v T, rules ...Rule[T]) error {
	for i, rule := range rules {
		if rule.Check == nil {
			return errx.New(
				fmt.Sprintf("rule at index %d has no check function", i),
				errx.WithCode(CodeValidationFailed),
				errx.WithType(errx.T_Validation),
			)
		}
		if !rule.Check(v) {
			return errx.New(
				fmt.Sprintf("value does not satisfy rule %q (index %d)", rule.Name, i),
				errx.WithCode(CodeValidationFailed),
				errx.WithType(errx.T_Validation),
				errx.WithDetails(errx.D{
					"rule":  rule.Name,
					"index": i,
				}),
			)
		}
	}
	return nil
}
