// Package val provides validation functions for operation inputs.
//
// It combines struct-tag validation (go-playground/validator) with named
// predicate rules, translating every violation into an errx error with
// type T_Validation.
package val

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

//nolint:gochecknoglobals // single shared validator instance
var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(getTagName)
	})
	return validate
}

// getTagName returns the name of a struct field based on its struct tags.
// It checks 'json' and 'yaml' tags in that order, and falls back to the
// field name if neither has a non-empty name component.
func getTagName(fld reflect.StructField) string {
	for _, tagName := range []string{"json", "yaml"} {
		name := strings.SplitN(fld.Tag.Get(tagName), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return fld.Name
}
