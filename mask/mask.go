// Package mask provides functionality for masking sensitive fields in structs
// before logging or other debugging tasks.
package mask

import (
	"fmt"
	"reflect"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const tagName = "mask"

// StructToOrdMap returns an ordered map of fields with sensitive values masked.
// Fields tagged with `mask:"true"` will have their values replaced.
// Field names are determined by priority: json tag > yaml tag > struct field name.
// Fields with json:"-" or yaml:"-" are excluded from the output.
// Nested structs are flattened using dot-separated keys.
func StructToOrdMap(v any) *orderedmap.OrderedMap[string, any] {
	if v == nil {
		return nil
	}
	return walk(reflect.ValueOf(v), "")
}

func walk(val reflect.Value, prefix string) *orderedmap.OrderedMap[string, any] {
	om := orderedmap.New[string, any]()

	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			om.Set(prefix, nil)
			return om
		}
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		om.Set(prefix, val.Interface())
		return om
	}

	typ := val.Type()
	for i := range val.NumField() {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if !fieldType.IsExported() {
			continue
		}

		name, skip := fieldName(fieldType)
		if skip {
			continue
		}
		if prefix != "" {
			name = prefix + "." + name
		}

		switch {
		case fieldType.Tag.Get(tagName) == "true":
			om.Set(name, maskValue(field))
		case isStructLike(field):
			nested := walk(field, name)
			for pair := nested.Oldest(); pair != nil; pair = pair.Next() {
				om.Set(pair.Key, pair.Value)
			}
		default:
			om.Set(name, field.Interface())
		}
	}

	return om
}

// isStructLike reports whether the value should be expanded recursively.
func isStructLike(val reflect.Value) bool {
	kind := val.Kind()
	if kind == reflect.Pointer {
		if val.IsNil() {
			return false
		}
		kind = val.Elem().Kind()
	}
	return kind == reflect.Struct
}

// maskValue replaces a sensitive value with a kind-specific placeholder.
// Nil pointers, slices and maps, as well as zero values, stay unmasked:
// there is nothing sensitive to hide in an empty value.
func maskValue(val reflect.Value) any {
	switch val.Kind() { //nolint:exhaustive // remaining kinds need no nil handling
	case reflect.Pointer:
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	case reflect.Slice, reflect.Map:
		if val.IsNil() {
			return nil
		}
	}

	if val.IsZero() {
		return val.Interface()
	}

	return placeholder(val.Kind())
}

func placeholder(kind reflect.Kind) string {
	//nolint:exhaustive // default covers remaining kinds
	switch kind {
	case reflect.String:
		return "***masked-string***"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "***masked-int***"
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "***masked-uint***"
	case reflect.Float32, reflect.Float64:
		return "***masked-float***"
	case reflect.Bool:
		return "***masked-bool***"
	case reflect.Struct:
		return "***masked-struct***"
	case reflect.Slice, reflect.Array:
		return "***masked-slice***"
	case reflect.Map:
		return "***masked-map***"
	default:
		return fmt.Sprintf("***masked-%s***", kind)
	}
}

// fieldName extracts the display name for a struct field from its tags with
// priority json > yaml > field name. A "-" tag excludes the field.
func fieldName(field reflect.StructField) (string, bool) {
	for _, tag := range []string{"json", "yaml"} {
		tagValue, ok := field.Tag.Lookup(tag)
		if !ok {
			continue
		}
		if tagValue == "-" {
			return "", true
		}
		name, _, _ := strings.Cut(tagValue, ",")
		if name != "" {
			return name, false
		}
	}
	return field.Name, false
}
