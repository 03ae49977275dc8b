package validator

import (
	"reflect"
	"strings"

	"github.com/dmitrymomot/formcheck/pkg/condition"
)

var presenceRules = map[condition.Condition]builder{
	condition.IsRequired: func(value, param any) (Rule, error) {
		return gate(param, func() bool { return !isBlank(value) })
	},
	condition.IsNotNull: func(value, param any) (Rule, error) {
		return gate(param, func() bool { return !isNil(value) })
	},
	condition.IsNull: func(value, param any) (Rule, error) {
		return gate(param, func() bool { return isNil(value) })
	},
	condition.IsNotEmpty: func(value, param any) (Rule, error) {
		return gate(param, func() bool {
			if isNil(value) {
				return false
			}
			if n, ok := length(value); ok {
				return n > 0
			}
			return true
		})
	},
	condition.IsNotBlank: func(value, param any) (Rule, error) {
		return gate(param, func() bool {
			s, ok := stringValue(value)
			return ok && strings.TrimSpace(s) != ""
		})
	},
	condition.IsTrue: func(value, param any) (Rule, error) {
		return gate(param, func() bool {
			b, ok := boolValue(value)
			return ok && b
		})
	},
	condition.IsFalse: func(value, param any) (Rule, error) {
		return gate(param, func() bool {
			b, ok := boolValue(value)
			return ok && !b
		})
	},
	condition.IsString: func(value, param any) (Rule, error) {
		return gate(param, func() bool {
			_, ok := stringValue(value)
			return ok
		})
	},
	condition.IsBoolean: func(value, param any) (Rule, error) {
		return gate(param, func() bool {
			_, ok := boolValue(value)
			return ok
		})
	},
}

// isBlank reports whether a value counts as missing: nil, a white-space only
// string or an empty collection. Pointers are followed once.
func isBlank(v any) bool {
	if isNil(v) {
		return true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		v = rv.Elem().Interface()
	}

	if s, ok := stringValue(v); ok {
		return strings.TrimSpace(s) == ""
	}
	if n, ok := length(v); ok {
		return n == 0
	}
	return false
}
