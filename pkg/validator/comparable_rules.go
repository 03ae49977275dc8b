package validator

import (
	"strings"

	"github.com/dmitrymomot/formcheck/pkg/condition"
)

var comparableRules = map[condition.Condition]builder{
	condition.IsEqual: func(value, param any) (Rule, error) {
		want, err := paramScalar(param)
		if err != nil {
			return Rule{}, err
		}
		return Rule{
			Check:       func() bool { return strictEqual(value, want) },
			Requirement: want,
		}, nil
	},
	condition.IsNotEqual: func(value, param any) (Rule, error) {
		want, err := paramScalar(param)
		if err != nil {
			return Rule{}, err
		}
		return Rule{
			Check:       func() bool { return !strictEqual(value, want) },
			Requirement: want,
		}, nil
	},
	condition.IsEqualIgnoringCase: func(value, param any) (Rule, error) {
		want, err := paramString(param)
		if err != nil {
			return Rule{}, err
		}
		return Rule{
			Check: func() bool {
				s, ok := stringValue(value)
				return ok && strings.EqualFold(s, want)
			},
			Requirement: want,
		}, nil
	},
}

// strictEqual compares values of the same kind only. Numbers compare by value
// whatever their Go type, so 5 equals 5.0 but never "5". Two integers compare
// exactly, beyond the float64 mantissa.
func strictEqual(a, b any) bool {
	if x, ok := integerValue(a); ok {
		if y, ok := integerValue(b); ok {
			return x == y
		}
	}
	if x, ok := numberValue(a); ok {
		y, ok := numberValue(b)
		return ok && x == y
	}
	if x, ok := stringValue(a); ok {
		y, ok := stringValue(b)
		return ok && x == y
	}
	if x, ok := boolValue(a); ok {
		y, ok := boolValue(b)
		return ok && x == y
	}
	return false
}
