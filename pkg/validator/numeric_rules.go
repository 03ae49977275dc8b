package validator

import (
	"cmp"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/dmitrymomot/formcheck/pkg/condition"
)

// Tolerance for float remainders in IsDivisibleBy.
const epsilon = 1e-9

var numericRules = map[condition.Condition]builder{
	condition.IsNumber: func(value, param any) (Rule, error) {
		return gate(param, func() bool {
			_, ok := numberValue(value)
			return ok
		})
	},
	condition.IsInteger: func(value, param any) (Rule, error) {
		return gate(param, func() bool {
			f, ok := numberValue(value)
			return ok && isIntegral(f)
		})
	},
	condition.IsDecimal:     numberGate(func(float64) bool { return true }),
	condition.IsPositive:    numberGate(func(f float64) bool { return f > 0 }),
	condition.IsNegative:    numberGate(func(f float64) bool { return f < 0 }),
	condition.IsNonNegative: numberGate(func(f float64) bool { return f >= 0 }),
	condition.IsNonPositive: numberGate(func(f float64) bool { return f <= 0 }),
	condition.IsEven:        parityGate(0),
	condition.IsOdd:         parityGate(1),
	condition.IsPercentage:  numberGate(func(f float64) bool { return f >= 0 && f <= 100 }),
	condition.IsPort: numberGate(func(f float64) bool {
		return isIntegral(f) && f >= 1 && f <= 65535
	}),

	condition.IsGreaterThan:        compareNumber(func(c int) bool { return c > 0 }),
	condition.IsGreaterThanOrEqual: compareNumber(func(c int) bool { return c >= 0 }),
	condition.IsLessThan:           compareNumber(func(c int) bool { return c < 0 }),
	condition.IsLessThanOrEqual:    compareNumber(func(c int) bool { return c <= 0 }),

	condition.IsDivisibleBy: func(value, param any) (Rule, error) {
		d, err := paramNumber(param)
		if err != nil || d == 0 {
			return Rule{}, invalidParam("a non-zero number", param)
		}
		return Rule{
			Check: func() bool {
				if x, ok := numericInteger(value); ok {
					if y, ok := integerValue(param); ok {
						return x.abs%y.abs == 0
					}
				}
				f, ok := numericValue(value)
				if !ok {
					return false
				}
				r := math.Abs(math.Mod(f, d))
				return r < epsilon || math.Abs(r-math.Abs(d)) < epsilon
			},
			Requirement: param,
		}, nil
	},
	condition.IsDecimalPlacesLessThanOrEqual: func(value, param any) (Rule, error) {
		n, err := paramCount(param)
		if err != nil {
			return Rule{}, err
		}
		return Rule{
			Check: func() bool {
				places, ok := decimalPlaces(value)
				return ok && places <= n
			},
			Requirement: n,
		}, nil
	},
}

// numberGate builds a boolean-gated predicate over numbers and numeric strings.
func numberGate(check func(f float64) bool) builder {
	return func(value, param any) (Rule, error) {
		return gate(param, func() bool {
			f, ok := numericValue(value)
			return ok && check(f)
		})
	}
}

// parityGate checks the remainder of an integer divided by two.
func parityGate(rem uint64) builder {
	return func(value, param any) (Rule, error) {
		return gate(param, func() bool {
			if x, ok := numericInteger(value); ok {
				return x.abs%2 == rem
			}
			f, ok := numericValue(value)
			return ok && isIntegral(f) && uint64(math.Abs(math.Mod(f, 2))) == rem
		})
	}
}

// compareNumber passes accept the sign of value compared to the parameter.
func compareNumber(accept func(c int) bool) builder {
	return func(value, param any) (Rule, error) {
		n, err := paramNumber(param)
		if err != nil {
			return Rule{}, err
		}
		want, exact := integerValue(param)
		return Rule{
			Check: func() bool {
				if exact {
					if x, ok := numericInteger(value); ok {
						return accept(x.compare(want))
					}
				}
				f, ok := numericValue(value)
				return ok && accept(cmp.Compare(f, n))
			},
			Requirement: param,
		}, nil
	}
}

// decimalPlaces counts fractional digits as written. Strings and json.Number
// keep their trailing zeros, floats use the shortest representation.
func decimalPlaces(v any) (int, bool) {
	var s string
	switch n := v.(type) {
	case json.Number:
		s = n.String()
	default:
		if str, ok := stringValue(v); ok {
			s = strings.TrimSpace(str)
		} else if f, ok := numberValue(v); ok {
			s = strconv.FormatFloat(f, 'f', -1, 64)
		} else {
			return 0, false
		}
	}

	if _, ok := numericValue(s); !ok {
		return 0, false
	}
	if strings.ContainsAny(s, "eE") {
		f, _ := strconv.ParseFloat(s, 64)
		s = strconv.FormatFloat(f, 'f', -1, 64)
	}
	_, frac, found := strings.Cut(s, ".")
	if !found {
		return 0, true
	}
	return len(frac), true
}
