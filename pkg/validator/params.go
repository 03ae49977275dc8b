package validator

import (
	"cmp"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order when a string is read as a date.
var dateLayouts = []string{time.RFC3339Nano, time.DateTime, time.DateOnly}

func invalidParam(expected string, got any) error {
	return fmt.Errorf("%w: expected %s, got %T(%v)", ErrInvalidParameter, expected, got, got)
}

// gate builds a boolean-gated rule: true evaluates check, false skips it.
func gate(param any, check func() bool) (Rule, error) {
	on, ok := param.(bool)
	if !ok {
		return Rule{}, invalidParam("a boolean", param)
	}
	if !on {
		return pass(), nil
	}
	return Rule{Check: check}, nil
}

// paramCount reads a non-negative integer threshold.
func paramCount(param any) (int, error) {
	if x, ok := integerValue(param); ok {
		if x.neg || x.abs > math.MaxInt {
			return 0, invalidParam("a non-negative integer", param)
		}
		return int(x.abs), nil
	}
	f, ok := numberValue(param)
	if !ok || f < 0 || !isIntegral(f) || f >= math.MaxInt {
		return 0, invalidParam("a non-negative integer", param)
	}
	return int(f), nil
}

// paramCountOrBool reads a count toggle: false is 0, true is 1.
func paramCountOrBool(param any) (int, error) {
	if b, ok := param.(bool); ok {
		if b {
			return 1, nil
		}
		return 0, nil
	}
	n, err := paramCount(param)
	if err != nil {
		return 0, invalidParam("a non-negative integer or a boolean", param)
	}
	return n, nil
}

// paramPositiveCount reads an integer threshold of at least one.
func paramPositiveCount(param any) (int, error) {
	n, err := paramCount(param)
	if err != nil || n < 1 {
		return 0, invalidParam("a positive integer", param)
	}
	return n, nil
}

func paramNumber(param any) (float64, error) {
	f, ok := numberValue(param)
	if !ok {
		return 0, invalidParam("a number", param)
	}
	return f, nil
}

func paramString(param any) (string, error) {
	s, ok := stringValue(param)
	if !ok {
		return "", invalidParam("a string", param)
	}
	return s, nil
}

func paramDate(param any) (time.Time, error) {
	t, ok := dateValue(param)
	if !ok {
		return time.Time{}, invalidParam("a date", param)
	}
	return t, nil
}

// paramScalar accepts the literal kinds allowed for equality checks.
func paramScalar(param any) (any, error) {
	if _, ok := param.(bool); ok {
		return param, nil
	}
	if _, ok := stringValue(param); ok {
		return param, nil
	}
	if _, ok := numberValue(param); ok {
		return param, nil
	}
	return nil, invalidParam("a boolean, string or number", param)
}

// stringValue returns the value of any ~string kind.
func stringValue(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

// numberValue returns the value of numeric kinds and json.Number. Strings are not numbers here.
func numberValue(v any) (float64, bool) {
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		return f, err == nil && isFinite(f)
	}
	if v == nil {
		return 0, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f, isFinite(f)
	default:
		return 0, false
	}
}

// exactInt holds an integer as sign and magnitude, so the whole int64 and
// uint64 ranges compare without float rounding. Zero is never negative.
type exactInt struct {
	neg bool
	abs uint64
}

func fromInt64(i int64) exactInt {
	if i < 0 {
		return exactInt{neg: true, abs: uint64(-(i + 1)) + 1}
	}
	return exactInt{abs: uint64(i)}
}

func (x exactInt) compare(y exactInt) int {
	switch {
	case x.neg != y.neg:
		if x.neg {
			return -1
		}
		return 1
	case x.neg:
		return cmp.Compare(y.abs, x.abs)
	default:
		return cmp.Compare(x.abs, y.abs)
	}
}

// integerValue reads integer kinds and integer json.Number literals exactly.
// Floats are not integers here, even when integral.
func integerValue(v any) (exactInt, bool) {
	if n, ok := v.(json.Number); ok {
		return parseExactInt(n.String())
	}
	if v == nil {
		return exactInt{}, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fromInt64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return exactInt{abs: rv.Uint()}, true
	default:
		return exactInt{}, false
	}
}

// numericInteger is integerValue extended to integer strings.
func numericInteger(v any) (exactInt, bool) {
	if x, ok := integerValue(v); ok {
		return x, true
	}
	s, ok := stringValue(v)
	if !ok {
		return exactInt{}, false
	}
	return parseExactInt(strings.TrimSpace(s))
}

func parseExactInt(s string) (exactInt, bool) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return fromInt64(i), true
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return exactInt{abs: u}, true
	}
	return exactInt{}, false
}

// numericValue is numberValue extended to numeric strings, as submitted by forms.
func numericValue(v any) (float64, bool) {
	if f, ok := numberValue(v); ok {
		return f, true
	}
	s, ok := stringValue(v)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f, err == nil && isFinite(f)
}

// dateValue reads time.Time, *time.Time and date strings.
func dateValue(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return *t, true
	}

	s, ok := stringValue(v)
	if !ok {
		return time.Time{}, false
	}
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// boolValue returns the value of any ~bool kind.
func boolValue(v any) (bool, bool) {
	if b, ok := v.(bool); ok {
		return b, true
	}
	if v == nil {
		return false, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Bool {
		return rv.Bool(), true
	}
	return false, false
}

// isNil reports whether v is nil or a nil pointer, map, slice, interface, func or chan.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// length returns the size of strings (in runes), slices, arrays and maps.
func length(v any) (int, bool) {
	if s, ok := stringValue(v); ok {
		return len([]rune(s)), true
	}
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	default:
		return 0, false
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func isIntegral(f float64) bool {
	return f == math.Trunc(f)
}
