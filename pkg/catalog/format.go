package catalog

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
)

// Messages are English only; numbers use English grouping ("1,000").
var numberLocale = en.New()

// formatRequirement renders a requirement for interpolation. It reports false for nil.
func formatRequirement(req any) (string, bool) {
	switch v := req.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case time.Time:
		return v.Format(time.DateOnly), true
	case *time.Time:
		if v == nil {
			return "", false
		}
		return v.Format(time.DateOnly), true
	case time.Duration:
		return v.String(), true
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return formatNumber(f), true
		}
		return v.String(), true
	case fmt.Stringer:
		return v.String(), true
	}

	if f, ok := toFloat(req); ok {
		return formatNumber(f), true
	}

	return fmt.Sprint(req), true
}

func formatNumber(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return numberLocale.FmtNumber(f, decimals(f))
}

// decimals returns the number of fractional digits in the shortest representation of f.
func decimals(f float64) uint64 {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return uint64(len(s) - i - 1)
	}
	return 0
}

func toFloat(v any) (float64, bool) {
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		return f, err == nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
