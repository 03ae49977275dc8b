package validator

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/formcheck/pkg/condition"
)

func isNotPrint(r rune) bool { return !unicode.IsPrint(r) }

var numericStringRegex = regexp.MustCompile(`^[0-9]+$`)

var stringRules = map[condition.Condition]builder{
	condition.IsAlpha:        tagged("alphaunicode"),
	condition.IsAlphanumeric: tagged("alphanumunicode"),
	condition.IsAscii:        tagged("ascii"),
	condition.IsPrintable: stringGate(func(s string) bool {
		return strings.IndexFunc(s, isNotPrint) < 0
	}),
	condition.IsHexadecimal: tagged("hexadecimal"),
	condition.IsBase64:      tagged("base64"),
	condition.IsBase64Url:   tagged("base64url"),
	condition.IsNumeric:     stringGate(numericStringRegex.MatchString),
	// Casers hold state, so a fresh one is built per check.
	condition.IsLowercase: stringGate(func(s string) bool {
		return hasCased(s) && cases.Lower(language.Und).String(s) == s
	}),
	condition.IsUppercase: stringGate(func(s string) bool {
		return hasCased(s) && cases.Upper(language.Und).String(s) == s
	}),
	condition.IsTrimmed: stringGate(func(s string) bool {
		return strings.TrimSpace(s) == s
	}),
	condition.IsSingleLine: stringGate(func(s string) bool {
		return !strings.ContainsAny(s, "\r\n")
	}),
	condition.HasNoControlCharacters: stringGate(func(s string) bool {
		return strings.IndexFunc(s, unicode.IsControl) < 0
	}),
}

var lengthRules = map[condition.Condition]builder{
	condition.IsLengthEqual:              runeLength(func(n, want int) bool { return n == want }),
	condition.IsLengthNotEqual:           runeLength(func(n, want int) bool { return n != want }),
	condition.IsLengthGreaterThan:        runeLength(func(n, want int) bool { return n > want }),
	condition.IsLengthGreaterThanOrEqual: runeLength(func(n, want int) bool { return n >= want }),
	condition.IsLengthLessThan:           runeLength(func(n, want int) bool { return n < want }),
	condition.IsLengthLessThanOrEqual:    runeLength(func(n, want int) bool { return n <= want }),
	condition.IsByteLengthLessThanOrEqual: counted(func(s string) int {
		return len(s)
	}, atMost),
	condition.IsWordCountGreaterThanOrEqual: counted(func(s string) int {
		return len(strings.Fields(s))
	}, atLeast),
	condition.IsWordCountLessThanOrEqual: counted(func(s string) int {
		return len(strings.Fields(s))
	}, atMost),
	condition.IsLineCountLessThanOrEqual: counted(lineCount, atMost),
}

func atLeast(n, want int) bool { return n >= want }
func atMost(n, want int) bool  { return n <= want }

func runeLength(cmp func(n, want int) bool) builder {
	return counted(func(s string) int { return len([]rune(s)) }, cmp)
}

// counted compares measure(value) against a non-negative integer threshold.
func counted(measure func(s string) int, cmp func(n, want int) bool) builder {
	return func(value, param any) (Rule, error) {
		want, err := paramCount(param)
		if err != nil {
			return Rule{}, err
		}
		return Rule{
			Check: func() bool {
				s, ok := stringValue(value)
				return ok && cmp(measure(s), want)
			},
			Requirement: want,
		}, nil
	}
}

// lineCount treats "\r\n", "\r" and "\n" as breaks. The empty string has no lines.
func lineCount(s string) int {
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Count(s, "\n") + 1
}

func hasCased(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsUpper(r) || unicode.IsLower(r)
	}) >= 0
}
