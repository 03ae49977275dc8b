package validator

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/formcheck/pkg/condition"
)

var patternRules = map[condition.Condition]builder{
	condition.Contains:            substringRule(strings.Contains, true),
	condition.DoesNotContain:      substringRule(strings.Contains, false),
	condition.StartsWith:          substringRule(strings.HasPrefix, true),
	condition.EndsWith:            substringRule(strings.HasSuffix, true),
	condition.MatchesPattern:      regexRule(true),
	condition.DoesNotMatchPattern: regexRule(false),
}

// substringRule checks match(value, param) == want. Non-string values always fail.
func substringRule(match func(s, substr string) bool, want bool) builder {
	return func(value, param any) (Rule, error) {
		substr, err := paramString(param)
		if err != nil {
			return Rule{}, err
		}
		return Rule{
			Check: func() bool {
				s, ok := stringValue(value)
				return ok && match(s, substr) == want
			},
			Requirement: substr,
		}, nil
	}
}

func regexRule(want bool) builder {
	return func(value, param any) (Rule, error) {
		pattern, err := paramString(param)
		if err != nil {
			return Rule{}, err
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return Rule{}, invalidParam("a valid regular expression", param)
		}
		return Rule{
			Check: func() bool {
				s, ok := stringValue(value)
				return ok && re.MatchString(s) == want
			},
			Requirement: pattern,
		}, nil
	}
}
