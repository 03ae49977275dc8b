package validator

import (
	"github.com/dmitrymomot/formcheck/pkg/condition"
	"github.com/dmitrymomot/formcheck/pkg/password"
)

var passwordRules = map[condition.Condition]builder{
	condition.HasLetterCount:    classCount(password.Letters),
	condition.HasLowercaseCount: classCount(password.Lowercase),
	condition.HasUppercaseCount: classCount(password.Uppercase),
	condition.HasNumberCount:    classCount(password.Digits),
	condition.HasSymbolCount:    classCount(password.Symbols),
	condition.HasSpaceCount:     classCount(password.Spaces),

	condition.IsStrongPassword: stringGate(func(s string) bool {
		return password.IsStrong(s, password.DefaultStrength())
	}),
	condition.IsNotCommonPassword: stringGate(func(s string) bool {
		return !password.IsCommon(s)
	}),
	condition.HasMaxRepeatedCharacters:   runLimit(password.MaxRepeatedRun),
	condition.HasMaxSequentialCharacters: runLimit(password.MaxSequentialRun),
}

// classCount requires at least n runes of class, or none when n is 0 or false.
func classCount(class password.Class) builder {
	return func(value, param any) (Rule, error) {
		n, err := paramCountOrBool(param)
		if err != nil {
			return Rule{}, err
		}
		return Rule{
			Check: func() bool {
				s, ok := stringValue(value)
				return ok && password.HasAtLeast(s, class, n)
			},
			Requirement: n,
		}, nil
	}
}

func runLimit(run func(s string) int) builder {
	return func(value, param any) (Rule, error) {
		limit, err := paramPositiveCount(param)
		if err != nil {
			return Rule{}, err
		}
		return Rule{
			Check: func() bool {
				s, ok := stringValue(value)
				return ok && run(s) <= limit
			},
			Requirement: limit,
		}, nil
	}
}
