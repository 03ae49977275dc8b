package validator

import "github.com/dmitrymomot/formcheck/pkg/condition"

// rules dispatches every evaluated condition to its builder.
// IsUsernameAvailable has no builder since it needs a remote lookup.
var rules = merge(
	presenceRules,
	comparableRules,
	patternRules,
	stringRules,
	lengthRules,
	numericRules,
	dateRules,
	formatRules,
	identifierRules,
	uuidRules,
	financialRules,
	passwordRules,
)

func merge(sets ...map[condition.Condition]builder) map[condition.Condition]builder {
	out := make(map[condition.Condition]builder)
	for _, set := range sets {
		for c, b := range set {
			if _, dup := out[c]; dup {
				panic("validator: duplicate rule for " + c.String())
			}
			out[c] = b
		}
	}
	return out
}
