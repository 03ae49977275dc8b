package validator

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/formcheck/pkg/condition"
)

var uuidRules = map[condition.Condition]builder{
	condition.IsUuid: stringGate(func(s string) bool {
		_, ok := parseUUID(s)
		return ok
	}),
	condition.IsUuidV4: stringGate(func(s string) bool {
		id, ok := parseUUID(s)
		return ok && id.Version() == 4 && id.Variant() == uuid.RFC4122
	}),
}

// parseUUID accepts only the canonical hyphenated form. Length and hyphen
// positions are checked before parsing.
func parseUUID(s string) (uuid.UUID, bool) {
	if len(s) != 36 {
		return uuid.Nil, false
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
