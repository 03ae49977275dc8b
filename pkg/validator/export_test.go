package validator

import (
	"time"

	"github.com/dmitrymomot/formcheck/pkg/condition"
)

// SetNow pins the clock used by date rules and returns a restore func.
func SetNow(t time.Time) func() {
	prev := now
	now = func() time.Time { return t }
	return func() { now = prev }
}

func HasRule(c condition.Condition) bool {
	_, ok := rules[c]
	return ok
}
