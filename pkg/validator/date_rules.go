package validator

import (
	"strings"
	"time"

	"github.com/dmitrymomot/formcheck/pkg/condition"
)

// now is replaced in tests.
var now = time.Now

var (
	dateOnlyLayouts = []string{time.DateOnly}
	dateTimeLayouts = []string{time.RFC3339Nano, time.DateTime}
	timeLayouts     = []string{"15:04", time.TimeOnly}
)

var dateRules = map[condition.Condition]builder{
	condition.IsDate:     layoutGate(dateOnlyLayouts),
	condition.IsDateTime: layoutGate(dateTimeLayouts),
	condition.IsTime: stringGate(func(s string) bool {
		return parsesAs(s, timeLayouts)
	}),

	condition.IsDateBefore:     compareDate(func(t, ref time.Time) bool { return t.Before(ref) }),
	condition.IsDateAfter:      compareDate(func(t, ref time.Time) bool { return t.After(ref) }),
	condition.IsDateOnOrBefore: compareDate(func(t, ref time.Time) bool { return !t.After(ref) }),
	condition.IsDateOnOrAfter:  compareDate(func(t, ref time.Time) bool { return !t.Before(ref) }),

	condition.IsPastDate:   dateGate(func(t time.Time) bool { return t.Before(now()) }),
	condition.IsFutureDate: dateGate(func(t time.Time) bool { return t.After(now()) }),
	condition.IsWeekday: dateGate(func(t time.Time) bool {
		return t.Weekday() != time.Saturday && t.Weekday() != time.Sunday
	}),
	condition.IsWeekend: dateGate(func(t time.Time) bool {
		return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
	}),

	condition.IsAgeGreaterThanOrEqual: compareAge(func(age, years int) bool { return age >= years }),
	condition.IsAgeLessThanOrEqual:    compareAge(func(age, years int) bool { return age <= years }),

	condition.IsTimezone: tagged("timezone"),
	condition.IsDuration: stringGate(func(s string) bool {
		_, err := time.ParseDuration(s)
		return err == nil
	}),
}

// layoutGate accepts time values as they are and strings matching one of layouts.
func layoutGate(layouts []string) builder {
	return func(value, param any) (Rule, error) {
		return gate(param, func() bool {
			switch t := value.(type) {
			case time.Time:
				return true
			case *time.Time:
				return t != nil
			}
			s, ok := stringValue(value)
			return ok && parsesAs(s, layouts)
		})
	}
}

func parsesAs(s string, layouts []string) bool {
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

func dateGate(check func(t time.Time) bool) builder {
	return func(value, param any) (Rule, error) {
		return gate(param, func() bool {
			t, ok := dateValue(value)
			return ok && check(t)
		})
	}
}

func compareDate(cmp func(t, ref time.Time) bool) builder {
	return func(value, param any) (Rule, error) {
		ref, err := paramDate(param)
		if err != nil {
			return Rule{}, err
		}
		return Rule{
			Check: func() bool {
				t, ok := dateValue(value)
				return ok && cmp(t, ref)
			},
			Requirement: param,
		}, nil
	}
}

// compareAge reads value as a birthdate. Birthdates in the future always fail.
func compareAge(cmp func(age, years int) bool) builder {
	return func(value, param any) (Rule, error) {
		years, err := paramCount(param)
		if err != nil {
			return Rule{}, err
		}
		return Rule{
			Check: func() bool {
				birthdate, ok := dateValue(value)
				if !ok {
					return false
				}
				current := now()
				if birthdate.After(current) {
					return false
				}
				return cmp(age(birthdate, current), years)
			},
			Requirement: years,
		}, nil
	}
}

// age counts full years elapsed, not counting the current year until the birthday has passed.
func age(birthdate, at time.Time) int {
	years := at.Year() - birthdate.Year()
	if at.Month() < birthdate.Month() ||
		(at.Month() == birthdate.Month() && at.Day() < birthdate.Day()) {
		years--
	}
	return years
}
