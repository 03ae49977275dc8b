// Package validator evaluates a single value against a set of declarative
// conditions and reports every condition the value fails.
//
// A condition set maps each condition.Condition to its parameter: a boolean
// for plain checks ("IsEmailAddress": true), a threshold for comparisons
// ("IsLengthGreaterThanOrEqual": 8) or a literal for equality and patterns.
// Validate dispatches each key to a rule builder, runs the resulting Rule and
// renders the failures through the catalog package.
//
// # Architecture
//
// Each source file groups the builders for one family of conditions
// (`string_rules.go`, `numeric_rules.go`, `date_rules.go`, etc.). Builders
// are registered in the rules table; a duplicate registration panics at
// start-up. Syntax-heavy formats (email, URL, IP, ISBN, ...) are delegated to
// go-playground/validator tags, UUIDs to google/uuid and language tags to
// golang.org/x/text.
//
// Core building blocks:
//   - Conditions - condition set, keyed by condition.Condition
//   - Rule       - a Check func bound to a value plus the requirement to report
//   - Problem    - one failed condition with its rendered message
//   - Problems   - ordered result that also implements error
//
// # Usage
//
//	problems, err := validator.Validate(email, validator.Conditions{
//	    condition.IsRequired:     true,
//	    condition.IsEmailAddress: true,
//	}, validator.WithSubject("Email"))
//	if err != nil {
//	    // unknown condition or malformed parameter
//	}
//	if !problems.IsEmpty() {
//	    for _, p := range problems {
//	        fmt.Println(p.Message.Long)
//	    }
//	}
//
// # Error Handling
//
// Validate distinguishes configuration errors from validation failures.
// Unknown conditions return ErrUnsupportedCondition and bad parameters return
// ErrInvalidParameter; neither produces problems. Failed checks are Problems,
// which can be returned as an error via Problems.Err and recovered with
// ExtractProblems.
//
// Problems are ordered by condition declaration order, so the result does not
// depend on map iteration.
package validator
