package validator

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/dmitrymomot/formcheck/pkg/catalog"
	"github.com/dmitrymomot/formcheck/pkg/condition"
)

// Conditions maps each condition to its constraint parameter.
type Conditions map[condition.Condition]any

// Problem describes one condition the value failed.
type Problem struct {
	Condition   condition.Condition `json:"condition"`
	Message     catalog.Message     `json:"message"`
	Value       any                 `json:"value"`
	Requirement any                 `json:"requirement,omitempty"`
}

// Problems is the ordered result of a validation run.
type Problems []Problem

func (p Problems) Error() string {
	if len(p) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(p))
	for _, problem := range p {
		parts = append(parts, fmt.Sprintf("%s: %s", problem.Condition, problem.Message.Short))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (p Problems) Has(c condition.Condition) bool {
	return slices.ContainsFunc(p, func(problem Problem) bool {
		return problem.Condition == c
	})
}

// Get returns the problem reported for c.
func (p Problems) Get(c condition.Condition) (Problem, bool) {
	return lo.Find(p, func(problem Problem) bool {
		return problem.Condition == c
	})
}

func (p Problems) Conditions() []condition.Condition {
	return lo.Map(p, func(problem Problem, _ int) condition.Condition {
		return problem.Condition
	})
}

func (p Problems) Messages() []catalog.Message {
	return lo.Map(p, func(problem Problem, _ int) catalog.Message {
		return problem.Message
	})
}

func (p Problems) IsEmpty() bool {
	return len(p) == 0
}

// Err returns p as an error, or nil when there are no problems.
func (p Problems) Err() error {
	if p.IsEmpty() {
		return nil
	}
	return p
}

// Rule is a single condition bound to a value.
type Rule struct {
	Check func() bool
	// Requirement is interpolated into the failure message.
	Requirement any
}

func pass() Rule {
	return Rule{Check: func() bool { return true }}
}

// builder binds a condition parameter to a value.
type builder func(value, param any) (Rule, error)

type options struct {
	subject string
}

// Option configures a validation run.
type Option func(*options)

// WithSubject sets the field name interpolated into problem messages.
func WithSubject(subject string) Option {
	return func(o *options) {
		o.subject = subject
	}
}

// Validate evaluates every condition against value and returns the failed ones
// in condition declaration order.
//
// An unknown condition fails the whole call before anything is evaluated. A
// parameter of the wrong type aborts the run at that condition. In both cases
// no problems are returned.
func Validate(value any, conditions Conditions, opts ...Option) (Problems, error) {
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}

	keys := lo.Keys(conditions)
	if unknown := lo.Reject(keys, func(c condition.Condition, _ int) bool {
		return condition.IsValid(c)
	}); len(unknown) > 0 {
		slices.Sort(unknown)
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCondition, string(unknown[0]))
	}
	slices.SortFunc(keys, func(a, b condition.Condition) int {
		return condition.Index(a) - condition.Index(b)
	})

	problems := make(Problems, 0)
	for _, c := range keys {
		build, ok := rules[c]
		if !ok {
			continue
		}

		rule, err := build(value, conditions[c])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c, err)
		}
		if rule.Check() {
			continue
		}

		problems = append(problems, Problem{
			Condition: c,
			Message: catalog.Label(c, catalog.Context{
				Subject:     cfg.subject,
				Requirement: rule.Requirement,
			}),
			Value:       value,
			Requirement: rule.Requirement,
		})
	}

	return problems, nil
}

// ExtractProblems extracts Problems from an error chain.
func ExtractProblems(err error) Problems {
	if err == nil {
		return nil
	}

	var problems Problems
	if errors.As(err, &problems) {
		return problems
	}

	return nil
}

func IsProblems(err error) bool {
	if err == nil {
		return false
	}

	var problems Problems
	return errors.As(err, &problems)
}
