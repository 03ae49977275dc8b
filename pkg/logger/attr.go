package logger

import (
	"log/slog"
	"strconv"

	"github.com/dmitrymomot/formcheck/pkg/condition"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups the non-nil errors under "errors", keyed by position.
// It returns an empty Attr when every error is nil.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Condition records a condition name under "condition".
func Condition(c condition.Condition) slog.Attr {
	return slog.String("condition", string(c))
}

// Conditions records a list of condition names under "conditions".
func Conditions(cs []condition.Condition) slog.Attr {
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = string(c)
	}
	return slog.Any("conditions", names)
}

func ProblemCount(n int) slog.Attr {
	return slog.Int("problem_count", n)
}

// Subject records the field name messages are rendered for.
func Subject(s string) slog.Attr {
	if s == "" {
		return slog.Attr{}
	}
	return slog.String("subject", s)
}

// Source records where a condition set was read from.
func Source(path string) slog.Attr {
	return slog.String("source", path)
}
