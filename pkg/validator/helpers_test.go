package validator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcheck/pkg/condition"
	"github.com/dmitrymomot/formcheck/pkg/validator"
)

type ruleCase struct {
	name  string
	value any
	param any
	pass  bool
}

// runCases evaluates c alone against every case.
func runCases(t *testing.T, c condition.Condition, cases []ruleCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			problems, err := validator.Validate(tc.value, validator.Conditions{c: tc.param})
			require.NoError(t, err)
			if tc.pass {
				require.Empty(t, problems, "%s(%v) with %#v", c, tc.param, tc.value)
			} else {
				require.Len(t, problems, 1, "%s(%v) with %#v", c, tc.param, tc.value)
				require.Equal(t, c, problems[0].Condition)
			}
		})
	}
}

// gateCases expands valid and invalid samples into gated cases.
func gateCases(valid, invalid []any) []ruleCase {
	cases := make([]ruleCase, 0, len(valid)+len(invalid))
	for _, v := range valid {
		cases = append(cases, ruleCase{name: "valid " + describe(v), value: v, param: true, pass: true})
	}
	for _, v := range invalid {
		cases = append(cases, ruleCase{name: "invalid " + describe(v), value: v, param: true, pass: false})
	}
	return cases
}

func describe(v any) string {
	if s, ok := v.(string); ok {
		if s == "" {
			return "empty"
		}
		return s
	}
	return "value"
}
