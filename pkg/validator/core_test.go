package validator_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcheck/pkg/catalog"
	"github.com/dmitrymomot/formcheck/pkg/condition"
	"github.com/dmitrymomot/formcheck/pkg/validator"
)

func TestValidate(t *testing.T) {
	t.Run("empty condition set yields no problems", func(t *testing.T) {
		problems, err := validator.Validate("anything", validator.Conditions{})
		require.NoError(t, err)
		assert.NotNil(t, problems)
		assert.Empty(t, problems)
	})

	t.Run("nil condition set yields no problems", func(t *testing.T) {
		problems, err := validator.Validate(42, nil)
		require.NoError(t, err)
		assert.Empty(t, problems)
	})

	t.Run("required fails on empty string", func(t *testing.T) {
		problems, err := validator.Validate("", validator.Conditions{condition.IsRequired: true})
		require.NoError(t, err)
		require.Len(t, problems, 1)

		p := problems[0]
		assert.Equal(t, condition.IsRequired, p.Condition)
		assert.Equal(t, "", p.Value)
		assert.Nil(t, p.Requirement)
		assert.Equal(t, catalog.Message{Short: "Required", Long: "This field is required."}, p.Message)
	})

	t.Run("letter count passes with enough letters", func(t *testing.T) {
		problems, err := validator.Validate("abc123", validator.Conditions{condition.HasLetterCount: 3})
		require.NoError(t, err)
		assert.Empty(t, problems)
	})

	t.Run("letter count reports the requirement", func(t *testing.T) {
		problems, err := validator.Validate("123", validator.Conditions{condition.HasLetterCount: 3})
		require.NoError(t, err)
		require.Len(t, problems, 1)
		assert.Equal(t, condition.HasLetterCount, problems[0].Condition)
		assert.Equal(t, 3, problems[0].Requirement)
		assert.Equal(t, "Fewer than 3 letters", problems[0].Message.Short)
	})

	t.Run("email address", func(t *testing.T) {
		problems, err := validator.Validate("user@example.com", validator.Conditions{condition.IsEmailAddress: true})
		require.NoError(t, err)
		assert.Empty(t, problems)

		problems, err = validator.Validate("not-an-email", validator.Conditions{condition.IsEmailAddress: true})
		require.NoError(t, err)
		assert.Equal(t, []condition.Condition{condition.IsEmailAddress}, problems.Conditions())
	})

	t.Run("exact length", func(t *testing.T) {
		problems, err := validator.Validate("hello", validator.Conditions{condition.IsLengthEqual: 5})
		require.NoError(t, err)
		assert.Empty(t, problems)

		problems, err = validator.Validate("hi", validator.Conditions{condition.IsLengthEqual: 5})
		require.NoError(t, err)
		require.Len(t, problems, 1)
		assert.Equal(t, 5, problems[0].Requirement)
	})

	t.Run("false gate skips the check", func(t *testing.T) {
		problems, err := validator.Validate("", validator.Conditions{
			condition.IsRequired:     false,
			condition.IsEmailAddress: false,
		})
		require.NoError(t, err)
		assert.Empty(t, problems)
	})

	t.Run("subject is interpolated", func(t *testing.T) {
		problems, err := validator.Validate("", validator.Conditions{condition.IsRequired: true},
			validator.WithSubject("Email"))
		require.NoError(t, err)
		require.Len(t, problems, 1)
		assert.Equal(t, "Email is required.", problems[0].Message.Long)
	})

	t.Run("username availability contributes nothing", func(t *testing.T) {
		problems, err := validator.Validate("taken", validator.Conditions{condition.IsUsernameAvailable: true})
		require.NoError(t, err)
		assert.Empty(t, problems)
	})
}

func TestValidate_Ordering(t *testing.T) {
	conditions := validator.Conditions{
		condition.IsEmailAddress:             true,
		condition.IsLengthGreaterThanOrEqual: 8,
		condition.HasNumberCount:             1,
		condition.IsRequired:                 true,
		condition.Contains:                   "@",
	}

	first, err := validator.Validate("", conditions)
	require.NoError(t, err)

	want := []condition.Condition{
		condition.IsRequired,
		condition.Contains,
		condition.HasNumberCount,
		condition.IsLengthGreaterThanOrEqual,
		condition.IsEmailAddress,
	}
	assert.Equal(t, want, first.Conditions())

	for i := range 20 {
		again, err := validator.Validate("", conditions)
		require.NoError(t, err)
		assert.Equal(t, first, again, "run %d", i)
	}
}

func TestValidate_UnsupportedCondition(t *testing.T) {
	t.Run("unknown key fails before evaluation", func(t *testing.T) {
		problems, err := validator.Validate("", validator.Conditions{
			condition.IsRequired:         true,
			condition.Condition("IsFoo"): true,
		})
		require.Error(t, err)
		assert.Nil(t, problems)
		assert.ErrorIs(t, err, validator.ErrUnsupportedCondition)
		assert.Contains(t, err.Error(), "unsupported configuration property")
		assert.Contains(t, err.Error(), "IsFoo")
	})

	t.Run("smallest unknown key is reported", func(t *testing.T) {
		_, err := validator.Validate("", validator.Conditions{
			condition.Condition("Zeta"):  true,
			condition.Condition("Alpha"): true,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"Alpha"`)
	})
}

func TestValidate_InvalidParameter(t *testing.T) {
	tests := []struct {
		name       string
		conditions validator.Conditions
	}{
		{"gate with number", validator.Conditions{condition.IsRequired: 1}},
		{"gate with string", validator.Conditions{condition.IsEmailAddress: "yes"}},
		{"negative length", validator.Conditions{condition.IsLengthLessThanOrEqual: -1}},
		{"fractional length", validator.Conditions{condition.IsLengthEqual: 2.5}},
		{"length beyond int range", validator.Conditions{condition.IsLengthEqual: uint64(math.MaxUint64)}},
		{"float length beyond int range", validator.Conditions{condition.IsLengthEqual: 1e19}},
		{"length as string", validator.Conditions{condition.IsLengthEqual: "5"}},
		{"count as string", validator.Conditions{condition.HasLetterCount: "3"}},
		{"pattern does not compile", validator.Conditions{condition.MatchesPattern: "("}},
		{"pattern not a string", validator.Conditions{condition.MatchesPattern: 5}},
		{"divisor zero", validator.Conditions{condition.IsDivisibleBy: 0}},
		{"comparison with string", validator.Conditions{condition.IsGreaterThan: "ten"}},
		{"date not parseable", validator.Conditions{condition.IsDateBefore: "tomorrow"}},
		{"run limit zero", validator.Conditions{condition.HasMaxRepeatedCharacters: 0}},
		{"equality with slice", validator.Conditions{condition.IsEqual: []string{"a"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems, err := validator.Validate("value", tt.conditions)
			require.Error(t, err)
			assert.Nil(t, problems)
			assert.ErrorIs(t, err, validator.ErrInvalidParameter)
		})
	}

	t.Run("error names the condition", func(t *testing.T) {
		_, err := validator.Validate("", validator.Conditions{condition.IsRequired: "true"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "IsRequired")
	})
}

func TestValidate_JSONNumberParameters(t *testing.T) {
	problems, err := validator.Validate("hi", validator.Conditions{
		condition.IsLengthGreaterThanOrEqual: json.Number("5"),
		condition.IsLengthLessThanOrEqual:    float64(10),
	})
	require.NoError(t, err)
	require.Len(t, problems, 1)
	assert.Equal(t, condition.IsLengthGreaterThanOrEqual, problems[0].Condition)
	assert.Equal(t, 5, problems[0].Requirement)
}

func TestValidate_EveryConditionHasARule(t *testing.T) {
	for _, c := range condition.All() {
		if c == condition.IsUsernameAvailable {
			assert.False(t, validator.HasRule(c))
			continue
		}
		assert.True(t, validator.HasRule(c), "missing rule for %s", c)
	}
}

func TestValidate_Concurrent(t *testing.T) {
	conditions := validator.Conditions{
		condition.IsRequired:     true,
		condition.IsLowercase:    true,
		condition.IsEmailAddress: true,
	}

	done := make(chan validator.Problems)
	for range 16 {
		go func() {
			problems, _ := validator.Validate("Not An Email", conditions)
			done <- problems
		}()
	}
	for range 16 {
		problems := <-done
		assert.Equal(t, []condition.Condition{condition.IsLowercase, condition.IsEmailAddress}, problems.Conditions())
	}
}

func TestProblems(t *testing.T) {
	problems, err := validator.Validate("", validator.Conditions{
		condition.IsRequired:  true,
		condition.IsNotBlank:  true,
		condition.IsNotNull:   true,
		condition.IsLowercase: false,
	}, validator.WithSubject("Name"))
	require.NoError(t, err)

	t.Run("has and get", func(t *testing.T) {
		assert.True(t, problems.Has(condition.IsRequired))
		assert.False(t, problems.Has(condition.IsNotNull))

		p, ok := problems.Get(condition.IsNotBlank)
		require.True(t, ok)
		assert.Equal(t, condition.IsNotBlank, p.Condition)

		_, ok = problems.Get(condition.IsLowercase)
		assert.False(t, ok)
	})

	t.Run("messages", func(t *testing.T) {
		messages := problems.Messages()
		require.Len(t, messages, 2)
		assert.Equal(t, "Name is required.", messages[0].Long)
	})

	t.Run("error text", func(t *testing.T) {
		assert.Equal(t, "validation failed", validator.Problems{}.Error())
		assert.Contains(t, problems.Error(), "validation failed: IsRequired: Required")
	})

	t.Run("err is nil when empty", func(t *testing.T) {
		assert.NoError(t, validator.Problems{}.Err())
		assert.Error(t, problems.Err())
	})

	t.Run("extract from wrapped error", func(t *testing.T) {
		wrapped := fmt.Errorf("signup: %w", problems.Err())

		assert.True(t, validator.IsProblems(wrapped))
		assert.Equal(t, problems, validator.ExtractProblems(wrapped))
		assert.False(t, validator.IsProblems(errors.New("other")))
		assert.Nil(t, validator.ExtractProblems(errors.New("other")))
		assert.Nil(t, validator.ExtractProblems(nil))
		assert.False(t, validator.IsProblems(nil))
	})

	t.Run("marshals to json", func(t *testing.T) {
		data, err := json.Marshal(problems[0])
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"condition": "IsRequired",
			"message": {"short": "Required", "long": "Name is required."},
			"value": ""
		}`, string(data))
	})
}
