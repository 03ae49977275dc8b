package validator_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcheck/pkg/condition"
	"github.com/dmitrymomot/formcheck/pkg/validator"
)

func TestCompositionRules(t *testing.T) {
	tests := []struct {
		condition condition.Condition
		valid     []any
		invalid   []any
	}{
		{condition.IsAlpha, []any{"abcXYZ", "café", "Straße"}, []any{"abc1", "", "ab c", 5}},
		{condition.IsAlphanumeric, []any{"abc123", "café2"}, []any{"abc-123", "", "café 2"}},
		{condition.IsNumeric, []any{"0123"}, []any{"12.5", "-1", "", "12a", 12}},
		{condition.IsLowercase, []any{"hello world", "ünïcode"}, []any{"Hello", "123", ""}},
		{condition.IsUppercase, []any{"HELLO 1", "ÜBER"}, []any{"Hello", "!!!"}},
		{condition.IsAscii, []any{"plain text"}, []any{"naïve"}},
		{condition.IsPrintable, []any{"Hello, world!", "café", "日本語"}, []any{"tab\there", "zero\u200bwidth"}},
		{condition.IsHexadecimal, []any{"deadBEEF", "0x1f"}, []any{"xyz", ""}},
		{condition.IsBase64, []any{"SGVsbG8="}, []any{"SGVsbG8", "***"}},
		{condition.IsBase64Url, []any{"SGVsbG8-_w=="}, []any{"SGVs+bG8/"}},
		{condition.IsTrimmed, []any{"clean", ""}, []any{" leading", "trailing\n"}},
		{condition.IsSingleLine, []any{"one line"}, []any{"two\nlines", "cr\rline"}},
		{condition.HasNoControlCharacters, []any{"visible text"}, []any{"bell\a", "nul\x00"}},
	}

	for _, tt := range tests {
		t.Run(tt.condition.String(), func(t *testing.T) {
			runCases(t, tt.condition, gateCases(tt.valid, tt.invalid))
		})
	}

	t.Run("letter checks agree with letter counts", func(t *testing.T) {
		problems, err := validator.Validate("café", validator.Conditions{
			condition.IsAlpha:        true,
			condition.IsPrintable:    true,
			condition.HasLetterCount: 4,
		})
		require.NoError(t, err)
		assert.Empty(t, problems)
	})
}

func TestLengthRules(t *testing.T) {
	t.Run("lengths count runes", func(t *testing.T) {
		runCases(t, condition.IsLengthEqual, []ruleCase{
			{name: "ascii", value: "hello", param: 5, pass: true},
			{name: "multibyte", value: "héllo", param: 5, pass: true},
			{name: "emoji", value: "👍👍", param: 2, pass: true},
			{name: "short", value: "hi", param: 5, pass: false},
			{name: "not a string", value: 12345, param: 5, pass: false},
		})
	})

	t.Run("comparisons", func(t *testing.T) {
		runCases(t, condition.IsLengthNotEqual, []ruleCase{
			{name: "different", value: "abc", param: 2, pass: true},
			{name: "same", value: "ab", param: 2, pass: false},
		})
		runCases(t, condition.IsLengthGreaterThan, []ruleCase{
			{name: "longer", value: "abc", param: 2, pass: true},
			{name: "equal", value: "ab", param: 2, pass: false},
		})
		runCases(t, condition.IsLengthGreaterThanOrEqual, []ruleCase{
			{name: "equal", value: "ab", param: 2, pass: true},
			{name: "shorter", value: "a", param: 2, pass: false},
		})
		runCases(t, condition.IsLengthLessThan, []ruleCase{
			{name: "shorter", value: "a", param: 2, pass: true},
			{name: "equal", value: "ab", param: 2, pass: false},
		})
		runCases(t, condition.IsLengthLessThanOrEqual, []ruleCase{
			{name: "equal", value: "ab", param: 2, pass: true},
			{name: "longer", value: "abc", param: 2, pass: false},
		})
	})

	t.Run("zero thresholds", func(t *testing.T) {
		runCases(t, condition.IsLengthGreaterThanOrEqual, []ruleCase{
			{name: "empty string", value: "", param: 0, pass: true},
			{name: "any string", value: "abc", param: 0, pass: true},
		})
		runCases(t, condition.IsLengthLessThanOrEqual, []ruleCase{
			{name: "empty string", value: "", param: 0, pass: true},
			{name: "non-empty string", value: "a", param: 0, pass: false},
		})
	})

	t.Run("byte length", func(t *testing.T) {
		runCases(t, condition.IsByteLengthLessThanOrEqual, []ruleCase{
			{name: "ascii fits", value: "abcd", param: 4, pass: true},
			{name: "multibyte exceeds", value: "éé", param: 3, pass: false},
			{name: "threshold beyond 32 bits", value: "abcd", param: int64(5_000_000_000), pass: true},
			{name: "json number threshold", value: "abcd", param: json.Number("5000000000"), pass: true},
		})
	})

	t.Run("word count", func(t *testing.T) {
		runCases(t, condition.IsWordCountGreaterThanOrEqual, []ruleCase{
			{name: "enough words", value: "the quick  brown fox", param: 4, pass: true},
			{name: "too few", value: "hello world", param: 3, pass: false},
		})
		runCases(t, condition.IsWordCountLessThanOrEqual, []ruleCase{
			{name: "few words", value: " one two ", param: 2, pass: true},
			{name: "too many", value: "one two three", param: 2, pass: false},
		})
	})

	t.Run("line count", func(t *testing.T) {
		runCases(t, condition.IsLineCountLessThanOrEqual, []ruleCase{
			{name: "empty", value: "", param: 0, pass: true},
			{name: "single", value: "one", param: 1, pass: true},
			{name: "crlf", value: "one\r\ntwo", param: 2, pass: true},
			{name: "too many", value: "a\nb\nc", param: 2, pass: false},
		})
	})

	t.Run("requirement in message", func(t *testing.T) {
		problems, err := validator.Validate("abc", validator.Conditions{
			condition.IsLengthGreaterThanOrEqual: 1000,
		})
		require.NoError(t, err)
		require.Len(t, problems, 1)
		assert.Equal(t, 1000, problems[0].Requirement)
		assert.Contains(t, problems[0].Message.Long, "1,000")
	})
}
