package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("embedded table is complete", func(t *testing.T) {
		tbl, err := load(messagesYAML)
		require.NoError(t, err)
		assert.Len(t, tbl, len(table))
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := load([]byte("IsRequired: [unclosed"))
		assert.ErrorIs(t, err, ErrParseCatalog)
	})

	t.Run("unknown condition", func(t *testing.T) {
		_, err := load([]byte("IsAwesome:\n  short: a\n  long: b\n"))
		assert.ErrorIs(t, err, ErrUnknownEntry)
	})

	t.Run("empty template", func(t *testing.T) {
		_, err := load([]byte("IsRequired:\n  short: ''\n  long: b\n"))
		assert.ErrorIs(t, err, ErrEmptyMessage)
	})

	t.Run("empty absent template", func(t *testing.T) {
		_, err := load([]byte("HasLetterCount:\n  short: a\n  long: b\n  absent:\n    short: c\n"))
		assert.ErrorIs(t, err, ErrEmptyMessage)
	})

	t.Run("requirement template without general variant", func(t *testing.T) {
		_, err := load([]byte("IsEqual:\n  short: a %{requirement}\n  long: b\n"))
		assert.ErrorIs(t, err, ErrMissingGeneral)
	})

	t.Run("general variant must not use requirement", func(t *testing.T) {
		_, err := load([]byte("IsEqual:\n  short: a %{requirement}\n  long: b\n  general:\n    short: c %{requirement}\n    long: d\n"))
		assert.ErrorIs(t, err, ErrMissingGeneral)
	})

	t.Run("incomplete table", func(t *testing.T) {
		_, err := load([]byte("IsRequired:\n  short: a\n  long: b\n"))
		assert.ErrorIs(t, err, ErrMissingEntry)
	})
}

func TestInterpolate(t *testing.T) {
	params := map[string]string{"subject": "Email"}
	assert.Equal(t, "Email is bad, %{other}", interpolate("%{subject} is bad, %{other}", params))
}
