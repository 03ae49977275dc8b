package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcheck/pkg/condition"
	"github.com/dmitrymomot/formcheck/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("run", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "run", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	attr := logger.Errors(errors.New("first"), nil, errors.New("third"))
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "0", g[0].Key)
	assert.Equal(t, "2", g[1].Key)

	assert.True(t, logger.Errors(nil, nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))

	attr := logger.Error(errors.New("boom"))
	assert.Equal(t, "error", attr.Key)
}

func TestDomainAttrs(t *testing.T) {
	assert.Equal(t, "IsRequired", logger.Condition(condition.IsRequired).Value.String())
	assert.Equal(t, int64(3), logger.ProblemCount(3).Value.Int64())
	assert.Equal(t, "cli", logger.Component("cli").Value.String())
	assert.Equal(t, "rules.yaml", logger.Source("rules.yaml").Value.String())
	assert.True(t, logger.Subject("").Equal(slog.Attr{}))
	assert.Equal(t, "subject", logger.Subject("Email").Key)

	names := logger.Conditions([]condition.Condition{condition.IsRequired, condition.IsEmailAddress}).Value.Any()
	assert.Equal(t, []string{"IsRequired", "IsEmailAddress"}, names)
}
