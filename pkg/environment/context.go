package environment

import (
	"context"
	"fmt"
	"strings"
)

// Environment names the deployment the CLI runs in.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Parse normalizes an environment name. Short forms "dev", "stage" and "prod"
// are accepted; an empty string means Development.
func Parse(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dev", string(Development):
		return Development, nil
	case "stage", string(Staging):
		return Staging, nil
	case "prod", string(Production):
		return Production, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEnvironment, s)
	}
}

// UnmarshalText lets config loaders decode FORMCHECK_ENV directly.
func (e *Environment) UnmarshalText(text []byte) error {
	env, err := Parse(string(text))
	if err != nil {
		return err
	}
	*e = env
	return nil
}

type contextKey struct{}

// WithContext stores env in ctx.
func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext returns the stored environment, or "" when none was set.
func FromContext(ctx context.Context) Environment {
	if ctx == nil {
		return ""
	}
	env, _ := ctx.Value(contextKey{}).(Environment)
	return env
}

func IsProduction(ctx context.Context) bool {
	return FromContext(ctx) == Production
}

func IsDevelopment(ctx context.Context) bool {
	return FromContext(ctx) == Development
}
