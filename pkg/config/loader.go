package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// defaultEnvFile is read when present and ignored otherwise.
const defaultEnvFile = ".env"

type options struct {
	files       []string
	prefix      string
	environment map[string]string
}

// Option configures Load.
type Option func(*options)

// WithEnvFiles reads the given dotenv files instead of the default ".env".
// Missing files are an error. Earlier files win over later ones.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.files = append(o.files, paths...)
	}
}

// WithPrefix is prepended to every env tag, e.g. "FORMCHECK_".
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithEnvironment replaces the process environment as the source of values.
func WithEnvironment(vars map[string]string) Option {
	return func(o *options) {
		o.environment = vars
	}
}

// Load fills v from the environment using `env` struct tags. Values from
// dotenv files only fill keys the environment does not set.
//
// Example:
//
//	type Config struct {
//		Env      environment.Environment `env:"ENV" envDefault:"development"`
//		LogLevel string                  `env:"LOG_LEVEL"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("FORMCHECK_")); err != nil {
//		// handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	vars := o.environment
	if vars == nil {
		vars = env.ToMap(os.Environ())
	}

	fileVars, err := readEnvFiles(o.files)
	if err != nil {
		return err
	}

	merged := make(map[string]string, len(vars)+len(fileVars))
	for k, val := range fileVars {
		merged[k] = val
	}
	for k, val := range vars {
		merged[k] = val
	}

	if err := env.ParseWithOptions(v, env.Options{
		Environment: merged,
		Prefix:      o.prefix,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

func readEnvFiles(paths []string) (map[string]string, error) {
	if len(paths) == 0 {
		vars, err := godotenv.Read(defaultEnvFile)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		if err != nil {
			return nil, errors.Join(ErrReadingEnvFile, err)
		}
		return vars, nil
	}

	// godotenv.Read lets later files override earlier ones; reverse so the first wins.
	merged := make(map[string]string)
	for i := len(paths) - 1; i >= 0; i-- {
		vars, err := godotenv.Read(paths[i])
		if err != nil {
			return nil, errors.Join(ErrReadingEnvFile, fmt.Errorf("%s: %w", paths[i], err))
		}
		for k, val := range vars {
			merged[k] = val
		}
	}
	return merged, nil
}
