package cli

import (
	"github.com/dmitrymomot/formcheck/pkg/config"
	"github.com/dmitrymomot/formcheck/pkg/environment"
)

// EnvPrefix namespaces every environment variable the CLI reads.
const EnvPrefix = "FORMCHECK_"

// Config is read from FORMCHECK_* variables and an optional .env file.
type Config struct {
	Env environment.Environment `env:"ENV" envDefault:"development"`
	// LogLevel and LogFormat override the environment defaults when set.
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
	// Output is the default for the --output flag.
	Output string `env:"OUTPUT" envDefault:"text"`
}

// LoadConfig reads Config from the process environment.
func LoadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	opts = append([]config.Option{config.WithPrefix(EnvPrefix)}, opts...)
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
