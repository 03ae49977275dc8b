// Package config loads configuration structs from environment variables and
// optional dotenv files.
//
// It wraps `github.com/joho/godotenv` for reading `.env` files and
// `github.com/caarlos0/env/v11` for decoding values into structs annotated
// with `env` tags. Values already present in the environment take precedence
// over dotenv files, so a file never overrides an explicit export.
//
// # Usage
//
//	type Config struct {
//		Env       environment.Environment `env:"ENV" envDefault:"development"`
//		LogLevel  string                  `env:"LOG_LEVEL"`
//		LogFormat string                  `env:"LOG_FORMAT"`
//	}
//
//	var cfg Config
//	err := config.Load(&cfg,
//		config.WithPrefix("FORMCHECK_"),
//		config.WithEnvFiles(".env.local", ".env"),
//	)
//
// Without WithEnvFiles the default `.env` in the working directory is read
// when it exists. WithEnvironment swaps the process environment for a map,
// which keeps tests independent of the host.
//
// # Error Handling
//
// Parsing failures wrap ErrParsingConfig and unreadable dotenv files wrap
// ErrReadingEnvFile; both work with errors.Is. MustLoad panics instead.
package config
