package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formcheck/pkg/environment"
	"github.com/dmitrymomot/formcheck/pkg/logger"
)

// Exit codes returned by Execute.
const (
	ExitOK       = 0
	ExitProblems = 1
	ExitError    = 2
)

const serviceName = "formcheck"

type app struct {
	cfg Config
	log *slog.Logger
}

// NewRootCommand builds the formcheck command tree.
func NewRootCommand(cfg Config) *cobra.Command {
	a := &app{cfg: cfg, log: slog.New(slog.DiscardHandler)}

	root := &cobra.Command{
		Use:   "formcheck",
		Short: "Validate values against declarative form conditions",
		Long: `formcheck evaluates a single value against a set of conditions such as
IsRequired, IsEmailAddress or IsLengthGreaterThanOrEqual and prints every
condition the value fails, with a human-readable message.

Environment:
  FORMCHECK_ENV          development, staging or production
  FORMCHECK_LOG_LEVEL    debug, info, warn or error
  FORMCHECK_LOG_FORMAT   text or json
  FORMCHECK_OUTPUT       default for --output`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.AddCommand(
		a.validateCommand(),
		a.conditionsCommand(),
		a.labelCommand(),
	)
	return root
}

// setup builds the diagnostics logger. It writes to the command's stderr.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	opts := []logger.Option{
		logger.WithEnvironment(a.cfg.Env, serviceName),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextExtractors(environment.LoggerExtractor()),
	}
	if a.cfg.LogLevel != "" {
		level, err := logger.ParseLevel(a.cfg.LogLevel)
		if err != nil {
			return err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if a.cfg.LogFormat != "" {
		format, err := logger.ParseFormat(a.cfg.LogFormat)
		if err != nil {
			return err
		}
		opts = append(opts, logger.WithFormat(format))
	}

	a.log = logger.New(opts...).With(logger.Component(cmd.Name()))
	cmd.SetContext(environment.WithContext(cmd.Context(), a.cfg.Env))
	return nil
}

// Execute loads the configuration, runs the command named by args and maps
// the outcome to an exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}

	root := NewRootCommand(cfg)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	switch err := root.ExecuteContext(ctx); {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrProblemsFound):
		return ExitProblems
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}
}
