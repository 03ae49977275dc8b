package cli

import (
	"errors"
	"fmt"
)

var (
	// ErrProblemsFound signals a completed run that reported problems. It maps to exit code 1.
	ErrProblemsFound = errors.New("validation problems found")

	ErrNoConditions          = errors.New("no conditions given: use --conditions or --file")
	ErrConflictingSources    = errors.New("--conditions and --file are mutually exclusive")
	ErrUnsupportedFileFormat = errors.New("unsupported conditions file format")
	ErrDecodeConditions      = errors.New("failed to decode conditions")
	ErrDecodeValue           = errors.New("failed to decode value")
	ErrInvalidOutput         = errors.New("invalid output format")
)

// CommandError ties a failure to the subcommand that produced it.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

func commandError(command string, err error) error {
	if err == nil || errors.Is(err, ErrProblemsFound) {
		return err
	}
	return &CommandError{Command: command, Err: err}
}
