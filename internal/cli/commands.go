package cli

import (
	"errors"
	"os"
	"slices"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formcheck/pkg/catalog"
	"github.com/dmitrymomot/formcheck/pkg/condition"
	"github.com/dmitrymomot/formcheck/pkg/logger"
	"github.com/dmitrymomot/formcheck/pkg/validator"
)

type validateFlags struct {
	value      string
	jsonValue  bool
	conditions string
	file       string
	subject    string
	output     string
}

func (a *app) validateCommand() *cobra.Command {
	var flags validateFlags

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a value against a condition set",
		Long: `Evaluate --value against the conditions given inline as JSON or read from
a YAML or JSON file, and print every failed condition.

Exit status is 0 when the value passes, 1 when problems were found and 2 on
configuration errors such as unknown conditions or malformed parameters.

Examples:
  # Inline JSON conditions
  formcheck validate --value "user@example" --conditions '{"IsRequired": true, "IsEmailAddress": true}'

  # Conditions from a file, JSON output
  formcheck validate --value "hunter2" --file password.yaml --subject Password --output json

  # Validate a number instead of a string
  formcheck validate --value 42 --json --conditions '{"IsGreaterThan": 100}'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return commandError("validate", a.runValidate(cmd, flags))
		},
	}

	cmd.Flags().StringVar(&flags.value, "value", "", "value to validate")
	cmd.Flags().BoolVar(&flags.jsonValue, "json", false, "decode --value as a JSON literal")
	cmd.Flags().StringVar(&flags.conditions, "conditions", "", "condition set as a JSON object")
	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "condition set file (.yaml, .yml or .json)")
	cmd.Flags().StringVar(&flags.subject, "subject", "", "field name used in messages")
	cmd.Flags().StringVarP(&flags.output, "output", "o", a.cfg.Output, "output format: text, json")

	return cmd
}

func (a *app) runValidate(cmd *cobra.Command, flags validateFlags) error {
	ctx := cmd.Context()

	format, err := parseOutput(flags.output)
	if err != nil {
		return err
	}

	conditions, source, err := loadConditions(flags)
	if err != nil {
		return err
	}

	var value any = flags.value
	if flags.jsonValue {
		if value, err = decodeJSONValue(flags.value); err != nil {
			return err
		}
	}

	keys := lo.Keys(conditions)
	slices.Sort(keys)
	a.log.DebugContext(ctx, "conditions loaded",
		logger.Source(source),
		logger.Conditions(keys),
		logger.Subject(flags.subject),
	)

	problems, err := validator.Validate(value, conditions, validator.WithSubject(flags.subject))
	if err != nil {
		a.log.ErrorContext(ctx, "validation aborted", logger.Error(err))
		return err
	}

	a.log.InfoContext(ctx, "validation finished", logger.ProblemCount(len(problems)))
	for _, p := range problems {
		a.log.DebugContext(ctx, "condition failed", logger.Condition(p.Condition))
	}

	if err := writeProblems(cmd.OutOrStdout(), format, problems); err != nil {
		return err
	}
	if !problems.IsEmpty() {
		return ErrProblemsFound
	}
	return nil
}

// loadConditions returns the condition set and a description of where it came from.
func loadConditions(flags validateFlags) (validator.Conditions, string, error) {
	switch {
	case flags.conditions != "" && flags.file != "":
		return nil, "", ErrConflictingSources
	case flags.conditions != "":
		conditions, err := decodeJSONConditions([]byte(flags.conditions))
		return conditions, "inline", err
	case flags.file != "":
		data, err := os.ReadFile(flags.file)
		if err != nil {
			return nil, "", errors.Join(ErrDecodeConditions, err)
		}
		conditions, err := decodeConditionsFile(flags.file, data)
		return conditions, flags.file, err
	default:
		return nil, "", ErrNoConditions
	}
}

func (a *app) conditionsCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "conditions",
		Short: "List every supported condition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutput(output)
			if err != nil {
				return commandError("conditions", err)
			}
			return commandError("conditions", writeConditions(cmd.OutOrStdout(), format))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", a.cfg.Output, "output format: text, json")
	return cmd
}

func (a *app) labelCommand() *cobra.Command {
	var (
		subject     string
		requirement string
		output      string
	)

	cmd := &cobra.Command{
		Use:   "label <Condition>",
		Short: "Render the message for a condition",
		Long: `Render the short and long message of a condition.

Examples:
  formcheck label IsLengthGreaterThanOrEqual --subject Password --requirement 8
  formcheck label HasNumberCount --requirement false`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutput(output)
			if err != nil {
				return commandError("label", err)
			}

			c, err := condition.Parse(args[0])
			if err != nil {
				return commandError("label", err)
			}

			ctx := catalog.Context{Subject: subject}
			if cmd.Flags().Changed("requirement") {
				ctx.Requirement = parseRequirement(requirement)
			}

			a.log.DebugContext(cmd.Context(), "rendering label", logger.Condition(c))
			return commandError("label", writeMessage(cmd.OutOrStdout(), format, catalog.Label(c, ctx)))
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "field name used in messages")
	cmd.Flags().StringVar(&requirement, "requirement", "", "requirement interpolated into messages")
	cmd.Flags().StringVarP(&output, "output", "o", a.cfg.Output, "output format: text, json")
	return cmd
}
