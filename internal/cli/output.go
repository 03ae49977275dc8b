package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"

	"github.com/dmitrymomot/formcheck/pkg/catalog"
	"github.com/dmitrymomot/formcheck/pkg/condition"
	"github.com/dmitrymomot/formcheck/pkg/validator"
)

// OutputFormat selects how command results are printed.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)

func parseOutput(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case OutputText, OutputJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w %q: must be %q or %q", ErrInvalidOutput, s, OutputText, OutputJSON)
	}
}

type validationReport struct {
	Valid    bool               `json:"valid"`
	Problems validator.Problems `json:"problems"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeProblems(w io.Writer, format OutputFormat, problems validator.Problems) error {
	if format == OutputJSON {
		return writeJSON(w, validationReport{Valid: problems.IsEmpty(), Problems: problems})
	}

	if problems.IsEmpty() {
		_, err := fmt.Fprintln(w, "OK")
		return err
	}
	for _, p := range problems {
		if _, err := fmt.Fprintf(w, "%s: %s\n", p.Condition, p.Message.Long); err != nil {
			return err
		}
	}
	return nil
}

type conditionInfo struct {
	Condition condition.Condition `json:"condition"`
	Short     string              `json:"short"`
	Long      string              `json:"long"`
}

// writeConditions lists every condition with its raw message templates.
func writeConditions(w io.Writer, format OutputFormat) error {
	infos := lo.Map(lo.Zip2(condition.All(), catalog.Entries()), func(t lo.Tuple2[condition.Condition, catalog.Entry], _ int) conditionInfo {
		return conditionInfo{Condition: t.A, Short: t.B.Short, Long: t.B.Long}
	})

	if format == OutputJSON {
		return writeJSON(w, infos)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%s\n", info.Condition, info.Short)
	}
	return tw.Flush()
}

func writeMessage(w io.Writer, format OutputFormat, msg catalog.Message) error {
	if format == OutputJSON {
		return writeJSON(w, msg)
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n", msg.Short, msg.Long)
	return err
}
