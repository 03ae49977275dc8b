package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formcheck/pkg/condition"
)

// DefaultSubject is interpolated when Context.Subject is empty.
const DefaultSubject = "This field"

//go:embed messages.yaml
var messagesYAML []byte

var table = mustLoad(messagesYAML)

var fallback = Entry{Message: Message{Short: "Invalid", Long: "%{subject} is invalid."}}

// Matches named placeholders in the form %{name}.
var placeholderRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Message is the rendered pair of texts describing a failed condition.
type Message struct {
	Short string `json:"short" yaml:"short"`
	Long  string `json:"long" yaml:"long"`
}

// Entry holds the raw templates for one condition.
type Entry struct {
	Message `yaml:",inline"`
	// Absent replaces Message when the requirement is zero or false.
	Absent *Message `yaml:"absent,omitempty"`
	// General replaces Message when no requirement is given.
	General *Message `yaml:"general,omitempty"`
}

// Context carries the values interpolated into templates.
type Context struct {
	Subject     string
	Requirement any
}

// Label renders the message for c. Unknown conditions get a generic "Invalid" message.
func Label(c condition.Condition, ctx Context) Message {
	entry, ok := table[c]
	if !ok {
		entry = fallback
	}

	tmpl := entry.Message
	switch {
	case entry.General != nil && ctx.Requirement == nil:
		tmpl = *entry.General
	case entry.Absent != nil && isAbsent(ctx.Requirement):
		tmpl = *entry.Absent
	}

	params := map[string]string{"subject": ctx.Subject}
	if params["subject"] == "" {
		params["subject"] = DefaultSubject
	}
	if req, ok := formatRequirement(normalizeCount(entry, ctx.Requirement)); ok {
		params["requirement"] = req
	}

	return Message{
		Short: interpolate(tmpl.Short, params),
		Long:  interpolate(tmpl.Long, params),
	}
}

// Lookup returns the raw templates for c.
func Lookup(c condition.Condition) (Entry, bool) {
	entry, ok := table[c]
	return entry, ok
}

// Entries returns the raw templates in condition declaration order.
func Entries() []Entry {
	all := condition.All()
	out := make([]Entry, 0, len(all))
	for _, c := range all {
		out = append(out, table[c])
	}
	return out
}

// interpolate substitutes %{name} placeholders, keeping unknown ones verbatim.
func interpolate(tmpl string, params map[string]string) string {
	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

// isAbsent reports whether a count requirement asks for the absence of a class.
func isAbsent(req any) bool {
	switch v := req.(type) {
	case bool:
		return !v
	case nil:
		return false
	default:
		f, ok := toFloat(v)
		return ok && f == 0
	}
}

// normalizeCount renders a true count toggle as "1" rather than "true".
func normalizeCount(entry Entry, req any) any {
	if b, ok := req.(bool); ok && b && entry.Absent != nil {
		return 1
	}
	return req
}

func mustLoad(data []byte) map[condition.Condition]Entry {
	t, err := load(data)
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return t
}

// load parses the YAML table and checks it against the condition enumeration.
func load(data []byte) (map[condition.Condition]Entry, error) {
	var raw map[string]Entry
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrParseCatalog, err)
	}

	t := make(map[condition.Condition]Entry, len(raw))
	for name, entry := range raw {
		c, err := condition.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownEntry, name)
		}
		if isBlank(entry.Message) {
			return nil, fmt.Errorf("%w: %s", ErrEmptyMessage, name)
		}
		if entry.Absent != nil && isBlank(*entry.Absent) {
			return nil, fmt.Errorf("%w: %s.absent", ErrEmptyMessage, name)
		}
		if entry.General != nil && isBlank(*entry.General) {
			return nil, fmt.Errorf("%w: %s.general", ErrEmptyMessage, name)
		}
		if usesRequirement(entry.Message) && (entry.General == nil || usesRequirement(*entry.General)) {
			return nil, fmt.Errorf("%w: %s", ErrMissingGeneral, name)
		}
		t[c] = entry
	}

	for _, c := range condition.All() {
		if _, ok := t[c]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingEntry, c)
		}
	}

	return t, nil
}

func isBlank(m Message) bool {
	return strings.TrimSpace(m.Short) == "" || strings.TrimSpace(m.Long) == ""
}

func usesRequirement(m Message) bool {
	return strings.Contains(m.Short, "%{requirement}") || strings.Contains(m.Long, "%{requirement}")
}
