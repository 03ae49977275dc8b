package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formcheck/pkg/condition"
	"github.com/dmitrymomot/formcheck/pkg/validator"
)

// decodeJSONConditions keeps numbers as json.Number so integer thresholds
// survive without float conversion.
func decodeJSONConditions(data []byte) (validator.Conditions, error) {
	var raw map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.Join(ErrDecodeConditions, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after object", ErrDecodeConditions)
	}
	return toConditions(raw), nil
}

func decodeYAMLConditions(data []byte) (validator.Conditions, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrDecodeConditions, err)
	}
	return toConditions(raw), nil
}

// decodeConditionsFile picks the decoder from the file extension.
func decodeConditionsFile(path string, data []byte) (validator.Conditions, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return decodeJSONConditions(data)
	case ".yaml", ".yml":
		return decodeYAMLConditions(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFileFormat, ext)
	}
}

// Keys are not checked here; the validator reports unknown ones.
func toConditions(raw map[string]any) validator.Conditions {
	conditions := make(validator.Conditions, len(raw))
	for k, v := range raw {
		conditions[condition.Condition(k)] = v
	}
	return conditions
}

// decodeJSONValue reads a single JSON literal.
func decodeJSONValue(s string) (any, error) {
	var v any
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, errors.Join(ErrDecodeValue, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after value", ErrDecodeValue)
	}
	return v, nil
}

// parseRequirement reads a literal for the label command: JSON numbers and
// booleans keep their type, anything else is taken as a string.
func parseRequirement(s string) any {
	v, err := decodeJSONValue(s)
	if err != nil {
		return s
	}
	switch v.(type) {
	case json.Number, bool:
		return v
	default:
		return s
	}
}
