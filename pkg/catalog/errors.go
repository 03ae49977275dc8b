package catalog

import "errors"

var (
	// ErrParseCatalog is returned when the message table is not valid YAML.
	ErrParseCatalog = errors.New("failed to parse message catalog")

	// ErrUnknownEntry is returned when the table defines a condition outside the enumeration.
	ErrUnknownEntry = errors.New("message catalog defines an unknown condition")

	// ErrMissingEntry is returned when a condition has no messages.
	ErrMissingEntry = errors.New("message catalog is missing a condition")

	// ErrMissingGeneral is returned when a template uses %{requirement} without a general variant.
	ErrMissingGeneral = errors.New("message catalog entry has no requirement-less variant")

	// ErrEmptyMessage is returned when an entry has a blank short or long template.
	ErrEmptyMessage = errors.New("message catalog entry has an empty template")
)
