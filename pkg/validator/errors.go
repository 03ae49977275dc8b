package validator

import "errors"

var (
	// ErrUnsupportedCondition is returned when a condition set names a condition
	// outside the enumeration. Nothing is evaluated in that case.
	ErrUnsupportedCondition = errors.New("unsupported configuration property")

	// ErrInvalidParameter is returned when a condition parameter has the wrong type or value.
	ErrInvalidParameter = errors.New("invalid parameter")
)
