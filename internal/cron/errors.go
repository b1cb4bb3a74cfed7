package cron

import "errors"

var (
	// ErrMalformedExpression is returned when an expression has fewer than six whitespace-separated parts
	ErrMalformedExpression = errors.New("invalid schedule expression format, expected at least 6 parts")

	// ErrUnrecognizedFormat is returned when a field notation matches none of the grammar rules
	ErrUnrecognizedFormat = errors.New("unrecognized expression format")

	// ErrInvalidRange is returned when a range notation starts after it ends
	ErrInvalidRange = errors.New("invalid range in expression")

	// ErrInvalidInterval is returned when a stepped notation has a step of zero or less
	ErrInvalidInterval = errors.New("invalid interval in expression")

	// ErrNoValidValues is returned when no value of a list notation is in the field's domain
	ErrNoValidValues = errors.New("no listed value in valid options for this component")

	// ErrValueNotInDomain is returned when a single-value notation is outside the field's domain
	ErrValueNotInDomain = errors.New("value not in valid options for this component")
)
