package domain

import "errors"

var (
	ErrInvalidDuration     = errors.New("interview duration must be a positive number of minutes")
	ErrInvalidInterval     = errors.New("interval start must be before end")
	ErrTemplateNotFound    = errors.New("interview template not found")
	ErrProviderUnavailable = errors.New("free/busy provider unavailable")
	ErrMalformedBusyData   = errors.New("malformed busy interval data")
)
