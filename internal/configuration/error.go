package configuration

import "errors"

var (
	// ErrUnknownEncoding is an error that occurs when a configured text
	// encoding has no known IANA name or is not supported.
	ErrUnknownEncoding = errors.New("unknown or unsupported text encoding")

	// ErrInvalidLogLevel is an error that occurs when a configured log level
	// is not one of debug, info, warn or error.
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrInvalidBool is an error that occurs when a configured switch is not
	// a boolean.
	ErrInvalidBool = errors.New("invalid boolean")
)
