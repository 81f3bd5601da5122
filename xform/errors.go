package xform

import "errors"

var (
	ErrInvalidChoice   = errors.New("invalid choice")
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrNotScalar       = errors.New("not a scalar value")
)
