package core

import "errors"

// ErrInvalidArgument reports a malformed size, length or range parameter.
//
// Package-level errors across the module wrap it, so callers can test any
// parameter failure with errors.Is(err, core.ErrInvalidArgument).
var ErrInvalidArgument = errors.New("invalid argument")
