package core

import "errors"

// ErrInvalidArgument is returned when a caller passes a value that violates
// a constructor or query precondition: a nil actor, a negative size, or a
// non-finite vector component. It signals integration bugs, not runtime
// conditions, so nothing in the simulation retries on it.
var ErrInvalidArgument = errors.New("invalid argument")
