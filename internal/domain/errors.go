package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// booking does not exist in the store.
// Handlers map this to 404 on reads and 405 on writes.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when a submitted booking is missing a required
// field or carries a malformed one.
// Handlers map this to 400 on update and 500 on create.
var ErrValidation = errors.New("validation error")
