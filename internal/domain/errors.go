package domain

import "errors"

// Error kinds surfaced by the services. Handlers map them to HTTP
// statuses with errors.Is; storage failures propagate unwrapped.
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidRequest = errors.New("invalid request")
	ErrForbidden      = errors.New("forbidden")
	ErrDuplicate      = errors.New("duplicate")
)
