package port

import "errors"

var (
	// ErrNotFound is returned when the entity does not exist or is soft-deleted.
	ErrNotFound = errors.New("not found")
	// ErrUnauthenticated is returned for mutations attempted without a user.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrInvalidInput wraps validation failures on user supplied data.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEventFull is returned when registering for an event at capacity.
	ErrEventFull = errors.New("event is full")
)
