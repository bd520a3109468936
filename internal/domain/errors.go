package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist, or exists but belongs to a different rider.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when rider input is missing or contradictory
// (e.g. origin equals destination, malformed date). It is raised before any
// network call and is never retried.
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrQueryFailed is returned when the external schedule lookup failed or
// returned unusable data. Use errors.As with *QueryError to recover the
// upstream detail message.
var ErrQueryFailed = errors.New("query failed")

// ErrIncompleteContext is returned when a reservation is attempted without an
// authenticated rider or without a selected schedule entry / stop station.
// Handlers should map this to HTTP 401 with a prompt to log in.
var ErrIncompleteContext = errors.New("incomplete context")

// ErrInvalidTransition is returned when a lifecycle operation is not allowed
// from the reservation's current status. Stored state is left untouched.
var ErrInvalidTransition = errors.New("invalid transition")

// QueryError carries the human-readable detail reported by the schedule
// service. Detail is shown to the rider verbatim.
type QueryError struct {
	// Status is the upstream HTTP status, or 0 for transport failures.
	Status int
	Detail string
}

func (e *QueryError) Error() string {
	return "query failed: " + e.Detail
}

// Unwrap lets errors.Is(err, ErrQueryFailed) match any *QueryError.
func (e *QueryError) Unwrap() error {
	return ErrQueryFailed
}
