// Package repository defines error types that are reused across the
// store and the rules engine. These sentinel values allow higher layers
// such as handlers to distinguish between different failure scenarios
// with errors.Is.
package repository

import "errors"

// ErrNotFound is matched by every entity-specific not-found error, so
// callers that only care about "missing" can test for it alone.
var ErrNotFound = errors.New("not found")

// notFoundError names the missing entity while still matching ErrNotFound.
type notFoundError struct{ entity string }

func (e *notFoundError) Error() string        { return e.entity + " not found" }
func (e *notFoundError) Is(target error) bool { return target == ErrNotFound }

// Entity-specific not-found errors.
var (
	ErrPlayerNotFound = error(&notFoundError{entity: "player"})
	ErrZoneNotFound   = error(&notFoundError{entity: "zone"})
	ErrGroupNotFound  = error(&notFoundError{entity: "group"})
	ErrEventNotFound  = error(&notFoundError{entity: "event"})
	ErrQuestNotFound  = error(&notFoundError{entity: "quest"})
)

// ErrPermissionDenied is returned when the actor lacks the role or
// ownership the current affiliation mode requires. Handlers should
// translate this into an HTTP 403 response.
var ErrPermissionDenied = errors.New("permission denied")

// ErrCapacityExceeded is returned when a zone already holds as many
// affiliations as its district allows.
var ErrCapacityExceeded = errors.New("affiliation limit reached")

// ErrInsufficientFunds is returned when a buyer cannot cover a ticket.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrInvalidAmount is returned for negative XP or non-positive deposits.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInvalidArgument covers malformed input such as a blank username, an
// unknown district or a split outside [0,1].
var ErrInvalidArgument = errors.New("invalid argument")

// ErrUsernameTaken is returned when creating a player whose username is
// already registered.
var ErrUsernameTaken = errors.New("username already exists")

// ErrInvalidSetting is returned when a system setting is missing or holds
// a value of the wrong shape.
var ErrInvalidSetting = errors.New("invalid system setting")

// ErrReadOnly is returned when a mutation is attempted inside View.
var ErrReadOnly = errors.New("read-only transaction")
