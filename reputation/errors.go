package reputation

import (
	"errors"
	"fmt"

	"github.com/trustmesh/reputation/model/market"
)

var (
	// ErrInvalidAddress indicates that an operation was invoked with the zero
	// address as its subject.
	ErrInvalidAddress = errors.New("invalid account address")

	// ErrAlreadyBanned indicates an attempt to ban an account that is already banned.
	ErrAlreadyBanned = errors.New("already banned")

	// ErrNotBanned indicates an attempt to unban an account that is not banned.
	ErrNotBanned = errors.New("not banned")

	// ErrInvalidEvent indicates that an unknown event kind was submitted.
	ErrInvalidEvent = errors.New("invalid event kind")

	// ErrEmptyReason indicates an administrative ban without a reason.
	ErrEmptyReason = errors.New("ban reason must not be empty")
)

// UnauthorizedError indicates that the caller does not hold the capability
// required by the operation.
type UnauthorizedError struct {
	caller     market.Address
	capability string
}

// NewUnauthorizedErr returns a new UnauthorizedError for the given caller and
// missing capability.
func NewUnauthorizedErr(caller market.Address, capability string) UnauthorizedError {
	return UnauthorizedError{caller: caller, capability: capability}
}

func (e UnauthorizedError) Error() string {
	return fmt.Sprintf("caller %s is not authorized: missing %s capability", e.caller, e.capability)
}

// IsUnauthorizedError returns true if an error is UnauthorizedError.
func IsUnauthorizedError(err error) bool {
	var e UnauthorizedError
	return errors.As(err, &e)
}
