package commands

import (
	"errors"
	"time"

	"fastfood/internal/pkg/errs"
	"fastfood/internal/pkg/guard"
)

var (
	ErrCancelStaleOrdersCommandIsNotConstructed = errors.New(
		"CancelStaleOrdersCommand must be created via NewCancelStaleOrdersCommand constructor",
	)
)

// CancelStaleOrdersCommand represents a maintenance request to cancel pending
// orders that were never paid within the allowed window.
type CancelStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewCancelStaleOrdersCommand creates a command to cancel pending orders older
// than maxAge. The age must be positive.
func NewCancelStaleOrdersCommand(maxAge time.Duration) (CancelStaleOrdersCommand, error) {
	if maxAge <= 0 {
		return CancelStaleOrdersCommand{}, errs.NewValueIsInvalidError("maxAge")
	}

	return CancelStaleOrdersCommand{
		maxAge: maxAge,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleOrdersCommandIsNotConstructed)
}

// MaxAge returns how long a pending order may stay unpaid before it is
// cancelled.
func (c CancelStaleOrdersCommand) MaxAge() time.Duration {
	return c.maxAge
}
