package commands

import (
	"errors"
	"time"

	"fastfood/internal/pkg/errs"
	"fastfood/internal/pkg/guard"
)

var (
	ErrReconcilePaymentsCommandIsNotConstructed = errors.New(
		"ReconcilePaymentsCommand must be created via NewReconcilePaymentsCommand constructor",
	)
)

// ReconcilePaymentsCommand represents a maintenance request to settle orders
// whose charge outcome was lost to a transport failure. Only pending orders
// older than minAge are inspected, so in-flight checkouts are not touched.
type ReconcilePaymentsCommand struct { //nolint:recvcheck //using for validation
	minAge time.Duration

	guard guard.ConstructorGuard
}

// NewReconcilePaymentsCommand creates a command to reconcile pending orders
// older than minAge against the gateway's records. The age must be positive.
func NewReconcilePaymentsCommand(minAge time.Duration) (ReconcilePaymentsCommand, error) {
	if minAge <= 0 {
		return ReconcilePaymentsCommand{}, errs.NewValueIsInvalidError("minAge")
	}

	return ReconcilePaymentsCommand{
		minAge: minAge,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReconcilePaymentsCommand) Validate() error {
	return c.guard.Validate(ErrReconcilePaymentsCommandIsNotConstructed)
}

// MinAge returns how old a pending order must be before reconciliation looks
// at it.
func (c ReconcilePaymentsCommand) MinAge() time.Duration {
	return c.minAge
}
