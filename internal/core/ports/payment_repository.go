package ports

import (
	"context"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for charge-attempt
// records. Records are append-only; the order's status carries the outcome.
type PaymentRepository interface {
	// Add persists a new charge-attempt record.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// GetAllByOrderID retrieves every charge attempt made for an order,
	// oldest first.
	GetAllByOrderID(ctx context.Context, orderID kernel.UUID) ([]*payment.Payment, error)
}
