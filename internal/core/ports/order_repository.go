package ports

import (
	"context"
	"time"

	"fastfood/internal/core/domain/model/customer"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/core/domain/model/product"
)

// OrderRepository defines the persistence contract for order aggregates.
// It is the single authoritative owner of order records; every method is
// atomic at single-order granularity.
type OrderRepository interface {
	// Add persists a new order aggregate.
	// Returns an AlreadyExists error when the identifier is taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the full state of an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFound error when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every persisted order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetAllInStatusCreatedBefore retrieves orders in the given status created
	// before the cutoff. Used by the maintenance jobs to find stuck orders.
	GetAllInStatusCreatedBefore(ctx context.Context, status order.Status, cutoff time.Time) ([]*order.Order, error)

	// UpdateStatus overwrites the stored status and refreshes the updated
	// timestamp. Returns an ObjectNotFound error when the order does not exist.
	UpdateStatus(ctx context.Context, id kernel.UUID, status order.Status, updatedAt time.Time) error

	// UpdateStatusFrom performs a compare-and-swap status update: the write
	// applies only when the stored status still equals from. Returns false
	// with a nil error when the guard fails, and an ObjectNotFound error when
	// the order does not exist. This is the serialization point that keeps two
	// concurrent payment confirmations from both committing.
	UpdateStatusFrom(ctx context.Context, id kernel.UUID, from, to order.Status, updatedAt time.Time) (bool, error)

	// UpdateCustomer writes the customer snapshot onto the order.
	UpdateCustomer(ctx context.Context, id kernel.UUID, cust *customer.Customer, updatedAt time.Time) error

	// UpdateItem writes a product snapshot into the given slot (last writer wins).
	UpdateItem(ctx context.Context, id kernel.UUID, slot product.Category, item *product.Product, updatedAt time.Time) error

	// UpdatePaymentMethod writes the payment method label onto the order.
	UpdatePaymentMethod(ctx context.Context, id kernel.UUID, label string, updatedAt time.Time) error
}
