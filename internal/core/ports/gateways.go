package ports

import (
	"context"

	"fastfood/internal/core/domain/model/customer"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/product"
)

// CustomerGateway looks up customers in the directory.
// Implemented outside the core; the core only consumes it.
type CustomerGateway interface {
	// Get retrieves a customer by id.
	// Returns an ObjectNotFound error when the customer does not exist.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}

// ProductGateway looks up products in the catalog.
type ProductGateway interface {
	// Get retrieves a product by id.
	// Returns an ObjectNotFound error when the product does not exist.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetByCategory retrieves every product in a menu section.
	GetByCategory(ctx context.Context, category product.Category) ([]*product.Product, error)
}

// ChargeResult is the gateway's answer to a charge or status inquiry.
type ChargeResult struct {
	// Approved reports whether the gateway confirmed the charge.
	Approved bool

	// Reference is the gateway's own identifier for the transaction.
	// Empty when the gateway has no record of the order.
	Reference string
}

// PaymentGateway is the only outward call for money movement.
//
// Charge may be slow or fail with a transport error after the remote side has
// in fact confirmed the charge; CheckStatus exists so a reconciliation pass
// can recover the truth afterwards. There is no refund or partial-payment
// operation.
type PaymentGateway interface {
	// Charge attempts to collect amount for the given order.
	// A returned error means the outcome is unknown, not that the charge
	// failed; a ChargeResult with Approved=false is a definitive decline.
	Charge(ctx context.Context, orderID kernel.UUID, amount kernel.Money) (ChargeResult, error)

	// CheckStatus reports the gateway's recorded outcome for an order.
	CheckStatus(ctx context.Context, orderID kernel.UUID) (ChargeResult, error)
}
