package queries

import (
	"errors"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/guard"
)

var (
	ErrGetOrderByIDQueryIsNotConstructed = errors.New(
		"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
	)
)

// GetOrderByIDQuery retrieves a single order with its customer snapshot and
// filled item slots.
type GetOrderByIDQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query to retrieve one order by id.
func NewGetOrderByIDQuery(orderID kernel.UUID) (GetOrderByIDQuery, error) {
	query := GetOrderByIDQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return GetOrderByIDQuery{}, err
	}
	query.orderID = orderID

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// OrderID returns the requested order identifier.
func (q GetOrderByIDQuery) OrderID() kernel.UUID {
	return q.orderID
}
