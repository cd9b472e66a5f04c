package queries

import (
	"errors"

	"fastfood/internal/pkg/guard"
)

var (
	ErrGetNewOrdersQueryIsNotConstructed = errors.New(
		"GetNewOrdersQuery must be created via NewGetNewOrdersQuery constructor",
	)
)

// GetNewOrdersQuery retrieves paid orders the kitchen has not started yet.
// This is the kitchen's intake queue.
type GetNewOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetNewOrdersQuery creates a query to retrieve the kitchen intake queue.
// This is a parameterless query.
func NewGetNewOrdersQuery() GetNewOrdersQuery {
	return GetNewOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetNewOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetNewOrdersQueryIsNotConstructed)
}
