package queries

import (
	"context"

	"fastfood/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler retrieves a single order from the database.
// A read never mutates anything, so repeated calls without an intervening
// command return identical data.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the lookup. Returns an ObjectNotFound error when no order
// has the requested id.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	orderResp, err := scanOrderRow(rows)
	if err != nil {
		return OrderResponse{}, err
	}

	return orderResp, nil
}
