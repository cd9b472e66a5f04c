package queries

import (
	"context"

	"fastfood/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetNewOrdersQueryHandler retrieves the kitchen intake queue from the
// database: orders that are paid but whose preparation has not started.
type GetNewOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetNewOrdersQueryHandler creates a handler for kitchen intake queries.
// Requires a GORM database connection for query execution.
func NewGetNewOrdersQueryHandler(db *gorm.DB) GetNewOrdersQueryHandler {
	return GetNewOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders come back oldest first so the kitchen
// works the queue in arrival order.
func (h GetNewOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetNewOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE status = ?
		ORDER BY created_at
	`, order.Pago).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		orderResp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
