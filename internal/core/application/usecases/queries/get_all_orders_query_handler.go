package queries

import (
	"context"

	"fastfood/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves orders from the database for the board
// display. Reads the denormalized order rows directly, bypassing the domain.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders.
// Results come back in kitchen-priority order so the board reads top to
// bottom: ready first, pending last, oldest first within a status.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		ORDER BY
			CASE status
				WHEN ? THEN 0
				WHEN ? THEN 1
				WHEN ? THEN 2
				WHEN ? THEN 3
				ELSE 4
			END,
			created_at
	`, order.Pronto, order.EmPreparacao, order.Pago, order.Pendente).Rows()
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
