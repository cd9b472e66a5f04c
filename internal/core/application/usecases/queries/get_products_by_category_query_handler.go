package queries

import (
	"context"
	"strings"

	"fastfood/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProductsByCategoryQueryHandler retrieves catalog entries from the
// database for one menu section.
type GetProductsByCategoryQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsByCategoryQueryHandler creates a handler for catalog listing
// queries. Requires a GORM database connection for query execution.
func NewGetProductsByCategoryQueryHandler(db *gorm.DB) GetProductsByCategoryQueryHandler {
	return GetProductsByCategoryQueryHandler{db: db}
}

// Handle executes the query. Entries come back sorted by name for a stable
// menu display.
func (h GetProductsByCategoryQueryHandler) Handle(
	ctx context.Context,
	query GetProductsByCategoryQuery,
) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]ProductResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			photo,
			description,
			category,
			price,
			ingredients
		FROM products
		WHERE category = ?
		ORDER BY name
	`, query.Category().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var productResp ProductResponse
		var id uuid.UUID
		var ingredients string

		err = rows.Scan(
			&id,
			&productResp.Name,
			&productResp.Photo,
			&productResp.Description,
			&productResp.Category,
			&productResp.PriceCents,
			&ingredients,
		)
		if err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		productResp.ID = productID
		if ingredients != "" {
			productResp.Ingredients = strings.Split(ingredients, ";")
		}

		products = append(products, productResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
