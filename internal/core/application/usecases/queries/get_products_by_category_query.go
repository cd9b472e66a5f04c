package queries

import (
	"errors"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/product"
	"fastfood/internal/pkg/guard"
)

var (
	ErrGetProductsByCategoryQueryIsNotConstructed = errors.New(
		"GetProductsByCategoryQuery must be created via NewGetProductsByCategoryQuery constructor",
	)
)

// GetProductsByCategoryQuery retrieves the catalog listing for one menu
// section. The section arrives as an external label and must parse to a
// defined category.
type GetProductsByCategoryQuery struct { //nolint:recvcheck //using for validation
	category product.Category

	guard guard.ConstructorGuard
}

// NewGetProductsByCategoryQuery creates a query to list one menu section.
func NewGetProductsByCategoryQuery(category string) (GetProductsByCategoryQuery, error) {
	query := GetProductsByCategoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	parsed, err := product.ParseCategory(category)
	if err != nil {
		return GetProductsByCategoryQuery{}, err
	}
	query.category = parsed

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductsByCategoryQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsByCategoryQueryIsNotConstructed)
}

// Category returns the parsed menu section.
func (q GetProductsByCategoryQuery) Category() product.Category {
	return q.category
}

// ProductResponse represents one catalog entry.
type ProductResponse struct {
	ID          kernel.UUID
	Name        string
	Photo       string
	Description string
	Category    string
	PriceCents  int64
	Ingredients []string
}
