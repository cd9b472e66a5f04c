// Package productrepo backs the product gateway with the catalog table.
package productrepo

import (
	"strings"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/product"

	"github.com/google/uuid"
)

const ingredientSeparator = ";"

// ProductDTO represents the database structure for catalog entries.
type ProductDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Photo       string
	Description string
	Category    string `gorm:"index"`
	Price       int64
	Ingredients string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Photo:       aggregate.Photo(),
		Description: aggregate.Description(),
		Category:    aggregate.Category().String(),
		Price:       aggregate.Price().Cents(),
		Ingredients: strings.Join(aggregate.Ingredients(), ingredientSeparator),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	category, err := product.ParseCategory(dto.Category)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoneyFromCents(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id,
		dto.Name,
		dto.Photo,
		dto.Description,
		category,
		price,
		strings.Split(dto.Ingredients, ingredientSeparator),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
