package productrepo

import (
	"context"
	"errors"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/product"
	"fastfood/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements the ProductGateway port over the catalog
// table.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Add saves a new catalog entry.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsError("product", aggregate.ID().String())
		}
		return err
	}

	return nil
}

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCategory retrieves every product in a menu section, sorted by name.
func (r *GormProductRepository) GetByCategory(
	ctx context.Context,
	category product.Category,
) ([]*product.Product, error) {
	if err := category.Validate(); err != nil {
		return nil, err
	}

	var dtos []ProductDTO
	err := r.db.WithContext(ctx).
		Order("name").
		Find(&dtos, "category = ?", category.String()).Error
	if err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		products = append(products, p)
	}

	return products, nil
}
