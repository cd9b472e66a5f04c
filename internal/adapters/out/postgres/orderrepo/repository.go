package orderrepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"fastfood/internal/core/domain/model/customer"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/core/domain/model/product"
	"fastfood/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsError("order", aggregate.ID().String())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the full state of an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every persisted order.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllInStatus retrieves all orders currently in the given status.
func (r *GormOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", status).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllInStatusCreatedBefore retrieves orders in the given status created
// before the cutoff.
func (r *GormOrderRepository) GetAllInStatusCreatedBefore(
	ctx context.Context,
	status order.Status,
	cutoff time.Time,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Find(&dtos, "status = ? AND created_at < ?", status, cutoff).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// UpdateStatus overwrites the stored status.
func (r *GormOrderRepository) UpdateStatus(
	ctx context.Context,
	id kernel.UUID,
	status order.Status,
	updatedAt time.Time,
) error {
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", id.Bytes()).
		Updates(map[string]any{
			"status":     int(status),
			"updated_at": updatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// UpdateStatusFrom performs a compare-and-swap status update. The write
// applies only when the stored status still equals from; the row count tells
// whether this caller won.
func (r *GormOrderRepository) UpdateStatusFrom(
	ctx context.Context,
	id kernel.UUID,
	from, to order.Status,
	updatedAt time.Time,
) (bool, error) {
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), int(from)).
		Updates(map[string]any{
			"status":     int(to),
			"updated_at": updatedAt,
		})
	if result.Error != nil {
		return false, result.Error
	}

	if result.RowsAffected > 0 {
		return true, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return false, err
	}
	if count == 0 {
		return false, errs.NewObjectNotFoundError("order", id.String())
	}

	return false, nil
}

// UpdateCustomer writes the customer snapshot onto the order row.
func (r *GormOrderRepository) UpdateCustomer(
	ctx context.Context,
	id kernel.UUID,
	cust *customer.Customer,
	updatedAt time.Time,
) error {
	if err := cust.Validate(); err != nil {
		return err
	}

	snapshot := customerToDTO(cust)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", id.Bytes()).
		Updates(map[string]any{
			"customer_id":    snapshot.ID,
			"customer_name":  snapshot.Name,
			"customer_email": snapshot.Email,
			"customer_cpf":   snapshot.CPF,
			"updated_at":     updatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// UpdateItem writes a product snapshot into the given slot on the order row.
// An occupied slot is overwritten.
func (r *GormOrderRepository) UpdateItem(
	ctx context.Context,
	id kernel.UUID,
	slot product.Category,
	item *product.Product,
	updatedAt time.Time,
) error {
	if err := item.Validate(); err != nil {
		return err
	}

	prefix, err := slotColumnPrefix(slot)
	if err != nil {
		return err
	}

	snapshot := itemToDTO(item)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", id.Bytes()).
		Updates(map[string]any{
			prefix + "_id":          snapshot.ID,
			prefix + "_name":        snapshot.Name,
			prefix + "_photo":       snapshot.Photo,
			prefix + "_description": snapshot.Description,
			prefix + "_category":    snapshot.Category,
			prefix + "_price":       snapshot.Price,
			prefix + "_ingredients": snapshot.Ingredients,
			"updated_at":            updatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// UpdatePaymentMethod writes the payment method label onto the order row.
func (r *GormOrderRepository) UpdatePaymentMethod(
	ctx context.Context,
	id kernel.UUID,
	label string,
	updatedAt time.Time,
) error {
	if strings.TrimSpace(label) == "" {
		return errs.NewValueIsRequiredError("payment method")
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", id.Bytes()).
		Updates(map[string]any{
			"payment_method": label,
			"updated_at":     updatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

func slotColumnPrefix(slot product.Category) (string, error) {
	switch slot {
	case product.Lanche:
		return "main", nil
	case product.Acompanhamento:
		return "side", nil
	case product.Bebida:
		return "drink", nil
	default:
		return "", errs.NewValueIsInvalidError("slot")
	}
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
