package paymentrepo

import (
	"context"
	"errors"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/payment"
	"fastfood/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPaymentRepository implements PaymentRepository using GORM.
type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPaymentRepository creates a new GORM payment repository.
func NewGormPaymentRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new charge-attempt record. Records are never updated afterwards.
func (r *GormPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsError("payment", aggregate.ID().String())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetAllByOrderID retrieves every charge attempt made for an order, oldest
// first.
func (r *GormPaymentRepository) GetAllByOrderID(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*payment.Payment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PaymentDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	payments := make([]*payment.Payment, 0, len(dtos))
	for _, dto := range dtos {
		p, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		payments = append(payments, p)
	}

	return payments, nil
}
