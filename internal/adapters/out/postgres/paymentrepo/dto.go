// Package paymentrepo persists the append-only charge-attempt records.
package paymentrepo

import (
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO represents the database structure for charge-attempt records.
type PaymentDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	State      string
	Amount     int64
	Method     string
	GatewayRef string
	CreatedAt  time.Time
}

// TableName specifies the database table name for payment records.
func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(aggregate *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:         aggregate.ID().Bytes(),
		OrderID:    aggregate.OrderID().Bytes(),
		State:      aggregate.State().String(),
		Amount:     aggregate.Amount().Cents(),
		Method:     aggregate.Method(),
		GatewayRef: aggregate.GatewayRef(),
		CreatedAt:  aggregate.CreatedAt(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	state, err := payment.ParseState(dto.State)
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoneyFromCents(dto.Amount)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(id, orderID, state, amount, dto.Method, dto.GatewayRef, dto.CreatedAt)
}
