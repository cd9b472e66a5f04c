// Package customerrepo backs the customer gateway with the customer directory
// table.
package customerrepo

import (
	"time"

	"fastfood/internal/core/domain/model/customer"
	"fastfood/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for directory records.
type CustomerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Email     string `gorm:"uniqueIndex"`
	CPF       string `gorm:"column:cpf;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Email:     aggregate.Email(),
		CPF:       aggregate.CPF().String(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	cpf, err := customer.NewCPF(dto.CPF)
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, dto.Email, cpf, dto.CreatedAt, dto.UpdatedAt)
}
