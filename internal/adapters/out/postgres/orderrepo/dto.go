// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"strings"
	"time"

	"fastfood/internal/core/domain/model/customer"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ingredientSeparator joins a snapshot's ingredient list into one text column.
const ingredientSeparator = ";"

// OrderDTO represents the database structure for persisting order aggregates.
// The customer and the three item slots are denormalized into the order row
// itself: they are owned snapshots, not references, so later catalog or
// directory edits never show through on persisted orders.
type OrderDTO struct {
	ID            uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Customer      CustomerSnapshotDTO `gorm:"embedded;embeddedPrefix:customer_"`
	Main          ItemSnapshotDTO     `gorm:"embedded;embeddedPrefix:main_"`
	Side          ItemSnapshotDTO     `gorm:"embedded;embeddedPrefix:side_"`
	Drink         ItemSnapshotDTO     `gorm:"embedded;embeddedPrefix:drink_"`
	PaymentMethod string
	Status        int `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerSnapshotDTO is the customer snapshot embedded in the order row.
// A nil ID means the order is anonymous.
type CustomerSnapshotDTO struct {
	ID    *uuid.UUID `gorm:"type:uuid"`
	Name  string
	Email string
	CPF   string `gorm:"column:cpf"`
}

// ItemSnapshotDTO is one item slot embedded in the order row.
// A nil ID means the slot is empty.
type ItemSnapshotDTO struct {
	ID          *uuid.UUID `gorm:"type:uuid"`
	Name        string
	Photo       string
	Description string
	Category    string
	Price       int64
	Ingredients string
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		Customer:      customerToDTO(aggregate.Customer()),
		Main:          itemToDTO(aggregate.Main()),
		Side:          itemToDTO(aggregate.Side()),
		Drink:         itemToDTO(aggregate.Drink()),
		PaymentMethod: aggregate.PaymentMethod(),
		Status:        int(aggregate.Status()),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}
}

func customerToDTO(cust *customer.Customer) CustomerSnapshotDTO {
	if cust == nil {
		return CustomerSnapshotDTO{}
	}

	id := cust.ID().Bytes()
	return CustomerSnapshotDTO{
		ID:    &id,
		Name:  cust.Name(),
		Email: cust.Email(),
		CPF:   cust.CPF().String(),
	}
}

func itemToDTO(item *product.Product) ItemSnapshotDTO {
	if item == nil {
		return ItemSnapshotDTO{}
	}

	id := item.ID().Bytes()
	return ItemSnapshotDTO{
		ID:          &id,
		Name:        item.Name(),
		Photo:       item.Photo(),
		Description: item.Description(),
		Category:    item.Category().String(),
		Price:       item.Price().Cents(),
		Ingredients: strings.Join(item.Ingredients(), ingredientSeparator),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Snapshots are restored with the order's own timestamps; the source records'
// timestamps are not part of the snapshot.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	cust, err := customerFromDTO(dto.Customer, dto.CreatedAt, dto.UpdatedAt)
	if err != nil {
		return nil, err
	}

	main, err := itemFromDTO(dto.Main, dto.CreatedAt, dto.UpdatedAt)
	if err != nil {
		return nil, err
	}
	side, err := itemFromDTO(dto.Side, dto.CreatedAt, dto.UpdatedAt)
	if err != nil {
		return nil, err
	}
	drink, err := itemFromDTO(dto.Drink, dto.CreatedAt, dto.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		cust,
		main, side, drink,
		dto.PaymentMethod,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func customerFromDTO(dto CustomerSnapshotDTO, createdAt, updatedAt time.Time) (*customer.Customer, error) {
	if dto.ID == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes((*dto.ID)[:])
	if err != nil {
		return nil, err
	}

	cpf, err := customer.NewCPF(dto.CPF)
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, dto.Email, cpf, createdAt, updatedAt)
}

func itemFromDTO(dto ItemSnapshotDTO, createdAt, updatedAt time.Time) (*product.Product, error) {
	if dto.ID == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes((*dto.ID)[:])
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
		createdAt,
		updatedAt,
	)
}
