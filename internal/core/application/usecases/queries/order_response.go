package queries

import (
	"database/sql"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// OrderResponse represents one order on the read side. The item slots are
// flattened into a list carrying the slot label each snapshot occupies.
type OrderResponse struct {
	ID            kernel.UUID
	Status        string
	PaymentMethod string
	TotalCents    int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Customer      *OrderCustomerResponse
	Items         []OrderItemResponse
}

// OrderCustomerResponse is the customer snapshot carried by an order.
type OrderCustomerResponse struct {
	ID    kernel.UUID
	Name  string
	Email string
	CPF   string
}

// OrderItemResponse is one filled item slot.
type OrderItemResponse struct {
	ID         kernel.UUID
	Slot       string
	Name       string
	PriceCents int64
}

// orderColumns is the projection every order query selects, in the order
// scanOrderRow expects.
const orderColumns = `
	id,
	customer_id, customer_name, customer_email, customer_cpf,
	main_id, main_name, main_price,
	side_id, side_name, side_price,
	drink_id, drink_name, drink_price,
	payment_method, status, created_at, updated_at
`

func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var (
		resp          OrderResponse
		id            uuid.UUID
		customerID    uuid.NullUUID
		customerName  sql.NullString
		customerEmail sql.NullString
		customerCPF   sql.NullString
		itemIDs       [3]uuid.NullUUID
		itemNames     [3]sql.NullString
		itemPrices    [3]sql.NullInt64
		status        int
	)

	err := rows.Scan(
		&id,
		&customerID, &customerName, &customerEmail, &customerCPF,
		&itemIDs[0], &itemNames[0], &itemPrices[0],
		&itemIDs[1], &itemNames[1], &itemPrices[1],
		&itemIDs[2], &itemNames[2], &itemPrices[2],
		&resp.PaymentMethod, &status, &resp.CreatedAt, &resp.UpdatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ID = orderID
	resp.Status = order.Status(status).String()

	if customerID.Valid {
		custID, custErr := kernel.UUIDFromBytes(customerID.UUID[:])
		if custErr != nil {
			return OrderResponse{}, custErr
		}
		resp.Customer = &OrderCustomerResponse{
			ID:    custID,
			Name:  customerName.String,
			Email: customerEmail.String,
			CPF:   customerCPF.String,
		}
	}

	slots := []product.Category{product.Lanche, product.Acompanhamento, product.Bebida}
	for i, slot := range slots {
		if !itemIDs[i].Valid {
			continue
		}
		itemID, itemErr := kernel.UUIDFromBytes(itemIDs[i].UUID[:])
		if itemErr != nil {
			return OrderResponse{}, itemErr
		}
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:         itemID,
			Slot:       slot.String(),
			Name:       itemNames[i].String,
			PriceCents: itemPrices[i].Int64,
		})
		resp.TotalCents += itemPrices[i].Int64
	}

	return resp, nil
}
