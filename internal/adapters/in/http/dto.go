package http

import (
	"time"

	"fastfood/internal/core/application/usecases/queries"
	"fastfood/internal/core/domain/model/kernel"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest opens a new order. Every field is optional; an empty
// body creates an anonymous empty order.
type CreateOrderRequest struct {
	CustomerID    *string `json:"customerId,omitempty"`
	MainID        *string `json:"mainId,omitempty"`
	SideID        *string `json:"sideId,omitempty"`
	DrinkID       *string `json:"drinkId,omitempty"`
	PaymentMethod string  `json:"paymentMethod,omitempty"`
}

// CreateOrderResponse carries the identifier assigned to the new order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// AttachCustomerRequest identifies an order with a registered customer.
type AttachCustomerRequest struct {
	CustomerID string `json:"customerId"`
}

// AttachItemRequest fills one item slot with a catalog product.
type AttachItemRequest struct {
	Slot      string `json:"slot"`
	ProductID string `json:"productId"`
}

// PayOrderRequest submits an order for payment. The method override is
// optional when the order already carries one.
type PayOrderRequest struct {
	PaymentMethod string `json:"paymentMethod,omitempty"`
}

// UpdateOrderStatusRequest moves an order along its lifecycle.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse is the read-side representation of one order.
type OrderResponse struct {
	ID            string                 `json:"id"`
	Status        string                 `json:"status"`
	PaymentMethod string                 `json:"paymentMethod,omitempty"`
	Total         string                 `json:"total"`
	CreatedAt     time.Time              `json:"createdAt"`
	Customer      *OrderCustomerResponse `json:"customer,omitempty"`
	Items         []OrderItemResponse    `json:"items"`
}

// OrderCustomerResponse is the customer snapshot carried by an order.
type OrderCustomerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	CPF   string `json:"cpf"`
}

// OrderItemResponse is one filled item slot.
type OrderItemResponse struct {
	ID    string `json:"id"`
	Slot  string `json:"slot"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

// ProductResponse is one catalog entry.
type ProductResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Photo       string   `json:"photo,omitempty"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category"`
	Price       string   `json:"price"`
	Ingredients []string `json:"ingredients"`
}

func formatCents(cents int64) string {
	money, err := kernel.NewMoneyFromCents(cents)
	if err != nil {
		return "0.00"
	}
	return money.String()
}

func toOrderResponse(src queries.OrderResponse) OrderResponse {
	resp := OrderResponse{
		ID:            src.ID.String(),
		Status:        src.Status,
		PaymentMethod: src.PaymentMethod,
		Total:         formatCents(src.TotalCents),
		CreatedAt:     src.CreatedAt,
		Items:         make([]OrderItemResponse, 0, len(src.Items)),
	}

	if src.Customer != nil {
		resp.Customer = &OrderCustomerResponse{
			ID:    src.Customer.ID.String(),
			Name:  src.Customer.Name,
			Email: src.Customer.Email,
			CPF:   src.Customer.CPF,
		}
	}

	for _, item := range src.Items {
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:    item.ID.String(),
			Slot:  item.Slot,
			Name:  item.Name,
			Price: formatCents(item.PriceCents),
		})
	}

	return resp
}

func toProductResponse(src queries.ProductResponse) ProductResponse {
	return ProductResponse{
		ID:          src.ID.String(),
		Name:        src.Name,
		Photo:       src.Photo,
		Description: src.Description,
		Category:    src.Category,
		Price:       formatCents(src.PriceCents),
		Ingredients: src.Ingredients,
	}
}
