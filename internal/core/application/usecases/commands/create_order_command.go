package commands

import (
	"errors"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to open a new order.
// The customer and every item slot are optional at creation time; whatever is
// referenced must resolve through its gateway or the whole operation aborts.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, &customerID, &burgerID, nil, &sodaID, "pix")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerID    *kernel.UUID
	mainID        *kernel.UUID
	sideID        *kernel.UUID
	drinkID       *kernel.UUID
	paymentMethod string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new order.
// Validates the order id and every referenced id that is present.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID, mainID, sideID, drinkID *kernel.UUID,
	paymentMethod string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		paymentMethod: paymentMethod,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setItemID(&orderCommand.mainID, mainID),
		orderCommand.setItemID(&orderCommand.sideID, sideID),
		orderCommand.setItemID(&orderCommand.drinkID, drinkID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the referenced customer id, or nil for an anonymous order.
func (c CreateOrderCommand) CustomerID() *kernel.UUID {
	return c.customerID
}

// MainID returns the referenced main item id, or nil when the slot is left empty.
func (c CreateOrderCommand) MainID() *kernel.UUID {
	return c.mainID
}

// SideID returns the referenced side item id, or nil when the slot is left empty.
func (c CreateOrderCommand) SideID() *kernel.UUID {
	return c.sideID
}

// DrinkID returns the referenced drink item id, or nil when the slot is left empty.
func (c CreateOrderCommand) DrinkID() *kernel.UUID {
	return c.drinkID
}

// PaymentMethod returns the payment method label, possibly empty.
func (c CreateOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID *kernel.UUID) error {
	if customerID == nil {
		return nil
	}
	if err := customerID.Validate(); err != nil {
		return err
	}

	id := *customerID
	c.customerID = &id
	return nil
}

func (c *CreateOrderCommand) setItemID(dst **kernel.UUID, id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}

	value := *id
	*dst = &value
	return nil
}
