package commands

import (
	"errors"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/guard"
)

var (
	ErrAttachCustomerCommandIsNotConstructed = errors.New(
		"AttachCustomerCommand must be created via NewAttachCustomerCommand constructor",
	)
)

// AttachCustomerCommand represents a request to identify an open order with a
// registered customer.
type AttachCustomerCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAttachCustomerCommand creates a command to attach a customer to an order.
// Both identifiers must be valid.
func NewAttachCustomerCommand(orderID, customerID kernel.UUID) (AttachCustomerCommand, error) {
	cmd := AttachCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
	); err != nil {
		return AttachCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachCustomerCommand) Validate() error {
	return c.guard.Validate(ErrAttachCustomerCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c AttachCustomerCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the customer to attach.
func (c AttachCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *AttachCustomerCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AttachCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}
