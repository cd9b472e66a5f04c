package commands

import (
	"errors"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/guard"
)

var (
	ErrPayOrderCommandIsNotConstructed = errors.New(
		"PayOrderCommand must be created via NewPayOrderCommand constructor",
	)
)

// PayOrderCommand represents a request to collect payment for a pending order.
// The payment method is optional; when present it overrides whatever method
// was recorded on the order.
type PayOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	paymentMethod string

	guard guard.ConstructorGuard
}

// NewPayOrderCommand creates a command to pay an order.
func NewPayOrderCommand(orderID kernel.UUID, paymentMethod string) (PayOrderCommand, error) {
	cmd := PayOrderCommand{
		paymentMethod: paymentMethod,
		guard:         guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return PayOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PayOrderCommand) Validate() error {
	return c.guard.Validate(ErrPayOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to charge.
func (c PayOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PaymentMethod returns the method override, possibly empty.
func (c PayOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

func (c *PayOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
