package commands

import (
	"errors"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/product"
	"fastfood/internal/pkg/guard"
)

var (
	ErrAttachItemCommandIsNotConstructed = errors.New(
		"AttachItemCommand must be created via NewAttachItemCommand constructor",
	)
)

// AttachItemCommand represents a request to put a catalog product into one of
// the order's item slots. The slot is named by its menu section label; an
// occupied slot is overwritten.
type AttachItemCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	slot      product.Category
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAttachItemCommand creates a command to fill an order item slot.
// The slot label must parse to a defined menu section.
func NewAttachItemCommand(orderID kernel.UUID, slot string, productID kernel.UUID) (AttachItemCommand, error) {
	cmd := AttachItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSlot(slot),
		cmd.setProductID(productID),
	); err != nil {
		return AttachItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachItemCommand) Validate() error {
	return c.guard.Validate(ErrAttachItemCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c AttachItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Slot returns the item slot to fill.
func (c AttachItemCommand) Slot() product.Category {
	return c.slot
}

// ProductID returns the identifier of the product to attach.
func (c AttachItemCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c *AttachItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AttachItemCommand) setSlot(slot string) error {
	parsed, err := product.ParseCategory(slot)
	if err != nil {
		return err
	}
	c.slot = parsed
	return nil
}

func (c *AttachItemCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}
