package commands

import (
	"context"
	"time"

	"fastfood/internal/core/ports"
)

// AttachItemCommandHandler handles the business logic for filling an order
// item slot with a product snapshot. The product's own category must match the
// requested slot; the domain rejects the attachment otherwise.
type AttachItemCommandHandler struct {
	uowFactory OrderUoWFactory
	products   ports.ProductGateway
}

// NewAttachItemCommandHandler creates a handler for item attachment operations.
func NewAttachItemCommandHandler(
	uowFactory OrderUoWFactory,
	products ports.ProductGateway,
) AttachItemCommandHandler {
	return AttachItemCommandHandler{
		uowFactory: uowFactory,
		products:   products,
	}
}

// Handle processes the item attachment command.
// The product is resolved through the catalog gateway first, so an unknown id
// aborts before the order is touched. On success the snapshot is written into
// the slot within one transaction.
func (h *AttachItemCommandHandler) Handle(ctx context.Context, cmd AttachItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := h.products.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	foundOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := time.Now()
	if err = foundOrder.AttachItem(cmd.Slot(), item, now); err != nil {
		return err
	}

	if err = orderRepo.UpdateItem(ctx, foundOrder.ID(), cmd.Slot(), foundOrder.Item(cmd.Slot()), now); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
