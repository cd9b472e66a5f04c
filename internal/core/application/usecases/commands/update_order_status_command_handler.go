package commands

import (
	"context"
	"fmt"
	"time"

	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler handles the business logic for lifecycle
// transitions driven by the kitchen and counter: preparation start, ready,
// pickup, and cancellation. Payment is not reachable through this handler;
// "Pago" is only ever set by a confirmed charge.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transition
// operations.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status transition command.
// The order is loaded, the transition is checked against the allowed-transition
// table in the domain, and the new status is persisted in one transaction. An
// illegal move leaves the stored order untouched.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.Status() == order.Pago {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is set by payment confirmation, not by status update", order.Pago),
		)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
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
	if err = foundOrder.ChangeStatus(cmd.Status(), now); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, foundOrder.ID(), foundOrder.Status(), now); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
