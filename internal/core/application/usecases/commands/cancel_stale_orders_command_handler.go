package commands

import (
	"context"
	"time"

	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/core/ports"
)

// CancelStaleOrdersCommandHandler handles the periodic cleanup of abandoned
// orders. A pending order older than the allowed window is cancelled unless
// the payment gateway reports a confirmed charge for it, in which case it is
// left alone for the reconciliation pass to promote.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.PaymentGateway
}

// NewCancelStaleOrdersCommandHandler creates a handler for stale order
// cleanup operations.
func NewCancelStaleOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	gateway ports.PaymentGateway,
) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the cleanup command and returns how many orders were
// cancelled.
//
// Each cancellation is a compare-and-swap from "Pendente", so an order that
// gets paid between the read and the write is not clobbered. A gateway error
// for one order skips that order and moves on.
func (h *CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	cutoff := time.Now().Add(-cmd.MaxAge())
	staleOrders, err := orderRepo.GetAllInStatusCreatedBefore(ctx, order.Pendente, cutoff)
	if err != nil {
		return 0, err
	}

	cancelled := 0
	for _, staleOrder := range staleOrders {
		result, err := h.gateway.CheckStatus(ctx, staleOrder.ID())
		if err != nil || result.Approved {
			// Unknown or confirmed charge; not ours to cancel.
			continue
		}

		swapped, err := orderRepo.UpdateStatusFrom(
			ctx, staleOrder.ID(), order.Pendente, order.Cancelado, time.Now(),
		)
		if err != nil {
			return cancelled, err
		}
		if swapped {
			cancelled++
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return cancelled, nil
}
