package commands

import (
	"context"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/core/domain/model/payment"
	"fastfood/internal/core/ports"
)

// ReconcilePaymentsCommandHandler recovers charges that succeeded on the
// gateway side but whose confirmation never reached us. For each sufficiently
// old pending order it asks the gateway for the recorded outcome; a confirmed
// charge promotes the order to "Pago" and records the attempt.
type ReconcilePaymentsCommandHandler struct {
	uowFactory UoWFactory
	gateway    ports.PaymentGateway
}

// NewReconcilePaymentsCommandHandler creates a handler for payment
// reconciliation operations.
func NewReconcilePaymentsCommandHandler(
	uowFactory UoWFactory,
	gateway ports.PaymentGateway,
) ReconcilePaymentsCommandHandler {
	return ReconcilePaymentsCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the reconciliation command and returns how many orders
// were promoted to paid.
//
// Promotion is a compare-and-swap from "Pendente"; losing the race to a
// concurrent confirmation is not an error. Orders the gateway has no record
// of, and orders it reports as declined, are left pending for the stale-order
// cleanup to deal with.
func (h *ReconcilePaymentsCommandHandler) Handle(ctx context.Context, cmd ReconcilePaymentsCommand) (int, error) {
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
	cutoff := time.Now().Add(-cmd.MinAge())
	pendingOrders, err := orderRepo.GetAllInStatusCreatedBefore(ctx, order.Pendente, cutoff)
	if err != nil {
		return 0, err
	}

	promoted := 0
	for _, pendingOrder := range pendingOrders {
		result, err := h.gateway.CheckStatus(ctx, pendingOrder.ID())
		if err != nil || !result.Approved {
			continue
		}

		now := time.Now()
		swapped, err := orderRepo.UpdateStatusFrom(
			ctx, pendingOrder.ID(), order.Pendente, order.Pago, now,
		)
		if err != nil {
			return promoted, err
		}
		if !swapped {
			continue
		}

		attempt, err := payment.NewPayment(
			kernel.NewUUID(),
			pendingOrder.ID(),
			payment.Aprovado,
			pendingOrder.Total(),
			pendingOrder.PaymentMethod(),
			result.Reference,
			now,
		)
		if err != nil {
			return promoted, err
		}
		if err = uow.PaymentRepository().Add(ctx, attempt); err != nil {
			return promoted, err
		}
		promoted++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return promoted, nil
}
