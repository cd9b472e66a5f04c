package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/core/domain/model/payment"
	"fastfood/internal/core/ports"
	"fastfood/internal/pkg/errs"
)

var (
	// ErrPaymentDeclined is returned when the gateway definitively refused the
	// charge. The order stays pending and the attempt is recorded.
	ErrPaymentDeclined = errors.New("payment was declined")
)

// PayOrderCommandHandler handles the business logic for collecting payment.
//
// The handler charges the order's total through the payment gateway, records
// the attempt, and advances the order to "Pago" with a compare-and-swap status
// update so that two racing confirmations cannot both commit. Paying an order
// that is already paid is a no-op success.
type PayOrderCommandHandler struct {
	uowFactory UoWFactory
	gateway    ports.PaymentGateway
}

// NewPayOrderCommandHandler creates a handler for payment operations.
// Requires a UoWFactory spanning the order and payment aggregates plus the
// payment gateway.
func NewPayOrderCommandHandler(uowFactory UoWFactory, gateway ports.PaymentGateway) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the payment command and returns the order as persisted.
//
// A gateway transport error is returned wrapped and the order is left
// untouched; the outcome is unknown and the reconciliation pass will settle
// it. A definitive decline is recorded and reported as ErrPaymentDeclined.
func (h *PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	foundOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	// Repeated confirmation of a paid order changes nothing.
	if foundOrder.Status() == order.Pago {
		return foundOrder, nil
	}
	if foundOrder.Status() != order.Pendente {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s order cannot be paid", foundOrder.Status()),
		)
	}

	if err = foundOrder.ValidateForPayment(); err != nil {
		return nil, err
	}

	// The method label is informational; an order without one is still
	// chargeable.
	now := time.Now()
	if cmd.PaymentMethod() != "" {
		if err = foundOrder.SetPaymentMethod(cmd.PaymentMethod(), now); err != nil {
			return nil, err
		}
		if err = orderRepo.UpdatePaymentMethod(ctx, foundOrder.ID(), cmd.PaymentMethod(), now); err != nil {
			return nil, err
		}
	}

	result, err := h.gateway.Charge(ctx, foundOrder.ID(), foundOrder.Total())
	if err != nil {
		return nil, fmt.Errorf("charge outcome unknown for order %s: %w", foundOrder.ID(), err)
	}

	if !result.Approved {
		if err = h.recordAttempt(ctx, uow, foundOrder, payment.Recusado, result.Reference, now); err != nil {
			return nil, err
		}
		if err = uow.Commit(ctx); err != nil {
			return nil, err
		}
		return nil, ErrPaymentDeclined
	}

	if err = h.recordAttempt(ctx, uow, foundOrder, payment.Aprovado, result.Reference, now); err != nil {
		return nil, err
	}

	swapped, err := orderRepo.UpdateStatusFrom(ctx, foundOrder.ID(), order.Pendente, order.Pago, now)
	if err != nil {
		return nil, err
	}
	if !swapped {
		// Lost the race; the winner already moved the order on.
		current, err := orderRepo.Get(ctx, foundOrder.ID())
		if err != nil {
			return nil, err
		}
		if current.Status() == order.Pago {
			return current, nil
		}
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s order cannot be paid", current.Status()),
		)
	}

	if err = foundOrder.MarkPaid(now); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return foundOrder, nil
}

func (h *PayOrderCommandHandler) recordAttempt(
	ctx context.Context,
	uow UoW,
	paidOrder *order.Order,
	state payment.State,
	gatewayRef string,
	now time.Time,
) error {
	attempt, err := payment.NewPayment(
		kernel.NewUUID(),
		paidOrder.ID(),
		state,
		paidOrder.Total(),
		paidOrder.PaymentMethod(),
		gatewayRef,
		now,
	)
	if err != nil {
		return err
	}
	return uow.PaymentRepository().Add(ctx, attempt)
}
