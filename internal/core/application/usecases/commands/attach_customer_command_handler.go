package commands

import (
	"context"
	"time"

	"fastfood/internal/core/ports"
)

// AttachCustomerCommandHandler handles the business logic for identifying an
// order with a registered customer. The directory record is copied onto the
// order as an owned snapshot.
type AttachCustomerCommandHandler struct {
	uowFactory OrderUoWFactory
	customers  ports.CustomerGateway
}

// NewAttachCustomerCommandHandler creates a handler for customer attachment
// operations.
func NewAttachCustomerCommandHandler(
	uowFactory OrderUoWFactory,
	customers ports.CustomerGateway,
) AttachCustomerCommandHandler {
	return AttachCustomerCommandHandler{
		uowFactory: uowFactory,
		customers:  customers,
	}
}

// Handle processes the customer attachment command.
// The customer is resolved through the gateway first; the order is then loaded,
// mutated in the domain, and persisted within one transaction.
func (h *AttachCustomerCommandHandler) Handle(ctx context.Context, cmd AttachCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	cust, err := h.customers.Get(ctx, cmd.CustomerID())
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
	if err = foundOrder.AttachCustomer(cust, now); err != nil {
		return err
	}

	if err = orderRepo.UpdateCustomer(ctx, foundOrder.ID(), foundOrder.Customer(), now); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
