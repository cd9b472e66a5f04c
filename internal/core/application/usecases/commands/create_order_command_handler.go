package commands

import (
	"context"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/core/domain/model/product"
	"fastfood/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Opens a new order in "Pendente" status with snapshot copies of whatever
// the command references.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, customers, products)
//	orderID := kernel.NewUUID()
//	cmd, _ := NewCreateOrderCommand(orderID, &customerID, &burgerID, nil, nil, "pix")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now created and ready for payment
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	customers  ports.CustomerGateway
	products   ports.ProductGateway
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence plus the customer
// and product gateways for reference resolution.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	customers ports.CustomerGateway,
	products ports.ProductGateway,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		customers:  customers,
		products:   products,
	}
}

// Handle processes the order creation command.
// Every referenced id is resolved through its gateway first, so a dangling
// reference aborts the operation before anything is persisted. Resolved
// records are attached to the order as owned snapshot copies.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), time.Now())
	if err != nil {
		return err
	}

	if cmd.CustomerID() != nil {
		cust, err := h.customers.Get(ctx, *cmd.CustomerID())
		if err != nil {
			return err
		}
		if err = newOrder.AttachCustomer(cust, time.Now()); err != nil {
			return err
		}
	}

	if err = h.attachItems(ctx, newOrder, cmd); err != nil {
		return err
	}

	if cmd.PaymentMethod() != "" {
		if err = newOrder.SetPaymentMethod(cmd.PaymentMethod(), time.Now()); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h *CreateOrderCommandHandler) attachItems(
	ctx context.Context,
	newOrder *order.Order,
	cmd CreateOrderCommand,
) error {
	slots := map[product.Category]*kernel.UUID{
		product.Lanche:         cmd.MainID(),
		product.Acompanhamento: cmd.SideID(),
		product.Bebida:         cmd.DrinkID(),
	}

	for _, slot := range order.Slots() {
		id := slots[slot]
		if id == nil {
			continue
		}

		item, err := h.products.Get(ctx, *id)
		if err != nil {
			return err
		}
		if err = newOrder.AttachItem(slot, item, time.Now()); err != nil {
			return err
		}
	}

	return nil
}
