package commands_test

import (
	"testing"

	"fastfood/internal/core/application/usecases/commands"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/core/domain/model/product"
	"fastfood/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAttachItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	target := fixtureOrder(t, order.Pendente)
	item := fixtureProduct(t, product.Bebida, "4.50")
	cmd, _ := commands.NewAttachItemCommand(target.ID(), "Bebida", item.ID())

	products := new(MockProductGateway)
	products.On("Get", ctx, item.ID()).Return(item, nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		repo.On("UpdateItem", ctx, target.ID(), product.Bebida, mock.Anything, mock.Anything).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAttachItemCommandHandler(factory, products)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, target.Drink())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	products.AssertExpectations(t)
}

func TestAttachItemCommandHandler_Handle_CategoryMismatch(t *testing.T) {
	ctx := t.Context()
	target := fixtureOrder(t, order.Pendente)
	item := fixtureProduct(t, product.Lanche, "9.99")
	cmd, _ := commands.NewAttachItemCommand(target.ID(), "Bebida", item.ID())

	products := new(MockProductGateway)
	products.On("Get", ctx, item.ID()).Return(item, nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAttachItemCommandHandler(factory, products)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	// the slot was not touched
	require.Nil(t, target.Drink())
	repo.AssertNotCalled(t, "UpdateItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAttachItemCommandHandler_Handle_UnknownProduct(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, _ := commands.NewAttachItemCommand(kernel.NewUUID(), "Lanche", productID)

	products := new(MockProductGateway)
	products.On("Get", ctx, productID).
		Return(nil, errs.NewObjectNotFoundError("productId", productID)).Once()

	factory := new(MockOrderUoWFactory)

	h := commands.NewAttachItemCommandHandler(factory, products)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	factory.AssertNotCalled(t, "Create")
}

func TestAttachItemCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AttachItemCommand{} // not constructed properly
	h := commands.NewAttachItemCommandHandler(new(MockOrderUoWFactory), new(MockProductGateway))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
