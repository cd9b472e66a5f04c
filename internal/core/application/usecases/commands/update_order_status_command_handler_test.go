package commands_test

import (
	"testing"

	"fastfood/internal/core/application/usecases/commands"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	target := fixtureOrder(t, order.Pago)
	cmd, _ := commands.NewUpdateOrderStatusCommand(target.ID(), "EmPreparacao")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		repo.On("UpdateStatus", ctx, target.ID(), order.EmPreparacao, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.EmPreparacao, target.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	target := fixtureOrder(t, order.Finalizado)
	cmd, _ := commands.NewUpdateOrderStatusCommand(target.ID(), "Cancelado")

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

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	// the order stays in its terminal state
	assert.Equal(t, order.Finalizado, target.Status())
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_PaidIsNotReachable(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), "Pago")

	factory := new(MockOrderUoWFactory)

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateOrderStatusCommandHandler_Handle_UnknownOrder(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewUpdateOrderStatusCommand(orderID, "Pronto")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, orderID).
			Return(nil, errs.NewObjectNotFoundError("orderId", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdateOrderStatusCommand{} // not constructed properly
	h := commands.NewUpdateOrderStatusCommandHandler(new(MockOrderUoWFactory))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
