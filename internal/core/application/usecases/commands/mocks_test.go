package commands_test

import (
	"context"
	"time"

	"fastfood/internal/core/application/usecases/commands"
	"fastfood/internal/core/domain/model/customer"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/core/domain/model/payment"
	"fastfood/internal/core/domain/model/product"
	"fastfood/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatus(
	ctx context.Context, status order.Status,
) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatusCreatedBefore(
	ctx context.Context, status order.Status, cutoff time.Time,
) ([]*order.Order, error) {
	args := m.Called(ctx, status, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(
	ctx context.Context, id kernel.UUID, status order.Status, updatedAt time.Time,
) error {
	args := m.Called(ctx, id, status, updatedAt)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatusFrom(
	ctx context.Context, id kernel.UUID, from, to order.Status, updatedAt time.Time,
) (bool, error) {
	args := m.Called(ctx, id, from, to, updatedAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) UpdateCustomer(
	ctx context.Context, id kernel.UUID, cust *customer.Customer, updatedAt time.Time,
) error {
	args := m.Called(ctx, id, cust, updatedAt)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateItem(
	ctx context.Context, id kernel.UUID, slot product.Category, item *product.Product, updatedAt time.Time,
) error {
	args := m.Called(ctx, id, slot, item, updatedAt)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdatePaymentMethod(
	ctx context.Context, id kernel.UUID, label string, updatedAt time.Time,
) error {
	args := m.Called(ctx, id, label, updatedAt)
	return args.Error(0)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetAllByOrderID(
	ctx context.Context, orderID kernel.UUID,
) ([]*payment.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payment.Payment), args.Error(1)
}

type MockCustomerGateway struct{ mock.Mock }

func (m *MockCustomerGateway) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

type MockProductGateway struct{ mock.Mock }

func (m *MockProductGateway) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductGateway) GetByCategory(
	ctx context.Context, category product.Category,
) ([]*product.Product, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) Charge(
	ctx context.Context, orderID kernel.UUID, amount kernel.Money,
) (ports.ChargeResult, error) {
	args := m.Called(ctx, orderID, amount)
	return args.Get(0).(ports.ChargeResult), args.Error(1)
}

func (m *MockPaymentGateway) CheckStatus(
	ctx context.Context, orderID kernel.UUID,
) (ports.ChargeResult, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(ports.ChargeResult), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}
