package cmd

import (
	"fastfood/internal/adapters/out/fakepay"
	"fastfood/internal/adapters/out/postgres"
	"fastfood/internal/adapters/out/postgres/customerrepo"
	"fastfood/internal/adapters/out/postgres/productrepo"
	"fastfood/internal/core/application/usecases/commands"
	"fastfood/internal/core/application/usecases/queries"
	"fastfood/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB         *gorm.DB
	uowFactory     postgres.GormUnitOfWorkFactory
	customers      ports.CustomerGateway
	products       ports.ProductGateway
	paymentGateway ports.PaymentGateway
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		customers:  customerrepo.NewGormCustomerRepository(gormDB),
		products:   productrepo.NewGormProductRepository(gormDB),
		// One gateway instance, so the charge the pay handler records is the
		// one the background jobs see.
		paymentGateway: fakepay.NewGateway(),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.customers, c.products)
}

func (c *CompositionRoot) CreateAttachCustomerCommandHandler() commands.AttachCustomerCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAttachCustomerCommandHandler(f, c.customers)
}

func (c *CompositionRoot) CreateAttachItemCommandHandler() commands.AttachItemCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAttachItemCommandHandler(f, c.products)
}

func (c *CompositionRoot) CreatePayOrderCommandHandler() commands.PayOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPayOrderCommandHandler(f, c.paymentGateway)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelStaleOrdersCommandHandler() commands.CancelStaleOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelStaleOrdersCommandHandler(f, c.paymentGateway)
}

func (c *CompositionRoot) CreateReconcilePaymentsCommandHandler() commands.ReconcilePaymentsCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewReconcilePaymentsCommandHandler(f, c.paymentGateway)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNewOrdersQueryHandler() queries.GetNewOrdersQueryHandler {
	return queries.NewGetNewOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductsByCategoryQueryHandler() queries.GetProductsByCategoryQueryHandler {
	return queries.NewGetProductsByCategoryQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
