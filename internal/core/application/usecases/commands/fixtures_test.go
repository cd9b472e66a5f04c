package commands_test

import (
	"testing"
	"time"

	"fastfood/internal/core/domain/model/customer"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/core/domain/model/product"

	"github.com/stretchr/testify/require"
)

func fixtureProduct(t *testing.T, category product.Category, price string) *product.Product {
	t.Helper()

	amount, err := kernel.ParseMoney(price)
	require.NoError(t, err)

	item, err := product.NewProduct(
		kernel.NewUUID(),
		"X-Burger",
		"x-burger.png",
		"House burger",
		category,
		amount,
		[]string{"bun", "beef"},
		time.Now(),
	)
	require.NoError(t, err)
	return item
}

func fixtureCustomer(t *testing.T) *customer.Customer {
	t.Helper()

	cpf, err := customer.NewCPF("529.982.247-25")
	require.NoError(t, err)

	cust, err := customer.NewCustomer(kernel.NewUUID(), "Ana", "ana@example.com", cpf, time.Now())
	require.NoError(t, err)
	return cust
}

func fixtureOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), time.Now())
	require.NoError(t, err)

	item := fixtureProduct(t, product.Lanche, "9.99")
	require.NoError(t, o.AttachItem(product.Lanche, item, time.Now()))
	require.NoError(t, o.SetPaymentMethod("pix", time.Now()))

	path := map[order.Status][]order.Status{
		order.Pendente:     {},
		order.Pago:         {order.Pago},
		order.EmPreparacao: {order.Pago, order.EmPreparacao},
		order.Pronto:       {order.Pago, order.EmPreparacao, order.Pronto},
		order.Finalizado:   {order.Pago, order.EmPreparacao, order.Pronto, order.Finalizado},
		order.Cancelado:    {order.Cancelado},
	}
	for _, next := range path[status] {
		require.NoError(t, o.ChangeStatus(next, time.Now()))
	}
	return o
}
