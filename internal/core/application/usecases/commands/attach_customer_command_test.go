package commands_test

import (
	"testing"

	"fastfood/internal/core/application/usecases/commands"
	"fastfood/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAttachCustomerCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		orderID := kernel.NewUUID()
		customerID := kernel.NewUUID()

		cmd, err := commands.NewAttachCustomerCommand(orderID, customerID)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.True(t, cmd.CustomerID().IsEqual(customerID))
	})

	t.Run("should fail with empty order id", func(t *testing.T) {
		var orderID kernel.UUID

		_, err := commands.NewAttachCustomerCommand(orderID, kernel.NewUUID())

		require.Error(t, err)
	})

	t.Run("should fail with empty customer id", func(t *testing.T) {
		var customerID kernel.UUID

		_, err := commands.NewAttachCustomerCommand(kernel.NewUUID(), customerID)

		require.Error(t, err)
	})

	t.Run("should not validate zero value command", func(t *testing.T) {
		var cmd commands.AttachCustomerCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrAttachCustomerCommandIsNotConstructed)
	})
}
