package commands_test

import (
	"testing"

	"fastfood/internal/core/application/usecases/commands"
	"fastfood/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayOrderCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		orderID := kernel.NewUUID()

		cmd, err := commands.NewPayOrderCommand(orderID, "pix")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.Equal(t, "pix", cmd.PaymentMethod())
	})

	t.Run("should allow empty method override", func(t *testing.T) {
		cmd, err := commands.NewPayOrderCommand(kernel.NewUUID(), "")

		require.NoError(t, err)
		assert.Empty(t, cmd.PaymentMethod())
	})

	t.Run("should fail with empty order id", func(t *testing.T) {
		var orderID kernel.UUID

		_, err := commands.NewPayOrderCommand(orderID, "pix")

		require.Error(t, err)
	})

	t.Run("should not validate zero value command", func(t *testing.T) {
		var cmd commands.PayOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrPayOrderCommandIsNotConstructed)
	})
}
