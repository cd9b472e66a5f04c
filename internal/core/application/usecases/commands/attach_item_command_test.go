package commands_test

import (
	"testing"

	"fastfood/internal/core/application/usecases/commands"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAttachItemCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		orderID := kernel.NewUUID()
		productID := kernel.NewUUID()

		cmd, err := commands.NewAttachItemCommand(orderID, "Bebida", productID)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.Equal(t, product.Bebida, cmd.Slot())
		assert.True(t, cmd.ProductID().IsEqual(productID))
	})

	t.Run("should fail with unknown slot label", func(t *testing.T) {
		for _, slot := range []string{"", "Sobremesa", "bebida"} {
			_, err := commands.NewAttachItemCommand(kernel.NewUUID(), slot, kernel.NewUUID())
			require.Error(t, err, "slot %q", slot)
		}
	})

	t.Run("should fail with empty product id", func(t *testing.T) {
		var productID kernel.UUID

		_, err := commands.NewAttachItemCommand(kernel.NewUUID(), "Lanche", productID)

		require.Error(t, err)
	})

	t.Run("should not validate zero value command", func(t *testing.T) {
		var cmd commands.AttachItemCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrAttachItemCommandIsNotConstructed)
	})
}
