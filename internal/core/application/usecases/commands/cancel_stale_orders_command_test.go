package commands_test

import (
	"testing"
	"time"

	"fastfood/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelStaleOrdersCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewCancelStaleOrdersCommand(30 * time.Minute)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, 30*time.Minute, cmd.MaxAge())
	})

	t.Run("should reject non-positive age", func(t *testing.T) {
		for _, maxAge := range []time.Duration{0, -time.Minute} {
			_, err := commands.NewCancelStaleOrdersCommand(maxAge)
			require.Error(t, err, "maxAge %s", maxAge)
		}
	})

	t.Run("should not validate zero value command", func(t *testing.T) {
		var cmd commands.CancelStaleOrdersCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCancelStaleOrdersCommandIsNotConstructed)
	})
}
