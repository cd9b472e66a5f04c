package payment_test

import (
	"testing"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayment(t *testing.T) {
	amount, _ := kernel.ParseMoney("14.49")
	now := time.Now()

	t.Run("should create approved payment record", func(t *testing.T) {
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()

		p, err := payment.NewPayment(id, orderID, payment.Aprovado, amount, "pix", "ref-123", now)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.True(t, p.OrderID().IsEqual(orderID))
		assert.Equal(t, payment.Aprovado, p.State())
		assert.Equal(t, int64(1449), p.Amount().Cents())
		assert.Equal(t, "pix", p.Method())
		assert.Equal(t, "ref-123", p.GatewayRef())
		assert.Equal(t, now, p.CreatedAt())
	})

	t.Run("should fail with missing order id", func(t *testing.T) {
		var orderID kernel.UUID

		p, err := payment.NewPayment(kernel.NewUUID(), orderID, payment.Recusado, amount, "pix", "", now)

		require.Error(t, err)
		assert.Nil(t, p)
	})

	t.Run("should fail with undefined state", func(t *testing.T) {
		p, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(), payment.StateUnknown, amount, "pix", "", now)

		require.Error(t, err)
		assert.Nil(t, p)
	})
}

func TestParseState(t *testing.T) {
	t.Run("should parse defined outcomes", func(t *testing.T) {
		for input, want := range map[string]payment.State{
			"Aprovado": payment.Aprovado,
			"Recusado": payment.Recusado,
		} {
			got, err := payment.ParseState(input)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("should reject unknown labels", func(t *testing.T) {
		for _, input := range []string{"", "Unknown", "aprovado"} {
			_, err := payment.ParseState(input)
			require.Error(t, err, "input %q", input)
		}
	})
}
