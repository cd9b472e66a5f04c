package fakepay_test

import (
	"errors"
	"sync"
	"testing"

	"fastfood/internal/adapters/out/fakepay"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.ParseMoney(s)
	require.NoError(t, err)
	return m
}

func TestGateway_Charge(t *testing.T) {
	ctx := t.Context()
	amount := mustMoney(t, "14.49")

	t.Run("should approve by default", func(t *testing.T) {
		gateway := fakepay.NewGateway()

		result, err := gateway.Charge(ctx, kernel.NewUUID(), amount)

		require.NoError(t, err)
		assert.True(t, result.Approved)
		assert.NotEmpty(t, result.Reference)
	})

	t.Run("should be idempotent per order", func(t *testing.T) {
		gateway := fakepay.NewGateway()
		orderID := kernel.NewUUID()

		first, err := gateway.Charge(ctx, orderID, amount)
		require.NoError(t, err)
		second, err := gateway.Charge(ctx, orderID, amount)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("should decline when the decider says no", func(t *testing.T) {
		gateway := fakepay.NewGateway(fakepay.WithDecider(
			func(kernel.UUID, kernel.Money) bool { return false },
		))

		result, err := gateway.Charge(ctx, kernel.NewUUID(), amount)

		require.NoError(t, err)
		assert.False(t, result.Approved)
	})

	t.Run("should surface an injected transport failure without recording", func(t *testing.T) {
		transportErr := errors.New("connection reset")
		gateway := fakepay.NewGateway(fakepay.WithFaulter(
			func(kernel.UUID) error { return transportErr },
		))
		orderID := kernel.NewUUID()

		_, err := gateway.Charge(ctx, orderID, amount)
		require.ErrorIs(t, err, transportErr)

		status, err := gateway.CheckStatus(ctx, orderID)
		require.NoError(t, err)
		assert.Empty(t, status.Reference)
	})
}

func TestGateway_CheckStatus(t *testing.T) {
	ctx := t.Context()
	amount := mustMoney(t, "9.99")

	t.Run("should report recorded outcome", func(t *testing.T) {
		gateway := fakepay.NewGateway()
		orderID := kernel.NewUUID()

		charged, err := gateway.Charge(ctx, orderID, amount)
		require.NoError(t, err)

		status, err := gateway.CheckStatus(ctx, orderID)
		require.NoError(t, err)
		assert.Equal(t, charged, status)
	})

	t.Run("should report nothing for an uncharged order", func(t *testing.T) {
		gateway := fakepay.NewGateway()

		status, err := gateway.CheckStatus(ctx, kernel.NewUUID())

		require.NoError(t, err)
		assert.False(t, status.Approved)
		assert.Empty(t, status.Reference)
	})

	t.Run("should expose seeded charges", func(t *testing.T) {
		gateway := fakepay.NewGateway()
		orderID := kernel.NewUUID()
		gateway.RecordCharge(orderID, ports.ChargeResult{Approved: true, Reference: "ref-lost"})

		status, err := gateway.CheckStatus(ctx, orderID)

		require.NoError(t, err)
		assert.True(t, status.Approved)
		assert.Equal(t, "ref-lost", status.Reference)
	})
}

func TestGateway_ConcurrentCharges(t *testing.T) {
	ctx := t.Context()
	gateway := fakepay.NewGateway()
	orderID := kernel.NewUUID()
	amount := mustMoney(t, "20.00")

	results := make([]ports.ChargeResult, 8)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := gateway.Charge(ctx, orderID, amount)
			assert.NoError(t, err)
			results[i] = result
		}()
	}
	wg.Wait()

	for _, result := range results[1:] {
		assert.Equal(t, results[0], result)
	}
}
