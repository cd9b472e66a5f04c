package kernel_test

import (
	"testing"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromCents(t *testing.T) {
	t.Run("should create money from positive centavos", func(t *testing.T) {
		m, err := kernel.NewMoneyFromCents(1449)

		require.NoError(t, err)
		assert.Equal(t, int64(1449), m.Cents())
		assert.Equal(t, "14.49", m.String())
	})

	t.Run("should create zero money", func(t *testing.T) {
		m, err := kernel.NewMoneyFromCents(0)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
		assert.Equal(t, "0.00", m.String())
	})

	t.Run("should reject negative centavos", func(t *testing.T) {
		_, err := kernel.NewMoneyFromCents(-1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestParseMoney(t *testing.T) {
	t.Run("should parse valid amounts exactly", func(t *testing.T) {
		cases := []struct {
			input string
			cents int64
		}{
			{"9.99", 999},
			{"4.50", 450},
			{"4.5", 450},
			{"0.1", 10},
			{"0.01", 1},
			{"12", 1200},
			{"0", 0},
			{" 7.25 ", 725},
		}

		for _, tc := range cases {
			m, err := kernel.ParseMoney(tc.input)
			require.NoError(t, err, "input %q", tc.input)
			assert.Equal(t, tc.cents, m.Cents(), "input %q", tc.input)
		}
	})

	t.Run("should reject malformed amounts", func(t *testing.T) {
		cases := []string{"", "-9.99", "9.999", "abc", "9,99", "9.x"}

		for _, input := range cases {
			_, err := kernel.ParseMoney(input)
			require.Error(t, err, "input %q", input)
		}
	})
}

func TestMoney_Add(t *testing.T) {
	t.Run("should be additive without drift", func(t *testing.T) {
		main, _ := kernel.ParseMoney("9.99")
		drink, _ := kernel.ParseMoney("4.50")

		total := main.Add(kernel.Money{}).Add(drink)

		assert.Equal(t, int64(1449), total.Cents())
		assert.Equal(t, "14.49", total.String())
	})

	t.Run("zero value contributes nothing", func(t *testing.T) {
		var absent kernel.Money
		price, _ := kernel.ParseMoney("3.10")

		assert.True(t, price.Add(absent).IsEqual(price))
	})
}
