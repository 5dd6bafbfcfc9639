package kernel_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(amount)
	require.NoError(t, err)
	return m
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("should parse valid decimal strings", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("10.00")

		require.NoError(t, err)
		assert.Equal(t, "10", m.String())
	})

	t.Run("should parse negative amounts", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("-3.50")

		require.NoError(t, err)
		assert.True(t, m.IsNegative())
	})

	t.Run("should reject invalid strings", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("ten dollars")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestZeroMoney(t *testing.T) {
	t.Run("should be zero", func(t *testing.T) {
		assert.True(t, kernel.ZeroMoney().IsZero())
	})

	t.Run("zero value should equal ZeroMoney", func(t *testing.T) {
		var m kernel.Money
		assert.True(t, m.IsEqual(kernel.ZeroMoney()))
	})

	t.Run("should be the additive identity", func(t *testing.T) {
		m := mustMoney(t, "12.34")
		assert.True(t, m.Add(kernel.ZeroMoney()).IsEqual(m))
	})
}

func TestMoney_Add(t *testing.T) {
	t.Run("should add exactly without float drift", func(t *testing.T) {
		a := mustMoney(t, "0.1")
		b := mustMoney(t, "0.2")

		assert.True(t, a.Add(b).IsEqual(mustMoney(t, "0.3")))
	})

	t.Run("should be commutative", func(t *testing.T) {
		a := mustMoney(t, "10.00")
		b := mustMoney(t, "5.55")

		assert.True(t, a.Add(b).IsEqual(b.Add(a)))
	})

	t.Run("should not mutate operands", func(t *testing.T) {
		a := mustMoney(t, "10.00")
		b := mustMoney(t, "5.00")

		_ = a.Add(b)

		assert.True(t, a.IsEqual(mustMoney(t, "10.00")))
		assert.True(t, b.IsEqual(mustMoney(t, "5.00")))
	})
}

func TestMoney_Subtract(t *testing.T) {
	t.Run("should subtract exactly", func(t *testing.T) {
		a := mustMoney(t, "25.00")
		b := mustMoney(t, "2.50")

		assert.True(t, a.Subtract(b).IsEqual(mustMoney(t, "22.50")))
	})

	t.Run("subtracting a value from itself should yield zero", func(t *testing.T) {
		m := mustMoney(t, "19.99")

		assert.True(t, m.Subtract(m).IsEqual(kernel.ZeroMoney()))
	})

	t.Run("may yield a negative amount", func(t *testing.T) {
		a := mustMoney(t, "5.00")
		b := mustMoney(t, "7.00")

		result := a.Subtract(b)
		assert.True(t, result.IsNegative())
		assert.True(t, result.IsEqual(mustMoney(t, "-2.00")))
	})
}

func TestMoney_Multiply(t *testing.T) {
	t.Run("multiplying by one should be the identity", func(t *testing.T) {
		m := mustMoney(t, "7.77")

		assert.True(t, m.MultiplyInt(1).IsEqual(m))
		assert.True(t, m.Multiply(decimal.NewFromInt(1)).IsEqual(m))
	})

	t.Run("should multiply by integer quantity", func(t *testing.T) {
		price := mustMoney(t, "10.00")

		assert.True(t, price.MultiplyInt(3).IsEqual(mustMoney(t, "30.00")))
	})

	t.Run("should multiply by fractional scalar exactly", func(t *testing.T) {
		total := mustMoney(t, "25.00")
		rate := decimal.RequireFromString("0.10")

		discount := total.Multiply(rate)
		assert.True(t, discount.IsEqual(mustMoney(t, "2.50")))
		assert.True(t, total.Subtract(discount).IsEqual(mustMoney(t, "22.50")))
	})

	t.Run("should be commutative with the scalar on either side", func(t *testing.T) {
		m := mustMoney(t, "4.20")
		factor := decimal.RequireFromString("2.5")

		left := m.Multiply(factor)
		right := kernel.NewMoney(factor).Multiply(m.Amount())

		assert.True(t, left.IsEqual(right))
	})
}

func TestMoney_IsEqual(t *testing.T) {
	t.Run("should compare numerically regardless of scale", func(t *testing.T) {
		assert.True(t, mustMoney(t, "2.5").IsEqual(mustMoney(t, "2.50")))
	})

	t.Run("should detect different amounts", func(t *testing.T) {
		assert.False(t, mustMoney(t, "2.5").IsEqual(mustMoney(t, "2.51")))
	})
}
