package order_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(amount)
	require.NoError(t, err)
	return m
}

func mustItem(t *testing.T, price string, quantity int) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), mustMoney(t, price), quantity)
	require.NoError(t, err)
	return item
}

func TestNewItem(t *testing.T) {
	t.Run("should create a valid item", func(t *testing.T) {
		id := kernel.NewUUID()
		productID := kernel.NewUUID()
		price := mustMoney(t, "10.00")

		item, err := order.NewItem(id, productID, price, 2)

		require.NoError(t, err)
		assert.NoError(t, item.Validate())
		assert.True(t, item.ID().IsEqual(id))
		assert.True(t, item.ProductID().IsEqual(productID))
		assert.True(t, item.Price().IsEqual(price))
		assert.Equal(t, 2, item.Quantity())
	})

	t.Run("should reject zero quantity", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), mustMoney(t, "10.00"), 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative quantity", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), mustMoney(t, "10.00"), -3)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject invalid identifiers", func(t *testing.T) {
		_, err := order.NewItem(kernel.UUID{}, kernel.NewUUID(), mustMoney(t, "10.00"), 1)
		require.Error(t, err)

		_, err = order.NewItem(kernel.NewUUID(), kernel.UUID{}, mustMoney(t, "10.00"), 1)
		require.Error(t, err)
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("zero value item is not constructed", func(t *testing.T) {
		var item order.Item

		err := item.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrItemIsNotConstructed)
	})
}

func TestItem_LineTotal(t *testing.T) {
	t.Run("should multiply unit price by quantity", func(t *testing.T) {
		item := mustItem(t, "10.00", 2)

		assert.True(t, item.LineTotal().IsEqual(mustMoney(t, "20.00")))
	})

	t.Run("should stay exact with fractional prices", func(t *testing.T) {
		item := mustItem(t, "0.10", 3)

		assert.True(t, item.LineTotal().IsEqual(mustMoney(t, "0.30")))
	})
}
