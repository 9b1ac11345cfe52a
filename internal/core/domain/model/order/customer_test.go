package order_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("should create customer with all fields", func(t *testing.T) {
		c, err := order.NewCustomer("Juan Perez", "555-1111", "juan@email.com", "Main Street 123")

		require.NoError(t, err)
		assert.Equal(t, "Juan Perez", c.Name())
		assert.Equal(t, "555-1111", c.Phone())
		assert.Equal(t, "juan@email.com", c.Email())
		assert.Equal(t, "Main Street 123", c.DeliveryAddress())
	})

	t.Run("email is optional", func(t *testing.T) {
		c, err := order.NewCustomer("Maria Garcia", "555-2222", "", "Central Avenue 456")

		require.NoError(t, err)
		assert.Empty(t, c.Email())
	})

	t.Run("should require name", func(t *testing.T) {
		_, err := order.NewCustomer("", "555-1111", "", "Main Street 123")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should require phone", func(t *testing.T) {
		_, err := order.NewCustomer("Juan Perez", "", "", "Main Street 123")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should require delivery address", func(t *testing.T) {
		_, err := order.NewCustomer("Juan Perez", "555-1111", "", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should join multiple validation failures", func(t *testing.T) {
		_, err := order.NewCustomer("", "", "", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "customer name")
		assert.Contains(t, err.Error(), "customer phone")
		assert.Contains(t, err.Error(), "delivery address")
	})
}

func TestCustomer_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var c order.Customer

		require.ErrorIs(t, c.Validate(), order.ErrCustomerIsNotConstructed)
	})

	t.Run("constructed customer passes validation", func(t *testing.T) {
		c, err := order.NewCustomer("Juan Perez", "555-1111", "", "Main Street 123")
		require.NoError(t, err)

		require.NoError(t, c.Validate())
	})
}
