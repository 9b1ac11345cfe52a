package order_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_String(t *testing.T) {
	t.Run("should return wire-format strings", func(t *testing.T) {
		assert.Equal(t, "CUSTOMER", order.RoleCustomer.String())
		assert.Equal(t, "RESTAURANT", order.RoleRestaurant.String())
		assert.Equal(t, "DELIVERY", order.RoleDelivery.String())
		assert.Equal(t, "ADMIN", order.RoleAdmin.String())
		assert.Equal(t, "UNKNOWN", order.RoleUnknown.String())
	})
}

func TestRoleFromString(t *testing.T) {
	t.Run("should parse valid roles", func(t *testing.T) {
		for _, role := range []order.Role{
			order.RoleCustomer,
			order.RoleRestaurant,
			order.RoleDelivery,
			order.RoleAdmin,
		} {
			parsed, err := order.RoleFromString(role.String())

			require.NoError(t, err)
			assert.Equal(t, role, parsed)
		}
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		for _, s := range []string{"UNKNOWN", "customer", "COURIER", ""} {
			_, err := order.RoleFromString(s)
			require.Error(t, err, "expected %q to be rejected", s)
		}
	})
}

func TestRole_Validate(t *testing.T) {
	t.Run("should validate known roles", func(t *testing.T) {
		require.NoError(t, order.RoleCustomer.Validate())
		require.NoError(t, order.RoleRestaurant.Validate())
		require.NoError(t, order.RoleDelivery.Validate())
		require.NoError(t, order.RoleAdmin.Validate())
	})

	t.Run("should reject unknown roles", func(t *testing.T) {
		require.Error(t, order.RoleUnknown.Validate())
		require.Error(t, order.Role(42).Validate())
	})
}

func TestCanAdvance(t *testing.T) {
	t.Run("customers may never advance", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			assert.False(t, order.CanAdvance(status, order.RoleCustomer),
				"customer should not advance from %s", status)
		}
	})

	t.Run("restaurant advances kitchen stages only", func(t *testing.T) {
		assert.True(t, order.CanAdvance(order.StatusReceived, order.RoleRestaurant))
		assert.True(t, order.CanAdvance(order.StatusPreparing, order.RoleRestaurant))

		assert.False(t, order.CanAdvance(order.StatusReady, order.RoleRestaurant))
		assert.False(t, order.CanAdvance(order.StatusOnTheWay, order.RoleRestaurant))
		assert.False(t, order.CanAdvance(order.StatusDelivered, order.RoleRestaurant))
	})

	t.Run("delivery advances transport stages only", func(t *testing.T) {
		assert.True(t, order.CanAdvance(order.StatusReady, order.RoleDelivery))
		assert.True(t, order.CanAdvance(order.StatusOnTheWay, order.RoleDelivery))

		assert.False(t, order.CanAdvance(order.StatusReceived, order.RoleDelivery))
		assert.False(t, order.CanAdvance(order.StatusPreparing, order.RoleDelivery))
		assert.False(t, order.CanAdvance(order.StatusDelivered, order.RoleDelivery))
	})

	t.Run("admin advances every non-terminal stage", func(t *testing.T) {
		for _, status := range order.AllStatuses()[:4] {
			assert.True(t, order.CanAdvance(status, order.RoleAdmin),
				"admin should advance from %s", status)
		}

		assert.False(t, order.CanAdvance(order.StatusDelivered, order.RoleAdmin))
	})

	t.Run("unknown roles and statuses never advance", func(t *testing.T) {
		assert.False(t, order.CanAdvance(order.StatusReceived, order.RoleUnknown))
		assert.False(t, order.CanAdvance(order.StatusUnknown, order.RoleAdmin))
	})
}
