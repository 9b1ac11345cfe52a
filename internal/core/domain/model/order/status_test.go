package order_test

import (
	"fmt"
	"testing"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.StatusUnknown))
		assert.Equal(t, 1, int(order.StatusReceived))
		assert.Equal(t, 2, int(order.StatusPreparing))
		assert.Equal(t, 3, int(order.StatusReady))
		assert.Equal(t, 4, int(order.StatusOnTheWay))
		assert.Equal(t, 5, int(order.StatusDelivered))
	})

	t.Run("should expose all five statuses in forward order", func(t *testing.T) {
		assert.Equal(t, []order.Status{
			order.StatusReceived,
			order.StatusPreparing,
			order.StatusReady,
			order.StatusOnTheWay,
			order.StatusDelivered,
		}, order.AllStatuses())
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.StatusUnknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Status(-1),
			order.Status(6),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire-format strings", func(t *testing.T) {
		assert.Equal(t, "RECEIVED", order.StatusReceived.String())
		assert.Equal(t, "PREPARING", order.StatusPreparing.String())
		assert.Equal(t, "READY", order.StatusReady.String())
		assert.Equal(t, "ON_THE_WAY", order.StatusOnTheWay.String())
		assert.Equal(t, "DELIVERED", order.StatusDelivered.String())
	})

	t.Run("should return UNKNOWN for invalid values", func(t *testing.T) {
		assert.Equal(t, "UNKNOWN", order.StatusUnknown.String())
		assert.Equal(t, "UNKNOWN", order.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse every wire string", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			parsed, err := order.StatusFromString(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		for _, s := range []string{"UNKNOWN", "received", "CANCELLED", ""} {
			_, err := order.StatusFromString(s)
			require.Error(t, err, "expected %q to be rejected", s)
		}
	})
}

func TestStatus_Next(t *testing.T) {
	t.Run("should walk the full sequence from Received to Delivered", func(t *testing.T) {
		current := order.StatusReceived

		for i := 0; i < 4; i++ {
			next, ok := current.Next()
			require.True(t, ok, "step %d from %s should have a successor", i, current)
			current = next
		}

		assert.Equal(t, order.StatusDelivered, current)

		// The fifth call finds no successor.
		_, ok := current.Next()
		assert.False(t, ok)
	})

	t.Run("should return single successor for each state", func(t *testing.T) {
		expected := map[order.Status]order.Status{
			order.StatusReceived:  order.StatusPreparing,
			order.StatusPreparing: order.StatusReady,
			order.StatusReady:     order.StatusOnTheWay,
			order.StatusOnTheWay:  order.StatusDelivered,
		}

		for from, to := range expected {
			next, ok := from.Next()
			require.True(t, ok)
			assert.Equal(t, to, next)
		}
	})

	t.Run("should return no successor for invalid values", func(t *testing.T) {
		_, ok := order.StatusUnknown.Next()
		assert.False(t, ok)

		_, ok = order.Status(42).Next()
		assert.False(t, ok)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("only Delivered is terminal", func(t *testing.T) {
		assert.True(t, order.StatusDelivered.IsTerminal())

		for _, status := range order.AllStatuses()[:4] {
			assert.False(t, status.IsTerminal(), "%s should not be terminal", status)
		}
	})

	t.Run("invalid values are not terminal", func(t *testing.T) {
		assert.False(t, order.StatusUnknown.IsTerminal())
	})
}

func TestStatus_Index(t *testing.T) {
	t.Run("should return the position in the sequence", func(t *testing.T) {
		assert.Equal(t, 0, order.StatusReceived.Index())
		assert.Equal(t, 1, order.StatusPreparing.Index())
		assert.Equal(t, 2, order.StatusReady.Index())
		assert.Equal(t, 3, order.StatusOnTheWay.Index())
		assert.Equal(t, 4, order.StatusDelivered.Index())
	})

	t.Run("should return -1 for invalid values", func(t *testing.T) {
		assert.Equal(t, -1, order.StatusUnknown.Index())
		assert.Equal(t, -1, order.Status(42).Index())
	})
}
