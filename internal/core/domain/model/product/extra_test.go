package product_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/product"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExtra(t *testing.T) {
	t.Run("should create extra with all fields", func(t *testing.T) {
		id := kernel.NewUUID()

		e, err := product.NewExtra(id, "extra cheese", mustMoney(t, "2.50"), "cheese")

		require.NoError(t, err)
		assert.Equal(t, id, e.ID())
		assert.Equal(t, "extra cheese", e.Name())
		assert.Equal(t, int64(250), e.Price().Cents())
		assert.Equal(t, "cheese", e.Category())
	})

	t.Run("category is optional", func(t *testing.T) {
		e, err := product.NewExtra(kernel.NewUUID(), "extra sauce", mustMoney(t, "1.00"), "")

		require.NoError(t, err)
		assert.Empty(t, e.Category())
	})

	t.Run("should require valid id", func(t *testing.T) {
		_, err := product.NewExtra(kernel.UUID{}, "extra cheese", mustMoney(t, "2.50"), "cheese")

		require.Error(t, err)
	})

	t.Run("should require name", func(t *testing.T) {
		_, err := product.NewExtra(kernel.NewUUID(), "", mustMoney(t, "2.50"), "cheese")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestExtra_IsEqual(t *testing.T) {
	id := kernel.NewUUID()

	a, err := product.NewExtra(id, "extra meat", mustMoney(t, "4.00"), "meat")
	require.NoError(t, err)
	b, err := product.NewExtra(id, "extra meat", mustMoney(t, "4.00"), "meat")
	require.NoError(t, err)
	c, err := product.NewExtra(kernel.NewUUID(), "extra meat", mustMoney(t, "4.00"), "meat")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}

func TestExtra_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var e product.Extra

		require.ErrorIs(t, e.Validate(), product.ErrExtraIsNotConstructed)
	})

	t.Run("constructed extra passes validation", func(t *testing.T) {
		e, err := product.NewExtra(kernel.NewUUID(), "extra vegetables", mustMoney(t, "1.50"), "vegetables")
		require.NoError(t, err)

		require.NoError(t, e.Validate())
	})
}
