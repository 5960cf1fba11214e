package menu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/core/domain/model/menu"
	"tastyfood/internal/pkg/errs"
)

func TestNewItem(t *testing.T) {
	price := kernel.MustNewMoney(1799)

	t.Run("valid", func(t *testing.T) {
		item, err := menu.NewItem(7, "  Chicken Parmesan ", "Entree", price, "Available")

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, 7, item.ID())
		assert.Equal(t, "Chicken Parmesan", item.Name())
		assert.Equal(t, "Entree", item.Category())
		assert.Equal(t, price, item.Price())
		assert.Equal(t, "Available", item.Availability())
	})

	t.Run("collects every violation", func(t *testing.T) {
		_, err := menu.NewItem(0, "", " ", price, "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "menu item name")
		assert.Contains(t, err.Error(), "menu item category")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var item menu.Item

		assert.ErrorIs(t, item.Validate(), menu.ErrItemIsNotConstructed)
	})
}
