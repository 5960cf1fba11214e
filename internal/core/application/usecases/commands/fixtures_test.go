package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tastyfood/internal/core/application/usecases/commands"
	"tastyfood/internal/core/domain/model/driver"
	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/core/domain/model/menu"
	"tastyfood/internal/core/domain/model/order"
)

var fastRetry = commands.RetryPolicy{MaxRetries: 3, BaseDelay: time.Millisecond}

func menuItem(t *testing.T, id int, cents int64) menu.Item {
	t.Helper()
	item, err := menu.NewItem(id, "Item", "Entree", kernel.MustNewMoney(cents), "Available")
	require.NoError(t, err)
	return item
}

func storedOrder(t *testing.T, number string) *order.Order {
	t.Helper()
	n, err := kernel.ParseOrderNumber(number)
	require.NoError(t, err)
	li, err := order.RestoreLineItem(1, n, menuItem(t, 1, 1799), 2)
	require.NoError(t, err)
	o, err := order.RestoreOrder(order.State{
		Number:    n,
		Status:    order.Pending,
		OrderedAt: time.Now(),
		Items:     []*order.LineItem{li},
	})
	require.NoError(t, err)
	return o
}

func annLee(t *testing.T) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(5, "Ann", "Lee", true, true, "Active", nil)
	require.NoError(t, err)
	return d
}

func orderNumber(t *testing.T, raw string) kernel.OrderNumber {
	t.Helper()
	n, err := kernel.ParseOrderNumber(raw)
	require.NoError(t, err)
	return n
}
