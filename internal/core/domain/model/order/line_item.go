package order

import (
	"fmt"

	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/core/domain/model/menu"
	"tastyfood/internal/pkg/errs"
)

// Line is a resolved request for one menu item: the catalog entry and the quantity.
// Callers resolve menu item keys against the catalog before building an order, so an
// order can never be built from a key that does not exist.
type Line struct {
	Item     menu.Item
	Quantity int
}

// LineItem is one (menu item, quantity) entry owned by an order. It refers back to its
// order by order number only.
type LineItem struct {
	id       int
	orderNo  kernel.OrderNumber
	menuItem menu.Item
	quantity int
	amount   kernel.Money
}

func newLineItem(orderNo kernel.OrderNumber, line Line) (*LineItem, error) {
	if err := line.Item.Validate(); err != nil {
		return nil, err
	}
	if line.Quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0 for menu item %d", line.Quantity, line.Item.ID()),
		)
	}
	amount, err := line.Item.Price().Multiply(line.Quantity)
	if err != nil {
		return nil, fmt.Errorf("menu item %d: %w", line.Item.ID(), err)
	}
	return &LineItem{
		orderNo:  orderNo,
		menuItem: line.Item,
		quantity: line.Quantity,
		amount:   amount,
	}, nil
}

// RestoreLineItem rebuilds a persisted line item. Used by repositories only.
func RestoreLineItem(id int, orderNo kernel.OrderNumber, item menu.Item, quantity int) (*LineItem, error) {
	amount, err := item.Price().Multiply(quantity)
	if err != nil {
		return nil, fmt.Errorf("line item %d: %w", id, err)
	}
	return &LineItem{id: id, orderNo: orderNo, menuItem: item, quantity: quantity, amount: amount}, nil
}

// ID returns the storage key, or 0 for a line item that was never loaded from the store.
func (li *LineItem) ID() int { return li.id }

// OrderNumber returns the key of the owning order.
func (li *LineItem) OrderNumber() kernel.OrderNumber { return li.orderNo }

// MenuItem returns the bound catalog entry.
func (li *LineItem) MenuItem() menu.Item { return li.menuItem }

// MenuItemID returns the catalog key.
func (li *LineItem) MenuItemID() int { return li.menuItem.ID() }

// Quantity returns the number of portions ordered.
func (li *LineItem) Quantity() int { return li.quantity }

// Amount returns price x quantity, computed when the line item was built.
func (li *LineItem) Amount() kernel.Money { return li.amount }
