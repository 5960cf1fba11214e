package menu

import (
	"errors"
	"fmt"
	"strings"

	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item was not built through NewItem.
var ErrItemIsNotConstructed = errors.New("menu item must be created via NewItem constructor")

// Item is a read-only catalog entry. The menu is seeded by migrations and the
// ordering workflow only ever resolves items by ID to bind them to line items.
type Item struct {
	id           int
	name         string
	category     string
	price        kernel.Money
	availability string

	isConstructed bool
}

// NewItem creates a menu item. Name and category are required and the ID must be positive.
func NewItem(id int, name, category string, price kernel.Money, availability string) (Item, error) {
	item := Item{
		id:            id,
		name:          strings.TrimSpace(name),
		category:      strings.TrimSpace(category),
		price:         price,
		availability:  availability,
		isConstructed: true,
	}

	var idErr error
	if id <= 0 {
		idErr = errs.NewValueIsInvalidErrorWithCause("menu item id", fmt.Errorf("%d is not positive", id))
	}

	if err := errors.Join(
		idErr,
		requireNonEmpty("menu item name", item.name),
		requireNonEmpty("menu item category", item.category),
	); err != nil {
		return Item{}, err
	}
	return item, nil
}

// Validate reports whether the item was created through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i Item) ID() int { return i.id }
func (i Item) Name() string { return i.name }
func (i Item) Category() string { return i.category }
func (i Item) Price() kernel.Money { return i.price }
func (i Item) Availability() string { return i.availability }

func requireNonEmpty(param, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}
