package queries

import (
	"errors"

	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/pkg/errs"
	"tastyfood/internal/pkg/guard"
)

var (
	ErrListMenuItemsQueryIsNotConstructed = errors.New(
		"ListMenuItemsQuery must be created via NewListMenuItemsQuery constructor",
	)
	ErrGetMenuItemQueryIsNotConstructed = errors.New(
		"GetMenuItemQuery must be created via NewGetMenuItemQuery constructor",
	)
)

// MenuItemResponse is the read model of a catalog entry.
type MenuItemResponse struct {
	ID           int
	Name         string
	Category     string
	Price        kernel.Money
	Availability string
}

// ListMenuItemsQuery lists the whole catalog ordered by key.
type ListMenuItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewListMenuItemsQuery creates a catalog listing query.
func NewListMenuItemsQuery() ListMenuItemsQuery {
	return ListMenuItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrListMenuItemsQueryIsNotConstructed)
}

// GetMenuItemQuery retrieves one catalog entry.
type GetMenuItemQuery struct {
	id    int
	guard guard.ConstructorGuard
}

// NewGetMenuItemQuery creates the query; the key must be positive.
func NewGetMenuItemQuery(id int) (GetMenuItemQuery, error) {
	if id <= 0 {
		return GetMenuItemQuery{}, errs.NewValueIsInvalidError("id")
	}
	return GetMenuItemQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMenuItemQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemQueryIsNotConstructed)
}

// ID returns the requested key.
func (q GetMenuItemQuery) ID() int {
	return q.id
}
