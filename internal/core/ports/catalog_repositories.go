package ports

import (
	"context"

	"tastyfood/internal/core/domain/model/driver"
	"tastyfood/internal/core/domain/model/menu"
)

// MenuItemRepository resolves menu item keys against the catalog.
type MenuItemRepository interface {
	// Get returns ObjectNotFoundError (param "menuItem") when the key is unknown.
	Get(ctx context.Context, id int) (menu.Item, error)
}

// DriverRepository looks drivers up by key. Driver lifecycle is managed elsewhere.
type DriverRepository interface {
	// Get returns ObjectNotFoundError (param "driver") when the key is unknown.
	Get(ctx context.Context, id int) (*driver.Driver, error)
}
