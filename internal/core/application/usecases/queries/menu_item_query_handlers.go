package queries

import (
	"context"

	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/pkg/errs"

	"gorm.io/gorm"
)

type menuItemRow struct {
	ItemID       int
	ItemName     string
	Category     string
	PriceCents   int64
	Availability string
}

const selectMenuItems = `
	SELECT item_id, item_name, category, price_cents, availability
	FROM menu_items
`

// ListMenuItemsQueryHandler reads the catalog.
type ListMenuItemsQueryHandler struct {
	db *gorm.DB
}

// NewListMenuItemsQueryHandler creates a catalog listing handler.
func NewListMenuItemsQueryHandler(db *gorm.DB) ListMenuItemsQueryHandler {
	return ListMenuItemsQueryHandler{db: db}
}

// Handle returns every catalog item ordered by key.
func (h ListMenuItemsQueryHandler) Handle(ctx context.Context, query ListMenuItemsQuery) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(selectMenuItems + "ORDER BY item_id").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]MenuItemResponse, 0)
	for rows.Next() {
		var row menuItemRow
		if err = rows.Scan(&row.ItemID, &row.ItemName, &row.Category, &row.PriceCents, &row.Availability); err != nil {
			return nil, err
		}
		item, convErr := toMenuItemResponse(row)
		if convErr != nil {
			return nil, convErr
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// GetMenuItemQueryHandler reads one catalog item.
type GetMenuItemQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuItemQueryHandler creates a single item lookup handler.
func NewGetMenuItemQueryHandler(db *gorm.DB) GetMenuItemQueryHandler {
	return GetMenuItemQueryHandler{db: db}
}

// Handle returns the item or ObjectNotFoundError.
func (h GetMenuItemQueryHandler) Handle(ctx context.Context, query GetMenuItemQuery) (MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return MenuItemResponse{}, err
	}

	var rows []menuItemRow
	err := h.db.WithContext(ctx).Raw(selectMenuItems+"WHERE item_id = ?", query.ID()).Scan(&rows).Error
	if err != nil {
		return MenuItemResponse{}, err
	}
	if len(rows) == 0 {
		return MenuItemResponse{}, errs.NewObjectNotFoundError("menuItem", query.ID())
	}

	return toMenuItemResponse(rows[0])
}

func toMenuItemResponse(row menuItemRow) (MenuItemResponse, error) {
	price, err := kernel.NewMoney(row.PriceCents)
	if err != nil {
		return MenuItemResponse{}, err
	}
	return MenuItemResponse{
		ID:           row.ItemID,
		Name:         row.ItemName,
		Category:     row.Category,
		Price:        price,
		Availability: row.Availability,
	}, nil
}
