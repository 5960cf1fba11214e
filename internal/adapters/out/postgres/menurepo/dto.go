// Package menurepo reads the seeded menu catalog.
package menurepo

import (
	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/core/domain/model/menu"
)

// MenuItemDTO is the row shape of menu_items.
type MenuItemDTO struct {
	ID           int    `gorm:"column:item_id;primaryKey;autoIncrement:false"`
	Name         string `gorm:"column:item_name"`
	Category     string
	PriceCents   int64
	Availability string
}

// TableName overrides gorm's pluralisation.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// ToDomain converts a row into a catalog item.
func ToDomain(dto MenuItemDTO) (menu.Item, error) {
	price, err := kernel.NewMoney(dto.PriceCents)
	if err != nil {
		return menu.Item{}, err
	}
	return menu.NewItem(dto.ID, dto.Name, dto.Category, price, dto.Availability)
}
