package menurepo

import (
	"context"
	"errors"

	"tastyfood/internal/core/domain/model/menu"
	"tastyfood/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMenuItemRepository implements ports.MenuItemRepository using GORM.
type GormMenuItemRepository struct {
	db *gorm.DB
}

// NewGormMenuItemRepository creates a new GORM menu item repository.
func NewGormMenuItemRepository(db *gorm.DB) *GormMenuItemRepository {
	return &GormMenuItemRepository{db: db}
}

// Get retrieves a catalog item by key.
func (r *GormMenuItemRepository) Get(ctx context.Context, id int) (menu.Item, error) {
	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "item_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return menu.Item{}, errs.NewObjectNotFoundError("menuItem", id)
		}
		return menu.Item{}, err
	}

	return ToDomain(dto)
}
