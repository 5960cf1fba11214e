package driverrepo

import (
	"context"
	"errors"

	"tastyfood/internal/core/domain/model/driver"
	"tastyfood/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDriverRepository implements ports.DriverRepository using GORM.
type GormDriverRepository struct {
	db *gorm.DB
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB) *GormDriverRepository {
	return &GormDriverRepository{db: db}
}

// Get retrieves a driver by key.
func (r *GormDriverRepository) Get(ctx context.Context, id int) (*driver.Driver, error) {
	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "driver_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
