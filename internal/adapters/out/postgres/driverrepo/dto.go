// Package driverrepo looks drivers up for order assignment.
package driverrepo

import (
	"time"

	"tastyfood/internal/core/domain/model/driver"
)

// DriverDTO is the row shape of drivers.
type DriverDTO struct {
	ID                 int `gorm:"column:driver_id;primaryKey"`
	FirstName          string
	LastName           string
	EmploymentStatus   bool
	AvailabilityStatus bool
	Status             string
	HiredDate          *time.Time `gorm:"type:date"`
}

// TableName overrides gorm's pluralisation.
func (DriverDTO) TableName() string {
	return "drivers"
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	return driver.NewDriver(
		dto.ID,
		dto.FirstName,
		dto.LastName,
		dto.EmploymentStatus,
		dto.AvailabilityStatus,
		dto.Status,
		dto.HiredDate,
	)
}
