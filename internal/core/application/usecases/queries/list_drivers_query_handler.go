package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ListDriversQueryHandler reads drivers.
type ListDriversQueryHandler struct {
	db *gorm.DB
}

// NewListDriversQueryHandler creates a driver listing handler.
func NewListDriversQueryHandler(db *gorm.DB) ListDriversQueryHandler {
	return ListDriversQueryHandler{db: db}
}

type driverRow struct {
	DriverID           int
	FirstName          string
	LastName           string
	EmploymentStatus   bool
	AvailabilityStatus bool
	Status             string
	HiredDate          *time.Time
}

// Handle returns drivers ordered by key.
func (h ListDriversQueryHandler) Handle(ctx context.Context, query ListDriversQuery) ([]DriverResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx).Table("drivers").Select(
		"driver_id, first_name, last_name, employment_status, availability_status, status, hired_date",
	)
	if query.AvailableOnly() {
		db = db.Where("status = ?", ActiveDriverStatus)
	}

	var rows []driverRow
	if err := db.Order("driver_id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	drivers := make([]DriverResponse, 0, len(rows))
	for _, r := range rows {
		drivers = append(drivers, DriverResponse{
			ID:        r.DriverID,
			FirstName: r.FirstName,
			LastName:  r.LastName,
			Employed:  r.EmploymentStatus,
			Available: r.AvailabilityStatus,
			Status:    r.Status,
			HiredDate: r.HiredDate,
		})
	}
	return drivers, nil
}
