package queries

import (
	"context"
	"time"

	"tastyfood/internal/pkg/errs"

	"gorm.io/gorm"
)

type staffRow struct {
	StaffID   int
	FirstName string
	LastName  string
	Email     string
	Username  string
	Status    string
	HiredDate *time.Time
}

func findStaff(ctx context.Context, db *gorm.DB, filter string, args ...any) ([]StaffResponse, error) {
	var rows []staffRow
	err := db.WithContext(ctx).Raw(`
		SELECT staff_id, first_name, last_name, email, username, status, hired_date
		FROM staff
	`+filter, args...).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]StaffResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, StaffResponse{
			ID:        r.StaffID,
			FirstName: r.FirstName,
			LastName:  r.LastName,
			Email:     r.Email,
			Username:  r.Username,
			Status:    r.Status,
			HiredDate: r.HiredDate,
		})
	}
	return out, nil
}

// ListStaffQueryHandler reads all staff members.
type ListStaffQueryHandler struct {
	db *gorm.DB
}

// NewListStaffQueryHandler creates a staff listing handler.
func NewListStaffQueryHandler(db *gorm.DB) ListStaffQueryHandler {
	return ListStaffQueryHandler{db: db}
}

// Handle returns all staff members ordered by key.
func (h ListStaffQueryHandler) Handle(ctx context.Context, query ListStaffQuery) ([]StaffResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return findStaff(ctx, h.db, "ORDER BY staff_id")
}

// GetStaffQueryHandler reads one staff member.
type GetStaffQueryHandler struct {
	db *gorm.DB
}

// NewGetStaffQueryHandler creates a single staff lookup handler.
func NewGetStaffQueryHandler(db *gorm.DB) GetStaffQueryHandler {
	return GetStaffQueryHandler{db: db}
}

// Handle returns the staff member or ObjectNotFoundError.
func (h GetStaffQueryHandler) Handle(ctx context.Context, query GetStaffQuery) (StaffResponse, error) {
	if err := query.Validate(); err != nil {
		return StaffResponse{}, err
	}

	found, err := findStaff(ctx, h.db, "WHERE staff_id = ?", query.ID())
	if err != nil {
		return StaffResponse{}, err
	}
	if len(found) == 0 {
		return StaffResponse{}, errs.NewObjectNotFoundError("staff", query.ID())
	}
	return found[0], nil
}
