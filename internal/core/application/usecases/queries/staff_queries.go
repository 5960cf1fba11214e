package queries

import (
	"errors"
	"time"

	"tastyfood/internal/pkg/errs"
	"tastyfood/internal/pkg/guard"
)

var (
	ErrListStaffQueryIsNotConstructed = errors.New(
		"ListStaffQuery must be created via NewListStaffQuery constructor",
	)
	ErrGetStaffQueryIsNotConstructed = errors.New(
		"GetStaffQuery must be created via NewGetStaffQuery constructor",
	)
)

// StaffResponse is the read model of a staff member.
type StaffResponse struct {
	ID        int
	FirstName string
	LastName  string
	Email     string
	Username  string
	Status    string
	HiredDate *time.Time
}

// ListStaffQuery lists every staff member ordered by key.
type ListStaffQuery struct {
	guard guard.ConstructorGuard
}

// NewListStaffQuery creates a staff listing query.
func NewListStaffQuery() ListStaffQuery {
	return ListStaffQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListStaffQuery) Validate() error {
	return q.guard.Validate(ErrListStaffQueryIsNotConstructed)
}

// GetStaffQuery retrieves one staff member.
type GetStaffQuery struct {
	id    int
	guard guard.ConstructorGuard
}

// NewGetStaffQuery creates the query; the key must be positive.
func NewGetStaffQuery(id int) (GetStaffQuery, error) {
	if id <= 0 {
		return GetStaffQuery{}, errs.NewValueIsInvalidError("id")
	}
	return GetStaffQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStaffQuery) Validate() error {
	return q.guard.Validate(ErrGetStaffQueryIsNotConstructed)
}

// ID returns the requested key.
func (q GetStaffQuery) ID() int {
	return q.id
}
