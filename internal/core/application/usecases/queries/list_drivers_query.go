package queries

import (
	"errors"
	"time"

	"tastyfood/internal/pkg/guard"
)

var (
	ErrListDriversQueryIsNotConstructed = errors.New(
		"ListDriversQuery must be created via NewListDriversQuery constructor",
	)
)

// ActiveDriverStatus is the driver status that counts as available for assignment.
const ActiveDriverStatus = "Active"

// DriverResponse is the read model of a driver.
type DriverResponse struct {
	ID        int
	FirstName string
	LastName  string
	Employed  bool
	Available bool
	Status    string
	HiredDate *time.Time
}

// ListDriversQuery lists drivers, optionally only those with status Active.
type ListDriversQuery struct {
	availableOnly bool
	guard         guard.ConstructorGuard
}

// NewListDriversQuery creates a driver listing query.
func NewListDriversQuery(availableOnly bool) ListDriversQuery {
	return ListDriversQuery{availableOnly: availableOnly, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListDriversQuery) Validate() error {
	return q.guard.Validate(ErrListDriversQueryIsNotConstructed)
}

// AvailableOnly reports whether only Active drivers are listed.
func (q ListDriversQuery) AvailableOnly() bool {
	return q.availableOnly
}
