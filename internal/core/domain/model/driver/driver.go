package driver

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tastyfood/internal/pkg/errs"
)

// ErrDriverIsNotConstructed is returned when a Driver was not built through NewDriver.
var ErrDriverIsNotConstructed = errors.New("driver must be created via NewDriver constructor")

// Driver is a delivery driver as seen by the ordering workflow: an identity plus
// employment and availability flags. Orders never hold a live reference to a
// Driver. They copy its name into a Snapshot at assignment time.
type Driver struct {
	id        int
	firstName string
	lastName  string
	employed  bool
	available bool
	status    string
	hiredAt   *time.Time

	isConstructed bool
}

// NewDriver creates a driver. The ID must be positive and both names are required.
func NewDriver(
	id int,
	firstName, lastName string,
	employed, available bool,
	status string,
	hiredAt *time.Time,
) (*Driver, error) {
	d := &Driver{
		id:            id,
		firstName:     strings.TrimSpace(firstName),
		lastName:      strings.TrimSpace(lastName),
		employed:      employed,
		available:     available,
		status:        status,
		hiredAt:       hiredAt,
		isConstructed: true,
	}

	var idErr error
	if id <= 0 {
		idErr = errs.NewValueIsInvalidErrorWithCause("driver id", fmt.Errorf("%d is not positive", id))
	}
	var firstErr, lastErr error
	if d.firstName == "" {
		firstErr = errs.NewValueIsRequiredError("driver first name")
	}
	if d.lastName == "" {
		lastErr = errs.NewValueIsRequiredError("driver last name")
	}
	if err := errors.Join(idErr, firstErr, lastErr); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate reports whether the driver was created through NewDriver.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

func (d *Driver) ID() int { return d.id }
func (d *Driver) FirstName() string { return d.firstName }
func (d *Driver) LastName() string { return d.lastName }
func (d *Driver) IsEmployed() bool { return d.employed }
func (d *Driver) IsAvailable() bool { return d.available }
func (d *Driver) Status() string { return d.status }
func (d *Driver) HiredAt() *time.Time { return d.hiredAt }
func (d *Driver) FullName() string { return d.firstName + " " + d.lastName }

// Snapshot copies the driver's identity for storage on an order.
func (d *Driver) Snapshot() Snapshot {
	return Snapshot{ID: d.id, FirstName: d.firstName, LastName: d.lastName}
}

// Snapshot is the driver identity copied onto an order when the driver is assigned.
// Later changes to the driver record do not touch snapshots already taken.
type Snapshot struct {
	ID        int
	FirstName string
	LastName  string
}
