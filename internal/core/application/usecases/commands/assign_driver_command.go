package commands

import (
	"errors"
	"fmt"

	"tastyfood/internal/pkg/errs"
	"tastyfood/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand assigns a driver to an order, or clears the assignment when the
// driver ID is nil.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	orderNo  string
	driverID *int

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates the command. A nil driverID means "unassign".
func NewAssignDriverCommand(orderNo string, driverID *int) (AssignDriverCommand, error) {
	if orderNo == "" {
		return AssignDriverCommand{}, errs.NewValueIsRequiredError("orderNo")
	}
	if driverID != nil && *driverID <= 0 {
		return AssignDriverCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"driverId", fmt.Errorf("%d is not positive", *driverID))
	}

	var id *int
	if driverID != nil {
		v := *driverID
		id = &v
	}
	return AssignDriverCommand{orderNo: orderNo, driverID: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

func (c AssignDriverCommand) OrderNo() string { return c.orderNo }

// DriverID returns nil for an unassignment.
func (c AssignDriverCommand) DriverID() *int { return c.driverID }
