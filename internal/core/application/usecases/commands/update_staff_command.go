package commands

import (
	"errors"
	"fmt"
	"time"

	"tastyfood/internal/core/domain/model/staff"
	"tastyfood/internal/pkg/errs"
	"tastyfood/internal/pkg/guard"
)

var ErrUpdateStaffCommandIsNotConstructed = errors.New(
	"UpdateStaffCommand must be created via NewUpdateStaffCommand constructor",
)

// UpdateStaffCommand is a partial update of a staff profile. The username never changes.
type UpdateStaffCommand struct { //nolint:recvcheck //using for validation
	staffID int
	patch   staff.Patch

	guard guard.ConstructorGuard
}

// NewUpdateStaffCommand creates the command. Nil fields are left untouched.
func NewUpdateStaffCommand(
	staffID int,
	firstName, lastName, email, status *string,
	hiredAt *time.Time,
) (UpdateStaffCommand, error) {
	cmd := UpdateStaffCommand{
		staffID: staffID,
		patch: staff.Patch{
			FirstName: firstName,
			LastName:  lastName,
			Email:     email,
			HiredAt:   hiredAt,
		},
		guard: guard.NewConstructorGuard(),
	}

	var idErr, statusErr error
	if staffID <= 0 {
		idErr = errs.NewValueIsInvalidErrorWithCause("staffId", fmt.Errorf("%d is not positive", staffID))
	}
	if status != nil {
		parsed, err := staff.ParseStatus(*status)
		statusErr = err
		cmd.patch.Status = &parsed
	}

	if err := errors.Join(idErr, statusErr); err != nil {
		return UpdateStaffCommand{}, err
	}
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateStaffCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStaffCommandIsNotConstructed)
}

func (c UpdateStaffCommand) StaffID() int { return c.staffID }
func (c UpdateStaffCommand) Patch() staff.Patch { return c.patch }
