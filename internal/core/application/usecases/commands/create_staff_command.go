package commands

import (
	"errors"
	"strings"
	"time"

	"tastyfood/internal/core/domain/model/staff"
	"tastyfood/internal/pkg/errs"
	"tastyfood/internal/pkg/guard"
)

var ErrCreateStaffCommandIsNotConstructed = errors.New(
	"CreateStaffCommand must be created via NewCreateStaffCommand constructor",
)

// CreateStaffCommand provisions a staff member and their login credential.
//
// Example:
//
//	cmd, err := NewCreateStaffCommand("Jo", "Smith", "jo@tastyfood.io", "", nil)
//	created, err := handler.Handle(ctx, cmd)
//	fmt.Println(created.Username()) // smith01 for the first Smith
type CreateStaffCommand struct { //nolint:recvcheck //using for validation
	profile staff.Profile

	guard guard.ConstructorGuard
}

// NewCreateStaffCommand validates the profile. A blank status defaults to Active.
func NewCreateStaffCommand(
	firstName, lastName, email, status string,
	hiredAt *time.Time,
) (CreateStaffCommand, error) {
	parsedStatus, statusErr := staff.ParseStatus(status)

	profile := staff.Profile{
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Email:     strings.TrimSpace(email),
		Status:    parsedStatus,
		HiredAt:   hiredAt,
	}

	if err := errors.Join(
		requireField("firstName", profile.FirstName),
		requireField("lastName", profile.LastName),
		requireField("email", profile.Email),
		statusErr,
	); err != nil {
		return CreateStaffCommand{}, err
	}

	return CreateStaffCommand{profile: profile, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateStaffCommand) Validate() error {
	return c.guard.Validate(ErrCreateStaffCommandIsNotConstructed)
}

// Profile returns the normalized profile.
func (c CreateStaffCommand) Profile() staff.Profile {
	return c.profile
}

func requireField(param, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}
