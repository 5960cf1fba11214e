package commands

import (
	"errors"
	"strings"

	"tastyfood/internal/pkg/errs"
	"tastyfood/internal/pkg/guard"
)

var ErrChangePasswordCommandIsNotConstructed = errors.New(
	"ChangePasswordCommand must be created via NewChangePasswordCommand constructor",
)

// ChangePasswordCommand replaces the password of a login after checking the current one.
type ChangePasswordCommand struct { //nolint:recvcheck //using for validation
	username    string
	oldPassword string
	newPassword string

	guard guard.ConstructorGuard
}

// NewChangePasswordCommand requires every value to be non-empty.
func NewChangePasswordCommand(username, oldPassword, newPassword string) (ChangePasswordCommand, error) {
	username = strings.TrimSpace(username)

	var userErr, oldErr, newErr error
	if username == "" {
		userErr = errs.NewValueIsRequiredError("username")
	}
	if oldPassword == "" {
		oldErr = errs.NewValueIsRequiredError("oldPassword")
	}
	if newPassword == "" {
		newErr = errs.NewValueIsRequiredError("newPassword")
	}
	if err := errors.Join(userErr, oldErr, newErr); err != nil {
		return ChangePasswordCommand{}, err
	}

	return ChangePasswordCommand{
		username:    username,
		oldPassword: oldPassword,
		newPassword: newPassword,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangePasswordCommand) Validate() error {
	return c.guard.Validate(ErrChangePasswordCommandIsNotConstructed)
}

func (c ChangePasswordCommand) Username() string { return c.username }
