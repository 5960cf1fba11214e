package queries

import (
	"errors"
	"strings"

	"tastyfood/internal/pkg/errs"
	"tastyfood/internal/pkg/guard"
)

var (
	ErrVerifyCredentialsQueryIsNotConstructed = errors.New(
		"VerifyCredentialsQuery must be created via NewVerifyCredentialsQuery constructor",
	)

	// ErrInvalidCredentials is returned for an unknown username or a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// VerifyCredentialsQuery checks a username and password pair.
type VerifyCredentialsQuery struct {
	username string
	password string
	guard    guard.ConstructorGuard
}

// NewVerifyCredentialsQuery requires both values to be non-empty.
func NewVerifyCredentialsQuery(username, password string) (VerifyCredentialsQuery, error) {
	username = strings.TrimSpace(username)
	var userErr, passErr error
	if username == "" {
		userErr = errs.NewValueIsRequiredError("username")
	}
	if password == "" {
		passErr = errs.NewValueIsRequiredError("password")
	}
	if err := errors.Join(userErr, passErr); err != nil {
		return VerifyCredentialsQuery{}, err
	}
	return VerifyCredentialsQuery{username: username, password: password, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q VerifyCredentialsQuery) Validate() error {
	return q.guard.Validate(ErrVerifyCredentialsQueryIsNotConstructed)
}

// Username returns the login name.
func (q VerifyCredentialsQuery) Username() string {
	return q.username
}

// VerifiedCredentials describes a successful login. Status is empty for accounts
// without a staff record.
type VerifiedCredentials struct {
	Username   string
	Role       string
	FirstLogin bool
	Status     string
}
