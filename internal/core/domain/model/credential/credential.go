package credential

import (
	"errors"

	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/pkg/errs"
)

// InitialPassword is the password every provisioned staff account starts with.
// The first-login flag forces a change on first use.
const InitialPassword = "password"

// Role marks what kind of account a credential belongs to.
type Role string

const (
	RoleStaff Role = "STAFF"
	RoleAdmin Role = "ADMIN"
)

// ErrCredentialIsNotConstructed is returned when a Credential was not built through a constructor.
var ErrCredentialIsNotConstructed = errors.New("credential must be created via NewStaffCredential constructor")

// Credential is the login record paired 1:1 with a staff member through the username.
type Credential struct {
	username     string
	passwordHash string
	role         Role
	firstLogin   bool

	isConstructed bool
}

// NewStaffCredential creates the companion credential of a new staff member with role
// STAFF and the first-login flag set.
func NewStaffCredential(username kernel.Username, passwordHash string) (*Credential, error) {
	var hashErr error
	if passwordHash == "" {
		hashErr = errs.NewValueIsRequiredError("password hash")
	}
	if err := errors.Join(username.Validate(), hashErr); err != nil {
		return nil, err
	}
	return &Credential{
		username:      username.String(),
		passwordHash:  passwordHash,
		role:          RoleStaff,
		firstLogin:    true,
		isConstructed: true,
	}, nil
}

// RestoreCredential rebuilds a stored credential.
func RestoreCredential(username, passwordHash string, role Role, firstLogin bool) *Credential {
	return &Credential{
		username:      username,
		passwordHash:  passwordHash,
		role:          role,
		firstLogin:    firstLogin,
		isConstructed: true,
	}
}

// Validate ensures the credential was properly constructed.
func (c *Credential) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCredentialIsNotConstructed
	}
	return nil
}

// ChangePassword replaces the password hash and clears the first-login flag.
func (c *Credential) ChangePassword(passwordHash string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}

	c.passwordHash = passwordHash
	c.firstLogin = false
	return nil
}

func (c *Credential) Username() string { return c.username }
func (c *Credential) PasswordHash() string { return c.passwordHash }
func (c *Credential) Role() Role { return c.role }
func (c *Credential) IsFirstLogin() bool { return c.firstLogin }
