package credential_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tastyfood/internal/core/domain/model/credential"
	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/pkg/errs"
)

func TestNewStaffCredential(t *testing.T) {
	u, err := kernel.NewUsername("lee", 3)
	require.NoError(t, err)

	c, err := credential.NewStaffCredential(u, "$2a$10$hash")

	require.NoError(t, err)
	require.NoError(t, c.Validate())
	assert.Equal(t, "lee03", c.Username())
	assert.Equal(t, "$2a$10$hash", c.PasswordHash())
	assert.Equal(t, credential.RoleStaff, c.Role())
	assert.True(t, c.IsFirstLogin())
}

func TestNewStaffCredential_Invalid(t *testing.T) {
	c, err := credential.NewStaffCredential(kernel.Username{}, "")

	assert.Nil(t, c)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "password hash")
}

func TestRestoreCredential(t *testing.T) {
	c := credential.RestoreCredential("admin", "h", credential.RoleAdmin, false)

	require.NoError(t, c.Validate())
	assert.Equal(t, credential.RoleAdmin, c.Role())
	assert.False(t, c.IsFirstLogin())

	var zero *credential.Credential
	assert.ErrorIs(t, zero.Validate(), credential.ErrCredentialIsNotConstructed)
}

func TestCredential_ChangePassword(t *testing.T) {
	u, err := kernel.NewUsername("lee", 3)
	require.NoError(t, err)
	c, err := credential.NewStaffCredential(u, "$2a$10$old")
	require.NoError(t, err)

	require.NoError(t, c.ChangePassword("$2a$10$new"))

	assert.Equal(t, "$2a$10$new", c.PasswordHash())
	assert.False(t, c.IsFirstLogin())
	assert.Equal(t, credential.RoleStaff, c.Role())

	err = c.ChangePassword("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Equal(t, "$2a$10$new", c.PasswordHash())

	var zero *credential.Credential
	require.ErrorIs(t, zero.ChangePassword("h"), credential.ErrCredentialIsNotConstructed)
}
