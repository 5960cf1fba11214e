package ports

import (
	"context"

	"tastyfood/internal/core/domain/model/credential"
	"tastyfood/internal/core/domain/model/staff"
)

// StaffRepository defines the persistence contract for staff aggregates.
type StaffRepository interface {
	// Add inserts a staff member and assigns its storage key.
	// Returns ObjectAlreadyExistsError with param "email", "username" or "name"
	// depending on which unique key is violated.
	Add(ctx context.Context, aggregate *staff.Staff) error

	// Update persists profile changes of an existing staff member.
	Update(ctx context.Context, aggregate *staff.Staff) error

	// Get returns ObjectNotFoundError when no staff member has the key.
	Get(ctx context.Context, id int) (*staff.Staff, error)

	// ExistsByEmail reports whether another staff member already uses email.
	// excludeID is ignored when 0.
	ExistsByEmail(ctx context.Context, email string, excludeID int) (bool, error)

	// ExistsByName reports whether a staff member with the same first and last name exists.
	ExistsByName(ctx context.Context, firstName, lastName string) (bool, error)

	// LockUsernames serializes username allocation for prefix until the surrounding
	// transaction ends. Call it before reading the taken usernames.
	LockUsernames(ctx context.Context, prefix string) error

	// UsernamesWithPrefix returns every stored username that starts with prefix.
	UsernamesWithPrefix(ctx context.Context, prefix string) ([]string, error)
}

// CredentialRepository stores login records.
type CredentialRepository interface {
	// Add returns ObjectAlreadyExistsError (param "username") when the username is taken.
	Add(ctx context.Context, aggregate *credential.Credential) error

	// Update stores the password hash and first-login flag of an existing credential.
	Update(ctx context.Context, aggregate *credential.Credential) error

	// Get returns ObjectNotFoundError when no credential has the username.
	// The row stays locked until the surrounding transaction ends.
	Get(ctx context.Context, username string) (*credential.Credential, error)

	// UsernamesWithPrefix returns every credential username that starts with prefix.
	UsernamesWithPrefix(ctx context.Context, prefix string) ([]string, error)
}
