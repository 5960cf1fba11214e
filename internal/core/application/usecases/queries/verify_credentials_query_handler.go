package queries

import (
	"context"
	"errors"

	"tastyfood/internal/core/ports"

	"gorm.io/gorm"
)

// VerifyCredentialsQueryHandler checks login attempts against stored password hashes.
type VerifyCredentialsQueryHandler struct {
	db     *gorm.DB
	hasher ports.PasswordHasher
}

// NewVerifyCredentialsQueryHandler creates a login verification handler.
func NewVerifyCredentialsQueryHandler(db *gorm.DB, hasher ports.PasswordHasher) VerifyCredentialsQueryHandler {
	return VerifyCredentialsQueryHandler{db: db, hasher: hasher}
}

type credentialRow struct {
	Username       string
	Password       string
	UserType       string
	FirstTimeLogin bool
	Status         *string
}

// Handle returns ErrInvalidCredentials when the username is unknown or the password
// does not match. The staff status is filled in when the login belongs to a staff member.
func (h VerifyCredentialsQueryHandler) Handle(
	ctx context.Context,
	query VerifyCredentialsQuery,
) (VerifiedCredentials, error) {
	if err := query.Validate(); err != nil {
		return VerifiedCredentials{}, err
	}

	var rows []credentialRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT c.username, c.password, c.user_type, c.first_time_login, s.status
		FROM login_credentials c
		LEFT JOIN staff s ON s.username = c.username
		WHERE c.username = ?
	`, query.Username()).Scan(&rows).Error
	if err != nil {
		return VerifiedCredentials{}, err
	}
	if len(rows) == 0 {
		return VerifiedCredentials{}, ErrInvalidCredentials
	}

	row := rows[0]
	if err = h.hasher.Verify(row.Password, query.password); err != nil {
		if errors.Is(err, ports.ErrPasswordMismatch) {
			return VerifiedCredentials{}, ErrInvalidCredentials
		}
		return VerifiedCredentials{}, err
	}

	verified := VerifiedCredentials{
		Username:   row.Username,
		Role:       row.UserType,
		FirstLogin: row.FirstTimeLogin,
	}
	if row.Status != nil {
		verified.Status = *row.Status
	}
	return verified, nil
}
