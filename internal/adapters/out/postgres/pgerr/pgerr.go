// Package pgerr maps Postgres constraint violations onto the error taxonomy.
package pgerr

import (
	"errors"

	"tastyfood/internal/pkg/errs"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// constraintParams names the request parameter each unique constraint protects.
var constraintParams = map[string]string{
	"orders_pkey":            "orderNo",
	"staff_email_key":        "email",
	"staff_username_key":     "username",
	"staff_name_key":         "name",
	"login_credentials_pkey": "username",
}

// ParamForConstraint returns the parameter name guarded by a unique constraint.
func ParamForConstraint(constraint string) (string, bool) {
	p, ok := constraintParams[constraint]
	return p, ok
}

// IsUniqueViolation reports whether err is a Postgres unique_violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// Translate converts a unique violation on a known constraint into an
// ObjectAlreadyExistsError. values supplies the offending value per parameter.
// Any other error is returned unchanged.
func Translate(err error, values map[string]any) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return err
	}

	param, ok := constraintParams[pgErr.ConstraintName]
	if !ok {
		param = pgErr.ConstraintName
	}

	return errs.NewObjectAlreadyExistsErrorWithCause(param, values[param], err)
}
