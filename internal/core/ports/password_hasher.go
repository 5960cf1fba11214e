package ports

import "errors"

// ErrPasswordMismatch is returned by PasswordHasher.Verify when the plaintext does not match.
var ErrPasswordMismatch = errors.New("password does not match")

// PasswordHasher turns plaintext passwords into opaque hashes and checks them.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify returns ErrPasswordMismatch when plaintext does not produce hash.
	Verify(hash, plaintext string) error
}
