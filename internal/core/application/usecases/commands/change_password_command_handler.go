package commands

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"tastyfood/internal/core/ports"
	"tastyfood/internal/pkg/errs"
)

// ErrCurrentPasswordIncorrect is returned for an unknown username or a wrong current
// password alike.
var ErrCurrentPasswordIncorrect = errors.New("current password is incorrect")

// ChangePasswordCommandHandler verifies the current password, stores the hash of the
// new one and clears the first-login flag, all in one unit of work.
type ChangePasswordCommandHandler struct {
	uowFactory StaffUoWFactory
	hasher     ports.PasswordHasher
	logger     *zap.Logger
}

// NewChangePasswordCommandHandler creates a handler for password changes.
func NewChangePasswordCommandHandler(
	uowFactory StaffUoWFactory,
	hasher ports.PasswordHasher,
	logger *zap.Logger,
) ChangePasswordCommandHandler {
	return ChangePasswordCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		logger:     logger.With(zap.String("component", "change_password")),
	}
}

// Handle returns ErrCurrentPasswordIncorrect when the old password does not verify.
func (h *ChangePasswordCommandHandler) Handle(ctx context.Context, cmd ChangePasswordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	credRepo := uow.CredentialRepository()
	cred, err := credRepo.Get(ctx, cmd.Username())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrCurrentPasswordIncorrect
		}
		return err
	}

	if err = h.hasher.Verify(cred.PasswordHash(), cmd.oldPassword); err != nil {
		if errors.Is(err, ports.ErrPasswordMismatch) {
			return ErrCurrentPasswordIncorrect
		}
		return fmt.Errorf("verify current password: %w", err)
	}

	hash, err := h.hasher.Hash(cmd.newPassword)
	if err != nil {
		return fmt.Errorf("hash new password: %w", err)
	}

	if err = cred.ChangePassword(hash); err != nil {
		return err
	}

	if err = credRepo.Update(ctx, cred); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.Info("password changed", zap.String("username", cmd.Username()))
	return nil
}
