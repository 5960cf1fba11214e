package commands

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tastyfood/internal/core/domain/model/credential"
	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/core/domain/model/staff"
	"tastyfood/internal/core/domain/services"
	"tastyfood/internal/core/ports"
	"tastyfood/internal/pkg/errs"
)

// CreateStaffCommandHandler provisions staff members.
//
// The staff record and its credential are written in one unit of work, so a failure
// while storing the credential leaves no staff record behind. The username is allocated
// from the last name under a per-prefix lock, skipping every username taken by a staff
// record or by a credential. When an insert still collides on the username, the
// attempt is rolled back and retried. Duplicate emails and name pairs are conflicts
// that are reported without retrying.
type CreateStaffCommandHandler struct {
	uowFactory StaffUoWFactory
	hasher     ports.PasswordHasher
	allocator  services.IdentifierAllocator
	retry      RetryPolicy
	logger     *zap.Logger
}

// NewCreateStaffCommandHandler creates a handler for staff provisioning.
func NewCreateStaffCommandHandler(
	uowFactory StaffUoWFactory,
	hasher ports.PasswordHasher,
	retry RetryPolicy,
	logger *zap.Logger,
) CreateStaffCommandHandler {
	return CreateStaffCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		allocator:  services.NewIdentifierAllocator(),
		retry:      retry,
		logger:     logger.With(zap.String("component", "create_staff")),
	}
}

// Handle provisions the staff member and returns it with its storage key and username.
func (h *CreateStaffCommandHandler) Handle(ctx context.Context, cmd CreateStaffCommand) (*staff.Staff, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := h.hasher.Hash(credential.InitialPassword)
	if err != nil {
		return nil, fmt.Errorf("hash initial password: %w", err)
	}

	var created *staff.Staff
	err = retryOnIdentifierConflict(ctx, h.retry, h.logger, "username", func(ctx context.Context) error {
		s, attemptErr := h.attempt(ctx, cmd.Profile(), passwordHash)
		if attemptErr != nil {
			return attemptErr
		}
		created = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	h.logger.Info("staff provisioned",
		zap.Int("staffId", created.ID()),
		zap.String("username", created.Username().String()),
	)
	return created, nil
}

func (h *CreateStaffCommandHandler) attempt(
	ctx context.Context,
	profile staff.Profile,
	passwordHash string,
) (*staff.Staff, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	staffRepo := uow.StaffRepository()

	taken, err := staffRepo.ExistsByEmail(ctx, profile.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewObjectAlreadyExistsError("email", profile.Email)
	}

	taken, err = staffRepo.ExistsByName(ctx, profile.FirstName, profile.LastName)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewObjectAlreadyExistsError("name", profile.FirstName+" "+profile.LastName)
	}

	prefix, err := kernel.UsernamePrefix(profile.LastName)
	if err != nil {
		return nil, err
	}
	if err = staffRepo.LockUsernames(ctx, prefix); err != nil {
		return nil, err
	}

	existing, err := staffRepo.UsernamesWithPrefix(ctx, prefix)
	if err != nil {
		return nil, err
	}
	credRepo := uow.CredentialRepository()
	accounts, err := credRepo.UsernamesWithPrefix(ctx, prefix)
	if err != nil {
		return nil, err
	}
	existing = append(existing, accounts...)

	username, err := h.allocator.NextUsername(profile.LastName, existing)
	if err != nil {
		return nil, err
	}

	s, err := staff.NewStaff(profile, username, time.Now())
	if err != nil {
		return nil, err
	}
	if err = staffRepo.Add(ctx, s); err != nil {
		return nil, err
	}

	cred, err := credential.NewStaffCredential(username, passwordHash)
	if err != nil {
		return nil, err
	}
	if err = credRepo.Add(ctx, cred); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}
