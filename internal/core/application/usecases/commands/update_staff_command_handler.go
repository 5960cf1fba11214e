package commands

import (
	"context"
	"strings"

	"tastyfood/internal/core/domain/model/staff"
	"tastyfood/internal/pkg/errs"
)

// UpdateStaffCommandHandler merges profile changes into a staff record.
type UpdateStaffCommandHandler struct {
	uowFactory StaffUoWFactory
}

// NewUpdateStaffCommandHandler creates a handler for staff profile updates.
func NewUpdateStaffCommandHandler(uowFactory StaffUoWFactory) UpdateStaffCommandHandler {
	return UpdateStaffCommandHandler{uowFactory: uowFactory}
}

// Handle returns ObjectNotFoundError for an unknown staff key and ObjectAlreadyExistsError
// when the new email belongs to someone else.
func (h *UpdateStaffCommandHandler) Handle(ctx context.Context, cmd UpdateStaffCommand) (*staff.Staff, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	staffRepo := uow.StaffRepository()
	s, err := staffRepo.Get(ctx, cmd.StaffID())
	if err != nil {
		return nil, err
	}

	patch := cmd.Patch()
	if patch.Email != nil {
		email := strings.TrimSpace(*patch.Email)
		taken, existsErr := staffRepo.ExistsByEmail(ctx, email, s.ID())
		if existsErr != nil {
			return nil, existsErr
		}
		if taken {
			return nil, errs.NewObjectAlreadyExistsError("email", email)
		}
	}

	if err = s.Update(patch); err != nil {
		return nil, err
	}

	if err = staffRepo.Update(ctx, s); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}
