package commands

import (
	"context"
	"time"

	"tastyfood/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler merges a partial update into an order.
// A driver in the patch is looked up so that the order keeps a name snapshot of it.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for partial order updates.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{uowFactory: uowFactory}
}

// Handle applies the patch. A status change out of COMPLETED/DELIVERED is rejected with
// ValueIsInvalidError and leaves the order unchanged.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	number, err := orderNumberFromRequest(cmd.OrderNo())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, number)
	if err != nil {
		return nil, err
	}

	patch := order.Patch{Status: cmd.Status(), DeliveryETA: cmd.DeliveryETA()}
	if id := cmd.DriverID(); id != nil {
		d, getErr := uow.DriverRepository().Get(ctx, *id)
		if getErr != nil {
			return nil, getErr
		}
		snap := d.Snapshot()
		patch.Driver = &snap
	}

	if patch.IsEmpty() {
		return o, nil
	}

	if err = o.ApplyPatch(patch, time.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
