package commands

import (
	"context"
	"time"

	"tastyfood/internal/core/domain/model/driver"
	"tastyfood/internal/core/domain/model/order"
)

// AssignDriverCommandHandler copies the chosen driver's name onto an order, or clears
// the driver. The order status is left as it is.
type AssignDriverCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
func NewAssignDriverCommandHandler(uowFactory OrderUoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{uowFactory: uowFactory}
}

// Handle loads the order (ObjectNotFoundError "order" when absent), loads the driver when
// one is given (ObjectNotFoundError "driver" when absent), assigns and stores.
func (h *AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) (*order.Order, error) {
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

	var snapshot *driver.Snapshot
	if id := cmd.DriverID(); id != nil {
		d, getErr := uow.DriverRepository().Get(ctx, *id)
		if getErr != nil {
			return nil, getErr
		}
		snap := d.Snapshot()
		snapshot = &snap
	}

	o.AssignDriver(snapshot, time.Now())

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
