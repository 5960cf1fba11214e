package commands

import (
	"context"

	"tastyfood/internal/core/domain/model/kernel"
)

// DeleteOrderCommandHandler deletes orders. Deleting an order that does not exist,
// including one addressed by a malformed number, succeeds without doing anything.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the order and its line items in one transaction.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	number, err := kernel.ParseOrderNumber(cmd.OrderNo())
	if err != nil {
		return nil //nolint:nilerr // no stored order can carry a malformed number
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Delete(ctx, number); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
