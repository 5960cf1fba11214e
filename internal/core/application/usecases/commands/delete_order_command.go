package commands

import (
	"errors"

	"tastyfood/internal/pkg/errs"
	"tastyfood/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand removes an order together with its line items.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderNo string

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates the command.
func NewDeleteOrderCommand(orderNo string) (DeleteOrderCommand, error) {
	if orderNo == "" {
		return DeleteOrderCommand{}, errs.NewValueIsRequiredError("orderNo")
	}
	return DeleteOrderCommand{orderNo: orderNo, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) OrderNo() string { return c.orderNo }
