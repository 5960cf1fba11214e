package commands

import (
	"errors"

	"tastyfood/internal/pkg/errs"
	"tastyfood/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand marks an order as completed. "Mark as delivered" requests use the
// same command.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderNo string

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates the command.
func NewCompleteOrderCommand(orderNo string) (CompleteOrderCommand, error) {
	if orderNo == "" {
		return CompleteOrderCommand{}, errs.NewValueIsRequiredError("orderNo")
	}
	return CompleteOrderCommand{orderNo: orderNo, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

func (c CompleteOrderCommand) OrderNo() string { return c.orderNo }
