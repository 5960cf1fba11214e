package commands

import (
	"errors"
	"fmt"

	"tastyfood/internal/core/domain/model/order"
	"tastyfood/internal/pkg/errs"
	"tastyfood/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// LineItemRequest asks for Quantity portions of the menu item keyed MenuItemID.
type LineItemRequest struct {
	MenuItemID int
	Quantity   int
}

// CreateOrderCommand represents a request to place a new order. The order number is not
// part of the request: it is allocated when the command is handled.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    []LineItemRequest{{MenuItemID: 1, Quantity: 2}, {MenuItemID: 6, Quantity: 1}},
//	    order.Details{},
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
//	fmt.Println(created.Number()) // FD0001 on an empty store
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	items   []LineItemRequest
	details order.Details

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the requested line items and optional details.
// Menu item keys are only checked for shape here; whether they exist is checked by the handler.
func NewCreateOrderCommand(items []LineItemRequest, details order.Details) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	var statusErr error
	if details.Status != "" {
		statusErr = details.Status.Validate()
	}

	if err := errors.Join(
		cmd.setItems(items),
		statusErr,
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Items returns the requested line items in request order.
func (c CreateOrderCommand) Items() []LineItemRequest {
	out := make([]LineItemRequest, len(c.items))
	copy(out, c.items)
	return out
}

// Details returns the optional order fields.
func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

func (c *CreateOrderCommand) setItems(items []LineItemRequest) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	var itemErrs []error
	for i, item := range items {
		if item.MenuItemID <= 0 {
			itemErrs = append(itemErrs, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("items[%d].menuItemId", i),
				fmt.Errorf("%d is not positive", item.MenuItemID),
			))
		}
		if item.Quantity <= 0 {
			itemErrs = append(itemErrs, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("items[%d].quantity", i),
				fmt.Errorf("%d is not greater than 0", item.Quantity),
			))
		}
	}
	if err := errors.Join(itemErrs...); err != nil {
		return err
	}

	c.items = make([]LineItemRequest, len(items))
	copy(c.items, items)
	return nil
}
