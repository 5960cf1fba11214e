package ports

import (
	"context"

	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order and its line items are always written together.
type OrderRepository interface {
	// Add persists a new order together with all of its line items.
	// Returns ObjectAlreadyExistsError (param "orderNo") when the number is taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, driver, delivery and ETA changes of an existing order.
	// Line items are immutable and are not rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its line items by order number and locks the order
	// row until the surrounding transaction ends, so read-modify-write cycles on the
	// same order run one after another.
	// Returns ObjectNotFoundError when absent.
	Get(ctx context.Context, number kernel.OrderNumber) (*order.Order, error)

	// LockNumbering serializes order number allocation until the surrounding
	// transaction ends. Call it before LastOrderNumber.
	LockNumbering(ctx context.Context) error

	// LastOrderNumber returns the greatest stored order number as stored, without
	// parsing it. found is false when there are no orders.
	LastOrderNumber(ctx context.Context) (last string, found bool, err error)

	// Delete removes an order and its line items. Deleting an absent order is not an error.
	Delete(ctx context.Context, number kernel.OrderNumber) error
}
