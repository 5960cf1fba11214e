package queries

import (
	"context"

	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler loads a single order read model.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order or ObjectNotFoundError. A number that does not have the
// order number format cannot exist and is reported as not found as well.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	number, err := kernel.ParseOrderNumber(query.OrderNo())
	if err != nil {
		return OrderResponse{}, errs.NewObjectNotFoundErrorWithCause("order", query.OrderNo(), err)
	}

	orders, err := loadOrders(ctx, h.db, "WHERE order_no = ?", number.String())
	if err != nil {
		return OrderResponse{}, err
	}
	if len(orders) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", number.String())
	}

	return orders[0], nil
}
