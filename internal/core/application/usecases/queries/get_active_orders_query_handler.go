package queries

import (
	"context"

	"tastyfood/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves orders still awaiting delivery.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle returns every order whose status is not finished, oldest number first.
func (h GetActiveOrdersQueryHandler) Handle(ctx context.Context, query GetActiveOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return loadOrders(ctx, h.db,
		"WHERE delivery_status NOT IN ? ORDER BY order_no",
		[]string{order.Completed.String(), order.Delivered.String()},
	)
}
