package queries

import (
	"errors"
	"strings"

	"tastyfood/internal/pkg/errs"
	"tastyfood/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order with its line items by order number.
//
// Example:
//
//	query, err := NewGetOrderQuery("FD0042")
//	handler := NewGetOrderQueryHandler(db)
//	o, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderNo string
	guard   guard.ConstructorGuard
}

// NewGetOrderQuery creates the query. The order number is required but not parsed
// here; a malformed number simply matches no order.
func NewGetOrderQuery(orderNo string) (GetOrderQuery, error) {
	orderNo = strings.TrimSpace(orderNo)
	if orderNo == "" {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("orderNo")
	}
	return GetOrderQuery{orderNo: orderNo, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderNo returns the requested order number.
func (q GetOrderQuery) OrderNo() string {
	return q.orderNo
}
