package queries

import (
	"errors"

	"tastyfood/internal/core/domain/model/order"
	"tastyfood/internal/pkg/guard"
)

var (
	ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
		"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
	)
)

// GetOrdersByStatusQuery lists orders in a delivery status. The status is matched
// case-insensitively and COMPLETED and DELIVERED select the same orders.
type GetOrdersByStatusQuery struct {
	status order.Status
	guard  guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery parses the status; an unknown value is a validation error.
func NewGetOrdersByStatusQuery(status string) (GetOrdersByStatusQuery, error) {
	parsed, err := order.ParseStatus(status)
	if err != nil {
		return GetOrdersByStatusQuery{}, err
	}
	return GetOrdersByStatusQuery{status: parsed, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the parsed status.
func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}

// storedStatuses lists every stored value equivalent to the requested status.
func (q GetOrdersByStatusQuery) storedStatuses() []string {
	if q.status.IsFinished() {
		return []string{order.Completed.String(), order.Delivered.String()}
	}
	return []string{q.status.String()}
}
