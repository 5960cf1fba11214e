package commands

import (
	"errors"
	"fmt"

	"tastyfood/internal/core/domain/model/order"
	"tastyfood/internal/pkg/errs"
	"tastyfood/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand is a partial update of status, driver and delivery ETA.
// Absent (nil) fields are left untouched.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderNo     string
	status      *order.Status
	driverID    *int
	deliveryETA *int

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand parses the optional status (case-insensitive) and checks the
// optional driver key and ETA.
func NewUpdateOrderCommand(orderNo string, status *string, driverID, deliveryETA *int) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{orderNo: orderNo, guard: guard.NewConstructorGuard()}

	var orderNoErr, statusErr, driverErr, etaErr error
	if orderNo == "" {
		orderNoErr = errs.NewValueIsRequiredError("orderNo")
	}
	if status != nil {
		parsed, err := order.ParseStatus(*status)
		statusErr = err
		cmd.status = &parsed
	}
	if driverID != nil {
		if *driverID <= 0 {
			driverErr = errs.NewValueIsInvalidErrorWithCause("driverId", fmt.Errorf("%d is not positive", *driverID))
		}
		id := *driverID
		cmd.driverID = &id
	}
	if deliveryETA != nil {
		if *deliveryETA < 0 {
			etaErr = errs.NewValueIsInvalidErrorWithCause("deliveryEta", fmt.Errorf("%d is negative", *deliveryETA))
		}
		eta := *deliveryETA
		cmd.deliveryETA = &eta
	}

	if err := errors.Join(orderNoErr, statusErr, driverErr, etaErr); err != nil {
		return UpdateOrderCommand{}, err
	}
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderNo() string { return c.orderNo }
func (c UpdateOrderCommand) Status() *order.Status { return c.status }
func (c UpdateOrderCommand) DriverID() *int { return c.driverID }
func (c UpdateOrderCommand) DeliveryETA() *int { return c.deliveryETA }
