package order

import (
	"errors"
	"fmt"
	"time"

	"tastyfood/internal/core/domain/model/driver"
	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("order must be created via NewOrder constructor")
)

// Order is the aggregate root of the ordering workflow. It is identified by its order
// number, owns its line items and keeps a snapshot of the assigned driver's name.
//
// Order follows these invariants:
//   - The order number is valid and never changes after construction
//   - Every line item references a resolved menu item with a positive quantity
//   - Status is PENDING, COMPLETED or DELIVERED, and nothing leaves a finished status
//   - The driver snapshot is present exactly when a driver is assigned
//   - Can only be created through NewOrder (or RestoreOrder for persisted state)
type Order struct {
	kernel.EventRecorder

	number kernel.OrderNumber

	subtotal kernel.Money
	tip      kernel.Money
	total    kernel.Money

	orderedAt   time.Time
	deliveredAt *time.Time
	status      Status
	deliveryETA *int

	// driver is a copy taken at assignment time, not a live reference
	driver *driver.Snapshot

	addressID *int
	paymentID *int
	rewardsNo *int

	items []*LineItem

	isConstructed bool
}

// Details carries the caller-supplied fields of a new order. Pointer fields are optional.
type Details struct {
	// Subtotal defaults to the sum of line item amounts.
	Subtotal *kernel.Money
	Tip      kernel.Money
	// Total defaults to Subtotal + Tip.
	Total *kernel.Money
	// OrderedAt defaults to the construction time.
	OrderedAt *time.Time
	// Status defaults to Pending.
	Status      Status
	DeliveryETA *int
	AddressID   *int
	PaymentID   *int
	RewardsNo   *int
}

// NewOrder builds a new order from an allocated number, the caller's details and the
// already resolved lines.
//
// Parameters:
//   - number: order number produced by the identifier allocator
//   - details: optional fields; omitted ones are defaulted
//   - lines: at least one resolved menu item with a positive quantity
//   - now: construction time, used for the default order date/time
//
// Returns:
//   - *Order: the order in PENDING status (unless details say otherwise) with no driver;
//     an order created as COMPLETED or DELIVERED is stamped as delivered at now
//   - error: joined validation errors for every invalid input
//
// Example:
//
//	number := kernel.FirstOrderNumber()
//	o, err := order.NewOrder(number, order.Details{}, []order.Line{{Item: burger, Quantity: 2}}, time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
//
// An order.created event is recorded on success.
func NewOrder(number kernel.OrderNumber, details Details, lines []Line, now time.Time) (*Order, error) {
	o := &Order{
		number:        number,
		tip:           details.Tip,
		orderedAt:     now,
		status:        Pending,
		deliveryETA:   details.DeliveryETA,
		addressID:     details.AddressID,
		paymentID:     details.PaymentID,
		rewardsNo:     details.RewardsNo,
		isConstructed: true,
	}
	if details.OrderedAt != nil {
		o.orderedAt = *details.OrderedAt
	}
	if details.Status != "" {
		o.status = details.Status
	}

	if err := errors.Join(
		number.Validate(),
		o.status.Validate(),
		validateETA(details.DeliveryETA),
		o.setItems(lines),
	); err != nil {
		return nil, err
	}

	if o.status.IsFinished() {
		delivered := now
		o.deliveredAt = &delivered
	}

	subtotal, err := o.itemsAmount()
	if err != nil {
		return nil, err
	}
	o.subtotal = subtotal
	if details.Subtotal != nil {
		o.subtotal = *details.Subtotal
	}
	total, err := o.subtotal.AddChecked(o.tip)
	if err != nil {
		return nil, err
	}
	o.total = total
	if details.Total != nil {
		o.total = *details.Total
	}

	o.RecordEvent(CreatedEvent{
		OrderNo:   number.String(),
		Total:     o.total.String(),
		Items:     len(o.items),
		Timestamp: now,
	})
	return o, nil
}

// State is the full persisted state of an order, used by RestoreOrder.
type State struct {
	Number      kernel.OrderNumber
	Subtotal    kernel.Money
	Tip         kernel.Money
	Total       kernel.Money
	OrderedAt   time.Time
	DeliveredAt *time.Time
	Status      Status
	DeliveryETA *int
	Driver      *driver.Snapshot
	AddressID   *int
	PaymentID   *int
	RewardsNo   *int
	Items       []*LineItem
}

// RestoreOrder rebuilds an order from persisted state without recording events.
// Only the number and the status are validated; everything else was validated when the
// order was first built.
func RestoreOrder(state State) (*Order, error) {
	if err := errors.Join(state.Number.Validate(), state.Status.Validate()); err != nil {
		return nil, err
	}
	return &Order{
		number:        state.Number,
		subtotal:      state.Subtotal,
		tip:           state.Tip,
		total:         state.Total,
		orderedAt:     state.OrderedAt,
		deliveredAt:   state.DeliveredAt,
		status:        state.Status,
		deliveryETA:   state.DeliveryETA,
		driver:        state.Driver,
		addressID:     state.AddressID,
		paymentID:     state.PaymentID,
		rewardsNo:     state.RewardsNo,
		items:         state.Items,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// Number returns the order number.
func (o *Order) Number() kernel.OrderNumber { return o.number }

func (o *Order) Subtotal() kernel.Money { return o.subtotal }
func (o *Order) Tip() kernel.Money { return o.tip }
func (o *Order) Total() kernel.Money { return o.total }
func (o *Order) OrderedAt() time.Time { return o.orderedAt }
func (o *Order) Status() Status { return o.status }
func (o *Order) AddressID() *int { return o.addressID }
func (o *Order) PaymentID() *int { return o.paymentID }
func (o *Order) RewardsNo() *int { return o.rewardsNo }

// DeliveredAt returns the delivery time, or nil while the order is pending.
func (o *Order) DeliveredAt() *time.Time { return o.deliveredAt }

// DeliveryETA returns the estimated delivery time in minutes, if set.
func (o *Order) DeliveryETA() *int { return o.deliveryETA }

// Driver returns the driver snapshot, or nil when no driver is assigned.
func (o *Order) Driver() *driver.Snapshot {
	if o.driver == nil {
		return nil
	}
	snap := *o.driver
	return &snap
}

// LineItems returns the line items in insertion order.
func (o *Order) LineItems() []*LineItem {
	out := make([]*LineItem, len(o.items))
	copy(out, o.items)
	return out
}

// IsActive reports whether the order still belongs in the active view.
func (o *Order) IsActive() bool {
	return o.status.IsActive()
}

// AssignDriver copies the driver's identity onto the order, or clears it when d is nil.
// The status is never changed by assignment.
//
// Example:
//
//	snap := d.Snapshot()
//	o.AssignDriver(&snap, time.Now()) // assign
//	o.AssignDriver(nil, time.Now())   // unassign
func (o *Order) AssignDriver(d *driver.Snapshot, now time.Time) {
	event := DriverAssignedEvent{OrderNo: o.number.String(), Timestamp: now}
	if d == nil {
		o.driver = nil
	} else {
		snap := *d
		o.driver = &snap
		id := snap.ID
		event.DriverID = &id
		event.DriverName = snap.FirstName + " " + snap.LastName
	}
	o.RecordEvent(event)
}

// Complete sets the status to COMPLETED and stamps the delivery time with now.
// Completing an already completed order stamps the delivery time again.
func (o *Order) Complete(now time.Time) {
	o.status = Completed
	delivered := now
	o.deliveredAt = &delivered
	o.RecordEvent(CompletedEvent{OrderNo: o.number.String(), DeliveredAt: now})
}

// Patch is a partial update. Only non-nil fields are applied.
type Patch struct {
	Status      *Status
	Driver      *driver.Snapshot
	DeliveryETA *int
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Status == nil && p.Driver == nil && p.DeliveryETA == nil
}

// ApplyPatch merges the non-nil fields of p into the order. Nothing is changed when any
// field is invalid. Moving a pending order to a finished status stamps the delivery time.
func (o *Order) ApplyPatch(p Patch, now time.Time) error {
	var statusErr error
	if p.Status != nil {
		statusErr = o.status.CanTransitionTo(*p.Status)
	}
	if err := errors.Join(statusErr, validateETA(p.DeliveryETA)); err != nil {
		return err
	}

	if p.Status != nil {
		if !o.status.IsFinished() && p.Status.IsFinished() {
			delivered := now
			o.deliveredAt = &delivered
		}
		o.status = *p.Status
	}
	if p.Driver != nil {
		snap := *p.Driver
		o.driver = &snap
	}
	if p.DeliveryETA != nil {
		eta := *p.DeliveryETA
		o.deliveryETA = &eta
	}

	o.RecordEvent(UpdatedEvent{OrderNo: o.number.String(), Status: o.status.String(), Timestamp: now})
	return nil
}

func (o *Order) setItems(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("line items")
	}
	items := make([]*LineItem, 0, len(lines))
	var lineErrs []error
	for _, line := range lines {
		item, err := newLineItem(o.number, line)
		if err != nil {
			lineErrs = append(lineErrs, err)
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(lineErrs...); err != nil {
		return err
	}
	o.items = items
	return nil
}

func (o *Order) itemsAmount() (kernel.Money, error) {
	sum := kernel.Zero
	for _, item := range o.items {
		var err error
		if sum, err = sum.AddChecked(item.Amount()); err != nil {
			return kernel.Zero, err
		}
	}
	return sum, nil
}

func validateETA(eta *int) error {
	if eta != nil && *eta < 0 {
		return errs.NewValueIsInvalidErrorWithCause("delivery eta", fmt.Errorf("%d minutes is negative", *eta))
	}
	return nil
}
