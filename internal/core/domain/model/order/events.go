package order

import (
	"time"

	"tastyfood/internal/core/domain/model/kernel"
)

// Event names published for orders.
const (
	EventCreated          = "order.created"
	EventDriverAssigned   = "order.driver_assigned"
	EventDriverUnassigned = "order.driver_unassigned"
	EventUpdated          = "order.updated"
	EventCompleted        = "order.completed"
)

// CreatedEvent is recorded when an order is built.
type CreatedEvent struct {
	OrderNo   string    `json:"orderNo"`
	Total     string    `json:"total"`
	Items     int       `json:"items"`
	Timestamp time.Time `json:"occurredAt"`
}

func (e CreatedEvent) EventName() string     { return EventCreated }
func (e CreatedEvent) AggregateID() string   { return e.OrderNo }
func (e CreatedEvent) OccurredAt() time.Time { return e.Timestamp }

// DriverAssignedEvent is recorded when a driver is assigned or cleared.
// DriverID is nil for an unassignment.
type DriverAssignedEvent struct {
	OrderNo    string    `json:"orderNo"`
	DriverID   *int      `json:"driverId"`
	DriverName string    `json:"driverName,omitempty"`
	Timestamp  time.Time `json:"occurredAt"`
}

func (e DriverAssignedEvent) EventName() string {
	if e.DriverID == nil {
		return EventDriverUnassigned
	}
	return EventDriverAssigned
}
func (e DriverAssignedEvent) AggregateID() string   { return e.OrderNo }
func (e DriverAssignedEvent) OccurredAt() time.Time { return e.Timestamp }

// UpdatedEvent is recorded by ApplyPatch.
type UpdatedEvent struct {
	OrderNo   string    `json:"orderNo"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"occurredAt"`
}

func (e UpdatedEvent) EventName() string     { return EventUpdated }
func (e UpdatedEvent) AggregateID() string   { return e.OrderNo }
func (e UpdatedEvent) OccurredAt() time.Time { return e.Timestamp }

// CompletedEvent is recorded every time Complete runs.
type CompletedEvent struct {
	OrderNo     string    `json:"orderNo"`
	DeliveredAt time.Time `json:"deliveredAt"`
}

func (e CompletedEvent) EventName() string     { return EventCompleted }
func (e CompletedEvent) AggregateID() string   { return e.OrderNo }
func (e CompletedEvent) OccurredAt() time.Time { return e.DeliveredAt }

var (
	_ kernel.DomainEvent = CreatedEvent{}
	_ kernel.DomainEvent = DriverAssignedEvent{}
	_ kernel.DomainEvent = UpdatedEvent{}
	_ kernel.DomainEvent = CompletedEvent{}
)
