package kernel

import "time"

// DomainEvent is a fact recorded by an aggregate while a command mutates it.
// Events are published only after the unit of work that produced them commits.
type DomainEvent interface {
	// EventName is the routing name, e.g. "order.completed".
	EventName() string
	// AggregateID identifies the aggregate that recorded the event.
	AggregateID() string
	// OccurredAt is the moment the change happened.
	OccurredAt() time.Time
}

// EventRecorder collects domain events for an aggregate. Embed it in aggregate roots.
type EventRecorder struct {
	events []DomainEvent
}

// RecordEvent appends an event.
func (r *EventRecorder) RecordEvent(event DomainEvent) {
	r.events = append(r.events, event)
}

// DomainEvents returns the events recorded since the last clear.
func (r *EventRecorder) DomainEvents() []DomainEvent {
	out := make([]DomainEvent, len(r.events))
	copy(out, r.events)
	return out
}

// ClearDomainEvents drops all recorded events.
func (r *EventRecorder) ClearDomainEvents() {
	r.events = nil
}

// AggregateRoot is implemented by aggregates that record domain events.
type AggregateRoot interface {
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}
