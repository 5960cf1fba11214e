package staff

import "time"

// EventProvisioned is published once a staff member and their credential are stored.
const EventProvisioned = "staff.provisioned"

// ProvisionedEvent carries the identity of a newly provisioned staff member.
type ProvisionedEvent struct {
	Username  string    `json:"username"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"occurredAt"`
}

func (e ProvisionedEvent) EventName() string     { return EventProvisioned }
func (e ProvisionedEvent) AggregateID() string   { return e.Username }
func (e ProvisionedEvent) OccurredAt() time.Time { return e.Timestamp }
