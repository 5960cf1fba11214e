package order

import (
	"fmt"
	"strings"

	"tastyfood/internal/pkg/errs"
)

// Status is the delivery status of an order.
//
// State transitions:
//
//	PENDING ──(assign/unassign driver, stays PENDING)──> PENDING
//	PENDING ──(complete)──> COMPLETED
//
// DELIVERED is an alias of COMPLETED kept for older clients. Wherever statuses are
// compared the two are treated as the same state. Nothing leaves COMPLETED/DELIVERED.
type Status string

const (
	// Pending is the status of every order until it is completed.
	Pending Status = "PENDING"

	// Completed is the final status, reached through Order.Complete.
	Completed Status = "COMPLETED"

	// Delivered is the backward-compatible alias of Completed.
	Delivered Status = "DELIVERED"
)

// ParseStatus converts a caller-supplied string into a Status. Input is trimmed and
// upper-cased, so "pending" and " Completed " are accepted.
//
// Returns:
//   - ValueIsRequiredError when s is blank
//   - ValueIsInvalidError when s names no known status
func ParseStatus(s string) (Status, error) {
	normalized := Status(strings.ToUpper(strings.TrimSpace(s)))
	if normalized == "" {
		return "", errs.NewValueIsRequiredError("status")
	}
	if err := normalized.Validate(); err != nil {
		return "", err
	}
	return normalized, nil
}

// Validate checks that s is one of Pending, Completed or Delivered.
func (s Status) Validate() error {
	switch s {
	case Pending, Completed, Delivered:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
}

// IsFinished reports whether s is Completed or its alias Delivered.
func (s Status) IsFinished() bool {
	return s == Completed || s == Delivered
}

// IsActive reports whether an order in status s still belongs in the active view.
func (s Status) IsActive() bool {
	return !s.IsFinished()
}

// Equivalent compares two statuses treating Delivered and Completed as equal.
func (s Status) Equivalent(other Status) bool {
	if s.IsFinished() && other.IsFinished() {
		return true
	}
	return s == other
}

// CanTransitionTo reports whether an order may move from s to next.
// A finished order may only "move" to a status equivalent to its own.
func (s Status) CanTransitionTo(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if s.IsFinished() && !s.Equivalent(next) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot change status of a %s order to %s", s, next),
		)
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}
