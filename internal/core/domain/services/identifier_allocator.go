package services

import (
	"tastyfood/internal/core/domain/model/kernel"
)

// IdentifierAllocator computes the next sequential identifier from identifiers that
// already exist. It is pure: callers read the existing identifiers inside the same unit
// of work that will store the new record, and a uniqueness constraint on the stored
// column catches any concurrent allocator that computed the same value.
//
// Example usage:
//
//	allocator := NewIdentifierAllocator()
//	last, found, _ := uow.OrderRepository().LastOrderNumber(ctx)
//	number, err := allocator.NextOrderNumber(last, found)
//	if errors.Is(err, errs.ErrIdentifierFormat) {
//	    // stored data breaks the order number format
//	}
type IdentifierAllocator struct{}

// NewIdentifierAllocator creates a new IdentifierAllocator instance.
func NewIdentifierAllocator() IdentifierAllocator {
	return IdentifierAllocator{}
}

// NextOrderNumber returns the order number following the most recent one.
//
// Parameters:
//   - last: the greatest stored order number (descending identifier order)
//   - found: false when no order exists yet
//
// Returns:
//   - FD0001 when found is false
//   - IdentifierFormatError when last does not match the FD#### pattern
//   - ValueIsOutOfRangeError when FD9999 is already taken
func (a IdentifierAllocator) NextOrderNumber(last string, found bool) (kernel.OrderNumber, error) {
	if !found {
		return kernel.FirstOrderNumber(), nil
	}

	current, err := kernel.ParseOrderNumber(last)
	if err != nil {
		return kernel.OrderNumber{}, err
	}

	return current.Next()
}

// NextUsername returns the next username for a last name.
//
// Parameters:
//   - lastName: the staff member's last name; its letters, lower-cased, form the prefix
//   - existing: every stored username starting with that prefix
//
// Usernames whose remainder after the prefix is not purely numeric ("smithson99",
// legacy values) are skipped. The result is max(suffix)+1, or prefix+"01" if none parse.
func (a IdentifierAllocator) NextUsername(lastName string, existing []string) (kernel.Username, error) {
	prefix, err := kernel.UsernamePrefix(lastName)
	if err != nil {
		return kernel.Username{}, err
	}

	highest := 0
	for _, candidate := range existing {
		seq, ok := kernel.ParseUsernameSequence(prefix, candidate)
		if ok && seq > highest {
			highest = seq
		}
	}

	return kernel.NewUsername(prefix, highest+1)
}
