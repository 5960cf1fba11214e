// Package guard provides ConstructorGuard, a marker that lets value objects, commands and
// queries tell a constructor-built instance apart from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in structs that must only be created through their
// constructor. The zero value reports "not constructed".
//
// Example usage:
//
//	var ErrDraftNotConstructed = errors.New("OrderDraft must be created via NewOrderDraft")
//
//	type OrderDraft struct {
//	    items []LineItemDraft
//	    guard guard.ConstructorGuard
//	}
//
//	func NewOrderDraft(items []LineItemDraft) (OrderDraft, error) {
//	    if len(items) == 0 {
//	        return OrderDraft{}, errors.New("at least one item is required")
//	    }
//	    return OrderDraft{items: items, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (d OrderDraft) Validate() error {
//	    return d.guard.Validate(ErrDraftNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero value it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
