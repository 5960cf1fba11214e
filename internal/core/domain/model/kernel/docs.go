// Package kernel provides core domain primitives shared by the order, staff and menu models.
//
// The package includes:
//   - Money: a non-negative fixed-point amount kept in cents
//   - OrderNumber: the "FD" + four-digit sequential order identifier
//   - Username: the last-name + two-digit sequential staff login name
//   - DomainEvent and EventRecorder: facts recorded by aggregates and published after commit
//
// Value objects here are immutable and carry a constructor guard, so a zero value
// can be told apart from a constructed one.
package kernel
