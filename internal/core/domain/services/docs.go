// Package services provides domain services that do not belong to a single aggregate.
//
// The package includes:
//   - IdentifierAllocator: computes the next order number ("FD0001", "FD0002", ...) and the
//     next staff username ("smith01", "smith02", ...) from identifiers already stored
//
// Allocation is read-then-compute. Making it safe under concurrent callers is the job of
// the command handlers, which run each attempt in its own unit of work and retry when the
// store reports that the identifier was taken in the meantime.
package services
