// Package ports defines the contracts between the ordering core and its infrastructure:
// repositories per aggregate, the unit of work that binds them to one transaction, the
// password hasher and the domain event publisher.
package ports
