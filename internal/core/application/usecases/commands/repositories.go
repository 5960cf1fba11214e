// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"tastyfood/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// MenuItemRepoFactory provides access to the menu catalog within a transaction.
	MenuItemRepoFactory interface {
		MenuItemRepository() ports.MenuItemRepository
	}

	// DriverRepoFactory provides access to driver lookups within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// StaffRepoFactory provides access to staff repository within a transaction.
	StaffRepoFactory interface {
		StaffRepository() ports.StaffRepository
	}

	// CredentialRepoFactory provides access to credential repository within a transaction.
	CredentialRepoFactory interface {
		CredentialRepository() ports.CredentialRepository
	}

	// OrderUoW manages transactions for the order lifecycle: orders plus the
	// menu and driver lookups they are built from.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   item, err := uow.MenuItemRepository().Get(ctx, 6)
	//   // ... build the order
	//   err = uow.OrderRepository().Add(ctx, o)
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		MenuItemRepoFactory
		DriverRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// StaffUoW manages transactions that write a staff record and its credential together.
	StaffUoW interface {
		TxManager
		StaffRepoFactory
		CredentialRepoFactory
	}

	// StaffUoWFactory creates new staff unit of work instances.
	StaffUoWFactory interface {
		Create() StaffUoW
	}
)
