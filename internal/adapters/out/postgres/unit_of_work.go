// Package postgres provides the GORM-based implementation of the Unit of Work pattern.
// A unit of work binds every repository it hands out to one database transaction and
// remembers the aggregates written through them. Their domain events are published
// only after the transaction commits.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, publisher, logger)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance is single-goroutine. Concurrent requests use separate
// instances from the same factory.
package postgres

import (
	"context"

	"tastyfood/internal/adapters/out/postgres/credentialrepo"
	"tastyfood/internal/adapters/out/postgres/driverrepo"
	"tastyfood/internal/adapters/out/postgres/menurepo"
	"tastyfood/internal/adapters/out/postgres/orderrepo"
	"tastyfood/internal/adapters/out/postgres/staffrepo"
	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/core/ports"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// A nil publisher disables event publishing; a nil logger is replaced by a no-op one.
func NewGormUnitOfWorkFactory(db *gorm.DB, publisher ports.EventPublisher, logger *zap.Logger) *GormUnitOfWorkFactory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GormUnitOfWorkFactory{
		db:        db,
		publisher: publisher,
		logger:    logger.With(zap.String("component", "unit_of_work")),
	}
}

// Create produces a new UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.CreateGorm()
}

// CreateGorm is Create returning the concrete type.
func (f *GormUnitOfWorkFactory) CreateGorm() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:        f.db,
		publisher: f.publisher,
		logger:    f.logger,
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the aggregates
// stored through its repositories.
type GormUnitOfWork struct {
	db        *gorm.DB
	tx        *gorm.DB
	publisher ports.EventPublisher
	logger    *zap.Logger

	trackedAggregates []kernel.AggregateRoot
}

// Begin initiates a new database transaction. Calling Begin twice is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit finalizes the transaction, then publishes the domain events recorded by
// every tracked aggregate. A publishing failure is logged and does not fail the commit.
//
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = nil
		return err
	}

	uow.publishTrackedEvents(ctx)
	return nil
}

// Rollback discards the transaction and forgets tracked aggregates.
//
// Returns gorm.ErrInvalidTransaction if no transaction is active, which makes a
// deferred Rollback after a successful Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	uow.trackedAggregates = nil
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository provides order persistence bound to the current transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// MenuItemRepository provides catalog lookups bound to the current transaction.
func (uow *GormUnitOfWork) MenuItemRepository() ports.MenuItemRepository {
	return menurepo.NewGormMenuItemRepository(uow.conn())
}

// DriverRepository provides driver lookups bound to the current transaction.
func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	return driverrepo.NewGormDriverRepository(uow.conn())
}

// StaffRepository provides staff persistence bound to the current transaction.
func (uow *GormUnitOfWork) StaffRepository() ports.StaffRepository {
	return staffrepo.NewGormStaffRepository(uow.conn(), uow)
}

// CredentialRepository provides credential persistence bound to the current transaction.
func (uow *GormUnitOfWork) CredentialRepository() ports.CredentialRepository {
	return credentialrepo.NewGormCredentialRepository(uow.conn())
}

// TrackAggregate registers an aggregate written within this unit of work.
// Repositories call it after a successful write.
func (uow *GormUnitOfWork) TrackAggregate(aggregate kernel.AggregateRoot) {
	for _, tracked := range uow.trackedAggregates {
		if tracked == aggregate {
			return
		}
	}
	uow.trackedAggregates = append(uow.trackedAggregates, aggregate)
}

// TrackedAggregates returns the aggregates written since the transaction began.
func (uow *GormUnitOfWork) TrackedAggregates() []kernel.AggregateRoot {
	out := make([]kernel.AggregateRoot, len(uow.trackedAggregates))
	copy(out, uow.trackedAggregates)
	return out
}

// conn returns the transaction when one is active, otherwise the pool.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) publishTrackedEvents(ctx context.Context) {
	tracked := uow.trackedAggregates
	uow.trackedAggregates = nil

	var events []kernel.DomainEvent
	for _, aggregate := range tracked {
		events = append(events, aggregate.DomainEvents()...)
		aggregate.ClearDomainEvents()
	}
	if len(events) == 0 || uow.publisher == nil {
		return
	}

	if err := uow.publisher.Publish(ctx, events...); err != nil {
		uow.logger.Error("publish domain events",
			zap.Int("events", len(events)),
			zap.String("first_event", events[0].EventName()),
			zap.Error(err),
		)
	}
}
