package orderrepo

import (
	"context"
	"errors"

	"tastyfood/internal/adapters/out/postgres/pgerr"
	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/core/domain/model/order"
	"tastyfood/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// numberingLockKey is the advisory lock key that serializes order number allocation.
const numberingLockKey = 0x7f0001

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(aggregate kernel.AggregateRoot)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order row and its line items in one statement batch.
// A taken order number comes back as ObjectAlreadyExistsError with param "orderNo".
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, map[string]any{"orderNo": dto.OrderNo})
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Update saves the mutable state of an existing order.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("order_no = ?", dto.OrderNo).
		Updates(mutableColumns(dto))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.OrderNo)
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Get retrieves an order and its line items by order number. The order row is read
// FOR UPDATE, so inside a transaction concurrent writers of the same order queue up
// behind the first one until it commits or rolls back.
func (r *GormOrderRepository) Get(ctx context.Context, number kernel.OrderNumber) (*order.Order, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("line_item_id") }).
		Preload("Items.MenuItem").
		First(&dto, "order_no = ?", number.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", number.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// LockNumbering takes a transaction scoped advisory lock on order number allocation.
// It is released when the surrounding transaction ends; outside a transaction it is
// released right away.
func (r *GormOrderRepository) LockNumbering(ctx context.Context) error {
	return r.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(?)", numberingLockKey).Error
}

// LastOrderNumber returns the greatest stored order number. Numbers are fixed width,
// so text ordering equals numeric ordering.
func (r *GormOrderRepository) LastOrderNumber(ctx context.Context) (string, bool, error) {
	var numbers []string
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Order("order_no DESC").
		Limit(1).
		Pluck("order_no", &numbers).Error
	if err != nil {
		return "", false, err
	}

	if len(numbers) == 0 {
		return "", false, nil
	}
	return numbers[0], true, nil
}

// Delete removes an order; its line items go with it through ON DELETE CASCADE.
func (r *GormOrderRepository) Delete(ctx context.Context, number kernel.OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("order_no = ?", number.String()).
		Delete(&OrderDTO{}).Error
}
