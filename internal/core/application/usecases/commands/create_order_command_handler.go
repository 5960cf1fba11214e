package commands

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"tastyfood/internal/core/domain/model/order"
	"tastyfood/internal/core/domain/services"
	"tastyfood/internal/pkg/errs"
)

// CreateOrderCommandHandler places new orders.
//
// Each attempt runs in its own unit of work: resolve every menu item, take the
// numbering lock, read the last order number, allocate the next one, insert the order
// with its line items, commit. The lock queues concurrent creations behind each other,
// so the read always sees the previous winner. If the insert still hits the primary
// key (a writer that skipped the lock), the attempt is rolled back and retried.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, DefaultRetryPolicy(), logger)
//	created, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // a requested menu item does not exist; nothing was stored
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	allocator  services.IdentifierAllocator
	retry      RetryPolicy
	logger     *zap.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	retry RetryPolicy,
	logger *zap.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewIdentifierAllocator(),
		retry:      retry,
		logger:     logger.With(zap.String("component", "create_order")),
	}
}

// Handle processes the order creation command and returns the stored order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var created *order.Order
	err := retryOnIdentifierConflict(ctx, h.retry, h.logger, "orderNo", func(ctx context.Context) error {
		o, err := h.attempt(ctx, cmd)
		if err != nil {
			return err
		}
		created = o
		return nil
	})
	if err != nil {
		if errors.Is(err, errs.ErrIdentifierFormat) {
			h.logger.Error("stored order number breaks the order number format", zap.Error(err))
		}
		return nil, err
	}

	h.logger.Info("order created",
		zap.String("orderNo", created.Number().String()),
		zap.Int("items", len(created.LineItems())),
	)
	return created, nil
}

func (h *CreateOrderCommandHandler) attempt(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuItemRepository()
	lines := make([]order.Line, 0, len(cmd.Items()))
	for _, requested := range cmd.Items() {
		item, err := menuRepo.Get(ctx, requested.MenuItemID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, order.Line{Item: item, Quantity: requested.Quantity})
	}

	orderRepo := uow.OrderRepository()
	if err := orderRepo.LockNumbering(ctx); err != nil {
		return nil, err
	}

	last, found, err := orderRepo.LastOrderNumber(ctx)
	if err != nil {
		return nil, err
	}

	number, err := h.allocator.NextOrderNumber(last, found)
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(number, cmd.Details(), lines, time.Now())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
