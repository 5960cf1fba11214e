package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tastyfood/internal/core/application/usecases/commands"
	"tastyfood/internal/core/domain/model/order"
	"tastyfood/internal/pkg/errs"
)

func lifecycleUoW(orderRepo *MockOrderRepository, driverRepo *MockDriverRepository) (*MockUoW, *MockOrderUoWFactory) {
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("OrderRepository").Return(orderRepo).Maybe()
	uow.On("DriverRepository").Return(driverRepo).Maybe()
	uow.On("Rollback", mock.Anything).Return(nil)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)
	return uow, factory
}

func TestAssignDriverCommandHandler_Handle(t *testing.T) {
	t.Run("copies driver name and keeps status", func(t *testing.T) {
		ctx := t.Context()
		o := storedOrder(t, "FD0001")
		orderRepo := new(MockOrderRepository)
		orderRepo.On("Get", ctx, orderNumber(t, "FD0001")).Return(o, nil).Once()
		orderRepo.On("Update", ctx, o).Return(nil).Once()
		driverRepo := new(MockDriverRepository)
		driverRepo.On("Get", ctx, 5).Return(annLee(t), nil).Once()
		uow, factory := lifecycleUoW(orderRepo, driverRepo)
		uow.On("Commit", ctx).Return(nil).Once()

		id := 5
		cmd, err := commands.NewAssignDriverCommand("FD0001", &id)
		require.NoError(t, err)

		h := commands.NewAssignDriverCommandHandler(factory)
		updated, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Pending, updated.Status())
		require.NotNil(t, updated.Driver())
		assert.Equal(t, "Ann", updated.Driver().FirstName)
		assert.Equal(t, "Lee", updated.Driver().LastName)
		orderRepo.AssertExpectations(t)
		driverRepo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("nil driver clears the assignment", func(t *testing.T) {
		ctx := t.Context()
		o := storedOrder(t, "FD0001")
		snap := annLee(t).Snapshot()
		o.AssignDriver(&snap, o.OrderedAt())
		orderRepo := new(MockOrderRepository)
		orderRepo.On("Get", ctx, mock.Anything).Return(o, nil).Once()
		orderRepo.On("Update", ctx, o).Return(nil).Once()
		driverRepo := new(MockDriverRepository)
		uow, factory := lifecycleUoW(orderRepo, driverRepo)
		uow.On("Commit", ctx).Return(nil).Once()

		cmd, err := commands.NewAssignDriverCommand("FD0001", nil)
		require.NoError(t, err)

		h := commands.NewAssignDriverCommandHandler(factory)
		updated, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Nil(t, updated.Driver())
		driverRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("unknown driver", func(t *testing.T) {
		ctx := t.Context()
		orderRepo := new(MockOrderRepository)
		orderRepo.On("Get", ctx, mock.Anything).Return(storedOrder(t, "FD0001"), nil).Once()
		driverRepo := new(MockDriverRepository)
		driverRepo.On("Get", ctx, 77).Return(nil, errs.NewObjectNotFoundError("driver", 77)).Once()
		uow, factory := lifecycleUoW(orderRepo, driverRepo)

		id := 77
		cmd, err := commands.NewAssignDriverCommand("FD0001", &id)
		require.NoError(t, err)

		h := commands.NewAssignDriverCommandHandler(factory)
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("malformed order number is not found", func(t *testing.T) {
		factory := new(MockOrderUoWFactory)
		cmd, err := commands.NewAssignDriverCommand("order-1", nil)
		require.NoError(t, err)

		h := commands.NewAssignDriverCommandHandler(factory)
		_, err = h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("rejects non-positive driver id", func(t *testing.T) {
		id := 0
		_, err := commands.NewAssignDriverCommand("FD0001", &id)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCompleteOrderCommandHandler_Handle(t *testing.T) {
	t.Run("completes and stamps delivery time", func(t *testing.T) {
		ctx := t.Context()
		o := storedOrder(t, "FD0002")
		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("Get", ctx, orderNumber(t, "FD0002")).Return(o, nil).Once(),
			orderRepo.On("Update", ctx, o).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		cmd, err := commands.NewCompleteOrderCommand("FD0002")
		require.NoError(t, err)

		h := commands.NewCompleteOrderCommandHandler(factory)
		completed, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Completed, completed.Status())
		assert.NotNil(t, completed.DeliveredAt())
		assert.False(t, completed.IsActive())
		uow.AssertExpectations(t)
		orderRepo.AssertExpectations(t)
	})

	t.Run("missing order", func(t *testing.T) {
		ctx := t.Context()
		orderRepo := new(MockOrderRepository)
		orderRepo.On("Get", ctx, mock.Anything).Return(nil, errs.NewObjectNotFoundError("order", "FD0404")).Once()
		uow, factory := lifecycleUoW(orderRepo, new(MockDriverRepository))

		cmd, err := commands.NewCompleteOrderCommand("FD0404")
		require.NoError(t, err)

		h := commands.NewCompleteOrderCommandHandler(factory)
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("requires order number", func(t *testing.T) {
		_, err := commands.NewCompleteOrderCommand("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestUpdateOrderCommandHandler_Handle(t *testing.T) {
	t.Run("merges present fields only", func(t *testing.T) {
		ctx := t.Context()
		o := storedOrder(t, "FD0003")
		orderRepo := new(MockOrderRepository)
		orderRepo.On("Get", ctx, mock.Anything).Return(o, nil).Once()
		orderRepo.On("Update", ctx, o).Return(nil).Once()
		uow, factory := lifecycleUoW(orderRepo, new(MockDriverRepository))
		uow.On("Commit", ctx).Return(nil).Once()

		eta := 35
		cmd, err := commands.NewUpdateOrderCommand("FD0003", nil, nil, &eta)
		require.NoError(t, err)

		h := commands.NewUpdateOrderCommandHandler(factory)
		updated, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, &eta, updated.DeliveryETA())
		assert.Equal(t, order.Pending, updated.Status())
		assert.Nil(t, updated.Driver())
	})

	t.Run("driver in patch is resolved for its name", func(t *testing.T) {
		ctx := t.Context()
		o := storedOrder(t, "FD0003")
		orderRepo := new(MockOrderRepository)
		orderRepo.On("Get", ctx, mock.Anything).Return(o, nil).Once()
		orderRepo.On("Update", ctx, o).Return(nil).Once()
		driverRepo := new(MockDriverRepository)
		driverRepo.On("Get", ctx, 5).Return(annLee(t), nil).Once()
		uow, factory := lifecycleUoW(orderRepo, driverRepo)
		uow.On("Commit", ctx).Return(nil).Once()

		status := "delivered"
		id := 5
		cmd, err := commands.NewUpdateOrderCommand("FD0003", &status, &id, nil)
		require.NoError(t, err)

		h := commands.NewUpdateOrderCommandHandler(factory)
		updated, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, updated.Status())
		assert.NotNil(t, updated.DeliveredAt())
		assert.Equal(t, "Ann", updated.Driver().FirstName)
	})

	t.Run("finished order cannot be reopened", func(t *testing.T) {
		ctx := t.Context()
		o := storedOrder(t, "FD0003")
		o.Complete(o.OrderedAt())
		orderRepo := new(MockOrderRepository)
		orderRepo.On("Get", ctx, mock.Anything).Return(o, nil).Once()
		uow, factory := lifecycleUoW(orderRepo, new(MockDriverRepository))

		status := "PENDING"
		cmd, err := commands.NewUpdateOrderCommand("FD0003", &status, nil, nil)
		require.NoError(t, err)

		h := commands.NewUpdateOrderCommandHandler(factory)
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("empty patch writes nothing", func(t *testing.T) {
		ctx := t.Context()
		orderRepo := new(MockOrderRepository)
		orderRepo.On("Get", ctx, mock.Anything).Return(storedOrder(t, "FD0003"), nil).Once()
		uow, factory := lifecycleUoW(orderRepo, new(MockDriverRepository))

		cmd, err := commands.NewUpdateOrderCommand("FD0003", nil, nil, nil)
		require.NoError(t, err)

		h := commands.NewUpdateOrderCommandHandler(factory)
		_, err = h.Handle(ctx, cmd)

		require.NoError(t, err)
		orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("invalid patch values", func(t *testing.T) {
		status := "SHIPPED"
		eta := -1
		id := -3

		_, err := commands.NewUpdateOrderCommand("FD0003", &status, &id, &eta)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "status")
		assert.Contains(t, err.Error(), "driverId")
		assert.Contains(t, err.Error(), "deliveryEta")
	})
}

func TestDeleteOrderCommandHandler_Handle(t *testing.T) {
	t.Run("deletes", func(t *testing.T) {
		ctx := t.Context()
		orderRepo := new(MockOrderRepository)
		orderRepo.On("Delete", ctx, orderNumber(t, "FD0009")).Return(nil).Once()
		uow, factory := lifecycleUoW(orderRepo, new(MockDriverRepository))
		uow.On("Commit", ctx).Return(nil).Once()

		cmd, err := commands.NewDeleteOrderCommand("FD0009")
		require.NoError(t, err)

		h := commands.NewDeleteOrderCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))
		orderRepo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("malformed number is a no-op", func(t *testing.T) {
		factory := new(MockOrderUoWFactory)
		cmd, err := commands.NewDeleteOrderCommand("nope")
		require.NoError(t, err)

		h := commands.NewDeleteOrderCommandHandler(factory)
		require.NoError(t, h.Handle(t.Context(), cmd))
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("store error", func(t *testing.T) {
		ctx := t.Context()
		orderRepo := new(MockOrderRepository)
		orderRepo.On("Delete", ctx, mock.Anything).Return(errors.New("delete failed")).Once()
		uow, factory := lifecycleUoW(orderRepo, new(MockDriverRepository))

		cmd, err := commands.NewDeleteOrderCommand("FD0009")
		require.NoError(t, err)

		h := commands.NewDeleteOrderCommandHandler(factory)
		require.EqualError(t, h.Handle(ctx, cmd), "delete failed")
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}
