package http_test

import (
	"context"

	"tastyfood/internal/core/application/usecases/commands"
	"tastyfood/internal/core/application/usecases/queries"
	"tastyfood/internal/core/domain/model/order"
	"tastyfood/internal/core/domain/model/staff"

	"github.com/stretchr/testify/mock"
)

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockUpdateOrderHandler struct{ mock.Mock }

func (m *MockUpdateOrderHandler) Handle(ctx context.Context, cmd commands.UpdateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockAssignDriverHandler struct{ mock.Mock }

func (m *MockAssignDriverHandler) Handle(ctx context.Context, cmd commands.AssignDriverCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockCompleteOrderHandler struct{ mock.Mock }

func (m *MockCompleteOrderHandler) Handle(ctx context.Context, cmd commands.CompleteOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockDeleteOrderHandler struct{ mock.Mock }

func (m *MockDeleteOrderHandler) Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCreateStaffHandler struct{ mock.Mock }

func (m *MockCreateStaffHandler) Handle(ctx context.Context, cmd commands.CreateStaffCommand) (*staff.Staff, error) {
	args := m.Called(ctx, cmd)
	s, _ := args.Get(0).(*staff.Staff)
	return s, args.Error(1)
}

type MockUpdateStaffHandler struct{ mock.Mock }

func (m *MockUpdateStaffHandler) Handle(ctx context.Context, cmd commands.UpdateStaffCommand) (*staff.Staff, error) {
	args := m.Called(ctx, cmd)
	s, _ := args.Get(0).(*staff.Staff)
	return s, args.Error(1)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(ctx context.Context, q queries.GetOrderQuery) (queries.OrderResponse, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(queries.OrderResponse), args.Error(1)
}

type MockOrderListHandler struct{ mock.Mock }

func (m *MockOrderListHandler) list(ctx context.Context, q any) ([]queries.OrderResponse, error) {
	args := m.MethodCalled("Handle", ctx, q)
	list, _ := args.Get(0).([]queries.OrderResponse)
	return list, args.Error(1)
}

type MockGetAllOrdersHandler struct{ MockOrderListHandler }

func (m *MockGetAllOrdersHandler) Handle(ctx context.Context, q queries.GetAllOrdersQuery) ([]queries.OrderResponse, error) {
	return m.list(ctx, q)
}

type MockGetActiveOrdersHandler struct{ MockOrderListHandler }

func (m *MockGetActiveOrdersHandler) Handle(
	ctx context.Context, q queries.GetActiveOrdersQuery,
) ([]queries.OrderResponse, error) {
	return m.list(ctx, q)
}

type MockGetOrdersByStatusHandler struct{ MockOrderListHandler }

func (m *MockGetOrdersByStatusHandler) Handle(
	ctx context.Context, q queries.GetOrdersByStatusQuery,
) ([]queries.OrderResponse, error) {
	return m.list(ctx, q)
}

type MockListMenuItemsHandler struct{ mock.Mock }

func (m *MockListMenuItemsHandler) Handle(
	ctx context.Context, q queries.ListMenuItemsQuery,
) ([]queries.MenuItemResponse, error) {
	args := m.Called(ctx, q)
	list, _ := args.Get(0).([]queries.MenuItemResponse)
	return list, args.Error(1)
}

type MockGetMenuItemHandler struct{ mock.Mock }

func (m *MockGetMenuItemHandler) Handle(ctx context.Context, q queries.GetMenuItemQuery) (queries.MenuItemResponse, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(queries.MenuItemResponse), args.Error(1)
}

type MockListDriversHandler struct{ mock.Mock }

func (m *MockListDriversHandler) Handle(ctx context.Context, q queries.ListDriversQuery) ([]queries.DriverResponse, error) {
	args := m.Called(ctx, q)
	list, _ := args.Get(0).([]queries.DriverResponse)
	return list, args.Error(1)
}

type MockListStaffHandler struct{ mock.Mock }

func (m *MockListStaffHandler) Handle(ctx context.Context, q queries.ListStaffQuery) ([]queries.StaffResponse, error) {
	args := m.Called(ctx, q)
	list, _ := args.Get(0).([]queries.StaffResponse)
	return list, args.Error(1)
}

type MockGetStaffHandler struct{ mock.Mock }

func (m *MockGetStaffHandler) Handle(ctx context.Context, q queries.GetStaffQuery) (queries.StaffResponse, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(queries.StaffResponse), args.Error(1)
}

type MockChangePasswordHandler struct{ mock.Mock }

func (m *MockChangePasswordHandler) Handle(ctx context.Context, cmd commands.ChangePasswordCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockVerifyCredentialsHandler struct{ mock.Mock }

func (m *MockVerifyCredentialsHandler) Handle(
	ctx context.Context, q queries.VerifyCredentialsQuery,
) (queries.VerifiedCredentials, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(queries.VerifiedCredentials), args.Error(1)
}
