package http

import (
	"context"

	"tastyfood/internal/core/application/usecases/commands"
	"tastyfood/internal/core/application/usecases/queries"
	"tastyfood/internal/core/domain/model/order"
	"tastyfood/internal/core/domain/model/staff"
)

// Use case contracts consumed by the server. Command handlers satisfy them through
// pointers, query handlers by value.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	UpdateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderCommand) (*order.Order, error)
	}
	AssignDriverHandler interface {
		Handle(ctx context.Context, cmd commands.AssignDriverCommand) (*order.Order, error)
	}
	CompleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CompleteOrderCommand) (*order.Order, error)
	}
	DeleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}
	CreateStaffHandler interface {
		Handle(ctx context.Context, cmd commands.CreateStaffCommand) (*staff.Staff, error)
	}
	UpdateStaffHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateStaffCommand) (*staff.Staff, error)
	}
	ChangePasswordHandler interface {
		Handle(ctx context.Context, cmd commands.ChangePasswordCommand) error
	}

	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderResponse, error)
	}
	GetAllOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetAllOrdersQuery) ([]queries.OrderResponse, error)
	}
	GetActiveOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetActiveOrdersQuery) ([]queries.OrderResponse, error)
	}
	GetOrdersByStatusHandler interface {
		Handle(ctx context.Context, query queries.GetOrdersByStatusQuery) ([]queries.OrderResponse, error)
	}
	ListMenuItemsHandler interface {
		Handle(ctx context.Context, query queries.ListMenuItemsQuery) ([]queries.MenuItemResponse, error)
	}
	GetMenuItemHandler interface {
		Handle(ctx context.Context, query queries.GetMenuItemQuery) (queries.MenuItemResponse, error)
	}
	ListDriversHandler interface {
		Handle(ctx context.Context, query queries.ListDriversQuery) ([]queries.DriverResponse, error)
	}
	ListStaffHandler interface {
		Handle(ctx context.Context, query queries.ListStaffQuery) ([]queries.StaffResponse, error)
	}
	GetStaffHandler interface {
		Handle(ctx context.Context, query queries.GetStaffQuery) (queries.StaffResponse, error)
	}
	VerifyCredentialsHandler interface {
		Handle(ctx context.Context, query queries.VerifyCredentialsQuery) (queries.VerifiedCredentials, error)
	}
)

// Handlers groups every use case the server dispatches to.
type Handlers struct {
	// Command handlers
	CreateOrder    CreateOrderHandler
	UpdateOrder    UpdateOrderHandler
	AssignDriver   AssignDriverHandler
	CompleteOrder  CompleteOrderHandler
	DeleteOrder    DeleteOrderHandler
	CreateStaff    CreateStaffHandler
	UpdateStaff    UpdateStaffHandler
	ChangePassword ChangePasswordHandler

	// Query handlers
	GetOrder          GetOrderHandler
	GetAllOrders      GetAllOrdersHandler
	GetActiveOrders   GetActiveOrdersHandler
	GetOrdersByStatus GetOrdersByStatusHandler
	ListMenuItems     ListMenuItemsHandler
	GetMenuItem       GetMenuItemHandler
	ListDrivers       ListDriversHandler
	ListStaff         ListStaffHandler
	GetStaff          GetStaffHandler
	VerifyCredentials VerifyCredentialsHandler
}
