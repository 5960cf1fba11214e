package http

import (
	"net/http"
	"time"

	"tastyfood/internal/core/application/usecases/commands"
	"tastyfood/internal/core/application/usecases/queries"
	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/core/domain/model/order"
	"tastyfood/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Server implements the REST API. It translates requests into commands and queries
// and renders their results.
type Server struct {
	h      Handlers
	logger *zap.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{h: h, logger: logger.With(zap.String("component", "http"))}
}

// GetHealth handles GET /api/health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, Health{Status: "UP"})
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	details, err := orderDetails(body)
	if err != nil {
		return s.writeError(ctx, err)
	}

	items := make([]commands.LineItemRequest, len(body.Items))
	for i, item := range body.Items {
		items[i] = commands.LineItemRequest{MenuItemID: item.MenuItemID, Quantity: item.Quantity}
	}

	cmd, err := commands.NewCreateOrderCommand(items, details)
	if err != nil {
		return s.writeError(ctx, err)
	}

	created, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, orderFromDomain(created))
}

// GetOrders handles GET /api/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	list, err := s.h.GetAllOrders.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ordersFromReadModel(list))
}

// GetActiveOrders handles GET /api/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	list, err := s.h.GetActiveOrders.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ordersFromReadModel(list))
}

// GetOrdersByStatus handles GET /api/orders/status/:status.
func (s *Server) GetOrdersByStatus(ctx echo.Context, status string) error {
	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return s.writeError(ctx, err)
	}

	list, err := s.h.GetOrdersByStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ordersFromReadModel(list))
}

// GetOrder handles GET /api/orders/:id and GET /api/orders/order-number/:orderNo.
func (s *Server) GetOrder(ctx echo.Context, orderNo string) error {
	query, err := queries.NewGetOrderQuery(orderNo)
	if err != nil {
		return s.writeError(ctx, err)
	}

	found, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orderFromReadModel(found))
}

// UpdateOrder handles PUT /api/orders/:id.
func (s *Server) UpdateOrder(ctx echo.Context, orderNo string) error {
	var body OrderUpdate
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateOrderCommand(orderNo, body.Status, body.DriverID, body.DeliveryETA)
	if err != nil {
		return s.writeError(ctx, err)
	}

	updated, err := s.h.UpdateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// AssignDriver handles PATCH /api/orders/:id/assign-driver.
func (s *Server) AssignDriver(ctx echo.Context, orderNo string) error {
	var body DriverAssignment
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAssignDriverCommand(orderNo, body.DriverID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	updated, err := s.h.AssignDriver.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orderFromDomain(updated))
}

// CompleteOrder handles PATCH /api/orders/:id/complete-order and its
// /mark-delivered alias.
func (s *Server) CompleteOrder(ctx echo.Context, orderNo string) error {
	cmd, err := commands.NewCompleteOrderCommand(orderNo)
	if err != nil {
		return s.writeError(ctx, err)
	}

	completed, err := s.h.CompleteOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orderFromDomain(completed))
}

// DeleteOrder handles DELETE /api/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context, orderNo string) error {
	cmd, err := commands.NewDeleteOrderCommand(orderNo)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.h.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CreateStaff handles POST /api/staff.
func (s *Server) CreateStaff(ctx echo.Context) error {
	var body NewStaff
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	hiredAt, err := parseDate("hiredDate", body.HiredDate)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewCreateStaffCommand(body.FirstName, body.LastName, body.Email, body.Status, hiredAt)
	if err != nil {
		return s.writeError(ctx, err)
	}

	created, err := s.h.CreateStaff.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, staffFromDomain(created))
}

// GetStaffList handles GET /api/staff.
func (s *Server) GetStaffList(ctx echo.Context) error {
	list, err := s.h.ListStaff.Handle(ctx.Request().Context(), queries.NewListStaffQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]Staff, len(list))
	for i, member := range list {
		response[i] = staffFromReadModel(member)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetStaff handles GET /api/staff/:id.
func (s *Server) GetStaff(ctx echo.Context, id int) error {
	query, err := queries.NewGetStaffQuery(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	member, err := s.h.GetStaff.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, staffFromReadModel(member))
}

// UpdateStaff handles PUT /api/staff/:id.
func (s *Server) UpdateStaff(ctx echo.Context, id int) error {
	var body StaffUpdate
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	hiredAt, err := parseDate("hiredDate", body.HiredDate)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateStaffCommand(id, body.FirstName, body.LastName, body.Email, body.Status, hiredAt)
	if err != nil {
		return s.writeError(ctx, err)
	}

	updated, err := s.h.UpdateStaff.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, staffFromDomain(updated))
}

// GetMenuItems handles GET /api/menu-items.
func (s *Server) GetMenuItems(ctx echo.Context) error {
	list, err := s.h.ListMenuItems.Handle(ctx.Request().Context(), queries.NewListMenuItemsQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]MenuItem, len(list))
	for i, item := range list {
		response[i] = menuItemFromReadModel(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetMenuItem handles GET /api/menu-items/:id.
func (s *Server) GetMenuItem(ctx echo.Context, id int) error {
	query, err := queries.NewGetMenuItemQuery(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	item, err := s.h.GetMenuItem.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, menuItemFromReadModel(item))
}

// GetDrivers handles GET /api/drivers.
func (s *Server) GetDrivers(ctx echo.Context) error {
	return s.listDrivers(ctx, false)
}

// GetAvailableDrivers handles GET /api/drivers/available.
func (s *Server) GetAvailableDrivers(ctx echo.Context) error {
	return s.listDrivers(ctx, true)
}

func (s *Server) listDrivers(ctx echo.Context, availableOnly bool) error {
	list, err := s.h.ListDrivers.Handle(ctx.Request().Context(), queries.NewListDriversQuery(availableOnly))
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]Driver, len(list))
	for i, d := range list {
		response[i] = driverFromReadModel(d)
	}
	return ctx.JSON(http.StatusOK, response)
}

// Login handles POST /api/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var body LoginRequest
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	query, err := queries.NewVerifyCredentialsQuery(body.Username, body.Password)
	if err != nil {
		return s.writeError(ctx, err)
	}

	verified, err := s.h.VerifyCredentials.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, LoginResult{
		Username:   verified.Username,
		Role:       verified.Role,
		FirstLogin: verified.FirstLogin,
		Status:     verified.Status,
	})
}

// ChangePassword handles POST /api/auth/change-password.
func (s *Server) ChangePassword(ctx echo.Context) error {
	var body ChangePasswordRequest
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewChangePasswordCommand(body.Username, body.OldPassword, body.NewPassword)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.h.ChangePassword.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func orderDetails(body NewOrder) (order.Details, error) {
	var details order.Details

	subtotal, err := parseOptionalMoney("subtotal", body.Subtotal)
	if err != nil {
		return order.Details{}, err
	}
	total, err := parseOptionalMoney("total", body.Total)
	if err != nil {
		return order.Details{}, err
	}
	tip, err := parseOptionalMoney("tip", body.Tip)
	if err != nil {
		return order.Details{}, err
	}
	if tip != nil {
		details.Tip = *tip
	}
	if body.Status != nil {
		status, err := order.ParseStatus(*body.Status)
		if err != nil {
			return order.Details{}, err
		}
		details.Status = status
	}

	details.Subtotal = subtotal
	details.Total = total
	details.OrderedAt = body.OrderedAt
	details.DeliveryETA = body.DeliveryETA
	details.AddressID = body.AddressID
	details.PaymentID = body.PaymentID
	details.RewardsNo = body.RewardsNo
	return details, nil
}

func parseOptionalMoney(param string, raw *string) (*kernel.Money, error) {
	if raw == nil {
		return nil, nil
	}
	m, err := kernel.ParseMoney(*raw)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return &m, nil
}

func parseDate(param string, raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *raw)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return &t, nil
}
