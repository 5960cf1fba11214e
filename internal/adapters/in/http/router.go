package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/oapi-codegen/runtime"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// BasePath prefixes every API route.
const BasePath = "/api"

// RouterConfig tunes the echo instance.
type RouterConfig struct {
	// LogLevel sets echo's own logger: debug, info, warn, error or off.
	LogLevel string
}

// NewRouter builds the echo instance serving s under BasePath, with request ids,
// request logging, panic recovery and the swagger UI on /swagger/*.
func NewRouter(ctx context.Context, s *Server, cfg RouterConfig) (*echo.Echo, error) {
	doc, err := LoadContract(ctx)
	if err != nil {
		return nil, err
	}
	if err = registerSwaggerDoc(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(echoLogLevel(cfg.LogLevel))
	e.HTTPErrorHandler = s.errorHandler

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(requestLogger(s.logger))
	e.Use(middleware.Recover())

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	RegisterHandlers(e.Group(BasePath), s)
	return e, nil
}

// EchoRouter is the subset of echo.Echo and echo.Group used to mount the API.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts every operation of the API contract on router.
func RegisterHandlers(router EchoRouter, s *Server) {
	w := wrapper{s: s}

	router.GET("/health", s.GetHealth)

	router.POST("/orders", s.CreateOrder)
	router.GET("/orders", s.GetOrders)
	router.GET("/orders/active", s.GetActiveOrders)
	router.GET("/orders/status/:status", w.GetOrdersByStatus)
	router.GET("/orders/order-number/:orderNo", w.GetOrderByNumber)
	router.GET("/orders/:id", w.GetOrder)
	router.PUT("/orders/:id", w.UpdateOrder)
	router.DELETE("/orders/:id", w.DeleteOrder)
	router.PATCH("/orders/:id/assign-driver", w.AssignDriver)
	router.PATCH("/orders/:id/complete-order", w.CompleteOrder)
	router.PATCH("/orders/:id/mark-delivered", w.CompleteOrder)

	router.POST("/staff", s.CreateStaff)
	router.GET("/staff", s.GetStaffList)
	router.GET("/staff/:id", w.GetStaff)
	router.PUT("/staff/:id", w.UpdateStaff)

	router.GET("/menu-items", s.GetMenuItems)
	router.GET("/menu-items/:id", w.GetMenuItem)

	router.GET("/drivers", s.GetDrivers)
	router.GET("/drivers/available", s.GetAvailableDrivers)

	router.POST("/auth/login", s.Login)
	router.POST("/auth/change-password", s.ChangePassword)
}

// wrapper binds path parameters before calling the typed server methods.
type wrapper struct {
	s *Server
}

func (w wrapper) GetOrdersByStatus(ctx echo.Context) error {
	var status string
	if err := bindPathParam(ctx, "status", &status); err != nil {
		return err
	}
	return w.s.GetOrdersByStatus(ctx, status)
}

func (w wrapper) GetOrderByNumber(ctx echo.Context) error {
	var orderNo string
	if err := bindPathParam(ctx, "orderNo", &orderNo); err != nil {
		return err
	}
	return w.s.GetOrder(ctx, orderNo)
}

func (w wrapper) GetOrder(ctx echo.Context) error {
	return w.withOrderID(ctx, w.s.GetOrder)
}

func (w wrapper) UpdateOrder(ctx echo.Context) error {
	return w.withOrderID(ctx, w.s.UpdateOrder)
}

func (w wrapper) DeleteOrder(ctx echo.Context) error {
	return w.withOrderID(ctx, w.s.DeleteOrder)
}

func (w wrapper) AssignDriver(ctx echo.Context) error {
	return w.withOrderID(ctx, w.s.AssignDriver)
}

func (w wrapper) CompleteOrder(ctx echo.Context) error {
	return w.withOrderID(ctx, w.s.CompleteOrder)
}

func (w wrapper) GetStaff(ctx echo.Context) error {
	return w.withNumericID(ctx, w.s.GetStaff)
}

func (w wrapper) UpdateStaff(ctx echo.Context) error {
	return w.withNumericID(ctx, w.s.UpdateStaff)
}

func (w wrapper) GetMenuItem(ctx echo.Context) error {
	return w.withNumericID(ctx, w.s.GetMenuItem)
}

func (w wrapper) withOrderID(ctx echo.Context, next func(echo.Context, string) error) error {
	var id string
	if err := bindPathParam(ctx, "id", &id); err != nil {
		return err
	}
	return next(ctx, id)
}

func (w wrapper) withNumericID(ctx echo.Context, next func(echo.Context, int) error) error {
	var id int
	if err := bindPathParam(ctx, "id", &id); err != nil {
		return err
	}
	return next(ctx, id)
}

func bindPathParam(ctx echo.Context, name string, dest any) error {
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), dest,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}

func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			)
			return nil
		},
	})
}

func echoLogLevel(level string) log.Lvl {
	switch strings.ToLower(level) {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
