package cmd

import (
	httpapi "tastyfood/internal/adapters/in/http"
	"tastyfood/internal/adapters/out/passwords"
	"tastyfood/internal/adapters/out/postgres"
	"tastyfood/internal/core/application/usecases/commands"
	"tastyfood/internal/core/application/usecases/queries"
	"tastyfood/internal/core/ports"
	"tastyfood/internal/jobs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	hasher     ports.PasswordHasher
	retry      commands.RetryPolicy
	config     Config
	logger     *zap.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, publisher ports.EventPublisher, logger *zap.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		hasher:     passwords.NewBcryptHasher(0),
		retry: commands.RetryPolicy{
			MaxRetries: config.AllocationMaxRetries,
			BaseDelay:  config.AllocationRetryBase,
		},
		config: config,
		logger: logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) staffUoWFactory() commands.StaffUoWFactory {
	return FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	h := commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.retry, c.logger)
	return &h
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() *commands.UpdateOrderCommandHandler {
	h := commands.NewUpdateOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() *commands.AssignDriverCommandHandler {
	h := commands.NewAssignDriverCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() *commands.CompleteOrderCommandHandler {
	h := commands.NewCompleteOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() *commands.DeleteOrderCommandHandler {
	h := commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCreateStaffCommandHandler() *commands.CreateStaffCommandHandler {
	h := commands.NewCreateStaffCommandHandler(c.staffUoWFactory(), c.hasher, c.retry, c.logger)
	return &h
}

func (c *CompositionRoot) CreateUpdateStaffCommandHandler() *commands.UpdateStaffCommandHandler {
	h := commands.NewUpdateStaffCommandHandler(c.staffUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateChangePasswordCommandHandler() *commands.ChangePasswordCommandHandler {
	h := commands.NewChangePasswordCommandHandler(c.staffUoWFactory(), c.hasher, c.logger)
	return &h
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case into the REST server.
func (c *CompositionRoot) CreateHTTPServer() *httpapi.Server {
	return httpapi.NewServer(httpapi.Handlers{
		CreateOrder:    c.CreateCreateOrderCommandHandler(),
		UpdateOrder:    c.CreateUpdateOrderCommandHandler(),
		AssignDriver:   c.CreateAssignDriverCommandHandler(),
		CompleteOrder:  c.CreateCompleteOrderCommandHandler(),
		DeleteOrder:    c.CreateDeleteOrderCommandHandler(),
		CreateStaff:    c.CreateCreateStaffCommandHandler(),
		UpdateStaff:    c.CreateUpdateStaffCommandHandler(),
		ChangePassword: c.CreateChangePasswordCommandHandler(),

		GetOrder:          queries.NewGetOrderQueryHandler(c.gormDB),
		GetAllOrders:      queries.NewGetAllOrdersQueryHandler(c.gormDB),
		GetActiveOrders:   c.CreateGetActiveOrdersQueryHandler(),
		GetOrdersByStatus: queries.NewGetOrdersByStatusQueryHandler(c.gormDB),
		ListMenuItems:     queries.NewListMenuItemsQueryHandler(c.gormDB),
		GetMenuItem:       queries.NewGetMenuItemQueryHandler(c.gormDB),
		ListDrivers:       queries.NewListDriversQueryHandler(c.gormDB),
		ListStaff:         queries.NewListStaffQueryHandler(c.gormDB),
		GetStaff:          queries.NewGetStaffQueryHandler(c.gormDB),
		VerifyCredentials: queries.NewVerifyCredentialsQueryHandler(c.gormDB, c.hasher),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetActiveOrdersQueryHandler(), c.config.MonitorSchedule, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStaffUoWFactory func() commands.StaffUoW

func (f FuncStaffUoWFactory) Create() commands.StaffUoW {
	return f()
}
