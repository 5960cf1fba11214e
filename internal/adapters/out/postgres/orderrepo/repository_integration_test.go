package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"tastyfood/internal/adapters/out/postgres/orderrepo"
	"tastyfood/internal/adapters/out/postgres/pgtest"
	"tastyfood/internal/core/domain/model/driver"
	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/core/domain/model/menu"
	"tastyfood/internal/core/domain/model/order"
	"tastyfood/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(aggregate kernel.AggregateRoot) {
	m.Called(aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// against a migrated PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Reset())

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.database.DB, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTripsOrderAndLineItems() {
	ctx := context.Background()
	tip := kernel.MustNewMoney(300)
	eta := 25
	o := suite.newOrder(1, order.Details{Tip: tip, DeliveryETA: &eta},
		order.Line{Item: suite.item(6, "Pad Thai", "entrees", 1799), Quantity: 2},
		order.Line{Item: suite.item(10, "Thai Tea", "beverages", 499), Quantity: 1},
	)

	suite.Require().NoError(suite.repository.Add(ctx, o))
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", o)

	got, err := suite.repository.Get(ctx, o.Number())
	suite.Require().NoError(err)

	suite.Equal("FD0001", got.Number().String())
	suite.Equal(order.Pending, got.Status())
	suite.Equal(int64(4097), got.Subtotal().Cents())
	suite.Equal(int64(300), got.Tip().Cents())
	suite.Equal(int64(4397), got.Total().Cents())
	suite.WithinDuration(o.OrderedAt(), got.OrderedAt(), time.Millisecond)
	suite.Nil(got.DeliveredAt())
	suite.Nil(got.Driver())
	suite.Require().NotNil(got.DeliveryETA())
	suite.Equal(25, *got.DeliveryETA())

	items := got.LineItems()
	suite.Require().Len(items, 2)
	suite.Equal(6, items[0].MenuItemID())
	suite.Equal("Pad Thai", items[0].MenuItem().Name())
	suite.Equal(2, items[0].Quantity())
	suite.Positive(items[0].ID())
	suite.Equal(10, items[1].MenuItemID())
	suite.Empty(got.DomainEvents())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_TakenNumber_ReturnsConflictOnOrderNo() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder(3, order.Details{}, suite.padThai(1))))

	err := suite.repository.Add(ctx, suite.newOrder(3, order.Details{}, suite.padThai(2)))

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
	var conflict *errs.ObjectAlreadyExistsError
	suite.Require().ErrorAs(err, &conflict)
	suite.Equal("orderNo", conflict.ParamName)
	suite.Equal("FD0003", conflict.Value)
	suite.assertLineItemCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnknownMenuItem_StoresNothing() {
	unknown, err := menu.NewItem(77, "Ghost", "entrees", kernel.MustNewMoney(100), "Available")
	suite.Require().NoError(err)

	err = suite.repository.Add(context.Background(),
		suite.newOrder(1, order.Details{}, suite.padThai(1), order.Line{Item: unknown, Quantity: 1}))

	suite.Require().Error(err)
	suite.assertOrderCount(0)
	suite.assertLineItemCount(0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnconstructedOrder_ReturnsError() {
	err := suite.repository.Add(context.Background(), &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_AssignAndUnassignDriver() {
	ctx := context.Background()
	driverID, err := suite.database.InsertDriver("Ann", "Lee", "Active", true)
	suite.Require().NoError(err)
	o := suite.newOrder(1, order.Details{}, suite.padThai(1))
	suite.Require().NoError(suite.repository.Add(ctx, o))

	o.AssignDriver(&driver.Snapshot{ID: driverID, FirstName: "Ann", LastName: "Lee"}, time.Now())
	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err := suite.repository.Get(ctx, o.Number())
	suite.Require().NoError(err)
	suite.Require().NotNil(got.Driver())
	suite.Equal(driver.Snapshot{ID: driverID, FirstName: "Ann", LastName: "Lee"}, *got.Driver())
	suite.Equal(order.Pending, got.Status())

	got.AssignDriver(nil, time.Now())
	suite.Require().NoError(suite.repository.Update(ctx, got))

	cleared, err := suite.repository.Get(ctx, o.Number())
	suite.Require().NoError(err)
	suite.Nil(cleared.Driver())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_DriverNameSnapshotSurvivesRename() {
	ctx := context.Background()
	driverID, err := suite.database.InsertDriver("Ann", "Lee", "Active", true)
	suite.Require().NoError(err)
	o := suite.newOrder(1, order.Details{}, suite.padThai(1))
	suite.Require().NoError(suite.repository.Add(ctx, o))
	o.AssignDriver(&driver.Snapshot{ID: driverID, FirstName: "Ann", LastName: "Lee"}, time.Now())
	suite.Require().NoError(suite.repository.Update(ctx, o))

	suite.Require().NoError(suite.database.DB.Exec(
		"UPDATE drivers SET first_name = 'Annie', last_name = 'Park' WHERE driver_id = ?", driverID).Error)

	got, err := suite.repository.Get(ctx, o.Number())
	suite.Require().NoError(err)
	suite.Equal("Ann", got.Driver().FirstName)
	suite.Equal("Lee", got.Driver().LastName)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_CompletePersistsStatusAndDeliveryTime() {
	ctx := context.Background()
	o := suite.newOrder(1, order.Details{}, suite.padThai(1))
	suite.Require().NoError(suite.repository.Add(ctx, o))

	now := time.Now()
	o.Complete(now)
	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err := suite.repository.Get(ctx, o.Number())
	suite.Require().NoError(err)
	suite.Equal(order.Completed, got.Status())
	suite.Require().NotNil(got.DeliveredAt())
	suite.WithinDuration(now, *got.DeliveredAt(), time.Millisecond)
	suite.Len(got.LineItems(), 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MissingOrder_NotFound() {
	o := suite.newOrder(9, order.Details{}, suite.padThai(1))

	err := suite.repository.Update(context.Background(), o)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_LocksOrderRowInsideTransaction() {
	ctx := context.Background()
	o := suite.newOrder(1, order.Details{}, suite.padThai(1))
	suite.Require().NoError(suite.repository.Add(ctx, o))

	holder := suite.database.DB.Begin()
	defer holder.Rollback()
	_, err := orderrepo.NewGormOrderRepository(holder, suite.tracker).Get(ctx, o.Number())
	suite.Require().NoError(err)

	waiter := suite.database.DB.Begin()
	defer waiter.Rollback()
	suite.Require().NoError(waiter.Exec("SET LOCAL lock_timeout = '100ms'").Error)
	_, err = orderrepo.NewGormOrderRepository(waiter, suite.tracker).Get(ctx, o.Number())
	suite.Require().Error(err)
	suite.Contains(err.Error(), "lock timeout")
}

func (suite *OrderRepositoryIntegrationTestSuite) TestLockNumbering_SerializesAllocation() {
	ctx := context.Background()
	holder := suite.database.DB.Begin()
	defer holder.Rollback()
	suite.Require().NoError(orderrepo.NewGormOrderRepository(holder, suite.tracker).LockNumbering(ctx))

	waiter := suite.database.DB.Begin()
	defer waiter.Rollback()
	suite.Require().NoError(waiter.Exec("SET LOCAL lock_timeout = '100ms'").Error)
	err := orderrepo.NewGormOrderRepository(waiter, suite.tracker).LockNumbering(ctx)
	suite.Require().Error(err)

	suite.Require().NoError(holder.Commit().Error)
	next := suite.database.DB.Begin()
	defer next.Rollback()
	suite.Require().NoError(orderrepo.NewGormOrderRepository(next, suite.tracker).LockNumbering(ctx))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_MissingOrder_NotFound() {
	number, err := kernel.NewOrderNumber(42)
	suite.Require().NoError(err)

	_, err = suite.repository.Get(context.Background(), number)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestLastOrderNumber() {
	ctx := context.Background()

	_, found, err := suite.repository.LastOrderNumber(ctx)
	suite.Require().NoError(err)
	suite.False(found)

	for _, seq := range []int{2, 10, 9} {
		suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder(seq, order.Details{}, suite.padThai(1))))
	}

	last, found, err := suite.repository.LastOrderNumber(ctx)
	suite.Require().NoError(err)
	suite.True(found)
	suite.Equal("FD0010", last)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestLastOrderNumber_ReturnsMalformedValueUnparsed() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder(5, order.Details{}, suite.padThai(1))))
	suite.Require().NoError(suite.database.DB.Exec(`
		INSERT INTO orders (order_no, subtotal_cents, tip_cents, total_cents, ordered_at, delivery_status)
		VALUES ('FDX1', 0, 0, 0, now(), 'PENDING')`).Error)

	last, found, err := suite.repository.LastOrderNumber(ctx)

	suite.Require().NoError(err)
	suite.True(found)
	suite.Equal("FDX1", last)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesOrderAndLineItems() {
	ctx := context.Background()
	o := suite.newOrder(1, order.Details{}, suite.padThai(2), order.Line{Item: suite.item(12, "Soft Drink", "beverages", 399), Quantity: 1})
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(suite.repository.Delete(ctx, o.Number()))

	suite.assertOrderCount(0)
	suite.assertLineItemCount(0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_MissingOrder_IsNoOp() {
	number, err := kernel.NewOrderNumber(77)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Delete(context.Background(), number))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ConcurrentReads() {
	ctx := context.Background()
	o := suite.newOrder(1, order.Details{}, suite.padThai(1))
	suite.Require().NoError(suite.repository.Add(ctx, o))

	results := make(chan *order.Order, 3)
	failures := make(chan error, 3)
	for range 3 {
		go func() {
			got, err := suite.repository.Get(ctx, o.Number())
			if err != nil {
				failures <- err
				return
			}
			results <- got
		}()
	}

	for range 3 {
		select {
		case got := <-results:
			suite.True(o.Number().IsEqual(got.Number()))
		case err := <-failures:
			suite.Failf("Unexpected error in concurrent read", "%v", err)
		}
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) item(id int, name, category string, cents int64) menu.Item {
	it, err := menu.NewItem(id, name, category, kernel.MustNewMoney(cents), "Available")
	suite.Require().NoError(err)
	return it
}

func (suite *OrderRepositoryIntegrationTestSuite) padThai(qty int) order.Line {
	return order.Line{Item: suite.item(6, "Pad Thai", "entrees", 1799), Quantity: qty}
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(seq int, details order.Details, lines ...order.Line) *order.Order {
	number, err := kernel.NewOrderNumber(seq)
	suite.Require().NoError(err)
	o, err := order.NewOrder(number, details, lines, time.Now())
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	suite.Require().NoError(suite.database.DB.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func (suite *OrderRepositoryIntegrationTestSuite) assertLineItemCount(expected int) {
	var count int64
	suite.Require().NoError(suite.database.DB.Model(&orderrepo.LineItemDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
