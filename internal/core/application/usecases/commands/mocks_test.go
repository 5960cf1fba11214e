package commands_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tastyfood/internal/core/application/usecases/commands"
	"tastyfood/internal/core/domain/model/credential"
	"tastyfood/internal/core/domain/model/driver"
	"tastyfood/internal/core/domain/model/kernel"
	"tastyfood/internal/core/domain/model/menu"
	"tastyfood/internal/core/domain/model/order"
	"tastyfood/internal/core/domain/model/staff"
	"tastyfood/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, number kernel.OrderNumber) (*order.Order, error) {
	args := m.Called(ctx, number)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) LockNumbering(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockOrderRepository) LastOrderNumber(ctx context.Context) (string, bool, error) {
	args := m.Called(ctx)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockOrderRepository) Delete(ctx context.Context, number kernel.OrderNumber) error {
	return m.Called(ctx, number).Error(0)
}

type MockMenuItemRepository struct{ mock.Mock }

func (m *MockMenuItemRepository) Get(ctx context.Context, id int) (menu.Item, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(menu.Item)
	return item, args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Get(ctx context.Context, id int) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*driver.Driver)
	return d, args.Error(1)
}

type MockStaffRepository struct{ mock.Mock }

func (m *MockStaffRepository) Add(ctx context.Context, s *staff.Staff) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockStaffRepository) Update(ctx context.Context, s *staff.Staff) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockStaffRepository) Get(ctx context.Context, id int) (*staff.Staff, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*staff.Staff)
	return s, args.Error(1)
}

func (m *MockStaffRepository) ExistsByEmail(ctx context.Context, email string, excludeID int) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStaffRepository) ExistsByName(ctx context.Context, firstName, lastName string) (bool, error) {
	args := m.Called(ctx, firstName, lastName)
	return args.Bool(0), args.Error(1)
}

func (m *MockStaffRepository) LockUsernames(ctx context.Context, prefix string) error {
	return m.Called(ctx, prefix).Error(0)
}

func (m *MockStaffRepository) UsernamesWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	args := m.Called(ctx, prefix)
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

type MockCredentialRepository struct{ mock.Mock }

func (m *MockCredentialRepository) Add(ctx context.Context, c *credential.Credential) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCredentialRepository) Get(ctx context.Context, username string) (*credential.Credential, error) {
	args := m.Called(ctx, username)
	c, _ := args.Get(0).(*credential.Credential)
	return c, args.Error(1)
}

func (m *MockCredentialRepository) Update(ctx context.Context, c *credential.Credential) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCredentialRepository) UsernamesWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	args := m.Called(ctx, prefix)
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) MenuItemRepository() ports.MenuItemRepository {
	return m.Called().Get(0).(ports.MenuItemRepository)
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	return m.Called().Get(0).(ports.DriverRepository)
}

func (m *MockUoW) StaffRepository() ports.StaffRepository {
	return m.Called().Get(0).(ports.StaffRepository)
}

func (m *MockUoW) CredentialRepository() ports.CredentialRepository {
	return m.Called().Get(0).(ports.CredentialRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockStaffUoWFactory struct{ mock.Mock }

func (m *MockStaffUoWFactory) Create() commands.StaffUoW {
	return m.Called().Get(0).(commands.StaffUoW)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(plaintext string) (string, error) {
	args := m.Called(plaintext)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Verify(hash, plaintext string) error {
	return m.Called(hash, plaintext).Error(0)
}
