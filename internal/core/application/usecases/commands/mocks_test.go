package commands_test

import (
	"context"

	"parcelms/internal/core/application/usecases/commands"
	"parcelms/internal/core/domain/model/account"
	"parcelms/internal/core/domain/model/assignment"
	"parcelms/internal/core/domain/model/driver"
	"parcelms/internal/core/domain/model/kernel"
	"parcelms/internal/core/domain/model/notification"
	"parcelms/internal/core/domain/model/parcel"
	"parcelms/internal/core/domain/model/pricing"
	"parcelms/internal/core/domain/model/tracking"
	"parcelms/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id int64) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetByTrackingNumber(
	ctx context.Context, tn kernel.TrackingNumber,
) (*parcel.Parcel, error) {
	args := m.Called(ctx, tn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) ExistsTrackingNumber(
	ctx context.Context, tn kernel.TrackingNumber,
) (bool, error) {
	args := m.Called(ctx, tn)
	return args.Bool(0), args.Error(1)
}

type MockStatusHistoryRepository struct{ mock.Mock }

func (m *MockStatusHistoryRepository) Append(ctx context.Context, entry *parcel.HistoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Get(ctx context.Context, id int64) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, clientID int64) (int64, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(int64), args.Error(1)
}

type MockPricingRuleRepository struct{ mock.Mock }

func (m *MockPricingRuleRepository) GetActive(ctx context.Context) ([]*pricing.Rule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pricing.Rule), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, p *driver.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, p *driver.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id int64) (*driver.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Profile), args.Error(1)
}

func (m *MockDriverRepository) GetUnlinked(ctx context.Context) ([]*driver.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Profile), args.Error(1)
}

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Get(ctx context.Context, id int64) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByEmailAndRole(
	ctx context.Context, email string, role account.Role,
) ([]*account.Account, error) {
	args := m.Called(ctx, email, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*account.Account), args.Error(1)
}

type MockAdminAssignmentRepository struct{ mock.Mock }

func (m *MockAdminAssignmentRepository) Upsert(ctx context.Context, a *assignment.AdminAssignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAdminAssignmentRepository) GetByParcel(
	ctx context.Context, parcelID int64,
) (*assignment.AdminAssignment, error) {
	args := m.Called(ctx, parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.AdminAssignment), args.Error(1)
}

type MockDeliveryAssignmentRepository struct{ mock.Mock }

func (m *MockDeliveryAssignmentRepository) Upsert(ctx context.Context, a *assignment.DeliveryAssignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockDeliveryAssignmentRepository) GetByParcel(
	ctx context.Context, parcelID int64,
) (*assignment.DeliveryAssignment, error) {
	args := m.Called(ctx, parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.DeliveryAssignment), args.Error(1)
}

func (m *MockDeliveryAssignmentRepository) GetByParcelAndAccount(
	ctx context.Context, parcelID, accountID int64,
) (*assignment.DeliveryAssignment, error) {
	args := m.Called(ctx, parcelID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.DeliveryAssignment), args.Error(1)
}

type MockTrackLocationRepository struct{ mock.Mock }

func (m *MockTrackLocationRepository) AddPing(ctx context.Context, ping *tracking.DriverPing) error {
	args := m.Called(ctx, ping)
	return args.Error(0)
}

func (m *MockTrackLocationRepository) AddAdminLocation(ctx context.Context, loc *tracking.AdminLocation) error {
	args := m.Called(ctx, loc)
	return args.Error(0)
}

// MockUoW satisfies every narrow unit of work interface in the package, so a
// single mock backs all handler tests.
type MockUoW struct {
	mock.Mock

	parcels       MockParcelRepository
	history       MockStatusHistoryRepository
	notifications MockNotificationRepository
	pricingRules  MockPricingRuleRepository
	drivers       MockDriverRepository
	accounts      MockAccountRepository
	adminAssign   MockAdminAssignmentRepository
	delivery      MockDeliveryAssignmentRepository
	locations     MockTrackLocationRepository
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ParcelRepository() ports.ParcelRepository { return &m.parcels }

func (m *MockUoW) StatusHistoryRepository() ports.StatusHistoryRepository { return &m.history }

func (m *MockUoW) NotificationRepository() ports.NotificationRepository { return &m.notifications }

func (m *MockUoW) PricingRuleRepository() ports.PricingRuleRepository { return &m.pricingRules }

func (m *MockUoW) DriverRepository() ports.DriverRepository { return &m.drivers }

func (m *MockUoW) AccountRepository() ports.AccountRepository { return &m.accounts }

func (m *MockUoW) AdminAssignmentRepository() ports.AdminAssignmentRepository {
	return &m.adminAssign
}

func (m *MockUoW) DeliveryAssignmentRepository() ports.DeliveryAssignmentRepository {
	return &m.delivery
}

func (m *MockUoW) TrackLocationRepository() ports.TrackLocationRepository { return &m.locations }

// newMockUoW returns a unit of work with the usual transaction expectations:
// Begin and Commit succeed, the deferred Rollback is tolerated.
func newMockUoW(ctx context.Context) *MockUoW {
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Maybe()
	return uow
}

// newMockUoWNoCommit returns a unit of work for failure paths: Begin
// succeeds, Commit must not be reached.
func newMockUoWNoCommit(ctx context.Context) *MockUoW {
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Maybe()
	return uow
}

type MockParcelUoWFactory struct{ uow *MockUoW }

func (f *MockParcelUoWFactory) Create() commands.ParcelUoW { return f.uow }

type MockCreateParcelUoWFactory struct{ uow *MockUoW }

func (f *MockCreateParcelUoWFactory) Create() commands.CreateParcelUoW { return f.uow }

type MockAssignUoWFactory struct{ uow *MockUoW }

func (f *MockAssignUoWFactory) Create() commands.AssignUoW { return f.uow }

type MockStatusUpdateUoWFactory struct{ uow *MockUoW }

func (f *MockStatusUpdateUoWFactory) Create() commands.StatusUpdateUoW { return f.uow }

type MockDriverUoWFactory struct{ uow *MockUoW }

func (f *MockDriverUoWFactory) Create() commands.DriverUoW { return f.uow }

type MockNotificationUoWFactory struct{ uow *MockUoW }

func (f *MockNotificationUoWFactory) Create() commands.NotificationUoW { return f.uow }

type MockLocationUoWFactory struct{ uow *MockUoW }

func (f *MockLocationUoWFactory) Create() commands.LocationUoW { return f.uow }
