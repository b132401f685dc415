package commands_test

import (
	"io"
	"log/slog"
	"testing"

	"parcelms/internal/core/application/usecases/commands"
	"parcelms/internal/core/domain/model/account"
	"parcelms/internal/core/domain/model/assignment"
	"parcelms/internal/core/domain/model/driver"
	"parcelms/internal/core/domain/model/kernel"
	"parcelms/internal/core/domain/model/parcel"
	"parcelms/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func restoredParcel(t *testing.T, id int64, status parcel.Status) *parcel.Parcel {
	t.Helper()
	p, err := parcel.RestoreParcel(
		id, 42, kernel.NewTrackingNumber(), validRoute(t), validDims(t),
		decimal.RequireFromString("5"), decimal.RequireFromString("75.00"),
		status, "", "", 1)
	require.NoError(t, err)
	return p
}

func linkedDriver(t *testing.T, id, accountID int64) *driver.Profile {
	t.Helper()
	p, err := driver.RestoreProfile(
		id, "Ravi Kumar", "ravi@example.com", "+919876543210",
		driver.VehicleBike, "MH12AB1234", "Mumbai", 0, true, &accountID)
	require.NoError(t, err)
	return p
}

func unlinkedDriver(t *testing.T, id int64) *driver.Profile {
	t.Helper()
	p, err := driver.RestoreProfile(
		id, "Ravi Kumar", "ravi@example.com", "+919876543210",
		driver.VehicleBike, "MH12AB1234", "Mumbai", 0, true, nil)
	require.NoError(t, err)
	return p
}

func driverAccount(t *testing.T, id int64) *account.Account {
	t.Helper()
	a, err := account.RestoreAccount(
		id, "Ravi Kumar", "ravi@example.com", "+919876543210", account.RoleDriver, true)
	require.NoError(t, err)
	return a
}

func TestAssignDriverCommandHandler_Handle_LinkedDriver(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAssignDriverCommand(10, 3, 1)
	require.NoError(t, err)

	uow := newMockUoW(ctx)
	uow.parcels.On("Get", ctx, int64(10)).Return(restoredParcel(t, 10, parcel.StatusAccepted), nil).Once()
	uow.drivers.On("Get", ctx, int64(3)).Return(linkedDriver(t, 3, 5), nil).Once()
	uow.adminAssign.On("GetByParcel", ctx, int64(10)).
		Return(nil, errs.NewObjectNotFoundError("assignment", int64(10))).Once()
	uow.adminAssign.On("Upsert", ctx, mock.AnythingOfType("*assignment.AdminAssignment")).
		Run(func(args mock.Arguments) {
			a := args.Get(1).(*assignment.AdminAssignment)
			assert.Equal(t, int64(3), a.DriverID())
		}).Return(nil).Once()
	uow.parcels.On("Update", ctx, mock.Anything).Return(nil).Once()
	uow.history.On("Append", ctx, mock.Anything).Return(nil).Once()
	uow.delivery.On("GetByParcel", ctx, int64(10)).
		Return(nil, errs.NewObjectNotFoundError("assignment", int64(10))).Once()
	uow.delivery.On("Upsert", ctx, mock.AnythingOfType("*assignment.DeliveryAssignment")).
		Run(func(args mock.Arguments) {
			a := args.Get(1).(*assignment.DeliveryAssignment)
			assert.Equal(t, int64(5), a.AccountID())
		}).Return(nil).Once()
	uow.notifications.On("Add", ctx, mock.Anything).Return(nil).Once()

	h := commands.NewAssignDriverCommandHandler(&MockAssignUoWFactory{uow: uow}, testLogger())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	uow.adminAssign.AssertExpectations(t)
	uow.delivery.AssertExpectations(t)
	// No email lookup needed when the profile is already linked.
	uow.accounts.AssertNotCalled(t, "FindByEmailAndRole", ctx, mock.Anything, mock.Anything)
}

func TestAssignDriverCommandHandler_Handle_NotAccepted(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAssignDriverCommand(10, 3, 1)
	require.NoError(t, err)

	uow := newMockUoWNoCommit(ctx)
	uow.parcels.On("Get", ctx, int64(10)).Return(restoredParcel(t, 10, parcel.StatusRequested), nil).Once()
	uow.drivers.On("Get", ctx, int64(3)).Return(linkedDriver(t, 3, 5), nil).Once()

	h := commands.NewAssignDriverCommandHandler(&MockAssignUoWFactory{uow: uow}, testLogger())
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	// Gate before any assignment bookkeeping.
	uow.adminAssign.AssertNotCalled(t, "Upsert", ctx, mock.Anything)
	uow.delivery.AssertNotCalled(t, "Upsert", ctx, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAssignDriverCommandHandler_Handle_EmailFallbackLinks(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAssignDriverCommand(10, 3, 1)
	require.NoError(t, err)

	profile := unlinkedDriver(t, 3)

	uow := newMockUoW(ctx)
	uow.parcels.On("Get", ctx, int64(10)).Return(restoredParcel(t, 10, parcel.StatusAccepted), nil).Once()
	uow.drivers.On("Get", ctx, int64(3)).Return(profile, nil).Once()
	uow.adminAssign.On("GetByParcel", ctx, int64(10)).
		Return(nil, errs.NewObjectNotFoundError("assignment", int64(10))).Once()
	uow.adminAssign.On("Upsert", ctx, mock.Anything).Return(nil).Once()
	uow.parcels.On("Update", ctx, mock.Anything).Return(nil).Once()
	uow.history.On("Append", ctx, mock.Anything).Return(nil).Once()
	uow.accounts.On("FindByEmailAndRole", ctx, "ravi@example.com", account.RoleDriver).
		Return([]*account.Account{driverAccount(t, 5)}, nil).Once()
	uow.drivers.On("Update", ctx, profile).Return(nil).Once()
	uow.delivery.On("GetByParcel", ctx, int64(10)).
		Return(nil, errs.NewObjectNotFoundError("assignment", int64(10))).Once()
	uow.delivery.On("Upsert", ctx, mock.Anything).Return(nil).Once()
	uow.notifications.On("Add", ctx, mock.Anything).Return(nil).Once()

	h := commands.NewAssignDriverCommandHandler(&MockAssignUoWFactory{uow: uow}, testLogger())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, profile.IsLinked())
	require.NotNil(t, profile.AccountID())
	assert.Equal(t, int64(5), *profile.AccountID())
	uow.delivery.AssertExpectations(t)
}

func TestAssignDriverCommandHandler_Handle_NoAccountMatchDegrades(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAssignDriverCommand(10, 3, 1)
	require.NoError(t, err)

	profile := unlinkedDriver(t, 3)

	uow := newMockUoW(ctx)
	uow.parcels.On("Get", ctx, int64(10)).Return(restoredParcel(t, 10, parcel.StatusAccepted), nil).Once()
	uow.drivers.On("Get", ctx, int64(3)).Return(profile, nil).Once()
	uow.adminAssign.On("GetByParcel", ctx, int64(10)).
		Return(nil, errs.NewObjectNotFoundError("assignment", int64(10))).Once()
	uow.adminAssign.On("Upsert", ctx, mock.Anything).Return(nil).Once()
	uow.parcels.On("Update", ctx, mock.Anything).Return(nil).Once()
	uow.history.On("Append", ctx, mock.Anything).Return(nil).Once()
	uow.accounts.On("FindByEmailAndRole", ctx, "ravi@example.com", account.RoleDriver).
		Return([]*account.Account{}, nil).Once()
	uow.notifications.On("Add", ctx, mock.Anything).Return(nil).Once()

	h := commands.NewAssignDriverCommandHandler(&MockAssignUoWFactory{uow: uow}, testLogger())
	err = h.Handle(ctx, cmd)

	// Admin assignment and status advance succeed without a driver-app link.
	require.NoError(t, err)
	assert.False(t, profile.IsLinked())
	uow.adminAssign.AssertExpectations(t)
	uow.delivery.AssertNotCalled(t, "Upsert", ctx, mock.Anything)
}

func TestAssignDriverCommandHandler_Handle_AmbiguousMatchDegrades(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAssignDriverCommand(10, 3, 1)
	require.NoError(t, err)

	profile := unlinkedDriver(t, 3)

	uow := newMockUoW(ctx)
	uow.parcels.On("Get", ctx, int64(10)).Return(restoredParcel(t, 10, parcel.StatusAccepted), nil).Once()
	uow.drivers.On("Get", ctx, int64(3)).Return(profile, nil).Once()
	uow.adminAssign.On("GetByParcel", ctx, int64(10)).
		Return(nil, errs.NewObjectNotFoundError("assignment", int64(10))).Once()
	uow.adminAssign.On("Upsert", ctx, mock.Anything).Return(nil).Once()
	uow.parcels.On("Update", ctx, mock.Anything).Return(nil).Once()
	uow.history.On("Append", ctx, mock.Anything).Return(nil).Once()
	uow.accounts.On("FindByEmailAndRole", ctx, "ravi@example.com", account.RoleDriver).
		Return([]*account.Account{driverAccount(t, 5), driverAccount(t, 6)}, nil).Once()
	uow.notifications.On("Add", ctx, mock.Anything).Return(nil).Once()

	h := commands.NewAssignDriverCommandHandler(&MockAssignUoWFactory{uow: uow}, testLogger())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, profile.IsLinked())
	uow.delivery.AssertNotCalled(t, "Upsert", ctx, mock.Anything)
}

func TestAssignDriverCommandHandler_Handle_AlreadyAssigned(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAssignDriverCommand(10, 4, 1)
	require.NoError(t, err)

	uow := newMockUoWNoCommit(ctx)
	uow.parcels.On("Get", ctx, int64(10)).Return(restoredParcel(t, 10, parcel.StatusAssigned), nil).Once()
	uow.drivers.On("Get", ctx, int64(4)).Return(linkedDriver(t, 4, 6), nil).Once()

	h := commands.NewAssignDriverCommandHandler(&MockAssignUoWFactory{uow: uow}, testLogger())
	err = h.Handle(ctx, cmd)

	// Already assigned parcels cannot be reassigned through this command; the
	// status gate rejects them.
	require.ErrorIs(t, err, errs.ErrInvalidState)
	uow.adminAssign.AssertNotCalled(t, "Upsert", ctx, mock.Anything)
}
