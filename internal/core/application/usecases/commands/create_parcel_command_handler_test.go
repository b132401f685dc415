package commands_test

import (
	"errors"
	"testing"

	"parcelms/internal/core/application/usecases/commands"
	"parcelms/internal/core/domain/model/parcel"
	"parcelms/internal/core/domain/model/pricing"
	"parcelms/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validRoute(t *testing.T) parcel.Route {
	t.Helper()
	route, err := parcel.NewRoute("Mumbai Central", "Pune Station", nil, nil)
	require.NoError(t, err)
	return route
}

func validDims(t *testing.T) parcel.Dimensions {
	t.Helper()
	dims, err := parcel.NewDimensions(
		decimal.RequireFromString("2"),
		decimal.RequireFromString("30"),
		decimal.RequireFromString("20"),
		decimal.RequireFromString("15"),
	)
	require.NoError(t, err)
	return dims
}

func TestCreateParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateParcelCommand(
		42, validRoute(t), validDims(t), decimal.RequireFromString("5"), "books", "")
	require.NoError(t, err)

	rule, err := pricing.NewRule(1,
		decimal.RequireFromString("1"), decimal.RequireFromString("5"),
		decimal.RequireFromString("50"), decimal.RequireFromString("5"), true)
	require.NoError(t, err)

	uow := newMockUoW(ctx)
	uow.parcels.On("ExistsTrackingNumber", ctx, mock.Anything).Return(false, nil).Once()
	uow.pricingRules.On("GetActive", ctx).Return([]*pricing.Rule{rule}, nil).Once()
	uow.parcels.On("Add", ctx, mock.AnythingOfType("*parcel.Parcel")).
		Run(func(args mock.Arguments) {
			require.NoError(t, args.Get(1).(*parcel.Parcel).SetID(7))
		}).Return(nil).Once()
	uow.history.On("Append", ctx, mock.AnythingOfType("*parcel.HistoryEntry")).
		Run(func(args mock.Arguments) {
			entry := args.Get(1).(*parcel.HistoryEntry)
			assert.Equal(t, parcel.StatusRequested, entry.Status())
			assert.Equal(t, "Mumbai Central", entry.Location())
			assert.Equal(t, "Parcel created and awaiting admin acceptance", entry.Notes())
		}).Return(nil).Once()
	uow.notifications.On("Add", ctx, mock.Anything).Return(nil).Once()

	h := commands.NewCreateParcelCommandHandler(
		&MockCreateParcelUoWFactory{uow: uow}, services.NewPricingEngine())
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID())
	assert.Equal(t, parcel.StatusRequested, created.Status())
	assert.Equal(t, "75.00", created.Price().StringFixed(2))
	assert.Regexp(t, `^PMS-[0-9A-F]{8}$`, created.TrackingNumber().String())
	uow.AssertExpectations(t)
	uow.parcels.AssertExpectations(t)
	uow.history.AssertExpectations(t)
	uow.notifications.AssertExpectations(t)
}

func TestCreateParcelCommandHandler_Handle_TrackingCollisionRetries(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateParcelCommand(
		42, validRoute(t), validDims(t), decimal.RequireFromString("5"), "", "")
	require.NoError(t, err)

	uow := newMockUoW(ctx)
	uow.parcels.On("ExistsTrackingNumber", ctx, mock.Anything).Return(true, nil).Once()
	uow.parcels.On("ExistsTrackingNumber", ctx, mock.Anything).Return(false, nil).Once()
	uow.pricingRules.On("GetActive", ctx).Return([]*pricing.Rule{}, nil).Once()
	uow.parcels.On("Add", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			require.NoError(t, args.Get(1).(*parcel.Parcel).SetID(8))
		}).Return(nil).Once()
	uow.history.On("Append", ctx, mock.Anything).Return(nil).Once()
	uow.notifications.On("Add", ctx, mock.Anything).Return(nil).Once()

	h := commands.NewCreateParcelCommandHandler(
		&MockCreateParcelUoWFactory{uow: uow}, services.NewPricingEngine())
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	// No rule list, so the default tariff applies.
	assert.Equal(t, "150.00", created.Price().StringFixed(2))
	uow.parcels.AssertExpectations(t)
}

func TestCreateParcelCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewCreateParcelCommandHandler(
		&MockCreateParcelUoWFactory{uow: new(MockUoW)}, services.NewPricingEngine())

	_, err := h.Handle(t.Context(), commands.CreateParcelCommand{})

	require.ErrorIs(t, err, commands.ErrCreateParcelCommandIsNotConstructed)
}

func TestCreateParcelCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateParcelCommand(
		42, validRoute(t), validDims(t), decimal.RequireFromString("5"), "", "")
	require.NoError(t, err)

	uow := newMockUoWNoCommit(ctx)
	uow.parcels.On("ExistsTrackingNumber", ctx, mock.Anything).Return(false, nil).Once()
	uow.pricingRules.On("GetActive", ctx).Return([]*pricing.Rule{}, nil).Once()
	uow.parcels.On("Add", ctx, mock.Anything).Return(errors.New("insert failed")).Once()

	h := commands.NewCreateParcelCommandHandler(
		&MockCreateParcelUoWFactory{uow: uow}, services.NewPricingEngine())
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", ctx)
}
