package commands_test

import (
	"testing"

	"parcelms/internal/core/application/usecases/commands"
	"parcelms/internal/core/domain/model/assignment"
	"parcelms/internal/core/domain/model/parcel"
	"parcelms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateParcelStatusCommandHandler_Handle_PickedUp(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateParcelStatusCommand(10, 5, parcel.StatusPickedUp)
	require.NoError(t, err)

	delivery, err := assignment.NewDeliveryAssignment(10, 5)
	require.NoError(t, err)

	uow := newMockUoW(ctx)
	uow.delivery.On("GetByParcelAndAccount", ctx, int64(10), int64(5)).Return(delivery, nil).Once()
	uow.parcels.On("Get", ctx, int64(10)).Return(restoredParcel(t, 10, parcel.StatusAssigned), nil).Once()
	uow.parcels.On("Update", ctx, mock.AnythingOfType("*parcel.Parcel")).
		Run(func(args mock.Arguments) {
			p := args.Get(1).(*parcel.Parcel)
			assert.Equal(t, parcel.StatusPickedUp, p.Status())
		}).Return(nil).Once()
	uow.history.On("Append", ctx, mock.AnythingOfType("*parcel.HistoryEntry")).
		Run(func(args mock.Arguments) {
			entry := args.Get(1).(*parcel.HistoryEntry)
			assert.Equal(t, parcel.StatusPickedUp, entry.Status())
			assert.Equal(t, "Mumbai Central", entry.Location())
		}).Return(nil).Once()
	uow.delivery.On("Upsert", ctx, delivery).Return(nil).Once()
	uow.notifications.On("Add", ctx, mock.Anything).Return(nil).Once()

	h := commands.NewUpdateParcelStatusCommandHandler(&MockStatusUpdateUoWFactory{uow: uow})
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.NotNil(t, delivery.StartedAt())
	assert.Nil(t, delivery.CompletedAt())
	uow.AssertExpectations(t)
}

func TestUpdateParcelStatusCommandHandler_Handle_Delivered(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateParcelStatusCommand(10, 5, parcel.StatusDelivered)
	require.NoError(t, err)

	delivery, err := assignment.NewDeliveryAssignment(10, 5)
	require.NoError(t, err)

	uow := newMockUoW(ctx)
	uow.delivery.On("GetByParcelAndAccount", ctx, int64(10), int64(5)).Return(delivery, nil).Once()
	uow.parcels.On("Get", ctx, int64(10)).Return(restoredParcel(t, 10, parcel.StatusOutForDelivery), nil).Once()
	uow.parcels.On("Update", ctx, mock.Anything).Return(nil).Once()
	uow.history.On("Append", ctx, mock.AnythingOfType("*parcel.HistoryEntry")).
		Run(func(args mock.Arguments) {
			entry := args.Get(1).(*parcel.HistoryEntry)
			assert.Equal(t, parcel.StatusDelivered, entry.Status())
			// Delivered entries carry the drop endpoint.
			assert.Equal(t, "Pune Station", entry.Location())
		}).Return(nil).Once()
	uow.delivery.On("Upsert", ctx, delivery).Return(nil).Once()
	uow.notifications.On("Add", ctx, mock.Anything).Return(nil).Once()

	h := commands.NewUpdateParcelStatusCommandHandler(&MockStatusUpdateUoWFactory{uow: uow})
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.NotNil(t, delivery.CompletedAt())
}

func TestUpdateParcelStatusCommandHandler_Handle_BackwardTransition(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateParcelStatusCommand(10, 5, parcel.StatusAssigned)
	require.NoError(t, err)

	delivery, err := assignment.NewDeliveryAssignment(10, 5)
	require.NoError(t, err)

	uow := newMockUoWNoCommit(ctx)
	uow.delivery.On("GetByParcelAndAccount", ctx, int64(10), int64(5)).Return(delivery, nil).Once()
	uow.parcels.On("Get", ctx, int64(10)).Return(restoredParcel(t, 10, parcel.StatusPickedUp), nil).Once()

	h := commands.NewUpdateParcelStatusCommandHandler(&MockStatusUpdateUoWFactory{uow: uow})
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	uow.parcels.AssertNotCalled(t, "Update", ctx, mock.Anything)
	uow.history.AssertNotCalled(t, "Append", ctx, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestUpdateParcelStatusCommandHandler_Handle_NotAssignedToDriver(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateParcelStatusCommand(10, 5, parcel.StatusPickedUp)
	require.NoError(t, err)

	uow := newMockUoWNoCommit(ctx)
	uow.delivery.On("GetByParcelAndAccount", ctx, int64(10), int64(5)).
		Return(nil, errs.NewObjectNotFoundError("assignment", int64(10))).Once()

	h := commands.NewUpdateParcelStatusCommandHandler(&MockStatusUpdateUoWFactory{uow: uow})
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrParcelNotAssignedToDriver)
	uow.parcels.AssertNotCalled(t, "Get", ctx, mock.Anything)
}
