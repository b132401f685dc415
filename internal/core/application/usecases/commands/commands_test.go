package commands_test

import (
	"testing"

	"parcelms/internal/core/application/usecases/commands"
	"parcelms/internal/core/domain/model/driver"
	"parcelms/internal/core/domain/model/parcel"
	"parcelms/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateParcelCommand(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		cmd, err := commands.NewCreateParcelCommand(
			42, validRoute(t), validDims(t), decimal.RequireFromString("5"), "books", "fragile")

		require.NoError(t, err)
		assert.Equal(t, int64(42), cmd.ClientID())
		assert.Equal(t, "books", cmd.Description())
		assert.Equal(t, "fragile", cmd.SpecialInstructions())
		assert.NoError(t, cmd.Validate())
	})

	t.Run("invalid client", func(t *testing.T) {
		_, err := commands.NewCreateParcelCommand(
			0, validRoute(t), validDims(t), decimal.Zero, "", "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unconstructed route", func(t *testing.T) {
		_, err := commands.NewCreateParcelCommand(
			42, parcel.Route{}, validDims(t), decimal.Zero, "", "")
		require.Error(t, err)
	})

	t.Run("negative distance", func(t *testing.T) {
		_, err := commands.NewCreateParcelCommand(
			42, validRoute(t), validDims(t), decimal.RequireFromString("-1"), "", "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewAcceptParcelCommand(t *testing.T) {
	cmd, err := commands.NewAcceptParcelCommand(10, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(10), cmd.ParcelID())
	assert.Equal(t, int64(1), cmd.AdminID())

	_, err = commands.NewAcceptParcelCommand(0, 1)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	var zero commands.AcceptParcelCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrAcceptParcelCommandIsNotConstructed)
}

func TestNewRejectParcelCommand(t *testing.T) {
	cmd, err := commands.NewRejectParcelCommand(10, 1, "address unreachable")
	require.NoError(t, err)
	assert.Equal(t, "address unreachable", cmd.Notes())

	_, err = commands.NewRejectParcelCommand(10, 0, "")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewAssignDriverCommand(t *testing.T) {
	cmd, err := commands.NewAssignDriverCommand(10, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), cmd.DriverID())

	_, err = commands.NewAssignDriverCommand(10, 0, 1)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewUpdateParcelStatusCommand(t *testing.T) {
	cmd, err := commands.NewUpdateParcelStatusCommand(10, 5, parcel.StatusPickedUp)
	require.NoError(t, err)
	assert.Equal(t, parcel.StatusPickedUp, cmd.Target())

	_, err = commands.NewUpdateParcelStatusCommand(10, 5, parcel.Status("lost"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCreateDriverCommand(t *testing.T) {
	_, err := commands.NewCreateDriverCommand(
		"", "ravi@example.com", "+91", driver.VehicleBike, "MH12", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCreateDriverCommand(
		"Ravi", "ravi@example.com", "+91", driver.VehicleType("rickshaw"), "MH12", "")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
