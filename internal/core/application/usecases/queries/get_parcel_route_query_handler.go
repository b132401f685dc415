package queries

import (
	"context"
	"database/sql"
	"errors"

	"parcelms/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetParcelRouteQueryHandler serves the map route view of a parcel.
type GetParcelRouteQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelRouteQueryHandler creates a handler for route lookups.
func NewGetParcelRouteQueryHandler(db *gorm.DB) GetParcelRouteQueryHandler {
	return GetParcelRouteQueryHandler{db: db}
}

// Handle loads the parcel's coordinates together with the assigned driver,
// if any. Parcels without stored coordinates are reported as not found, the
// map has nothing to draw for them.
func (h GetParcelRouteQueryHandler) Handle(
	ctx context.Context, query GetParcelRouteQuery,
) (GetParcelRouteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetParcelRouteQueryResponse{}, err
	}

	var resp GetParcelRouteQueryResponse
	var pickupLat, pickupLng, dropLat, dropLng decimal.NullDecimal
	var driverID sql.NullInt64
	var driverName, driverPhone, driverVehicle sql.NullString

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.tracking_number,
			p.current_status,
			p.from_location,
			p.to_location,
			p.pickup_lat,
			p.pickup_lng,
			p.drop_lat,
			p.drop_lng,
			d.id,
			d.name,
			d.phone_number,
			d.vehicle_number
		FROM parcels p
		LEFT JOIN admin_assignments aa ON aa.parcel_id = p.id
		LEFT JOIN admin_drivers d ON d.id = aa.driver_id
		WHERE p.id = ?
	`, query.ParcelID()).Row()

	err := row.Scan(
		&resp.ParcelID,
		&resp.TrackingNumber,
		&resp.CurrentStatus,
		&resp.FromLocation,
		&resp.ToLocation,
		&pickupLat,
		&pickupLng,
		&dropLat,
		&dropLng,
		&driverID,
		&driverName,
		&driverPhone,
		&driverVehicle,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetParcelRouteQueryResponse{}, errs.NewObjectNotFoundError(
			"parcel", query.ParcelID())
	}
	if err != nil {
		return GetParcelRouteQueryResponse{}, err
	}

	if !pickupLat.Valid || !pickupLng.Valid || !dropLat.Valid || !dropLng.Valid {
		return GetParcelRouteQueryResponse{}, errs.NewObjectNotFoundError(
			"parcel route", query.ParcelID())
	}

	resp.PickupLat = pickupLat.Decimal
	resp.PickupLng = pickupLng.Decimal
	resp.DropLat = dropLat.Decimal
	resp.DropLng = dropLng.Decimal

	if driverID.Valid {
		resp.Driver = &RouteDriver{
			DriverID:      driverID.Int64,
			Name:          driverName.String,
			PhoneNumber:   driverPhone.String,
			VehicleNumber: driverVehicle.String,
		}
	}

	return resp, nil
}
