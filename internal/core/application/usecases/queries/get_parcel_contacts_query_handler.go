package queries

import (
	"context"
	"database/sql"
	"errors"

	"parcelms/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetParcelContactsQueryHandler serves contact exchange lookups.
type GetParcelContactsQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelContactsQueryHandler creates a handler for contact lookups.
func NewGetParcelContactsQueryHandler(db *gorm.DB) GetParcelContactsQueryHandler {
	return GetParcelContactsQueryHandler{db: db}
}

// Handle loads the sender's card and, once a driver is assigned, the
// driver's card for a parcel.
func (h GetParcelContactsQueryHandler) Handle(
	ctx context.Context, query GetParcelContactsQuery,
) (GetParcelContactsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetParcelContactsQueryResponse{}, err
	}

	var resp GetParcelContactsQueryResponse
	var driverID sql.NullInt64
	var driverName, driverPhone, vehicleType, vehicleNumber sql.NullString

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.tracking_number,
			u.id,
			u.full_name,
			u.email,
			COALESCE(u.phone_number, ''),
			d.id,
			d.name,
			d.phone_number,
			d.vehicle_type,
			d.vehicle_number
		FROM parcels p
		JOIN users u ON u.id = p.client_id
		LEFT JOIN admin_assignments aa ON aa.parcel_id = p.id
		LEFT JOIN admin_drivers d ON d.id = aa.driver_id
		WHERE p.id = ?
	`, query.ParcelID()).Row()

	err := row.Scan(
		&resp.ParcelID,
		&resp.TrackingNumber,
		&resp.Client.ClientID,
		&resp.Client.FullName,
		&resp.Client.Email,
		&resp.Client.PhoneNumber,
		&driverID,
		&driverName,
		&driverPhone,
		&vehicleType,
		&vehicleNumber,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetParcelContactsQueryResponse{}, errs.NewObjectNotFoundError(
			"parcel", query.ParcelID())
	}
	if err != nil {
		return GetParcelContactsQueryResponse{}, err
	}

	if driverID.Valid {
		resp.Driver = &DriverContact{
			DriverID:      driverID.Int64,
			Name:          driverName.String,
			PhoneNumber:   driverPhone.String,
			VehicleType:   vehicleType.String,
			VehicleNumber: vehicleNumber.String,
		}
	}

	return resp, nil
}
