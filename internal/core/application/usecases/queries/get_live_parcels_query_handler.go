package queries

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetLiveParcelsQueryHandler serves the admin live-parcel map. For each
// in-flight parcel the position comes from the parcel-tagged driver ping when
// one exists, falling back to the assigned driver's administrator-recorded
// location.
type GetLiveParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetLiveParcelsQueryHandler creates a handler for live-parcel queries.
func NewGetLiveParcelsQueryHandler(db *gorm.DB) GetLiveParcelsQueryHandler {
	return GetLiveParcelsQueryHandler{db: db}
}

// Handle returns parcels between acceptance and delivery with positions.
func (h GetLiveParcelsQueryHandler) Handle(
	ctx context.Context, query GetLiveParcelsQuery,
) ([]LiveParcel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]LiveParcel, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.tracking_number,
			p.current_status,
			aa.driver_id,
			COALESCE(ping.latitude, adm.latitude) AS latitude,
			COALESCE(ping.longitude, adm.longitude) AS longitude
		FROM parcels p
		LEFT JOIN admin_assignments aa ON aa.parcel_id = p.id
		LEFT JOIN driver_assignments da ON da.parcel_id = p.id
		LEFT JOIN LATERAL (
			SELECT latitude, longitude
			FROM driver_locations
			WHERE parcel_id = p.id OR account_id = da.account_id
			ORDER BY recorded_at DESC, id DESC
			LIMIT 1
		) ping ON true
		LEFT JOIN LATERAL (
			SELECT latitude, longitude
			FROM admin_driver_locations
			WHERE driver_id = aa.driver_id
			ORDER BY recorded_at DESC, id DESC
			LIMIT 1
		) adm ON aa.driver_id IS NOT NULL
		WHERE p.current_status IN ('accepted', 'assigned', 'picked_up', 'in_transit', 'out_for_delivery')
		ORDER BY p.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry LiveParcel
		var driverID sql.NullInt64
		var lat, lng decimal.NullDecimal

		if err = rows.Scan(
			&entry.ParcelID, &entry.TrackingNumber, &entry.CurrentStatus,
			&driverID, &lat, &lng,
		); err != nil {
			return nil, err
		}

		if driverID.Valid {
			entry.DriverID = &driverID.Int64
		}
		if lat.Valid {
			entry.Latitude = &lat.Decimal
		}
		if lng.Valid {
			entry.Longitude = &lng.Decimal
		}

		parcels = append(parcels, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
