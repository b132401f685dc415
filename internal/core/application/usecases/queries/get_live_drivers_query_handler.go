package queries

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetLiveDriversQueryHandler serves the admin live-driver map. Positions
// prefer driver-application pings over administrator-recorded locations; the
// admin source also carries the optional speed.
type GetLiveDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetLiveDriversQueryHandler creates a handler for live-driver queries.
func NewGetLiveDriversQueryHandler(db *gorm.DB) GetLiveDriversQueryHandler {
	return GetLiveDriversQueryHandler{db: db}
}

// Handle returns every driver with the freshest position either source has.
func (h GetLiveDriversQueryHandler) Handle(
	ctx context.Context, query GetLiveDriversQuery,
) ([]LiveDriver, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers := make([]LiveDriver, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.name,
			COALESCE(ping.latitude, adm.latitude) AS latitude,
			COALESCE(ping.longitude, adm.longitude) AS longitude,
			CASE WHEN ping.id IS NULL THEN adm.speed_kmh END AS speed_kmh,
			aa.parcel_id,
			p.current_status
		FROM admin_drivers d
		LEFT JOIN LATERAL (
			SELECT id, latitude, longitude
			FROM driver_locations
			WHERE account_id = d.account_id
			ORDER BY recorded_at DESC, id DESC
			LIMIT 1
		) ping ON d.account_id IS NOT NULL
		LEFT JOIN LATERAL (
			SELECT id, latitude, longitude, speed_kmh
			FROM admin_driver_locations
			WHERE driver_id = d.id
			ORDER BY recorded_at DESC, id DESC
			LIMIT 1
		) adm ON true
		LEFT JOIN LATERAL (
			SELECT parcel_id
			FROM admin_assignments
			WHERE driver_id = d.id
			ORDER BY assigned_at DESC
			LIMIT 1
		) aa ON true
		LEFT JOIN parcels p ON p.id = aa.parcel_id
		ORDER BY d.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry LiveDriver
		var lat, lng, speed decimal.NullDecimal
		var parcelID sql.NullInt64
		var status sql.NullString

		if err = rows.Scan(
			&entry.DriverID, &entry.Name, &lat, &lng, &speed, &parcelID, &status,
		); err != nil {
			return nil, err
		}

		if lat.Valid {
			entry.Latitude = &lat.Decimal
		}
		if lng.Valid {
			entry.Longitude = &lng.Decimal
		}
		if speed.Valid {
			entry.SpeedKmh = &speed.Decimal
		}
		if parcelID.Valid {
			entry.AssignedParcel = &parcelID.Int64
		}
		if status.Valid {
			entry.ParcelStatus = &status.String
		}

		drivers = append(drivers, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
