package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetDriversQueryHandler serves the admin fleet listing.
type GetDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetDriversQueryHandler creates a handler for fleet listings.
func NewGetDriversQueryHandler(db *gorm.DB) GetDriversQueryHandler {
	return GetDriversQueryHandler{db: db}
}

// Handle lists drivers with the number of parcels currently on each of them.
func (h GetDriversQueryHandler) Handle(
	ctx context.Context, query GetDriversQuery,
) (GetDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDriversQueryResponse{}, err
	}

	sqlText := `
		SELECT
			d.id,
			d.name,
			d.email,
			d.phone_number,
			d.vehicle_type,
			d.vehicle_number,
			d.current_location,
			d.rating,
			d.is_available,
			d.account_id,
			COUNT(p.id) FILTER (WHERE p.current_status IN
				('assigned', 'picked_up', 'in_transit', 'out_for_delivery'))
		FROM admin_drivers d
		LEFT JOIN admin_assignments aa ON aa.driver_id = d.id
		LEFT JOIN parcels p ON p.id = aa.parcel_id
	`
	if query.AvailableOnly() {
		sqlText += ` WHERE d.is_available`
	}
	sqlText += `
		GROUP BY d.id
		ORDER BY d.name, d.id
	`

	rows, err := h.db.WithContext(ctx).Raw(sqlText).Rows()
	if err != nil {
		return GetDriversQueryResponse{}, err
	}
	defer rows.Close()

	var resp GetDriversQueryResponse
	for rows.Next() {
		var view DriverView
		var accountID sql.NullInt64

		err = rows.Scan(
			&view.DriverID,
			&view.Name,
			&view.Email,
			&view.PhoneNumber,
			&view.VehicleType,
			&view.VehicleNumber,
			&view.CurrentLocation,
			&view.Rating,
			&view.IsAvailable,
			&accountID,
			&view.ActiveParcels,
		)
		if err != nil {
			return GetDriversQueryResponse{}, err
		}
		if accountID.Valid {
			view.AccountID = &accountID.Int64
		}
		resp.Drivers = append(resp.Drivers, view)
	}
	if err = rows.Err(); err != nil {
		return GetDriversQueryResponse{}, err
	}

	return resp, nil
}
