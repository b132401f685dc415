package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetClientParcelsQueryHandler serves the client's parcel listing.
type GetClientParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetClientParcelsQueryHandler creates a handler for parcel listings.
func NewGetClientParcelsQueryHandler(db *gorm.DB) GetClientParcelsQueryHandler {
	return GetClientParcelsQueryHandler{db: db}
}

// Handle lists the client's parcels newest first, with the assigned driver's
// name when one exists.
func (h GetClientParcelsQueryHandler) Handle(
	ctx context.Context, query GetClientParcelsQuery,
) (GetClientParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetClientParcelsQueryResponse{}, err
	}

	sqlText := `
		SELECT
			p.id,
			p.tracking_number,
			p.current_status,
			p.from_location,
			p.to_location,
			p.price,
			d.name,
			p.created_at
		FROM parcels p
		LEFT JOIN admin_assignments aa ON aa.parcel_id = p.id
		LEFT JOIN admin_drivers d ON d.id = aa.driver_id
		WHERE p.client_id = ?
	`
	args := []any{query.ClientID()}
	if query.Status() != "" {
		sqlText += ` AND p.current_status = ?`
		args = append(args, query.Status())
	}
	sqlText += ` ORDER BY p.created_at DESC, p.id DESC`

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return GetClientParcelsQueryResponse{}, err
	}
	defer rows.Close()

	var resp GetClientParcelsQueryResponse
	for rows.Next() {
		var view ClientParcelView
		var driverName sql.NullString

		err = rows.Scan(
			&view.ParcelID,
			&view.TrackingNumber,
			&view.CurrentStatus,
			&view.FromLocation,
			&view.ToLocation,
			&view.Price,
			&driverName,
			&view.CreatedAt,
		)
		if err != nil {
			return GetClientParcelsQueryResponse{}, err
		}
		if driverName.Valid {
			view.DriverName = &driverName.String
		}
		resp.Parcels = append(resp.Parcels, view)
	}
	if err = rows.Err(); err != nil {
		return GetClientParcelsQueryResponse{}, err
	}

	return resp, nil
}
