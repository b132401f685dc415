package queries

import (
	"context"
	"database/sql"
	"errors"

	"parcelms/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetParcelTrackingQueryHandler serves the public tracking view.
type GetParcelTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelTrackingQueryHandler creates a handler for tracking lookups.
func NewGetParcelTrackingQueryHandler(db *gorm.DB) GetParcelTrackingQueryHandler {
	return GetParcelTrackingQueryHandler{db: db}
}

// Handle resolves the tracking number and loads the trail newest first.
// Unknown numbers surface as an object-not-found error.
func (h GetParcelTrackingQueryHandler) Handle(
	ctx context.Context, query GetParcelTrackingQuery,
) (GetParcelTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetParcelTrackingQueryResponse{}, err
	}

	var resp GetParcelTrackingQueryResponse
	var parcelID int64

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			current_status,
			from_location,
			to_location,
			price,
			created_at
		FROM parcels
		WHERE tracking_number = ?
	`, query.TrackingNumber().String()).Row()

	err := row.Scan(
		&parcelID,
		&resp.TrackingNumber,
		&resp.CurrentStatus,
		&resp.FromLocation,
		&resp.ToLocation,
		&resp.Price,
		&resp.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetParcelTrackingQueryResponse{}, errs.NewObjectNotFoundError(
			"parcel", query.TrackingNumber().String())
	}
	if err != nil {
		return GetParcelTrackingQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COALESCE(location, ''),
			COALESCE(notes, ''),
			created_at
		FROM parcel_status_history
		WHERE parcel_id = ?
		ORDER BY created_at DESC, id DESC
	`, parcelID).Rows()
	if err != nil {
		return GetParcelTrackingQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry TrackingHistoryEntry
		if err = rows.Scan(&entry.Status, &entry.Location, &entry.Notes, &entry.CreatedAt); err != nil {
			return GetParcelTrackingQueryResponse{}, err
		}
		resp.History = append(resp.History, entry)
	}
	if err = rows.Err(); err != nil {
		return GetParcelTrackingQueryResponse{}, err
	}

	return resp, nil
}
