package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetParcelStatsQueryHandler serves the client dashboard counters.
type GetParcelStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelStatsQueryHandler creates a handler for client stats queries.
func NewGetParcelStatsQueryHandler(db *gorm.DB) GetParcelStatsQueryHandler {
	return GetParcelStatsQueryHandler{db: db}
}

// Handle counts the client's parcels per status and their unread notifications.
func (h GetParcelStatsQueryHandler) Handle(
	ctx context.Context, query GetParcelStatsQuery,
) (GetParcelStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetParcelStatsQueryResponse{}, err
	}

	resp := GetParcelStatsQueryResponse{
		ByStatus: make(map[string]int64),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT current_status, COUNT(*)
		FROM parcels
		WHERE client_id = ?
		GROUP BY current_status
	`, query.ClientID()).Rows()
	if err != nil {
		return GetParcelStatsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int64
		if err = rows.Scan(&status, &count); err != nil {
			return GetParcelStatsQueryResponse{}, err
		}
		resp.ByStatus[status] = count
		resp.Total += count
	}
	if err = rows.Err(); err != nil {
		return GetParcelStatsQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM notifications
		WHERE client_id = ? AND NOT is_read
	`, query.ClientID()).Row()
	if err = row.Scan(&resp.UnreadNotifications); err != nil {
		return GetParcelStatsQueryResponse{}, err
	}

	return resp, nil
}
