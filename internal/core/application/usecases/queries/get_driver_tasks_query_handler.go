package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDriverTasksQueryHandler serves the driver application's work list.
type GetDriverTasksQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverTasksQueryHandler creates a handler for driver task queries.
func NewGetDriverTasksQueryHandler(db *gorm.DB) GetDriverTasksQueryHandler {
	return GetDriverTasksQueryHandler{db: db}
}

// Handle returns the parcels assigned to the driver account that are still
// in flight, oldest assignment first.
func (h GetDriverTasksQueryHandler) Handle(
	ctx context.Context, query GetDriverTasksQuery,
) ([]DriverTask, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tasks := make([]DriverTask, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.tracking_number,
			p.current_status,
			p.from_location,
			p.to_location,
			p.weight,
			COALESCE(p.special_instructions, ''),
			da.started_at,
			da.created_at
		FROM driver_assignments da
		JOIN parcels p ON p.id = da.parcel_id
		WHERE da.account_id = ?
		  AND p.current_status IN ('assigned', 'picked_up', 'in_transit', 'out_for_delivery')
		ORDER BY da.created_at
	`, query.DriverAccountID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var task DriverTask
		if err = rows.Scan(
			&task.ParcelID,
			&task.TrackingNumber,
			&task.CurrentStatus,
			&task.FromLocation,
			&task.ToLocation,
			&task.Weight,
			&task.SpecialInstructions,
			&task.StartedAt,
			&task.AssignedAt,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
