package ports

import (
	"context"

	"parcelms/internal/core/domain/model/kernel"
	"parcelms/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel and assigns its identifier via SetID.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel. The write is guarded by
	// the aggregate's version; a concurrent update surfaces as a version error.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel by its identifier.
	Get(ctx context.Context, id int64) (*parcel.Parcel, error)

	// GetByTrackingNumber retrieves a parcel by its public tracking number.
	GetByTrackingNumber(ctx context.Context, tn kernel.TrackingNumber) (*parcel.Parcel, error)

	// ExistsTrackingNumber reports whether a parcel already carries the
	// tracking number. Used for collision retry at creation.
	ExistsTrackingNumber(ctx context.Context, tn kernel.TrackingNumber) (bool, error)
}

// StatusHistoryRepository persists the append-only parcel status trail.
type StatusHistoryRepository interface {
	// Append stores a history entry. The trail is append-only.
	Append(ctx context.Context, entry *parcel.HistoryEntry) error
}
