package commands

import (
	"context"

	"parcelms/internal/core/domain/model/parcel"
	"parcelms/internal/core/ports"
)

// appendHistory drains the aggregate's status-change events and writes one
// history entry per event. Handlers call it after mutating the parcel and
// before committing, so the trail lands in the same transaction.
func appendHistory(
	ctx context.Context, repo ports.StatusHistoryRepository, aggregate *parcel.Parcel,
) error {
	for _, event := range aggregate.DrainEvents() {
		entry, err := parcel.NewHistoryEntry(
			aggregate.ID(), event.To, event.Location, event.Notes, event.ActorID)
		if err != nil {
			return err
		}
		if err = repo.Append(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}
