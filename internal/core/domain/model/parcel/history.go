package parcel

import (
	"time"

	"parcelms/internal/pkg/errs"
)

// HistoryEntry is one immutable record in a parcel's status audit trail.
// Entries are append-only: they are never mutated or deleted once written.
type HistoryEntry struct {
	id        int64
	parcelID  int64
	status    Status
	location  string
	notes     string
	createdBy *int64
	createdAt time.Time

	isConstructed bool
}

// NewHistoryEntry creates an audit record for a parcel reaching status.
// Location and notes are optional; createdBy is nil for system-originated
// entries.
func NewHistoryEntry(parcelID int64, status Status, location, notes string, createdBy *int64) (*HistoryEntry, error) {
	if parcelID <= 0 {
		return nil, errs.NewValueIsInvalidError("parcel id")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &HistoryEntry{
		parcelID:      parcelID,
		status:        status,
		location:      location,
		notes:         notes,
		createdBy:     createdBy,
		isConstructed: true,
	}, nil
}

// RestoreHistoryEntry reconstructs an audit record from persistence.
func RestoreHistoryEntry(
	id, parcelID int64, status Status, location, notes string, createdBy *int64, createdAt time.Time,
) (*HistoryEntry, error) {
	entry, err := NewHistoryEntry(parcelID, status, location, notes, createdBy)
	if err != nil {
		return nil, err
	}

	entry.id = id
	entry.createdAt = createdAt
	return entry, nil
}

// Validate ensures the entry was created through a constructor.
func (h *HistoryEntry) Validate() error {
	if h == nil || !h.isConstructed {
		return errs.NewValueIsRequiredError("history entry must be created via NewHistoryEntry")
	}
	return nil
}

// ID returns the persistent identifier, zero until persisted.
func (h *HistoryEntry) ID() int64 { return h.id }

// ParcelID returns the parcel this entry belongs to.
func (h *HistoryEntry) ParcelID() int64 { return h.parcelID }

// Status returns the status the parcel reached.
func (h *HistoryEntry) Status() Status { return h.status }

// Location returns the optional location annotation.
func (h *HistoryEntry) Location() string { return h.location }

// Notes returns the optional free-text notes.
func (h *HistoryEntry) Notes() string { return h.notes }

// CreatedBy returns the acting account's identifier, nil for system entries.
func (h *HistoryEntry) CreatedBy() *int64 { return h.createdBy }

// CreatedAt returns the persistence timestamp, zero until persisted.
func (h *HistoryEntry) CreatedAt() time.Time { return h.createdAt }
