package ports

import (
	"context"

	"parcelms/internal/core/domain/model/account"
	"parcelms/internal/core/domain/model/assignment"
	"parcelms/internal/core/domain/model/driver"
)

// DriverRepository defines the persistence contract for driver profiles.
type DriverRepository interface {
	// Add persists a new driver profile and assigns its identifier.
	Add(ctx context.Context, profile *driver.Profile) error

	// Update persists changes to an existing profile.
	Update(ctx context.Context, profile *driver.Profile) error

	// Get retrieves a profile by its identifier.
	Get(ctx context.Context, id int64) (*driver.Profile, error)

	// GetUnlinked retrieves profiles with no linked account. Used by the
	// email-link sweep.
	GetUnlinked(ctx context.Context) ([]*driver.Profile, error)
}

// AccountRepository reads the accounts owned by the auth subsystem. The
// parcel service never creates or mutates accounts.
type AccountRepository interface {
	// Get retrieves an account by its identifier.
	Get(ctx context.Context, id int64) (*account.Account, error)

	// FindByEmailAndRole retrieves every account carrying both the email and
	// the role. Link workflows act only when exactly one match exists.
	FindByEmailAndRole(ctx context.Context, email string, role account.Role) ([]*account.Account, error)
}

// AdminAssignmentRepository persists the admin-facing parcel/driver link.
type AdminAssignmentRepository interface {
	// Upsert stores the assignment for its parcel, replacing the driver when
	// an assignment already exists.
	Upsert(ctx context.Context, a *assignment.AdminAssignment) error

	// GetByParcel retrieves the assignment for a parcel, or a not-found error.
	GetByParcel(ctx context.Context, parcelID int64) (*assignment.AdminAssignment, error)
}

// DeliveryAssignmentRepository persists the driver-app-facing assignment,
// keyed by the driver's account.
type DeliveryAssignmentRepository interface {
	// Upsert stores the assignment for its parcel, replacing the account when
	// an assignment already exists.
	Upsert(ctx context.Context, a *assignment.DeliveryAssignment) error

	// GetByParcel retrieves the assignment for a parcel, or a not-found error.
	GetByParcel(ctx context.Context, parcelID int64) (*assignment.DeliveryAssignment, error)

	// GetByParcelAndAccount retrieves the assignment for a parcel held by the
	// account, or a not-found error.
	GetByParcelAndAccount(ctx context.Context, parcelID, accountID int64) (*assignment.DeliveryAssignment, error)
}
