package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and repositories bound to the transaction.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ParcelRepository returns a ParcelRepository bound to the current transaction.
	ParcelRepository() ParcelRepository

	// StatusHistoryRepository returns a StatusHistoryRepository bound to the current transaction.
	StatusHistoryRepository() StatusHistoryRepository

	// NotificationRepository returns a NotificationRepository bound to the current transaction.
	NotificationRepository() NotificationRepository

	// PricingRuleRepository returns a PricingRuleRepository bound to the current transaction.
	PricingRuleRepository() PricingRuleRepository

	// DriverRepository returns a DriverRepository bound to the current transaction.
	DriverRepository() DriverRepository

	// AccountRepository returns an AccountRepository bound to the current transaction.
	AccountRepository() AccountRepository

	// AdminAssignmentRepository returns an AdminAssignmentRepository bound to the current transaction.
	AdminAssignmentRepository() AdminAssignmentRepository

	// DeliveryAssignmentRepository returns a DeliveryAssignmentRepository bound to the current transaction.
	DeliveryAssignmentRepository() DeliveryAssignmentRepository

	// TrackLocationRepository returns a TrackLocationRepository bound to the current transaction.
	TrackLocationRepository() TrackLocationRepository
}
