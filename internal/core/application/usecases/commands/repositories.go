// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"parcelms/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest unit of work that covers the
// repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// HistoryRepoFactory provides access to the status history repository within a transaction.
	HistoryRepoFactory interface {
		StatusHistoryRepository() ports.StatusHistoryRepository
	}

	// NotificationRepoFactory provides access to the notification repository within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// PricingRepoFactory provides access to the pricing rule repository within a transaction.
	PricingRepoFactory interface {
		PricingRuleRepository() ports.PricingRuleRepository
	}

	// DriverRepoFactory provides access to the driver profile repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// AccountRepoFactory provides access to the account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// AssignmentRepoFactory provides access to both assignment repositories within a transaction.
	AssignmentRepoFactory interface {
		AdminAssignmentRepository() ports.AdminAssignmentRepository
		DeliveryAssignmentRepository() ports.DeliveryAssignmentRepository
	}

	// LocationRepoFactory provides access to the tracking location repository within a transaction.
	LocationRepoFactory interface {
		TrackLocationRepository() ports.TrackLocationRepository
	}

	// ParcelUoW manages transactions for parcel lifecycle operations: the
	// aggregate itself plus its history trail and client notifications.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
		HistoryRepoFactory
		NotificationRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// CreateParcelUoW adds pricing rule access to the parcel lifecycle scope.
	CreateParcelUoW interface {
		ParcelUoW
		PricingRepoFactory
	}

	// CreateParcelUoWFactory creates new parcel creation unit of work instances.
	CreateParcelUoWFactory interface {
		Create() CreateParcelUoW
	}

	// AssignUoW spans the parcel aggregate, both assignment tables, driver
	// profiles and accounts. Used by the assignment reconciler.
	AssignUoW interface {
		TxManager
		ParcelRepoFactory
		HistoryRepoFactory
		NotificationRepoFactory
		AssignmentRepoFactory
		DriverRepoFactory
		AccountRepoFactory
	}

	// AssignUoWFactory creates new assignment unit of work instances.
	AssignUoWFactory interface {
		Create() AssignUoW
	}

	// StatusUpdateUoW spans the parcel aggregate, its trail and the delivery
	// assignment that records pickup/delivery timestamps.
	StatusUpdateUoW interface {
		TxManager
		ParcelRepoFactory
		HistoryRepoFactory
		NotificationRepoFactory
		AssignmentRepoFactory
	}

	// StatusUpdateUoWFactory creates new status update unit of work instances.
	StatusUpdateUoWFactory interface {
		Create() StatusUpdateUoW
	}

	// DriverUoW manages transactions for driver profile operations and the
	// account lookups the email link needs.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
		AccountRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// NotificationUoW manages transactions for notification read-state changes.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	// NotificationUoWFactory creates new notification unit of work instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}

	// LocationUoW manages transactions for driver location reports.
	LocationUoW interface {
		TxManager
		LocationRepoFactory
	}

	// LocationUoWFactory creates new location unit of work instances.
	LocationUoWFactory interface {
		Create() LocationUoW
	}
)
