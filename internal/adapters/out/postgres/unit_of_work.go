// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work spans one business transaction: repositories
// obtained from it share the transaction, and aggregates they persist are
// tracked for post-commit processing.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.ParcelRepository().Add(ctx, aggregate); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"parcelms/internal/adapters/out/postgres/accountrepo"
	"parcelms/internal/adapters/out/postgres/assignmentrepo"
	"parcelms/internal/adapters/out/postgres/driverrepo"
	"parcelms/internal/adapters/out/postgres/locationrepo"
	"parcelms/internal/adapters/out/postgres/notificationrepo"
	"parcelms/internal/adapters/out/postgres/parcelrepo"
	"parcelms/internal/adapters/out/postgres/pricingrepo"
	"parcelms/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        int64
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances on a shared GORM
// connection. Each business operation gets a fresh instance with its own
// transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the
// aggregates modified inside it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates the transaction. Calling Begin again on an open unit of
// work is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes the transaction. The unit of work cannot be reused after.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Returns an error when none is active,
// which makes it safe to defer after a successful commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// ParcelRepository returns a parcel repository bound to the current transaction.
func (uow *GormUnitOfWork) ParcelRepository() ports.ParcelRepository {
	return parcelrepo.NewGormParcelRepository(uow.conn(), uow)
}

// StatusHistoryRepository returns a history repository bound to the current transaction.
func (uow *GormUnitOfWork) StatusHistoryRepository() ports.StatusHistoryRepository {
	return parcelrepo.NewGormStatusHistoryRepository(uow.conn())
}

// NotificationRepository returns a notification repository bound to the current transaction.
func (uow *GormUnitOfWork) NotificationRepository() ports.NotificationRepository {
	return notificationrepo.NewGormNotificationRepository(uow.conn())
}

// PricingRuleRepository returns a pricing rule repository bound to the current transaction.
func (uow *GormUnitOfWork) PricingRuleRepository() ports.PricingRuleRepository {
	return pricingrepo.NewGormPricingRuleRepository(uow.conn())
}

// DriverRepository returns a driver repository bound to the current transaction.
func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	return driverrepo.NewGormDriverRepository(uow.conn(), uow)
}

// AccountRepository returns an account repository bound to the current transaction.
func (uow *GormUnitOfWork) AccountRepository() ports.AccountRepository {
	return accountrepo.NewGormAccountRepository(uow.conn())
}

// AdminAssignmentRepository returns an admin assignment repository bound to the current transaction.
func (uow *GormUnitOfWork) AdminAssignmentRepository() ports.AdminAssignmentRepository {
	return assignmentrepo.NewGormAdminAssignmentRepository(uow.conn())
}

// DeliveryAssignmentRepository returns a delivery assignment repository bound to the current transaction.
func (uow *GormUnitOfWork) DeliveryAssignmentRepository() ports.DeliveryAssignmentRepository {
	return assignmentrepo.NewGormDeliveryAssignmentRepository(uow.conn())
}

// TrackLocationRepository returns a location repository bound to the current transaction.
func (uow *GormUnitOfWork) TrackLocationRepository() ports.TrackLocationRepository {
	return locationrepo.NewGormTrackLocationRepository(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Repository implementations call it on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id int64, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
