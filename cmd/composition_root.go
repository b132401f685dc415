package cmd

import (
	"log/slog"

	httpin "parcelms/internal/adapters/in/http"
	"parcelms/internal/adapters/out/postgres"
	"parcelms/internal/core/application/usecases/commands"
	"parcelms/internal/core/application/usecases/queries"
	"parcelms/internal/core/domain/services"
	"parcelms/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters to application handlers. Handlers are cheap
// value types, so they are created on demand rather than cached.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	var f commands.CreateParcelUoWFactory = FuncCreateParcelUoWFactory(func() commands.CreateParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateParcelCommandHandler(f, services.NewPricingEngine())
}

func (c *CompositionRoot) CreateAcceptParcelCommandHandler() commands.AcceptParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateRejectParcelCommandHandler() commands.RejectParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.AssignUoWFactory = FuncAssignUoWFactory(func() commands.AssignUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateUpdateParcelStatusCommandHandler() commands.UpdateParcelStatusCommandHandler {
	var f commands.StatusUpdateUoWFactory = FuncStatusUpdateUoWFactory(func() commands.StatusUpdateUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateParcelStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDriverCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateLinkDriversCommandHandler() commands.LinkDriversCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLinkDriversCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateReportDriverLocationCommandHandler() commands.ReportDriverLocationCommandHandler {
	var f commands.LocationUoWFactory = FuncLocationUoWFactory(func() commands.LocationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReportDriverLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordAdminLocationCommandHandler() commands.RecordAdminLocationCommandHandler {
	var f commands.LocationUoWFactory = FuncLocationUoWFactory(func() commands.LocationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordAdminLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkNotificationReadCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkAllNotificationsReadCommandHandler() commands.MarkAllNotificationsReadCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkAllNotificationsReadCommandHandler(f)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateLinkDriversCommandHandler(), c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateParcelCommandHandler(),
		c.CreateAcceptParcelCommandHandler(),
		c.CreateRejectParcelCommandHandler(),
		c.CreateAssignDriverCommandHandler(),
		c.CreateUpdateParcelStatusCommandHandler(),
		c.CreateCreateDriverCommandHandler(),
		c.CreateReportDriverLocationCommandHandler(),
		c.CreateRecordAdminLocationCommandHandler(),
		c.CreateMarkNotificationReadCommandHandler(),
		c.CreateMarkAllNotificationsReadCommandHandler(),
		queries.NewGetParcelTrackingQueryHandler(c.gormDB),
		queries.NewGetParcelRouteQueryHandler(c.gormDB),
		queries.NewGetParcelContactsQueryHandler(c.gormDB),
		queries.NewGetClientParcelsQueryHandler(c.gormDB),
		queries.NewGetParcelStatsQueryHandler(c.gormDB),
		queries.NewGetNotificationsQueryHandler(c.gormDB),
		queries.NewCalculatePriceQueryHandler(c.gormDB, services.NewPricingEngine()),
		queries.NewGetDriverTasksQueryHandler(c.gormDB),
		queries.NewGetDriversQueryHandler(c.gormDB),
		queries.NewGetLiveDriversQueryHandler(c.gormDB),
		queries.NewGetLiveParcelsQueryHandler(c.gormDB),
	)
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncCreateParcelUoWFactory func() commands.CreateParcelUoW

func (f FuncCreateParcelUoWFactory) Create() commands.CreateParcelUoW {
	return f()
}

type FuncAssignUoWFactory func() commands.AssignUoW

func (f FuncAssignUoWFactory) Create() commands.AssignUoW {
	return f()
}

type FuncStatusUpdateUoWFactory func() commands.StatusUpdateUoW

func (f FuncStatusUpdateUoWFactory) Create() commands.StatusUpdateUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

type FuncLocationUoWFactory func() commands.LocationUoW

func (f FuncLocationUoWFactory) Create() commands.LocationUoW {
	return f()
}
