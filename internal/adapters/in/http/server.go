// Package http provides the Echo-based HTTP surface of the service.
// Handlers are thin glue: they bind the request, build a command or query,
// invoke the application handler and translate the result. Authentication
// is handled upstream; the API trusts the identifiers it is given.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"parcelms/internal/core/application/usecases/commands"
	"parcelms/internal/core/application/usecases/queries"
	"parcelms/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP handlers for the parcel service.
type Server struct {
	createParcel         commands.CreateParcelCommandHandler
	acceptParcel         commands.AcceptParcelCommandHandler
	rejectParcel         commands.RejectParcelCommandHandler
	assignDriver         commands.AssignDriverCommandHandler
	updateParcelStatus   commands.UpdateParcelStatusCommandHandler
	createDriver         commands.CreateDriverCommandHandler
	reportDriverLocation commands.ReportDriverLocationCommandHandler
	recordAdminLocation  commands.RecordAdminLocationCommandHandler
	markNotificationRead commands.MarkNotificationReadCommandHandler
	markAllRead          commands.MarkAllNotificationsReadCommandHandler

	getParcelTracking queries.GetParcelTrackingQueryHandler
	getParcelRoute    queries.GetParcelRouteQueryHandler
	getParcelContacts queries.GetParcelContactsQueryHandler
	getClientParcels  queries.GetClientParcelsQueryHandler
	getParcelStats    queries.GetParcelStatsQueryHandler
	getNotifications  queries.GetNotificationsQueryHandler
	calculatePrice    queries.CalculatePriceQueryHandler
	getDriverTasks    queries.GetDriverTasksQueryHandler
	getDrivers        queries.GetDriversQueryHandler
	getLiveDrivers    queries.GetLiveDriversQueryHandler
	getLiveParcels    queries.GetLiveParcelsQueryHandler
}

// NewServer creates the HTTP server glue over the application handlers.
func NewServer(
	createParcel commands.CreateParcelCommandHandler,
	acceptParcel commands.AcceptParcelCommandHandler,
	rejectParcel commands.RejectParcelCommandHandler,
	assignDriver commands.AssignDriverCommandHandler,
	updateParcelStatus commands.UpdateParcelStatusCommandHandler,
	createDriver commands.CreateDriverCommandHandler,
	reportDriverLocation commands.ReportDriverLocationCommandHandler,
	recordAdminLocation commands.RecordAdminLocationCommandHandler,
	markNotificationRead commands.MarkNotificationReadCommandHandler,
	markAllRead commands.MarkAllNotificationsReadCommandHandler,
	getParcelTracking queries.GetParcelTrackingQueryHandler,
	getParcelRoute queries.GetParcelRouteQueryHandler,
	getParcelContacts queries.GetParcelContactsQueryHandler,
	getClientParcels queries.GetClientParcelsQueryHandler,
	getParcelStats queries.GetParcelStatsQueryHandler,
	getNotifications queries.GetNotificationsQueryHandler,
	calculatePrice queries.CalculatePriceQueryHandler,
	getDriverTasks queries.GetDriverTasksQueryHandler,
	getDrivers queries.GetDriversQueryHandler,
	getLiveDrivers queries.GetLiveDriversQueryHandler,
	getLiveParcels queries.GetLiveParcelsQueryHandler,
) *Server {
	return &Server{
		createParcel:         createParcel,
		acceptParcel:         acceptParcel,
		rejectParcel:         rejectParcel,
		assignDriver:         assignDriver,
		updateParcelStatus:   updateParcelStatus,
		createDriver:         createDriver,
		reportDriverLocation: reportDriverLocation,
		recordAdminLocation:  recordAdminLocation,
		markNotificationRead: markNotificationRead,
		markAllRead:          markAllRead,
		getParcelTracking:    getParcelTracking,
		getParcelRoute:       getParcelRoute,
		getParcelContacts:    getParcelContacts,
		getClientParcels:     getClientParcels,
		getParcelStats:       getParcelStats,
		getNotifications:     getNotifications,
		calculatePrice:       calculatePrice,
		getDriverTasks:       getDriverTasks,
		getDrivers:           getDrivers,
		getLiveDrivers:       getLiveDrivers,
		getLiveParcels:       getLiveParcels,
	}
}

// RegisterRoutes mounts every handler under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/parcels", s.CreateParcel)
	api.GET("/parcels/live", s.GetLiveParcels)
	api.GET("/parcels/track/:trackingNumber", s.TrackParcel)
	api.GET("/parcels/:parcelID/route", s.GetParcelRoute)
	api.GET("/parcels/:parcelID/contacts", s.GetParcelContacts)
	api.POST("/parcels/:parcelID/accept", s.AcceptParcel)
	api.POST("/parcels/:parcelID/reject", s.RejectParcel)
	api.POST("/parcels/:parcelID/assign", s.AssignDriver)
	api.POST("/parcels/:parcelID/status", s.UpdateParcelStatus)

	api.GET("/clients/:clientID/parcels", s.GetClientParcels)
	api.GET("/clients/:clientID/stats", s.GetParcelStats)
	api.GET("/clients/:clientID/notifications", s.GetNotifications)
	api.POST("/clients/:clientID/notifications/read-all", s.MarkAllNotificationsRead)
	api.POST("/clients/:clientID/notifications/:notificationID/read", s.MarkNotificationRead)

	api.GET("/pricing/quote", s.CalculatePrice)

	api.POST("/drivers", s.CreateDriver)
	api.GET("/drivers", s.GetDrivers)
	api.GET("/drivers/live", s.GetLiveDrivers)
	api.GET("/drivers/:accountID/tasks", s.GetDriverTasks)
	api.POST("/drivers/:accountID/location", s.ReportDriverLocation)

	api.POST("/admin/drivers/:driverID/location", s.RecordAdminDriverLocation)
}

// ErrorResponse is the JSON error body shared by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps domain errors onto HTTP statuses.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	var notFound *errs.ObjectNotFoundError
	var invalid *errs.ValueIsInvalidError
	var required *errs.ValueIsRequiredError
	var outOfRange *errs.ValueIsOutOfRangeError
	var invalidState *errs.InvalidStateError
	var badVersion *errs.VersionIsInvalidError

	switch {
	case errors.As(err, &notFound):
		status = http.StatusNotFound
	case errors.As(err, &invalid), errors.As(err, &required), errors.As(err, &outOfRange):
		status = http.StatusBadRequest
	case errors.As(err, &invalidState), errors.As(err, &badVersion):
		status = http.StatusConflict
	case errors.Is(err, commands.ErrParcelNotAssignedToDriver):
		status = http.StatusForbidden
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

func pathID(ctx echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewValueIsInvalidError(name)
	}
	return id, nil
}
