package http

import (
	"net/http"

	"parcelms/internal/core/application/usecases/commands"
	"parcelms/internal/core/application/usecases/queries"
	"parcelms/internal/core/domain/model/driver"
	"parcelms/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CreateDriverRequest is the body of POST /drivers.
type CreateDriverRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phone_number"`
	VehicleType     string `json:"vehicle_type"`
	VehicleNumber   string `json:"vehicle_number"`
	CurrentLocation string `json:"current_location"`
}

// DriverResponse is the representation of a created driver profile.
type DriverResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AccountID *int64 `json:"account_id"`
}

// CreateDriver handles POST /api/v1/drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var req CreateDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewCreateDriverCommand(
		req.Name, req.Email, req.PhoneNumber,
		driver.VehicleType(req.VehicleType),
		req.VehicleNumber, req.CurrentLocation)
	if err != nil {
		return respondError(ctx, err)
	}

	profile, err := s.createDriver.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, DriverResponse{
		ID:        profile.ID(),
		Name:      profile.Name(),
		Email:     profile.Email(),
		AccountID: profile.AccountID(),
	})
}

// GetDrivers handles GET /api/v1/drivers.
func (s *Server) GetDrivers(ctx echo.Context) error {
	query, err := queries.NewGetDriversQuery(ctx.QueryParam("available") == "true")
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.getDrivers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// GetLiveDrivers handles GET /api/v1/drivers/live.
func (s *Server) GetLiveDrivers(ctx echo.Context) error {
	resp, err := s.getLiveDrivers.Handle(ctx.Request().Context(), queries.NewGetLiveDriversQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// GetDriverTasks handles GET /api/v1/drivers/:accountID/tasks.
func (s *Server) GetDriverTasks(ctx echo.Context) error {
	accountID, err := pathID(ctx, "accountID")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetDriverTasksQuery(accountID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.getDriverTasks.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// ReportLocationRequest is the body of POST /drivers/:accountID/location.
type ReportLocationRequest struct {
	Latitude  decimal.Decimal `json:"latitude"`
	Longitude decimal.Decimal `json:"longitude"`
	ParcelID  *int64          `json:"parcel_id"`
}

// ReportDriverLocation handles POST /api/v1/drivers/:accountID/location.
func (s *Server) ReportDriverLocation(ctx echo.Context) error {
	accountID, err := pathID(ctx, "accountID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req ReportLocationRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	point, err := kernel.NewGeoPoint(req.Latitude, req.Longitude)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewReportDriverLocationCommand(accountID, req.ParcelID, point)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.reportDriverLocation.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RecordAdminLocationRequest is the body of POST /admin/drivers/:driverID/location.
type RecordAdminLocationRequest struct {
	Latitude  decimal.Decimal  `json:"latitude"`
	Longitude decimal.Decimal  `json:"longitude"`
	SpeedKmh  *decimal.Decimal `json:"speed_kmh"`
	ParcelID  *int64           `json:"parcel_id"`
}

// RecordAdminDriverLocation handles POST /api/v1/admin/drivers/:driverID/location.
// Positions recorded here are keyed by the driver profile and serve as the
// fallback source when a driver has no account-keyed pings.
func (s *Server) RecordAdminDriverLocation(ctx echo.Context) error {
	driverID, err := pathID(ctx, "driverID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req RecordAdminLocationRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	point, err := kernel.NewGeoPoint(req.Latitude, req.Longitude)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRecordAdminLocationCommand(driverID, req.ParcelID, point, req.SpeedKmh)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.recordAdminLocation.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}
