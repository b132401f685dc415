package http

import (
	"net/http"

	"parcelms/internal/core/application/usecases/commands"
	"parcelms/internal/core/application/usecases/queries"
	"parcelms/internal/core/domain/model/kernel"
	"parcelms/internal/core/domain/model/parcel"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CreateParcelRequest is the body of POST /parcels.
type CreateParcelRequest struct {
	ClientID            int64            `json:"client_id"`
	FromLocation        string           `json:"from_location"`
	ToLocation          string           `json:"to_location"`
	PickupLat           *decimal.Decimal `json:"pickup_lat"`
	PickupLng           *decimal.Decimal `json:"pickup_lng"`
	DropLat             *decimal.Decimal `json:"drop_lat"`
	DropLng             *decimal.Decimal `json:"drop_lng"`
	Weight              decimal.Decimal  `json:"weight"`
	Height              decimal.Decimal  `json:"height"`
	Width               decimal.Decimal  `json:"width"`
	Breadth             decimal.Decimal  `json:"breadth"`
	DistanceKm          decimal.Decimal  `json:"distance_km"`
	Description         string           `json:"description"`
	SpecialInstructions string           `json:"special_instructions"`
}

// ParcelResponse is the representation of a created parcel.
type ParcelResponse struct {
	ID             int64           `json:"id"`
	TrackingNumber string          `json:"tracking_number"`
	CurrentStatus  string          `json:"current_status"`
	Price          decimal.Decimal `json:"price"`
}

// CreateParcel handles POST /api/v1/parcels.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var req CreateParcelRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	pickup, err := bindPoint(req.PickupLat, req.PickupLng)
	if err != nil {
		return respondError(ctx, err)
	}
	drop, err := bindPoint(req.DropLat, req.DropLng)
	if err != nil {
		return respondError(ctx, err)
	}

	route, err := parcel.NewRoute(req.FromLocation, req.ToLocation, pickup, drop)
	if err != nil {
		return respondError(ctx, err)
	}

	dims, err := parcel.NewDimensions(req.Weight, req.Height, req.Width, req.Breadth)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateParcelCommand(
		req.ClientID, route, dims, req.DistanceKm, req.Description, req.SpecialInstructions)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createParcel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ParcelResponse{
		ID:             created.ID(),
		TrackingNumber: created.TrackingNumber().String(),
		CurrentStatus:  created.Status().String(),
		Price:          created.Price(),
	})
}

// AdminActionRequest carries the acting administrator for accept/reject.
type AdminActionRequest struct {
	AdminID int64  `json:"admin_id"`
	Notes   string `json:"notes"`
}

// AcceptParcel handles POST /api/v1/parcels/:parcelID/accept.
func (s *Server) AcceptParcel(ctx echo.Context) error {
	parcelID, err := pathID(ctx, "parcelID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req AdminActionRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewAcceptParcelCommand(parcelID, req.AdminID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.acceptParcel.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectParcel handles POST /api/v1/parcels/:parcelID/reject.
func (s *Server) RejectParcel(ctx echo.Context) error {
	parcelID, err := pathID(ctx, "parcelID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req AdminActionRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewRejectParcelCommand(parcelID, req.AdminID, req.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.rejectParcel.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDriverRequest is the body of POST /parcels/:parcelID/assign.
type AssignDriverRequest struct {
	DriverID int64 `json:"driver_id"`
	AdminID  int64 `json:"admin_id"`
}

// AssignDriver handles POST /api/v1/parcels/:parcelID/assign.
func (s *Server) AssignDriver(ctx echo.Context) error {
	parcelID, err := pathID(ctx, "parcelID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req AssignDriverRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewAssignDriverCommand(parcelID, req.DriverID, req.AdminID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.assignDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateStatusRequest is the body of POST /parcels/:parcelID/status.
type UpdateStatusRequest struct {
	DriverAccountID int64  `json:"driver_account_id"`
	Status          string `json:"status"`
}

// UpdateParcelStatus handles POST /api/v1/parcels/:parcelID/status.
func (s *Server) UpdateParcelStatus(ctx echo.Context) error {
	parcelID, err := pathID(ctx, "parcelID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewUpdateParcelStatusCommand(
		parcelID, req.DriverAccountID, parcel.Status(req.Status))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateParcelStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TrackParcel handles GET /api/v1/parcels/track/:trackingNumber.
func (s *Server) TrackParcel(ctx echo.Context) error {
	tn, err := kernel.TrackingNumberFromString(ctx.Param("trackingNumber"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetParcelTrackingQuery(tn)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.getParcelTracking.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// GetParcelRoute handles GET /api/v1/parcels/:parcelID/route.
func (s *Server) GetParcelRoute(ctx echo.Context) error {
	parcelID, err := pathID(ctx, "parcelID")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetParcelRouteQuery(parcelID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.getParcelRoute.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// GetParcelContacts handles GET /api/v1/parcels/:parcelID/contacts.
func (s *Server) GetParcelContacts(ctx echo.Context) error {
	parcelID, err := pathID(ctx, "parcelID")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetParcelContactsQuery(parcelID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.getParcelContacts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// GetClientParcels handles GET /api/v1/clients/:clientID/parcels.
func (s *Server) GetClientParcels(ctx echo.Context) error {
	clientID, err := pathID(ctx, "clientID")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetClientParcelsQuery(clientID, ctx.QueryParam("status"))
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.getClientParcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// GetParcelStats handles GET /api/v1/clients/:clientID/stats.
func (s *Server) GetParcelStats(ctx echo.Context) error {
	clientID, err := pathID(ctx, "clientID")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetParcelStatsQuery(clientID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.getParcelStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// GetLiveParcels handles GET /api/v1/parcels/live.
func (s *Server) GetLiveParcels(ctx echo.Context) error {
	resp, err := s.getLiveParcels.Handle(ctx.Request().Context(), queries.NewGetLiveParcelsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// CalculatePrice handles GET /api/v1/pricing/quote.
func (s *Server) CalculatePrice(ctx echo.Context) error {
	weight, err := decimal.NewFromString(ctx.QueryParam("weight"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid weight",
		})
	}

	distanceKm, err := decimal.NewFromString(ctx.QueryParam("distance_km"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid distance_km",
		})
	}

	query, err := queries.NewCalculatePriceQuery(weight, distanceKm)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.calculatePrice.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

func bindPoint(lat, lng *decimal.Decimal) (*kernel.GeoPoint, error) {
	if lat == nil || lng == nil {
		return nil, nil
	}

	point, err := kernel.NewGeoPoint(*lat, *lng)
	if err != nil {
		return nil, err
	}
	return &point, nil
}
