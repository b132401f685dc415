package http

import (
	"net/http"

	"parcelms/internal/core/application/usecases/commands"
	"parcelms/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetNotifications handles GET /api/v1/clients/:clientID/notifications.
func (s *Server) GetNotifications(ctx echo.Context) error {
	clientID, err := pathID(ctx, "clientID")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetNotificationsQuery(clientID, ctx.QueryParam("unread") == "true")
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.getNotifications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// MarkNotificationRead handles POST /api/v1/clients/:clientID/notifications/:notificationID/read.
func (s *Server) MarkNotificationRead(ctx echo.Context) error {
	clientID, err := pathID(ctx, "clientID")
	if err != nil {
		return respondError(ctx, err)
	}

	notificationID, err := pathID(ctx, "notificationID")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkNotificationReadCommand(notificationID, clientID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.markNotificationRead.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkAllReadResponse reports how many notifications were affected.
type MarkAllReadResponse struct {
	Marked int64 `json:"marked"`
}

// MarkAllNotificationsRead handles POST /api/v1/clients/:clientID/notifications/read-all.
func (s *Server) MarkAllNotificationsRead(ctx echo.Context) error {
	clientID, err := pathID(ctx, "clientID")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkAllNotificationsReadCommand(clientID)
	if err != nil {
		return respondError(ctx, err)
	}

	marked, err := s.markAllRead.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MarkAllReadResponse{Marked: marked})
}
