package handlers

import (
	"net/http"

	"github.com/codeLord61/Exchangify/internal/middleware"
	"github.com/codeLord61/Exchangify/internal/repositories"
	"github.com/labstack/echo/v4"
)

type NotificationHandler struct {
	notificationRepository repositories.NotificationRepository
}

func NewNotificationHandler(notificationRepo repositories.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{notificationRepository: notificationRepo}
}

func (h *NotificationHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/notifications", h.ListNotifications)
	g.POST("/notifications/read/:id", h.MarkRead)
	g.GET("/notifications/count", h.UnreadCount)
	g.GET("/notifications/recent", h.Recent)
}

func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)

	notifications, err := h.notificationRepository.ListByUser(principal.UserID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, notifications)
}

// MarkRead flips one notification; only its owner may.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	notification, err := h.notificationRepository.GetByID(id)
	if err != nil {
		return httpError(err)
	}
	if notification.UserID != principal.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "Unauthorized")
	}

	if err := h.notificationRepository.MarkRead(notification.ID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)

	count, err := h.notificationRepository.UnreadCount(principal.UserID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"count": count})
}

func (h *NotificationHandler) Recent(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)

	notifications, err := h.notificationRepository.Recent(principal.UserID, 5)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, notifications)
}
