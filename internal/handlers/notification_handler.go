package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pixgram/backend/internal/apperrors"
	"github.com/pixgram/backend/internal/auth"
	"github.com/pixgram/backend/internal/repositories"
)

const notificationsPageSize = 10

// NotificationHandler handles notification-related HTTP requests
type NotificationHandler struct {
	notifications repositories.NotificationRepository
	people        repositories.PersonRepository
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notifications repositories.NotificationRepository, people repositories.PersonRepository) *NotificationHandler {
	return &NotificationHandler{notifications: notifications, people: people}
}

// RegisterNotificationRoutes registers notification-related routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.List)
	g.PUT("/notifications/:id/read", h.MarkRead)
}

// List returns one newest-first page of the viewer's notifications with
// the unread count
func (h *NotificationHandler) List(c echo.Context) error {
	person, err := h.people.GetPersonByUsername(auth.CurrentUsername(c))
	if err != nil {
		return httpError(err)
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 0 {
		page = 0
	}

	notifications, err := h.notifications.GetPageByRecipient(person.ID, page*notificationsPageSize, notificationsPageSize)
	if err != nil {
		return httpError(err)
	}
	unread, err := h.notifications.GetUnreadCount(person.ID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"notifications": notifications,
		"unread":        unread,
		"page":          page,
	})
}

// MarkRead marks one of the viewer's notifications as read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid notification ID")
	}

	person, err := h.people.GetPersonByUsername(auth.CurrentUsername(c))
	if err != nil {
		return httpError(err)
	}

	notification, err := h.notifications.GetNotificationByID(uint(id))
	if err != nil {
		return httpError(err)
	}
	if notification.RecipientID != person.ID {
		return httpError(apperrors.ErrForbidden)
	}

	if err := h.notifications.MarkRead(notification.ID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Notification marked as read"})
}
