package httpHandler

import (
	"net/http"

	"agriwise-server/usecases"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	useCase *usecases.NotificationService
}

func NewNotificationHandler(useCase *usecases.NotificationService) *NotificationHandler {
	return &NotificationHandler{useCase: useCase}
}

type createNotificationRequest struct {
	Recipient string `json:"recipient"`
	Message   string `json:"message" binding:"required"`
	Type      string `json:"type"`
	PumpID    string `json:"pump_id"`
}

// CreateNotification handles POST /api/notifications
func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var req createNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, false, "Invalid request body", nil)
		return
	}

	user := currentUser(c)
	n, err := h.useCase.Create(user.ID, req.Recipient, req.Message, req.Type, req.PumpID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, true, "Notification created successfully", n)
}

// GetNotifications handles GET /api/notifications
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	user := currentUser(c)
	notifications, err := h.useCase.List(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, true, "Notifications fetched successfully", notifications)
}

// MarkAsRead handles PATCH /api/notifications/:id/read
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	user := currentUser(c)
	n, err := h.useCase.MarkRead(c.Param("id"), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, true, "Notification marked as read", n)
}

// MarkAllAsRead handles PATCH /api/notifications/read-all
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	user := currentUser(c)
	if err := h.useCase.MarkAllRead(user.ID); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, true, "All notifications marked as read", nil)
}

// DeleteNotification handles DELETE /api/notifications/:id
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	user := currentUser(c)
	if err := h.useCase.Delete(c.Param("id"), user.ID); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, true, "Notification deleted successfully", nil)
}
