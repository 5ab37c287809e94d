package handlers

import (
	"net/http"

	"carelink/services/notification"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler exposes facility notification endpoints.
type NotificationHandler struct {
	Svc notification.NotificationService
}

func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Svc: svc}
}

// ListNotificationsHandler handles GET /api/notifications.
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	logger := getLogger(c)
	facilityID := c.GetString("facilityID")

	list, err := h.Svc.ListForFacility(c.Request.Context(), facilityID)
	if err != nil {
		logger.Error("Failed to list notifications", zap.String("facilityId", facilityID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": list})
}

// MarkNotificationsReadHandler handles PUT /api/notifications/read.
func (h *NotificationHandler) MarkNotificationsReadHandler(c *gin.Context) {
	logger := getLogger(c)
	facilityID := c.GetString("facilityID")

	var body struct {
		IDs []string `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Svc.MarkRead(c.Request.Context(), facilityID, body.IDs); err != nil {
		logger.Error("Failed to mark notifications read", zap.String("facilityId", facilityID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notifications read"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notifications updated"})
}
