package notificationRepo

import "carelink/models"

// NotificationRepository defines data access for facility notifications.
type NotificationRepository interface {
	// Create inserts a new notification.
	Create(n *models.Notification) error
	// GetByFacilityID lists a facility's notifications, newest first.
	GetByFacilityID(facilityID string) ([]models.Notification, error)
	// MarkRead flags the given notification IDs as read.
	MarkRead(facilityID string, ids []string) error
}
