package notification

import (
	"context"
	"fmt"

	facilityRepo "carelink/database/repository/facility"
	notificationRepo "carelink/database/repository/notification"
	"carelink/models"
)

// NotificationService records facility notifications and delivers FCM pushes.
type NotificationService interface {
	// SendFacilityNotification persists the notification and, when the
	// facility has a registered device token, pushes it via FCM.
	SendFacilityNotification(ctx context.Context, facilityID, notifType, title, body string, data map[string]string) error
	// ListForFacility returns a facility's notifications, newest first.
	ListForFacility(ctx context.Context, facilityID string) ([]models.Notification, error)
	// MarkRead flags the given notification IDs as read.
	MarkRead(ctx context.Context, facilityID string, ids []string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo         notificationRepo.NotificationRepository
	FacilityRepo facilityRepo.FacilityRepository
}

func NewDefaultNotificationService(
	repo notificationRepo.NotificationRepository,
	facRepo facilityRepo.FacilityRepository,
) (*DefaultNotificationService, error) {
	if repo == nil || facRepo == nil {
		return nil, fmt.Errorf("notification service initialization error: one or more dependencies are nil")
	}
	return &DefaultNotificationService{
		Repo:         repo,
		FacilityRepo: facRepo,
	}, nil
}
