package notification

import (
	"context"
	"fmt"
	"time"

	"carelink/models"
	"carelink/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// SendFacilityNotification persists the notification first so it survives a
// failed push, then attempts FCM delivery when a device token exists.
func (s *DefaultNotificationService) SendFacilityNotification(
	ctx context.Context,
	facilityID, notifType, title, body string,
	data map[string]string,
) error {
	now := time.Now()
	n := models.Notification{
		ID:         uuid.New().String(),
		FacilityID: facilityID,
		Type:       notifType,
		Title:      title,
		Body:       body,
		Data:       data,
		Read:       false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Repo.Create(&n); err != nil {
		return fmt.Errorf("failed to record notification: %w", err)
	}

	facility, err := s.FacilityRepo.GetByIDWithProjection(facilityID, bson.M{"id": 1, "security": 1})
	if err != nil {
		return fmt.Errorf("could not find facility %s: %w", facilityID, err)
	}
	if facility == nil || facility.Security.FCMToken == "" {
		// No push target; the stored notification is still listable.
		return nil
	}

	msg := &messaging.Message{
		Token: facility.Security.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "high_priority",
				Sound:     "default",
			},
		},
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		utils.GetLogger().Warn("Failed to send FCM message",
			zap.String("facilityId", facilityID), zap.Error(err))
	}
	return nil
}

func (s *DefaultNotificationService) ListForFacility(ctx context.Context, facilityID string) ([]models.Notification, error) {
	if facilityID == "" {
		return nil, fmt.Errorf("facility id is required")
	}
	list, err := s.Repo.GetByFacilityID(facilityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return list, nil
}

func (s *DefaultNotificationService) MarkRead(ctx context.Context, facilityID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := s.Repo.MarkRead(facilityID, ids); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}
