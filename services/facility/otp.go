package facility

import (
	"context"
	"fmt"
	"time"

	"carelink/models"
	"carelink/services/tasks"
	"carelink/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
)

// SendOTP generates a passcode for the given channel, caches it, and queues
// the delivery task. A resend replaces the cached code.
func (s *DefaultFacilityService) SendOTP(ctx context.Context, facilityID, channel string) error {
	if channel != ChannelEmail && channel != ChannelSMS {
		return fmt.Errorf("unsupported OTP channel %q", channel)
	}

	facility, err := s.Repo.GetByIDWithProjection(facilityID, bson.M{"id": 1, "profile": 1})
	if err != nil {
		return fmt.Errorf("failed to retrieve facility: %w", err)
	}
	if facility == nil {
		return fmt.Errorf("facility not found")
	}

	destination := facility.Profile.Email
	if channel == ChannelSMS {
		destination = facility.Profile.PhoneNumber
	}
	if destination == "" {
		return fmt.Errorf("facility has no %s destination on record", channel)
	}

	code, err := utils.GenerateSecureOTP(6)
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}
	if err := utils.StoreOTP(ctx, facilityID, channel, code); err != nil {
		return err
	}

	task, opts, err := tasks.NewOTPDeliveryTask(models.OTPDeliveryPayload{
		FacilityID:  facilityID,
		Channel:     channel,
		Destination: destination,
		Code:        code,
	})
	if err != nil {
		return fmt.Errorf("failed to build OTP delivery task: %w", err)
	}
	if _, err := s.AsynqClient.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue OTP delivery: %w", err)
	}

	utils.GetLogger().Info("OTP delivery queued",
		zap.String("facilityId", facilityID), zap.String("channel", channel))
	return nil
}

// VerifyOTP checks the provided passcode and, on success, marks the channel
// as verified on the facility record.
func (s *DefaultFacilityService) VerifyOTP(ctx context.Context, facilityID, channel, otp string) error {
	if channel != ChannelEmail && channel != ChannelSMS {
		return fmt.Errorf("unsupported OTP channel %q", channel)
	}
	if err := utils.VerifyOTPRecord(ctx, facilityID, channel, otp); err != nil {
		return err
	}

	field := "verification.emailVerified"
	if channel == ChannelSMS {
		field = "verification.phoneVerified"
	}
	updateDoc := bson.M{
		field:       true,
		"updatedAt": time.Now(),
	}
	if err := s.Repo.UpdateSetDocument(facilityID, updateDoc); err != nil {
		return fmt.Errorf("failed to mark %s verified: %w", channel, err)
	}
	return nil
}
