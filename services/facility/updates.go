package facility

import (
	"context"
	"fmt"
	"time"

	"carelink/models"
	"carelink/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// GetFacilityByID returns the facility account, or an error when it does not
// exist.
func (s *DefaultFacilityService) GetFacilityByID(ctx context.Context, id string) (*models.Facility, error) {
	facility, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve facility: %w", err)
	}
	if facility == nil {
		return nil, fmt.Errorf("facility not found")
	}
	return facility, nil
}

// UpdateFacility applies a whitelisted set of profile updates and returns the
// refreshed record. Unknown keys are ignored.
func (s *DefaultFacilityService) UpdateFacility(ctx context.Context, id string, updates map[string]interface{}) (*models.Facility, error) {
	existing, err := s.Repo.GetByIDWithProjection(id, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve facility: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("facility not found")
	}

	updateFields := bson.M{}

	if v, ok := updates["facilityName"].(string); ok && v != "" {
		updateFields["profile.facilityName"] = v
	}
	if v, ok := updates["phoneNumber"].(string); ok && v != "" {
		updateFields["profile.phoneNumber"] = v
		// A new number must be confirmed again.
		updateFields["verification.phoneVerified"] = false
	}
	if v, ok := updates["address"].(string); ok && v != "" {
		updateFields["profile.address"] = v
	}
	if v, ok := updates["state"].(string); ok && v != "" {
		updateFields["profile.state"] = v
	}
	if v, ok := updates["contactPerson"].(string); ok && v != "" {
		updateFields["profile.contactPerson"] = v
	}
	if v, ok := updates["logoImage"].(string); ok && v != "" {
		updateFields["profile.logoImage"] = v
	}

	if len(updateFields) == 0 {
		return existing, nil
	}
	updateFields["updatedAt"] = time.Now()

	if err := s.Repo.UpdateSetDocument(id, updateFields); err != nil {
		utils.GetLogger().Error("Failed to update facility", zap.Error(err))
		return nil, fmt.Errorf("failed to update facility: %w", err)
	}

	updated, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload facility: %w", err)
	}
	return updated, nil
}

// UpdateFCMToken stores the device push token for the facility.
func (s *DefaultFacilityService) UpdateFCMToken(ctx context.Context, id, fcmToken string) error {
	if fcmToken == "" {
		return fmt.Errorf("fcm token is required")
	}
	updateDoc := bson.M{
		"security.fcmToken": fcmToken,
		"updatedAt":         time.Now(),
	}
	if err := s.Repo.UpdateSetDocument(id, updateDoc); err != nil {
		return fmt.Errorf("failed to update fcm token: %w", err)
	}
	return nil
}

// DeleteFacility removes the account and evicts its cached auth entry. The
// stored token hash is read first because the auth cache is keyed by it.
func (s *DefaultFacilityService) DeleteFacility(id string) error {
	existing, err := s.Repo.GetByIDWithProjection(id, bson.M{"id": 1, "security": 1})
	if err != nil {
		return fmt.Errorf("failed to retrieve facility: %w", err)
	}
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete facility: %w", err)
	}
	if existing != nil {
		utils.ClearAuthCacheForHash(context.Background(), existing.Security.TokenHash)
	}
	return nil
}
