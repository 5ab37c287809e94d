package facility

import (
	"context"
	"fmt"
	"time"

	"carelink/models"
	"carelink/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthenticateFacility verifies credentials, rotates the stored token hash,
// and returns an auth response carrying a fresh JWT.
func (s *DefaultFacilityService) AuthenticateFacility(email, password string) (*models.FacilityAuthResponse, error) {
	facility, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch facility", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if facility == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(facility.Security.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(facility.ID, facility.Profile.Email, 24*time.Hour)
	if err != nil {
		utils.GetLogger().Error("Failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	previousHash := facility.Security.TokenHash
	updateDoc := bson.M{
		"security.tokenHash": utils.HashToken(token),
		"updatedAt":          time.Now(),
	}
	if err := s.Repo.UpdateSetDocument(facility.ID, updateDoc); err != nil {
		utils.GetLogger().Error("Failed to update facility token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	// The middleware caches acceptance under the old token's hash; evict it
	// so the rotated-out token stops working.
	utils.ClearAuthCacheForHash(context.Background(), previousHash)

	return &models.FacilityAuthResponse{
		ID:        facility.ID,
		Token:     token,
		Profile:   facility.Profile,
		Verified:  facility.Verification.VerificationStatus == "verified",
		CreatedAt: facility.CreatedAt,
	}, nil
}

// RevokeAuthToken revokes the facility's auth token by clearing the token
// hash and the Redis cache entry.
func (s *DefaultFacilityService) RevokeAuthToken(facilityID string) error {
	facility, err := s.Repo.GetByIDWithProjection(facilityID, bson.M{"id": 1, "security": 1})
	if err != nil {
		return fmt.Errorf("failed to retrieve facility: %w", err)
	}
	if facility == nil {
		return fmt.Errorf("facility not found")
	}

	updateDoc := bson.M{
		"security.tokenHash": "",
		"updatedAt":          time.Now(),
	}
	if err := s.Repo.UpdateSetDocument(facilityID, updateDoc); err != nil {
		return fmt.Errorf("failed to revoke facility auth token: %w", err)
	}

	utils.ClearAuthCacheForHash(context.Background(), facility.Security.TokenHash)
	return nil
}
