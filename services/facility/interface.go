package facility

import (
	"context"
	"fmt"

	facilityRepo "carelink/database/repository/facility"
	"carelink/models"

	"github.com/hibiken/asynq"
)

// FacilityService manages facility accounts: registration, sign-in, channel
// verification and profile updates.
type FacilityService interface {
	// Registration and authentication
	RegisterFacility(data models.FacilityRegistrationData) (*models.FacilityAuthResponse, error)
	AuthenticateFacility(email, password string) (*models.FacilityAuthResponse, error)
	RevokeAuthToken(facilityID string) error

	// OTP channel verification
	SendOTP(ctx context.Context, facilityID, channel string) error
	VerifyOTP(ctx context.Context, facilityID, channel, otp string) error

	// Account management
	GetFacilityByID(ctx context.Context, id string) (*models.Facility, error)
	UpdateFacility(ctx context.Context, id string, updates map[string]interface{}) (*models.Facility, error)
	UpdateFCMToken(ctx context.Context, id, fcmToken string) error
	DeleteFacility(id string) error
}

// DefaultFacilityService is the production implementation.
type DefaultFacilityService struct {
	Repo        facilityRepo.FacilityRepository
	AsynqClient *asynq.Client
}

func NewDefaultFacilityService(
	repo facilityRepo.FacilityRepository,
	asynqClient *asynq.Client,
) (*DefaultFacilityService, error) {
	if repo == nil || asynqClient == nil {
		return nil, fmt.Errorf("facility service initialization error: one or more dependencies are nil")
	}

	return &DefaultFacilityService{
		Repo:        repo,
		AsynqClient: asynqClient,
	}, nil
}
