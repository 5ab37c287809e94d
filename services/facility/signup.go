package facility

import (
	"fmt"
	"time"

	"carelink/models"
	"carelink/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// RegisterFacility creates a new facility account, generates a token, stores
// its hash, and returns an auth response. The account starts unverified on
// both channels with a pending review status.
func (s *DefaultFacilityService) RegisterFacility(data models.FacilityRegistrationData) (*models.FacilityAuthResponse, error) {
	// Validate required basic fields.
	if data.Email == "" || data.Password == "" {
		return nil, fmt.Errorf("facility email and password are required")
	}
	if data.FacilityName == "" {
		return nil, fmt.Errorf("facility name is required")
	}
	if data.PhoneNumber == "" {
		return nil, fmt.Errorf("facility phone number is required")
	}
	if !data.FacilityType.Known() {
		return nil, fmt.Errorf("unknown facility type %q", data.FacilityType)
	}
	if err := VerifyEmailFormat(data.Email); err != nil {
		return nil, err
	}
	if err := VerifyPasswordComplexity(data.Password); err != nil {
		return nil, err
	}

	// Hash the provided password.
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Check for an existing account.
	existing, err := s.Repo.GetByEmail(data.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing facility: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("facility with email %s already exists", data.Email)
	}

	now := time.Now()
	facility := models.Facility{
		ID: uuid.New().String(),
		Profile: models.FacilityProfile{
			FacilityName:  data.FacilityName,
			FacilityType:  data.FacilityType,
			Email:         data.Email,
			PhoneNumber:   data.PhoneNumber,
			Address:       data.Address,
			State:         data.State,
			ContactPerson: data.ContactPerson,
		},
		Security: models.FacilitySecurity{
			PasswordHash: string(hashedPassword),
		},
		Verification: models.FacilityVerification{
			VerificationStatus: "pending",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Generate a JWT token and store its hash in the record.
	token, err := utils.GenerateToken(facility.ID, facility.Profile.Email, 24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("failed to generate auth token: %w", err)
	}
	facility.Security.TokenHash = utils.HashToken(token)

	// Persist the new facility.
	if err := s.Repo.Create(&facility); err != nil {
		return nil, fmt.Errorf("failed to create facility: %w", err)
	}

	return &models.FacilityAuthResponse{
		ID:        facility.ID,
		Token:     token,
		Profile:   facility.Profile,
		Verified:  false,
		CreatedAt: facility.CreatedAt,
	}, nil
}
