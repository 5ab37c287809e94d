package serviceprofile

import (
	"context"
	"fmt"

	serviceprofileRepo "carelink/database/repository/serviceprofile"

	"carelink/models"

	"github.com/go-redis/redis/v8"
)

// ServiceProfileService is the business interface for facility service
// profiles.
type ServiceProfileService interface {
	// Get returns the profile for a facility, or (nil, nil) when none has
	// been created yet.
	Get(ctx context.Context, facilityID string) (*models.ServiceProfile, error)
	// GetFiltered returns a reduced projection of the profile, keeping only
	// the requested top-level detail fields.
	GetFiltered(ctx context.Context, facilityID string, fields []string) (map[string]any, error)
	// CreateOrUpdate validates, normalizes and persists the profile, and
	// returns the server-normalized result.
	CreateOrUpdate(ctx context.Context, req models.ServiceProfileRequest) (*models.ServiceProfile, error)
}

// DefaultServiceProfileService is the production implementation.
type DefaultServiceProfileService struct {
	Repo  serviceprofileRepo.ServiceProfileRepository
	Cache *redis.Client
}

func NewDefaultServiceProfileService(
	repo serviceprofileRepo.ServiceProfileRepository,
	cache *redis.Client,
) (*DefaultServiceProfileService, error) {
	if repo == nil {
		return nil, fmt.Errorf("service profile service initialization error: repository is nil")
	}
	return &DefaultServiceProfileService{Repo: repo, Cache: cache}, nil
}
