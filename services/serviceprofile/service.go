package serviceprofile

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"carelink/models"
	"carelink/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func profileCacheKey(facilityID string) string {
	return utils.ProfileCachePrefix + facilityID
}

// Get returns the facility's profile, reading through the Redis cache.
func (s *DefaultServiceProfileService) Get(ctx context.Context, facilityID string) (*models.ServiceProfile, error) {
	if facilityID == "" {
		return nil, ValidationError{Reason: "facility id is required"}
	}

	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, profileCacheKey(facilityID)).Result(); err == nil {
			var cached models.ServiceProfile
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
		} else if err != redis.Nil {
			utils.GetLogger().Warn("profile cache read failed", zap.Error(err))
		}
	}

	profile, err := s.Repo.GetByFacilityID(facilityID)
	if err != nil {
		return nil, fmt.Errorf("failed to load service profile: %w", err)
	}
	if profile == nil {
		return nil, nil
	}

	s.cacheProfile(ctx, profile)
	return profile, nil
}

// GetFiltered returns a reduced projection of the profile: facilityType plus
// only the requested detail keys of the active record's JSON form.
func (s *DefaultServiceProfileService) GetFiltered(ctx context.Context, facilityID string, fields []string) (map[string]any, error) {
	profile, err := s.Get(ctx, facilityID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}

	raw, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to encode service profile: %w", err)
	}
	var full map[string]any
	if err := json.Unmarshal(raw, &full); err != nil {
		return nil, fmt.Errorf("failed to decode service profile: %w", err)
	}

	if len(fields) == 0 {
		return full, nil
	}
	filtered := map[string]any{
		"facilityId":   full["facilityId"],
		"facilityType": full["facilityType"],
	}
	for _, f := range fields {
		if v, ok := full[f]; ok {
			filtered[f] = v
		}
	}
	return filtered, nil
}

// CreateOrUpdate validates and persists the profile. The first save for a
// facility creates the document; later saves replace it ("full") or merge
// over it ("partial": an omitted detail record keeps the stored one). The
// returned profile is the normalized form that was stored.
func (s *DefaultServiceProfileService) CreateOrUpdate(ctx context.Context, req models.ServiceProfileRequest) (*models.ServiceProfile, error) {
	if req.FacilityID == "" {
		return nil, ValidationError{Reason: "facility id is required"}
	}
	if !req.FacilityType.Known() {
		return nil, ErrUnknownFacilityType{Type: string(req.FacilityType)}
	}

	profile := req.Profile()

	existing, err := s.Repo.GetByFacilityID(req.FacilityID)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing service profile: %w", err)
	}

	if existing != nil {
		profile.CreatedAt = existing.CreatedAt
		if req.UpdateType == "partial" && existing.FacilityType == req.FacilityType && !profile.HasDetail() {
			carryDetail(profile, existing)
		}
	} else {
		profile.CreatedAt = time.Now()
	}
	profile.UpdatedAt = time.Now()

	if err := NormalizeProfile(profile); err != nil {
		return nil, err
	}

	if err := s.Repo.Upsert(profile); err != nil {
		return nil, fmt.Errorf("failed to save service profile: %w", err)
	}

	s.cacheProfile(ctx, profile)
	return profile, nil
}

func (s *DefaultServiceProfileService) cacheProfile(ctx context.Context, profile *models.ServiceProfile) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(profile)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, profileCacheKey(profile.FacilityID), raw, utils.ProfileCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("profile cache write failed", zap.Error(err))
	}
}

func carryDetail(dst, src *models.ServiceProfile) {
	dst.Hospital = src.Hospital
	dst.Laboratory = src.Laboratory
	dst.Pharmacy = src.Pharmacy
	dst.Ambulance = src.Ambulance
	dst.Insurance = src.Insurance
	dst.SpecialistClinic = src.SpecialistClinic
}
