package serviceprofileRepo

import (
	"carelink/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ServiceProfileRepository defines data access for facility service profiles.
type ServiceProfileRepository interface {
	// GetByFacilityID retrieves the profile for a facility, or (nil, nil)
	// when none has been created yet.
	GetByFacilityID(facilityID string) (*models.ServiceProfile, error)
	// GetByFacilityIDWithProjection retrieves a reduced view of the profile.
	GetByFacilityIDWithProjection(facilityID string, projection bson.M) (*models.ServiceProfile, error)
	// Upsert creates the profile on first save and replaces it afterwards.
	Upsert(profile *models.ServiceProfile) error
	// Delete removes the profile for a facility.
	Delete(facilityID string) error
}
