package facilityRepo

import (
	"carelink/models"

	"go.mongodb.org/mongo-driver/bson"
)

// FacilityRepository defines methods for facility account data access.
type FacilityRepository interface {
	// GetByID retrieves a facility by its unique ID.
	GetByID(id string) (*models.Facility, error)
	// GetByIDWithProjection retrieves a facility by ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.Facility, error)
	// GetByEmail retrieves a facility by its email, or (nil, nil) when absent.
	GetByEmail(email string) (*models.Facility, error)
	// GetAll retrieves all facilities, optionally filtered by type.
	GetAll(facilityType models.FacilityType) ([]models.Facility, error)
	// Create inserts a new facility record.
	Create(facility *models.Facility) error
	// Update replaces an existing facility record.
	Update(facility *models.Facility) error
	// UpdateSetDocument patches a facility document with $set fields.
	UpdateSetDocument(id string, fields bson.M) error
	// Delete removes a facility record by its ID.
	Delete(id string) error
}
