package documentsRepo

import "carelink/models"

// DocumentRepository defines data access for facility document bundles.
type DocumentRepository interface {
	// GetByFacilityID retrieves the document record for a facility, or
	// (nil, nil) when nothing has been uploaded yet.
	GetByFacilityID(facilityID string) (*models.DocumentRecord, error)
	// Upsert creates the record on first upload and replaces it afterwards.
	Upsert(record *models.DocumentRecord) error
}
