package documents

import (
	"context"
	"fmt"

	documentsRepo "carelink/database/repository/documents"
	"carelink/models"
	"carelink/services/storage"
)

// UploadedFile is one buffered multipart file part awaiting storage.
type UploadedFile struct {
	LocalPath string
	Name      string
}

// DocumentService is the business interface for facility document bundles.
type DocumentService interface {
	// Get returns the facility's document record, or (nil, nil) when nothing
	// has been uploaded yet.
	Get(ctx context.Context, facilityID string) (*models.DocumentRecord, error)
	// Apply reconciles a save: surviving lists the existing paths to keep per
	// slot (removals are computed by set difference) and uploads carries the
	// new file parts per slot. The updated record is returned in full.
	Apply(ctx context.Context, facilityID string, surviving map[string][]string, uploads map[string][]UploadedFile) (*models.DocumentRecord, error)
	// Review records an admin's verdict for one stored file.
	Review(ctx context.Context, facilityID, slot, filePath string, status models.VerificationStatus, notes string) (*models.DocumentRecord, error)
}

// DefaultDocumentService is the production implementation.
type DefaultDocumentService struct {
	Repo    documentsRepo.DocumentRepository
	Storage storage.StorageService
}

func NewDefaultDocumentService(
	repo documentsRepo.DocumentRepository,
	storageSvc storage.StorageService,
) (*DefaultDocumentService, error) {
	if repo == nil || storageSvc == nil {
		return nil, fmt.Errorf("document service initialization error: one or more dependencies are nil")
	}
	return &DefaultDocumentService{Repo: repo, Storage: storageSvc}, nil
}
