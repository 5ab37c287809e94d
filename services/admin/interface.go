package admin

import (
	"context"
	"fmt"

	facilityRepo "carelink/database/repository/facility"
	"carelink/models"
	"carelink/services/documents"
	"carelink/services/notification"
)

// AdminService covers the back-office review surface: listing onboarding
// facilities, settling their verification status, and reviewing uploaded
// documents.
type AdminService interface {
	ListFacilities(ctx context.Context, facilityType models.FacilityType) ([]models.Facility, error)
	VerifyFacility(ctx context.Context, facilityID, status, notes string) (*models.Facility, error)
	ReviewDocument(ctx context.Context, facilityID, slot, filePath string, status models.VerificationStatus, notes string) (*models.DocumentRecord, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	FacilityRepo facilityRepo.FacilityRepository
	Documents    documents.DocumentService
	Notifier     notification.NotificationService
}

func NewDefaultAdminService(
	facRepo facilityRepo.FacilityRepository,
	docSvc documents.DocumentService,
	notifier notification.NotificationService,
) (*DefaultAdminService, error) {
	if facRepo == nil || docSvc == nil || notifier == nil {
		return nil, fmt.Errorf("admin service initialization error: one or more dependencies are nil")
	}
	return &DefaultAdminService{
		FacilityRepo: facRepo,
		Documents:    docSvc,
		Notifier:     notifier,
	}, nil
}
