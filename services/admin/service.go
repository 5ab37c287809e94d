package admin

import (
	"context"
	"fmt"
	"time"

	"carelink/models"
	"carelink/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ListFacilities returns facility accounts, optionally filtered by type. An
// empty type lists everything.
func (s *DefaultAdminService) ListFacilities(ctx context.Context, facilityType models.FacilityType) ([]models.Facility, error) {
	if facilityType != "" && !facilityType.Known() {
		return nil, fmt.Errorf("unknown facility type %q", facilityType)
	}
	list, err := s.FacilityRepo.GetAll(facilityType)
	if err != nil {
		return nil, fmt.Errorf("failed to list facilities: %w", err)
	}
	// Strip credential material before the records leave the service.
	for i := range list {
		list[i].Security = models.FacilitySecurity{}
	}
	return list, nil
}

// VerifyFacility settles the admin review outcome for a facility and notifies
// it of the decision.
func (s *DefaultAdminService) VerifyFacility(ctx context.Context, facilityID, status, notes string) (*models.Facility, error) {
	if status != "verified" && status != "rejected" && status != "pending" {
		return nil, fmt.Errorf("invalid verification status %q", status)
	}
	facility, err := s.FacilityRepo.GetByID(facilityID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve facility: %w", err)
	}
	if facility == nil {
		return nil, fmt.Errorf("facility not found")
	}

	updateDoc := bson.M{
		"verification.verificationStatus": status,
		"verification.reviewNotes":        notes,
		"updatedAt":                       time.Now(),
	}
	if err := s.FacilityRepo.UpdateSetDocument(facilityID, updateDoc); err != nil {
		return nil, fmt.Errorf("failed to update verification status: %w", err)
	}

	title := "Your facility review is complete"
	body := fmt.Sprintf("Your facility %s has been %s.", facility.Profile.FacilityName, status)
	if err := s.Notifier.SendFacilityNotification(ctx, facilityID, "facility_review", title, body, map[string]string{
		"status": status,
	}); err != nil {
		utils.GetLogger().Warn("Failed to notify facility of review outcome",
			zap.String("facilityId", facilityID), zap.Error(err))
	}

	facility.Verification.VerificationStatus = status
	facility.Verification.ReviewNotes = notes
	facility.Security = models.FacilitySecurity{}
	return facility, nil
}

// ReviewDocument records a per-file verdict and notifies the facility when the
// file was rejected so it can re-upload.
func (s *DefaultAdminService) ReviewDocument(ctx context.Context, facilityID, slot, filePath string, status models.VerificationStatus, notes string) (*models.DocumentRecord, error) {
	record, err := s.Documents.Review(ctx, facilityID, slot, filePath, status, notes)
	if err != nil {
		return nil, err
	}

	if status == models.VerificationRejected {
		title := "A document needs your attention"
		body := fmt.Sprintf("A file in %s was rejected. Please upload a replacement.", slot)
		if err := s.Notifier.SendFacilityNotification(ctx, facilityID, "document_review", title, body, map[string]string{
			"slot":   slot,
			"status": string(status),
		}); err != nil {
			utils.GetLogger().Warn("Failed to notify facility of document review",
				zap.String("facilityId", facilityID), zap.Error(err))
		}
	}
	return record, nil
}
