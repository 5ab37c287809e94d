package documents

import (
	"context"
	"fmt"
	"time"

	"carelink/models"
	"carelink/utils"

	"go.uber.org/zap"
)

func (s *DefaultDocumentService) Get(ctx context.Context, facilityID string) (*models.DocumentRecord, error) {
	if facilityID == "" {
		return nil, fmt.Errorf("facility id is required")
	}
	record, err := s.Repo.GetByFacilityID(facilityID)
	if err != nil {
		return nil, fmt.Errorf("failed to load documents: %w", err)
	}
	return record, nil
}

// Apply reconciles the submitted state against storage. For each slot the
// stored paths missing from the surviving list are dropped from the record
// and the verification ledger; new uploads are stored under the facility's
// folder and appended. The request is all-or-nothing from the caller's
// perspective: any failure leaves the stored record unchanged. Storage
// objects for removed paths are destroyed only after the updated record is
// persisted, so a failed save never leaves the record pointing at deleted
// files.
func (s *DefaultDocumentService) Apply(ctx context.Context, facilityID string, surviving map[string][]string, uploads map[string][]UploadedFile) (*models.DocumentRecord, error) {
	if facilityID == "" {
		return nil, fmt.Errorf("facility id is required")
	}
	for slot := range surviving {
		if !models.KnownDocumentSlot(slot) {
			return nil, fmt.Errorf("unknown document slot %q", slot)
		}
	}
	for slot := range uploads {
		if !models.KnownDocumentSlot(slot) {
			return nil, fmt.Errorf("unknown document slot %q", slot)
		}
	}

	record, err := s.Repo.GetByFacilityID(facilityID)
	if err != nil {
		return nil, fmt.Errorf("failed to load documents: %w", err)
	}
	if record == nil {
		record = &models.DocumentRecord{
			FacilityID:   facilityID,
			Slots:        map[string][]string{},
			Verification: models.DocumentVerification{},
		}
	}
	if record.Verification == nil {
		record.Verification = models.DocumentVerification{}
	}

	var removed []string
	for _, slot := range models.DocumentSlots() {
		keep, submitted := surviving[slot]
		stored := record.Slots[slot]

		next := []string{}
		if submitted {
			keepSet := make(map[string]bool, len(keep))
			for _, p := range keep {
				keepSet[p] = true
			}
			for _, p := range stored {
				if !keepSet[p] {
					removed = append(removed, p)
					s.dropVerification(record, slot, p)
					continue
				}
				next = append(next, p)
			}
		} else {
			next = append(next, stored...)
		}

		for _, up := range uploads[slot] {
			destFolder := fmt.Sprintf("facilities/%s/%s", facilityID, slot)
			path, err := s.Storage.UploadFile(ctx, up.LocalPath, destFolder)
			if err != nil {
				return nil, fmt.Errorf("failed to upload %s to slot %s: %w", up.Name, slot, err)
			}
			next = append(next, path)
		}

		record.Slots[slot] = next
	}

	record.UpdatedAt = time.Now()
	if err := s.Repo.Upsert(record); err != nil {
		return nil, fmt.Errorf("failed to save documents: %w", err)
	}

	// The saved record no longer references these paths; a delete failure
	// only strands an unreferenced object.
	for _, p := range removed {
		if err := s.Storage.DeleteFile(ctx, p); err != nil {
			utils.GetLogger().Warn("failed to delete stored document",
				zap.String("path", p), zap.Error(err))
		}
	}
	return record, nil
}

// Review records an admin verdict for a stored file and returns the updated
// record. Files never reviewed before get a fresh entry.
func (s *DefaultDocumentService) Review(ctx context.Context, facilityID, slot, filePath string, status models.VerificationStatus, notes string) (*models.DocumentRecord, error) {
	if !models.KnownDocumentSlot(slot) {
		return nil, fmt.Errorf("unknown document slot %q", slot)
	}
	record, err := s.Repo.GetByFacilityID(facilityID)
	if err != nil {
		return nil, fmt.Errorf("failed to load documents: %w", err)
	}
	if record == nil {
		return nil, fmt.Errorf("facility %s has no documents", facilityID)
	}

	found := false
	for _, p := range record.Slots[slot] {
		if p == filePath {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("file %s not found in slot %s", filePath, slot)
	}

	if record.Verification == nil {
		record.Verification = models.DocumentVerification{}
	}
	sv := record.Verification[slot]
	updated := false
	for i, f := range sv.Files {
		if f.FilePath == filePath {
			sv.Files[i].Status = status
			sv.Files[i].Notes = notes
			updated = true
			break
		}
	}
	if !updated {
		sv.Files = append(sv.Files, models.FileVerification{
			FilePath: filePath,
			Status:   status,
			Notes:    notes,
		})
	}
	record.Verification[slot] = sv

	record.UpdatedAt = time.Now()
	if err := s.Repo.Upsert(record); err != nil {
		return nil, fmt.Errorf("failed to save document review: %w", err)
	}
	return record, nil
}

func (s *DefaultDocumentService) dropVerification(record *models.DocumentRecord, slot, path string) {
	sv, ok := record.Verification[slot]
	if !ok {
		return
	}
	files := sv.Files[:0:0]
	for _, f := range sv.Files {
		if f.FilePath != path {
			files = append(files, f)
		}
	}
	sv.Files = files
	record.Verification[slot] = sv
}
