package documents

import (
	"testing"
	"time"

	"carelink/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLedgerFromNilRecord(t *testing.T) {
	l := NewLedger(nil)
	for _, slot := range models.DocumentSlots() {
		assert.Empty(t, l.Files(slot), "slot %s", slot)
	}
	assert.Empty(t, l.DeletedFiles())
}

func TestNewLedgerMarksStoredFilesExisting(t *testing.T) {
	record := &models.DocumentRecord{
		FacilityID: "fac-1",
		Slots: map[string][]string{
			models.SlotFacilityPhotos: {"facilities/fac-1/photos/front.jpg"},
			"bogus-slot":              {"ignored.pdf"},
		},
		UpdatedAt: time.Now(),
	}
	l := NewLedger(record)

	files := l.Files(models.SlotFacilityPhotos)
	require.Len(t, files, 1)
	assert.True(t, files[0].IsExisting)
	assert.Equal(t, "front.jpg", files[0].Name)

	// Unknown slots in a stored record are dropped, not surfaced.
	for _, slot := range models.DocumentSlots() {
		if slot == models.SlotFacilityPhotos {
			continue
		}
		assert.Empty(t, l.Files(slot), "slot %s", slot)
	}
}

func TestLedgerStatusDefaultsToPending(t *testing.T) {
	record := &models.DocumentRecord{
		FacilityID: "fac-1",
		Slots: map[string][]string{
			models.SlotPriceLists: {"a.pdf", "b.pdf"},
		},
		Verification: models.DocumentVerification{
			models.SlotPriceLists: models.SlotVerification{
				Files: []models.FileVerification{
					{FilePath: "a.pdf", Status: models.VerificationRejected, Notes: "illegible"},
				},
			},
		},
	}
	l := NewLedger(record)

	status, notes := l.Status(models.SlotPriceLists, "a.pdf")
	assert.Equal(t, models.VerificationRejected, status)
	assert.Equal(t, "illegible", notes)

	// No review record yet: pending.
	status, _ = l.Status(models.SlotPriceLists, "b.pdf")
	assert.Equal(t, models.VerificationPending, status)
	status, _ = l.Status(models.SlotFacilityDetails, "missing.pdf")
	assert.Equal(t, models.VerificationPending, status)
}

func TestLedgerStageUpload(t *testing.T) {
	l := NewLedger(nil)

	err := l.StageUpload("not-a-slot", models.FileRef{Name: "x.pdf"})
	require.Error(t, err)

	require.NoError(t, l.StageUpload(models.SlotLicenseRegistration, models.FileRef{
		Name:      "license.pdf",
		LocalPath: "/tmp/license.pdf",
	}))
	files := l.Files(models.SlotLicenseRegistration)
	require.Len(t, files, 1)
	assert.False(t, files[0].IsExisting)
}

func TestLedgerStageUploadRejectsDuplicatePath(t *testing.T) {
	record := &models.DocumentRecord{
		FacilityID: "fac-1",
		Slots: map[string][]string{
			models.SlotFacilityPhotos: {"photos/front.jpg"},
		},
	}
	l := NewLedger(record)

	err := l.StageUpload(models.SlotFacilityPhotos, models.FileRef{
		Path: "photos/front.jpg",
		Name: "front.jpg",
	})
	require.Error(t, err)
}

func TestLedgerRemoveExistingRecordsDeletion(t *testing.T) {
	record := &models.DocumentRecord{
		FacilityID: "fac-1",
		Slots: map[string][]string{
			models.SlotSpecialistSchedules: {"sched/jan.pdf", "sched/feb.pdf"},
		},
	}
	l := NewLedger(record)

	require.True(t, l.Remove(models.SlotSpecialistSchedules, "sched/jan.pdf"))
	assert.False(t, l.Remove(models.SlotSpecialistSchedules, "sched/jan.pdf"))

	deleted := l.DeletedFiles()
	assert.Equal(t, []string{"sched/jan.pdf"}, deleted[models.SlotSpecialistSchedules])

	// The removed path is gone from the outbound surviving list; removal
	// travels only as absence.
	out := l.Outbound()
	assert.Equal(t, []string{"sched/feb.pdf"}, out[models.SlotSpecialistSchedules].Existing)
}

func TestLedgerRemoveStagedUploadLeavesNoTrace(t *testing.T) {
	l := NewLedger(nil)
	require.NoError(t, l.StageUpload(models.SlotFacilityDetails, models.FileRef{
		Path: "local-ref",
		Name: "details.pdf",
	}))

	require.True(t, l.Remove(models.SlotFacilityDetails, "local-ref"))
	assert.Empty(t, l.DeletedFiles())
	assert.Empty(t, l.Outbound()[models.SlotFacilityDetails].Uploads)
}

func TestLedgerOutboundSplitsExistingAndUploads(t *testing.T) {
	record := &models.DocumentRecord{
		FacilityID: "fac-1",
		Slots: map[string][]string{
			models.SlotFacilityPhotos: {"photos/a.jpg", "photos/b.jpg"},
		},
	}
	l := NewLedger(record)
	require.NoError(t, l.StageUpload(models.SlotFacilityPhotos, models.FileRef{
		Name:      "c.jpg",
		LocalPath: "/tmp/c.jpg",
	}))

	out := l.Outbound()[models.SlotFacilityPhotos]
	assert.Equal(t, []string{"photos/a.jpg", "photos/b.jpg"}, out.Existing)
	require.Len(t, out.Uploads, 1)
	assert.Equal(t, "c.jpg", out.Uploads[0].Name)
}

func TestLedgerMergeVerification(t *testing.T) {
	l := NewLedger(nil)
	l.MergeVerification(models.DocumentVerification{
		models.SlotPriceLists: models.SlotVerification{
			Files: []models.FileVerification{
				{FilePath: "p.pdf", Status: models.VerificationVerified},
			},
		},
	})

	status, _ := l.Status(models.SlotPriceLists, "p.pdf")
	assert.Equal(t, models.VerificationVerified, status)

	// A nil merge keeps the previous records.
	l.MergeVerification(nil)
	status, _ = l.Status(models.SlotPriceLists, "p.pdf")
	assert.Equal(t, models.VerificationVerified, status)
}
