package models

import "time"

// Document slot names. Each facility keeps an ordered list of file
// references per slot; specialistScheduleFiles only applies to hospitals.
const (
	SlotFacilityPhotos      = "facilityPhotos"
	SlotSpecialistSchedules = "specialistScheduleFiles"
	SlotPriceLists          = "priceListFiles"
	SlotFacilityDetails     = "facilityDetailsFiles"
	SlotLicenseRegistration = "licenseRegistrationFiles"
)

// DocumentSlots lists every slot in display order.
func DocumentSlots() []string {
	return []string{
		SlotFacilityPhotos,
		SlotSpecialistSchedules,
		SlotPriceLists,
		SlotFacilityDetails,
		SlotLicenseRegistration,
	}
}

// KnownDocumentSlot reports whether name is a valid slot.
func KnownDocumentSlot(name string) bool {
	for _, s := range DocumentSlots() {
		if s == name {
			return true
		}
	}
	return false
}

// VerificationStatus is the per-file review outcome.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// FileRef identifies one file within a slot. The storage path doubles as the
// stable identity for already-persisted files; newly staged uploads have no
// stable path yet and carry the local path of the buffered upload instead.
type FileRef struct {
	Path       string `json:"path"`
	Name       string `json:"name"`
	IsExisting bool   `json:"isExisting"`
	LocalPath  string `json:"-"`
}

// FileVerification is the server's review record for one stored file.
type FileVerification struct {
	FilePath string             `bson:"filePath" json:"filePath"`
	Status   VerificationStatus `bson:"status" json:"status"`
	Notes    string             `bson:"notes,omitempty" json:"notes,omitempty"`
}

// SlotVerification groups the review records of one document slot.
type SlotVerification struct {
	Files []FileVerification `bson:"files" json:"files"`
}

// DocumentVerification maps slot name to its review records. Produced only by
// the server; clients merge it read-only into their local file lists.
type DocumentVerification map[string]SlotVerification

// DocumentRecord is the stored form of a facility's document bundle: the
// per-slot storage paths plus the attached verification ledger.
type DocumentRecord struct {
	FacilityID   string               `bson:"facilityId" json:"facilityId"`
	Slots        map[string][]string  `bson:"slots" json:"slots"`
	Verification DocumentVerification `bson:"documentVerification,omitempty" json:"documentVerification,omitempty"`
	UpdatedAt    time.Time            `bson:"updatedAt" json:"updatedAt"`
}
