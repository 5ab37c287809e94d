package serviceprofile

import (
	"context"
	"sync"

	"carelink/models"
	"carelink/utils"

	"go.uber.org/zap"
)

// ProfileClient is the service collaborator a SnapshotStore reconciles
// against. DefaultServiceProfileService satisfies it directly; remote hosts
// can supply an HTTP-backed implementation.
type ProfileClient interface {
	Get(ctx context.Context, facilityID string) (*models.ServiceProfile, error)
	CreateOrUpdate(ctx context.Context, req models.ServiceProfileRequest) (*models.ServiceProfile, error)
}

// SnapshotStore owns one editing session for a facility's service profile:
// the last server snapshot, the in-progress edit copy, and the side-channel
// sub-specialty selections. Persistence happens only through Commit, never in
// the background.
type SnapshotStore struct {
	client       ProfileClient
	facilityID   string
	facilityType models.FacilityType

	mu           sync.Mutex
	saving       bool
	snapshot     models.Capabilities
	snapshotSubs map[string][]string
	edit         models.Capabilities
	editSubs     map[string][]string
}

// NewSnapshotStore creates a store for the given facility. Both copies start
// at the type's defaulted shape until Load is called.
func NewSnapshotStore(client ProfileClient, facilityID string, facilityType models.FacilityType) *SnapshotStore {
	return &SnapshotStore{
		client:       client,
		facilityID:   facilityID,
		facilityType: facilityType,
		snapshot:     DefaultCapabilities(),
		snapshotSubs: DefaultSubSpecialties(),
		edit:         DefaultCapabilities(),
		editSubs:     DefaultSubSpecialties(),
	}
}

// Load fetches the current server state and resets both the snapshot and the
// edit copy to it. A fetch failure is treated as "no profile exists yet": the
// snapshot falls back to the defaulted shape, the error is logged but not
// surfaced, and any in-progress edits are kept.
func (s *SnapshotStore) Load(ctx context.Context) error {
	profile, err := s.client.Get(ctx, s.facilityID)
	if err != nil {
		utils.GetLogger().Warn("service profile fetch failed, assuming no profile yet",
			zap.String("facilityID", s.facilityID), zap.Error(err))
		s.mu.Lock()
		s.snapshot = DefaultCapabilities()
		s.snapshotSubs = DefaultSubSpecialties()
		s.mu.Unlock()
		return nil
	}

	caps, err := ToEditCopy(profile, s.facilityType)
	if err != nil {
		return err
	}
	subs := SubSpecialtiesOf(profile)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = caps
	s.snapshotSubs = subs
	editCaps, _ := ToEditCopy(profile, s.facilityType)
	s.edit = editCaps
	s.editSubs = SubSpecialtiesOf(profile)
	return nil
}

// Edit returns the current edit copy.
func (s *SnapshotStore) Edit() models.Capabilities {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.edit
}

// SetEdit replaces the edit copy.
func (s *SnapshotStore) SetEdit(caps models.Capabilities) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.edit = caps
}

// EditSubSpecialties returns the side-channel selections.
func (s *SnapshotStore) EditSubSpecialties() map[string][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editSubs
}

// SetEditSubSpecialties replaces the side-channel selections.
func (s *SnapshotStore) SetEditSubSpecialties(subs map[string][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editSubs = subs
}

// SetFacilityType switches the active facility type. Edits made under the
// previous type are discarded; there is no migration between variants.
func (s *SnapshotStore) SetFacilityType(facilityType models.FacilityType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if facilityType == s.facilityType {
		return
	}
	s.facilityType = facilityType
	s.edit = DefaultCapabilities()
	s.editSubs = DefaultSubSpecialties()
}

// HasChanges reports whether a save should be enabled for the current edits.
func (s *SnapshotStore) HasChanges() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return HasChanges(s.edit, s.snapshot, s.editSubs, s.snapshotSubs)
}

// Saving reports whether a commit is in flight.
func (s *SnapshotStore) Saving() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saving
}

// Commit maps the edit copy to the wire form and saves it. On success both
// the snapshot and the edit copy are replaced with the server's mapped-back
// response, so any server-side normalization round-trips and HasChanges
// reports false by construction. On failure both are left untouched so the
// edits survive for a retry.
func (s *SnapshotStore) Commit(ctx context.Context) error {
	s.mu.Lock()
	if s.saving {
		s.mu.Unlock()
		return ErrSaveInFlight{}
	}
	s.saving = true
	edit := s.edit
	editSubs := s.editSubs
	facilityType := s.facilityType
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.saving = false
		s.mu.Unlock()
	}()

	payload, err := ToServerPayload(edit, editSubs, facilityType)
	if err != nil {
		return err
	}

	req := models.ServiceProfileRequest{
		FacilityID:       s.facilityID,
		FacilityType:     facilityType,
		UpdateType:       "full",
		Hospital:         payload.Hospital,
		Laboratory:       payload.Laboratory,
		Pharmacy:         payload.Pharmacy,
		Ambulance:        payload.Ambulance,
		Insurance:        payload.Insurance,
		SpecialistClinic: payload.SpecialistClinic,
	}

	saved, err := s.client.CreateOrUpdate(ctx, req)
	if err != nil {
		return err
	}

	caps, err := ToEditCopy(saved, facilityType)
	if err != nil {
		return err
	}
	subs := SubSpecialtiesOf(saved)

	// Independent copies so in-place edits never alias the snapshot's slices.
	editCaps, _ := ToEditCopy(saved, facilityType)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = caps
	s.snapshotSubs = subs
	s.edit = editCaps
	s.editSubs = SubSpecialtiesOf(saved)
	return nil
}
