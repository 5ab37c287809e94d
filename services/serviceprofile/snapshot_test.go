package serviceprofile

import (
	"context"
	"errors"
	"testing"
	"time"

	"carelink/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProfileClient scripts the service collaborator for snapshot tests.
type fakeProfileClient struct {
	getProfile *models.ServiceProfile
	getErr     error
	saveErr    error

	saveCalls []models.ServiceProfileRequest
	saveGate  chan struct{}
}

func (f *fakeProfileClient) Get(ctx context.Context, facilityID string) (*models.ServiceProfile, error) {
	return f.getProfile, f.getErr
}

func (f *fakeProfileClient) CreateOrUpdate(ctx context.Context, req models.ServiceProfileRequest) (*models.ServiceProfile, error) {
	if f.saveGate != nil {
		<-f.saveGate
	}
	f.saveCalls = append(f.saveCalls, req)
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	// Echo the request back the way the server would after normalization.
	return req.Profile(), nil
}

func TestSnapshotStoreFirstSave(t *testing.T) {
	client := &fakeProfileClient{}
	store := NewSnapshotStore(client, "fac-1", models.FacilityPharmacy)
	require.NoError(t, store.Load(context.Background()))

	caps := store.Edit()
	caps.LicensedPharmacistOnSite = "Yes"
	caps.AcceptedPayments = []string{"Cash"}
	store.SetEdit(caps)
	require.True(t, store.HasChanges())

	require.NoError(t, store.Commit(context.Background()))

	// One network call, one detail record.
	require.Len(t, client.saveCalls, 1)
	req := client.saveCalls[0]
	assert.Equal(t, "fac-1", req.FacilityID)
	assert.Equal(t, models.FacilityPharmacy, req.FacilityType)
	require.NotNil(t, req.Pharmacy)
	assert.Nil(t, req.Hospital)
	assert.Nil(t, req.Laboratory)
	assert.Nil(t, req.Ambulance)
	assert.Nil(t, req.Insurance)
	assert.Nil(t, req.SpecialistClinic)
	assert.True(t, req.Pharmacy.LicensedPharmacistOnSite)

	// The snapshot advanced, so the copy is clean again.
	assert.False(t, store.HasChanges())
	assert.Equal(t, "Yes", store.Edit().LicensedPharmacistOnSite)
}

func TestSnapshotStoreLoadFailureFallsBackToDefaults(t *testing.T) {
	client := &fakeProfileClient{getErr: errors.New("connection refused")}
	store := NewSnapshotStore(client, "fac-2", models.FacilityHospital)

	caps := store.Edit()
	caps.AdditionalInfo = "typed before load finished"
	store.SetEdit(caps)

	// The failure is swallowed: the snapshot resets, the edits survive.
	require.NoError(t, store.Load(context.Background()))
	assert.Equal(t, "typed before load finished", store.Edit().AdditionalInfo)
	assert.True(t, store.HasChanges())
}

func TestSnapshotStoreLoadResetsEdits(t *testing.T) {
	profile := &models.ServiceProfile{
		FacilityType: models.FacilityLaboratory,
		Laboratory: &models.LaboratoryDetails{
			AccreditationStatus:  "ISO 15189",
			HomeSampleCollection: true,
			OperatingDays:        []string{"Mon"},
			BranchAddresses:      []string{},
		},
	}
	client := &fakeProfileClient{getProfile: profile}
	store := NewSnapshotStore(client, "fac-3", models.FacilityLaboratory)
	require.NoError(t, store.Load(context.Background()))

	assert.Equal(t, "ISO 15189", store.Edit().AccreditationStatus)
	assert.Equal(t, "Yes", store.Edit().HomeSampleCollection)
	assert.False(t, store.HasChanges())
}

func TestSnapshotStoreCommitFailureKeepsEdits(t *testing.T) {
	client := &fakeProfileClient{saveErr: errors.New("boom")}
	store := NewSnapshotStore(client, "fac-4", models.FacilityAmbulance)
	require.NoError(t, store.Load(context.Background()))

	caps := store.Edit()
	caps.FleetSize = "9"
	store.SetEdit(caps)

	err := store.Commit(context.Background())
	require.Error(t, err)

	// Edits and dirtiness survive for a retry; the save flag is released.
	assert.Equal(t, "9", store.Edit().FleetSize)
	assert.True(t, store.HasChanges())
	assert.False(t, store.Saving())
}

func TestSnapshotStoreRejectsConcurrentCommit(t *testing.T) {
	client := &fakeProfileClient{saveGate: make(chan struct{})}
	store := NewSnapshotStore(client, "fac-5", models.FacilityInsurance)

	caps := store.Edit()
	caps.EmergencyCoverage = "Yes"
	store.SetEdit(caps)

	done := make(chan error, 1)
	go func() {
		done <- store.Commit(context.Background())
	}()

	// Wait until the first commit is holding the save flag.
	for !store.Saving() {
		time.Sleep(time.Millisecond)
	}

	err := store.Commit(context.Background())
	assert.ErrorIs(t, err, ErrSaveInFlight{})

	close(client.saveGate)
	require.NoError(t, <-done)
	require.Len(t, client.saveCalls, 1)
}

func TestSnapshotStoreSetFacilityTypeDiscardsEdits(t *testing.T) {
	client := &fakeProfileClient{}
	store := NewSnapshotStore(client, "fac-6", models.FacilityHospital)

	caps := store.Edit()
	caps.HasPharmacy = "Yes"
	store.SetEdit(caps)
	store.SetEditSubSpecialties(map[string][]string{"Cardiology": {"Interventional"}})

	store.SetFacilityType(models.FacilityPharmacy)
	assert.Equal(t, DefaultCapabilities(), store.Edit())
	assert.Empty(t, store.EditSubSpecialties())

	// Re-selecting the same type is a no-op.
	caps = store.Edit()
	caps.DeliveryAvailable = "Yes"
	store.SetEdit(caps)
	store.SetFacilityType(models.FacilityPharmacy)
	assert.Equal(t, "Yes", store.Edit().DeliveryAvailable)
}

func TestSnapshotStoreCommitUnknownType(t *testing.T) {
	client := &fakeProfileClient{}
	store := NewSnapshotStore(client, "fac-7", models.FacilityType("Clinic"))
	err := store.Commit(context.Background())
	require.Error(t, err)
	assert.Empty(t, client.saveCalls)
}
