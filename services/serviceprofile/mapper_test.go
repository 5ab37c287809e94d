package serviceprofile

import (
	"testing"

	"carelink/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToEditCopyDefaultsForNilProfile(t *testing.T) {
	for _, ft := range models.KnownFacilityTypes() {
		caps, err := ToEditCopy(nil, ft)
		require.NoError(t, err, "type %s", ft)

		assert.Equal(t, DefaultCapabilities(), caps, "type %s", ft)
		assert.Equal(t, []string{""}, caps.BranchAddresses, "type %s", ft)
	}
}

func TestToEditCopyDefaultsForMissingDetail(t *testing.T) {
	// A profile stored under one type, loaded as another, must still be total.
	p := &models.ServiceProfile{
		FacilityType: models.FacilityHospital,
		Hospital:     defaultHospitalDetails(),
	}
	caps, err := ToEditCopy(p, models.FacilityPharmacy)
	require.NoError(t, err)
	assert.Equal(t, DefaultCapabilities(), caps)
}

func TestToEditCopyUnknownType(t *testing.T) {
	_, err := ToEditCopy(nil, models.FacilityType("Clinic"))
	require.Error(t, err)
	assert.ErrorAs(t, err, &ErrUnknownFacilityType{})

	_, err = ToServerPayload(DefaultCapabilities(), nil, models.FacilityType(""))
	require.Error(t, err)
}

func TestHospitalRoundTrip(t *testing.T) {
	detail := &models.HospitalDetails{
		CoreSpecialties:        []string{"Cardiology", "Oncology"},
		SubSpecialties:         map[string][]string{"Cardiology": {"Interventional"}},
		FacilityFeatures:       []string{"ICU"},
		OperatingDays:          []string{"Mon", "Tue"},
		OpeningTime:            "08:00",
		ClosingTime:            "17:00",
		AdmissionFee:           5000,
		ConsultationFee:        2000,
		TotalBedSpace:          120,
		HasPharmacy:            true,
		HasLaboratory:          false,
		PharmacyOpenToExternal: true,
		LabOpenToExternal:      false,
		HasOtherBranches:       true,
		BranchAddresses:        []string{"12 Marina Rd"},
		AdditionalInfo:         "teaching hospital",
	}
	p := &models.ServiceProfile{FacilityType: models.FacilityHospital, Hospital: detail}

	caps, err := ToEditCopy(p, models.FacilityHospital)
	require.NoError(t, err)
	assert.Equal(t, "Yes", caps.HasPharmacy)
	assert.Equal(t, "No", caps.HasLaboratory)
	assert.Equal(t, "5000", caps.AdmissionFee)
	assert.Equal(t, []string{"12 Marina Rd"}, caps.BranchAddresses)

	subs := SubSpecialtiesOf(p)
	back, err := ToServerPayload(caps, subs, models.FacilityHospital)
	require.NoError(t, err)
	require.NotNil(t, back.Hospital)
	assert.Equal(t, detail, back.Hospital)
	assert.Nil(t, back.Laboratory)
	assert.Nil(t, back.Pharmacy)
	assert.Nil(t, back.Ambulance)
	assert.Nil(t, back.Insurance)
	assert.Nil(t, back.SpecialistClinic)
}

func TestHospitalPayloadPrunesEmptySubSpecialtyTabs(t *testing.T) {
	caps := DefaultCapabilities()
	subs := map[string][]string{
		"Cardiology": {"Interventional"},
		"Oncology":   {},
	}
	p, err := ToServerPayload(caps, subs, models.FacilityHospital)
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"Cardiology": {"Interventional"}}, p.Hospital.SubSpecialties)
}

func TestAmbulanceResponseTimeComposite(t *testing.T) {
	tests := []struct {
		name     string
		stored   string
		wantMin  string
		wantSec  string
		rejoined string
	}{
		{"empty", "", "", "", ""},
		{"typical", "05:30", "05", "30", "05:30"},
		{"unpadded parts rejoin padded", "5:3", "5", "3", "05:03"},
		{"minutes only", "12", "12", "", "12:00"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			min, sec := splitResponseTime(tc.stored)
			assert.Equal(t, tc.wantMin, min)
			assert.Equal(t, tc.wantSec, sec)
			assert.Equal(t, tc.rejoined, joinResponseTime(min, sec))
		})
	}
}

func TestAmbulanceRoundTrip(t *testing.T) {
	detail := &models.AmbulanceDetails{
		AmbulanceTypes:      []string{"BLS", "ALS"},
		VehicleEquipment:    []string{"Defibrillator"},
		CrewTypes:           []string{"Paramedic"},
		AvgResponseTime:     "07:45",
		FleetSize:           6,
		MaxDailyTrips:       20,
		HasBackupVehicles:   true,
		PricePerTrip:        15000,
		InsuranceAccepted:   false,
		FederallyRegistered: true,
		OperatingDays:       []string{AllDayMarker},
		OpeningTime:         "00:00",
		ClosingTime:         "23:59",
		HasOtherBranches:    false,
		BranchAddresses:     []string{},
	}
	p := &models.ServiceProfile{FacilityType: models.FacilityAmbulance, Ambulance: detail}

	caps, err := ToEditCopy(p, models.FacilityAmbulance)
	require.NoError(t, err)
	assert.Equal(t, "07", caps.AverageResponseMin)
	assert.Equal(t, "45", caps.AverageResponseSec)
	// No branches: the edit side renders the seeded empty row.
	assert.Equal(t, []string{""}, caps.BranchAddresses)

	back, err := ToServerPayload(caps, nil, models.FacilityAmbulance)
	require.NoError(t, err)
	assert.Equal(t, detail, back.Ambulance)
}

func TestInsurancePreAuthTreatmentsGatedByFlag(t *testing.T) {
	caps := DefaultCapabilities()
	caps.RequiresPreAuthorization = "No"
	caps.PreAuthTreatments = []string{"MRI", "Surgery"}

	p, err := ToServerPayload(caps, nil, models.FacilityInsurance)
	require.NoError(t, err)
	assert.Empty(t, p.Insurance.PreAuthTreatments)
	assert.False(t, p.Insurance.RequiresPreAuthorization)

	caps.RequiresPreAuthorization = "Yes"
	p, err = ToServerPayload(caps, nil, models.FacilityInsurance)
	require.NoError(t, err)
	assert.Equal(t, []string{"MRI", "Surgery"}, p.Insurance.PreAuthTreatments)
}

func TestInsuranceRoundTripWaitingPeriods(t *testing.T) {
	detail := &models.InsuranceDetails{
		CoveredServices:             []string{"Outpatient"},
		Exclusions:                  []string{},
		CoversPreExistingConditions: true,
		EmergencyCoverage:           true,
		AccreditedHospitals:         []string{"General Hospital"},
		OutOfNetworkReimbursement:   false,
		RequiresPreAuthorization:    true,
		PreAuthTreatments:           []string{"Dialysis"},
		WaitingPeriods: []models.WaitingPeriod{
			{Service: "Maternity", Duration: "9", Unit: "months"},
		},
		PricingPlans:     []string{"Gold"},
		OperatingDays:    []string{"Mon"},
		OpeningTime:      "09:00",
		ClosingTime:      "16:00",
		HasOtherBranches: false,
		BranchAddresses:  []string{},
	}
	p := &models.ServiceProfile{FacilityType: models.FacilityInsurance, Insurance: detail}

	caps, err := ToEditCopy(p, models.FacilityInsurance)
	require.NoError(t, err)

	back, err := ToServerPayload(caps, nil, models.FacilityInsurance)
	require.NoError(t, err)
	assert.Equal(t, detail, back.Insurance)
}

func TestNumberStringCoercion(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"0", 0},
		{" 42 ", 42},
		{"abc", 0},
		{"12.5", 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, atoiOrZero(tc.in), "input %q", tc.in)
	}

	// Zero renders as empty, so a stored zero and an untouched field are the
	// same edit-side value.
	assert.Equal(t, "", numberString(0))
	assert.Equal(t, "42", numberString(42))
}

func TestBranchAddressCollapse(t *testing.T) {
	// "No" always saves an empty list, whatever the edit rows contain.
	assert.Equal(t, []string{}, savedBranchAddresses("No", []string{"somewhere", ""}))
	assert.Equal(t, []string{}, savedBranchAddresses("", []string{"somewhere"}))
	assert.Equal(t, []string{"a", "b"}, savedBranchAddresses("Yes", []string{"a", "b"}))

	// Loading a branchless record seeds the single empty row.
	assert.Equal(t, []string{""}, editBranchAddresses(false, []string{"stale"}))
	assert.Equal(t, []string{""}, editBranchAddresses(true, nil))
	assert.Equal(t, []string{"a"}, editBranchAddresses(true, []string{"a"}))
}

func TestSpecialistClinicRoundTrip(t *testing.T) {
	detail := &models.SpecialistClinicDetails{
		CoreServices:               "Dialysis",
		CareType:                   "Outpatient",
		OnSiteDoctor:               true,
		EmergencyResponsePlan:      false,
		CriticalCare:               true,
		MultidisciplinaryCare:      "Yes",
		BedCapacity:                15,
		HomeServices:               false,
		OnlineBooking:              true,
		Open24Hours:                false,
		DailyPatientLimit:          40,
		WorksPublicHolidays:        true,
		InterFacilityCollaboration: false,
		HMOPartnership:             true,
		AcceptsInsurance:           true,
		OperatingDays:              []string{"Mon", "Wed", "Fri"},
		OpeningTime:                "08:30",
		ClosingTime:                "15:30",
		HasOtherBranches:           false,
		BranchAddresses:            []string{},
	}
	p := &models.ServiceProfile{FacilityType: models.FacilitySpecialistClinic, SpecialistClinic: detail}

	caps, err := ToEditCopy(p, models.FacilitySpecialistClinic)
	require.NoError(t, err)
	back, err := ToServerPayload(caps, nil, models.FacilitySpecialistClinic)
	require.NoError(t, err)
	assert.Equal(t, detail, back.SpecialistClinic)
}

func TestLaboratoryAndPharmacyRoundTrip(t *testing.T) {
	lab := &models.LaboratoryDetails{
		AccreditationStatus:  "ISO 15189",
		HomeSampleCollection: true,
		Covid19Testing:       false,
		OperatingDays:        []string{"Sat", "Sun"},
		OpeningTime:          "10:00",
		ClosingTime:          "14:00",
		HasOtherBranches:     true,
		BranchAddresses:      []string{"Annex"},
	}
	p := &models.ServiceProfile{FacilityType: models.FacilityLaboratory, Laboratory: lab}
	caps, err := ToEditCopy(p, models.FacilityLaboratory)
	require.NoError(t, err)
	back, err := ToServerPayload(caps, nil, models.FacilityLaboratory)
	require.NoError(t, err)
	assert.Equal(t, lab, back.Laboratory)

	ph := &models.PharmacyDetails{
		LicensedPharmacistOnSite: true,
		DeliveryAvailable:        true,
		ComplianceDocuments:      []string{"PCN License"},
		AcceptedPayments:         []string{"Cash", "Card"},
		OperatingDays:            []string{"Mon"},
		OpeningTime:              "08:00",
		ClosingTime:              "20:00",
		HasOtherBranches:         false,
		BranchAddresses:          []string{},
	}
	p = &models.ServiceProfile{FacilityType: models.FacilityPharmacy, Pharmacy: ph}
	caps, err = ToEditCopy(p, models.FacilityPharmacy)
	require.NoError(t, err)
	back, err = ToServerPayload(caps, nil, models.FacilityPharmacy)
	require.NoError(t, err)
	assert.Equal(t, ph, back.Pharmacy)
}
