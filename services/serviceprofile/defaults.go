package serviceprofile

import "carelink/models"

// DefaultCapabilities returns the fully defaulted edit copy: every string
// field "", every boolean-encoded field "", every list empty. The branch
// address list is seeded with a single empty row so the editing surface
// always has at least one input to render.
func DefaultCapabilities() models.Capabilities {
	return models.Capabilities{
		OperatingDays:       []string{},
		BranchAddresses:     []string{""},
		CoreSpecialties:     []string{},
		FacilityFeatures:    []string{},
		ComplianceDocuments: []string{},
		AcceptedPayments:    []string{},
		AmbulanceTypes:      []string{},
		VehicleEquipment:    []string{},
		CrewTypes:           []string{},
		CoveredServices:     []string{},
		Exclusions:          []string{},
		AccreditedHospitals: []string{},
		PreAuthTreatments:   []string{},
		WaitingPeriods:      []models.WaitingPeriod{},
		PricingPlans:        []string{},
	}
}

// DefaultSubSpecialties returns the empty side-channel selection map.
func DefaultSubSpecialties() map[string][]string {
	return map[string][]string{}
}

func defaultHospitalDetails() *models.HospitalDetails {
	return &models.HospitalDetails{
		CoreSpecialties:  []string{},
		FacilityFeatures: []string{},
		OperatingDays:    []string{},
		BranchAddresses:  []string{},
	}
}

func defaultLaboratoryDetails() *models.LaboratoryDetails {
	return &models.LaboratoryDetails{
		OperatingDays:   []string{},
		BranchAddresses: []string{},
	}
}

func defaultPharmacyDetails() *models.PharmacyDetails {
	return &models.PharmacyDetails{
		ComplianceDocuments: []string{},
		AcceptedPayments:    []string{},
		OperatingDays:       []string{},
		BranchAddresses:     []string{},
	}
}

func defaultAmbulanceDetails() *models.AmbulanceDetails {
	return &models.AmbulanceDetails{
		AmbulanceTypes:   []string{},
		VehicleEquipment: []string{},
		CrewTypes:        []string{},
		OperatingDays:    []string{},
		BranchAddresses:  []string{},
	}
}

func defaultInsuranceDetails() *models.InsuranceDetails {
	return &models.InsuranceDetails{
		CoveredServices:     []string{},
		Exclusions:          []string{},
		AccreditedHospitals: []string{},
		PreAuthTreatments:   []string{},
		WaitingPeriods:      []models.WaitingPeriod{},
		PricingPlans:        []string{},
		OperatingDays:       []string{},
		BranchAddresses:     []string{},
	}
}

func defaultSpecialistClinicDetails() *models.SpecialistClinicDetails {
	return &models.SpecialistClinicDetails{
		OperatingDays:   []string{},
		BranchAddresses: []string{},
	}
}
