package serviceprofile

import (
	"fmt"
	"strconv"
	"strings"

	"carelink/models"
)

// The mapper translates between the server's per-type nested profile and the
// flat edit copy. The load direction is total: a nil profile or missing
// detail record maps to the fully defaulted shape, never to missing fields.
// Only an unknown facility type is an error, in either direction.

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func isYes(s string) bool {
	return s == "Yes"
}

// numberString renders a stored number for editing. Zero collapses to the
// empty string, matching the legacy falsy encoding, and round-trips back to
// zero on save.
func numberString(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// atoiOrZero coerces a numeric-looking field, defaulting to zero on any
// malformed input.
func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func copyWaitingPeriods(in []models.WaitingPeriod) []models.WaitingPeriod {
	out := make([]models.WaitingPeriod, len(in))
	copy(out, in)
	return out
}

// splitResponseTime breaks an "MM:SS" composite into its two edit fields.
func splitResponseTime(s string) (min, sec string) {
	if s == "" {
		return "", ""
	}
	parts := strings.SplitN(s, ":", 2)
	min = parts[0]
	if len(parts) == 2 {
		sec = parts[1]
	}
	return min, sec
}

// joinResponseTime rebuilds the "MM:SS" composite, zero-padding each part.
func joinResponseTime(min, sec string) string {
	if min == "" && sec == "" {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", atoiOrZero(min), atoiOrZero(sec))
}

// editBranchAddresses maps a stored branch list into the edit shape: the list
// itself when branches exist, otherwise the single seeded empty row.
func editBranchAddresses(hasOther bool, addresses []string) []string {
	if hasOther && len(addresses) > 0 {
		return copyStrings(addresses)
	}
	return []string{""}
}

// savedBranchAddresses collapses the edit-side branch list for the wire:
// empty when the facility reported no other branches.
func savedBranchAddresses(hasOther string, addresses []string) []string {
	if !isYes(hasOther) {
		return []string{}
	}
	return copyStrings(addresses)
}

// ToEditCopy flattens the profile into the edit shape for the given facility
// type. A nil profile, or a profile whose matching detail record is absent,
// yields the defaulted shape so downstream equality checks stay well-defined.
func ToEditCopy(p *models.ServiceProfile, facilityType models.FacilityType) (models.Capabilities, error) {
	if !facilityType.Known() {
		return models.Capabilities{}, ErrUnknownFacilityType{Type: string(facilityType)}
	}

	caps := DefaultCapabilities()
	if p == nil {
		return caps, nil
	}

	switch facilityType {
	case models.FacilityHospital:
		d := p.Hospital
		if d == nil {
			return caps, nil
		}
		caps.CoreSpecialties = copyStrings(d.CoreSpecialties)
		caps.FacilityFeatures = copyStrings(d.FacilityFeatures)
		caps.OperatingDays = copyStrings(d.OperatingDays)
		caps.OpeningTime = d.OpeningTime
		caps.ClosingTime = d.ClosingTime
		caps.AdmissionFee = numberString(d.AdmissionFee)
		caps.ConsultationFee = numberString(d.ConsultationFee)
		caps.TotalBedSpace = numberString(d.TotalBedSpace)
		caps.HasPharmacy = yesNo(d.HasPharmacy)
		caps.HasLaboratory = yesNo(d.HasLaboratory)
		caps.PharmacyOpenToExternal = yesNo(d.PharmacyOpenToExternal)
		caps.LabOpenToExternal = yesNo(d.LabOpenToExternal)
		caps.HasOtherBranches = yesNo(d.HasOtherBranches)
		caps.BranchAddresses = editBranchAddresses(d.HasOtherBranches, d.BranchAddresses)
		caps.AdditionalInfo = d.AdditionalInfo

	case models.FacilityLaboratory:
		d := p.Laboratory
		if d == nil {
			return caps, nil
		}
		caps.AccreditationStatus = d.AccreditationStatus
		caps.HomeSampleCollection = yesNo(d.HomeSampleCollection)
		caps.Covid19Testing = yesNo(d.Covid19Testing)
		caps.OperatingDays = copyStrings(d.OperatingDays)
		caps.OpeningTime = d.OpeningTime
		caps.ClosingTime = d.ClosingTime
		caps.HasOtherBranches = yesNo(d.HasOtherBranches)
		caps.BranchAddresses = editBranchAddresses(d.HasOtherBranches, d.BranchAddresses)
		caps.AdditionalInfo = d.AdditionalInfo

	case models.FacilityPharmacy:
		d := p.Pharmacy
		if d == nil {
			return caps, nil
		}
		caps.LicensedPharmacistOnSite = yesNo(d.LicensedPharmacistOnSite)
		caps.DeliveryAvailable = yesNo(d.DeliveryAvailable)
		caps.ComplianceDocuments = copyStrings(d.ComplianceDocuments)
		caps.AcceptedPayments = copyStrings(d.AcceptedPayments)
		caps.OperatingDays = copyStrings(d.OperatingDays)
		caps.OpeningTime = d.OpeningTime
		caps.ClosingTime = d.ClosingTime
		caps.HasOtherBranches = yesNo(d.HasOtherBranches)
		caps.BranchAddresses = editBranchAddresses(d.HasOtherBranches, d.BranchAddresses)
		caps.AdditionalInfo = d.AdditionalInfo

	case models.FacilityAmbulance:
		d := p.Ambulance
		if d == nil {
			return caps, nil
		}
		caps.AmbulanceTypes = copyStrings(d.AmbulanceTypes)
		caps.VehicleEquipment = copyStrings(d.VehicleEquipment)
		caps.CrewTypes = copyStrings(d.CrewTypes)
		caps.AverageResponseMin, caps.AverageResponseSec = splitResponseTime(d.AvgResponseTime)
		caps.FleetSize = numberString(d.FleetSize)
		caps.MaxDailyTrips = numberString(d.MaxDailyTrips)
		caps.HasBackupVehicles = yesNo(d.HasBackupVehicles)
		caps.PricePerTrip = numberString(d.PricePerTrip)
		caps.InsuranceAccepted = yesNo(d.InsuranceAccepted)
		caps.FederallyRegistered = yesNo(d.FederallyRegistered)
		caps.OperatingDays = copyStrings(d.OperatingDays)
		caps.OpeningTime = d.OpeningTime
		caps.ClosingTime = d.ClosingTime
		caps.HasOtherBranches = yesNo(d.HasOtherBranches)
		caps.BranchAddresses = editBranchAddresses(d.HasOtherBranches, d.BranchAddresses)
		caps.AdditionalInfo = d.AdditionalInfo

	case models.FacilityInsurance:
		d := p.Insurance
		if d == nil {
			return caps, nil
		}
		caps.CoveredServices = copyStrings(d.CoveredServices)
		caps.Exclusions = copyStrings(d.Exclusions)
		caps.CoversPreExistingConditions = yesNo(d.CoversPreExistingConditions)
		caps.EmergencyCoverage = yesNo(d.EmergencyCoverage)
		caps.AccreditedHospitals = copyStrings(d.AccreditedHospitals)
		caps.OutOfNetworkReimbursement = yesNo(d.OutOfNetworkReimbursement)
		caps.RequiresPreAuthorization = yesNo(d.RequiresPreAuthorization)
		caps.PreAuthTreatments = copyStrings(d.PreAuthTreatments)
		caps.WaitingPeriods = copyWaitingPeriods(d.WaitingPeriods)
		caps.PricingPlans = copyStrings(d.PricingPlans)
		caps.OperatingDays = copyStrings(d.OperatingDays)
		caps.OpeningTime = d.OpeningTime
		caps.ClosingTime = d.ClosingTime
		caps.HasOtherBranches = yesNo(d.HasOtherBranches)
		caps.BranchAddresses = editBranchAddresses(d.HasOtherBranches, d.BranchAddresses)
		caps.AdditionalInfo = d.AdditionalInfo

	case models.FacilitySpecialistClinic:
		d := p.SpecialistClinic
		if d == nil {
			return caps, nil
		}
		caps.CoreServices = d.CoreServices
		caps.CareType = d.CareType
		caps.OnSiteDoctor = yesNo(d.OnSiteDoctor)
		caps.EmergencyResponsePlan = yesNo(d.EmergencyResponsePlan)
		caps.CriticalCare = yesNo(d.CriticalCare)
		caps.MultidisciplinaryCare = d.MultidisciplinaryCare
		caps.BedCapacity = numberString(d.BedCapacity)
		caps.HomeServices = yesNo(d.HomeServices)
		caps.OnlineBooking = yesNo(d.OnlineBooking)
		caps.Open24Hours = yesNo(d.Open24Hours)
		caps.DailyPatientLimit = numberString(d.DailyPatientLimit)
		caps.WorksPublicHolidays = yesNo(d.WorksPublicHolidays)
		caps.InterFacilityCollaboration = yesNo(d.InterFacilityCollaboration)
		caps.HMOPartnership = yesNo(d.HMOPartnership)
		caps.AcceptsInsurance = yesNo(d.AcceptsInsurance)
		caps.OperatingDays = copyStrings(d.OperatingDays)
		caps.OpeningTime = d.OpeningTime
		caps.ClosingTime = d.ClosingTime
		caps.HasOtherBranches = yesNo(d.HasOtherBranches)
		caps.BranchAddresses = editBranchAddresses(d.HasOtherBranches, d.BranchAddresses)
		caps.AdditionalInfo = d.AdditionalInfo
	}

	return caps, nil
}

// SubSpecialtiesOf extracts the hospital sub-specialty side channel from a
// profile. Non-hospital profiles and missing records yield an empty map.
func SubSpecialtiesOf(p *models.ServiceProfile) map[string][]string {
	subs := DefaultSubSpecialties()
	if p == nil || p.Hospital == nil {
		return subs
	}
	for tab, selections := range p.Hospital.SubSpecialties {
		subs[tab] = copyStrings(selections)
	}
	return subs
}

// ToServerPayload rebuilds the per-type nested wire form from the edit copy.
// Exactly one detail record is populated, matching the declared facility
// type; the hospital sub-specialty side channel travels with the hospital
// record, empty tabs pruned.
func ToServerPayload(caps models.Capabilities, subSpecialties map[string][]string, facilityType models.FacilityType) (*models.ServiceProfile, error) {
	if !facilityType.Known() {
		return nil, ErrUnknownFacilityType{Type: string(facilityType)}
	}

	p := &models.ServiceProfile{FacilityType: facilityType}

	switch facilityType {
	case models.FacilityHospital:
		subs := map[string][]string{}
		for tab, selections := range subSpecialties {
			if len(selections) > 0 {
				subs[tab] = copyStrings(selections)
			}
		}
		p.Hospital = &models.HospitalDetails{
			CoreSpecialties:        copyStrings(caps.CoreSpecialties),
			SubSpecialties:         subs,
			FacilityFeatures:       copyStrings(caps.FacilityFeatures),
			OperatingDays:          copyStrings(caps.OperatingDays),
			OpeningTime:            caps.OpeningTime,
			ClosingTime:            caps.ClosingTime,
			AdmissionFee:           atoiOrZero(caps.AdmissionFee),
			ConsultationFee:        atoiOrZero(caps.ConsultationFee),
			TotalBedSpace:          atoiOrZero(caps.TotalBedSpace),
			HasPharmacy:            isYes(caps.HasPharmacy),
			HasLaboratory:          isYes(caps.HasLaboratory),
			PharmacyOpenToExternal: isYes(caps.PharmacyOpenToExternal),
			LabOpenToExternal:      isYes(caps.LabOpenToExternal),
			HasOtherBranches:       isYes(caps.HasOtherBranches),
			BranchAddresses:        savedBranchAddresses(caps.HasOtherBranches, caps.BranchAddresses),
			AdditionalInfo:         caps.AdditionalInfo,
		}

	case models.FacilityLaboratory:
		p.Laboratory = &models.LaboratoryDetails{
			AccreditationStatus:  caps.AccreditationStatus,
			HomeSampleCollection: isYes(caps.HomeSampleCollection),
			Covid19Testing:       isYes(caps.Covid19Testing),
			OperatingDays:        copyStrings(caps.OperatingDays),
			OpeningTime:          caps.OpeningTime,
			ClosingTime:          caps.ClosingTime,
			HasOtherBranches:     isYes(caps.HasOtherBranches),
			BranchAddresses:      savedBranchAddresses(caps.HasOtherBranches, caps.BranchAddresses),
			AdditionalInfo:       caps.AdditionalInfo,
		}

	case models.FacilityPharmacy:
		p.Pharmacy = &models.PharmacyDetails{
			LicensedPharmacistOnSite: isYes(caps.LicensedPharmacistOnSite),
			DeliveryAvailable:        isYes(caps.DeliveryAvailable),
			ComplianceDocuments:      copyStrings(caps.ComplianceDocuments),
			AcceptedPayments:         copyStrings(caps.AcceptedPayments),
			OperatingDays:            copyStrings(caps.OperatingDays),
			OpeningTime:              caps.OpeningTime,
			ClosingTime:              caps.ClosingTime,
			HasOtherBranches:         isYes(caps.HasOtherBranches),
			BranchAddresses:          savedBranchAddresses(caps.HasOtherBranches, caps.BranchAddresses),
			AdditionalInfo:           caps.AdditionalInfo,
		}

	case models.FacilityAmbulance:
		p.Ambulance = &models.AmbulanceDetails{
			AmbulanceTypes:      copyStrings(caps.AmbulanceTypes),
			VehicleEquipment:    copyStrings(caps.VehicleEquipment),
			CrewTypes:           copyStrings(caps.CrewTypes),
			AvgResponseTime:     joinResponseTime(caps.AverageResponseMin, caps.AverageResponseSec),
			FleetSize:           atoiOrZero(caps.FleetSize),
			MaxDailyTrips:       atoiOrZero(caps.MaxDailyTrips),
			HasBackupVehicles:   isYes(caps.HasBackupVehicles),
			PricePerTrip:        atoiOrZero(caps.PricePerTrip),
			InsuranceAccepted:   isYes(caps.InsuranceAccepted),
			FederallyRegistered: isYes(caps.FederallyRegistered),
			OperatingDays:       copyStrings(caps.OperatingDays),
			OpeningTime:         caps.OpeningTime,
			ClosingTime:         caps.ClosingTime,
			HasOtherBranches:    isYes(caps.HasOtherBranches),
			BranchAddresses:     savedBranchAddresses(caps.HasOtherBranches, caps.BranchAddresses),
			AdditionalInfo:      caps.AdditionalInfo,
		}

	case models.FacilityInsurance:
		preAuth := []string{}
		if isYes(caps.RequiresPreAuthorization) {
			preAuth = copyStrings(caps.PreAuthTreatments)
		}
		p.Insurance = &models.InsuranceDetails{
			CoveredServices:             copyStrings(caps.CoveredServices),
			Exclusions:                  copyStrings(caps.Exclusions),
			CoversPreExistingConditions: isYes(caps.CoversPreExistingConditions),
			EmergencyCoverage:           isYes(caps.EmergencyCoverage),
			AccreditedHospitals:         copyStrings(caps.AccreditedHospitals),
			OutOfNetworkReimbursement:   isYes(caps.OutOfNetworkReimbursement),
			RequiresPreAuthorization:    isYes(caps.RequiresPreAuthorization),
			PreAuthTreatments:           preAuth,
			WaitingPeriods:              copyWaitingPeriods(caps.WaitingPeriods),
			PricingPlans:                copyStrings(caps.PricingPlans),
			OperatingDays:               copyStrings(caps.OperatingDays),
			OpeningTime:                 caps.OpeningTime,
			ClosingTime:                 caps.ClosingTime,
			HasOtherBranches:            isYes(caps.HasOtherBranches),
			BranchAddresses:             savedBranchAddresses(caps.HasOtherBranches, caps.BranchAddresses),
			AdditionalInfo:              caps.AdditionalInfo,
		}

	case models.FacilitySpecialistClinic:
		p.SpecialistClinic = &models.SpecialistClinicDetails{
			CoreServices:               caps.CoreServices,
			CareType:                   caps.CareType,
			OnSiteDoctor:               isYes(caps.OnSiteDoctor),
			EmergencyResponsePlan:      isYes(caps.EmergencyResponsePlan),
			CriticalCare:               isYes(caps.CriticalCare),
			MultidisciplinaryCare:      caps.MultidisciplinaryCare,
			BedCapacity:                atoiOrZero(caps.BedCapacity),
			HomeServices:               isYes(caps.HomeServices),
			OnlineBooking:              isYes(caps.OnlineBooking),
			Open24Hours:                isYes(caps.Open24Hours),
			DailyPatientLimit:          atoiOrZero(caps.DailyPatientLimit),
			WorksPublicHolidays:        isYes(caps.WorksPublicHolidays),
			InterFacilityCollaboration: isYes(caps.InterFacilityCollaboration),
			HMOPartnership:             isYes(caps.HMOPartnership),
			AcceptsInsurance:           isYes(caps.AcceptsInsurance),
			OperatingDays:              copyStrings(caps.OperatingDays),
			OpeningTime:                caps.OpeningTime,
			ClosingTime:                caps.ClosingTime,
			HasOtherBranches:           isYes(caps.HasOtherBranches),
			BranchAddresses:            savedBranchAddresses(caps.HasOtherBranches, caps.BranchAddresses),
			AdditionalInfo:             caps.AdditionalInfo,
		}
	}

	return p, nil
}
