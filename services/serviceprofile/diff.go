package serviceprofile

import (
	"sort"

	"carelink/models"
)

// Change detection is a pure structural comparison between the edit copy and
// the last server snapshot. Set-valued fields compare order-independently;
// fields whose ordering carries meaning (branch addresses, accredited
// hospitals, pre-auth treatments, waiting periods) compare positionally.

// sameSet compares two string lists ignoring order and duplicates are
// preserved (a repeated entry must appear the same number of times).
func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := copyStrings(a)
	bs := copyStrings(b)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

func sameList(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sameWaitingPeriods(a, b []models.WaitingPeriod) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// SubSpecialtiesEqual compares the side-channel selections. A tab with no
// selections counts the same as an absent tab; selections within a tab are a
// set.
func SubSpecialtiesEqual(a, b map[string][]string) bool {
	for tab, selections := range a {
		if len(selections) > 0 && !sameSet(selections, b[tab]) {
			return false
		}
	}
	for tab, selections := range b {
		if len(selections) > 0 && !sameSet(selections, a[tab]) {
			return false
		}
	}
	return true
}

// CapabilitiesEqual reports structural equality of two edit copies.
func CapabilitiesEqual(a, b models.Capabilities) bool {
	switch {
	case !sameSet(a.OperatingDays, b.OperatingDays),
		a.OpeningTime != b.OpeningTime,
		a.ClosingTime != b.ClosingTime,
		a.HasOtherBranches != b.HasOtherBranches,
		!sameList(a.BranchAddresses, b.BranchAddresses),
		a.AdditionalInfo != b.AdditionalInfo:
		return false

	case !sameSet(a.CoreSpecialties, b.CoreSpecialties),
		!sameSet(a.FacilityFeatures, b.FacilityFeatures),
		a.AdmissionFee != b.AdmissionFee,
		a.ConsultationFee != b.ConsultationFee,
		a.TotalBedSpace != b.TotalBedSpace,
		a.HasPharmacy != b.HasPharmacy,
		a.HasLaboratory != b.HasLaboratory,
		a.PharmacyOpenToExternal != b.PharmacyOpenToExternal,
		a.LabOpenToExternal != b.LabOpenToExternal:
		return false

	case a.AccreditationStatus != b.AccreditationStatus,
		a.HomeSampleCollection != b.HomeSampleCollection,
		a.Covid19Testing != b.Covid19Testing:
		return false

	case a.LicensedPharmacistOnSite != b.LicensedPharmacistOnSite,
		a.DeliveryAvailable != b.DeliveryAvailable,
		!sameSet(a.ComplianceDocuments, b.ComplianceDocuments),
		!sameSet(a.AcceptedPayments, b.AcceptedPayments):
		return false

	case !sameSet(a.AmbulanceTypes, b.AmbulanceTypes),
		!sameSet(a.VehicleEquipment, b.VehicleEquipment),
		!sameSet(a.CrewTypes, b.CrewTypes),
		a.AverageResponseMin != b.AverageResponseMin,
		a.AverageResponseSec != b.AverageResponseSec,
		a.FleetSize != b.FleetSize,
		a.MaxDailyTrips != b.MaxDailyTrips,
		a.HasBackupVehicles != b.HasBackupVehicles,
		a.PricePerTrip != b.PricePerTrip,
		a.InsuranceAccepted != b.InsuranceAccepted,
		a.FederallyRegistered != b.FederallyRegistered:
		return false

	case !sameSet(a.CoveredServices, b.CoveredServices),
		!sameSet(a.Exclusions, b.Exclusions),
		a.CoversPreExistingConditions != b.CoversPreExistingConditions,
		a.EmergencyCoverage != b.EmergencyCoverage,
		!sameList(a.AccreditedHospitals, b.AccreditedHospitals),
		a.OutOfNetworkReimbursement != b.OutOfNetworkReimbursement,
		a.RequiresPreAuthorization != b.RequiresPreAuthorization,
		!sameList(a.PreAuthTreatments, b.PreAuthTreatments),
		!sameWaitingPeriods(a.WaitingPeriods, b.WaitingPeriods),
		!sameSet(a.PricingPlans, b.PricingPlans):
		return false

	case a.CoreServices != b.CoreServices,
		a.CareType != b.CareType,
		a.OnSiteDoctor != b.OnSiteDoctor,
		a.EmergencyResponsePlan != b.EmergencyResponsePlan,
		a.CriticalCare != b.CriticalCare,
		a.MultidisciplinaryCare != b.MultidisciplinaryCare,
		a.BedCapacity != b.BedCapacity,
		a.HomeServices != b.HomeServices,
		a.OnlineBooking != b.OnlineBooking,
		a.Open24Hours != b.Open24Hours,
		a.DailyPatientLimit != b.DailyPatientLimit,
		a.WorksPublicHolidays != b.WorksPublicHolidays,
		a.InterFacilityCollaboration != b.InterFacilityCollaboration,
		a.HMOPartnership != b.HMOPartnership,
		a.AcceptsInsurance != b.AcceptsInsurance:
		return false
	}
	return true
}

// HasChanges decides whether a save should be enabled: something differs from
// the snapshot (in the capabilities record or the sub-specialty side channel)
// and the operating hours are valid. An invalid time range always disables
// the save, so the result gates eligibility, not just dirtiness.
func HasChanges(current, snapshot models.Capabilities, currentSubs, snapshotSubs map[string][]string) bool {
	if !TimeRangeValid(current) {
		return false
	}
	return !CapabilitiesEqual(current, snapshot) || !SubSpecialtiesEqual(currentSubs, snapshotSubs)
}
