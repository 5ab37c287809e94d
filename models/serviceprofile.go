package models

import (
	"time"
)

// FacilityType discriminates the per-type detail record carried by a
// ServiceProfile. Exactly one detail record is populated per profile.
type FacilityType string

const (
	FacilityHospital         FacilityType = "Hospital"
	FacilityLaboratory       FacilityType = "Laboratory"
	FacilityPharmacy         FacilityType = "Pharmacy"
	FacilityAmbulance        FacilityType = "Ambulance"
	FacilityInsurance        FacilityType = "Insurance"
	FacilitySpecialistClinic FacilityType = "SpecialistClinic"
)

// KnownFacilityTypes lists every supported facility type.
func KnownFacilityTypes() []FacilityType {
	return []FacilityType{
		FacilityHospital,
		FacilityLaboratory,
		FacilityPharmacy,
		FacilityAmbulance,
		FacilityInsurance,
		FacilitySpecialistClinic,
	}
}

// Known reports whether t is one of the supported facility types.
func (t FacilityType) Known() bool {
	switch t {
	case FacilityHospital, FacilityLaboratory, FacilityPharmacy,
		FacilityAmbulance, FacilityInsurance, FacilitySpecialistClinic:
		return true
	}
	return false
}

// WaitingPeriod is one row of an insurer's waiting-period table.
// Unit is one of "days", "weeks" or "months".
type WaitingPeriod struct {
	Service  string `bson:"service" json:"service"`
	Duration string `bson:"duration" json:"duration"`
	Unit     string `bson:"unit" json:"unit"`
}

// HospitalDetails describes a hospital's services and capacity.
type HospitalDetails struct {
	CoreSpecialties        []string            `bson:"coreSpecialties" json:"coreSpecialties"`
	SubSpecialties         map[string][]string `bson:"subSpecialties,omitempty" json:"subSpecialties,omitempty"`
	FacilityFeatures       []string            `bson:"facilityFeatures" json:"facilityFeatures"`
	OperatingDays          []string            `bson:"operatingDays" json:"operatingDays"`
	OpeningTime            string              `bson:"openingTime" json:"openingTime"`
	ClosingTime            string              `bson:"closingTime" json:"closingTime"`
	AdmissionFee           int                 `bson:"admissionFee" json:"admissionFee"`
	ConsultationFee        int                 `bson:"consultationFee" json:"consultationFee"`
	TotalBedSpace          int                 `bson:"totalBedSpace" json:"totalBedSpace"`
	HasPharmacy            bool                `bson:"hasPharmacy" json:"hasPharmacy"`
	HasLaboratory          bool                `bson:"hasLaboratory" json:"hasLaboratory"`
	PharmacyOpenToExternal bool                `bson:"pharmacyOpenToExternal" json:"pharmacyOpenToExternal"`
	LabOpenToExternal      bool                `bson:"labOpenToExternal" json:"labOpenToExternal"`
	HasOtherBranches       bool                `bson:"hasOtherBranches" json:"hasOtherBranches"`
	BranchAddresses        []string            `bson:"branchAddresses" json:"branchAddresses"`
	AdditionalInfo         string              `bson:"additionalInfo" json:"additionalInfo"`
}

// LaboratoryDetails describes a diagnostic laboratory.
type LaboratoryDetails struct {
	AccreditationStatus  string   `bson:"accreditationStatus" json:"accreditationStatus"` // Approved | Rejected | Awaiting
	HomeSampleCollection bool     `bson:"homeSampleCollection" json:"homeSampleCollection"`
	Covid19Testing       bool     `bson:"covid19Testing" json:"covid19Testing"`
	OperatingDays        []string `bson:"operatingDays" json:"operatingDays"`
	OpeningTime          string   `bson:"openingTime" json:"openingTime"`
	ClosingTime          string   `bson:"closingTime" json:"closingTime"`
	HasOtherBranches     bool     `bson:"hasOtherBranches" json:"hasOtherBranches"`
	BranchAddresses      []string `bson:"branchAddresses" json:"branchAddresses"`
	AdditionalInfo       string   `bson:"additionalInfo" json:"additionalInfo"`
}

// PharmacyDetails describes a pharmacy.
type PharmacyDetails struct {
	LicensedPharmacistOnSite bool     `bson:"licensedPharmacistOnSite" json:"licensedPharmacistOnSite"`
	DeliveryAvailable        bool     `bson:"deliveryAvailable" json:"deliveryAvailable"`
	ComplianceDocuments      []string `bson:"complianceDocuments" json:"complianceDocuments"` // PCN License, NAFDAC Cert, CAC
	AcceptedPayments         []string `bson:"acceptedPayments" json:"acceptedPayments"`       // NHIS, HMO, Insurance cards, Discounts
	OperatingDays            []string `bson:"operatingDays" json:"operatingDays"`
	OpeningTime              string   `bson:"openingTime" json:"openingTime"`
	ClosingTime              string   `bson:"closingTime" json:"closingTime"`
	HasOtherBranches         bool     `bson:"hasOtherBranches" json:"hasOtherBranches"`
	BranchAddresses          []string `bson:"branchAddresses" json:"branchAddresses"`
	AdditionalInfo           string   `bson:"additionalInfo" json:"additionalInfo"`
}

// AmbulanceDetails describes an ambulance service. AvgResponseTime is
// transmitted as a single "MM:SS" string.
type AmbulanceDetails struct {
	AmbulanceTypes      []string `bson:"ambulanceTypes" json:"ambulanceTypes"`
	VehicleEquipment    []string `bson:"vehicleEquipment" json:"vehicleEquipment"`
	CrewTypes           []string `bson:"crewTypes" json:"crewTypes"`
	AvgResponseTime     string   `bson:"avgResponseTime" json:"avgResponseTime"`
	FleetSize           int      `bson:"fleetSize" json:"fleetSize"`
	MaxDailyTrips       int      `bson:"maxDailyTrips" json:"maxDailyTrips"`
	HasBackupVehicles   bool     `bson:"hasBackupVehicles" json:"hasBackupVehicles"`
	PricePerTrip        int      `bson:"pricePerTrip" json:"pricePerTrip"`
	InsuranceAccepted   bool     `bson:"insuranceAccepted" json:"insuranceAccepted"`
	FederallyRegistered bool     `bson:"federallyRegistered" json:"federallyRegistered"`
	OperatingDays       []string `bson:"operatingDays" json:"operatingDays"`
	OpeningTime         string   `bson:"openingTime" json:"openingTime"`
	ClosingTime         string   `bson:"closingTime" json:"closingTime"`
	HasOtherBranches    bool     `bson:"hasOtherBranches" json:"hasOtherBranches"`
	BranchAddresses     []string `bson:"branchAddresses" json:"branchAddresses"`
	AdditionalInfo      string   `bson:"additionalInfo" json:"additionalInfo"`
}

// InsuranceDetails describes a health insurer / HMO.
type InsuranceDetails struct {
	CoveredServices             []string        `bson:"coveredServices" json:"coveredServices"`
	Exclusions                  []string        `bson:"exclusions" json:"exclusions"`
	CoversPreExistingConditions bool            `bson:"coversPreExistingConditions" json:"coversPreExistingConditions"`
	EmergencyCoverage           bool            `bson:"emergencyCoverage" json:"emergencyCoverage"`
	AccreditedHospitals         []string        `bson:"accreditedHospitals" json:"accreditedHospitals"`
	OutOfNetworkReimbursement   bool            `bson:"outOfNetworkReimbursement" json:"outOfNetworkReimbursement"`
	RequiresPreAuthorization    bool            `bson:"requiresPreAuthorization" json:"requiresPreAuthorization"`
	PreAuthTreatments           []string        `bson:"preAuthTreatments" json:"preAuthTreatments"`
	WaitingPeriods              []WaitingPeriod `bson:"waitingPeriods" json:"waitingPeriods"`
	PricingPlans                []string        `bson:"pricingPlans" json:"pricingPlans"`
	OperatingDays               []string        `bson:"operatingDays" json:"operatingDays"`
	OpeningTime                 string          `bson:"openingTime" json:"openingTime"`
	ClosingTime                 string          `bson:"closingTime" json:"closingTime"`
	HasOtherBranches            bool            `bson:"hasOtherBranches" json:"hasOtherBranches"`
	BranchAddresses             []string        `bson:"branchAddresses" json:"branchAddresses"`
	AdditionalInfo              string          `bson:"additionalInfo" json:"additionalInfo"`
}

// SpecialistClinicDetails describes a specialist clinic. Open24Hours gates
// whether the opening/closing time fields apply.
type SpecialistClinicDetails struct {
	CoreServices               string   `bson:"coreServices" json:"coreServices"`
	CareType                   string   `bson:"careType" json:"careType"` // Inpatient | Outpatient | Both
	OnSiteDoctor               bool     `bson:"onSiteDoctor" json:"onSiteDoctor"`
	EmergencyResponsePlan      bool     `bson:"emergencyResponsePlan" json:"emergencyResponsePlan"`
	CriticalCare               bool     `bson:"criticalCare" json:"criticalCare"`
	MultidisciplinaryCare      string   `bson:"multidisciplinaryCare" json:"multidisciplinaryCare"`
	BedCapacity                int      `bson:"bedCapacity" json:"bedCapacity"`
	HomeServices               bool     `bson:"homeServices" json:"homeServices"`
	OnlineBooking              bool     `bson:"onlineBooking" json:"onlineBooking"`
	Open24Hours                bool     `bson:"open24Hours" json:"open24Hours"`
	DailyPatientLimit          int      `bson:"dailyPatientLimit" json:"dailyPatientLimit"`
	WorksPublicHolidays        bool     `bson:"worksPublicHolidays" json:"worksPublicHolidays"`
	InterFacilityCollaboration bool     `bson:"interFacilityCollaboration" json:"interFacilityCollaboration"`
	HMOPartnership             bool     `bson:"hmoPartnership" json:"hmoPartnership"`
	AcceptsInsurance           bool     `bson:"acceptsInsurance" json:"acceptsInsurance"`
	OperatingDays              []string `bson:"operatingDays" json:"operatingDays"`
	OpeningTime                string   `bson:"openingTime" json:"openingTime"`
	ClosingTime                string   `bson:"closingTime" json:"closingTime"`
	HasOtherBranches           bool     `bson:"hasOtherBranches" json:"hasOtherBranches"`
	BranchAddresses            []string `bson:"branchAddresses" json:"branchAddresses"`
	AdditionalInfo             string   `bson:"additionalInfo" json:"additionalInfo"`
}

// ServiceProfile is the canonical wire/storage form of a facility's services
// and capacity. Only the detail record matching FacilityType is present; the
// other five pointers stay nil.
type ServiceProfile struct {
	FacilityID       string                   `bson:"facilityId" json:"facilityId"`
	FacilityType     FacilityType             `bson:"facilityType" json:"facilityType"`
	Hospital         *HospitalDetails         `bson:"hospitalDetails,omitempty" json:"hospitalDetails,omitempty"`
	Laboratory       *LaboratoryDetails       `bson:"laboratoryDetails,omitempty" json:"laboratoryDetails,omitempty"`
	Pharmacy         *PharmacyDetails         `bson:"pharmacyDetails,omitempty" json:"pharmacyDetails,omitempty"`
	Ambulance        *AmbulanceDetails        `bson:"ambulanceDetails,omitempty" json:"ambulanceDetails,omitempty"`
	Insurance        *InsuranceDetails        `bson:"insuranceDetails,omitempty" json:"insuranceDetails,omitempty"`
	SpecialistClinic *SpecialistClinicDetails `bson:"specialistClinicDetails,omitempty" json:"specialistClinicDetails,omitempty"`
	CreatedAt        time.Time                `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time                `bson:"updatedAt" json:"updatedAt"`
}

// HasDetail reports whether any detail record is populated.
func (p *ServiceProfile) HasDetail() bool {
	return p.Hospital != nil || p.Laboratory != nil || p.Pharmacy != nil ||
		p.Ambulance != nil || p.Insurance != nil || p.SpecialistClinic != nil
}

// ServiceProfileRequest is the body of PUT /api/services/:facilityId.
// UpdateType is "full" or "partial".
type ServiceProfileRequest struct {
	FacilityID       string                   `json:"facilityId" binding:"required"`
	FacilityType     FacilityType             `json:"facilityType" binding:"required"`
	UpdateType       string                   `json:"type"`
	Hospital         *HospitalDetails         `json:"hospitalDetails,omitempty"`
	Laboratory       *LaboratoryDetails       `json:"laboratoryDetails,omitempty"`
	Pharmacy         *PharmacyDetails         `json:"pharmacyDetails,omitempty"`
	Ambulance        *AmbulanceDetails        `json:"ambulanceDetails,omitempty"`
	Insurance        *InsuranceDetails        `json:"insuranceDetails,omitempty"`
	SpecialistClinic *SpecialistClinicDetails `json:"specialistClinicDetails,omitempty"`
}

// Profile assembles a ServiceProfile from the request, carrying over only the
// detail record matching the declared facility type.
func (r ServiceProfileRequest) Profile() *ServiceProfile {
	p := &ServiceProfile{
		FacilityID:   r.FacilityID,
		FacilityType: r.FacilityType,
	}
	switch r.FacilityType {
	case FacilityHospital:
		p.Hospital = r.Hospital
	case FacilityLaboratory:
		p.Laboratory = r.Laboratory
	case FacilityPharmacy:
		p.Pharmacy = r.Pharmacy
	case FacilityAmbulance:
		p.Ambulance = r.Ambulance
	case FacilityInsurance:
		p.Insurance = r.Insurance
	case FacilitySpecialistClinic:
		p.SpecialistClinic = r.SpecialistClinic
	}
	return p
}
