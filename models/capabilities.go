package models

// Capabilities is the flattened, edit-friendly form of a ServiceProfile.
// Every field of every facility type is pre-declared so the editing surface
// never has to branch on missing keys. Booleans carry the legacy tri-state
// string encoding "Yes"/"No"/"" and numeric fields are free-text strings;
// both encodings are confined to this type and translated at the mapper
// boundary. The ambulance response time is split into its minute and second
// sub-fields here and joined back to "MM:SS" on save.
//
// Hospital sub-specialties are tracked as a side channel (tab name to
// selections) next to the Capabilities record, not inside it.
type Capabilities struct {
	// Shared across all facility types.
	OperatingDays    []string `json:"operatingDays"`
	OpeningTime      string   `json:"openingTime"`
	ClosingTime      string   `json:"closingTime"`
	HasOtherBranches string   `json:"hasOtherBranches"`
	BranchAddresses  []string `json:"branchAddresses"`
	AdditionalInfo   string   `json:"additionalInfo"`

	// Hospital.
	CoreSpecialties        []string `json:"coreSpecialties"`
	FacilityFeatures       []string `json:"facilityFeatures"`
	AdmissionFee           string   `json:"admissionFee"`
	ConsultationFee        string   `json:"consultationFee"`
	TotalBedSpace          string   `json:"totalBedSpace"`
	HasPharmacy            string   `json:"hasPharmacy"`
	HasLaboratory          string   `json:"hasLaboratory"`
	PharmacyOpenToExternal string   `json:"pharmacyOpenToExternal"`
	LabOpenToExternal      string   `json:"labOpenToExternal"`

	// Laboratory.
	AccreditationStatus  string `json:"accreditationStatus"`
	HomeSampleCollection string `json:"homeSampleCollection"`
	Covid19Testing       string `json:"covid19Testing"`

	// Pharmacy.
	LicensedPharmacistOnSite string   `json:"licensedPharmacistOnSite"`
	DeliveryAvailable        string   `json:"deliveryAvailable"`
	ComplianceDocuments      []string `json:"complianceDocuments"`
	AcceptedPayments         []string `json:"acceptedPayments"`

	// Ambulance.
	AmbulanceTypes      []string `json:"ambulanceTypes"`
	VehicleEquipment    []string `json:"vehicleEquipment"`
	CrewTypes           []string `json:"crewTypes"`
	AverageResponseMin  string   `json:"averageResponseMin"`
	AverageResponseSec  string   `json:"averageResponseSec"`
	FleetSize           string   `json:"fleetSize"`
	MaxDailyTrips       string   `json:"maxDailyTrips"`
	HasBackupVehicles   string   `json:"hasBackupVehicles"`
	PricePerTrip        string   `json:"pricePerTrip"`
	InsuranceAccepted   string   `json:"insuranceAccepted"`
	FederallyRegistered string   `json:"federallyRegistered"`

	// Insurance.
	CoveredServices             []string        `json:"coveredServices"`
	Exclusions                  []string        `json:"exclusions"`
	CoversPreExistingConditions string          `json:"coversPreExistingConditions"`
	EmergencyCoverage           string          `json:"emergencyCoverage"`
	AccreditedHospitals         []string        `json:"accreditedHospitals"`
	OutOfNetworkReimbursement   string          `json:"outOfNetworkReimbursement"`
	RequiresPreAuthorization    string          `json:"requiresPreAuthorization"`
	PreAuthTreatments           []string        `json:"preAuthTreatments"`
	WaitingPeriods              []WaitingPeriod `json:"waitingPeriods"`
	PricingPlans                []string        `json:"pricingPlans"`

	// Specialist clinic.
	CoreServices               string `json:"coreServices"`
	CareType                   string `json:"careType"`
	OnSiteDoctor               string `json:"onSiteDoctor"`
	EmergencyResponsePlan      string `json:"emergencyResponsePlan"`
	CriticalCare               string `json:"criticalCare"`
	MultidisciplinaryCare      string `json:"multidisciplinaryCare"`
	BedCapacity                string `json:"bedCapacity"`
	HomeServices               string `json:"homeServices"`
	OnlineBooking              string `json:"onlineBooking"`
	Open24Hours                string `json:"open24Hours"`
	DailyPatientLimit          string `json:"dailyPatientLimit"`
	WorksPublicHolidays        string `json:"worksPublicHolidays"`
	InterFacilityCollaboration string `json:"interFacilityCollaboration"`
	HMOPartnership             string `json:"hmoPartnership"`
	AcceptsInsurance           string `json:"acceptsInsurance"`
}
