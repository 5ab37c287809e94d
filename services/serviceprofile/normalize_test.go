package serviceprofile

import (
	"errors"
	"testing"

	"carelink/models"
)

func hospitalProfile(d models.HospitalDetails) *models.ServiceProfile {
	return &models.ServiceProfile{FacilityType: models.FacilityHospital, Hospital: &d}
}

func TestNormalizeProfileAllDayPinsWindow(t *testing.T) {
	p := hospitalProfile(models.HospitalDetails{
		OperatingDays: []string{"Mon", AllDayMarker, "Tue"},
		OpeningTime:   "08:00",
		ClosingTime:   "17:00",
	})
	if err := NormalizeProfile(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := p.Hospital
	if len(d.OperatingDays) != 1 || d.OperatingDays[0] != AllDayMarker {
		t.Fatalf("expected only the 24/7 marker, got %v", d.OperatingDays)
	}
	if d.OpeningTime != "00:00" || d.ClosingTime != "23:59" {
		t.Fatalf("expected pinned window, got %s-%s", d.OpeningTime, d.ClosingTime)
	}
}

func TestNormalizeProfileRejectsShortWindow(t *testing.T) {
	p := hospitalProfile(models.HospitalDetails{
		OpeningTime: "09:00",
		ClosingTime: "09:15",
	})
	err := NormalizeProfile(p)
	var rangeErr ErrInvalidTimeRange
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected ErrInvalidTimeRange, got %v", err)
	}
}

func TestNormalizeProfileRejectsMalformedTimes(t *testing.T) {
	p := hospitalProfile(models.HospitalDetails{
		OpeningTime: "9am",
		ClosingTime: "17:00",
	})
	err := NormalizeProfile(p)
	var valErr ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestNormalizeProfileBranchRules(t *testing.T) {
	// No other branches: any stale list is dropped.
	p := hospitalProfile(models.HospitalDetails{
		HasOtherBranches: false,
		BranchAddresses:  []string{"stale entry"},
	})
	if err := NormalizeProfile(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Hospital.BranchAddresses) != 0 {
		t.Fatalf("expected empty branch list, got %v", p.Hospital.BranchAddresses)
	}

	// Claiming branches without naming one is rejected.
	p = hospitalProfile(models.HospitalDetails{
		HasOtherBranches: true,
		BranchAddresses:  []string{"", "   "},
	})
	err := NormalizeProfile(p)
	var valErr ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestNormalizeProfileFillsNilSlices(t *testing.T) {
	p := hospitalProfile(models.HospitalDetails{})
	if err := NormalizeProfile(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Hospital.OperatingDays == nil || p.Hospital.BranchAddresses == nil {
		t.Fatal("expected nil slices replaced with empty ones")
	}
}

func TestNormalizeProfileNoDetailIsNoOp(t *testing.T) {
	p := &models.ServiceProfile{FacilityType: models.FacilityHospital}
	if err := NormalizeProfile(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
