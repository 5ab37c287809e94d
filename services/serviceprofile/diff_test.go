package serviceprofile

import (
	"testing"

	"carelink/models"
)

func TestCapabilitiesEqualSetFieldsIgnoreOrder(t *testing.T) {
	a := DefaultCapabilities()
	b := DefaultCapabilities()
	a.CoreSpecialties = []string{"Cardiology", "Oncology"}
	b.CoreSpecialties = []string{"Oncology", "Cardiology"}
	a.OperatingDays = []string{"Tue", "Mon"}
	b.OperatingDays = []string{"Mon", "Tue"}

	if !CapabilitiesEqual(a, b) {
		t.Fatal("reordered set fields must compare equal")
	}

	b.CoreSpecialties = []string{"Oncology", "Oncology"}
	if CapabilitiesEqual(a, b) {
		t.Fatal("duplicate counts must be respected")
	}
}

func TestCapabilitiesEqualOrderedFields(t *testing.T) {
	a := DefaultCapabilities()
	b := DefaultCapabilities()
	a.HasOtherBranches = "Yes"
	b.HasOtherBranches = "Yes"
	a.BranchAddresses = []string{"first", "second"}
	b.BranchAddresses = []string{"second", "first"}

	if CapabilitiesEqual(a, b) {
		t.Fatal("branch address order carries meaning")
	}

	a.BranchAddresses = b.BranchAddresses
	a.AccreditedHospitals = []string{"A", "B"}
	b.AccreditedHospitals = []string{"B", "A"}
	if CapabilitiesEqual(a, b) {
		t.Fatal("accredited hospital order carries meaning")
	}
}

func TestCapabilitiesEqualWaitingPeriodRemoval(t *testing.T) {
	a := DefaultCapabilities()
	b := DefaultCapabilities()
	a.WaitingPeriods = []models.WaitingPeriod{
		{Service: "Maternity", Duration: "9", Unit: "months"},
		{Service: "Dental", Duration: "3", Unit: "months"},
	}
	b.WaitingPeriods = []models.WaitingPeriod{
		{Service: "Maternity", Duration: "9", Unit: "months"},
	}

	if CapabilitiesEqual(a, b) {
		t.Fatal("removing a waiting period must register as a change")
	}
}

func TestSubSpecialtiesEqual(t *testing.T) {
	tests := []struct {
		name string
		a    map[string][]string
		b    map[string][]string
		want bool
	}{
		{"both empty", map[string][]string{}, map[string][]string{}, true},
		{
			"empty tab equals absent tab",
			map[string][]string{"Cardiology": {}},
			map[string][]string{},
			true,
		},
		{
			"selections are a set",
			map[string][]string{"Cardiology": {"A", "B"}},
			map[string][]string{"Cardiology": {"B", "A"}},
			true,
		},
		{
			"extra selection detected",
			map[string][]string{"Cardiology": {"A"}},
			map[string][]string{"Cardiology": {"A", "B"}},
			false,
		},
		{
			"tab present only on one side",
			map[string][]string{},
			map[string][]string{"Oncology": {"Paediatric"}},
			false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SubSpecialtiesEqual(tc.a, tc.b); got != tc.want {
				t.Fatalf("SubSpecialtiesEqual = %v, want %v", got, tc.want)
			}
			// Symmetry must hold for every pair.
			if got := SubSpecialtiesEqual(tc.b, tc.a); got != tc.want {
				t.Fatalf("SubSpecialtiesEqual reversed = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestHasChangesGatedByTimeValidity(t *testing.T) {
	snapshot := DefaultCapabilities()
	current := DefaultCapabilities()
	current.AdditionalInfo = "now with a cafe"

	subs := DefaultSubSpecialties()
	if !HasChanges(current, snapshot, subs, subs) {
		t.Fatal("a dirty edit copy with valid hours must enable the save")
	}

	// The same dirty copy with a sub-minimum window must not.
	current.OpeningTime = "09:00"
	current.ClosingTime = "09:10"
	if HasChanges(current, snapshot, subs, subs) {
		t.Fatal("an invalid time range must disable the save even when dirty")
	}
}

func TestHasChangesSubSpecialtiesOnly(t *testing.T) {
	caps := DefaultCapabilities()
	snapshotSubs := map[string][]string{"Cardiology": {"Interventional"}}
	currentSubs := map[string][]string{"Cardiology": {"Interventional", "Electrophysiology"}}

	if !HasChanges(caps, caps, currentSubs, snapshotSubs) {
		t.Fatal("a side-channel-only edit must enable the save")
	}
}

func TestHasChangesCleanCopy(t *testing.T) {
	caps := DefaultCapabilities()
	subs := DefaultSubSpecialties()
	if HasChanges(caps, caps, subs, subs) {
		t.Fatal("identical copies must not report changes")
	}
}
