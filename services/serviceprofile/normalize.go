package serviceprofile

import (
	"strings"

	"carelink/models"
)

// hoursFields collects pointers to the shared operating-hours and branch
// fields of whichever detail record is active, so normalization and
// validation run once over every facility type.
type hoursFields struct {
	days             *[]string
	opening          *string
	closing          *string
	hasOtherBranches *bool
	branches         *[]string
}

func activeHoursFields(p *models.ServiceProfile) *hoursFields {
	switch {
	case p.Hospital != nil:
		d := p.Hospital
		return &hoursFields{&d.OperatingDays, &d.OpeningTime, &d.ClosingTime, &d.HasOtherBranches, &d.BranchAddresses}
	case p.Laboratory != nil:
		d := p.Laboratory
		return &hoursFields{&d.OperatingDays, &d.OpeningTime, &d.ClosingTime, &d.HasOtherBranches, &d.BranchAddresses}
	case p.Pharmacy != nil:
		d := p.Pharmacy
		return &hoursFields{&d.OperatingDays, &d.OpeningTime, &d.ClosingTime, &d.HasOtherBranches, &d.BranchAddresses}
	case p.Ambulance != nil:
		d := p.Ambulance
		return &hoursFields{&d.OperatingDays, &d.OpeningTime, &d.ClosingTime, &d.HasOtherBranches, &d.BranchAddresses}
	case p.Insurance != nil:
		d := p.Insurance
		return &hoursFields{&d.OperatingDays, &d.OpeningTime, &d.ClosingTime, &d.HasOtherBranches, &d.BranchAddresses}
	case p.SpecialistClinic != nil:
		d := p.SpecialistClinic
		return &hoursFields{&d.OperatingDays, &d.OpeningTime, &d.ClosingTime, &d.HasOtherBranches, &d.BranchAddresses}
	}
	return nil
}

// NormalizeProfile enforces the shared invariants on the wire form before it
// is stored:
//
//   - the 24/7 marker excludes individual days and pins the opening window;
//   - a too-short opening window is a validation error;
//   - facilities without other branches store an empty branch list, and
//     facilities claiming other branches must name at least one.
func NormalizeProfile(p *models.ServiceProfile) error {
	h := activeHoursFields(p)
	if h == nil {
		return nil
	}

	if hasDay(*h.days, AllDayMarker) {
		*h.days = []string{AllDayMarker}
		*h.opening = "00:00"
		*h.closing = "23:59"
	} else if *h.opening != "" && *h.closing != "" {
		span, ok := OperatingSpanMinutes(*h.opening, *h.closing)
		if !ok {
			return ValidationError{Reason: "operating hours are not valid HH:MM times"}
		}
		if span < MinOperatingSpanMinutes {
			return ErrInvalidTimeRange{Opening: *h.opening, Closing: *h.closing}
		}
	}

	if !*h.hasOtherBranches {
		*h.branches = []string{}
	} else {
		named := false
		for _, b := range *h.branches {
			if strings.TrimSpace(b) != "" {
				named = true
				break
			}
		}
		if !named {
			return ValidationError{Reason: "at least one branch address is required when the facility has other branches"}
		}
	}

	if *h.days == nil {
		*h.days = []string{}
	}
	if *h.branches == nil {
		*h.branches = []string{}
	}
	return nil
}
