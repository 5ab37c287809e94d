package serviceprofile

import (
	"strconv"
	"strings"

	"carelink/models"
)

// AllDayMarker is the operating-days entry meaning round-the-clock service.
// It is mutually exclusive with individual weekdays.
const AllDayMarker = "24/7"

// MinOperatingSpanMinutes is the smallest allowed opening window.
const MinOperatingSpanMinutes = 30

// Weekdays in display order.
var Weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func hasDay(days []string, day string) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}

func removeDay(days []string, day string) []string {
	out := days[:0:0]
	for _, d := range days {
		if d != day {
			out = append(out, d)
		}
	}
	if out == nil {
		out = []string{}
	}
	return out
}

// ToggleOperatingDay flips a day selection on the edit copy, enforcing the
// 24/7 exclusivity rule on every toggle rather than at submit time.
//
// Toggling "24/7" on clears the individual days and pins the opening window
// to 00:00-23:59; toggling any individual day while "24/7" is active drops
// the marker and clears both times so the facility re-enters them.
func ToggleOperatingDay(caps *models.Capabilities, day string) {
	if day == AllDayMarker {
		if hasDay(caps.OperatingDays, AllDayMarker) {
			caps.OperatingDays = []string{}
			caps.OpeningTime = ""
			caps.ClosingTime = ""
			return
		}
		caps.OperatingDays = []string{AllDayMarker}
		caps.OpeningTime = "00:00"
		caps.ClosingTime = "23:59"
		return
	}

	if hasDay(caps.OperatingDays, AllDayMarker) {
		caps.OperatingDays = []string{}
		caps.OpeningTime = ""
		caps.ClosingTime = ""
	}
	if hasDay(caps.OperatingDays, day) {
		caps.OperatingDays = removeDay(caps.OperatingDays, day)
	} else {
		caps.OperatingDays = append(caps.OperatingDays, day)
	}
}

// SetHasOtherBranches updates the branch flag while holding the list
// invariant: "No" resets the list to a single empty row, "Yes" never shrinks
// an existing non-empty list.
func SetHasOtherBranches(caps *models.Capabilities, value string) {
	caps.HasOtherBranches = value
	if !isYes(value) {
		caps.BranchAddresses = []string{""}
		return
	}
	if len(caps.BranchAddresses) == 0 {
		caps.BranchAddresses = []string{""}
	}
}

// parseClock parses "HH:MM" into minutes past midnight.
func parseClock(s string) (int, bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// OperatingSpanMinutes computes the opening-window length. A closing time
// earlier than the opening time is read as spanning midnight.
func OperatingSpanMinutes(opening, closing string) (int, bool) {
	o, ok := parseClock(opening)
	if !ok {
		return 0, false
	}
	c, ok := parseClock(closing)
	if !ok {
		return 0, false
	}
	span := c - o
	if span < 0 {
		span += 24 * 60
	}
	return span, true
}

// TimeRangeValid reports whether the edit copy's operating hours permit a
// save. The rule only applies when both times are set and "24/7" is not
// selected; the window must span at least MinOperatingSpanMinutes. Equal
// opening and closing times are a zero-minute window, not a full day.
func TimeRangeValid(caps models.Capabilities) bool {
	if hasDay(caps.OperatingDays, AllDayMarker) {
		return true
	}
	if caps.OpeningTime == "" || caps.ClosingTime == "" {
		return true
	}
	span, ok := OperatingSpanMinutes(caps.OpeningTime, caps.ClosingTime)
	if !ok {
		return false
	}
	return span >= MinOperatingSpanMinutes
}
