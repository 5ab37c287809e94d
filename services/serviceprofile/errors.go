package serviceprofile

import "fmt"

// ErrUnknownFacilityType is returned when a profile names a facility type
// outside the six known variants. Callers must block the save when mapping
// fails with it.
type ErrUnknownFacilityType struct {
	Type string
}

func (e ErrUnknownFacilityType) Error() string {
	return fmt.Sprintf("unknown facility type %q", e.Type)
}

// ErrInvalidTimeRange is returned when the operating hours span less than the
// minimum window.
type ErrInvalidTimeRange struct {
	Opening string
	Closing string
}

func (e ErrInvalidTimeRange) Error() string {
	return fmt.Sprintf("operating hours %s-%s span less than %d minutes", e.Opening, e.Closing, MinOperatingSpanMinutes)
}

// ValidationError is returned for profile payloads that must be fixed by the
// caller before a save can succeed.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return e.Reason
}

// ErrSaveInFlight is returned by SnapshotStore.Commit while a previous commit
// has not finished.
type ErrSaveInFlight struct{}

func (ErrSaveInFlight) Error() string {
	return "a save is already in progress"
}
