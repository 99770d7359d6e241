package training

import (
	"errors"
	"fmt"
)

// ErrMissingIdentity marks a record that cannot be aggregated because
// its day or title is missing.
var ErrMissingIdentity = errors.New("workout record without day or title")

// SourceEntry carries the values one source supplied for a workout.
// Nil fields were not supplied, a supplied zero is honored.
type SourceEntry struct {
	TSS             *float64 `json:"tss,omitempty"`
	DurationMinutes *float64 `json:"duration_minutes,omitempty"`
}

// DailyWorkoutRecord is one workout identity with the entries of all
// sources that reported it. Values resolve manual first, then
// spreadsheet, then device.
type DailyWorkoutRecord struct {
	Day   string `json:"day"`
	Title string `json:"title"`
	Type  string `json:"type,omitempty"`

	Manual      *SourceEntry `json:"manual,omitempty"`
	Spreadsheet *SourceEntry `json:"spreadsheet,omitempty"`
	Device      *SourceEntry `json:"device,omitempty"`
}

func (r DailyWorkoutRecord) Validate() error {
	if r.Day == "" || r.Title == "" {
		return fmt.Errorf("%w: day %q, title %q", ErrMissingIdentity, r.Day, r.Title)
	}
	return nil
}

// ResolveTSS returns the TSS of the highest precedence source that
// supplied one, nil when no source did.
func (r DailyWorkoutRecord) ResolveTSS() *float64 {
	return r.resolve(func(e *SourceEntry) *float64 { return e.TSS })
}

// ResolveDurationMinutes returns the duration of the highest precedence
// source that supplied one, nil when no source did.
func (r DailyWorkoutRecord) ResolveDurationMinutes() *float64 {
	return r.resolve(func(e *SourceEntry) *float64 { return e.DurationMinutes })
}

func (r DailyWorkoutRecord) resolve(get func(*SourceEntry) *float64) *float64 {
	for _, entry := range []*SourceEntry{r.Manual, r.Spreadsheet, r.Device} {
		if entry == nil {
			continue
		}
		if v := get(entry); v != nil {
			return v
		}
	}
	return nil
}
