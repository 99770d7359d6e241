package workouts

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/2beens/trainmetrics/internal/training"
)

var (
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrWeekPlanNotFound = errors.New("week plan not found")
)

// Recording is one decoded workout, as pushed by the device app or the
// decoder agent. Samples come ordered by timestamp.
type Recording struct {
	Day     string            `json:"day"`
	Title   string            `json:"title"`
	Samples []training.Sample `json:"samples"`
}

func (rec Recording) Validate() error {
	if rec.Title == "" {
		return errors.New("recording title empty")
	}
	if _, err := time.Parse(training.DateLayout, rec.Day); err != nil {
		return fmt.Errorf("invalid recording day %q: %w", rec.Day, err)
	}
	return nil
}

// Analysis is the device derived view of one workout: the computed
// power and heart rate metrics, plus the assessment of each channel.
type Analysis struct {
	Day             string                     `json:"day"`
	Title           string                     `json:"title"`
	DurationMinutes float64                    `json:"duration_minutes"`
	SampleCount     int                        `json:"sample_count"`
	Power           *training.PowerMetrics     `json:"power,omitempty"`
	PowerState      training.Assessment        `json:"power_state"`
	HeartRate       *training.HeartRateMetrics `json:"heart_rate,omitempty"`
	HeartRateState  training.Assessment        `json:"heart_rate_state"`
	CadenceAverage  float64                    `json:"cadence_average,omitempty"`
	CadenceMax      float64                    `json:"cadence_max,omitempty"`
}

// SpreadsheetWorkout is one row of a training platform CSV export.
// TSS and duration stay nil when the export left them empty, a present
// zero is honored.
type SpreadsheetWorkout struct {
	Day     string `json:"day"`
	Title   string `json:"title"`
	Type    string `json:"type,omitempty"`
	Planned bool   `json:"planned,omitempty"`

	TSS             *float64 `json:"tss,omitempty"`
	DurationMinutes *float64 `json:"duration_minutes,omitempty"`
	Rpe             *float64 `json:"rpe,omitempty"`
	Feeling         *float64 `json:"feeling,omitempty"`
	IntensityFactor float64  `json:"intensity_factor,omitempty"`

	PowerAverage float64            `json:"power_average,omitempty"`
	PowerMax     float64            `json:"power_max,omitempty"`
	PowerZones   map[string]float64 `json:"power_zones,omitempty"`

	HeartRateAverage float64            `json:"heart_rate_average,omitempty"`
	HeartRateMax     float64            `json:"heart_rate_max,omitempty"`
	HeartRateZones   map[string]float64 `json:"heart_rate_zones,omitempty"`

	DistanceMeters  float64 `json:"distance_meters,omitempty"`
	Energy          float64 `json:"energy,omitempty"`
	CadenceAverage  float64 `json:"cadence_average,omitempty"`
	CadenceMax      float64 `json:"cadence_max,omitempty"`
	VelocityAverage float64 `json:"velocity_average,omitempty"`
	VelocityMax     float64 `json:"velocity_max,omitempty"`

	Description     string `json:"description,omitempty"`
	AthleteComments string `json:"athlete_comments,omitempty"`
	CoachComments   string `json:"coach_comments,omitempty"`
}

// Feedback is the post workout entry of the athlete. A TSS or duration
// given here overrides what the other sources reported.
type Feedback struct {
	Day             string   `json:"day"`
	Title           string   `json:"title"`
	Rpe             int      `json:"rpe,omitempty"`
	Feeling         int      `json:"feeling,omitempty"`
	Comments        string   `json:"comments,omitempty"`
	TSS             *float64 `json:"tss,omitempty"`
	DurationMinutes *float64 `json:"duration_minutes,omitempty"`
}

func (f Feedback) Validate() error {
	if f.Title == "" {
		return errors.New("feedback title empty")
	}
	if _, err := time.Parse(training.DateLayout, f.Day); err != nil {
		return fmt.Errorf("invalid feedback day %q: %w", f.Day, err)
	}
	if f.Rpe != 0 && (f.Rpe < 1 || f.Rpe > 10) {
		return errors.New("rpe must be between 1 and 10")
	}
	if f.Feeling != 0 && (f.Feeling < 1 || f.Feeling > 5) {
		return errors.New("feeling must be between 1 and 5")
	}
	return nil
}

// CombinedWorkout is one workout identity with everything each source
// reported about it. TSS and duration are the resolved values, manual
// feedback first, then spreadsheet, then device.
type CombinedWorkout struct {
	Day             string              `json:"day"`
	Title           string              `json:"title"`
	Type            string              `json:"type,omitempty"`
	TSS             *float64            `json:"tss,omitempty"`
	DurationMinutes *float64            `json:"duration_minutes,omitempty"`
	Device          *Analysis           `json:"device,omitempty"`
	Spreadsheet     *SpreadsheetWorkout `json:"spreadsheet,omitempty"`
	Feedback        *Feedback           `json:"feedback,omitempty"`
}

func CombineWorkout(day, title string, device *Analysis, spreadsheet *SpreadsheetWorkout, feedback *Feedback) CombinedWorkout {
	combined := CombinedWorkout{
		Day:         day,
		Title:       title,
		Device:      device,
		Spreadsheet: spreadsheet,
		Feedback:    feedback,
	}
	if spreadsheet != nil {
		combined.Type = spreadsheet.Type
	}

	record := combined.Record()
	combined.TSS = record.ResolveTSS()
	combined.DurationMinutes = record.ResolveDurationMinutes()

	return combined
}

// Record flattens the combined workout into the record form the weekly
// aggregation works with.
func (cw CombinedWorkout) Record() training.DailyWorkoutRecord {
	record := training.DailyWorkoutRecord{
		Day:   cw.Day,
		Title: cw.Title,
		Type:  cw.Type,
	}

	if cw.Feedback != nil && (cw.Feedback.TSS != nil || cw.Feedback.DurationMinutes != nil) {
		record.Manual = &training.SourceEntry{
			TSS:             cw.Feedback.TSS,
			DurationMinutes: cw.Feedback.DurationMinutes,
		}
	}
	if cw.Spreadsheet != nil {
		record.Spreadsheet = &training.SourceEntry{
			TSS:             cw.Spreadsheet.TSS,
			DurationMinutes: cw.Spreadsheet.DurationMinutes,
		}
	}
	if cw.Device != nil {
		deviceEntry := &training.SourceEntry{}
		if cw.Device.Power != nil {
			tss := cw.Device.Power.TSS
			deviceEntry.TSS = &tss
		}
		duration := cw.Device.DurationMinutes
		deviceEntry.DurationMinutes = &duration
		record.Device = deviceEntry
	}

	return record
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
