package workouts

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/trainmetrics/internal/training"
)

// ImportResult sums up one spreadsheet import.
type ImportResult struct {
	Imported int `json:"imported"`
	Planned  int `json:"planned"`
	Skipped  int `json:"skipped"`
}

// ParseSpreadsheetCSV reads a training platform CSV export, row order
// is preserved. Rows without a title or day are skipped, rows without
// any recorded totals are marked planned. Workouts repeating the same
// title on one day get a counter suffix to keep their identity unique.
func ParseSpreadsheetCSV(reader io.Reader) (_ []SpreadsheetWorkout, skipped int, err error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1

	header, err := csvReader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("read csv header: %w", err)
	}

	columnIndex := make(map[string]int, len(header))
	for i, column := range header {
		columnIndex[strings.TrimSpace(column)] = i
	}
	for _, required := range []string{"Title", "WorkoutDay"} {
		if _, ok := columnIndex[required]; !ok {
			return nil, 0, fmt.Errorf("column %s missing in csv header", required)
		}
	}

	var workouts []SpreadsheetWorkout
	titleCounts := make(map[string]int)
	for {
		fields, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("read csv row: %w", err)
		}

		row := csvRow{index: columnIndex, fields: fields}
		workout, ok := spreadsheetWorkoutFromRow(row)
		if !ok {
			log.Warnf("skipping csv row without title or day: %v", fields)
			skipped++
			continue
		}

		key := workoutKey(workout.Day, workout.Title)
		titleCounts[key]++
		if count := titleCounts[key]; count > 1 {
			workout.Title = fmt.Sprintf("%s (#%d)", workout.Title, count)
		}

		workouts = append(workouts, workout)
	}

	return workouts, skipped, nil
}

func spreadsheetWorkoutFromRow(row csvRow) (SpreadsheetWorkout, bool) {
	title := row.get("Title")
	day := row.day()
	if title == "" || day == "" {
		return SpreadsheetWorkout{}, false
	}

	// the export files "other" type as a catch-all, the title names
	// those workouts better
	workoutType := row.get("WorkoutType")
	if workoutType == "" || strings.EqualFold(workoutType, "other") {
		workoutType = title
	}

	workout := SpreadsheetWorkout{
		Day:   day,
		Title: title,
		Type:  workoutType,

		TSS:             row.floatPtr("TSS"),
		Rpe:             row.floatPtr("Rpe"),
		Feeling:         row.floatPtr("Feeling"),
		IntensityFactor: row.float("IF"),

		DistanceMeters:  row.float("DistanceInMeters"),
		Energy:          row.float("Energy"),
		CadenceAverage:  row.float("CadenceAverage"),
		CadenceMax:      row.float("CadenceMax"),
		VelocityAverage: row.float("VelocityAverage"),
		VelocityMax:     row.float("VelocityMax"),

		Description:     row.get("WorkoutDescription"),
		AthleteComments: row.get("AthleteComments"),
		CoachComments:   row.get("CoachComments"),
	}

	if hours := row.floatPtr("TimeTotalInHours"); hours != nil {
		minutes := round2(*hours * 60)
		workout.DurationMinutes = &minutes
	}

	powerAverage := row.floatPtr("PowerAverage")
	if powerAverage != nil {
		workout.PowerAverage = *powerAverage
		workout.PowerMax = row.float("PowerMax")
		workout.PowerZones = zonePercentages(row, "PWRZone%dMinutes", training.PowerZoneNames())
	}

	heartRateAverage := row.floatPtr("HeartRateAverage")
	if heartRateAverage != nil {
		workout.HeartRateAverage = *heartRateAverage
		workout.HeartRateMax = row.float("HeartRateMax")
		workout.HeartRateZones = zonePercentages(row, "HRZone%dMinutes", training.HRZoneNames())
	}

	workout.Planned = workout.TSS == nil && workout.DurationMinutes == nil &&
		powerAverage == nil && heartRateAverage == nil

	return workout, true
}

// zonePercentages converts the per zone minutes columns into the share
// of total zone time. With all zone times at zero the raw minutes are
// kept.
func zonePercentages(row csvRow, columnPattern string, zoneNames [training.ZoneCount]string) map[string]float64 {
	var minutes [training.ZoneCount]float64
	total := 0.0
	found := false
	for i := 0; i < training.ZoneCount; i++ {
		if v := row.floatPtr(fmt.Sprintf(columnPattern, i+1)); v != nil {
			minutes[i] = *v
			total += *v
			found = true
		}
	}
	if !found {
		return nil
	}

	zones := make(map[string]float64, training.ZoneCount)
	for i, name := range zoneNames {
		if total > 0 {
			zones[name] = round2(minutes[i] / total * 100)
		} else {
			zones[name] = minutes[i]
		}
	}
	return zones
}

type csvRow struct {
	index  map[string]int
	fields []string
}

func (r csvRow) get(column string) string {
	i, ok := r.index[column]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[i])
}

// float returns the parsed column value, zero when missing or not a
// number.
func (r csvRow) float(column string) float64 {
	if v := r.floatPtr(column); v != nil {
		return *v
	}
	return 0
}

func (r csvRow) floatPtr(column string) *float64 {
	raw := r.get(column)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// day returns the workout day with any time of day part cut off.
func (r csvRow) day() string {
	raw := r.get("WorkoutDay")
	if raw == "" {
		return ""
	}
	day := strings.Fields(raw)[0]
	if _, err := time.Parse(training.DateLayout, day); err != nil {
		return ""
	}
	return day
}
