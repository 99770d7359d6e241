package training

import (
	"sort"
	"time"

	"go.uber.org/multierr"
)

// DayWellness is the wellness side of one day, fed into the weekly
// summary next to the workout records. BodyBattery is the raw device
// scale of 0 to 100, SleepValues maps canonical metric names to their
// daily averages.
type DayWellness struct {
	Date        string
	BodyBattery *float64
	SleepValues map[string]float64
	Stress      StressQualifier
}

// DailySummaryEntry is one workout in the weekly summary with its
// resolved values. Workouts no source supplied a value for contribute
// zero to the totals.
type DailySummaryEntry struct {
	Day             string  `json:"day"`
	Title           string  `json:"title"`
	Type            string  `json:"type,omitempty"`
	TSS             float64 `json:"tss"`
	DurationMinutes float64 `json:"duration_minutes"`
}

// WeeklySummary aggregates one week of training and wellness.
type WeeklySummary struct {
	StartDate          string                        `json:"start_date"`
	EndDate            string                        `json:"end_date"`
	TotalTSS           float64                       `json:"total_tss"`
	TotalTrainingHours float64                       `json:"total_training_hours"`
	SessionsCompleted  int                           `json:"sessions_completed"`
	WorkoutTypes       []string                      `json:"workout_types"`
	DailyWorkouts      []DailySummaryEntry           `json:"daily_workouts"`
	DailyEnergy        map[string]float64            `json:"daily_energy"`
	AvgDailyEnergy     float64                       `json:"avg_daily_energy,omitempty"`
	DailySleepQuality  map[string]map[string]float64 `json:"daily_sleep_quality"`
	AvgSleepQuality    float64                       `json:"avg_sleep_quality,omitempty"`
}

// AggregateWeek builds the weekly summary over the given records and
// wellness days. Records without identity are skipped and reported in
// the combined error, the summary is always returned.
func AggregateWeek(
	start, end time.Time,
	records []DailyWorkoutRecord,
	wellness []DayWellness,
) (*WeeklySummary, error) {
	summary := &WeeklySummary{
		StartDate:         start.Format(DateLayout),
		EndDate:           end.Format(DateLayout),
		WorkoutTypes:      []string{},
		DailyWorkouts:     []DailySummaryEntry{},
		DailyEnergy:       map[string]float64{},
		DailySleepQuality: map[string]map[string]float64{},
	}

	var issues error
	var totalTSS, totalMinutes float64
	typeSet := map[string]bool{}

	for _, record := range records {
		if err := record.Validate(); err != nil {
			issues = multierr.Append(issues, err)
			continue
		}

		entry := DailySummaryEntry{
			Day:   record.Day,
			Title: record.Title,
			Type:  record.Type,
		}
		if tss := record.ResolveTSS(); tss != nil {
			entry.TSS = *tss
		}
		if duration := record.ResolveDurationMinutes(); duration != nil {
			entry.DurationMinutes = *duration
		}

		totalTSS += entry.TSS
		totalMinutes += entry.DurationMinutes
		if record.Type != "" {
			typeSet[record.Type] = true
		}
		summary.DailyWorkouts = append(summary.DailyWorkouts, entry)
	}

	sort.Slice(summary.DailyWorkouts, func(i, j int) bool {
		a, b := summary.DailyWorkouts[i], summary.DailyWorkouts[j]
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		return a.Title < b.Title
	})

	for t := range typeSet {
		summary.WorkoutTypes = append(summary.WorkoutTypes, t)
	}
	sort.Strings(summary.WorkoutTypes)

	summary.TotalTSS = round2(totalTSS)
	summary.TotalTrainingHours = round2(totalMinutes / 60)
	summary.SessionsCompleted = len(summary.DailyWorkouts)

	var energySum, sleepSum float64
	var energyCount, sleepCount int
	for _, day := range wellness {
		if day.Date == "" {
			continue
		}
		if day.BodyBattery != nil {
			energy := round2(*day.BodyBattery * 5 / 100)
			summary.DailyEnergy[day.Date] = energy
			energySum += energy
			energyCount++
		}
		if len(day.SleepValues) > 0 {
			quality := make(map[string]float64, len(day.SleepValues)+1)
			for name, value := range day.SleepValues {
				quality[name] = value
			}
			// days without recorded sleep keep their raw metrics, but are not scored
			if day.SleepValues[MetricSleepHours] > 0 {
				score := SleepNightFromValues(day.SleepValues, day.Stress).Score()
				quality["sleep_quality_score"] = score
				sleepSum += score
				sleepCount++
			}
			summary.DailySleepQuality[day.Date] = quality
		}
	}

	if energyCount > 0 {
		summary.AvgDailyEnergy = round2(energySum / float64(energyCount))
	}
	if sleepCount > 0 {
		summary.AvgSleepQuality = round2(sleepSum / float64(sleepCount))
	}

	return summary, issues
}
