package training

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateWeek(t *testing.T) {
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 6)

	records := []DailyWorkoutRecord{
		{
			Day: "2025-03-12", Title: "Swim",
			Device: &SourceEntry{DurationMinutes: floatPtr(60)},
		},
		{
			Day: "2025-03-10", Title: "Morning Ride", Type: "Bike",
			Spreadsheet: &SourceEntry{TSS: floatPtr(75), DurationMinutes: floatPtr(90)},
			Device:      &SourceEntry{TSS: floatPtr(81.4), DurationMinutes: floatPtr(92.5)},
		},
		{
			Day: "2025-03-11", Title: "Tempo Run", Type: "Run",
			Manual: &SourceEntry{TSS: floatPtr(0)},
			Device: &SourceEntry{TSS: floatPtr(55), DurationMinutes: floatPtr(45)},
		},
	}

	wellness := []DayWellness{
		{
			Date:        "2025-03-10",
			BodyBattery: floatPtr(60),
			SleepValues: map[string]float64{
				MetricSleepHours:   8,
				MetricDeepSleep:    105.6,
				MetricREMSleep:     100.8,
				MetricHRV:          80,
				MetricRestingPulse: 50,
			},
			Stress: StressCalm,
		},
		{
			Date:        "2025-03-11",
			BodyBattery: floatPtr(82),
		},
	}

	summary, err := AggregateWeek(start, end, records, wellness)
	require.NoError(t, err)
	require.NotNil(t, summary)

	assert.Equal(t, "2025-03-10", summary.StartDate)
	assert.Equal(t, "2025-03-16", summary.EndDate)

	// manual zero TSS on the run shadows the device value
	assert.Equal(t, 75.0, summary.TotalTSS)
	assert.Equal(t, 3.25, summary.TotalTrainingHours)
	assert.Equal(t, 3, summary.SessionsCompleted)
	assert.Equal(t, []string{"Bike", "Run"}, summary.WorkoutTypes)

	require.Len(t, summary.DailyWorkouts, 3)
	assert.Equal(t, "Morning Ride", summary.DailyWorkouts[0].Title)
	assert.Equal(t, 75.0, summary.DailyWorkouts[0].TSS)
	assert.Equal(t, 90.0, summary.DailyWorkouts[0].DurationMinutes)
	assert.Equal(t, "Tempo Run", summary.DailyWorkouts[1].Title)
	assert.Zero(t, summary.DailyWorkouts[1].TSS)
	assert.Equal(t, 45.0, summary.DailyWorkouts[1].DurationMinutes)
	assert.Equal(t, "Swim", summary.DailyWorkouts[2].Title)

	assert.Equal(t, 3.0, summary.DailyEnergy["2025-03-10"])
	assert.Equal(t, 4.1, summary.DailyEnergy["2025-03-11"])
	assert.Equal(t, 3.55, summary.AvgDailyEnergy)

	require.Contains(t, summary.DailySleepQuality, "2025-03-10")
	quality := summary.DailySleepQuality["2025-03-10"]
	assert.Equal(t, 8.0, quality[MetricSleepHours])
	assert.Equal(t, 4.92, quality["sleep_quality_score"])
	assert.Equal(t, 4.92, summary.AvgSleepQuality)
}

func TestAggregateWeek_MissingIdentity(t *testing.T) {
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 6)

	records := []DailyWorkoutRecord{
		{Day: "2025-03-10", Title: "Morning Ride", Manual: &SourceEntry{TSS: floatPtr(60)}},
		{Day: "2025-03-11", Manual: &SourceEntry{TSS: floatPtr(100)}},
	}

	summary, err := AggregateWeek(start, end, records, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingIdentity)

	// the summary is still built from the records that validate
	require.NotNil(t, summary)
	assert.Equal(t, 1, summary.SessionsCompleted)
	assert.Equal(t, 60.0, summary.TotalTSS)
}

func TestAggregateWeek_Empty(t *testing.T) {
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 6)

	summary, err := AggregateWeek(start, end, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, summary)

	assert.Zero(t, summary.TotalTSS)
	assert.Zero(t, summary.TotalTrainingHours)
	assert.Zero(t, summary.SessionsCompleted)
	assert.NotNil(t, summary.WorkoutTypes)
	assert.Empty(t, summary.WorkoutTypes)
	assert.NotNil(t, summary.DailyWorkouts)
	assert.Empty(t, summary.DailyWorkouts)
	assert.NotNil(t, summary.DailyEnergy)
	assert.NotNil(t, summary.DailySleepQuality)
	assert.Zero(t, summary.AvgDailyEnergy)
	assert.Zero(t, summary.AvgSleepQuality)
}
