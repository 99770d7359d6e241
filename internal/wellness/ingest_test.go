package wellness_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/trainmetrics/internal/wellness"
)

const wellnessCsvHeader = "Timestamp,Type,Value"

func TestParseMetricsCSV(t *testing.T) {
	csvData := wellnessCsvHeader + "\n" +
		"2025-03-10 07:02:11,Body Battery,Min : 32 / Max : 71 / Avg : 55\n" +
		"2025-03-10 21:40:00,Body Battery,Min : 20 / Max : 55 / Avg : 40\n" +
		"2025-03-10 07:02:11,Sleep Hours,7.5\n" +
		"2025-03-10 07:02:11,Stress Qualifier,Balanced\n" +
		"2025-03-11T06:58:33,Sleep Hours,6.1\n" +
		",Resting Pulse,48\n" +
		"2025-03-12 07:00:00,,12\n" +
		"yesterday evening,HRV,50\n"

	metrics, skipped, err := wellness.ParseMetricsCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 3, skipped)
	require.Len(t, metrics, 4)

	bodyBattery := metrics[0]
	assert.Equal(t, "2025-03-10", bodyBattery.Date)
	assert.Equal(t, "Body Battery", bodyBattery.Type)
	require.Len(t, bodyBattery.Values, 2)
	assert.Equal(t, "2025-03-10 07:02:11", bodyBattery.Values[0].Timestamp)
	require.NotNil(t, bodyBattery.Values[0].Min)
	assert.Equal(t, 32.0, *bodyBattery.Values[0].Min)
	require.NotNil(t, bodyBattery.Values[1].Avg)
	assert.Equal(t, 40.0, *bodyBattery.Values[1].Avg)
	assert.Equal(t, wellness.MetricSummary{Min: 20, Max: 71, Avg: 47.5}, bodyBattery.Summary)

	sleepHours := metrics[1]
	assert.Equal(t, "2025-03-10", sleepHours.Date)
	assert.Equal(t, "Sleep Hours", sleepHours.Type)
	require.Len(t, sleepHours.Values, 1)
	require.NotNil(t, sleepHours.Values[0].Value)
	assert.Equal(t, 7.5, *sleepHours.Values[0].Value)
	assert.Equal(t, wellness.MetricSummary{Min: 7.5, Max: 7.5, Avg: 7.5}, sleepHours.Summary)

	stress := metrics[2]
	assert.Equal(t, "Stress Qualifier", stress.Type)
	require.Len(t, stress.Values, 1)
	assert.Equal(t, "Balanced", stress.Values[0].Raw)
	assert.Equal(t, wellness.MetricSummary{}, stress.Summary)

	// the T separated timestamp parses the same
	nextDay := metrics[3]
	assert.Equal(t, "2025-03-11", nextDay.Date)
	assert.Equal(t, "Sleep Hours", nextDay.Type)
	require.Len(t, nextDay.Values, 1)
	require.NotNil(t, nextDay.Values[0].Value)
	assert.Equal(t, 6.1, *nextDay.Values[0].Value)
}

func TestParseMetricsCSV_ShortRow(t *testing.T) {
	// a row missing the value column still lands as a zero reading
	csvData := wellnessCsvHeader + "\n" +
		"2025-03-13 08:00:00,Resting Pulse\n"

	metrics, skipped, err := wellness.ParseMetricsCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 0, skipped)
	require.Len(t, metrics, 1)
	require.Len(t, metrics[0].Values, 1)
	require.NotNil(t, metrics[0].Values[0].Value)
	assert.Equal(t, 0.0, *metrics[0].Values[0].Value)
	assert.Equal(t, wellness.MetricSummary{}, metrics[0].Summary)
}

func TestParseMetricsCSV_MissingColumns(t *testing.T) {
	csvData := "Timestamp,Value\n2025-03-10 07:02:11,55\n"
	metrics, _, err := wellness.ParseMetricsCSV(strings.NewReader(csvData))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "column Type missing in csv header")
	assert.Nil(t, metrics)
}

func TestParseMetricsCSV_Empty(t *testing.T) {
	_, _, err := wellness.ParseMetricsCSV(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read csv header")
}
