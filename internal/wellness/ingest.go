package wellness

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/trainmetrics/internal/training"
)

// ParseMetricsCSV reads a wellness export and groups its readings by
// day and metric type. Rows without a type or a usable timestamp are
// skipped and counted.
func ParseMetricsCSV(reader io.Reader) (_ []DailyMetric, skipped int, err error) {
	csvReader := csv.NewReader(reader)
	// exports pad short rows, take what is there
	csvReader.FieldsPerRecord = -1

	header, err := csvReader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("read csv header: %w", err)
	}

	columnIndex := map[string]int{}
	for i, column := range header {
		columnIndex[strings.TrimSpace(column)] = i
	}
	for _, column := range []string{"Timestamp", "Type", "Value"} {
		if _, ok := columnIndex[column]; !ok {
			return nil, 0, fmt.Errorf("column %s missing in csv header", column)
		}
	}

	groups := map[string]*DailyMetric{}
	var order []string
	for {
		fields, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("read csv row: %w", err)
		}

		timestamp := fieldAt(fields, columnIndex["Timestamp"])
		metricType := fieldAt(fields, columnIndex["Type"])
		date := dayOf(timestamp)
		if metricType == "" || date == "" {
			log.Warnf("skipping wellness row, no type or timestamp: %v", fields)
			skipped++
			continue
		}

		key := metricKey(date, metricType)
		group, ok := groups[key]
		if !ok {
			group = &DailyMetric{Date: date, Type: metricType}
			groups[key] = group
			order = append(order, key)
		}

		value := ParseMetricValue(fieldAt(fields, columnIndex["Value"]))
		value.Timestamp = timestamp
		group.Values = append(group.Values, value)
	}

	metrics := make([]DailyMetric, 0, len(order))
	for _, key := range order {
		group := groups[key]
		group.Summary = Summarize(group.Values)
		metrics = append(metrics, *group)
	}

	return metrics, skipped, nil
}

func fieldAt(fields []string, index int) string {
	if index < 0 || index >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[index])
}

// timestamps come as "2006-01-02 15:04:05" or ISO with a T, the date
// part is all that matters here
func dayOf(timestamp string) string {
	parts := strings.Fields(timestamp)
	if len(parts) == 0 {
		return ""
	}
	day := parts[0]
	if idx := strings.IndexByte(day, 'T'); idx > 0 {
		day = day[:idx]
	}
	if _, err := time.Parse(training.DateLayout, day); err != nil {
		return ""
	}
	return day
}
