package wellness

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/trainmetrics/internal/training"
)

// MetricValue is one reading of a daily wellness metric. Combined
// readings like "Min : 32 / Max : 71 / Avg : 55" carry their
// components, plain readings only the value. Raw keeps the original
// string, qualifier metrics are not numeric at all.
type MetricValue struct {
	Timestamp string   `json:"timestamp,omitempty"`
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
	Avg       *float64 `json:"avg,omitempty"`
	Value     *float64 `json:"value,omitempty"`
	Raw       string   `json:"raw,omitempty"`
}

// ParseMetricValue reads one value cell of a wellness export. An
// unparsable reading counts as zero instead of failing the whole
// import.
func ParseMetricValue(raw string) MetricValue {
	if strings.Contains(raw, "/") {
		parsed := map[string]float64{}
		for _, part := range strings.Split(raw, "/") {
			keyAndValue := strings.SplitN(part, ":", 2)
			if len(keyAndValue) != 2 {
				return fallbackMetricValue(raw)
			}
			component, err := strconv.ParseFloat(strings.TrimSpace(keyAndValue[1]), 64)
			if err != nil {
				return fallbackMetricValue(raw)
			}
			parsed[strings.ToLower(strings.TrimSpace(keyAndValue[0]))] = component
		}
		return MetricValue{
			Min: componentPtr(parsed, "min"),
			Max: componentPtr(parsed, "max"),
			Avg: componentPtr(parsed, "avg"),
			Raw: raw,
		}
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fallbackMetricValue(raw)
	}
	return MetricValue{Value: &value, Raw: raw}
}

func fallbackMetricValue(raw string) MetricValue {
	zero := 0.0
	return MetricValue{Value: &zero, Raw: raw}
}

func componentPtr(parsed map[string]float64, key string) *float64 {
	if component, ok := parsed[key]; ok {
		return &component
	}
	return nil
}

func (v MetricValue) minOrValue() float64 {
	if v.Min != nil {
		return *v.Min
	}
	if v.Value != nil {
		return *v.Value
	}
	return 0
}

func (v MetricValue) maxOrValue() float64 {
	if v.Max != nil {
		return *v.Max
	}
	if v.Value != nil {
		return *v.Value
	}
	return 0
}

func (v MetricValue) avgOrValue() float64 {
	if v.Avg != nil {
		return *v.Avg
	}
	if v.Value != nil {
		return *v.Value
	}
	return 0
}

// MetricSummary condenses the readings of one day and metric type.
// Readings missing a component fall back to their plain value.
type MetricSummary struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
}

func Summarize(values []MetricValue) MetricSummary {
	if len(values) == 0 {
		return MetricSummary{}
	}

	summary := MetricSummary{
		Min: values[0].minOrValue(),
		Max: values[0].maxOrValue(),
	}
	var avgSum float64
	for _, value := range values {
		if v := value.minOrValue(); v < summary.Min {
			summary.Min = v
		}
		if v := value.maxOrValue(); v > summary.Max {
			summary.Max = v
		}
		avgSum += value.avgOrValue()
	}
	summary.Avg = round2(avgSum / float64(len(values)))

	return summary
}

// DailyMetric is every reading of one metric type on one day, with the
// min, max and avg roll up.
type DailyMetric struct {
	Date    string        `json:"date"`
	Type    string        `json:"type"`
	Values  []MetricValue `json:"values"`
	Summary MetricSummary `json:"summary"`
}

func (m DailyMetric) Validate() error {
	if m.Type == "" {
		return errors.New("metric type empty")
	}
	if _, err := time.Parse(training.DateLayout, m.Date); err != nil {
		return fmt.Errorf("invalid metric date %q: %w", m.Date, err)
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
