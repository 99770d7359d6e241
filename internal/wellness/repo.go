package wellness

import (
	"context"
	"sort"
	"sync"

	"github.com/2beens/trainmetrics/internal/training"
)

// Repo keeps daily wellness metrics in memory, one entry per day and
// metric type. A new import of the same day and type replaces the
// previous entry.
type Repo struct {
	mutex   sync.RWMutex
	metrics map[string]DailyMetric
}

func NewRepo() *Repo {
	return &Repo{
		metrics: map[string]DailyMetric{},
	}
}

func metricKey(date, metricType string) string {
	return date + "||" + metricType
}

// dates are in the 2006-01-02 layout, lexical compare orders them;
// empty bounds leave the range open
func dayInRange(day, from, to string) bool {
	if from != "" && day < from {
		return false
	}
	if to != "" && day > to {
		return false
	}
	return true
}

func (r *Repo) SaveMetric(_ context.Context, metric DailyMetric) error {
	if err := metric.Validate(); err != nil {
		return err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.metrics[metricKey(metric.Date, metric.Type)] = metric
	return nil
}

func (r *Repo) ListMetrics(_ context.Context, from, to string) ([]DailyMetric, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var metrics []DailyMetric
	for _, metric := range r.metrics {
		if dayInRange(metric.Date, from, to) {
			metrics = append(metrics, metric)
		}
	}

	sort.Slice(metrics, func(i, j int) bool {
		if metrics[i].Date != metrics[j].Date {
			return metrics[i].Date < metrics[j].Date
		}
		return metrics[i].Type < metrics[j].Type
	})

	return metrics, nil
}

// DayWellness regroups the stored metrics per day into the form the
// weekly aggregation consumes: body battery and the stress qualifier
// split out, everything else keyed by metric type with its daily
// average.
func (r *Repo) DayWellness(_ context.Context, from, to string) ([]training.DayWellness, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	days := map[string]*training.DayWellness{}
	for _, metric := range r.metrics {
		if !dayInRange(metric.Date, from, to) {
			continue
		}

		day, ok := days[metric.Date]
		if !ok {
			day = &training.DayWellness{
				Date:        metric.Date,
				SleepValues: map[string]float64{},
				Stress:      training.StressUnknown,
			}
			days[metric.Date] = day
		}

		switch metric.Type {
		case training.MetricBodyBattery:
			avg := metric.Summary.Avg
			day.BodyBattery = &avg
		case training.MetricStressQualifier:
			if len(metric.Values) > 0 {
				day.Stress = training.ParseStressQualifier(metric.Values[len(metric.Values)-1].Raw)
			}
		default:
			day.SleepValues[metric.Type] = metric.Summary.Avg
		}
	}

	wellnessDays := make([]training.DayWellness, 0, len(days))
	for _, day := range days {
		wellnessDays = append(wellnessDays, *day)
	}
	sort.Slice(wellnessDays, func(i, j int) bool {
		return wellnessDays[i].Date < wellnessDays[j].Date
	})

	return wellnessDays, nil
}
