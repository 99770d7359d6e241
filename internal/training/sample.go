package training

import (
	"math"
	"sort"
	"time"
)

// DateLayout is the layout used for workout and wellness day keys.
const DateLayout = "2006-01-02"

// Sample is a single decoded recording sample. Channels not present
// in the recording are nil, a nil channel is a gap, not an error.
type Sample struct {
	Timestamp time.Time `json:"timestamp"`
	Power     *float64  `json:"power,omitempty"`
	HeartRate *float64  `json:"heart_rate,omitempty"`
	Cadence   *float64  `json:"cadence,omitempty"`
}

type SampleSeries []Sample

// Duration is the wall time between the first and the last sample.
func (s SampleSeries) Duration() time.Duration {
	if len(s) < 2 {
		return 0
	}
	return s[len(s)-1].Timestamp.Sub(s[0].Timestamp)
}

func (s SampleSeries) powerValues() ([]float64, int) {
	return s.channelValues(func(smp Sample) *float64 { return smp.Power })
}

func (s SampleSeries) heartRateValues() ([]float64, int) {
	return s.channelValues(func(smp Sample) *float64 { return smp.HeartRate })
}

func (s SampleSeries) cadenceValues() ([]float64, int) {
	return s.channelValues(func(smp Sample) *float64 { return smp.Cadence })
}

// channelValues collects the valid values of one channel. Values must be
// finite and positive, anything else is dropped and counted.
func (s SampleSeries) channelValues(get func(Sample) *float64) (values []float64, dropped int) {
	for _, smp := range s {
		v := get(smp)
		if v == nil {
			continue
		}
		if math.IsNaN(*v) || math.IsInf(*v, 0) || *v <= 0 {
			dropped++
			continue
		}
		values = append(values, *v)
	}
	return values, dropped
}

func average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func maxOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

func minOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// percentile returns the p-th percentile of values using linear
// interpolation between the two nearest ranks.
func percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	return sorted[lo] + (sorted[hi]-sorted[lo])*(rank-float64(lo))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
