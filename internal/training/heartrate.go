package training

// HeartRateMetrics is the heart rate analysis of one recording.
type HeartRateMetrics struct {
	AverageHR float64            `json:"average_hr"`
	MaxHR     float64            `json:"max_hr"`
	MinHR     float64            `json:"min_hr"`
	Zones     map[string]float64 `json:"zones"`
}

// ComputeHeartRateMetrics analyzes the heart rate channel of a
// recording. When the profile has no max heart rate configured, the
// series max serves as the zone reference. Metrics are nil when the
// channel has no usable samples.
func ComputeHeartRateMetrics(series SampleSeries, profile Profile) (*HeartRateMetrics, Assessment) {
	values, dropped := series.heartRateValues()
	assessment := assessChannel(len(values), dropped)
	if len(values) == 0 {
		return nil, assessment
	}

	maxObserved := maxOf(values)
	reference := profile.MaxHeartRate
	if reference <= 0 {
		reference = maxObserved
	}

	return &HeartRateMetrics{
		AverageHR: round2(average(values)),
		MaxHR:     round2(maxObserved),
		MinHR:     round2(minOf(values)),
		Zones:     HRZones(reference, profile.HRZoneBounds).Distribution(values),
	}, assessment
}
