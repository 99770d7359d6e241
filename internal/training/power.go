package training

import "math"

// rollingWindowSize is the number of samples the normalized power
// rolling mean runs over, at one sample per second that is 30s.
const rollingWindowSize = 30

// PowerMetrics is the full power analysis of one recording.
type PowerMetrics struct {
	AveragePower    float64            `json:"average_power"`
	MaxPower        float64            `json:"max_power"`
	NormalizedPower float64            `json:"normalized_power"`
	IntensityFactor float64            `json:"intensity_factor"`
	TSS             float64            `json:"tss"`
	FTPUsed         float64            `json:"ftp_used"`
	FTPEstimated    bool               `json:"ftp_estimated,omitempty"`
	Zones           map[string]float64 `json:"zones"`
}

// ComputePowerMetrics analyzes the power channel of a recording.
// Metrics are nil when the channel has no usable samples.
func ComputePowerMetrics(series SampleSeries, profile Profile) (*PowerMetrics, Assessment) {
	values, dropped := series.powerValues()
	assessment := assessChannel(len(values), dropped)
	if len(values) == 0 {
		return nil, assessment
	}

	avgPower := average(values)
	np := normalizedPower(values)
	if math.Abs(np-avgPower) > 0.5*avgPower {
		// a normalized power that far off the average means the
		// series is too fragmented for the rolling window
		np = avgPower
	}

	ftp := profile.FTP
	estimated := false
	if ftp <= 0 {
		ftp = percentile(values, 95)
		estimated = true
	}

	intensityFactor := np / ftp
	durationHours := series.Duration().Hours()

	return &PowerMetrics{
		AveragePower:    round2(avgPower),
		MaxPower:        round2(maxOf(values)),
		NormalizedPower: round2(np),
		IntensityFactor: round2(intensityFactor),
		TSS:             trainingStressScore(durationHours, np, intensityFactor, ftp),
		FTPUsed:         round2(ftp),
		FTPEstimated:    estimated,
		Zones:           PowerZones(ftp, profile.PowerZoneBounds).Distribution(values),
	}, assessment
}

// normalizedPower is the fourth root of the mean fourth power of a
// 30 sample rolling mean. Series shorter than the window collapse to a
// single whole-series window.
func normalizedPower(values []float64) float64 {
	if len(values) < rollingWindowSize {
		return average(values)
	}

	var windowSum float64
	for i := 0; i < rollingWindowSize; i++ {
		windowSum += values[i]
	}

	rolling := windowSum / rollingWindowSize
	fourthPowerSum := math.Pow(rolling, 4)
	windowCount := 1

	for i := rollingWindowSize; i < len(values); i++ {
		windowSum += values[i] - values[i-rollingWindowSize]
		rolling = windowSum / rollingWindowSize
		fourthPowerSum += math.Pow(rolling, 4)
		windowCount++
	}

	return math.Pow(fourthPowerSum/float64(windowCount), 0.25)
}

func trainingStressScore(durationHours, np, intensityFactor, ftp float64) float64 {
	if ftp <= 0 {
		return 0
	}
	return (durationHours * np * intensityFactor * 100) / (ftp * 3600)
}
