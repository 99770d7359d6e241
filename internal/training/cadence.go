package training

// ComputeCadenceStats returns the average and max of the cadence
// channel, ok is false when the channel has no usable samples.
func ComputeCadenceStats(series SampleSeries) (avg, max float64, ok bool) {
	values, _ := series.cadenceValues()
	if len(values) == 0 {
		return 0, 0, false
	}
	return round2(average(values)), round2(maxOf(values)), true
}
