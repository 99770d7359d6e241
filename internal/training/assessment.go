package training

type DataState string

const (
	// DataStateComplete: every sample of the channel was usable.
	DataStateComplete DataState = "complete"
	// DataStateRecovered: some samples were dropped, metrics were
	// computed from the remaining ones.
	DataStateRecovered DataState = "recovered"
	// DataStateNoData: the channel had no usable samples at all.
	DataStateNoData DataState = "no_data"
)

// Assessment describes how trustworthy the computed metrics of one
// channel are.
type Assessment struct {
	State          DataState `json:"state"`
	DroppedSamples int       `json:"dropped_samples,omitempty"`
}

func assessChannel(validCount, dropped int) Assessment {
	switch {
	case validCount == 0:
		return Assessment{State: DataStateNoData, DroppedSamples: dropped}
	case dropped > 0:
		return Assessment{State: DataStateRecovered, DroppedSamples: dropped}
	default:
		return Assessment{State: DataStateComplete}
	}
}
