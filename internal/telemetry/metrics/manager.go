package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests            *prometheus.CounterVec
	CounterWorkoutsProcessed   prometheus.Counter
	CounterRecordingsIngested  prometheus.Counter
	CounterSamplesDiscarded    prometheus.Counter
	CounterWorkoutsImported    prometheus.Counter
	CounterWellnessImported    prometheus.Counter
	CounterSummariesGenerated  prometheus.Counter
	CounterSummaryCacheHits    prometheus.Counter
	CounterAnalysisCacheHits   prometheus.Counter
	CounterHandleRequestPanic  prometheus.Counter
	CounterRateLimitedRequests prometheus.Counter

	// gauges
	GaugeRequests   prometheus.Gauge
	GaugeLifeSignal prometheus.Gauge

	// histograms
	HistSummaryBuildDuration prometheus.Histogram
	HistogramRequestDuration *prometheus.HistogramVec
}

func NewTestManager() *Manager {
	return NewManager("backend", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("backend", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterWorkoutsProcessed := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workouts_processed",
		Help:      "The total number of analyzed workout recordings",
	})
	counterRecordingsIngested := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "recordings_ingested",
		Help:      "The total number of recordings received over the unix socket",
	})
	counterSamplesDiscarded := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "samples_discarded",
		Help:      "The total number of malformed recording samples dropped",
	})
	counterWorkoutsImported := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workouts_imported",
		Help:      "The total number of workouts imported from spreadsheet exports",
	})
	counterWellnessImported := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "wellness_values_imported",
		Help:      "The total number of imported wellness metric values",
	})
	counterSummariesGenerated := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "summaries_generated",
		Help:      "The total number of weekly summaries built",
	})
	counterSummaryCacheHits := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "summary_cache_hits",
		Help:      "The total number of weekly summaries served from cache",
	})
	counterAnalysisCacheHits := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "analysis_cache_hits",
		Help:      "The total number of workout analyses served from cache",
	})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})
	counterRateLimitedRequests := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rate_limited_requests",
		Help:      "The total number of rate limited requests",
	})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the service is alive",
	})

	histSummaryBuildDuration := factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Buckets: []float64{
				.0001, .0005, .001, .005, .01,
				.05, .1, .5, 1, 5, 10,
			},
			Name: "summary_build_duration_seconds",
			Help: "Total duration of building a single weekly summary in seconds",
		},
	)

	histogramRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Histogram of response time for requests in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"route", "method", "status_code"})

	return &Manager{
		CounterRequests:            counterRequests,
		CounterWorkoutsProcessed:   counterWorkoutsProcessed,
		CounterRecordingsIngested:  counterRecordingsIngested,
		CounterSamplesDiscarded:    counterSamplesDiscarded,
		CounterWorkoutsImported:    counterWorkoutsImported,
		CounterWellnessImported:    counterWellnessImported,
		CounterSummariesGenerated:  counterSummariesGenerated,
		CounterSummaryCacheHits:    counterSummaryCacheHits,
		CounterAnalysisCacheHits:   counterAnalysisCacheHits,
		CounterHandleRequestPanic:  counterHandleRequestPanic,
		CounterRateLimitedRequests: counterRateLimitedRequests,
		GaugeRequests:              gaugeRequests,
		GaugeLifeSignal:            gaugeLifeSignal,
		HistSummaryBuildDuration:   histSummaryBuildDuration,
		HistogramRequestDuration:   histogramRequestDuration,
	}
}
