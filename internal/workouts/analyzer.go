package workouts

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/trainmetrics/internal/telemetry/metrics"
	"github.com/2beens/trainmetrics/internal/telemetry/tracing"
	"github.com/2beens/trainmetrics/internal/training"
)

const (
	oneHour             = 60 * 60
	analysisCacheExpire = oneHour * 1 // freecache expire is in seconds
)

// Analyzer computes the device derived metrics of pushed recordings.
// Finished analyses are cached, a re-push of an unchanged recording is
// served from the cache.
type Analyzer struct {
	profile        training.Profile
	cache          *freecache.Cache
	metricsManager *metrics.Manager
}

func NewAnalyzer(profile training.Profile, metricsManager *metrics.Manager) *Analyzer {
	megabyte := 1024 * 1024
	cacheSize := 50 * megabyte

	return &Analyzer{
		profile:        profile,
		cache:          freecache.NewCache(cacheSize),
		metricsManager: metricsManager,
	}
}

func (a *Analyzer) Analyze(ctx context.Context, recording Recording) (analysis *Analysis, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "analyzer.workouts.analyze")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err = recording.Validate(); err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("%s::%s::%d", recording.Day, recording.Title, len(recording.Samples))
	if cachedAnalysisBytes, err := a.cache.Get([]byte(cacheKey)); err == nil {
		log.Tracef("found analysis for %s [%s] in cache", recording.Day, recording.Title)
		cachedAnalysis := &Analysis{}
		if err = json.Unmarshal(cachedAnalysisBytes, cachedAnalysis); err == nil {
			a.metricsManager.CounterAnalysisCacheHits.Inc()
			return cachedAnalysis, nil
		}
		log.Errorf("failed to unmarshal cached analysis for %s [%s]: %s", recording.Day, recording.Title, err)
	}

	series := training.SampleSeries(recording.Samples)
	power, powerState := training.ComputePowerMetrics(series, a.profile)
	heartRate, heartRateState := training.ComputeHeartRateMetrics(series, a.profile)

	analysis = &Analysis{
		Day:             recording.Day,
		Title:           recording.Title,
		DurationMinutes: round2(series.Duration().Minutes()),
		SampleCount:     len(recording.Samples),
		Power:           power,
		PowerState:      powerState,
		HeartRate:       heartRate,
		HeartRateState:  heartRateState,
	}
	if cadenceAvg, cadenceMax, ok := training.ComputeCadenceStats(series); ok {
		analysis.CadenceAverage = cadenceAvg
		analysis.CadenceMax = cadenceMax
	}

	a.metricsManager.CounterWorkoutsProcessed.Inc()
	if dropped := powerState.DroppedSamples + heartRateState.DroppedSamples; dropped > 0 {
		a.metricsManager.CounterSamplesDiscarded.Add(float64(dropped))
	}

	analysisBytes, err := json.Marshal(analysis)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis: %w", err)
	}
	if cacheErr := a.cache.Set([]byte(cacheKey), analysisBytes, analysisCacheExpire); cacheErr != nil {
		log.Errorf("failed to write analysis cache for %s [%s]: %s", recording.Day, recording.Title, cacheErr)
	}

	return analysis, nil
}
