package summary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/trainmetrics/internal/telemetry/metrics"
	"github.com/2beens/trainmetrics/internal/telemetry/tracing"
	"github.com/2beens/trainmetrics/internal/training"
	"github.com/2beens/trainmetrics/internal/workouts"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=summary_test

const weeklySummaryCacheKeyPrefix = "weekly-summary||"

type workoutsProvider interface {
	DailyRecords(ctx context.Context, from, to string) ([]training.DailyWorkoutRecord, error)
	PlannedForRange(ctx context.Context, from, to string) ([]workouts.PlannedWorkout, error)
	WeekPlan(ctx context.Context, startDate string) (*workouts.WeekPlan, error)
}

type wellnessProvider interface {
	DayWellness(ctx context.Context, from, to string) ([]training.DayWellness, error)
}

// WorkoutDetail is one summary workout with the targets of the plan it
// was matched against.
type WorkoutDetail struct {
	training.DailySummaryEntry
	workouts.PlannedComparison
}

// WeeklySummaryResponse is the cached API payload: the aggregated week
// plus the plan side, and the per day problems hit while aggregating.
type WeeklySummaryResponse struct {
	training.WeeklySummary
	DailyWorkouts   []WorkoutDetail           `json:"daily_workouts"`
	PlannedWorkouts []workouts.PlannedWorkout `json:"planned_workouts,omitempty"`
	WeekPlan        *workouts.WeekPlan        `json:"week_plan,omitempty"`
	Issues          []string                  `json:"issues,omitempty"`
}

type Service struct {
	workouts       workoutsProvider
	wellness       wellnessProvider
	redisClient    *redis.Client
	cacheExpire    time.Duration
	metricsManager *metrics.Manager
}

func NewService(
	workoutsRepo workoutsProvider,
	wellnessRepo wellnessProvider,
	redisClient *redis.Client,
	cacheExpire time.Duration,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		workouts:       workoutsRepo,
		wellness:       wellnessRepo,
		redisClient:    redisClient,
		cacheExpire:    cacheExpire,
		metricsManager: metricsManager,
	}
}

// Weekly returns the summary of [from, to], served from the redis cache
// when a fresh build of the same range is there.
func (s *Service) Weekly(ctx context.Context, from, to string) (*WeeklySummaryResponse, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "summary.weekly")
	defer span.End()

	start, err := time.Parse(training.DateLayout, from)
	if err != nil {
		return nil, fmt.Errorf("invalid summary range start %q: %w", from, err)
	}
	end, err := time.Parse(training.DateLayout, to)
	if err != nil {
		return nil, fmt.Errorf("invalid summary range end %q: %w", to, err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("invalid summary range, %s is before %s", to, from)
	}

	cacheKey := weeklySummaryCacheKeyPrefix + from + "||" + to
	cmd := s.redisClient.Get(ctx, cacheKey)
	if err := cmd.Err(); err != nil && !errors.Is(err, redis.Nil) {
		log.Errorf("failed to get cached weekly summary [%s]: %s", cacheKey, err)
	}

	if cachedSummary := cmd.Val(); cachedSummary != "" {
		var summaryResponse WeeklySummaryResponse
		if err = json.Unmarshal([]byte(cachedSummary), &summaryResponse); err == nil {
			span.SetAttributes(attribute.Bool("summary.from-cache", true))
			s.metricsManager.CounterSummaryCacheHits.Inc()
			return &summaryResponse, nil
		}
		log.Errorf("failed to unmarshal cached weekly summary [%s]: %s", cacheKey, err)
		// fall through and rebuild
	}
	span.SetAttributes(attribute.Bool("summary.from-cache", false))

	summaryResponse, err := s.build(ctx, start, end, from, to)
	if err != nil {
		return nil, err
	}

	summaryResponseJson, err := json.Marshal(summaryResponse)
	if err != nil {
		return nil, fmt.Errorf("marshal weekly summary: %w", err)
	}
	if err := s.redisClient.Set(ctx, cacheKey, summaryResponseJson, s.cacheExpire).Err(); err != nil {
		log.Errorf("failed to cache weekly summary [%s]: %s", cacheKey, err)
	} else {
		log.Debugf("weekly summary cached for: %s", cacheKey)
	}

	return summaryResponse, nil
}

func (s *Service) build(
	ctx context.Context,
	start, end time.Time,
	from, to string,
) (*WeeklySummaryResponse, error) {
	buildStart := time.Now()

	records, err := s.workouts.DailyRecords(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("get daily workout records: %w", err)
	}
	wellnessDays, err := s.wellness.DayWellness(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("get wellness days: %w", err)
	}

	// per day problems land in the response, the summary is still built
	weekSummary, issues := training.AggregateWeek(start, end, records, wellnessDays)

	plannedWorkouts, err := s.workouts.PlannedForRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("get planned workouts: %w", err)
	}

	summaryResponse := &WeeklySummaryResponse{
		WeeklySummary:   *weekSummary,
		DailyWorkouts:   make([]WorkoutDetail, 0, len(weekSummary.DailyWorkouts)),
		PlannedWorkouts: plannedWorkouts,
	}
	for _, entry := range weekSummary.DailyWorkouts {
		detail := WorkoutDetail{DailySummaryEntry: entry}
		var duration *float64
		if entry.DurationMinutes > 0 {
			d := entry.DurationMinutes
			duration = &d
		}
		if match := workouts.MatchPlanned(plannedWorkouts, entry.Day, entry.Type, duration); match != nil {
			detail.PlannedComparison = match.Comparison()
		}
		summaryResponse.DailyWorkouts = append(summaryResponse.DailyWorkouts, detail)
	}

	weekPlan, err := s.workouts.WeekPlan(ctx, from)
	if err != nil && !errors.Is(err, workouts.ErrWeekPlanNotFound) {
		return nil, fmt.Errorf("get week plan: %w", err)
	}
	summaryResponse.WeekPlan = weekPlan

	for _, issue := range multierr.Errors(issues) {
		summaryResponse.Issues = append(summaryResponse.Issues, issue.Error())
	}

	s.metricsManager.HistSummaryBuildDuration.Observe(time.Since(buildStart).Seconds())
	s.metricsManager.CounterSummariesGenerated.Inc()

	return summaryResponse, nil
}
