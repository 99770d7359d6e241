package workouts

import (
	"fmt"
	"math"
	"strings"
)

// PlannedWorkout is one workout proposed by the weekly training plan.
type PlannedWorkout struct {
	Date            string `json:"date"`
	Type            string `json:"type"`
	Name            string `json:"name,omitempty"`
	DurationMinutes *int   `json:"planned_duration,omitempty"`
	TSSMin          int    `json:"planned_tss_min,omitempty"`
	TSSMax          int    `json:"planned_tss_max,omitempty"`
	RPEMin          int    `json:"target_rpe_min,omitempty"`
	RPEMax          int    `json:"target_rpe_max,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// WeekPlan carries the training load targets of one week.
type WeekPlan struct {
	WeekNumber int    `json:"week_number"`
	StartDate  string `json:"start_date"`
	TSSMin     int    `json:"planned_tss_min"`
	TSSMax     int    `json:"planned_tss_max"`
	Notes      string `json:"notes,omitempty"`
}

// PlannedComparison decorates a completed workout with the targets of
// the plan it was matched against.
type PlannedComparison struct {
	PlannedTSS      string `json:"planned_tss,omitempty"`
	PlannedDuration int    `json:"planned_duration,omitempty"`
	PlannedRPE      string `json:"planned_rpe,omitempty"`
}

// Comparison formats the plan targets the way clients display them.
func (p PlannedWorkout) Comparison() PlannedComparison {
	comparison := PlannedComparison{}
	if p.TSSMax > 0 {
		comparison.PlannedTSS = fmt.Sprintf("%d-%d", p.TSSMin, p.TSSMax)
	}
	if p.DurationMinutes != nil {
		comparison.PlannedDuration = *p.DurationMinutes
	}
	if p.RPEMax > 0 {
		comparison.PlannedRPE = fmt.Sprintf("%d-%d", p.RPEMin, p.RPEMax)
	}
	return comparison
}

// MatchPlanned finds the planned workout a completed one fulfills:
// same date and type, and among those the smallest duration difference
// within a tolerance of max(5 min, 15% of the planned duration). When
// no candidate is within tolerance the first date and type match is
// taken, a workout cut way short still links to its plan.
func MatchPlanned(planned []PlannedWorkout, day, workoutType string, durationMinutes *float64) *PlannedWorkout {
	var first, best *PlannedWorkout
	bestDiff := math.MaxFloat64

	for i := range planned {
		candidate := &planned[i]
		if candidate.Date != day || !strings.EqualFold(candidate.Type, workoutType) {
			continue
		}
		if first == nil {
			first = candidate
		}
		if durationMinutes == nil || candidate.DurationMinutes == nil {
			continue
		}

		plannedDuration := float64(*candidate.DurationMinutes)
		diff := math.Abs(*durationMinutes - plannedDuration)
		tolerance := math.Max(5, plannedDuration*0.15)
		if diff <= tolerance && diff < bestDiff {
			best = candidate
			bestDiff = diff
		}
	}

	if best == nil {
		best = first
	}
	if best == nil {
		return nil
	}

	matched := *best
	return &matched
}
