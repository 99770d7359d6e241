package workouts

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/2beens/trainmetrics/internal/training"
)

// Repo keeps all workout sources in memory. A workout is identified by
// its day and title, saving under an existing identity replaces the
// previous entry of that source.
type Repo struct {
	mutex sync.RWMutex

	analyses     map[string]Analysis
	spreadsheets map[string]SpreadsheetWorkout
	feedbacks    map[string]Feedback
	planned      map[string]PlannedWorkout
	weekPlans    map[string]WeekPlan
}

func NewRepo() *Repo {
	return &Repo{
		analyses:     make(map[string]Analysis),
		spreadsheets: make(map[string]SpreadsheetWorkout),
		feedbacks:    make(map[string]Feedback),
		planned:      make(map[string]PlannedWorkout),
		weekPlans:    make(map[string]WeekPlan),
	}
}

func workoutKey(day, title string) string {
	return day + "||" + title
}

func plannedWorkoutKey(p PlannedWorkout) string {
	return p.Date + "||" + strings.ToLower(p.Type) + "||" + p.Name
}

// dayInRange relies on the lexical order of the date layout. An empty
// bound is open.
func dayInRange(day, from, to string) bool {
	if from != "" && day < from {
		return false
	}
	if to != "" && day > to {
		return false
	}
	return true
}

func (r *Repo) SaveAnalysis(_ context.Context, analysis Analysis) error {
	if analysis.Day == "" || analysis.Title == "" {
		return fmt.Errorf("%w: day %q, title %q", training.ErrMissingIdentity, analysis.Day, analysis.Title)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.analyses[workoutKey(analysis.Day, analysis.Title)] = analysis
	return nil
}

func (r *Repo) SaveSpreadsheet(_ context.Context, workout SpreadsheetWorkout) error {
	if workout.Day == "" || workout.Title == "" {
		return fmt.Errorf("%w: day %q, title %q", training.ErrMissingIdentity, workout.Day, workout.Title)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.spreadsheets[workoutKey(workout.Day, workout.Title)] = workout
	return nil
}

func (r *Repo) SaveFeedback(_ context.Context, feedback Feedback) error {
	if feedback.Day == "" || feedback.Title == "" {
		return fmt.Errorf("%w: day %q, title %q", training.ErrMissingIdentity, feedback.Day, feedback.Title)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.feedbacks[workoutKey(feedback.Day, feedback.Title)] = feedback
	return nil
}

func (r *Repo) GetCombined(_ context.Context, day, title string) (*CombinedWorkout, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	combined, found := r.combineLocked(workoutKey(day, title))
	if !found {
		return nil, ErrWorkoutNotFound
	}
	return &combined, nil
}

func (r *Repo) ListCombined(_ context.Context, from, to string) ([]CombinedWorkout, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	keys := make(map[string]struct{})
	for key, analysis := range r.analyses {
		if dayInRange(analysis.Day, from, to) {
			keys[key] = struct{}{}
		}
	}
	for key, workout := range r.spreadsheets {
		if dayInRange(workout.Day, from, to) {
			keys[key] = struct{}{}
		}
	}
	for key, feedback := range r.feedbacks {
		if dayInRange(feedback.Day, from, to) {
			keys[key] = struct{}{}
		}
	}

	combined := make([]CombinedWorkout, 0, len(keys))
	for key := range keys {
		workout, found := r.combineLocked(key)
		if !found {
			continue
		}
		combined = append(combined, workout)
	}

	sort.Slice(combined, func(i, j int) bool {
		if combined[i].Day != combined[j].Day {
			return combined[i].Day < combined[j].Day
		}
		return combined[i].Title < combined[j].Title
	})

	return combined, nil
}

// DailyRecords returns the stored workouts of the range in the record
// form the weekly aggregation works with.
func (r *Repo) DailyRecords(ctx context.Context, from, to string) ([]training.DailyWorkoutRecord, error) {
	combined, err := r.ListCombined(ctx, from, to)
	if err != nil {
		return nil, err
	}

	records := make([]training.DailyWorkoutRecord, 0, len(combined))
	for _, workout := range combined {
		records = append(records, workout.Record())
	}
	return records, nil
}

func (r *Repo) SavePlanned(_ context.Context, planned []PlannedWorkout) error {
	for _, p := range planned {
		if p.Type == "" {
			return fmt.Errorf("planned workout [%s] without type", p.Name)
		}
		if _, err := time.Parse(training.DateLayout, p.Date); err != nil {
			return fmt.Errorf("invalid planned workout date %q: %w", p.Date, err)
		}
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()
	for _, p := range planned {
		r.planned[plannedWorkoutKey(p)] = p
	}
	return nil
}

func (r *Repo) PlannedForRange(_ context.Context, from, to string) ([]PlannedWorkout, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	planned := make([]PlannedWorkout, 0)
	for _, p := range r.planned {
		if dayInRange(p.Date, from, to) {
			planned = append(planned, p)
		}
	}

	sort.Slice(planned, func(i, j int) bool {
		if planned[i].Date != planned[j].Date {
			return planned[i].Date < planned[j].Date
		}
		if planned[i].Type != planned[j].Type {
			return planned[i].Type < planned[j].Type
		}
		return planned[i].Name < planned[j].Name
	})

	return planned, nil
}

func (r *Repo) SaveWeekPlan(_ context.Context, plan WeekPlan) error {
	if _, err := time.Parse(training.DateLayout, plan.StartDate); err != nil {
		return fmt.Errorf("invalid week plan start date %q: %w", plan.StartDate, err)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.weekPlans[plan.StartDate] = plan
	return nil
}

func (r *Repo) WeekPlan(_ context.Context, startDate string) (*WeekPlan, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	plan, found := r.weekPlans[startDate]
	if !found {
		return nil, ErrWeekPlanNotFound
	}
	return &plan, nil
}

// combineLocked merges all sources stored under the given key, the
// caller holds at least the read lock.
func (r *Repo) combineLocked(key string) (CombinedWorkout, bool) {
	var device *Analysis
	if analysis, found := r.analyses[key]; found {
		device = &analysis
	}
	var spreadsheet *SpreadsheetWorkout
	if workout, found := r.spreadsheets[key]; found {
		spreadsheet = &workout
	}
	var feedback *Feedback
	if fb, found := r.feedbacks[key]; found {
		feedback = &fb
	}

	var day, title string
	switch {
	case device != nil:
		day, title = device.Day, device.Title
	case spreadsheet != nil:
		day, title = spreadsheet.Day, spreadsheet.Title
	case feedback != nil:
		day, title = feedback.Day, feedback.Title
	default:
		return CombinedWorkout{}, false
	}

	return CombineWorkout(day, title, device, spreadsheet, feedback), true
}
