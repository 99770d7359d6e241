package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/trainmetrics/internal/auth"
	"github.com/2beens/trainmetrics/internal/telemetry/metrics"
	"github.com/2beens/trainmetrics/internal/telemetry/tracing"
	"github.com/2beens/trainmetrics/internal/training"
	"github.com/2beens/trainmetrics/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	SaveAnalysis(ctx context.Context, analysis Analysis) error
	SaveSpreadsheet(ctx context.Context, workout SpreadsheetWorkout) error
	SaveFeedback(ctx context.Context, feedback Feedback) error
	GetCombined(ctx context.Context, day, title string) (*CombinedWorkout, error)
	ListCombined(ctx context.Context, from, to string) ([]CombinedWorkout, error)
	SavePlanned(ctx context.Context, planned []PlannedWorkout) error
	PlannedForRange(ctx context.Context, from, to string) ([]PlannedWorkout, error)
	SaveWeekPlan(ctx context.Context, plan WeekPlan) error
}

type ListResponse struct {
	Workouts []CombinedWorkout `json:"workouts"`
	Total    int               `json:"total"`
}

type PlannedListResponse struct {
	Planned []PlannedWorkout `json:"planned"`
	Total   int              `json:"total"`
}

type PlannedUploadResponse struct {
	Saved int `json:"saved"`
}

type Handler struct {
	repo           workoutsRepo
	analyzer       *Analyzer
	loginChecker   auth.Checker
	metricsManager *metrics.Manager
}

func NewHandler(repo workoutsRepo, analyzer *Analyzer, loginChecker auth.Checker, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		analyzer:       analyzer,
		loginChecker:   loginChecker,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/workouts", handler.HandleList).Methods("GET").Name("workouts-list")
	router.HandleFunc("/workouts/new", handler.HandleUpload).Methods("POST", "OPTIONS").Name("workouts-new")
	router.HandleFunc("/workouts/sync", handler.HandleSync).Methods("POST").Name("workouts-sync")
	router.HandleFunc("/workouts/import", handler.HandleImport).Methods("POST").Name("workouts-import")
	router.HandleFunc("/workouts/feedback", handler.HandleFeedback).Methods("POST", "OPTIONS").Name("workouts-feedback")
	router.HandleFunc("/workouts/view/{day}/{title}", handler.HandleView).Methods("GET").Name("workouts-view")

	planRouter := router.PathPrefix("/plan").Subrouter()
	planRouter.HandleFunc("/workouts", handler.HandlePlannedList).Methods("GET").Name("plan-workouts-list")
	planRouter.HandleFunc("/workouts", handler.HandlePlannedUpload).Methods("POST", "OPTIONS").Name("plan-workouts-new")
	planRouter.HandleFunc("/week", handler.HandleWeekPlan).Methods("POST", "OPTIONS").Name("plan-week")
}

// HandleUpload stores one decoded recording pushed by the device app.
func (handler *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.new")
	defer span.End()

	handler.addRecording(ctx, w, r)
}

// HandleSync stores one decoded recording pushed by the decoder agent.
func (handler *Handler) HandleSync(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.sync")
	defer span.End()

	handler.addRecording(ctx, w, r)
}

func (handler *Handler) addRecording(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var recording Recording
	if err := json.NewDecoder(r.Body).Decode(&recording); err != nil {
		log.Tracef("new workout recording, unmarshal json params: %s", err)
		http.Error(w, "add workout failed", http.StatusBadRequest)
		return
	}

	analysis, err := handler.analyzer.Analyze(ctx, recording)
	if err != nil {
		log.Errorf("failed to analyze workout recording [%s] [%s]: %s", recording.Day, recording.Title, err)
		http.Error(w, "error, invalid workout recording", http.StatusBadRequest)
		return
	}

	if err := handler.repo.SaveAnalysis(ctx, *analysis); err != nil {
		log.Errorf("failed to save workout analysis [%s] [%s]: %s", analysis.Day, analysis.Title, err)
		http.Error(w, "error, failed to save workout", http.StatusInternalServerError)
		return
	}

	analysisJson, err := json.Marshal(analysis)
	if err != nil {
		log.Errorf("failed to marshal workout analysis: %s", err)
		http.Error(w, "error, failed to save workout", http.StatusInternalServerError)
		return
	}

	log.Debugf("new workout recording added: %s [%s]", analysis.Day, analysis.Title)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, analysisJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if !validDateParam(from) || !validDateParam(to) {
		http.Error(w, "error, invalid date range", http.StatusBadRequest)
		return
	}

	workouts, err := handler.repo.ListCombined(ctx, from, to)
	if err != nil {
		log.Errorf("list workouts error: %s", err)
		http.Error(w, "failed to get workouts", http.StatusInternalServerError)
		return
	}

	listResponseJson, err := json.Marshal(ListResponse{
		Workouts: workouts,
		Total:    len(workouts),
	})
	if err != nil {
		log.Errorf("marshal workouts error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listResponseJson, http.StatusOK)
}

func (handler *Handler) HandleView(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.view")
	defer span.End()

	vars := mux.Vars(r)
	day := vars["day"]
	if day == "" {
		http.Error(w, "error, day empty", http.StatusBadRequest)
		return
	}
	title := vars["title"]
	if title == "" {
		http.Error(w, "error, title empty", http.StatusBadRequest)
		return
	}

	combined, err := handler.repo.GetCombined(ctx, day, title)
	if err != nil && !errors.Is(err, ErrWorkoutNotFound) {
		log.Errorf("failed to get workout [%s] [%s]: %s", day, title, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	} else if errors.Is(err, ErrWorkoutNotFound) {
		log.Debugf("workout [%s] [%s] not found", day, title)
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	}

	// share links are public, athlete feedback stays private
	if combined.Feedback != nil && !handler.viewerIsLogged(ctx, r) {
		redacted := *combined
		redacted.Feedback = nil
		combined = &redacted
	}

	combinedJson, err := json.Marshal(combined)
	if err != nil {
		log.Errorf("failed to marshal workout: %s", err)
		http.Error(w, "failed to marshal workout", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, combinedJson, http.StatusOK)
}

func (handler *Handler) viewerIsLogged(ctx context.Context, r *http.Request) bool {
	authToken := r.Header.Get("X-SERJ-TOKEN")
	if authToken == "" {
		return false
	}
	isLogged, err := handler.loginChecker.IsLogged(ctx, authToken)
	if err != nil {
		log.Errorf("workout view, login check: %s", err)
		return false
	}
	return isLogged
}

func (handler *Handler) HandleFeedback(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.feedback")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var feedback Feedback
	if err := json.NewDecoder(r.Body).Decode(&feedback); err != nil {
		log.Tracef("new workout feedback, unmarshal json params: %s", err)
		http.Error(w, "add feedback failed", http.StatusBadRequest)
		return
	}

	if err := feedback.Validate(); err != nil {
		http.Error(w, fmt.Sprintf("error, %s", err), http.StatusBadRequest)
		return
	}

	if err := handler.repo.SaveFeedback(ctx, feedback); err != nil {
		log.Errorf("failed to save workout feedback [%s] [%s]: %s", feedback.Day, feedback.Title, err)
		http.Error(w, "error, failed to save feedback", http.StatusInternalServerError)
		return
	}

	feedbackJson, err := json.Marshal(feedback)
	if err != nil {
		log.Errorf("failed to marshal workout feedback: %s", err)
		http.Error(w, "error, failed to save feedback", http.StatusInternalServerError)
		return
	}

	log.Debugf("new workout feedback added: %s [%s]", feedback.Day, feedback.Title)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, feedbackJson, http.StatusCreated)
}

// HandleImport takes a training platform CSV export and stores its
// workouts. Rows without recorded totals become planned workouts.
func (handler *Handler) HandleImport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.import")
	defer span.End()

	file, _, err := r.FormFile("file")
	if err != nil {
		log.Tracef("workouts import, get form file: %s", err)
		http.Error(w, "error, workouts file missing", http.StatusBadRequest)
		return
	}
	defer func() { _ = file.Close() }()

	workouts, skipped, err := ParseSpreadsheetCSV(file)
	if err != nil {
		log.Errorf("failed to parse workouts import: %s", err)
		http.Error(w, "error, invalid workouts file", http.StatusBadRequest)
		return
	}

	imported := 0
	var planned []PlannedWorkout
	for _, workout := range workouts {
		if workout.Planned {
			planned = append(planned, PlannedWorkout{
				Date: workout.Day,
				Type: workout.Type,
				Name: workout.Title,
			})
			continue
		}
		if err := handler.repo.SaveSpreadsheet(ctx, workout); err != nil {
			log.Errorf("failed to save imported workout [%s] [%s]: %s", workout.Day, workout.Title, err)
			skipped++
			continue
		}
		imported++
	}

	if len(planned) > 0 {
		if err := handler.repo.SavePlanned(ctx, planned); err != nil {
			log.Errorf("failed to save planned workouts from import: %s", err)
			http.Error(w, "error, failed to save planned workouts", http.StatusInternalServerError)
			return
		}
	}

	handler.metricsManager.CounterWorkoutsImported.Add(float64(imported))

	importResultJson, err := json.Marshal(ImportResult{
		Imported: imported,
		Planned:  len(planned),
		Skipped:  skipped,
	})
	if err != nil {
		log.Errorf("failed to marshal import result: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.Debugf("workouts import done: %s", importResultJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, importResultJson, http.StatusOK)
}

func (handler *Handler) HandlePlannedUpload(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.plan-new")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var planned []PlannedWorkout
	if err := json.NewDecoder(r.Body).Decode(&planned); err != nil {
		log.Tracef("new planned workouts, unmarshal json params: %s", err)
		http.Error(w, "add planned workouts failed", http.StatusBadRequest)
		return
	}

	if len(planned) == 0 {
		http.Error(w, "error, no planned workouts given", http.StatusBadRequest)
		return
	}

	if err := handler.repo.SavePlanned(ctx, planned); err != nil {
		log.Errorf("failed to save planned workouts: %s", err)
		http.Error(w, "error, invalid planned workouts", http.StatusBadRequest)
		return
	}

	uploadResponseJson, err := json.Marshal(PlannedUploadResponse{Saved: len(planned)})
	if err != nil {
		log.Errorf("failed to marshal planned upload response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, uploadResponseJson, http.StatusCreated)
}

func (handler *Handler) HandlePlannedList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.plan-list")
	defer span.End()

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if !validDateParam(from) || !validDateParam(to) {
		http.Error(w, "error, invalid date range", http.StatusBadRequest)
		return
	}

	planned, err := handler.repo.PlannedForRange(ctx, from, to)
	if err != nil {
		log.Errorf("list planned workouts error: %s", err)
		http.Error(w, "failed to get planned workouts", http.StatusInternalServerError)
		return
	}

	plannedListJson, err := json.Marshal(PlannedListResponse{
		Planned: planned,
		Total:   len(planned),
	})
	if err != nil {
		log.Errorf("marshal planned workouts error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, plannedListJson, http.StatusOK)
}

func (handler *Handler) HandleWeekPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.plan-week")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var plan WeekPlan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		log.Tracef("new week plan, unmarshal json params: %s", err)
		http.Error(w, "add week plan failed", http.StatusBadRequest)
		return
	}

	if err := handler.repo.SaveWeekPlan(ctx, plan); err != nil {
		log.Errorf("failed to save week plan [%s]: %s", plan.StartDate, err)
		http.Error(w, "error, invalid week plan", http.StatusBadRequest)
		return
	}

	planJson, err := json.Marshal(plan)
	if err != nil {
		log.Errorf("failed to marshal week plan: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.Debugf("new week plan added: %s", plan.StartDate)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, planJson, http.StatusCreated)
}

func validDateParam(v string) bool {
	if v == "" {
		return true
	}
	_, err := time.Parse(training.DateLayout, v)
	return err == nil
}
