package wellness

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/trainmetrics/internal/telemetry/metrics"
	"github.com/2beens/trainmetrics/internal/telemetry/tracing"
	"github.com/2beens/trainmetrics/internal/training"
	"github.com/2beens/trainmetrics/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=wellness_mocks_test.go -package=wellness_test

type wellnessRepo interface {
	SaveMetric(ctx context.Context, metric DailyMetric) error
	ListMetrics(ctx context.Context, from, to string) ([]DailyMetric, error)
}

type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

type ListResponse struct {
	Metrics []DailyMetric `json:"metrics"`
	Total   int           `json:"total"`
}

type Handler struct {
	repo           wellnessRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo wellnessRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/wellness", handler.HandleList).Methods("GET").Name("wellness-list")
	router.HandleFunc("/wellness/import", handler.HandleImport).Methods("POST").Name("wellness-import")
}

// HandleImport takes a watch wellness CSV export and stores its daily
// metrics.
func (handler *Handler) HandleImport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.wellness.import")
	defer span.End()

	file, _, err := r.FormFile("file")
	if err != nil {
		log.Tracef("wellness import, get form file: %s", err)
		http.Error(w, "error, wellness file missing", http.StatusBadRequest)
		return
	}
	defer func() { _ = file.Close() }()

	dailyMetrics, skipped, err := ParseMetricsCSV(file)
	if err != nil {
		log.Errorf("failed to parse wellness import: %s", err)
		http.Error(w, "error, invalid wellness file", http.StatusBadRequest)
		return
	}

	imported := 0
	for _, metric := range dailyMetrics {
		if err := handler.repo.SaveMetric(ctx, metric); err != nil {
			log.Errorf("failed to save wellness metric [%s] [%s]: %s", metric.Date, metric.Type, err)
			skipped++
			continue
		}
		imported++
	}

	handler.metricsManager.CounterWellnessImported.Add(float64(imported))

	importResultJson, err := json.Marshal(ImportResult{
		Imported: imported,
		Skipped:  skipped,
	})
	if err != nil {
		log.Errorf("failed to marshal wellness import result: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.Debugf("wellness import done: %s", importResultJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, importResultJson, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.wellness.list")
	defer span.End()

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if !validDateParam(from) || !validDateParam(to) {
		http.Error(w, "error, invalid date range", http.StatusBadRequest)
		return
	}

	dailyMetrics, err := handler.repo.ListMetrics(ctx, from, to)
	if err != nil {
		log.Errorf("list wellness metrics error: %s", err)
		http.Error(w, "failed to get wellness metrics", http.StatusInternalServerError)
		return
	}

	listResponseJson, err := json.Marshal(ListResponse{
		Metrics: dailyMetrics,
		Total:   len(dailyMetrics),
	})
	if err != nil {
		log.Errorf("marshal wellness metrics error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listResponseJson, http.StatusOK)
}

func validDateParam(v string) bool {
	if v == "" {
		return true
	}
	_, err := time.Parse(training.DateLayout, v)
	return err == nil
}
