package summary

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/2beens/trainmetrics/internal/telemetry/tracing"
	"github.com/2beens/trainmetrics/internal/training"
	"github.com/2beens/trainmetrics/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/summary/weekly", handler.HandleWeekly).Methods(http.MethodGet, http.MethodOptions).Name("summary-weekly")
}

func (handler *Handler) HandleWeekly(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.summary.weekly")
	defer span.End()

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if !validSummaryDate(from) || !validSummaryDate(to) {
		http.Error(w, "error, invalid date range", http.StatusBadRequest)
		return
	}

	summaryResponse, err := handler.service.Weekly(ctx, from, to)
	if err != nil {
		log.Errorf("weekly summary [%s - %s] error: %s", from, to, err)
		http.Error(w, "failed to build weekly summary", http.StatusInternalServerError)
		return
	}

	summaryResponseJson, err := json.Marshal(summaryResponse)
	if err != nil {
		log.Errorf("marshal weekly summary error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, summaryResponseJson, http.StatusOK)
}

// the summary range is closed on both sides, open ends make no week
func validSummaryDate(v string) bool {
	if v == "" {
		return false
	}
	_, err := time.Parse(training.DateLayout, v)
	return err == nil
}
