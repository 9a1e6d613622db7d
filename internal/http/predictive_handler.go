package http

import (
	"net/http"

	"github.com/leadpulse/leadpulse/internal/domain"
	"github.com/leadpulse/leadpulse/pkg/logger"
)

// PredictiveHandler serves the predictive insights report
type PredictiveHandler struct {
	service domain.AnalyticsService
	logger  logger.Logger
}

func NewPredictiveHandler(service domain.AnalyticsService, logger logger.Logger) *PredictiveHandler {
	return &PredictiveHandler{
		service: service,
		logger:  logger,
	}
}

func (h *PredictiveHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/predictive", h.handleReport)
}

func (h *PredictiveHandler) handleReport(w http.ResponseWriter, r *http.Request) {
	forecastDays, err := queryInt(r, "forecastDays", 7)
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := h.service.GetPredictiveReport(r.Context(), forecastDays)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to build predictive report")
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}
