package http

import (
	"net/http"

	"github.com/leadpulse/leadpulse/internal/domain"
	"github.com/leadpulse/leadpulse/pkg/logger"
)

// FunnelHandler serves the funnel analysis report
type FunnelHandler struct {
	service domain.AnalyticsService
	logger  logger.Logger
}

func NewFunnelHandler(service domain.AnalyticsService, logger logger.Logger) *FunnelHandler {
	return &FunnelHandler{
		service: service,
		logger:  logger,
	}
}

func (h *FunnelHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/funnel", h.handleReport)
}

func (h *FunnelHandler) handleReport(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", 30)
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := h.service.GetFunnelReport(r.Context(), days)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to build funnel report")
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}
