package http

import (
	"net/http"

	"github.com/leadpulse/leadpulse/internal/domain"
	"github.com/leadpulse/leadpulse/pkg/logger"
)

// CampaignHandler serves the campaign performance report
type CampaignHandler struct {
	service domain.AnalyticsService
	logger  logger.Logger
}

func NewCampaignHandler(service domain.AnalyticsService, logger logger.Logger) *CampaignHandler {
	return &CampaignHandler{
		service: service,
		logger:  logger,
	}
}

func (h *CampaignHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/campaigns", h.handleReport)
}

func (h *CampaignHandler) handleReport(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", 30)
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := h.service.GetCampaignReport(r.Context(), days)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to build campaign report")
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}
