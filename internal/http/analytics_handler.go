package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/leadpulse/leadpulse/internal/domain"
	"github.com/leadpulse/leadpulse/pkg/logger"
)

// AnalyticsHandler serves the dashboard overview report
type AnalyticsHandler struct {
	service domain.AnalyticsService
	logger  logger.Logger
}

func NewAnalyticsHandler(service domain.AnalyticsService, logger logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		logger:  logger,
	}
}

func (h *AnalyticsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/analytics", h.handleOverview)
}

// queryInt parses a positive integer query parameter, returning the
// fallback when absent and an error when malformed.
func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
	return value, nil
}

func (h *AnalyticsHandler) handleOverview(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", 30)
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	overview, err := h.service.GetOverview(r.Context(), days)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to build analytics overview")
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, overview)
}
