package http

import (
	"io"
	"net/http"

	"github.com/leadpulse/leadpulse/internal/domain"
	"github.com/leadpulse/leadpulse/pkg/logger"
)

// WebhookHandler receives lead submissions pushed by external forms
type WebhookHandler struct {
	service domain.IntakeService
	logger  logger.Logger
}

func NewWebhookHandler(service domain.IntakeService, logger logger.Logger) *WebhookHandler {
	return &WebhookHandler{
		service: service,
		logger:  logger,
	}
}

func (h *WebhookHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/webhook/lead", h.handleLead)
}

func (h *WebhookHandler) handleLead(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	if err := h.service.VerifySignature(payload, r.Header); err != nil {
		h.logger.WithField("error", err.Error()).Warn("Webhook signature verification failed")
		WriteJSONError(w, "Invalid webhook signature", http.StatusUnauthorized)
		return
	}

	result, err := h.service.ProcessSubmission(r.Context(), payload)
	if err != nil {
		if !domain.IsValidationError(err) {
			h.logger.WithField("error", err.Error()).Error("Failed to process lead submission")
		}
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"leadId":  result.LeadID,
		"score":   result.Score,
	})
}
