package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/leadpulse/leadpulse/internal/domain"
	"github.com/leadpulse/leadpulse/pkg/logger"
)

// LeadHandler serves the lead listing and management endpoints
type LeadHandler struct {
	service domain.LeadService
	logger  logger.Logger
}

func NewLeadHandler(service domain.LeadService, logger logger.Logger) *LeadHandler {
	return &LeadHandler{
		service: service,
		logger:  logger,
	}
}

func (h *LeadHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/leads", h.handleList)
	mux.HandleFunc("PATCH /api/leads", h.handleBulkUpdate)
	mux.HandleFunc("GET /api/leads/{id}", h.handleGet)
	mux.HandleFunc("PATCH /api/leads/{id}", h.handleUpdate)
}

func (h *LeadHandler) handleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filters := domain.LeadFilters{
		Search: query.Get("search"),
		Status: query.Get("status"),
	}
	if raw := query.Get("source"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			WriteJSONError(w, "source must be an integer", http.StatusBadRequest)
			return
		}
		filters.SourceID = id
	}
	if raw := query.Get("campaign"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			WriteJSONError(w, "campaign must be an integer", http.StatusBadRequest)
			return
		}
		filters.CampaignID = id
	}
	if raw := query.Get("scoreMin"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			WriteJSONError(w, "scoreMin must be an integer", http.StatusBadRequest)
			return
		}
		filters.ScoreMin = &v
	}
	if raw := query.Get("scoreMax"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			WriteJSONError(w, "scoreMax must be an integer", http.StatusBadRequest)
			return
		}
		filters.ScoreMax = &v
	}

	page := domain.Pagination{
		SortBy:    query.Get("sortBy"),
		SortOrder: query.Get("sortOrder"),
	}
	page.Page, _ = strconv.Atoi(query.Get("page"))
	page.Limit, _ = strconv.Atoi(query.Get("limit"))

	result, err := h.service.ListLeads(r.Context(), filters, page)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list leads")
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// leadID parses the {id} path segment
func leadID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func (h *LeadHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := leadID(r)
	if err != nil {
		WriteJSONError(w, "Invalid lead id", http.StatusBadRequest)
		return
	}

	lead, err := h.service.GetLead(r.Context(), id)
	if err != nil {
		if !domain.IsNotFound(err) {
			h.logger.WithField("error", err.Error()).Error("Failed to get lead")
		}
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := leadID(r)
	if err != nil {
		WriteJSONError(w, "Invalid lead id", http.StatusBadRequest)
		return
	}

	var input domain.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	lead, err := h.service.UpdateLead(r.Context(), id, input)
	if err != nil {
		if !domain.IsNotFound(err) && !domain.IsValidationError(err) {
			h.logger.WithField("error", err.Error()).Error("Failed to update lead")
		}
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

type bulkUpdateRequest struct {
	LeadIDs []int64           `json:"leadIds"`
	Status  domain.LeadStatus `json:"status"`
}

func (h *LeadHandler) handleBulkUpdate(w http.ResponseWriter, r *http.Request) {
	var req bulkUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.LeadIDs) == 0 {
		WriteJSONError(w, "leadIds is required", http.StatusBadRequest)
		return
	}
	if req.Status == "" {
		WriteJSONError(w, "status is required", http.StatusBadRequest)
		return
	}

	updated, err := h.service.BulkUpdateStatus(r.Context(), req.LeadIDs, req.Status)
	if err != nil {
		if !domain.IsValidationError(err) {
			h.logger.WithField("error", err.Error()).Error("Failed to bulk update leads")
		}
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"updated": updated,
	})
}
