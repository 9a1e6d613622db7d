package domain

import (
	"context"
	"net/http"
)

//go:generate mockgen -destination=./mocks/mock_services.go -package=mocks github.com/leadpulse/leadpulse/internal/domain IntakeService,LeadService,AnalyticsService

// IntakeService processes incoming lead webhook payloads
type IntakeService interface {
	// ProcessSubmission validates, scores, attributes and persists one lead
	// submission. Returns ValidationError for unusable payloads.
	ProcessSubmission(ctx context.Context, payload []byte) (*IntakeResult, error)

	// VerifySignature checks the standard-webhooks signature headers when a
	// webhook secret is configured; it is a no-op otherwise.
	VerifySignature(payload []byte, headers http.Header) error
}

// UpdateLeadInput carries the mutable lead fields of a PATCH request
type UpdateLeadInput struct {
	Status *LeadStatus `json:"status,omitempty"`
	Score  *int        `json:"score,omitempty"`
}

// LeadService manages persisted leads
type LeadService interface {
	ListLeads(ctx context.Context, filters LeadFilters, page Pagination) (*LeadListResult, error)
	GetLead(ctx context.Context, id int64) (*Lead, error)

	// UpdateLead applies a status and/or score change. Status changes are
	// validated against the forward-only funnel progression.
	UpdateLead(ctx context.Context, id int64, input UpdateLeadInput) (*Lead, error)

	// BulkUpdateStatus sets the status on all given leads, returning the
	// number actually updated
	BulkUpdateStatus(ctx context.Context, ids []int64, status LeadStatus) (int64, error)
}

// AnalyticsService computes the dashboard reports. All methods are
// read-only and safe to call concurrently.
type AnalyticsService interface {
	GetOverview(ctx context.Context, days int) (*AnalyticsOverview, error)
	GetCampaignReport(ctx context.Context, days int) (*CampaignReport, error)
	GetFunnelReport(ctx context.Context, days int) (*FunnelReport, error)
	GetPredictiveReport(ctx context.Context, forecastDays int) (*PredictiveReport, error)
}
