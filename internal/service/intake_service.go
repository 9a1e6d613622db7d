package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	svix "github.com/standard-webhooks/standard-webhooks/libraries/go"

	"github.com/leadpulse/leadpulse/internal/domain"
	"github.com/leadpulse/leadpulse/pkg/logger"
	"github.com/leadpulse/leadpulse/pkg/pii"
)

// IntakeService turns raw webhook payloads into persisted, scored,
// attributed leads.
type IntakeService struct {
	repo          domain.LeadRepository
	resolver      *AttributionResolver
	scorer        *Scorer
	logger        logger.Logger
	webhookSecret string

	timeNow func() time.Time
}

// NewIntakeService creates a new intake service. webhookSecret may be empty,
// in which case signature verification is disabled.
func NewIntakeService(
	repo domain.LeadRepository,
	resolver *AttributionResolver,
	scorer *Scorer,
	logger logger.Logger,
	webhookSecret string,
) *IntakeService {
	return &IntakeService{
		repo:          repo,
		resolver:      resolver,
		scorer:        scorer,
		logger:        logger,
		webhookSecret: webhookSecret,
		timeNow:       time.Now,
	}
}

// VerifySignature checks the webhook signature headers against the
// configured secret. A missing secret disables verification.
func (s *IntakeService) VerifySignature(payload []byte, headers http.Header) error {
	if s.webhookSecret == "" {
		return nil
	}

	wh, err := svix.NewWebhook(s.webhookSecret)
	if err != nil {
		return fmt.Errorf("failed to create webhook verifier: %w", err)
	}
	if err := wh.Verify(payload, headers); err != nil {
		return domain.NewValidationError("invalid webhook signature")
	}
	return nil
}

// DateKey converts a time to its YYYYMMDD key in UTC
func DateKey(t time.Time) int {
	t = t.UTC()
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

// ProcessSubmission validates, scores, attributes and persists one lead
// submission. The lead row, its raw payload audit record and the campaign
// attribution are written in a single transaction.
func (s *IntakeService) ProcessSubmission(ctx context.Context, payload []byte) (*domain.IntakeResult, error) {
	sub, err := domain.ParseLeadSubmission(payload)
	if err != nil {
		return nil, err
	}
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	emailHash, err := pii.Hash(sub.Email)
	if err != nil {
		return nil, domain.NewValidationError("email is required")
	}
	phoneHash, err := pii.HashOptional(sub.Phone)
	if err != nil {
		return nil, err
	}

	source, err := s.resolver.ResolveSource(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve source: %w", err)
	}
	campaign, err := s.resolver.ResolveCampaign(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve campaign: %w", err)
	}
	page, err := s.resolver.ResolveLandingPage(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve landing page: %w", err)
	}

	now := s.timeNow().UTC()
	lead := &domain.Lead{
		DateKey:       DateKey(now),
		EmailHash:     emailHash,
		PhoneHash:     phoneHash,
		FirstName:     sub.FirstName(),
		CompanyName:   optional(sub.Company),
		Status:        domain.LeadStatusNew,
		Score:         s.scorer.Score(sub),
		UTMSource:     optional(sub.UTMSource),
		UTMMedium:     optional(sub.UTMMedium),
		UTMCampaign:   optional(sub.UTMCampaign),
		UTMContent:    optional(sub.UTMContent),
		UTMTerm:       optional(sub.UTMTerm),
		FBC:           optional(sub.FBC),
		FBP:           optional(sub.FBP),
		GCLID:         optional(sub.GCLID),
		SourceID:      source.ID,
		LandingPageID: page.ID,
		CreatedAt:     now,
	}

	submission := &domain.RawSubmission{
		ID:        uuid.NewString(),
		Source:    domain.SubmissionSourceLandingPage,
		Payload:   sub.Raw,
		Status:    domain.SubmissionStatusSuccess,
		CreatedAt: now,
	}

	var attribution *domain.Attribution
	if campaign != nil {
		lead.CampaignID = &campaign.ID
		attribution = &domain.Attribution{
			CampaignID: campaign.ID,
			Model:      domain.AttributionModelLastClick,
			Weight:     1.0,
			CreatedAt:  now,
		}
	}

	if err := s.repo.CreateWithAudit(ctx, lead, submission, attribution); err != nil {
		return nil, fmt.Errorf("failed to persist lead: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"lead_id": lead.ID,
		"source":  source.Name,
		"score":   lead.Score,
	}).Info("Lead created")

	return &domain.IntakeResult{LeadID: lead.ID, Score: lead.Score}, nil
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
