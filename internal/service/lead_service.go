package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/leadpulse/leadpulse/internal/domain"
	"github.com/leadpulse/leadpulse/pkg/logger"
)

// LeadService manages persisted leads
type LeadService struct {
	repo    domain.LeadRepository
	dimRepo domain.DimensionRepository
	logger  logger.Logger

	timeNow func() time.Time
}

// NewLeadService creates a new lead service
func NewLeadService(repo domain.LeadRepository, dimRepo domain.DimensionRepository, logger logger.Logger) *LeadService {
	return &LeadService{
		repo:    repo,
		dimRepo: dimRepo,
		logger:  logger,
		timeNow: time.Now,
	}
}

// ListLeads returns a filtered lead page together with the filter dimensions
// and the status rollup the lead table renders alongside it.
func (s *LeadService) ListLeads(ctx context.Context, filters domain.LeadFilters, page domain.Pagination) (*domain.LeadListResult, error) {
	page.Normalize()

	result := &domain.LeadListResult{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		leads, total, err := s.repo.List(gctx, filters, page)
		if err != nil {
			return err
		}
		totalPages := (total + page.Limit - 1) / page.Limit
		result.Leads = leads
		result.Pagination = &domain.PageInfo{
			Page:       page.Page,
			Limit:      page.Limit,
			Total:      total,
			TotalPages: totalPages,
		}
		return nil
	})
	g.Go(func() error {
		sources, err := s.dimRepo.ListSources(gctx)
		result.Sources = sources
		return err
	})
	g.Go(func() error {
		campaigns, err := s.dimRepo.ListCampaigns(gctx, false)
		result.Campaigns = campaigns
		return err
	})
	g.Go(func() error {
		stats, err := s.repo.Stats(gctx)
		result.Stats = stats
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	if result.Leads == nil {
		result.Leads = []*domain.Lead{}
	}
	return result, nil
}

// GetLead returns one lead with its relations
func (s *LeadService) GetLead(ctx context.Context, id int64) (*domain.Lead, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateLead applies a status and/or score change and returns the updated
// lead. Status changes must move forward through the funnel.
func (s *LeadService) UpdateLead(ctx context.Context, id int64, input domain.UpdateLeadInput) (*domain.Lead, error) {
	if input.Status == nil && input.Score == nil {
		return nil, domain.NewValidationError("nothing to update")
	}

	lead, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		next := *input.Status
		if !next.IsValid() {
			return nil, domain.NewValidationError(fmt.Sprintf("invalid status: %s", next))
		}
		if !lead.Status.CanTransitionTo(next) {
			return nil, domain.NewValidationError(
				fmt.Sprintf("cannot move lead from %s to %s", lead.Status, next))
		}
		if err := s.repo.UpdateStatus(ctx, id, next, s.timeNow().UTC()); err != nil {
			return nil, err
		}
		s.logger.WithFields(map[string]interface{}{
			"lead_id": id,
			"from":    string(lead.Status),
			"to":      string(next),
		}).Info("Lead status updated")
	}

	if input.Score != nil {
		score := *input.Score
		if score < 0 || score > MaxScore {
			return nil, domain.NewValidationError(fmt.Sprintf("score must be between 0 and %d", MaxScore))
		}
		if err := s.repo.UpdateScore(ctx, id, score); err != nil {
			return nil, err
		}
	}

	return s.repo.GetByID(ctx, id)
}

// BulkUpdateStatus sets the status on all given leads. Unlike single
// updates, the funnel progression is not checked per lead; the operation
// exists for list-view triage.
func (s *LeadService) BulkUpdateStatus(ctx context.Context, ids []int64, status domain.LeadStatus) (int64, error) {
	if len(ids) == 0 {
		return 0, domain.NewValidationError("no lead ids given")
	}
	if !status.IsValid() {
		return 0, domain.NewValidationError(fmt.Sprintf("invalid status: %s", status))
	}

	updated, err := s.repo.BulkUpdateStatus(ctx, ids, status, s.timeNow().UTC())
	if err != nil {
		return 0, err
	}

	s.logger.WithFields(map[string]interface{}{
		"requested": len(ids),
		"updated":   updated,
		"status":    string(status),
	}).Info("Bulk lead status update")
	return updated, nil
}
