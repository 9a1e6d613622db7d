package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/leadpulse/leadpulse/internal/domain"
)

type dimensionRepository struct {
	db *sql.DB
}

// NewDimensionRepository creates a new PostgreSQL dimension repository
func NewDimensionRepository(db *sql.DB) domain.DimensionRepository {
	return &dimensionRepository{db: db}
}

func (r *dimensionRepository) GetSourceByName(ctx context.Context, name string) (*domain.LeadSource, error) {
	source := &domain.LeadSource{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, source_type, is_paid FROM lead_sources WHERE name = $1", name,
	).Scan(&source.ID, &source.Name, &source.SourceType, &source.IsPaid)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "lead source"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lead source: %w", err)
	}
	return source, nil
}

func (r *dimensionRepository) ListSources(ctx context.Context) ([]*domain.LeadSource, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, source_type, is_paid FROM lead_sources ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list lead sources: %w", err)
	}
	defer rows.Close()

	var sources []*domain.LeadSource
	for rows.Next() {
		source := &domain.LeadSource{}
		if err := rows.Scan(&source.ID, &source.Name, &source.SourceType, &source.IsPaid); err != nil {
			return nil, fmt.Errorf("failed to scan lead source: %w", err)
		}
		sources = append(sources, source)
	}
	return sources, rows.Err()
}

func (r *dimensionRepository) GetCampaignByUTM(ctx context.Context, utmSource, utmMedium string) (*domain.Campaign, error) {
	campaign := &domain.Campaign{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, platform, name, funnel_stage, utm_source, utm_medium, is_active, created_at
		FROM campaigns
		WHERE utm_source = $1 AND utm_medium = $2
		ORDER BY created_at DESC
		LIMIT 1
	`, utmSource, utmMedium).Scan(
		&campaign.ID, &campaign.Platform, &campaign.Name, &campaign.FunnelStage,
		&campaign.UTMSource, &campaign.UTMMedium, &campaign.IsActive, &campaign.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "campaign"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	return campaign, nil
}

func (r *dimensionRepository) ListCampaigns(ctx context.Context, onlyActive bool) ([]*domain.Campaign, error) {
	builder := psql.
		Select("id", "platform", "name", "funnel_stage", "utm_source", "utm_medium", "is_active", "created_at").
		From("campaigns").
		OrderBy("name ASC")
	if onlyActive {
		builder = builder.Where(sq.Eq{"is_active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build campaign list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []*domain.Campaign
	for rows.Next() {
		campaign := &domain.Campaign{}
		if err := rows.Scan(&campaign.ID, &campaign.Platform, &campaign.Name, &campaign.FunnelStage,
			&campaign.UTMSource, &campaign.UTMMedium, &campaign.IsActive, &campaign.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}
	return campaigns, rows.Err()
}

func (r *dimensionRepository) CountCampaigns(ctx context.Context, onlyActive bool) (int, error) {
	builder := psql.Select("COUNT(*)").From("campaigns")
	if onlyActive {
		builder = builder.Where(sq.Eq{"is_active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build campaign count query: %w", err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count campaigns: %w", err)
	}
	return count, nil
}

func (r *dimensionRepository) GetLandingPageByPath(ctx context.Context, path string) (*domain.LandingPage, error) {
	page := &domain.LandingPage{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, page_url, page_name
		FROM landing_pages
		WHERE page_url LIKE '%' || $1 || '%'
		ORDER BY id ASC
		LIMIT 1
	`, path).Scan(&page.ID, &page.PageURL, &page.PageName)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "landing page"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get landing page: %w", err)
	}
	return page, nil
}

func (r *dimensionRepository) GetDefaultLandingPage(ctx context.Context) (*domain.LandingPage, error) {
	page := &domain.LandingPage{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, page_url, page_name FROM landing_pages ORDER BY id ASC LIMIT 1",
	).Scan(&page.ID, &page.PageURL, &page.PageName)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "landing page"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get default landing page: %w", err)
	}
	return page, nil
}
