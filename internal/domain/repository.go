package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination=./mocks/mock_repositories.go -package=mocks github.com/leadpulse/leadpulse/internal/domain LeadRepository,DimensionRepository,AnalyticsRepository

// LeadRepository persists and reads lead records
type LeadRepository interface {
	// CreateWithAudit persists a new lead together with its raw submission
	// audit record and optional attribution in a single transaction.
	CreateWithAudit(ctx context.Context, lead *Lead, submission *RawSubmission, attribution *Attribution) error

	// GetByID returns a lead with its source, campaign, landing page and
	// attributions. Returns ErrNotFound when absent.
	GetByID(ctx context.Context, id int64) (*Lead, error)

	// List returns a filtered, sorted page of leads and the total match count
	List(ctx context.Context, filters LeadFilters, page Pagination) ([]*Lead, int, error)

	// UpdateStatus sets the lead status and stamps the matching timestamp
	UpdateStatus(ctx context.Context, id int64, status LeadStatus, at time.Time) error

	// UpdateScore sets the lead score
	UpdateScore(ctx context.Context, id int64, score int) error

	// BulkUpdateStatus sets the status on all given leads and returns the
	// number of rows updated
	BulkUpdateStatus(ctx context.Context, ids []int64, status LeadStatus, at time.Time) (int64, error)

	// Stats returns all-time counts per status and the average score
	Stats(ctx context.Context) (*LeadStats, error)
}

// DimensionRepository reads the static dimension tables. Lookups never
// create rows; unknown values fall through to the caller's defaults.
type DimensionRepository interface {
	GetSourceByName(ctx context.Context, name string) (*LeadSource, error)
	ListSources(ctx context.Context) ([]*LeadSource, error)

	GetCampaignByUTM(ctx context.Context, utmSource, utmMedium string) (*Campaign, error)
	ListCampaigns(ctx context.Context, onlyActive bool) ([]*Campaign, error)
	CountCampaigns(ctx context.Context, onlyActive bool) (int, error)

	// GetLandingPageByPath finds a landing page whose URL contains path
	GetLandingPageByPath(ctx context.Context, path string) (*LandingPage, error)
	GetDefaultLandingPage(ctx context.Context) (*LandingPage, error)
}

// AnalyticsRepository runs read-only grouped aggregate queries. Every
// method is independent and safe to call concurrently; ratios are left to
// the service layer.
type AnalyticsRepository interface {
	LeadTotals(ctx context.Context, window TimeWindow) (*LeadTotals, error)
	SpendTotal(ctx context.Context, window TimeWindow) (float64, error)
	StatusCounts(ctx context.Context) (*StatusCounts, error)
	DailyCounts(ctx context.Context, window TimeWindow) ([]DailyCount, error)
	SourceCounts(ctx context.Context) ([]SourceCount, error)
	SourceFunnelCounts(ctx context.Context) ([]SourceFunnelCount, error)
	CampaignLeadMetrics(ctx context.Context, window TimeWindow) ([]CampaignLeadMetrics, error)
	CampaignSpend(ctx context.Context, window TimeWindow) ([]CampaignSpend, error)
	PlatformLeadMetrics(ctx context.Context, window TimeWindow) ([]PlatformLeadMetrics, error)
	PlatformSpend(ctx context.Context, window TimeWindow) ([]PlatformSpend, error)
	DailySpend(ctx context.Context, window TimeWindow) ([]DailySpend, error)
	DailyCampaignLeadCounts(ctx context.Context, window TimeWindow) (map[int]int, error)
	CampaignLeadTotals(ctx context.Context, window TimeWindow) (*CampaignLeadTotals, error)
	ScoreBandCounts(ctx context.Context) ([]ScoreBandCount, error)
	ScoreOverview(ctx context.Context) (*ScoreOverview, error)
	AnomalyCounts(ctx context.Context, staleBefore time.Time) (*AnomalyCounts, error)
	TopCampaigns(ctx context.Context, limit int) ([]TopCampaign, error)
	RecentLeads(ctx context.Context, limit int) ([]*Lead, error)
}
