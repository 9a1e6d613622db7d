package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/leadpulse/leadpulse/internal/domain"
)

type analyticsRepository struct {
	db *sql.DB
}

// NewAnalyticsRepository creates a new PostgreSQL analytics repository
func NewAnalyticsRepository(db *sql.DB) domain.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// window applies the time window bounds on column. Start is inclusive,
// End exclusive and skipped when the window is unbounded.
func window(b sq.SelectBuilder, column string, w domain.TimeWindow) sq.SelectBuilder {
	b = b.Where(sq.GtOrEq{column: w.Start})
	if w.Bounded() {
		b = b.Where(sq.Lt{column: w.End})
	}
	return b
}

func (r *analyticsRepository) LeadTotals(ctx context.Context, w domain.TimeWindow) (*domain.LeadTotals, error) {
	builder := window(psql.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE status = 'qualified')",
		"COUNT(*) FILTER (WHERE status = 'converted')",
		"COALESCE(SUM(deal_value) FILTER (WHERE status = 'converted'), 0)",
	).From("leads"), "created_at", w)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build lead totals query: %w", err)
	}

	totals := &domain.LeadTotals{}
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&totals.Total, &totals.Qualified, &totals.Converted, &totals.Revenue)
	if err != nil {
		return nil, fmt.Errorf("failed to get lead totals: %w", err)
	}
	return totals, nil
}

func (r *analyticsRepository) SpendTotal(ctx context.Context, w domain.TimeWindow) (float64, error) {
	builder := window(psql.Select("COALESCE(SUM(spend), 0)").From("ad_spend"), "spend_date", w)

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build spend total query: %w", err)
	}

	var spend float64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&spend); err != nil {
		return 0, fmt.Errorf("failed to get spend total: %w", err)
	}
	return spend, nil
}

func (r *analyticsRepository) StatusCounts(ctx context.Context) (*domain.StatusCounts, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'new'),
			COUNT(*) FILTER (WHERE status = 'contacted'),
			COUNT(*) FILTER (WHERE status = 'qualified'),
			COUNT(*) FILTER (WHERE status = 'converted'),
			COUNT(*) FILTER (WHERE status = 'unqualified'),
			COALESCE(AVG(score), 0)
		FROM leads
	`

	counts := &domain.StatusCounts{}
	err := r.db.QueryRowContext(ctx, query).Scan(
		&counts.New, &counts.Contacted, &counts.Qualified,
		&counts.Converted, &counts.Unqualified, &counts.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("failed to get status counts: %w", err)
	}
	return counts, nil
}

func (r *analyticsRepository) DailyCounts(ctx context.Context, w domain.TimeWindow) ([]domain.DailyCount, error) {
	builder := window(psql.Select(
		"date_key",
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE status IN ('qualified', 'converted'))",
		"COUNT(*) FILTER (WHERE status = 'converted')",
	).From("leads"), "created_at", w).
		GroupBy("date_key").
		OrderBy("date_key ASC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build daily counts query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily counts: %w", err)
	}
	defer rows.Close()

	var counts []domain.DailyCount
	for rows.Next() {
		var c domain.DailyCount
		if err := rows.Scan(&c.DateKey, &c.Leads, &c.Qualified, &c.Converted); err != nil {
			return nil, fmt.Errorf("failed to scan daily count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *analyticsRepository) SourceCounts(ctx context.Context) ([]domain.SourceCount, error) {
	query := `
		SELECT s.id, s.name, COUNT(l.id)
		FROM lead_sources s
		JOIN leads l ON l.source_id = s.id
		GROUP BY s.id, s.name
		ORDER BY COUNT(l.id) DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get source counts: %w", err)
	}
	defer rows.Close()

	var counts []domain.SourceCount
	for rows.Next() {
		var c domain.SourceCount
		if err := rows.Scan(&c.SourceID, &c.Name, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan source count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *analyticsRepository) SourceFunnelCounts(ctx context.Context) ([]domain.SourceFunnelCount, error) {
	query := `
		SELECT
			s.id,
			s.name,
			COUNT(l.id),
			COUNT(l.id) FILTER (WHERE l.status IN ('contacted', 'qualified', 'converted')),
			COUNT(l.id) FILTER (WHERE l.status IN ('qualified', 'converted')),
			COUNT(l.id) FILTER (WHERE l.status = 'converted')
		FROM lead_sources s
		JOIN leads l ON l.source_id = s.id
		GROUP BY s.id, s.name
		ORDER BY COUNT(l.id) DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get source funnel counts: %w", err)
	}
	defer rows.Close()

	var counts []domain.SourceFunnelCount
	for rows.Next() {
		var c domain.SourceFunnelCount
		if err := rows.Scan(&c.SourceID, &c.Name, &c.Total, &c.Contacted, &c.Qualified, &c.Converted); err != nil {
			return nil, fmt.Errorf("failed to scan source funnel count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *analyticsRepository) CampaignLeadMetrics(ctx context.Context, w domain.TimeWindow) ([]domain.CampaignLeadMetrics, error) {
	// LEFT JOIN keeps campaigns with zero leads in the window on the report
	conditions := []string{"l.campaign_id = c.id", "l.created_at >= $1"}
	args := []interface{}{w.Start}
	if w.Bounded() {
		conditions = append(conditions, "l.created_at < $2")
		args = append(args, w.End)
	}

	query := fmt.Sprintf(`
		SELECT
			c.id, c.name, c.platform, c.funnel_stage, c.is_active,
			COUNT(l.id),
			COUNT(l.id) FILTER (WHERE l.status IN ('qualified', 'converted')),
			COUNT(l.id) FILTER (WHERE l.status = 'converted'),
			COALESCE(SUM(l.deal_value) FILTER (WHERE l.status = 'converted'), 0)
		FROM campaigns c
		LEFT JOIN leads l ON %s
		GROUP BY c.id, c.name, c.platform, c.funnel_stage, c.is_active
		ORDER BY COUNT(l.id) DESC, c.name ASC
	`, strings.Join(conditions, " AND "))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign lead metrics: %w", err)
	}
	defer rows.Close()

	var metrics []domain.CampaignLeadMetrics
	for rows.Next() {
		var m domain.CampaignLeadMetrics
		if err := rows.Scan(&m.CampaignID, &m.Name, &m.Platform, &m.FunnelStage, &m.IsActive,
			&m.Leads, &m.Qualified, &m.Converted, &m.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan campaign lead metrics: %w", err)
		}
		metrics = append(metrics, m)
	}
	return metrics, rows.Err()
}

func (r *analyticsRepository) CampaignSpend(ctx context.Context, w domain.TimeWindow) ([]domain.CampaignSpend, error) {
	builder := window(psql.Select(
		"campaign_id",
		"COALESCE(SUM(spend), 0)",
		"COALESCE(SUM(impressions), 0)",
		"COALESCE(SUM(clicks), 0)",
	).From("ad_spend"), "spend_date", w).
		GroupBy("campaign_id")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build campaign spend query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign spend: %w", err)
	}
	defer rows.Close()

	var spend []domain.CampaignSpend
	for rows.Next() {
		var s domain.CampaignSpend
		if err := rows.Scan(&s.CampaignID, &s.Spend, &s.Impressions, &s.Clicks); err != nil {
			return nil, fmt.Errorf("failed to scan campaign spend: %w", err)
		}
		spend = append(spend, s)
	}
	return spend, rows.Err()
}

func (r *analyticsRepository) PlatformLeadMetrics(ctx context.Context, w domain.TimeWindow) ([]domain.PlatformLeadMetrics, error) {
	conditions := []string{"l.created_at >= $1"}
	args := []interface{}{w.Start}
	if w.Bounded() {
		conditions = append(conditions, "l.created_at < $2")
		args = append(args, w.End)
	}

	query := fmt.Sprintf(`
		SELECT
			c.platform,
			COUNT(l.id),
			COUNT(l.id) FILTER (WHERE l.status = 'converted'),
			COALESCE(SUM(l.deal_value) FILTER (WHERE l.status = 'converted'), 0)
		FROM leads l
		JOIN campaigns c ON l.campaign_id = c.id
		WHERE %s
		GROUP BY c.platform
	`, strings.Join(conditions, " AND "))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get platform lead metrics: %w", err)
	}
	defer rows.Close()

	var metrics []domain.PlatformLeadMetrics
	for rows.Next() {
		var m domain.PlatformLeadMetrics
		if err := rows.Scan(&m.Platform, &m.Leads, &m.Converted, &m.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan platform lead metrics: %w", err)
		}
		metrics = append(metrics, m)
	}
	return metrics, rows.Err()
}

func (r *analyticsRepository) PlatformSpend(ctx context.Context, w domain.TimeWindow) ([]domain.PlatformSpend, error) {
	conditions := []string{"a.spend_date >= $1"}
	args := []interface{}{w.Start}
	if w.Bounded() {
		conditions = append(conditions, "a.spend_date < $2")
		args = append(args, w.End)
	}

	query := fmt.Sprintf(`
		SELECT
			c.platform,
			COALESCE(SUM(a.spend), 0),
			COALESCE(SUM(a.impressions), 0),
			COALESCE(SUM(a.clicks), 0)
		FROM ad_spend a
		JOIN campaigns c ON a.campaign_id = c.id
		WHERE %s
		GROUP BY c.platform
	`, strings.Join(conditions, " AND "))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get platform spend: %w", err)
	}
	defer rows.Close()

	var spend []domain.PlatformSpend
	for rows.Next() {
		var s domain.PlatformSpend
		if err := rows.Scan(&s.Platform, &s.Spend, &s.Impressions, &s.Clicks); err != nil {
			return nil, fmt.Errorf("failed to scan platform spend: %w", err)
		}
		spend = append(spend, s)
	}
	return spend, rows.Err()
}

func (r *analyticsRepository) DailySpend(ctx context.Context, w domain.TimeWindow) ([]domain.DailySpend, error) {
	builder := window(psql.Select(
		"date_key",
		"COALESCE(SUM(spend), 0)",
		"COALESCE(SUM(impressions), 0)",
		"COALESCE(SUM(clicks), 0)",
	).From("ad_spend"), "spend_date", w).
		GroupBy("date_key").
		OrderBy("date_key ASC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build daily spend query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily spend: %w", err)
	}
	defer rows.Close()

	var spend []domain.DailySpend
	for rows.Next() {
		var s domain.DailySpend
		if err := rows.Scan(&s.DateKey, &s.Spend, &s.Impressions, &s.Clicks); err != nil {
			return nil, fmt.Errorf("failed to scan daily spend: %w", err)
		}
		spend = append(spend, s)
	}
	return spend, rows.Err()
}

func (r *analyticsRepository) DailyCampaignLeadCounts(ctx context.Context, w domain.TimeWindow) (map[int]int, error) {
	builder := window(psql.Select("date_key", "COUNT(*)").From("leads"), "created_at", w).
		Where("campaign_id IS NOT NULL").
		GroupBy("date_key")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build daily campaign lead counts query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily campaign lead counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var dateKey, count int
		if err := rows.Scan(&dateKey, &count); err != nil {
			return nil, fmt.Errorf("failed to scan daily campaign lead count: %w", err)
		}
		counts[dateKey] = count
	}
	return counts, rows.Err()
}

func (r *analyticsRepository) CampaignLeadTotals(ctx context.Context, w domain.TimeWindow) (*domain.CampaignLeadTotals, error) {
	builder := window(psql.Select(
		"COUNT(*)",
		"COALESCE(SUM(deal_value) FILTER (WHERE status = 'converted'), 0)",
	).From("leads"), "created_at", w).
		Where("campaign_id IS NOT NULL")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build campaign lead totals query: %w", err)
	}

	totals := &domain.CampaignLeadTotals{}
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&totals.Leads, &totals.Revenue); err != nil {
		return nil, fmt.Errorf("failed to get campaign lead totals: %w", err)
	}
	return totals, nil
}

// scoreBandCase buckets scores into the five fixed bands
const scoreBandCase = `CASE
	WHEN score <= 20 THEN '0-20'
	WHEN score <= 40 THEN '21-40'
	WHEN score <= 60 THEN '41-60'
	WHEN score <= 80 THEN '61-80'
	ELSE '81-100'
END`

func (r *analyticsRepository) ScoreBandCounts(ctx context.Context) ([]domain.ScoreBandCount, error) {
	query := fmt.Sprintf(`
		SELECT %s AS band, COUNT(*), COUNT(*) FILTER (WHERE status = 'converted')
		FROM leads
		GROUP BY band
	`, scoreBandCase)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get score band counts: %w", err)
	}
	defer rows.Close()

	var counts []domain.ScoreBandCount
	for rows.Next() {
		var c domain.ScoreBandCount
		if err := rows.Scan(&c.Band, &c.Count, &c.Converted); err != nil {
			return nil, fmt.Errorf("failed to scan score band count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *analyticsRepository) ScoreOverview(ctx context.Context) (*domain.ScoreOverview, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE score >= 70),
			COUNT(*) FILTER (WHERE score >= 70 AND status = 'new'),
			COUNT(*) FILTER (WHERE score >= 70 AND status = 'converted'),
			COALESCE(AVG(score), 0)
		FROM leads
	`

	overview := &domain.ScoreOverview{}
	err := r.db.QueryRowContext(ctx, query).Scan(
		&overview.TotalLeads, &overview.HighScoreLeads, &overview.HighScoreNew,
		&overview.HighScoreConverted, &overview.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("failed to get score overview: %w", err)
	}
	return overview, nil
}

func (r *analyticsRepository) AnomalyCounts(ctx context.Context, staleBefore time.Time) (*domain.AnomalyCounts, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE score >= 80 AND status = 'unqualified'),
			COUNT(*) FILTER (WHERE score <= 30 AND status = 'converted'),
			COUNT(*) FILTER (WHERE status = 'new' AND created_at < $1)
		FROM leads
	`

	counts := &domain.AnomalyCounts{}
	err := r.db.QueryRowContext(ctx, query, staleBefore).Scan(
		&counts.HighScoreUnqualified, &counts.LowScoreConverted, &counts.StaleNew)
	if err != nil {
		return nil, fmt.Errorf("failed to get anomaly counts: %w", err)
	}
	return counts, nil
}

func (r *analyticsRepository) TopCampaigns(ctx context.Context, limit int) ([]domain.TopCampaign, error) {
	query := `
		SELECT c.id, c.name, c.platform, COUNT(l.id)
		FROM campaigns c
		JOIN leads l ON l.campaign_id = c.id
		GROUP BY c.id, c.name, c.platform
		ORDER BY COUNT(l.id) DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []domain.TopCampaign
	for rows.Next() {
		var c domain.TopCampaign
		if err := rows.Scan(&c.ID, &c.Name, &c.Platform, &c.Leads); err != nil {
			return nil, fmt.Errorf("failed to scan top campaign: %w", err)
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

func (r *analyticsRepository) RecentLeads(ctx context.Context, limit int) ([]*domain.Lead, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM leads ORDER BY created_at DESC LIMIT $1",
		strings.Join(domain.LeadColumns, ", "))

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent leads: %w", err)
	}
	defer rows.Close()

	var leads []*domain.Lead
	for rows.Next() {
		lead, err := domain.ScanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recent lead: %w", err)
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}
