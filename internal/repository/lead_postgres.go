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

type leadRepository struct {
	db *sql.DB
}

// NewLeadRepository creates a new PostgreSQL lead repository
func NewLeadRepository(db *sql.DB) domain.LeadRepository {
	return &leadRepository{db: db}
}

// psql builds queries with PostgreSQL placeholders
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *leadRepository) CreateWithAudit(ctx context.Context, lead *domain.Lead, submission *domain.RawSubmission, attribution *domain.Attribution) error {
	if err := lead.Validate(); err != nil {
		return fmt.Errorf("invalid lead: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO leads (
			date_key, email_hash, phone_hash, first_name, company_name, job_title,
			status, score, utm_source, utm_medium, utm_campaign, utm_content, utm_term,
			fbc, fbp, gclid, source_id, campaign_id, landing_page_id, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, query,
		lead.DateKey,
		lead.EmailHash,
		lead.PhoneHash,
		lead.FirstName,
		lead.CompanyName,
		lead.JobTitle,
		lead.Status,
		lead.Score,
		lead.UTMSource,
		lead.UTMMedium,
		lead.UTMCampaign,
		lead.UTMContent,
		lead.UTMTerm,
		lead.FBC,
		lead.FBP,
		lead.GCLID,
		lead.SourceID,
		lead.CampaignID,
		lead.LandingPageID,
		lead.CreatedAt,
	).Scan(&lead.ID)
	if err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}

	submission.LeadID = lead.ID
	_, err = tx.ExecContext(ctx, `
		INSERT INTO raw_submissions (id, lead_id, source, payload, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		submission.ID,
		submission.LeadID,
		submission.Source,
		[]byte(submission.Payload),
		submission.Status,
		submission.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create raw submission: %w", err)
	}

	if attribution != nil {
		attribution.LeadID = lead.ID
		_, err = tx.ExecContext(ctx, `
			INSERT INTO lead_attributions (lead_id, campaign_id, model, weight, attributed_value, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`,
			attribution.LeadID,
			attribution.CampaignID,
			attribution.Model,
			attribution.Weight,
			attribution.AttributedValue,
			attribution.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create attribution: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit lead creation: %w", err)
	}
	return nil
}

func (r *leadRepository) GetByID(ctx context.Context, id int64) (*domain.Lead, error) {
	query := fmt.Sprintf("SELECT %s FROM leads WHERE id = $1", strings.Join(domain.LeadColumns, ", "))

	row := r.db.QueryRowContext(ctx, query, id)
	lead, err := domain.ScanLead(row)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "lead", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	if err := r.loadRelations(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func (r *leadRepository) loadRelations(ctx context.Context, lead *domain.Lead) error {
	source := &domain.LeadSource{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, source_type, is_paid FROM lead_sources WHERE id = $1", lead.SourceID,
	).Scan(&source.ID, &source.Name, &source.SourceType, &source.IsPaid)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("failed to get lead source: %w", err)
	}
	if err == nil {
		lead.Source = source
	}

	if lead.CampaignID != nil {
		campaign := &domain.Campaign{}
		err := r.db.QueryRowContext(ctx,
			"SELECT id, platform, name, funnel_stage, utm_source, utm_medium, is_active, created_at FROM campaigns WHERE id = $1",
			*lead.CampaignID,
		).Scan(&campaign.ID, &campaign.Platform, &campaign.Name, &campaign.FunnelStage,
			&campaign.UTMSource, &campaign.UTMMedium, &campaign.IsActive, &campaign.CreatedAt)
		if err != nil && err != sql.ErrNoRows {
			return fmt.Errorf("failed to get campaign: %w", err)
		}
		if err == nil {
			lead.Campaign = campaign
		}
	}

	page := &domain.LandingPage{}
	err = r.db.QueryRowContext(ctx,
		"SELECT id, page_url, page_name FROM landing_pages WHERE id = $1", lead.LandingPageID,
	).Scan(&page.ID, &page.PageURL, &page.PageName)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("failed to get landing page: %w", err)
	}
	if err == nil {
		lead.LandingPage = page
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, lead_id, campaign_id, model, weight, attributed_value, created_at
		FROM lead_attributions
		WHERE lead_id = $1
		ORDER BY created_at DESC
	`, lead.ID)
	if err != nil {
		return fmt.Errorf("failed to get attributions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		attribution := &domain.Attribution{}
		var value sql.NullFloat64
		if err := rows.Scan(&attribution.ID, &attribution.LeadID, &attribution.CampaignID,
			&attribution.Model, &attribution.Weight, &value, &attribution.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan attribution: %w", err)
		}
		if value.Valid {
			attribution.AttributedValue = &value.Float64
		}
		lead.Attributions = append(lead.Attributions, attribution)
	}
	return rows.Err()
}

// sortColumns whitelists the sortable lead listing columns
var sortColumns = map[string]string{
	"created_at":   "created_at",
	"score":        "score",
	"status":       "status",
	"first_name":   "first_name",
	"company_name": "company_name",
	"deal_value":   "deal_value",
}

func (r *leadRepository) List(ctx context.Context, filters domain.LeadFilters, page domain.Pagination) ([]*domain.Lead, int, error) {
	page.Normalize()

	applyFilters := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filters.Status != "" && filters.Status != "all" {
			b = b.Where(sq.Eq{"status": filters.Status})
		}
		if filters.SourceID > 0 {
			b = b.Where(sq.Eq{"source_id": filters.SourceID})
		}
		if filters.CampaignID > 0 {
			b = b.Where(sq.Eq{"campaign_id": filters.CampaignID})
		}
		if filters.ScoreMin != nil {
			b = b.Where(sq.GtOrEq{"score": *filters.ScoreMin})
		}
		if filters.ScoreMax != nil {
			b = b.Where(sq.LtOrEq{"score": *filters.ScoreMax})
		}
		if filters.Search != "" {
			pattern := "%" + filters.Search + "%"
			b = b.Where(sq.Or{
				sq.ILike{"first_name": pattern},
				sq.ILike{"company_name": pattern},
				sq.ILike{"job_title": pattern},
			})
		}
		return b
	}

	sortColumn, ok := sortColumns[page.SortBy]
	if !ok {
		sortColumn = "created_at"
	}

	listQuery := applyFilters(psql.Select(domain.LeadColumns...).From("leads")).
		OrderBy(fmt.Sprintf("%s %s", sortColumn, strings.ToUpper(page.SortOrder))).
		Limit(uint64(page.Limit)).
		Offset(uint64((page.Page - 1) * page.Limit))

	query, args, err := listQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build lead list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	var leads []*domain.Lead
	for rows.Next() {
		lead, err := domain.ScanLead(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan lead: %w", err)
		}
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating lead rows: %w", err)
	}

	countQuery, countArgs, err := applyFilters(psql.Select("COUNT(*)").From("leads")).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build lead count query: %w", err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leads: %w", err)
	}

	return leads, total, nil
}

func (r *leadRepository) UpdateStatus(ctx context.Context, id int64, status domain.LeadStatus, at time.Time) error {
	builder := psql.Update("leads").
		Set("status", status).
		Where(sq.Eq{"id": id})

	if column := status.TimestampColumn(); column != "" {
		builder = builder.Set(column, at)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build status update: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update lead status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrNotFound{Entity: "lead", ID: id}
	}
	return nil
}

func (r *leadRepository) UpdateScore(ctx context.Context, id int64, score int) error {
	result, err := r.db.ExecContext(ctx, "UPDATE leads SET score = $1 WHERE id = $2", score, id)
	if err != nil {
		return fmt.Errorf("failed to update lead score: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrNotFound{Entity: "lead", ID: id}
	}
	return nil
}

func (r *leadRepository) BulkUpdateStatus(ctx context.Context, ids []int64, status domain.LeadStatus, at time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	builder := psql.Update("leads").
		Set("status", status).
		Where(sq.Eq{"id": ids})

	if column := status.TimestampColumn(); column != "" {
		builder = builder.Set(column, at)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build bulk status update: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk update lead status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return rows, nil
}

func (r *leadRepository) Stats(ctx context.Context) (*domain.LeadStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'new'),
			COUNT(*) FILTER (WHERE status = 'contacted'),
			COUNT(*) FILTER (WHERE status = 'qualified'),
			COUNT(*) FILTER (WHERE status = 'converted'),
			COUNT(*) FILTER (WHERE status = 'unqualified'),
			COALESCE(AVG(score), 0)
		FROM leads
	`

	stats := &domain.LeadStats{}
	var avgScore float64
	err := r.db.QueryRowContext(ctx, query).Scan(
		&stats.Total, &stats.New, &stats.Contacted, &stats.Qualified,
		&stats.Converted, &stats.Unqualified, &avgScore,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get lead stats: %w", err)
	}
	stats.AvgScore = int(avgScore + 0.5)
	return stats, nil
}
