package domain

import (
	"database/sql"
	"fmt"
	"time"
)

// LeadStatus is the funnel stage of a lead
type LeadStatus string

const (
	LeadStatusNew         LeadStatus = "new"
	LeadStatusContacted   LeadStatus = "contacted"
	LeadStatusQualified   LeadStatus = "qualified"
	LeadStatusConverted   LeadStatus = "converted"
	LeadStatusUnqualified LeadStatus = "unqualified"
)

// statusRank orders the forward funnel progression. Unqualified is a
// terminal exit and has no rank.
var statusRank = map[LeadStatus]int{
	LeadStatusNew:       0,
	LeadStatusContacted: 1,
	LeadStatusQualified: 2,
	LeadStatusConverted: 3,
}

// IsValid reports whether the status is one of the known enum values
func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusConverted, LeadStatusUnqualified:
		return true
	}
	return false
}

// CanTransitionTo reports whether moving from s to next is a legal funnel
// transition. Transitions are forward-only: new, contacted, qualified,
// converted in order, with unqualified reachable from any non-converted
// state. Converted and unqualified are terminal.
func (s LeadStatus) CanTransitionTo(next LeadStatus) bool {
	if s == next {
		return false
	}
	if next == LeadStatusUnqualified {
		return s != LeadStatusConverted && s != LeadStatusUnqualified
	}
	currentRank, ok := statusRank[s]
	if !ok {
		return false
	}
	nextRank, ok := statusRank[next]
	if !ok {
		return false
	}
	return nextRank > currentRank
}

// Lead represents one captured contact
type Lead struct {
	ID          int64      `json:"id"`
	DateKey     int        `json:"date_key"`
	EmailHash   string     `json:"email_hash"`
	PhoneHash   *string    `json:"phone_hash,omitempty"`
	FirstName   *string    `json:"first_name,omitempty"`
	CompanyName *string    `json:"company_name,omitempty"`
	JobTitle    *string    `json:"job_title,omitempty"`
	Status      LeadStatus `json:"status"`
	Score       int        `json:"score"`
	DealValue   *float64   `json:"deal_value,omitempty"`

	UTMSource   *string `json:"utm_source,omitempty"`
	UTMMedium   *string `json:"utm_medium,omitempty"`
	UTMCampaign *string `json:"utm_campaign,omitempty"`
	UTMContent  *string `json:"utm_content,omitempty"`
	UTMTerm     *string `json:"utm_term,omitempty"`

	FBC   *string `json:"fbc,omitempty"`
	FBP   *string `json:"fbp,omitempty"`
	GCLID *string `json:"gclid,omitempty"`

	SourceID      int    `json:"source_id"`
	CampaignID    *int64 `json:"campaign_id,omitempty"`
	LandingPageID int    `json:"landing_page_id"`

	CreatedAt   time.Time  `json:"created_at"`
	ContactedAt *time.Time `json:"contacted_at,omitempty"`
	QualifiedAt *time.Time `json:"qualified_at,omitempty"`
	ConvertedAt *time.Time `json:"converted_at,omitempty"`

	// Relations, populated on detail reads
	Source       *LeadSource    `json:"source,omitempty"`
	Campaign     *Campaign      `json:"campaign,omitempty"`
	LandingPage  *LandingPage   `json:"landing_page,omitempty"`
	Attributions []*Attribution `json:"attributions,omitempty"`
}

// Validate ensures the lead has all required fields
func (l *Lead) Validate() error {
	if l.EmailHash == "" {
		return fmt.Errorf("email_hash is required")
	}
	if !l.Status.IsValid() {
		return fmt.Errorf("invalid lead status: %s", l.Status)
	}
	if l.Score < 0 || l.Score > 100 {
		return fmt.Errorf("score must be between 0 and 100")
	}
	return nil
}

// TimestampColumn returns the column stamped when a lead reaches the status,
// or empty when the status carries no timestamp.
func (s LeadStatus) TimestampColumn() string {
	switch s {
	case LeadStatusContacted:
		return "contacted_at"
	case LeadStatusQualified:
		return "qualified_at"
	case LeadStatusConverted:
		return "converted_at"
	}
	return ""
}

// For database scanning
type dbLead struct {
	ID          int64
	DateKey     int
	EmailHash   string
	PhoneHash   sql.NullString
	FirstName   sql.NullString
	CompanyName sql.NullString
	JobTitle    sql.NullString
	Status      string
	Score       int
	DealValue   sql.NullFloat64

	UTMSource   sql.NullString
	UTMMedium   sql.NullString
	UTMCampaign sql.NullString
	UTMContent  sql.NullString
	UTMTerm     sql.NullString

	FBC   sql.NullString
	FBP   sql.NullString
	GCLID sql.NullString

	SourceID      int
	CampaignID    sql.NullInt64
	LandingPageID int

	CreatedAt   time.Time
	ContactedAt sql.NullTime
	QualifiedAt sql.NullTime
	ConvertedAt sql.NullTime
}

// LeadColumns is the canonical column order used by ScanLead
var LeadColumns = []string{
	"id", "date_key", "email_hash", "phone_hash", "first_name", "company_name",
	"job_title", "status", "score", "deal_value",
	"utm_source", "utm_medium", "utm_campaign", "utm_content", "utm_term",
	"fbc", "fbp", "gclid",
	"source_id", "campaign_id", "landing_page_id",
	"created_at", "contacted_at", "qualified_at", "converted_at",
}

type scanner interface {
	Scan(dest ...interface{}) error
}

// ScanLead scans a row in LeadColumns order into a Lead
func ScanLead(s scanner) (*Lead, error) {
	var db dbLead
	if err := s.Scan(
		&db.ID, &db.DateKey, &db.EmailHash, &db.PhoneHash, &db.FirstName, &db.CompanyName,
		&db.JobTitle, &db.Status, &db.Score, &db.DealValue,
		&db.UTMSource, &db.UTMMedium, &db.UTMCampaign, &db.UTMContent, &db.UTMTerm,
		&db.FBC, &db.FBP, &db.GCLID,
		&db.SourceID, &db.CampaignID, &db.LandingPageID,
		&db.CreatedAt, &db.ContactedAt, &db.QualifiedAt, &db.ConvertedAt,
	); err != nil {
		return nil, err
	}

	lead := &Lead{
		ID:            db.ID,
		DateKey:       db.DateKey,
		EmailHash:     db.EmailHash,
		PhoneHash:     nullableString(db.PhoneHash),
		FirstName:     nullableString(db.FirstName),
		CompanyName:   nullableString(db.CompanyName),
		JobTitle:      nullableString(db.JobTitle),
		Status:        LeadStatus(db.Status),
		Score:         db.Score,
		DealValue:     nullableFloat64(db.DealValue),
		UTMSource:     nullableString(db.UTMSource),
		UTMMedium:     nullableString(db.UTMMedium),
		UTMCampaign:   nullableString(db.UTMCampaign),
		UTMContent:    nullableString(db.UTMContent),
		UTMTerm:       nullableString(db.UTMTerm),
		FBC:           nullableString(db.FBC),
		FBP:           nullableString(db.FBP),
		GCLID:         nullableString(db.GCLID),
		SourceID:      db.SourceID,
		LandingPageID: db.LandingPageID,
		CreatedAt:     db.CreatedAt,
		ContactedAt:   nullableTime(db.ContactedAt),
		QualifiedAt:   nullableTime(db.QualifiedAt),
		ConvertedAt:   nullableTime(db.ConvertedAt),
	}
	if db.CampaignID.Valid {
		lead.CampaignID = &db.CampaignID.Int64
	}
	return lead, nil
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullableFloat64(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}

func nullableTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	return &v.Time
}

// LeadFilters narrows a lead listing
type LeadFilters struct {
	Search     string
	Status     string
	SourceID   int
	CampaignID int64
	ScoreMin   *int
	ScoreMax   *int
}

// Pagination controls a lead listing page
type Pagination struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// Normalize applies defaults and bounds to pagination parameters
func (p *Pagination) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.SortBy == "" {
		p.SortBy = "created_at"
	}
	if p.SortOrder != "asc" {
		p.SortOrder = "desc"
	}
}

// PageInfo describes the returned page of a listing
type PageInfo struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// LeadStats summarizes the all-time lead base
type LeadStats struct {
	Total       int `json:"total"`
	New         int `json:"new"`
	Contacted   int `json:"contacted"`
	Qualified   int `json:"qualified"`
	Converted   int `json:"converted"`
	Unqualified int `json:"unqualified"`
	AvgScore    int `json:"avgScore"`
}
