package domain

import "time"

// LeadSource is a static acquisition-channel dimension
type LeadSource struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	SourceType string `json:"source_type"`
	IsPaid     bool   `json:"is_paid"`
}

// Well-known source names the attribution resolver maps into
const (
	SourceMetaAds       = "Meta Ads"
	SourceGoogleAds     = "Google Ads"
	SourceTikTokAds     = "TikTok Ads"
	SourceOrganicSearch = "Organic Search"
	SourceOrganicSocial = "Organic Social"
	SourceDirect        = "Direct"
	SourceReferral      = "Referral"
	SourceEmail         = "Email"
	SourceOther         = "Other"
)

// Campaign is a static reference dimension describing a paid campaign
type Campaign struct {
	ID          int64     `json:"id"`
	Platform    string    `json:"platform"`
	Name        string    `json:"name"`
	FunnelStage string    `json:"funnel_stage"`
	UTMSource   string    `json:"utm_source"`
	UTMMedium   string    `json:"utm_medium"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// Platforms the campaign dimension is limited to
const (
	PlatformMeta   = "Meta"
	PlatformGoogle = "Google"
	PlatformTikTok = "TikTok"
)

// FixedPlatforms is the set the platform comparison report always emits,
// in display order.
var FixedPlatforms = []string{PlatformMeta, PlatformGoogle, PlatformTikTok}

// LandingPage is a static dimension describing a capture page
type LandingPage struct {
	ID       int    `json:"id"`
	PageURL  string `json:"page_url"`
	PageName string `json:"page_name"`
}

// AdSpend is one row of platform-reported spend per campaign per day
type AdSpend struct {
	ID            int64     `json:"id"`
	CampaignID    int64     `json:"campaign_id"`
	DateKey       int       `json:"date_key"`
	SpendDate     time.Time `json:"spend_date"`
	Impressions   int64     `json:"impressions"`
	Clicks        int64     `json:"clicks"`
	Spend         float64   `json:"spend"`
	PlatformLeads int       `json:"platform_leads"`
}
