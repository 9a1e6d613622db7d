package domain

import "time"

// TimeWindow bounds an aggregation query. Start is inclusive; End is
// exclusive and unbounded when zero.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// Bounded reports whether the window has an upper bound
func (w TimeWindow) Bounded() bool {
	return !w.End.IsZero()
}

// -----------------------------------------------------------------------
// Raw aggregate rows returned by the analytics repository. The service
// layer turns these into the report shapes below; ratios are never
// computed in SQL so division by zero stays in one place.
// -----------------------------------------------------------------------

// LeadTotals are windowed lead counts for the KPI summary. Qualified counts
// leads sitting exactly at qualified; the funnel reports use StatusCounts
// instead.
type LeadTotals struct {
	Total     int
	Qualified int
	Converted int
	Revenue   float64
}

// StatusCounts are all-time lead counts per funnel status
type StatusCounts struct {
	New         int
	Contacted   int
	Qualified   int
	Converted   int
	Unqualified int
	AvgScore    float64
}

// Total is the all-time lead count
func (c StatusCounts) Total() int {
	return c.New + c.Contacted + c.Qualified + c.Converted + c.Unqualified
}

// DailyCount is one grouped day of lead activity, keyed by YYYYMMDD
type DailyCount struct {
	DateKey   int
	Leads     int
	Qualified int
	Converted int
}

// SourceCount is a grouped lead count per source
type SourceCount struct {
	SourceID int
	Name     string
	Count    int
}

// SourceFunnelCount carries per-source funnel stage counts
type SourceFunnelCount struct {
	SourceID  int
	Name      string
	Total     int
	Contacted int
	Qualified int
	Converted int
}

// CampaignLeadMetrics are windowed per-campaign lead aggregates
type CampaignLeadMetrics struct {
	CampaignID  int64
	Name        string
	Platform    string
	FunnelStage string
	IsActive    bool
	Leads       int
	Qualified   int
	Converted   int
	Revenue     float64
}

// CampaignSpend are windowed per-campaign spend aggregates
type CampaignSpend struct {
	CampaignID  int64
	Spend       float64
	Impressions int64
	Clicks      int64
}

// PlatformLeadMetrics are windowed lead aggregates grouped by campaign platform
type PlatformLeadMetrics struct {
	Platform  string
	Leads     int
	Converted int
	Revenue   float64
}

// PlatformSpend are windowed spend aggregates grouped by campaign platform
type PlatformSpend struct {
	Platform    string
	Spend       float64
	Impressions int64
	Clicks      int64
}

// DailySpend is one grouped day of ad spend
type DailySpend struct {
	DateKey     int
	Spend       float64
	Impressions int64
	Clicks      int64
}

// CampaignLeadTotals are windowed totals restricted to campaign-attributed leads
type CampaignLeadTotals struct {
	Leads   int
	Revenue float64
}

// ScoreBandCount is a grouped count per fixed score band
type ScoreBandCount struct {
	Band      string
	Count     int
	Converted int
}

// ScoreBands are the five fixed score ranges, in order
var ScoreBands = []string{"0-20", "21-40", "41-60", "61-80", "81-100"}

// ScoreOverview feeds the predictive insight cards
type ScoreOverview struct {
	TotalLeads         int
	HighScoreLeads     int
	HighScoreNew       int
	HighScoreConverted int
	AvgScore           float64
}

// AnomalyCounts are the three fixed anomaly rule counts
type AnomalyCounts struct {
	HighScoreUnqualified int
	LowScoreConverted    int
	StaleNew             int
}

// TopCampaign is a campaign ranked by lead volume
type TopCampaign struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Platform string `json:"platform"`
	Leads    int    `json:"leads"`
}

// -----------------------------------------------------------------------
// Report shapes served to the dashboard. Field names are part of the API
// contract.
// -----------------------------------------------------------------------

// KPISummary is the dashboard headline metric block, with the immediately
// preceding period of equal length for trend comparison.
type KPISummary struct {
	TotalLeads        int     `json:"totalLeads"`
	PreviousLeads     int     `json:"previousLeads"`
	QualifiedLeads    int     `json:"qualifiedLeads"`
	ConvertedLeads    int     `json:"convertedLeads"`
	ConversionRate    float64 `json:"conversionRate"`
	QualificationRate float64 `json:"qualificationRate"`
	TotalSpend        float64 `json:"totalSpend"`
	PreviousSpend     float64 `json:"previousSpend"`
	CPL               float64 `json:"cpl"`
	Revenue           float64 `json:"revenue"`
	ROI               float64 `json:"roi"`
}

// DailyPoint is one day of the dense lead time series
type DailyPoint struct {
	Date      string `json:"date"`
	Leads     int    `json:"leads"`
	Qualified int    `json:"qualified"`
	Converted int    `json:"converted"`
}

// SourceSlice is one wedge of the source distribution chart
type SourceSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// FunnelStage is one of the four fixed funnel stages
type FunnelStage struct {
	Name                   string  `json:"name"`
	Value                  int     `json:"value"`
	Percentage             float64 `json:"percentage"`
	ConversionFromPrevious float64 `json:"conversionFromPrevious"`
	Color                  string  `json:"color"`
}

// SourceFunnel is the funnel broken down for one source
type SourceFunnel struct {
	Source            string  `json:"source"`
	Total             int     `json:"total"`
	Contacted         int     `json:"contacted"`
	Qualified         int     `json:"qualified"`
	Converted         int     `json:"converted"`
	ContactRate       float64 `json:"contactRate"`
	QualificationRate float64 `json:"qualificationRate"`
	ConversionRate    float64 `json:"conversionRate"`
}

// TrendPoint is one day of the conversion trend
type TrendPoint struct {
	Date           string  `json:"date"`
	Leads          int     `json:"leads"`
	Qualified      int     `json:"qualified"`
	Converted      int     `json:"converted"`
	ConversionRate float64 `json:"conversionRate"`
}

// DropOff summarizes leads stuck before qualification
type DropOff struct {
	Total                int     `json:"total"`
	Unqualified          int     `json:"unqualified"`
	StuckAtNew           int     `json:"stuckAtNew"`
	StuckAtContacted     int     `json:"stuckAtContacted"`
	UnqualifiedRate      float64 `json:"unqualifiedRate"`
	StuckAtNewRate       float64 `json:"stuckAtNewRate"`
	StuckAtContactedRate float64 `json:"stuckAtContactedRate"`
}

// CampaignPerformance is the windowed metric set for one campaign
type CampaignPerformance struct {
	CampaignID     int64   `json:"campaign_id"`
	Platform       string  `json:"platform"`
	CampaignName   string  `json:"campaign_name"`
	FunnelStage    string  `json:"funnel_stage"`
	IsActive       bool    `json:"is_active"`
	Leads          int     `json:"leads"`
	Qualified      int     `json:"qualified"`
	Converted      int     `json:"converted"`
	Spend          float64 `json:"spend"`
	Revenue        float64 `json:"revenue"`
	CPL            float64 `json:"cpl"`
	ConversionRate float64 `json:"conversionRate"`
	ROI            float64 `json:"roi"`
}

// PlatformComparison aggregates campaign metrics per advertising platform
type PlatformComparison struct {
	Platform    string  `json:"platform"`
	Leads       int     `json:"leads"`
	Spend       float64 `json:"spend"`
	Revenue     float64 `json:"revenue"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	CPL         float64 `json:"cpl"`
	ROI         float64 `json:"roi"`
}

// SpendPoint is one day of the spend trend
type SpendPoint struct {
	Date        string  `json:"date"`
	Spend       float64 `json:"spend"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Leads       int     `json:"leads"`
	CPL         float64 `json:"cpl"`
}

// CampaignStats is the campaign dashboard rollup
type CampaignStats struct {
	TotalCampaigns int     `json:"totalCampaigns"`
	TotalSpend     float64 `json:"totalSpend"`
	TotalLeads     int     `json:"totalLeads"`
	TotalRevenue   float64 `json:"totalRevenue"`
	AvgCPL         float64 `json:"avgCpl"`
	ROI            float64 `json:"roi"`
}

// ScoreDistribution is one fixed score band of the lead base
type ScoreDistribution struct {
	Range      string  `json:"range"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

// ConversionProbability is the historical conversion rate within a score band
type ConversionProbability struct {
	ScoreRange           string  `json:"scoreRange"`
	Total                int     `json:"total"`
	Converted            int     `json:"converted"`
	Probability          float64 `json:"probability"`
	PredictedConversions int     `json:"predictedConversions"`
}

// Insight trend directions and severities
const (
	TrendUp      = "up"
	TrendDown    = "down"
	TrendNeutral = "neutral"

	InsightSuccess = "success"
	InsightWarning = "warning"
	InsightInfo    = "info"
	InsightError   = "error"
)

// Insight is one descriptive predictive card
type Insight struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Value       interface{} `json:"value"`
	Trend       string      `json:"trend"`
	TrendValue  float64     `json:"trendValue"`
	Type        string      `json:"type"`
}

// ForecastPoint is one projected day of lead volume
type ForecastPoint struct {
	Date      string `json:"date"`
	Predicted int    `json:"predicted"`
	Lower     int    `json:"lower"`
	Upper     int    `json:"upper"`
}

// Forecast is the lead volume projection
type Forecast struct {
	AvgDailyLeads int             `json:"avgDailyLeads"`
	Forecast      []ForecastPoint `json:"forecast"`
}

// Anomaly is a structured alert emitted by a fixed rule check
type Anomaly struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Count       int    `json:"count"`
	Action      string `json:"action"`
}

// ContactTime is one hour of the best-contact-times reference table
type ContactTime struct {
	Hour        string  `json:"hour"`
	Conversions int     `json:"conversions"`
	Attempts    int     `json:"attempts"`
	SuccessRate float64 `json:"successRate"`
}

// -----------------------------------------------------------------------
// Endpoint response envelopes
// -----------------------------------------------------------------------

// AnalyticsOverview is the /api/analytics response
type AnalyticsOverview struct {
	KPIs               *KPISummary   `json:"kpis"`
	DailyLeads         []DailyPoint  `json:"dailyLeads"`
	SourceDistribution []SourceSlice `json:"sourceDistribution"`
	FunnelData         []FunnelStage `json:"funnelData"`
	RecentLeads        []*Lead       `json:"recentLeads"`
	TopCampaigns       []TopCampaign `json:"topCampaigns"`
}

// CampaignReport is the /api/campaigns response
type CampaignReport struct {
	Campaigns  []CampaignPerformance `json:"campaigns"`
	Platforms  []PlatformComparison  `json:"platforms"`
	SpendTrend []SpendPoint          `json:"spendTrend"`
	Stats      *CampaignStats        `json:"stats"`
}

// FunnelReport is the /api/funnel response
type FunnelReport struct {
	Funnel   []FunnelStage  `json:"funnel"`
	BySource []SourceFunnel `json:"bySource"`
	Trend    []TrendPoint   `json:"trend"`
	DropOff  *DropOff       `json:"dropOff"`
}

// LeadListResult is the /api/leads response
type LeadListResult struct {
	Leads      []*Lead       `json:"leads"`
	Pagination *PageInfo     `json:"pagination"`
	Sources    []*LeadSource `json:"sources"`
	Campaigns  []*Campaign   `json:"campaigns"`
	Stats      *LeadStats    `json:"stats"`
}

// PredictiveReport is the /api/predictive response
type PredictiveReport struct {
	ScoreDistribution     []ScoreDistribution     `json:"scoreDistribution"`
	ConversionProbability []ConversionProbability `json:"conversionProbability"`
	BestContactTimes      []ContactTime           `json:"bestContactTimes"`
	Insights              []Insight               `json:"insights"`
	Forecast              *Forecast               `json:"forecast"`
	Anomalies             []Anomaly               `json:"anomalies"`
}
