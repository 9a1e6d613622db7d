package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/leadpulse/leadpulse/internal/domain"
	"github.com/leadpulse/leadpulse/pkg/logger"
)

// Report defaults and fixed thresholds
const (
	DefaultReportDays   = 30
	DefaultForecastDays = 7

	recentLeadsLimit = 10
	topCampaignLimit = 5

	highScoreThreshold     = 70
	goodConversionRatePct  = 20.0
	staleLeadAge           = 7 * 24 * time.Hour
	reportConcurrencyLimit = 4
)

// sourceColors are the chart colors keyed by source name
var sourceColors = map[string]string{
	domain.SourceMetaAds:       "#7c3aed",
	domain.SourceGoogleAds:     "#3b82f6",
	domain.SourceTikTokAds:     "#ec4899",
	domain.SourceOrganicSearch: "#22c55e",
	domain.SourceOrganicSocial: "#22d3ee",
	domain.SourceDirect:        "#f59e0b",
	domain.SourceReferral:      "#8b5cf6",
	domain.SourceEmail:         "#06b6d4",
	domain.SourceOther:         "#64748b",
}

const defaultSourceColor = "#64748b"

// funnelStageColors in stage order
var funnelStageColors = []string{"#7c3aed", "#3b82f6", "#22d3ee", "#22c55e"}

// scoreBandColors follow domain.ScoreBands order
var scoreBandColors = []string{"#ef4444", "#f97316", "#f59e0b", "#22d3ee", "#22c55e"}

// AnalyticsService computes the dashboard reports
type AnalyticsService struct {
	repo    domain.AnalyticsRepository
	dimRepo domain.DimensionRepository
	logger  logger.Logger

	timeNow func() time.Time
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(repo domain.AnalyticsRepository, dimRepo domain.DimensionRepository, logger logger.Logger) *AnalyticsService {
	return &AnalyticsService{
		repo:    repo,
		dimRepo: dimRepo,
		logger:  logger,
		timeNow: time.Now,
	}
}

// ratio returns a/b, 0 when b is 0
func ratio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// pct returns part/whole as a percentage, 0 when whole is 0
func pct(part, whole float64) float64 {
	return ratio(part, whole) * 100
}

// roi returns the return on spend as a percentage, 0 when spend is 0
func roi(revenue, spend float64) float64 {
	return pct(revenue-spend, spend)
}

// reportWindow returns the current period ending now and the immediately
// preceding period of equal length.
func (s *AnalyticsService) reportWindow(days int) (current, previous domain.TimeWindow) {
	if days <= 0 {
		days = DefaultReportDays
	}
	now := s.timeNow().UTC()
	start := now.AddDate(0, 0, -days)
	current = domain.TimeWindow{Start: start}
	previous = domain.TimeWindow{Start: start.AddDate(0, 0, -days), End: start}
	return current, previous
}

// GetOverview assembles the dashboard overview report
func (s *AnalyticsService) GetOverview(ctx context.Context, days int) (*domain.AnalyticsOverview, error) {
	current, previous := s.reportWindow(days)

	overview := &domain.AnalyticsOverview{}
	var (
		totals    *domain.LeadTotals
		prevTotal *domain.LeadTotals
		spend     float64
		prevSpend float64
		daily     []domain.DailyCount
		sources   []domain.SourceCount
		statuses  *domain.StatusCounts
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(reportConcurrencyLimit)
	g.Go(func() (err error) { totals, err = s.repo.LeadTotals(gctx, current); return })
	g.Go(func() (err error) { prevTotal, err = s.repo.LeadTotals(gctx, previous); return })
	g.Go(func() (err error) { spend, err = s.repo.SpendTotal(gctx, current); return })
	g.Go(func() (err error) { prevSpend, err = s.repo.SpendTotal(gctx, previous); return })
	g.Go(func() (err error) { daily, err = s.repo.DailyCounts(gctx, current); return })
	g.Go(func() (err error) { sources, err = s.repo.SourceCounts(gctx); return })
	g.Go(func() (err error) { statuses, err = s.repo.StatusCounts(gctx); return })
	g.Go(func() (err error) { overview.RecentLeads, err = s.repo.RecentLeads(gctx, recentLeadsLimit); return })
	g.Go(func() (err error) { overview.TopCampaigns, err = s.repo.TopCampaigns(gctx, topCampaignLimit); return })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build analytics overview: %w", err)
	}

	overview.KPIs = &domain.KPISummary{
		TotalLeads:        totals.Total,
		PreviousLeads:     prevTotal.Total,
		QualifiedLeads:    totals.Qualified,
		ConvertedLeads:    totals.Converted,
		ConversionRate:    pct(float64(totals.Converted), float64(totals.Total)),
		QualificationRate: pct(float64(totals.Qualified), float64(totals.Total)),
		TotalSpend:        spend,
		PreviousSpend:     prevSpend,
		CPL:               ratio(spend, float64(totals.Total)),
		Revenue:           totals.Revenue,
		ROI:               roi(totals.Revenue, spend),
	}
	overview.DailyLeads = denseDailySeries(current.Start, s.timeNow().UTC(), daily)
	overview.SourceDistribution = sourceSlices(sources)
	overview.FunnelData = funnelStages(statuses)

	if overview.RecentLeads == nil {
		overview.RecentLeads = []*domain.Lead{}
	}
	if overview.TopCampaigns == nil {
		overview.TopCampaigns = []domain.TopCampaign{}
	}
	return overview, nil
}

// denseDailySeries expands grouped daily counts into one entry per calendar
// day from start through today, zero-filling quiet days.
func denseDailySeries(start, today time.Time, counts []domain.DailyCount) []domain.DailyPoint {
	byDay := make(map[int]domain.DailyCount, len(counts))
	for _, c := range counts {
		byDay[c.DateKey] = c
	}

	var points []domain.DailyPoint
	for d := startOfDay(start); !d.After(today); d = d.AddDate(0, 0, 1) {
		c := byDay[DateKey(d)]
		points = append(points, domain.DailyPoint{
			Date:      d.Format("2006-01-02"),
			Leads:     c.Leads,
			Qualified: c.Qualified,
			Converted: c.Converted,
		})
	}
	return points
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// sourceSlices orders the non-empty sources by volume with their fixed colors
func sourceSlices(counts []domain.SourceCount) []domain.SourceSlice {
	slices := make([]domain.SourceSlice, 0, len(counts))
	for _, c := range counts {
		if c.Count == 0 {
			continue
		}
		color, ok := sourceColors[c.Name]
		if !ok {
			color = defaultSourceColor
		}
		slices = append(slices, domain.SourceSlice{Name: c.Name, Value: c.Count, Color: color})
	}
	sort.SliceStable(slices, func(i, j int) bool { return slices[i].Value > slices[j].Value })
	return slices
}

// funnelStages builds the four cumulative funnel stages. Each stage counts
// leads that reached it or went further.
func funnelStages(c *domain.StatusCounts) []domain.FunnelStage {
	total := c.Total()
	contacted := c.Contacted + c.Qualified + c.Converted
	qualified := c.Qualified + c.Converted
	converted := c.Converted

	names := []string{"New Leads", "Contacted", "Qualified", "Converted"}
	values := []int{total, contacted, qualified, converted}

	stages := make([]domain.FunnelStage, 0, len(values))
	for i, value := range values {
		fromPrevious := 100.0
		if i > 0 {
			fromPrevious = pct(float64(value), float64(values[i-1]))
		}
		percentage := 100.0
		if i > 0 {
			percentage = pct(float64(value), float64(total))
		}
		stages = append(stages, domain.FunnelStage{
			Name:                   names[i],
			Value:                  value,
			Percentage:             percentage,
			ConversionFromPrevious: fromPrevious,
			Color:                  funnelStageColors[i],
		})
	}
	return stages
}

// GetCampaignReport assembles the campaign performance report
func (s *AnalyticsService) GetCampaignReport(ctx context.Context, days int) (*domain.CampaignReport, error) {
	current, _ := s.reportWindow(days)

	var (
		leadMetrics     []domain.CampaignLeadMetrics
		campaignSpend   []domain.CampaignSpend
		platformMetrics []domain.PlatformLeadMetrics
		platformSpend   []domain.PlatformSpend
		dailySpend      []domain.DailySpend
		dailyLeads      map[int]int
		totals          *domain.CampaignLeadTotals
		activeCount     int
		spendTotal      float64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(reportConcurrencyLimit)
	g.Go(func() (err error) { leadMetrics, err = s.repo.CampaignLeadMetrics(gctx, current); return })
	g.Go(func() (err error) { campaignSpend, err = s.repo.CampaignSpend(gctx, current); return })
	g.Go(func() (err error) { platformMetrics, err = s.repo.PlatformLeadMetrics(gctx, current); return })
	g.Go(func() (err error) { platformSpend, err = s.repo.PlatformSpend(gctx, current); return })
	g.Go(func() (err error) { dailySpend, err = s.repo.DailySpend(gctx, current); return })
	g.Go(func() (err error) { dailyLeads, err = s.repo.DailyCampaignLeadCounts(gctx, current); return })
	g.Go(func() (err error) { totals, err = s.repo.CampaignLeadTotals(gctx, current); return })
	g.Go(func() (err error) { activeCount, err = s.dimRepo.CountCampaigns(gctx, true); return })
	g.Go(func() (err error) { spendTotal, err = s.repo.SpendTotal(gctx, current); return })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build campaign report: %w", err)
	}

	report := &domain.CampaignReport{
		Campaigns:  campaignPerformance(leadMetrics, campaignSpend),
		Platforms:  platformComparison(platformMetrics, platformSpend),
		SpendTrend: spendTrend(dailySpend, dailyLeads),
		Stats: &domain.CampaignStats{
			TotalCampaigns: activeCount,
			TotalSpend:     spendTotal,
			TotalLeads:     totals.Leads,
			TotalRevenue:   totals.Revenue,
			AvgCPL:         ratio(spendTotal, float64(totals.Leads)),
			ROI:            roi(totals.Revenue, spendTotal),
		},
	}
	return report, nil
}

// campaignPerformance joins lead and spend aggregates per active campaign,
// sorted by lead volume.
func campaignPerformance(metrics []domain.CampaignLeadMetrics, spend []domain.CampaignSpend) []domain.CampaignPerformance {
	spendByID := make(map[int64]domain.CampaignSpend, len(spend))
	for _, s := range spend {
		spendByID[s.CampaignID] = s
	}

	results := make([]domain.CampaignPerformance, 0, len(metrics))
	for _, m := range metrics {
		if !m.IsActive {
			continue
		}
		sp := spendByID[m.CampaignID]
		results = append(results, domain.CampaignPerformance{
			CampaignID:     m.CampaignID,
			Platform:       m.Platform,
			CampaignName:   m.Name,
			FunnelStage:    m.FunnelStage,
			IsActive:       m.IsActive,
			Leads:          m.Leads,
			Qualified:      m.Qualified,
			Converted:      m.Converted,
			Spend:          sp.Spend,
			Revenue:        m.Revenue,
			CPL:            ratio(sp.Spend, float64(m.Leads)),
			ConversionRate: pct(float64(m.Converted), float64(m.Leads)),
			ROI:            roi(m.Revenue, sp.Spend),
		})
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Leads > results[j].Leads })
	return results
}

// platformComparison always emits the three fixed platforms, even with no
// activity in the window.
func platformComparison(metrics []domain.PlatformLeadMetrics, spend []domain.PlatformSpend) []domain.PlatformComparison {
	metricsByPlatform := make(map[string]domain.PlatformLeadMetrics, len(metrics))
	for _, m := range metrics {
		metricsByPlatform[m.Platform] = m
	}
	spendByPlatform := make(map[string]domain.PlatformSpend, len(spend))
	for _, s := range spend {
		spendByPlatform[s.Platform] = s
	}

	results := make([]domain.PlatformComparison, 0, len(domain.FixedPlatforms))
	for _, platform := range domain.FixedPlatforms {
		m := metricsByPlatform[platform]
		sp := spendByPlatform[platform]
		results = append(results, domain.PlatformComparison{
			Platform:    platform,
			Leads:       m.Leads,
			Spend:       sp.Spend,
			Revenue:     m.Revenue,
			Impressions: sp.Impressions,
			Clicks:      sp.Clicks,
			CPL:         ratio(sp.Spend, float64(m.Leads)),
			ROI:         roi(m.Revenue, sp.Spend),
		})
	}
	return results
}

// spendTrend joins daily spend with campaign-attributed lead counts. Only
// days with recorded spend appear.
func spendTrend(spend []domain.DailySpend, leads map[int]int) []domain.SpendPoint {
	points := make([]domain.SpendPoint, 0, len(spend))
	for _, d := range spend {
		dayLeads := leads[d.DateKey]
		points = append(points, domain.SpendPoint{
			Date:        dateKeyString(d.DateKey),
			Spend:       d.Spend,
			Impressions: d.Impressions,
			Clicks:      d.Clicks,
			Leads:       dayLeads,
			CPL:         ratio(d.Spend, float64(dayLeads)),
		})
	}
	return points
}

// dateKeyString formats a YYYYMMDD key as YYYY-MM-DD
func dateKeyString(dateKey int) string {
	return fmt.Sprintf("%04d-%02d-%02d", dateKey/10000, dateKey/100%100, dateKey%100)
}

// GetFunnelReport assembles the funnel analysis report
func (s *AnalyticsService) GetFunnelReport(ctx context.Context, days int) (*domain.FunnelReport, error) {
	current, _ := s.reportWindow(days)

	var (
		statuses     *domain.StatusCounts
		sourceCounts []domain.SourceFunnelCount
		daily        []domain.DailyCount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(reportConcurrencyLimit)
	g.Go(func() (err error) { statuses, err = s.repo.StatusCounts(gctx); return })
	g.Go(func() (err error) { sourceCounts, err = s.repo.SourceFunnelCounts(gctx); return })
	g.Go(func() (err error) { daily, err = s.repo.DailyCounts(gctx, current); return })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build funnel report: %w", err)
	}

	total := statuses.Total()
	report := &domain.FunnelReport{
		Funnel:   funnelStages(statuses),
		BySource: sourceFunnels(sourceCounts),
		Trend:    conversionTrend(current.Start, s.timeNow().UTC(), daily),
		DropOff: &domain.DropOff{
			Total:                total,
			Unqualified:          statuses.Unqualified,
			StuckAtNew:           statuses.New,
			StuckAtContacted:     statuses.Contacted,
			UnqualifiedRate:      pct(float64(statuses.Unqualified), float64(total)),
			StuckAtNewRate:       pct(float64(statuses.New), float64(total)),
			StuckAtContactedRate: pct(float64(statuses.Contacted), float64(total)),
		},
	}
	return report, nil
}

// sourceFunnels computes the per-source funnel stages and rates, sorted by
// volume. Sources without leads are excluded by the repository query.
func sourceFunnels(counts []domain.SourceFunnelCount) []domain.SourceFunnel {
	results := make([]domain.SourceFunnel, 0, len(counts))
	for _, c := range counts {
		if c.Total == 0 {
			continue
		}
		results = append(results, domain.SourceFunnel{
			Source:            c.Name,
			Total:             c.Total,
			Contacted:         c.Contacted,
			Qualified:         c.Qualified,
			Converted:         c.Converted,
			ContactRate:       pct(float64(c.Contacted), float64(c.Total)),
			QualificationRate: pct(float64(c.Qualified), float64(c.Contacted)),
			ConversionRate:    pct(float64(c.Converted), float64(c.Total)),
		})
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Total > results[j].Total })
	return results
}

// conversionTrend is the dense daily series with per-day conversion rates
func conversionTrend(start, today time.Time, counts []domain.DailyCount) []domain.TrendPoint {
	daily := denseDailySeries(start, today, counts)
	points := make([]domain.TrendPoint, 0, len(daily))
	for _, d := range daily {
		points = append(points, domain.TrendPoint{
			Date:           d.Date,
			Leads:          d.Leads,
			Qualified:      d.Qualified,
			Converted:      d.Converted,
			ConversionRate: pct(float64(d.Converted), float64(d.Leads)),
		})
	}
	return points
}

// GetPredictiveReport assembles the predictive insights report
func (s *AnalyticsService) GetPredictiveReport(ctx context.Context, forecastDays int) (*domain.PredictiveReport, error) {
	if forecastDays <= 0 {
		forecastDays = DefaultForecastDays
	}
	now := s.timeNow().UTC()
	history := domain.TimeWindow{Start: now.AddDate(0, 0, -DefaultReportDays)}

	var (
		bands     []domain.ScoreBandCount
		overview  *domain.ScoreOverview
		anomalies *domain.AnomalyCounts
		daily     []domain.DailyCount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(reportConcurrencyLimit)
	g.Go(func() (err error) { bands, err = s.repo.ScoreBandCounts(gctx); return })
	g.Go(func() (err error) { overview, err = s.repo.ScoreOverview(gctx); return })
	g.Go(func() (err error) { anomalies, err = s.repo.AnomalyCounts(gctx, now.Add(-staleLeadAge)); return })
	g.Go(func() (err error) { daily, err = s.repo.DailyCounts(gctx, history); return })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build predictive report: %w", err)
	}

	report := &domain.PredictiveReport{
		ScoreDistribution:     scoreDistribution(bands),
		ConversionProbability: conversionProbability(bands),
		BestContactTimes:      bestContactTimes(),
		Insights:              predictiveInsights(overview),
		Forecast:              BuildForecast(daily, now, forecastDays),
		Anomalies:             detectAnomalies(anomalies),
	}
	return report, nil
}

// scoreDistribution emits all five fixed bands in order, zero-filled
func scoreDistribution(counts []domain.ScoreBandCount) []domain.ScoreDistribution {
	byBand := make(map[string]domain.ScoreBandCount, len(counts))
	total := 0
	for _, c := range counts {
		byBand[c.Band] = c
		total += c.Count
	}

	results := make([]domain.ScoreDistribution, 0, len(domain.ScoreBands))
	for i, band := range domain.ScoreBands {
		c := byBand[band]
		results = append(results, domain.ScoreDistribution{
			Range:      band,
			Count:      c.Count,
			Percentage: pct(float64(c.Count), float64(total)),
			Color:      scoreBandColors[i],
		})
	}
	return results
}

// conversionProbability derives per-band historical conversion rates
func conversionProbability(counts []domain.ScoreBandCount) []domain.ConversionProbability {
	byBand := make(map[string]domain.ScoreBandCount, len(counts))
	for _, c := range counts {
		byBand[c.Band] = c
	}

	results := make([]domain.ConversionProbability, 0, len(domain.ScoreBands))
	for _, band := range domain.ScoreBands {
		c := byBand[band]
		probability := pct(float64(c.Converted), float64(c.Count))
		results = append(results, domain.ConversionProbability{
			ScoreRange:           band,
			Total:                c.Count,
			Converted:            c.Converted,
			Probability:          probability,
			PredictedConversions: int(math.Round(float64(c.Count) * probability / 100)),
		})
	}
	return results
}

// bestContactTimes is a static reference table of hourly contact outcomes
func bestContactTimes() []domain.ContactTime {
	return []domain.ContactTime{
		{Hour: "09:00", Conversions: 12, Attempts: 45, SuccessRate: 26.7},
		{Hour: "10:00", Conversions: 18, Attempts: 52, SuccessRate: 34.6},
		{Hour: "11:00", Conversions: 15, Attempts: 48, SuccessRate: 31.3},
		{Hour: "14:00", Conversions: 20, Attempts: 55, SuccessRate: 36.4},
		{Hour: "15:00", Conversions: 22, Attempts: 50, SuccessRate: 44.0},
		{Hour: "16:00", Conversions: 16, Attempts: 42, SuccessRate: 38.1},
		{Hour: "17:00", Conversions: 10, Attempts: 38, SuccessRate: 26.3},
	}
}

// predictiveInsights builds the four fixed insight cards
func predictiveInsights(o *domain.ScoreOverview) []domain.Insight {
	highScoreShare := pct(float64(o.HighScoreLeads), float64(o.TotalLeads))
	highScoreConversion := pct(float64(o.HighScoreConverted), float64(o.HighScoreLeads))

	highShareTrend := domain.TrendDown
	if float64(o.HighScoreLeads) > float64(o.TotalLeads)*0.2 {
		highShareTrend = domain.TrendUp
	}

	conversionTrend := domain.TrendNeutral
	conversionType := domain.InsightWarning
	if highScoreConversion > goodConversionRatePct {
		conversionTrend = domain.TrendUp
		conversionType = domain.InsightSuccess
	}

	waitingTrend := domain.TrendUp
	if o.HighScoreNew > 0 {
		waitingTrend = domain.TrendDown
	}
	waitingType := domain.InsightInfo
	if o.HighScoreNew > 10 {
		waitingType = domain.InsightError
	}

	avgTrend := domain.TrendDown
	avgType := domain.InsightWarning
	if o.AvgScore > 50 {
		avgTrend = domain.TrendUp
		avgType = domain.InsightSuccess
	}

	return []domain.Insight{
		{
			Title:       "High-Probability Leads",
			Description: fmt.Sprintf("Leads scoring %d or above", highScoreThreshold),
			Value:       o.HighScoreLeads,
			Trend:       highShareTrend,
			TrendValue:  highScoreShare,
			Type:        domain.InsightSuccess,
		},
		{
			Title:       "High-Score Conversion Rate",
			Description: fmt.Sprintf("Conversion among leads scoring %d or above", highScoreThreshold),
			Value:       fmt.Sprintf("%.1f%%", highScoreConversion),
			Trend:       conversionTrend,
			TrendValue:  highScoreConversion,
			Type:        conversionType,
		},
		{
			Title:       "Uncontacted Opportunities",
			Description: "High-probability leads waiting for first contact",
			Value:       o.HighScoreNew,
			Trend:       waitingTrend,
			TrendValue:  float64(o.HighScoreNew),
			Type:        waitingType,
		},
		{
			Title:       "Average Lead Score",
			Description: "Mean score across all leads",
			Value:       int(math.Round(o.AvgScore)),
			Trend:       avgTrend,
			TrendValue:  o.AvgScore,
			Type:        avgType,
		},
	}
}

// detectAnomalies applies the three fixed rules and emits an alert for each
// rule with a non-zero count.
func detectAnomalies(c *domain.AnomalyCounts) []domain.Anomaly {
	anomalies := []domain.Anomaly{}
	if c.HighScoreUnqualified > 0 {
		anomalies = append(anomalies, domain.Anomaly{
			Type:        domain.InsightWarning,
			Title:       "High-Score Leads Marked Unqualified",
			Description: fmt.Sprintf("%d leads scoring 80 or above were marked unqualified", c.HighScoreUnqualified),
			Count:       c.HighScoreUnqualified,
			Action:      "Review qualification criteria",
		})
	}
	if c.LowScoreConverted > 0 {
		anomalies = append(anomalies, domain.Anomaly{
			Type:        domain.InsightInfo,
			Title:       "Low-Score Conversions",
			Description: fmt.Sprintf("%d leads scoring 30 or below converted", c.LowScoreConverted),
			Count:       c.LowScoreConverted,
			Action:      "Adjust the scoring model",
		})
	}
	if c.StaleNew > 0 {
		anomalies = append(anomalies, domain.Anomaly{
			Type:        domain.InsightError,
			Title:       "Stale Leads",
			Description: fmt.Sprintf("%d leads have sat at new for over 7 days", c.StaleNew),
			Count:       c.StaleNew,
			Action:      "Prioritize first contact",
		})
	}
	return anomalies
}
