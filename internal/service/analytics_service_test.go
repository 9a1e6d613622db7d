package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadpulse/leadpulse/internal/domain"
	"github.com/leadpulse/leadpulse/internal/domain/mocks"
	"github.com/leadpulse/leadpulse/pkg/logger"
)

var fixedNow = time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC)

func newAnalyticsFixture(t *testing.T) (*AnalyticsService, *mocks.MockAnalyticsRepository, *mocks.MockDimensionRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockAnalyticsRepository(ctrl)
	dimRepo := mocks.NewMockDimensionRepository(ctrl)
	svc := NewAnalyticsService(repo, dimRepo, logger.NewMockLogger(t))
	svc.timeNow = func() time.Time { return fixedNow }
	return svc, repo, dimRepo
}

func TestAnalyticsService_GetOverview(t *testing.T) {
	svc, repo, _ := newAnalyticsFixture(t)

	current := domain.TimeWindow{Start: fixedNow.AddDate(0, 0, -30)}
	previous := domain.TimeWindow{Start: fixedNow.AddDate(0, 0, -60), End: current.Start}

	repo.EXPECT().LeadTotals(gomock.Any(), current).
		Return(&domain.LeadTotals{Total: 100, Qualified: 25, Converted: 10, Revenue: 50000}, nil)
	repo.EXPECT().LeadTotals(gomock.Any(), previous).
		Return(&domain.LeadTotals{Total: 80}, nil)
	repo.EXPECT().SpendTotal(gomock.Any(), current).Return(20000.0, nil)
	repo.EXPECT().SpendTotal(gomock.Any(), previous).Return(15000.0, nil)
	repo.EXPECT().DailyCounts(gomock.Any(), current).
		Return([]domain.DailyCount{{DateKey: 20260115, Leads: 8, Qualified: 3, Converted: 1}}, nil)
	repo.EXPECT().SourceCounts(gomock.Any()).
		Return([]domain.SourceCount{
			{SourceID: 2, Name: domain.SourceGoogleAds, Count: 40},
			{SourceID: 1, Name: domain.SourceMetaAds, Count: 55},
			{SourceID: 6, Name: domain.SourceDirect, Count: 0},
		}, nil)
	repo.EXPECT().StatusCounts(gomock.Any()).
		Return(&domain.StatusCounts{New: 40, Contacted: 25, Qualified: 15, Converted: 10, Unqualified: 10}, nil)
	repo.EXPECT().RecentLeads(gomock.Any(), recentLeadsLimit).
		Return([]*domain.Lead{{ID: 1}}, nil)
	repo.EXPECT().TopCampaigns(gomock.Any(), topCampaignLimit).
		Return([]domain.TopCampaign{{ID: 7, Name: "Brand Search", Leads: 25}}, nil)

	overview, err := svc.GetOverview(context.Background(), 30)
	require.NoError(t, err)

	kpis := overview.KPIs
	assert.Equal(t, 100, kpis.TotalLeads)
	assert.Equal(t, 80, kpis.PreviousLeads)
	assert.InDelta(t, 10.0, kpis.ConversionRate, 1e-9)
	assert.InDelta(t, 25.0, kpis.QualificationRate, 1e-9)
	assert.InDelta(t, 200.0, kpis.CPL, 1e-9)
	// roi = (50000 - 20000) / 20000 * 100
	assert.InDelta(t, 150.0, kpis.ROI, 1e-9)

	// 30 days back through today inclusive
	assert.Len(t, overview.DailyLeads, 31)
	assert.Equal(t, "2026-01-01", overview.DailyLeads[0].Date)
	assert.Equal(t, "2026-01-31", overview.DailyLeads[30].Date)
	assert.Equal(t, 8, overview.DailyLeads[14].Leads)
	assert.Equal(t, 0, overview.DailyLeads[1].Leads)

	// zero-count sources omitted, rest sorted desc with fixed colors
	require.Len(t, overview.SourceDistribution, 2)
	assert.Equal(t, domain.SourceMetaAds, overview.SourceDistribution[0].Name)
	assert.Equal(t, "#7c3aed", overview.SourceDistribution[0].Color)

	require.Len(t, overview.FunnelData, 4)
	assert.Equal(t, 100, overview.FunnelData[0].Value)
	assert.Equal(t, 50, overview.FunnelData[1].Value)
	assert.Equal(t, 25, overview.FunnelData[2].Value)
	assert.Equal(t, 10, overview.FunnelData[3].Value)
	// stage-to-stage: 10/25
	assert.InDelta(t, 40.0, overview.FunnelData[3].ConversionFromPrevious, 1e-9)
	// funnel percentages never increase down the funnel
	for i := 1; i < 4; i++ {
		assert.LessOrEqual(t, overview.FunnelData[i].Percentage, overview.FunnelData[i-1].Percentage)
	}
}

func TestAnalyticsService_GetOverviewZeroData(t *testing.T) {
	svc, repo, _ := newAnalyticsFixture(t)

	repo.EXPECT().LeadTotals(gomock.Any(), gomock.Any()).Return(&domain.LeadTotals{}, nil).Times(2)
	repo.EXPECT().SpendTotal(gomock.Any(), gomock.Any()).Return(0.0, nil).Times(2)
	repo.EXPECT().DailyCounts(gomock.Any(), gomock.Any()).Return(nil, nil)
	repo.EXPECT().SourceCounts(gomock.Any()).Return(nil, nil)
	repo.EXPECT().StatusCounts(gomock.Any()).Return(&domain.StatusCounts{}, nil)
	repo.EXPECT().RecentLeads(gomock.Any(), gomock.Any()).Return(nil, nil)
	repo.EXPECT().TopCampaigns(gomock.Any(), gomock.Any()).Return(nil, nil)

	overview, err := svc.GetOverview(context.Background(), 30)
	require.NoError(t, err)

	// every ratio collapses to 0 instead of NaN
	assert.Zero(t, overview.KPIs.ConversionRate)
	assert.Zero(t, overview.KPIs.QualificationRate)
	assert.Zero(t, overview.KPIs.CPL)
	assert.Zero(t, overview.KPIs.ROI)
	assert.NotNil(t, overview.RecentLeads)
	assert.NotNil(t, overview.TopCampaigns)
	assert.Len(t, overview.DailyLeads, 31)
}

func TestAnalyticsService_GetCampaignReport(t *testing.T) {
	svc, repo, dimRepo := newAnalyticsFixture(t)

	repo.EXPECT().CampaignLeadMetrics(gomock.Any(), gomock.Any()).
		Return([]domain.CampaignLeadMetrics{
			{CampaignID: 7, Name: "Brand Search", Platform: domain.PlatformGoogle, FunnelStage: "BOFU", IsActive: true, Leads: 25, Qualified: 10, Converted: 4, Revenue: 18000},
			{CampaignID: 8, Name: "Old Retargeting", Platform: domain.PlatformMeta, IsActive: false, Leads: 5},
		}, nil)
	repo.EXPECT().CampaignSpend(gomock.Any(), gomock.Any()).
		Return([]domain.CampaignSpend{{CampaignID: 7, Spend: 5000, Impressions: 100000, Clicks: 2000}}, nil)
	repo.EXPECT().PlatformLeadMetrics(gomock.Any(), gomock.Any()).
		Return([]domain.PlatformLeadMetrics{{Platform: domain.PlatformGoogle, Leads: 25, Converted: 4, Revenue: 18000}}, nil)
	repo.EXPECT().PlatformSpend(gomock.Any(), gomock.Any()).
		Return([]domain.PlatformSpend{{Platform: domain.PlatformGoogle, Spend: 5000, Impressions: 100000, Clicks: 2000}}, nil)
	repo.EXPECT().DailySpend(gomock.Any(), gomock.Any()).
		Return([]domain.DailySpend{{DateKey: 20260120, Spend: 250, Impressions: 5000, Clicks: 90}}, nil)
	repo.EXPECT().DailyCampaignLeadCounts(gomock.Any(), gomock.Any()).
		Return(map[int]int{20260120: 5}, nil)
	repo.EXPECT().CampaignLeadTotals(gomock.Any(), gomock.Any()).
		Return(&domain.CampaignLeadTotals{Leads: 30, Revenue: 18000}, nil)
	repo.EXPECT().SpendTotal(gomock.Any(), gomock.Any()).Return(6000.0, nil)
	dimRepo.EXPECT().CountCampaigns(gomock.Any(), true).Return(4, nil)

	report, err := svc.GetCampaignReport(context.Background(), 30)
	require.NoError(t, err)

	// inactive campaigns are dropped from the performance table
	require.Len(t, report.Campaigns, 1)
	c := report.Campaigns[0]
	assert.Equal(t, int64(7), c.CampaignID)
	assert.InDelta(t, 200.0, c.CPL, 1e-9)
	assert.InDelta(t, 16.0, c.ConversionRate, 1e-9)
	assert.InDelta(t, 260.0, c.ROI, 1e-9)

	// the three platforms are always present
	require.Len(t, report.Platforms, 3)
	assert.Equal(t, domain.PlatformMeta, report.Platforms[0].Platform)
	assert.Zero(t, report.Platforms[0].CPL)
	google := report.Platforms[1]
	assert.Equal(t, domain.PlatformGoogle, google.Platform)
	assert.InDelta(t, 200.0, google.CPL, 1e-9)

	require.Len(t, report.SpendTrend, 1)
	assert.Equal(t, "2026-01-20", report.SpendTrend[0].Date)
	assert.InDelta(t, 50.0, report.SpendTrend[0].CPL, 1e-9)

	assert.Equal(t, 4, report.Stats.TotalCampaigns)
	assert.InDelta(t, 200.0, report.Stats.AvgCPL, 1e-9)
	assert.InDelta(t, 200.0, report.Stats.ROI, 1e-9)
}

func TestAnalyticsService_GetFunnelReport(t *testing.T) {
	svc, repo, _ := newAnalyticsFixture(t)

	repo.EXPECT().StatusCounts(gomock.Any()).
		Return(&domain.StatusCounts{New: 40, Contacted: 25, Qualified: 15, Converted: 10, Unqualified: 10}, nil)
	repo.EXPECT().SourceFunnelCounts(gomock.Any()).
		Return([]domain.SourceFunnelCount{
			{SourceID: 1, Name: domain.SourceMetaAds, Total: 50, Contacted: 30, Qualified: 15, Converted: 6},
			{SourceID: 9, Name: domain.SourceOther, Total: 0},
		}, nil)
	repo.EXPECT().DailyCounts(gomock.Any(), gomock.Any()).
		Return([]domain.DailyCount{{DateKey: 20260130, Leads: 10, Qualified: 4, Converted: 2}}, nil)

	report, err := svc.GetFunnelReport(context.Background(), 30)
	require.NoError(t, err)

	require.Len(t, report.Funnel, 4)
	assert.Equal(t, "New Leads", report.Funnel[0].Name)

	require.Len(t, report.BySource, 1)
	meta := report.BySource[0]
	assert.InDelta(t, 60.0, meta.ContactRate, 1e-9)
	// qualification rate is relative to contacted leads
	assert.InDelta(t, 50.0, meta.QualificationRate, 1e-9)
	assert.InDelta(t, 12.0, meta.ConversionRate, 1e-9)

	assert.Len(t, report.Trend, 31)
	last := report.Trend[30]
	assert.Equal(t, "2026-01-30", report.Trend[29].Date)
	assert.InDelta(t, 20.0, report.Trend[29].ConversionRate, 1e-9)
	assert.Zero(t, last.ConversionRate)

	dropOff := report.DropOff
	assert.Equal(t, 100, dropOff.Total)
	assert.InDelta(t, 10.0, dropOff.UnqualifiedRate, 1e-9)
	assert.InDelta(t, 40.0, dropOff.StuckAtNewRate, 1e-9)
	assert.InDelta(t, 25.0, dropOff.StuckAtContactedRate, 1e-9)
}

func TestAnalyticsService_GetPredictiveReport(t *testing.T) {
	svc, repo, _ := newAnalyticsFixture(t)

	repo.EXPECT().ScoreBandCounts(gomock.Any()).
		Return([]domain.ScoreBandCount{
			{Band: "41-60", Count: 30, Converted: 3},
			{Band: "61-80", Count: 50, Converted: 10},
			{Band: "81-100", Count: 20, Converted: 8},
		}, nil)
	repo.EXPECT().ScoreOverview(gomock.Any()).
		Return(&domain.ScoreOverview{TotalLeads: 100, HighScoreLeads: 40, HighScoreNew: 12, HighScoreConverted: 15, AvgScore: 63.2}, nil)
	repo.EXPECT().AnomalyCounts(gomock.Any(), fixedNow.Add(-staleLeadAge)).
		Return(&domain.AnomalyCounts{HighScoreUnqualified: 2, LowScoreConverted: 0, StaleNew: 5}, nil)
	repo.EXPECT().DailyCounts(gomock.Any(), gomock.Any()).
		Return([]domain.DailyCount{
			{DateKey: 20260129, Leads: 9},
			{DateKey: 20260130, Leads: 11},
		}, nil)

	report, err := svc.GetPredictiveReport(context.Background(), 7)
	require.NoError(t, err)

	// all five bands in order, zero-filled
	require.Len(t, report.ScoreDistribution, 5)
	assert.Equal(t, "0-20", report.ScoreDistribution[0].Range)
	assert.Zero(t, report.ScoreDistribution[0].Count)
	assert.Equal(t, 50, report.ScoreDistribution[3].Count)
	assert.InDelta(t, 50.0, report.ScoreDistribution[3].Percentage, 1e-9)

	require.Len(t, report.ConversionProbability, 5)
	top := report.ConversionProbability[4]
	assert.InDelta(t, 40.0, top.Probability, 1e-9)
	assert.Equal(t, 8, top.PredictedConversions)

	assert.Len(t, report.BestContactTimes, 7)

	require.Len(t, report.Insights, 4)
	assert.Equal(t, 40, report.Insights[0].Value)
	assert.Equal(t, domain.TrendUp, report.Insights[0].Trend)
	assert.Equal(t, "37.5%", report.Insights[1].Value)
	assert.Equal(t, domain.InsightSuccess, report.Insights[1].Type)
	assert.Equal(t, 12, report.Insights[2].Value)
	assert.Equal(t, domain.InsightError, report.Insights[2].Type)
	assert.Equal(t, 63, report.Insights[3].Value)

	// mean of observed days = (9+11)/2 = 10
	require.Len(t, report.Forecast.Forecast, 7)
	assert.Equal(t, 10, report.Forecast.AvgDailyLeads)
	assert.Equal(t, "2026-02-01", report.Forecast.Forecast[0].Date)
	assert.Equal(t, 10, report.Forecast.Forecast[0].Predicted)
	assert.Equal(t, 7, report.Forecast.Forecast[0].Lower)
	assert.Equal(t, 13, report.Forecast.Forecast[0].Upper)

	// only rules with a non-zero count emit anomalies
	require.Len(t, report.Anomalies, 2)
	assert.Equal(t, "High-Score Leads Marked Unqualified", report.Anomalies[0].Title)
	assert.Equal(t, 5, report.Anomalies[1].Count)
}

func TestBuildForecast_Empty(t *testing.T) {
	forecast := BuildForecast(nil, fixedNow, 7)
	assert.Zero(t, forecast.AvgDailyLeads)
	require.Len(t, forecast.Forecast, 7)
	for _, p := range forecast.Forecast {
		assert.Zero(t, p.Predicted)
		assert.Zero(t, p.Lower)
		assert.Zero(t, p.Upper)
	}
}

func TestBuildForecast_Deterministic(t *testing.T) {
	history := []domain.DailyCount{{DateKey: 20260129, Leads: 4}, {DateKey: 20260130, Leads: 8}}
	first := BuildForecast(history, fixedNow, 14)
	second := BuildForecast(history, fixedNow, 14)
	assert.Equal(t, first, second)
}
