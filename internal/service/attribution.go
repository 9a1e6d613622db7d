package service

import (
	"context"
	"strings"

	"github.com/leadpulse/leadpulse/internal/domain"
	"github.com/leadpulse/leadpulse/pkg/logger"
)

// AttributionResolver maps submission UTM parameters onto the static source
// and campaign dimensions.
type AttributionResolver struct {
	repo   domain.DimensionRepository
	logger logger.Logger
}

// NewAttributionResolver creates a new attribution resolver
func NewAttributionResolver(repo domain.DimensionRepository, logger logger.Logger) *AttributionResolver {
	return &AttributionResolver{repo: repo, logger: logger}
}

// SourceNameFor maps a raw utm_source value onto a well-known source name.
// An absent utm_source means the visitor arrived directly.
func SourceNameFor(utmSource string) string {
	switch strings.ToLower(strings.TrimSpace(utmSource)) {
	case "":
		return domain.SourceDirect
	case "facebook", "instagram", "meta":
		return domain.SourceMetaAds
	case "google":
		return domain.SourceGoogleAds
	case "tiktok":
		return domain.SourceTikTokAds
	case "organic":
		return domain.SourceOrganicSearch
	default:
		return domain.SourceOther
	}
}

// ResolveSource returns the source dimension row for the submission,
// falling back to Other when the mapped name is not seeded.
func (r *AttributionResolver) ResolveSource(ctx context.Context, sub *domain.LeadSubmission) (*domain.LeadSource, error) {
	name := SourceNameFor(sub.UTMSource)

	source, err := r.repo.GetSourceByName(ctx, name)
	if err == nil {
		return source, nil
	}
	if !domain.IsNotFound(err) {
		return nil, err
	}

	r.logger.WithField("source_name", name).Warn("lead source not seeded, falling back to Other")
	return r.repo.GetSourceByName(ctx, domain.SourceOther)
}

// ResolveCampaign matches the submission's UTM pair to a campaign. A miss
// is not an error: organic and direct traffic has no campaign.
func (r *AttributionResolver) ResolveCampaign(ctx context.Context, sub *domain.LeadSubmission) (*domain.Campaign, error) {
	if sub.UTMSource == "" || sub.UTMMedium == "" {
		return nil, nil
	}

	campaign, err := r.repo.GetCampaignByUTM(ctx, strings.ToLower(sub.UTMSource), strings.ToLower(sub.UTMMedium))
	if domain.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return campaign, nil
}

// ResolveLandingPage matches the submitted landing page path, falling back
// to the default page.
func (r *AttributionResolver) ResolveLandingPage(ctx context.Context, sub *domain.LeadSubmission) (*domain.LandingPage, error) {
	if sub.LandingPage != "" {
		page, err := r.repo.GetLandingPageByPath(ctx, sub.LandingPage)
		if err == nil {
			return page, nil
		}
		if !domain.IsNotFound(err) {
			return nil, err
		}
	}
	return r.repo.GetDefaultLandingPage(ctx)
}
