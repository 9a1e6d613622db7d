package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadpulse/leadpulse/internal/domain"
)

func TestDimensionRepository_GetSourceByName(t *testing.T) {
	t.Run("returns the matching source", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewDimensionRepository(db)

		mock.ExpectQuery(`FROM lead_sources WHERE name = \$1`).
			WithArgs(domain.SourceMetaAds).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "source_type", "is_paid"}).
				AddRow(1, domain.SourceMetaAds, "paid_social", true))

		source, err := repo.GetSourceByName(context.Background(), domain.SourceMetaAds)
		require.NoError(t, err)
		assert.Equal(t, 1, source.ID)
		assert.True(t, source.IsPaid)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for an unknown name", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewDimensionRepository(db)

		mock.ExpectQuery(`FROM lead_sources WHERE name = \$1`).
			WithArgs("Carrier Pigeon").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "source_type", "is_paid"}))

		source, err := repo.GetSourceByName(context.Background(), "Carrier Pigeon")
		assert.Nil(t, source)
		assert.True(t, domain.IsNotFound(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDimensionRepository_GetCampaignByUTM(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDimensionRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(`WHERE utm_source = \$1 AND utm_medium = \$2`).
		WithArgs("google", "cpc").
		WillReturnRows(sqlmock.NewRows([]string{"id", "platform", "name", "funnel_stage", "utm_source", "utm_medium", "is_active", "created_at"}).
			AddRow(int64(7), domain.PlatformGoogle, "Brand Search", "BOFU", "google", "cpc", true, now))

	campaign, err := repo.GetCampaignByUTM(context.Background(), "google", "cpc")
	require.NoError(t, err)
	assert.Equal(t, int64(7), campaign.ID)
	assert.Equal(t, domain.PlatformGoogle, campaign.Platform)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDimensionRepository_ListCampaigns(t *testing.T) {
	t.Run("filters active campaigns", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewDimensionRepository(db)
		now := time.Now().UTC()

		mock.ExpectQuery(`FROM campaigns WHERE is_active = \$1 ORDER BY name ASC`).
			WithArgs(true).
			WillReturnRows(sqlmock.NewRows([]string{"id", "platform", "name", "funnel_stage", "utm_source", "utm_medium", "is_active", "created_at"}).
				AddRow(int64(7), domain.PlatformGoogle, "Brand Search", "BOFU", "google", "cpc", true, now))

		campaigns, err := repo.ListCampaigns(context.Background(), true)
		require.NoError(t, err)
		require.Len(t, campaigns, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lists all campaigns", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewDimensionRepository(db)

		mock.ExpectQuery(`FROM campaigns ORDER BY name ASC`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "platform", "name", "funnel_stage", "utm_source", "utm_medium", "is_active", "created_at"}))

		campaigns, err := repo.ListCampaigns(context.Background(), false)
		require.NoError(t, err)
		assert.Empty(t, campaigns)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDimensionRepository_CountCampaigns(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDimensionRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM campaigns WHERE is_active = \$1`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(6))

	count, err := repo.CountCampaigns(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, 6, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDimensionRepository_LandingPages(t *testing.T) {
	t.Run("matches by path fragment", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewDimensionRepository(db)

		mock.ExpectQuery(`WHERE page_url LIKE`).
			WithArgs("/demo").
			WillReturnRows(sqlmock.NewRows([]string{"id", "page_url", "page_name"}).
				AddRow(3, "https://example.com/demo", "Demo Request"))

		page, err := repo.GetLandingPageByPath(context.Background(), "/demo")
		require.NoError(t, err)
		assert.Equal(t, "Demo Request", page.PageName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("default page is the lowest id", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewDimensionRepository(db)

		mock.ExpectQuery(`FROM landing_pages ORDER BY id ASC LIMIT 1`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "page_url", "page_name"}).
				AddRow(1, "/", "Default"))

		page, err := repo.GetDefaultLandingPage(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, page.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
