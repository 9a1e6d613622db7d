package database

import (
	"database/sql"
	"fmt"

	"github.com/leadpulse/leadpulse/internal/database/schema"
	"github.com/leadpulse/leadpulse/internal/domain"
)

// seedSources is the fixed acquisition-channel dimension. The attribution
// resolver depends on these names existing.
var seedSources = []struct {
	name       string
	sourceType string
	isPaid     bool
}{
	{domain.SourceMetaAds, "Paid", true},
	{domain.SourceGoogleAds, "Paid", true},
	{domain.SourceTikTokAds, "Paid", true},
	{domain.SourceOrganicSearch, "Organic", false},
	{domain.SourceOrganicSocial, "Organic", false},
	{domain.SourceDirect, "Direct", false},
	{domain.SourceReferral, "Organic", false},
	{domain.SourceEmail, "Owned", false},
	{domain.SourceOther, "Other", false},
}

// InitializeDatabase creates all necessary database tables if they don't
// exist and seeds the dimension rows the intake pipeline relies on.
func InitializeDatabase(db *sql.DB) error {
	// Run all table creation queries
	for _, query := range schema.TableDefinitions {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	if err := seedLeadSources(db); err != nil {
		return err
	}

	return seedDefaultLandingPage(db)
}

func seedLeadSources(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM lead_sources").Scan(&count); err != nil {
		return fmt.Errorf("failed to count lead sources: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, s := range seedSources {
		_, err := db.Exec(
			"INSERT INTO lead_sources (name, source_type, is_paid) VALUES ($1, $2, $3) ON CONFLICT (name) DO NOTHING",
			s.name, s.sourceType, s.isPaid,
		)
		if err != nil {
			return fmt.Errorf("failed to seed lead source %s: %w", s.name, err)
		}
	}
	return nil
}

func seedDefaultLandingPage(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM landing_pages").Scan(&count); err != nil {
		return fmt.Errorf("failed to count landing pages: %w", err)
	}
	if count > 0 {
		return nil
	}

	_, err := db.Exec(
		"INSERT INTO landing_pages (page_url, page_name) VALUES ($1, $2) ON CONFLICT (page_url) DO NOTHING",
		"/", "Default",
	)
	if err != nil {
		return fmt.Errorf("failed to seed default landing page: %w", err)
	}
	return nil
}
