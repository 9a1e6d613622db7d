// Package schema defines the database schema for development.
//
// DEVELOPMENT USE ONLY
// This file contains the current database schema and is used for development and testing.
// Before deploying to production, these table definitions should be converted to proper migrations.
package schema

// TableDefinitions contains all the SQL statements to create the database tables
// Don't put REFERENCES and don't put CHECK constraints in the CREATE TABLE statements
var TableDefinitions = []string{
	`CREATE TABLE IF NOT EXISTS lead_sources (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) UNIQUE NOT NULL,
		source_type VARCHAR(50) NOT NULL,
		is_paid BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS campaigns (
		id BIGSERIAL PRIMARY KEY,
		platform VARCHAR(50) NOT NULL,
		name VARCHAR(255) NOT NULL,
		funnel_stage VARCHAR(10) NOT NULL DEFAULT 'tof',
		utm_source VARCHAR(100) NOT NULL,
		utm_medium VARCHAR(100) NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS landing_pages (
		id SERIAL PRIMARY KEY,
		page_url VARCHAR(500) UNIQUE NOT NULL,
		page_name VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS leads (
		id BIGSERIAL PRIMARY KEY,
		date_key INTEGER NOT NULL,
		email_hash VARCHAR(64) NOT NULL,
		phone_hash VARCHAR(64),
		first_name VARCHAR(255),
		company_name VARCHAR(255),
		job_title VARCHAR(255),
		status VARCHAR(20) NOT NULL DEFAULT 'new',
		score INTEGER NOT NULL DEFAULT 0,
		deal_value NUMERIC(12,2),
		utm_source VARCHAR(100),
		utm_medium VARCHAR(100),
		utm_campaign VARCHAR(255),
		utm_content VARCHAR(255),
		utm_term VARCHAR(255),
		fbc VARCHAR(255),
		fbp VARCHAR(255),
		gclid VARCHAR(255),
		source_id INTEGER NOT NULL,
		campaign_id BIGINT,
		landing_page_id INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL,
		contacted_at TIMESTAMP,
		qualified_at TIMESTAMP,
		converted_at TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_leads_created_at ON leads (created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_leads_status ON leads (status)`,
	`CREATE INDEX IF NOT EXISTS idx_leads_date_key ON leads (date_key)`,
	`CREATE INDEX IF NOT EXISTS idx_leads_campaign_id ON leads (campaign_id)`,
	`CREATE INDEX IF NOT EXISTS idx_leads_source_id ON leads (source_id)`,
	`CREATE TABLE IF NOT EXISTS ad_spend (
		id BIGSERIAL PRIMARY KEY,
		campaign_id BIGINT NOT NULL,
		date_key INTEGER NOT NULL,
		spend_date DATE NOT NULL,
		impressions BIGINT NOT NULL DEFAULT 0,
		clicks BIGINT NOT NULL DEFAULT 0,
		spend NUMERIC(12,2) NOT NULL DEFAULT 0,
		platform_leads INTEGER NOT NULL DEFAULT 0,
		UNIQUE (campaign_id, date_key)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_ad_spend_date_key ON ad_spend (date_key)`,
	`CREATE TABLE IF NOT EXISTS lead_attributions (
		id BIGSERIAL PRIMARY KEY,
		lead_id BIGINT NOT NULL,
		campaign_id BIGINT NOT NULL,
		model VARCHAR(50) NOT NULL,
		weight NUMERIC(4,2) NOT NULL DEFAULT 1.0,
		attributed_value NUMERIC(12,2),
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_lead_attributions_lead_id ON lead_attributions (lead_id)`,
	`CREATE TABLE IF NOT EXISTS raw_submissions (
		id UUID PRIMARY KEY,
		lead_id BIGINT NOT NULL,
		source VARCHAR(50) NOT NULL,
		payload JSONB NOT NULL,
		status VARCHAR(20) NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_raw_submissions_lead_id ON raw_submissions (lead_id)`,
}
