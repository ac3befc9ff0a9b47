// AngelaMos | 2026
// migrations.go

package core

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// migrations is an ordered list of migration groups. Each group runs in a
// single transaction; the version number is the 1-based index into the slice.
var migrations = [][]string{
	// Migration 1: CRM core tables
	{
		`CREATE TABLE users (
			id TEXT PRIMARY KEY,
			email VARCHAR(255) NOT NULL UNIQUE,
			first_name VARCHAR(100),
			last_name VARCHAR(100),
			role VARCHAR(50) NOT NULL DEFAULT 'sales',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE leads (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			email VARCHAR(255) NOT NULL,
			phone VARCHAR(20),
			company VARCHAR(200),
			job_title VARCHAR(100),
			source VARCHAR(100),
			status VARCHAR(50) NOT NULL DEFAULT 'new',
			notes TEXT,
			assigned_to TEXT REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX idx_leads_created ON leads(created_at)`,

		`CREATE TABLE deals (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			lead_id UUID REFERENCES leads(id),
			title VARCHAR(200) NOT NULL,
			value INTEGER NOT NULL DEFAULT 0,
			stage VARCHAR(50) NOT NULL DEFAULT 'prospecting',
			probability INTEGER NOT NULL DEFAULT 0,
			expected_close_date TIMESTAMPTZ,
			actual_close_date TIMESTAMPTZ,
			assigned_to TEXT REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX idx_deals_created ON deals(created_at)`,
		`CREATE INDEX idx_deals_lead ON deals(lead_id)`,

		`CREATE TABLE activities (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			type VARCHAR(50) NOT NULL,
			subject VARCHAR(200) NOT NULL,
			description TEXT,
			lead_id UUID REFERENCES leads(id),
			deal_id UUID REFERENCES deals(id),
			user_id TEXT REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX idx_activities_created ON activities(created_at)`,

		// legacy table, kept for compatibility with pre-CRM data
		`CREATE TABLE user_messages (
			user_id TEXT PRIMARY KEY,
			create_ts TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			message TEXT NOT NULL
		)`,
	},
}

// Migrate applies all pending migrations. It is safe to call on every
// startup; applied versions are tracked in schema_migrations.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	var current int
	err = db.GetContext(ctx, &current,
		`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	for i, group := range migrations {
		version := i + 1
		if version <= current {
			continue
		}

		err := InTx(ctx, db, func(tx *sqlx.Tx) error {
			for _, stmt := range group {
				if _, err := tx.ExecContext(ctx, stmt); err != nil {
					return fmt.Errorf("apply statement: %w", err)
				}
			}

			_, err := tx.ExecContext(ctx,
				`INSERT INTO schema_migrations (version) VALUES ($1)`, version)
			if err != nil {
				return fmt.Errorf("record version: %w", err)
			}

			return nil
		})
		if err != nil {
			return fmt.Errorf("migration %d: %w", version, err)
		}
	}

	return nil
}

// SchemaVersion returns the highest applied migration version.
func SchemaVersion(ctx context.Context, db *sqlx.DB) (int, error) {
	var version int
	err := db.GetContext(ctx, &version,
		`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`)
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return version, nil
}
