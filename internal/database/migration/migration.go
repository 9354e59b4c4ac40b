package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/danielmorris2014/fiber-guys-sub000/internal/logger"
)

// Package migration creates the submission tables on first boot. The
// leads table doubles as the sentinel: when it exists the whole schema is
// assumed current, mirroring how the original deployment was provisioned
// once and never versioned.

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_leads",
		SQL: `CREATE TABLE IF NOT EXISTS leads (
  id                UUID        PRIMARY KEY,
  company_name      TEXT        NOT NULL,
  contact_name      TEXT        NOT NULL,
  email             TEXT        NOT NULL,
  phone             TEXT        NOT NULL,
  city_state        TEXT        NOT NULL DEFAULT '',
  service_needed    TEXT        NOT NULL,
  target_date       TEXT        NOT NULL DEFAULT '',
  estimated_footage TEXT        NOT NULL DEFAULT '',
  notes             TEXT        NOT NULL DEFAULT '',
  file_urls         JSONB       NOT NULL DEFAULT '[]'::jsonb,
  created_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_applications",
		SQL: `CREATE TABLE IF NOT EXISTS applications (
  id                   UUID        PRIMARY KEY,
  first_name           TEXT        NOT NULL,
  last_name            TEXT        NOT NULL,
  email                TEXT        NOT NULL,
  phone                TEXT        NOT NULL,
  position             TEXT        NOT NULL,
  years_experience     TEXT        NOT NULL,
  has_cdl              TEXT        NOT NULL,
  equipment_experience TEXT        NOT NULL DEFAULT '',
  resume_url           TEXT        NOT NULL DEFAULT '',
  tracking_number      TEXT        NOT NULL,
  status               TEXT        NOT NULL DEFAULT 'submitted',
  created_at           TIMESTAMPTZ NOT NULL DEFAULT now(),
  status_updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_applications_email",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_applications_email ON applications (email);`,
	},
	{
		Name: "create_table_referrals",
		SQL: `CREATE TABLE IF NOT EXISTS referrals (
  id              UUID        PRIMARY KEY,
  referrer_name   TEXT        NOT NULL,
  referrer_email  TEXT        NOT NULL,
  referrer_phone  TEXT        NOT NULL DEFAULT '',
  candidate_name  TEXT        NOT NULL,
  candidate_email TEXT        NOT NULL,
  candidate_phone TEXT        NOT NULL DEFAULT '',
  position        TEXT        NOT NULL DEFAULT '',
  notes           TEXT        NOT NULL DEFAULT '',
  status          TEXT        NOT NULL DEFAULT 'submitted',
  created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_talent_pool",
		SQL: `CREATE TABLE IF NOT EXISTS talent_pool (
  id            UUID        PRIMARY KEY,
  email         TEXT        NOT NULL UNIQUE,
  subscribed_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
}

// EnsureMigrated creates the schema if the sentinel table is missing.
func EnsureMigrated(ctx context.Context, db *sql.DB, log logger.Logger) error {
	start := time.Now()

	var exists bool
	query := "SELECT to_regclass('public.leads') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("schema already exists, skipping migration", map[string]interface{}{
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}
		log.Info("migration step applied", map[string]interface{}{
			"step":        step.Name,
			"duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	log.Info("schema migration complete", map[string]interface{}{
		"steps":       len(steps),
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return nil
}
