package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

var migrationStatements = []string{
	`DO $$ BEGIN CREATE TYPE nap_status AS ENUM ('running', 'completed'); EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
	`CREATE TABLE IF NOT EXISTS naps (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		started_at TIMESTAMPTZ NOT NULL,
		started_by TEXT NOT NULL,
		ended_at TIMESTAMPTZ,
		ended_by TEXT,
		duration_seconds BIGINT NOT NULL DEFAULT 0,
		status nap_status NOT NULL DEFAULT 'running'
	)`,
	`CREATE INDEX IF NOT EXISTS idx_naps_running ON naps (started_at) WHERE status = 'running'`,
	`CREATE TABLE IF NOT EXISTS events (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		occurred_at TIMESTAMPTZ NOT NULL,
		kind TEXT NOT NULL,
		actor TEXT NOT NULL,
		actor_id BIGINT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_events_occurred ON events (occurred_at)`,
}

func RunMigration(ctx context.Context, pool *pgxpool.Pool) error {
	for _, s := range migrationStatements {
		stmt := strings.TrimSpace(s)
		if stmt == "" {
			continue
		}
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
