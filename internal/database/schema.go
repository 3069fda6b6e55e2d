package database

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS teams (
		name  TEXT PRIMARY KEY,
		score INTEGER NOT NULL DEFAULT 1200
	)`,
	`CREATE TABLE IF NOT EXISTS question_logs (
		id          BIGSERIAL PRIMARY KEY,
		question    TEXT,
		team        TEXT NOT NULL REFERENCES teams(name) ON DELETE CASCADE,
		points      INTEGER NOT NULL,
		round_label TEXT,
		time        TIMESTAMPTZ DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_question_logs_team ON question_logs(team)`,
}

// Migrate creates the scoreboard tables. Safe to call multiple times.
func (db *DB) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	return nil
}
