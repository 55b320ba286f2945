package migration

import (
	"context"

	"normtest/internal/errors"

	"github.com/jmoiron/sqlx"
)

// Migrator defines the interface for database migration operations
type Migrator interface {
	Run(ctx context.Context, db *sqlx.DB) error
	Version() string
}

// MigrationRunner handles database schema migrations
type MigrationRunner struct {
	version string
}

// NewRunner creates a new migration runner
func NewRunner() *MigrationRunner {
	return &MigrationRunner{
		version: "1.0.0",
	}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in order. Every statement is
// idempotent, so Run is safe on every startup.
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	if err := r.createResultsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create normality_results table")
	}

	if err := r.createIndexes(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create indexes")
	}

	return nil
}

func (r *MigrationRunner) createResultsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS normality_results (
			id UUID PRIMARY KEY,
			battery_id TEXT NOT NULL DEFAULT '',
			test_id VARCHAR(64) NOT NULL,
			n INTEGER NOT NULL,
			statistic DOUBLE PRECISION NOT NULL,
			critical DOUBLE PRECISION,
			p_value DOUBLE PRECISION,
			alpha DOUBLE PRECISION NOT NULL,
			mode VARCHAR(16) NOT NULL,
			detail VARCHAR(16) NOT NULL,
			conclusion_code VARCHAR(16) NOT NULL,
			normal BOOLEAN NOT NULL,
			language VARCHAR(35) NOT NULL DEFAULT 'en',
			digits INTEGER NOT NULL DEFAULT 3,
			sample_hash TEXT NOT NULL DEFAULT '',
			summary TEXT NOT NULL DEFAULT '',
			decision JSONB NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)
	`)
	return err
}

func (r *MigrationRunner) createIndexes(ctx context.Context, db *sqlx.DB) error {
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_normality_results_created_at ON normality_results(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_normality_results_test_id ON normality_results(test_id)`,
		`CREATE INDEX IF NOT EXISTS idx_normality_results_battery_id ON normality_results(battery_id) WHERE battery_id <> ''`,
	}
	for _, stmt := range indexes {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
