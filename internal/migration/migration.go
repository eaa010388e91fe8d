package migration

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"

	"welltwin/internal/errors"
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

// Run executes all database migrations in the correct order
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	if err := r.createJobRunsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create job_runs table")
	}

	if err := r.createIndexes(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create indexes")
	}

	log.Printf("[Migration] Schema version %s applied", r.version)
	return nil
}

func (r *MigrationRunner) createJobRunsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS job_runs (
			id TEXT PRIMARY KEY,
			slurry_name TEXT NOT NULL,
			geometry JSONB NOT NULL,
			plan JSONB NOT NULL,
			density_used_ppg DOUBLE PRECISION NOT NULL,
			viscosity_used_cp DOUBLE PRECISION NOT NULL,
			yield_point_used DOUBLE PRECISION NOT NULL,
			annulus_volume_bbl DOUBLE PRECISION NOT NULL,
			pump_time_min DOUBLE PRECISION NOT NULL,
			max_ecd_ppg DOUBLE PRECISION NOT NULL,
			window_safe BOOLEAN NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	return err
}

func (r *MigrationRunner) createIndexes(ctx context.Context, db *sqlx.DB) error {
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_job_runs_created_at ON job_runs (created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_job_runs_slurry_name ON job_runs (slurry_name)`,
	}
	for _, stmt := range indexes {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
