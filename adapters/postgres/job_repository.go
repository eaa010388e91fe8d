// Package postgres implements persistence adapters for PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"welltwin/domain/core"
	"welltwin/internal/errors"
	"welltwin/ports"
)

// JobRepositoryImpl implements JobRepository for PostgreSQL
type JobRepositoryImpl struct {
	db *sqlx.DB
}

// NewJobRepository creates a new PostgreSQL job repository
func NewJobRepository(db *sqlx.DB) ports.JobRepository {
	return &JobRepositoryImpl{db: db}
}

// Create inserts a completed job run. Geometry and plan are stored as
// JSONB so schema changes in either do not need a migration.
func (r *JobRepositoryImpl) Create(ctx context.Context, run *ports.JobRun) error {
	geometryJSON, err := json.Marshal(run.Geometry)
	if err != nil {
		return fmt.Errorf("failed to marshal geometry: %w", err)
	}
	planJSON, err := json.Marshal(run.Plan)
	if err != nil {
		return fmt.Errorf("failed to marshal pumping plan: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO job_runs (
			id, slurry_name, geometry, plan,
			density_used_ppg, viscosity_used_cp, yield_point_used,
			annulus_volume_bbl, pump_time_min, max_ecd_ppg, window_safe,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		run.ID, run.SlurryName, geometryJSON, planJSON,
		run.DensityUsedPPG, run.ViscosityUsedCP, run.YieldPointUsed,
		run.AnnulusVolumeBbl, run.PumpTimeMin, run.MaxECDPPG, run.WindowSafe,
		run.CreatedAt.Time())
	if err != nil {
		return errors.Wrap(err, "failed to insert job run")
	}
	return nil
}

// GetByID retrieves a single job run
func (r *JobRepositoryImpl) GetByID(ctx context.Context, id core.JobID) (*ports.JobRun, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, slurry_name, geometry, plan,
			   density_used_ppg, viscosity_used_cp, yield_point_used,
			   annulus_volume_bbl, pump_time_min, max_ecd_ppg, window_safe,
			   created_at
		FROM job_runs
		WHERE id = $1`, id)

	run, err := scanJobRun(row)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("job run", string(id))
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get job run")
	}
	return run, nil
}

// ListRecent returns the newest job runs first
func (r *JobRepositoryImpl) ListRecent(ctx context.Context, limit int) ([]*ports.JobRun, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, slurry_name, geometry, plan,
			   density_used_ppg, viscosity_used_cp, yield_point_used,
			   annulus_volume_bbl, pump_time_min, max_ecd_ppg, window_safe,
			   created_at
		FROM job_runs
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list job runs")
	}
	defer rows.Close()

	var runs []*ports.JobRun
	for rows.Next() {
		run, err := scanJobRun(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan job run")
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// CountBySlurry returns how many runs were simulated per slurry name
func (r *JobRepositoryImpl) CountBySlurry(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT slurry_name, COUNT(*)
		FROM job_runs
		GROUP BY slurry_name`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count job runs")
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var name string
		var count int
		if err := rows.Scan(&name, &count); err != nil {
			return nil, errors.Wrap(err, "failed to scan job run count")
		}
		counts[name] = count
	}
	return counts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanJobRun(row rowScanner) (*ports.JobRun, error) {
	var run ports.JobRun
	var geometryJSON, planJSON []byte

	err := row.Scan(
		&run.ID, &run.SlurryName, &geometryJSON, &planJSON,
		&run.DensityUsedPPG, &run.ViscosityUsedCP, &run.YieldPointUsed,
		&run.AnnulusVolumeBbl, &run.PumpTimeMin, &run.MaxECDPPG, &run.WindowSafe,
		&run.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(geometryJSON, &run.Geometry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal geometry: %w", err)
	}
	if err := json.Unmarshal(planJSON, &run.Plan); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pumping plan: %w", err)
	}
	return &run, nil
}
