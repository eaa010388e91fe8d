package ports

import (
	"context"

	"welltwin/domain/core"
	"welltwin/domain/hydraulics"
	"welltwin/domain/wellbore"
)

// JobRun is a persisted record of one simulated cementing job.
type JobRun struct {
	ID         core.JobID             `json:"id" db:"id"`
	SlurryName string                 `json:"slurry_name" db:"slurry_name"`
	Geometry   wellbore.Geometry      `json:"geometry"`
	Plan       hydraulics.PumpingPlan `json:"plan"`

	DensityUsedPPG   float64 `json:"density_used_ppg" db:"density_used_ppg"`
	ViscosityUsedCP  float64 `json:"viscosity_used_cp" db:"viscosity_used_cp"`
	YieldPointUsed   float64 `json:"yield_point_used" db:"yield_point_used"`
	AnnulusVolumeBbl float64 `json:"annulus_volume_bbl" db:"annulus_volume_bbl"`
	PumpTimeMin      float64 `json:"pump_time_min" db:"pump_time_min"`
	MaxECDPPG        float64 `json:"max_ecd_ppg" db:"max_ecd_ppg"`
	WindowSafe       bool    `json:"window_safe" db:"window_safe"`

	CreatedAt core.Timestamp `json:"created_at" db:"created_at"`
}

// JobRepository persists simulated job runs for later review.
type JobRepository interface {
	Create(ctx context.Context, run *JobRun) error
	GetByID(ctx context.Context, id core.JobID) (*JobRun, error)
	ListRecent(ctx context.Context, limit int) ([]*JobRun, error)
	CountBySlurry(ctx context.Context) (map[string]int, error)
}
