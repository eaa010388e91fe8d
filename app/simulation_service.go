// Package app wires domain computations to catalogs and persistence.
package app

import (
	"context"
	"log"

	"welltwin/domain/core"
	"welltwin/domain/hydraulics"
	"welltwin/domain/slurry"
	"welltwin/domain/wellbore"
	"welltwin/internal/errors"
	"welltwin/ports"
)

// SimulationInput identifies a catalog slurry plus the job parameters.
type SimulationInput struct {
	SlurryKey core.SlurryKey         `json:"slurry_key"`
	Geometry  wellbore.Geometry      `json:"geometry"`
	Plan      hydraulics.PumpingPlan `json:"plan"`
}

// JobResult is a complete simulated cementing job: the effective fluid
// properties used, the computed profiles, and the persisted run record.
type JobResult struct {
	Run       ports.JobRun               `json:"run"`
	Catalog   slurry.Slurry              `json:"catalog_slurry"`
	Effective slurry.Slurry              `json:"effective_slurry"`
	Profile   hydraulics.Profile         `json:"profile"`
	Verdict   hydraulics.WindowVerdict   `json:"verdict"`
	Rheology  []hydraulics.RheologyPoint `json:"rheology"`
	Placement hydraulics.Placement       `json:"placement"`
}

// SimulationService runs single cementing-job simulations.
type SimulationService struct {
	catalog ports.SlurryCatalog
	jobs    ports.JobRepository
}

// NewSimulationService creates a simulation service
func NewSimulationService(catalog ports.SlurryCatalog, jobs ports.JobRepository) *SimulationService {
	return &SimulationService{catalog: catalog, jobs: jobs}
}

// Simulate runs Evaluate and persists the resulting job run.
func (s *SimulationService) Simulate(ctx context.Context, input SimulationInput) (*JobResult, error) {
	result, err := s.Evaluate(input)
	if err != nil {
		return nil, err
	}
	if err := s.jobs.Create(ctx, &result.Run); err != nil {
		// Persistence failures do not fail the simulation itself.
		log.Printf("[Simulation] Failed to persist job run %s: %v", result.Run.ID, err)
	}
	return result, nil
}

// Evaluate validates the input, applies thermal corrections when the plan
// asks for them, and computes the ECD profile, rheology curve and placement
// schedule. Nothing is persisted.
func (s *SimulationService) Evaluate(input SimulationInput) (*JobResult, error) {
	if err := input.Geometry.Validate(); err != nil {
		return nil, errors.InvalidInput(err.Error())
	}
	if err := input.Plan.Validate(); err != nil {
		return nil, errors.InvalidInput(err.Error())
	}

	base, ok := s.catalog.Get(input.SlurryKey)
	if !ok {
		return nil, errors.NotFound("slurry", input.SlurryKey.String())
	}

	effective := base
	if input.Plan.ApplyThermalCorr {
		effective = base.AtTemp(input.Plan.BHCTF)
	}

	profile := hydraulics.ComputeProfile(hydraulics.ECDInputs{
		DensityPPG:       effective.DensityPPG,
		PlasticViscosity: effective.PlasticViscosity,
		YieldPoint:       effective.YieldPoint,
		PumpRateBblMin:   input.Plan.PumpRateBblMin,
	}, input.Geometry)
	verdict := hydraulics.CheckWindow(profile, input.Plan.PorePressurePPG, input.Plan.FractureGradPPG)
	placement := hydraulics.NewPlacement(input.Geometry, input.Plan.PumpRateBblMin)
	rheology := hydraulics.BinghamCurve(effective.PlasticViscosity, effective.YieldPoint)

	run := ports.JobRun{
		ID:               core.NewJobID(),
		SlurryName:       base.Name,
		Geometry:         input.Geometry,
		Plan:             input.Plan,
		DensityUsedPPG:   effective.DensityPPG,
		ViscosityUsedCP:  effective.PlasticViscosity,
		YieldPointUsed:   effective.YieldPoint,
		AnnulusVolumeBbl: placement.VolumeBbl,
		PumpTimeMin:      placement.PumpTimeMin,
		MaxECDPPG:        verdict.MaxECDPPG,
		WindowSafe:       verdict.Safe,
		CreatedAt:        core.Now(),
	}

	return &JobResult{
		Run:       run,
		Catalog:   base,
		Effective: effective,
		Profile:   profile,
		Verdict:   verdict,
		Rheology:  rheology,
		Placement: placement,
	}, nil
}

// Recent returns the most recently simulated job runs.
func (s *SimulationService) Recent(ctx context.Context, limit int) ([]*ports.JobRun, error) {
	return s.jobs.ListRecent(ctx, limit)
}

// UsageBySlurry reports how often each slurry has been simulated.
func (s *SimulationService) UsageBySlurry(ctx context.Context) (map[string]int, error) {
	return s.jobs.CountBySlurry(ctx)
}
