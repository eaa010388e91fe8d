package app

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/semaphore"
	"gonum.org/v1/gonum/floats"

	"welltwin/domain/hydraulics"
	"welltwin/internal/errors"
)

// SweepPoint is one pump rate evaluated during a sweep.
type SweepPoint struct {
	PumpRateBblMin float64 `json:"pump_rate_bbl_min"`
	MaxECDPPG      float64 `json:"max_ecd_ppg"`
	PumpTimeMin    float64 `json:"pump_time_min"`
	Safe           bool    `json:"safe"`
}

// SweepResult covers a pump-rate grid for one slurry and geometry.
type SweepResult struct {
	Points []SweepPoint `json:"points"`

	// Highest pump rate that keeps the ECD inside the window, nil when
	// every rate on the grid breaches it.
	MaxSafeRate *SweepPoint `json:"max_safe_rate,omitempty"`
}

// SweepService evaluates a pumping plan across a grid of pump rates to find
// the fastest rate that stays inside the pressure window.
type SweepService struct {
	sims *SimulationService
	sem  *semaphore.Weighted
}

// NewSweepService creates a sweep service bounded to one worker per CPU.
func NewSweepService(sims *SimulationService) *SweepService {
	return &SweepService{
		sims: sims,
		sem:  semaphore.NewWeighted(int64(runtime.NumCPU())),
	}
}

// Sweep runs the simulation at n evenly spaced pump rates between lo and hi
// bbl/min. Each grid point runs concurrently, bounded by the semaphore.
func (s *SweepService) Sweep(ctx context.Context, input SimulationInput, lo, hi float64, n int) (*SweepResult, error) {
	if n < 2 {
		return nil, errors.InvalidInput("sweep needs at least 2 grid points")
	}
	if lo >= hi {
		return nil, errors.InvalidInput("sweep range must have lo < hi")
	}
	if lo < hydraulics.MinPumpRateBblMin || hi > hydraulics.MaxPumpRateBblMin {
		return nil, errors.InvalidInput("sweep range outside accepted pump rates")
	}

	rates := make([]float64, n)
	floats.Span(rates, lo, hi)

	points := make([]SweepPoint, n)
	errs := make([]error, n)

	for i, rate := range rates {
		if err := s.sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		go func(i int, rate float64) {
			defer s.sem.Release(1)

			in := input
			in.Plan.PumpRateBblMin = rate
			result, err := s.sims.Evaluate(in)
			if err != nil {
				errs[i] = err
				return
			}
			points[i] = SweepPoint{
				PumpRateBblMin: rate,
				MaxECDPPG:      result.Verdict.MaxECDPPG,
				PumpTimeMin:    result.Placement.PumpTimeMin,
				Safe:           result.Verdict.Safe,
			}
		}(i, rate)
	}

	// Draining the semaphore waits for every worker.
	if err := s.sem.Acquire(ctx, int64(runtime.NumCPU())); err != nil {
		return nil, err
	}
	s.sem.Release(int64(runtime.NumCPU()))

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	result := &SweepResult{Points: points}
	safe := make([]SweepPoint, 0, n)
	for _, p := range points {
		if p.Safe {
			safe = append(safe, p)
		}
	}
	if len(safe) > 0 {
		sort.Slice(safe, func(i, j int) bool { return safe[i].PumpRateBblMin > safe[j].PumpRateBblMin })
		best := safe[0]
		result.MaxSafeRate = &best
	}
	return result, nil
}
