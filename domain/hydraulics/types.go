package hydraulics

import "fmt"

// Pumping plan input ranges matching the dashboard controls.
const (
	MinPumpRateBblMin  = 0.5
	MaxPumpRateBblMin  = 18.0
	MinFractureGradPPG = 12.0
	MaxFractureGradPPG = 22.0
	MinPorePressurePPG = 9.0
	MaxPorePressurePPG = 18.0
	MinBHCTF           = 50.0
	MaxBHCTF           = 350.0
)

// Number of depth stations in a computed ECD/pressure profile.
const ProfileStations = 400

// PumpingPlan holds the operator inputs for one cementing job.
type PumpingPlan struct {
	PumpRateBblMin   float64 `json:"pump_rate_bbl_min"`
	FractureGradPPG  float64 `json:"fracture_grad_ppg"`
	PorePressurePPG  float64 `json:"pore_pressure_ppg"`
	BHCTF            float64 `json:"bhct_f"`
	ApplyThermalCorr bool    `json:"apply_thermal_correction"`
}

// Validate checks the plan against the accepted input ranges.
func (p PumpingPlan) Validate() error {
	if p.PumpRateBblMin < MinPumpRateBblMin || p.PumpRateBblMin > MaxPumpRateBblMin {
		return fmt.Errorf("pump rate %.2f bbl/min outside range [%.1f, %.1f]",
			p.PumpRateBblMin, MinPumpRateBblMin, MaxPumpRateBblMin)
	}
	if p.FractureGradPPG < MinFractureGradPPG || p.FractureGradPPG > MaxFractureGradPPG {
		return fmt.Errorf("fracture gradient %.2f ppg outside range [%.1f, %.1f]",
			p.FractureGradPPG, MinFractureGradPPG, MaxFractureGradPPG)
	}
	if p.PorePressurePPG < MinPorePressurePPG || p.PorePressurePPG > MaxPorePressurePPG {
		return fmt.Errorf("pore pressure %.2f ppg outside range [%.1f, %.1f]",
			p.PorePressurePPG, MinPorePressurePPG, MaxPorePressurePPG)
	}
	if p.PorePressurePPG >= p.FractureGradPPG {
		return fmt.Errorf("pore pressure %.2f ppg must be below fracture gradient %.2f ppg",
			p.PorePressurePPG, p.FractureGradPPG)
	}
	if p.BHCTF < MinBHCTF || p.BHCTF > MaxBHCTF {
		return fmt.Errorf("BHCT %.0f °F outside range [%.0f, %.0f]", p.BHCTF, MinBHCTF, MaxBHCTF)
	}
	return nil
}

// Profile is an ECD and pressure profile over depth stations. All slices
// share the same length and index the same stations.
type Profile struct {
	DepthFt        []float64 `json:"depth_ft"`
	HydrostaticPsi []float64 `json:"hydrostatic_psi"`
	FrictionPsi    []float64 `json:"friction_psi"`
	TotalPsi       []float64 `json:"total_psi"`
	ECDPPG         []float64 `json:"ecd_ppg"`
}

// WindowBreach records the first depth station where the ECD leaves the
// pore-pressure/fracture-gradient window.
type WindowBreach struct {
	DepthFt float64 `json:"depth_ft"`
	ECDPPG  float64 `json:"ecd_ppg"`

	// "fracture" when ECD exceeds the fracture gradient,
	// "pore" when ECD falls below pore pressure.
	Kind string `json:"kind"`
}

// WindowVerdict summarizes the profile against the safe operating window.
type WindowVerdict struct {
	Safe        bool          `json:"safe"`
	MaxECDPPG   float64       `json:"max_ecd_ppg"`
	MaxECDDepth float64       `json:"max_ecd_depth_ft"`
	Breach      *WindowBreach `json:"breach,omitempty"`
}

// RheologyPoint is one shear-rate/shear-stress sample on the Bingham curve.
type RheologyPoint struct {
	ShearRate   float64 `json:"shear_rate_1s"`
	ShearStress float64 `json:"shear_stress_pa"`
}
