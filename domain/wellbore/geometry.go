package wellbore

import (
	"fmt"
	"math"
)

// Input ranges accepted by the dashboard controls. Values outside these
// ranges are rejected at validation time rather than clamped.
const (
	MinHoleDiameterIn = 6.0
	MaxHoleDiameterIn = 20.0
	MinCasingODIn     = 4.0
	MaxCasingODIn     = 16.0
	MinDepthFt        = 1000.0
	MaxDepthFt        = 12000.0

	// Minimum cement column height: TOC must sit at least this far above TD.
	MinCementColumnFt = 50.0
)

// gal/ft³ and gal/bbl conversion factors
const (
	galPerFt3 = 7.48052
	galPerBbl = 42.0
)

// Geometry describes the cased wellbore section being cemented.
type Geometry struct {
	HoleDiameterIn float64 `json:"hole_diameter_in"`
	CasingODIn     float64 `json:"casing_od_in"`
	DepthFt        float64 `json:"depth_ft"`
	TopOfCementFt  float64 `json:"top_of_cement_ft"`
}

// Validate checks the geometry against the accepted input ranges.
func (g Geometry) Validate() error {
	if g.HoleDiameterIn < MinHoleDiameterIn || g.HoleDiameterIn > MaxHoleDiameterIn {
		return fmt.Errorf("hole diameter %.1f in outside range [%.1f, %.1f]",
			g.HoleDiameterIn, MinHoleDiameterIn, MaxHoleDiameterIn)
	}
	if g.CasingODIn < MinCasingODIn || g.CasingODIn > MaxCasingODIn {
		return fmt.Errorf("casing OD %.1f in outside range [%.1f, %.1f]",
			g.CasingODIn, MinCasingODIn, MaxCasingODIn)
	}
	if g.CasingODIn >= g.HoleDiameterIn {
		return fmt.Errorf("casing OD %.1f in must be smaller than hole diameter %.1f in",
			g.CasingODIn, g.HoleDiameterIn)
	}
	if g.DepthFt < MinDepthFt || g.DepthFt > MaxDepthFt {
		return fmt.Errorf("depth %.0f ft outside range [%.0f, %.0f]",
			g.DepthFt, MinDepthFt, MaxDepthFt)
	}
	if g.TopOfCementFt < 0 {
		return fmt.Errorf("top of cement cannot be negative, got %.0f ft", g.TopOfCementFt)
	}
	if g.TopOfCementFt > g.DepthFt-MinCementColumnFt {
		return fmt.Errorf("top of cement %.0f ft leaves less than %.0f ft of cement column above TD %.0f ft",
			g.TopOfCementFt, MinCementColumnFt, g.DepthFt)
	}
	return nil
}

// AnnulusAreaFt2 returns the open-hole/casing annulus cross-section in ft².
func (g Geometry) AnnulusAreaFt2() float64 {
	holeFt := g.HoleDiameterIn / 12.0
	casingFt := g.CasingODIn / 12.0
	return math.Pi * (holeFt*holeFt - casingFt*casingFt) / 4.0
}

// HydraulicDiameterFt returns the annulus hydraulic diameter in ft,
// floored to keep downstream friction terms finite for near-zero clearances.
func (g Geometry) HydraulicDiameterFt() float64 {
	return math.Max(0.0001, (g.HoleDiameterIn-g.CasingODIn)/12.0)
}

// AnnulusVolumeBbl returns the cemented annulus volume in barrels,
// from top of cement down to TD.
func (g Geometry) AnnulusVolumeBbl() float64 {
	return g.AnnulusAreaFt2() * galPerFt3 * (g.DepthFt - g.TopOfCementFt) / galPerBbl
}

// CementColumnFt returns the height of the cement column.
func (g Geometry) CementColumnFt() float64 {
	return g.DepthFt - g.TopOfCementFt
}
