package hydraulics

import "gonum.org/v1/gonum/floats"

// Bingham curve sampling: 120 log-spaced shear rates across 1…1000 1/s.
const (
	RheologyPoints   = 120
	minShearRate     = 1.0
	maxShearRate     = 1000.0
	paPerLb100Ft2    = 0.4788
	paSPerCentipoise = 0.001
)

// BinghamCurve samples the Bingham-plastic flow curve
// τ = τ_y + μ_p·γ̇ over log-spaced shear rates. Yield point is given in
// lb/100ft² and plastic viscosity in cP; stress comes back in Pa.
func BinghamCurve(pvCP, ypLb100Ft2 float64) []RheologyPoint {
	rates := make([]float64, RheologyPoints)
	floats.LogSpan(rates, minShearRate, maxShearRate)

	ypPa := ypLb100Ft2 * paPerLb100Ft2
	muPaS := pvCP * paSPerCentipoise

	curve := make([]RheologyPoint, RheologyPoints)
	for i, rate := range rates {
		curve[i] = RheologyPoint{
			ShearRate:   rate,
			ShearStress: ypPa + muPaS*rate,
		}
	}
	return curve
}
