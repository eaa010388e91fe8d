package hydraulics

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"welltwin/domain/wellbore"
)

// ppg → psi/ft hydrostatic gradient factor
const psiPerFtPerPPG = 0.052

// ECDInputs are the fluid properties the profile is computed from,
// already thermally corrected when the plan asks for it.
type ECDInputs struct {
	DensityPPG       float64
	PlasticViscosity float64
	YieldPoint       float64
	PumpRateBblMin   float64
}

// ComputeProfile computes hydrostatic, friction, total pressure and ECD at
// ProfileStations evenly spaced depth stations from 1 ft to TD. The friction
// model is the simplified annular Bingham approximation the dashboard uses:
// a rate/rheology term scaled linearly with depth and a geometry factor that
// penalizes tight annular clearances.
func ComputeProfile(in ECDInputs, geo wellbore.Geometry) Profile {
	depths := make([]float64, ProfileStations)
	floats.Span(depths, 1, geo.DepthFt)

	geom := math.Max(0.1, 1+(0.45-geo.HydraulicDiameterFt()))
	friction := (in.PlasticViscosity/10.0)*(in.PumpRateBblMin/4.0) + (in.YieldPoint / 20.0)

	p := Profile{
		DepthFt:        depths,
		HydrostaticPsi: make([]float64, ProfileStations),
		FrictionPsi:    make([]float64, ProfileStations),
		TotalPsi:       make([]float64, ProfileStations),
		ECDPPG:         make([]float64, ProfileStations),
	}

	for i, d := range depths {
		p.FrictionPsi[i] = friction * d / 1000.0 * 50.0 * geom
		p.HydrostaticPsi[i] = psiPerFtPerPPG * in.DensityPPG * d
		p.TotalPsi[i] = p.HydrostaticPsi[i] + p.FrictionPsi[i]
		p.ECDPPG[i] = sanitize(p.TotalPsi[i] / (psiPerFtPerPPG * d))
	}

	return p
}

// CheckWindow evaluates the profile against the pore-pressure/fracture-gradient
// window and reports the maximum ECD plus the first breach, if any.
func CheckWindow(p Profile, porePPG, fracturePPG float64) WindowVerdict {
	verdict := WindowVerdict{Safe: true}

	for i, ecd := range p.ECDPPG {
		if ecd > verdict.MaxECDPPG {
			verdict.MaxECDPPG = ecd
			verdict.MaxECDDepth = p.DepthFt[i]
		}
		if verdict.Breach != nil {
			continue
		}
		switch {
		case ecd > fracturePPG:
			verdict.Safe = false
			verdict.Breach = &WindowBreach{DepthFt: p.DepthFt[i], ECDPPG: ecd, Kind: "fracture"}
		case ecd < porePPG:
			verdict.Safe = false
			verdict.Breach = &WindowBreach{DepthFt: p.DepthFt[i], ECDPPG: ecd, Kind: "pore"}
		}
	}

	return verdict
}

// sanitize clamps NaN and infinities to zero so profiles stay JSON-encodable.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
