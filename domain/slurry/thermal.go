package slurry

import "math"

// Thermal correction constants. Reference temperature matches the lab
// conditioning temperature the catalog properties were measured at.
const (
	ReferenceTempF = 150.0

	// ppg → lb/ft³ conversion factor
	lbPerFt3PerPPG = 7.48052

	// volumetric thermal expansion coefficient, 1/°F
	expansionCoeff = 0.00028

	// exponential viscosity decay rate, 1/°F
	viscosityDecay = 0.015

	// floor applied to corrected plastic viscosity, cP
	minViscosity = 0.001
)

// DensityAtTemp corrects a density (ppg) from reference conditions to the
// given bottom-hole circulating temperature (°F). Density falls as the slurry
// expands with temperature.
func DensityAtTemp(densityPPG, tempF float64) float64 {
	rhoRef := densityPPG * lbPerFt3PerPPG
	rho := rhoRef * (1 - expansionCoeff*(tempF-ReferenceTempF))
	return rho / lbPerFt3PerPPG
}

// ViscosityAtTemp corrects a plastic viscosity (cP) from reference conditions
// to the given temperature (°F). Never returns below the viscosity floor.
func ViscosityAtTemp(pvCP, tempF float64) float64 {
	corrected := pvCP * math.Exp(-viscosityDecay*(tempF-ReferenceTempF))
	return math.Max(minViscosity, corrected)
}

// AtTemp returns a copy of the slurry with density and plastic viscosity
// corrected to the given temperature. Yield point is left uncorrected.
func (s Slurry) AtTemp(tempF float64) Slurry {
	out := s
	out.DensityPPG = DensityAtTemp(s.DensityPPG, tempF)
	out.PlasticViscosity = ViscosityAtTemp(s.PlasticViscosity, tempF)
	return out
}
