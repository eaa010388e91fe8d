package hydraulics

import (
	"math"

	"welltwin/domain/wellbore"
)

// Placement describes how long the job takes and where the cement front sits
// over time while displacing up the annulus from TD toward top of cement.
type Placement struct {
	VolumeBbl   float64 `json:"volume_bbl"`
	PumpTimeMin float64 `json:"pump_time_min"`

	depthFt float64
	tocFt   float64
}

// NewPlacement derives placement figures from geometry and pump rate.
// A non-positive pump rate yields a zero pump time.
func NewPlacement(geo wellbore.Geometry, pumpRateBblMin float64) Placement {
	vol := geo.AnnulusVolumeBbl()
	p := Placement{
		VolumeBbl: vol,
		depthFt:   geo.DepthFt,
		tocFt:     geo.TopOfCementFt,
	}
	if pumpRateBblMin > 0 {
		p.PumpTimeMin = vol / pumpRateBblMin
	}
	return p
}

// FrontAt returns the cement front depth (ft) after t minutes of pumping.
// The front starts at TD and reaches top of cement when the job completes.
func (p Placement) FrontAt(tMin float64) float64 {
	if p.PumpTimeMin <= 0 {
		return p.depthFt
	}
	frac := math.Min(1.0, math.Max(0, tMin)/p.PumpTimeMin)
	return p.depthFt - frac*(p.depthFt-p.tocFt)
}

// FrontSeries samples the front position at n evenly spaced times across the
// full pump time, inclusive of t=0 and t=pumpTime.
func (p Placement) FrontSeries(n int) ([]float64, []float64) {
	if n < 2 {
		n = 2
	}
	times := make([]float64, n)
	fronts := make([]float64, n)
	step := p.PumpTimeMin / float64(n-1)
	for i := range times {
		times[i] = float64(i) * step
		fronts[i] = p.FrontAt(times[i])
	}
	return times, fronts
}
