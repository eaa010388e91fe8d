package wellbore

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func defaultGeometry() Geometry {
	return Geometry{
		HoleDiameterIn: 8.5,
		CasingODIn:     5.5,
		DepthFt:        3000,
		TopOfCementFt:  1500,
	}
}

func TestGeometryValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Geometry)
		wantErr bool
	}{
		{"defaults valid", func(g *Geometry) {}, false},
		{"hole too small", func(g *Geometry) { g.HoleDiameterIn = 5.0 }, true},
		{"hole too large", func(g *Geometry) { g.HoleDiameterIn = 24.0 }, true},
		{"casing out of range", func(g *Geometry) { g.CasingODIn = 2.0 }, true},
		{"casing >= hole", func(g *Geometry) { g.CasingODIn = 8.5 }, true},
		{"too shallow", func(g *Geometry) { g.DepthFt = 500 }, true},
		{"too deep", func(g *Geometry) { g.DepthFt = 20000 }, true},
		{"negative toc", func(g *Geometry) { g.TopOfCementFt = -10 }, true},
		{"toc too close to TD", func(g *Geometry) { g.TopOfCementFt = 2980 }, true},
		{"toc exactly at limit", func(g *Geometry) { g.TopOfCementFt = 2950 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := defaultGeometry()
			tt.mutate(&g)
			err := g.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAnnulusAreaFt2(t *testing.T) {
	g := defaultGeometry()
	holeFt := 8.5 / 12.0
	casingFt := 5.5 / 12.0
	want := math.Pi * (holeFt*holeFt - casingFt*casingFt) / 4.0
	assert.InDelta(t, want, g.AnnulusAreaFt2(), 1e-12)
}

func TestHydraulicDiameterFloor(t *testing.T) {
	g := defaultGeometry()
	assert.InDelta(t, 0.25, g.HydraulicDiameterFt(), 1e-12)

	g.CasingODIn = g.HoleDiameterIn - 0.0001
	assert.Equal(t, 0.0001, g.HydraulicDiameterFt())
}

func TestAnnulusVolumeBbl(t *testing.T) {
	g := defaultGeometry()
	want := g.AnnulusAreaFt2() * 7.48052 * 1500 / 42.0
	assert.InDelta(t, want, g.AnnulusVolumeBbl(), 1e-9)

	// Volume scales linearly with cement column height
	g.TopOfCementFt = 0
	assert.InDelta(t, 2*want, g.AnnulusVolumeBbl(), 1e-9)
}
