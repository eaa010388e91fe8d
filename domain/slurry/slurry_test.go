package slurry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRow() map[string]string {
	return map[string]string{
		ColName:             "Class G Neat",
		ColDensityPPG:       "15.8",
		ColPlasticViscosity: "55",
		ColYieldPoint:       "12",
		ColBHCT:             "160",
	}
}

func TestFromRow(t *testing.T) {
	s, err := FromRow(validRow())
	require.NoError(t, err)

	assert.Equal(t, "Class G Neat", s.Name)
	assert.Equal(t, 15.8, s.DensityPPG)
	assert.Equal(t, 55.0, s.PlasticViscosity)
	assert.Equal(t, 12.0, s.YieldPoint)
	assert.Equal(t, 160.0, s.BHCT)
	assert.Empty(t, s.Metadata)
}

func TestFromRowPreservesExtraColumns(t *testing.T) {
	row := validRow()
	row["class"] = "G"
	row["vendor"] = "lab"

	s, err := FromRow(row)
	require.NoError(t, err)
	assert.Equal(t, "G", s.Metadata["class"])
	assert.Equal(t, "lab", s.Metadata["vendor"])
}

func TestFromRowErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]string)
	}{
		{"empty name", func(r map[string]string) { r[ColName] = "  " }},
		{"missing density column", func(r map[string]string) { delete(r, ColDensityPPG) }},
		{"non-numeric viscosity", func(r map[string]string) { r[ColPlasticViscosity] = "fast" }},
		{"negative yield point", func(r map[string]string) { r[ColYieldPoint] = "-3" }},
		{"zero density", func(r map[string]string) { r[ColDensityPPG] = "0" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := validRow()
			tt.mutate(row)
			_, err := FromRow(row)
			assert.Error(t, err)
		})
	}
}

func TestDensityAtTempIdentityAtReference(t *testing.T) {
	got := DensityAtTemp(15.8, ReferenceTempF)
	assert.InDelta(t, 15.8, got, 1e-12)
}

func TestDensityAtTempFallsWithTemperature(t *testing.T) {
	cold := DensityAtTemp(15.8, 100)
	ref := DensityAtTemp(15.8, ReferenceTempF)
	hot := DensityAtTemp(15.8, 300)

	assert.Greater(t, cold, ref)
	assert.Greater(t, ref, hot)

	// Known value: 15.8 ppg at 250°F → 15.8*(1-0.00028*100)
	assert.InDelta(t, 15.8*(1-0.028), DensityAtTemp(15.8, 250), 1e-9)
}

func TestViscosityAtTemp(t *testing.T) {
	assert.InDelta(t, 55.0, ViscosityAtTemp(55, ReferenceTempF), 1e-12)

	hot := ViscosityAtTemp(55, 250)
	assert.InDelta(t, 55*math.Exp(-1.5), hot, 1e-9)

	// Floor holds for extreme temperatures
	assert.Equal(t, 0.001, ViscosityAtTemp(0.0001, 350))
}

func TestAtTempLeavesYieldPoint(t *testing.T) {
	s, err := FromRow(validRow())
	require.NoError(t, err)

	corrected := s.AtTemp(250)
	assert.Equal(t, s.YieldPoint, corrected.YieldPoint)
	assert.Less(t, corrected.DensityPPG, s.DensityPPG)
	assert.Less(t, corrected.PlasticViscosity, s.PlasticViscosity)
	// Original untouched
	assert.Equal(t, 15.8, s.DensityPPG)
}
